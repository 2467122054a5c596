package models

// Post is a single feed item. Timestamp is the human-readable label the
// feed renders ("Just now", "2 hours ago"); CreatedAt is the unix-ms
// instant used for ordering.
type Post struct {
	Id         string `json:"id"`
	Author     string `json:"author"`
	Content    string `json:"content"`
	Timestamp  string `json:"timestamp"`
	CreatedAt  int64  `json:"createdAt"`
	Avatar     string `json:"avatar,omitempty"`
	UserId     string `json:"userId,omitempty"`
	IsDemoPost bool   `json:"isDemoPost,omitempty"`
}
