// Package storage is the client's local key-value store, the stand-in
// for the browser localStorage the feed app was designed around. Values
// are opaque byte slices; callers own serialization and schema checks.
package storage
