package session

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/AlistairHeus/feed-assignment/internal/accounts"
	"github.com/AlistairHeus/feed-assignment/internal/logging"
	"github.com/AlistairHeus/feed-assignment/internal/models"
	"github.com/AlistairHeus/feed-assignment/internal/storage"
)

// Inline error messages surfaced through AuthState.Error.
const (
	MsgInvalidCredentials = "Invalid email or password"
	MsgEmailExists        = "Email already exists"
	MsgSignUpFailed       = "Sign up failed, please try again"
)

// DefaultAuthDelay emulates the round trip to a credential backend.
const DefaultAuthDelay = 500 * time.Millisecond

// Coordinator owns the session and modal state records and is the only
// writer to the persisted session ("auth_user"). All mutators notify
// subscribers synchronously with a snapshot of the completed
// transition; an in-flight login/signup blocks further attempts until
// it resolves (the busy guard rejects overlapping calls).
type Coordinator struct {
	accounts *accounts.Store
	db       *sql.DB
	log      logging.Logger
	delay    time.Duration
	now      func() time.Time

	mu          sync.Mutex
	auth        AuthState
	modal       ModalState
	busy        bool
	subscribers []func(Snapshot)
}

// Option customizes a Coordinator.
type Option func(*Coordinator)

// WithAuthDelay overrides the artificial login/signup delay. Tests use 0.
func WithAuthDelay(d time.Duration) Option {
	return func(c *Coordinator) { c.delay = d }
}

// WithClock overrides the clock used for generated user ids.
func WithClock(now func() time.Time) Option {
	return func(c *Coordinator) { c.now = now }
}

// NewCoordinator constructs a Coordinator and attempts to restore a
// previously persisted session: if a valid session record exists the
// coordinator starts authenticated, otherwise anonymous. A record that
// fails strict parsing is logged, removed, and ignored.
func NewCoordinator(ctx context.Context, db *sql.DB, store *accounts.Store, log logging.Logger, opts ...Option) *Coordinator {
	c := &Coordinator{
		accounts: store,
		db:       db,
		log:      log.With("component", "session"),
		delay:    DefaultAuthDelay,
		now:      time.Now,
		modal:    ModalState{IsOpen: false, Kind: ModalSignIn},
	}
	for _, opt := range opts {
		opt(c)
	}
	c.restore(ctx)
	return c
}

// Auth returns a copy of the current session state.
func (c *Coordinator) Auth() AuthState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return cloneAuth(c.auth)
}

// Modal returns a copy of the current modal state.
func (c *Coordinator) Modal() ModalState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.modal
}

// Subscribe registers fn to be called synchronously after every
// state-mutating transition with a snapshot of the final state.
func (c *Coordinator) Subscribe(fn func(Snapshot)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subscribers = append(c.subscribers, fn)
}

// Login validates the credentials against the credential store after
// the artificial delay. On a match the session becomes authenticated,
// the user is persisted, and the modal closes; on a miss the session
// stays anonymous with AuthState.Error set. Returns whether the login
// succeeded. A call that overlaps an in-flight attempt is rejected and
// returns false without touching state.
func (c *Coordinator) Login(ctx context.Context, email, password string) bool {
	if !c.beginAttempt(ctx) {
		return false
	}
	c.pause()

	cred, err := c.accounts.FindAccount(ctx, email, password)
	if err != nil {
		c.log.Error(ctx, "credential lookup failed", "error", err)
		c.failAttempt(MsgInvalidCredentials)
		return false
	}
	if cred == nil {
		c.failAttempt(MsgInvalidCredentials)
		return false
	}

	c.persistUser(ctx, cred.User)
	c.completeAttempt(ctx, cred.User)
	return true
}

// Signup registers a new account after the artificial delay, signs the
// new user in, and persists both the credential and the session. The
// email must not exist in either record set. Password shape and the
// confirmPassword match are the presentation layer's responsibility and
// are not re-validated here. Returns whether the signup succeeded; the
// busy guard applies as for Login.
func (c *Coordinator) Signup(ctx context.Context, email, password, confirmPassword string) bool {
	if !c.beginAttempt(ctx) {
		return false
	}
	c.pause()

	exists, err := c.accounts.EmailExists(ctx, email)
	if err != nil {
		c.log.Error(ctx, "email lookup failed", "error", err)
		c.failAttempt(MsgSignUpFailed)
		return false
	}
	if exists {
		c.failAttempt(MsgEmailExists)
		return false
	}

	user := models.User{
		Id:    c.newUserId(),
		Email: email,
	}
	cred := models.Credential{Email: email, Password: password, User: user}
	if err := c.accounts.AppendRegistered(ctx, cred); err != nil {
		c.log.Error(ctx, "failed to persist registered account", "error", err)
		c.failAttempt(MsgSignUpFailed)
		return false
	}

	c.persistUser(ctx, user)
	c.completeAttempt(ctx, user)
	return true
}

// Logout returns the session to the anonymous state unconditionally and
// removes the persisted session record. Registered credentials are
// untouched.
func (c *Coordinator) Logout(ctx context.Context) {
	repo := storage.NewSQLiteRepository(c.db)
	if err := repo.Delete(ctx, storage.SessionKey); err != nil {
		c.log.Error(ctx, "failed to remove persisted session", "error", err)
	}

	c.mu.Lock()
	c.auth = AuthState{}
	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.log.Info(ctx, "logged out")
	c.notify(snap)
}

// OpenModal opens the auth modal showing the given dialog and clears
// any stale session error.
func (c *Coordinator) OpenModal(kind ModalKind) {
	c.mu.Lock()
	c.modal = ModalState{IsOpen: true, Kind: kind}
	c.auth.Error = ""
	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.notify(snap)
}

// CloseModal closes the auth modal, resetting the dialog to sign-in,
// and clears any stale session error.
func (c *Coordinator) CloseModal() {
	c.mu.Lock()
	c.modal = ModalState{IsOpen: false, Kind: ModalSignIn}
	c.auth.Error = ""
	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.notify(snap)
}

// SwitchModal flips the dialog between sign-in and sign-up, preserving
// visibility, and clears any stale session error.
func (c *Coordinator) SwitchModal() {
	c.mu.Lock()
	if c.modal.Kind == ModalSignIn {
		c.modal.Kind = ModalSignUp
	} else {
		c.modal.Kind = ModalSignIn
	}
	c.auth.Error = ""
	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.notify(snap)
}

// restore loads the persisted session, if any. Only called from the
// constructor, before the coordinator is shared.
func (c *Coordinator) restore(ctx context.Context) {
	repo := storage.NewSQLiteRepository(c.db)

	data, err := repo.Get(ctx, storage.SessionKey)
	if err != nil {
		c.log.Error(ctx, "failed to read persisted session", "error", err)
		return
	}
	if data == nil {
		return
	}

	user, err := models.DecodeSessionRecord(data)
	if err != nil {
		c.log.Warn(ctx, "discarding corrupt session record", "error", err)
		if err := repo.Delete(ctx, storage.SessionKey); err != nil {
			c.log.Error(ctx, "failed to remove corrupt session record", "error", err)
		}
		return
	}

	c.auth = AuthState{User: &user, IsAuthenticated: true}
	c.log.Info(ctx, "session restored", "user_id", user.Id)
}

// beginAttempt transitions to the authenticating state. It returns
// false when another attempt is already in flight.
func (c *Coordinator) beginAttempt(ctx context.Context) bool {
	c.mu.Lock()
	if c.busy {
		c.mu.Unlock()
		c.log.Warn(ctx, "authentication attempt rejected: another is in flight")
		return false
	}
	c.busy = true
	c.auth.IsLoading = true
	c.auth.Error = ""
	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.notify(snap)
	return true
}

// failAttempt resolves the in-flight attempt as a miss, leaving the
// session anonymous with the given inline error.
func (c *Coordinator) failAttempt(msg string) {
	c.mu.Lock()
	c.busy = false
	c.auth.IsLoading = false
	c.auth.Error = msg
	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.notify(snap)
}

// completeAttempt resolves the in-flight attempt as a success: the
// session becomes authenticated as user and the modal closes.
func (c *Coordinator) completeAttempt(ctx context.Context, user models.User) {
	c.mu.Lock()
	c.busy = false
	c.auth = AuthState{User: &user, IsAuthenticated: true}
	c.modal = ModalState{IsOpen: false, Kind: ModalSignIn}
	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.log.Info(ctx, "authenticated", "user_id", user.Id)
	c.notify(snap)
}

// persistUser writes the session record. A write failure is logged but
// does not fail the attempt: the in-memory session stays valid and the
// next successful write heals the store.
func (c *Coordinator) persistUser(ctx context.Context, user models.User) {
	data, err := models.EncodeSessionRecord(user)
	if err != nil {
		c.log.Error(ctx, "failed to encode session record", "error", err)
		return
	}
	repo := storage.NewSQLiteRepository(c.db)
	if err := repo.Set(ctx, storage.SessionKey, data); err != nil {
		c.log.Error(ctx, "failed to persist session record", "error", err)
	}
}

// pause imposes the fixed artificial delay. It is deliberately not
// cancellable: an in-flight attempt always resolves.
func (c *Coordinator) pause() {
	if c.delay > 0 {
		time.Sleep(c.delay)
	}
}

func (c *Coordinator) newUserId() string {
	return fmt.Sprintf("user-%d", c.now().UnixMilli())
}

// snapshotLocked copies both state records. Callers must hold c.mu.
func (c *Coordinator) snapshotLocked() Snapshot {
	return Snapshot{Auth: cloneAuth(c.auth), Modal: c.modal}
}

// notify calls every subscriber synchronously with the snapshot, outside
// the state lock so subscribers may read the coordinator.
func (c *Coordinator) notify(snap Snapshot) {
	c.mu.Lock()
	subs := make([]func(Snapshot), len(c.subscribers))
	copy(subs, c.subscribers)
	c.mu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
}

func cloneAuth(a AuthState) AuthState {
	if a.User != nil {
		u := *a.User
		a.User = &u
	}
	return a
}
