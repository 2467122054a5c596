package accounts

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/AlistairHeus/feed-assignment/internal/dbx"
	"github.com/AlistairHeus/feed-assignment/internal/logging"
	"github.com/AlistairHeus/feed-assignment/internal/models"
	"github.com/AlistairHeus/feed-assignment/internal/storage"
)

// Store answers credential queries against the union of the built-in
// and registered record sets.
//
// Contract:
//   - FindAccount: exact, case-sensitive email+password match; built-in
//     records win on an email collision. Returns (nil, nil) on a miss.
//   - EmailExists: true if the email appears in either set.
//   - AppendRegistered: appends to the persisted sequence. Callers must
//     check EmailExists first; the store enforces no dedup itself.
//   - ClearRegistered: debug-only reset of the persisted sequence.
//
// A corrupt persisted registered-accounts value is never an error: it
// is logged and treated as an empty set until the next write heals it.
type Store struct {
	db  *sql.DB
	log logging.Logger
}

// NewStore constructs a Store over the given database handle.
func NewStore(db *sql.DB, log logging.Logger) *Store {
	return &Store{db: db, log: log.With("component", "accounts")}
}

// FindAccount returns the credential whose email and password both
// match exactly, checking built-in accounts before registered ones, or
// (nil, nil) when no record matches.
func (s *Store) FindAccount(ctx context.Context, email, password string) (*models.Credential, error) {
	for _, acc := range builtinAccounts {
		if acc.Email == email && acc.Password == password {
			found := acc
			return &found, nil
		}
	}

	registered, err := s.loadRegistered(ctx, storage.NewSQLiteRepository(s.db))
	if err != nil {
		return nil, err
	}
	for _, acc := range registered {
		if acc.Email == email && acc.Password == password {
			found := acc
			return &found, nil
		}
	}
	return nil, nil
}

// EmailExists reports whether email is taken in either record set.
func (s *Store) EmailExists(ctx context.Context, email string) (bool, error) {
	for _, acc := range builtinAccounts {
		if acc.Email == email {
			return true, nil
		}
	}

	registered, err := s.loadRegistered(ctx, storage.NewSQLiteRepository(s.db))
	if err != nil {
		return false, err
	}
	for _, acc := range registered {
		if acc.Email == email {
			return true, nil
		}
	}
	return false, nil
}

// AppendRegistered adds cred to the end of the persisted sequence. The
// read-modify-write of the full value runs in a single transaction.
func (s *Store) AppendRegistered(ctx context.Context, cred models.Credential) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := storage.NewSQLiteRepository(tx)

		registered, err := s.loadRegistered(ctx, repo)
		if err != nil {
			return err
		}

		registered = append(registered, cred)
		data, err := models.EncodeRegisteredRecord(registered)
		if err != nil {
			return fmt.Errorf("failed to encode registered accounts: %w", err)
		}
		return repo.Set(ctx, storage.RegisteredUsersKey, data)
	})
}

// ClearRegistered resets the persisted registered-accounts value to an
// empty sequence. Not reachable from normal UI flow.
func (s *Store) ClearRegistered(ctx context.Context) error {
	repo := storage.NewSQLiteRepository(s.db)
	data, err := models.EncodeRegisteredRecord(nil)
	if err != nil {
		return fmt.Errorf("failed to encode empty registered accounts: %w", err)
	}
	return repo.Set(ctx, storage.RegisteredUsersKey, data)
}

// loadRegistered reads the persisted sequence through repo. A missing
// key yields an empty set; a record that fails strict parsing is logged
// and also treated as empty.
func (s *Store) loadRegistered(ctx context.Context, repo storage.Repository) ([]models.Credential, error) {
	data, err := repo.Get(ctx, storage.RegisteredUsersKey)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	registered, err := models.DecodeRegisteredRecord(data)
	if err != nil {
		s.log.Warn(ctx, "discarding corrupt registered accounts record", "error", err)
		return nil, nil
	}
	return registered, nil
}
