// Package session persists the signed-in user across restarts in a local
// badger database, the device-side counterpart of the hosted backend.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	badger "github.com/dgraph-io/badger/v4"
)

var (
	keyUser  = []byte("session/user")
	keyTheme = []byte("session/theme")
)

// ErrNoSession means nobody is signed in on this device.
var ErrNoSession = errors.New("session: no stored user")

// Record is the persisted session state.
type Record struct {
	UserID   string    `json:"user_id"`
	Username string    `json:"username"`
	SignedAt time.Time `json:"signed_at"`
}

type Store struct {
	db *badger.DB
}

// Open creates or opens the session database at path.
func Open(path string) (*Store, error) {
	opts := badger.DefaultOptions(path).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("opening session store: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// SaveUser stores the signed-in user, replacing any previous session.
func (s *Store) SaveUser(userID, username string) error {
	record := Record{UserID: userID, Username: username, SignedAt: time.Now()}
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(keyUser, payload)
	})
}

// CurrentUser returns the stored session, or ErrNoSession.
func (s *Store) CurrentUser() (*Record, error) {
	var record Record
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(keyUser)
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &record)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, fmt.Errorf("reading session: %w", err)
	}
	return &record, nil
}

// ClearUser signs the device out.
func (s *Store) ClearUser() error {
	return s.db.Update(func(txn *badger.Txn) error {
		err := txn.Delete(keyUser)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		return err
	})
}

// SetDarkMode stores the theme preference.
func (s *Store) SetDarkMode(enabled bool) error {
	value := []byte("0")
	if enabled {
		value = []byte("1")
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(keyTheme, value)
	})
}

// DarkMode reports the stored theme preference; the default is light.
func (s *Store) DarkMode() (bool, error) {
	var enabled bool
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(keyTheme)
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			enabled = len(val) == 1 && val[0] == '1'
			return nil
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("reading theme: %w", err)
	}
	return enabled, nil
}
