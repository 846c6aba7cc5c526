// Package sqlite provides a SQLite-backed implementation of the server DAO,
// so taught vocabulary and world-model state survive server restarts.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/maybell/parlance/server/dao"
	"modernc.org/sqlite"
)

type store struct {
	dbFilename string

	db *sql.DB

	seshes *SessionsDB
}

// NewDatastore opens (creating if needed) the session database inside the
// given storage directory and returns a store backed by it.
func NewDatastore(storageDir string) (dao.Store, error) {
	st := &store{
		dbFilename: "sessions.db",
	}

	fileName := filepath.Join(storageDir, st.dbFilename)

	var err error
	st.db, err = sql.Open("sqlite", fileName)
	if err != nil {
		return dao.Store{}, wrapDBError(err)
	}

	st.seshes = &SessionsDB{db: st.db}
	if err := st.seshes.init(); err != nil {
		return dao.Store{}, fmt.Errorf("init sessions table: %w", err)
	}

	return dao.Store{Sessions: st.seshes}, nil
}

func wrapDBError(err error) error {
	sqliteErr := &sqlite.Error{}
	if errors.As(err, &sqliteErr) {
		if sqliteErr.Code() == 19 {
			return dao.ErrConstraintViolation
		}
		return fmt.Errorf("%s", sqlite.ErrorCodeString[sqliteErr.Code()])
	} else if errors.Is(err, sql.ErrNoRows) {
		return dao.ErrNotFound
	}
	return err
}
