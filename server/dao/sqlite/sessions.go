package sqlite

import (
	"context"
	"database/sql"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/dekarrin/rezi"
	"github.com/google/uuid"
	"github.com/maybell/parlance"
	"github.com/maybell/parlance/server/dao"
)

// SessionsDB implements dao.SessionRepository on a SQLite table. Session
// state snapshots are stored REZI-encoded and base64'd in a TEXT column.
type SessionsDB struct {
	db *sql.DB
}

func (repo *SessionsDB) init() error {
	_, err := repo.db.Exec(`CREATE TABLE IF NOT EXISTS sessions (
		id TEXT NOT NULL PRIMARY KEY,
		state TEXT NOT NULL,
		created INTEGER NOT NULL
	);`)
	if err != nil {
		return wrapDBError(err)
	}

	return nil
}

func (repo *SessionsDB) Close() error {
	return repo.db.Close()
}

func (repo *SessionsDB) Create(ctx context.Context, s dao.Session) (dao.Session, error) {
	newUUID, err := uuid.NewRandom()
	if err != nil {
		return dao.Session{}, fmt.Errorf("could not generate ID: %w", err)
	}

	stmt, err := repo.db.Prepare(`INSERT INTO sessions (id, state, created) VALUES (?, ?, ?)`)
	if err != nil {
		return dao.Session{}, wrapDBError(err)
	}
	now := time.Now()

	encState, err := encodeState(s.State)
	if err != nil {
		return dao.Session{}, err
	}

	_, err = stmt.ExecContext(ctx, newUUID.String(), encState, now.Unix())
	if err != nil {
		return dao.Session{}, wrapDBError(err)
	}

	return repo.GetByID(ctx, newUUID)
}

func (repo *SessionsDB) GetByID(ctx context.Context, id uuid.UUID) (dao.Session, error) {
	s := dao.Session{
		ID: id,
	}
	var encState string
	var created int64

	row := repo.db.QueryRowContext(ctx, `SELECT state, created FROM sessions WHERE id = ?;`,
		id.String(),
	)
	err := row.Scan(
		&encState,
		&created,
	)
	if err != nil {
		return s, wrapDBError(err)
	}

	s.State, err = decodeState(encState)
	if err != nil {
		return s, fmt.Errorf("stored state for %s is invalid: %w", id.String(), err)
	}
	s.Created = time.Unix(created, 0)

	return s, nil
}

func (repo *SessionsDB) GetAll(ctx context.Context) ([]dao.Session, error) {
	rows, err := repo.db.QueryContext(ctx, `SELECT id, state, created FROM sessions ORDER BY id;`)
	if err != nil {
		return nil, wrapDBError(err)
	}
	defer rows.Close()

	var all []dao.Session

	for rows.Next() {
		var s dao.Session
		var idStr, encState string
		var created int64

		if err := rows.Scan(&idStr, &encState, &created); err != nil {
			return nil, wrapDBError(err)
		}

		s.ID, err = uuid.Parse(idStr)
		if err != nil {
			return nil, fmt.Errorf("%w: stored ID %q: %s", dao.ErrDecodingFailure, idStr, err.Error())
		}
		s.State, err = decodeState(encState)
		if err != nil {
			return nil, fmt.Errorf("stored state for %s is invalid: %w", idStr, err)
		}
		s.Created = time.Unix(created, 0)

		all = append(all, s)
	}

	if err := rows.Err(); err != nil {
		return nil, wrapDBError(err)
	}

	return all, nil
}

func (repo *SessionsDB) Update(ctx context.Context, id uuid.UUID, s dao.Session) (dao.Session, error) {
	encState, err := encodeState(s.State)
	if err != nil {
		return dao.Session{}, err
	}

	res, err := repo.db.ExecContext(ctx, `UPDATE sessions SET state=? WHERE id=?;`,
		encState,
		id.String(),
	)
	if err != nil {
		return dao.Session{}, wrapDBError(err)
	}
	rowsAff, err := res.RowsAffected()
	if err != nil {
		return dao.Session{}, wrapDBError(err)
	}
	if rowsAff < 1 {
		return dao.Session{}, dao.ErrNotFound
	}

	return repo.GetByID(ctx, id)
}

func (repo *SessionsDB) Delete(ctx context.Context, id uuid.UUID) (dao.Session, error) {
	s, err := repo.GetByID(ctx, id)
	if err != nil {
		return dao.Session{}, err
	}

	res, err := repo.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?;`, id.String())
	if err != nil {
		return dao.Session{}, wrapDBError(err)
	}
	rowsAff, err := res.RowsAffected()
	if err != nil {
		return dao.Session{}, wrapDBError(err)
	}
	if rowsAff < 1 {
		return dao.Session{}, dao.ErrNotFound
	}

	return s, nil
}

func encodeState(st parlance.State) (string, error) {
	data := rezi.EncBinary(st)
	return base64.StdEncoding.EncodeToString(data), nil
}

func decodeState(encState string) (parlance.State, error) {
	var st parlance.State

	data, err := base64.StdEncoding.DecodeString(encState)
	if err != nil {
		return st, fmt.Errorf("%w: %s", dao.ErrDecodingFailure, err.Error())
	}

	if _, err := rezi.DecBinary(data, &st); err != nil {
		return st, fmt.Errorf("%w: %s", dao.ErrDecodingFailure, err.Error())
	}

	return st, nil
}
