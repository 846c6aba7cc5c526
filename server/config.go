package server

import (
	"fmt"
	"strings"

	"github.com/maybell/parlance/server/dao"
	"github.com/maybell/parlance/server/dao/inmem"
	"github.com/maybell/parlance/server/dao/sqlite"
)

// DBType is the type of a Database connection.
type DBType string

func (dbt DBType) String() string {
	return string(dbt)
}

const (
	DatabaseNone     DBType = "none"
	DatabaseSQLite   DBType = "sqlite"
	DatabaseInMemory DBType = "inmem"
)

// ParseDBType parses a string found in a connection string into a DBType.
func ParseDBType(s string) (DBType, error) {
	sLower := strings.ToLower(s)

	switch sLower {
	case DatabaseSQLite.String():
		return DatabaseSQLite, nil
	case DatabaseInMemory.String():
		return DatabaseInMemory, nil
	default:
		return DatabaseNone, fmt.Errorf("DB type not one of 'sqlite' or 'inmem': %q", s)
	}
}

// Database contains configuration settings for connecting to a persistence
// layer.
type Database struct {
	// Type is the type of database the config refers to. It also determines
	// which of its other fields are valid.
	Type DBType

	// DataDir is the path on disk to a directory to use to store data in.
	// This is only applicable for the SQLite DB type.
	DataDir string
}

// ParseDBConnString parses a DB connection string of the form
// "DRIVER[:PARAMS]" into a Database config.
func ParseDBConnString(s string) (Database, error) {
	if s == "" {
		return Database{Type: DatabaseInMemory}, nil
	}

	parts := strings.SplitN(s, ":", 2)

	dbType, err := ParseDBType(parts[0])
	if err != nil {
		return Database{}, err
	}

	db := Database{Type: dbType}

	if dbType == DatabaseSQLite {
		if len(parts) < 2 || parts[1] == "" {
			return Database{}, fmt.Errorf("sqlite DB requires a data directory, such as \"sqlite:path/to/dir\"")
		}
		db.DataDir = parts[1]
	}

	return db, nil
}

// Connect performs all logic needed to connect to the configured DB and
// initialize the store for use.
func (db Database) Connect() (dao.Store, error) {
	switch db.Type {
	case DatabaseInMemory:
		return inmem.NewDatastore(), nil
	case DatabaseSQLite:
		store, err := sqlite.NewDatastore(db.DataDir)
		if err != nil {
			return dao.Store{}, fmt.Errorf("could not open sqlite DB in %s: %w", db.DataDir, err)
		}
		return store, nil
	default:
		return dao.Store{}, fmt.Errorf("unknown database type: %v", db.Type)
	}
}
