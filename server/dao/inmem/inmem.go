// Package inmem provides an in-memory implementation of the server DAO.
// Nothing is persisted across restarts; it is suitable for testing and
// throwaway servers.
package inmem

import "github.com/maybell/parlance/server/dao"

// NewDatastore creates a dao.Store with fresh in-memory repositories.
func NewDatastore() dao.Store {
	return dao.Store{
		Sessions: NewSessionsRepository(),
	}
}
