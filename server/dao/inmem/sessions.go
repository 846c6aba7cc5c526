package inmem

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/maybell/parlance/internal/util"
	"github.com/maybell/parlance/server/dao"
)

// NewSessionsRepository creates an empty in-memory session repository.
func NewSessionsRepository() *InMemorySessionsRepository {
	return &InMemorySessionsRepository{
		seshes: make(map[uuid.UUID]dao.Session),
	}
}

// InMemorySessionsRepository implements dao.SessionRepository on a plain
// map. It relies on the caller to serialize access, same as every session
// store in the server does.
type InMemorySessionsRepository struct {
	seshes map[uuid.UUID]dao.Session
}

func (imsr *InMemorySessionsRepository) Close() error {
	return nil
}

func (imsr *InMemorySessionsRepository) Create(ctx context.Context, s dao.Session) (dao.Session, error) {
	newUUID, err := uuid.NewRandom()
	if err != nil {
		return dao.Session{}, fmt.Errorf("could not generate ID: %w", err)
	}

	s.ID = newUUID
	s.Created = time.Now()

	imsr.seshes[s.ID] = s

	return s, nil
}

func (imsr *InMemorySessionsRepository) GetByID(ctx context.Context, id uuid.UUID) (dao.Session, error) {
	s, ok := imsr.seshes[id]
	if !ok {
		return dao.Session{}, dao.ErrNotFound
	}

	return s, nil
}

func (imsr *InMemorySessionsRepository) GetAll(ctx context.Context) ([]dao.Session, error) {
	all := make([]dao.Session, 0, len(imsr.seshes))

	for k := range imsr.seshes {
		all = append(all, imsr.seshes[k])
	}

	all = util.SortBy(all, func(l, r dao.Session) bool {
		return l.ID.String() < r.ID.String()
	})

	return all, nil
}

func (imsr *InMemorySessionsRepository) Update(ctx context.Context, id uuid.UUID, s dao.Session) (dao.Session, error) {
	existing, ok := imsr.seshes[id]
	if !ok {
		return dao.Session{}, dao.ErrNotFound
	}

	s.ID = existing.ID
	s.Created = existing.Created
	imsr.seshes[id] = s

	return s, nil
}

func (imsr *InMemorySessionsRepository) Delete(ctx context.Context, id uuid.UUID) (dao.Session, error) {
	s, ok := imsr.seshes[id]
	if !ok {
		return dao.Session{}, dao.ErrNotFound
	}

	delete(imsr.seshes, id)

	return s, nil
}
