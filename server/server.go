// Package server provides an HTTP REST frontend to parlance sessions. Each
// session holds a vocabulary and a world model and is persisted through a
// dao.Store so it survives restarts.
package server

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/maybell/parlance"
	"github.com/maybell/parlance/server/dao"
)

// ParlanceServer is an HTTP server that hosts parsing sessions. Use New to
// create one.
type ParlanceServer struct {
	db dao.Store

	// live holds the in-memory Session for every session that has been
	// touched since startup. Guarded by mtx, as is every read or mutation
	// of a Session obtained from it.
	live map[uuid.UUID]*parlance.Session
	mtx  sync.Mutex
}

// New creates a new ParlanceServer connected to the persistence layer given
// in cfg.
func New(cfg Database) (*ParlanceServer, error) {
	db, err := cfg.Connect()
	if err != nil {
		return nil, fmt.Errorf("connect DB: %w", err)
	}

	return &ParlanceServer{
		db:   db,
		live: map[uuid.UUID]*parlance.Session{},
	}, nil
}

// ServeForever begins listening on the given address and port. If address is
// blank, it is interpreted as "localhost". This function will block until the
// server stops serving.
func (ps *ParlanceServer) ServeForever(address string, port int) error {
	if address == "" {
		address = "localhost"
	}
	if port == 0 {
		port = 8080
	}

	listenAddress := fmt.Sprintf("%s:%d", address, port)
	return http.ListenAndServe(listenAddress, ps.Router())
}

// Router returns the configured HTTP routes of the server as an http.Handler.
func (ps *ParlanceServer) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)

	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		jsonMethodNotAllowed(req).writeResponse(w, req)
	})
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		jsonNotFound().writeResponse(w, req)
	})

	r.Route("/sessions", func(r chi.Router) {
		r.Post("/", ps.ep(ps.epCreateSession))
		r.Get("/", ps.ep(ps.epListSessions))

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", ps.ep(ps.epGetSession))
			r.Delete("/", ps.ep(ps.epDeleteSession))

			r.Post("/commands", ps.ep(ps.epParseCommand))
			r.Post("/vocabulary", ps.ep(ps.epTeachWord))

			r.Put("/objects/{objID}/kind", ps.ep(ps.epSetKind))
			r.Put("/objects/{objID}/properties/{name}", ps.ep(ps.epSetProperty))

			r.Get("/relations", ps.ep(ps.epGetRelations))
			r.Post("/relations", ps.ep(ps.epAddRelation))
			r.Delete("/relations", ps.ep(ps.epRemoveRelation))
			r.Get("/relations/{name}/{subject}", ps.ep(ps.epGetRelated))
		})
	})

	r.Get("/info", ps.ep(ps.epGetInfo))

	return r
}

// Close releases any resources held open by the server.
func (ps *ParlanceServer) Close() error {
	return ps.db.Close()
}

type endpointFunc func(req *http.Request) EndpointResult

func (ps *ParlanceServer) ep(fn endpointFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		fn(req).writeResponse(w, req)
	}
}

// requireSessionID pulls the {id} URL parameter and parses it as a UUID.
func requireSessionID(req *http.Request) (uuid.UUID, error) {
	idStr := chi.URLParam(req, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.UUID{}, fmt.Errorf("not a valid session ID: %q", idStr)
	}
	return id, nil
}

// session returns the live Session for the given ID, loading it from the
// persistence layer if it has not been touched yet. Caller must hold mtx.
func (ps *ParlanceServer) session(ctx context.Context, id uuid.UUID) (*parlance.Session, dao.Session, error) {
	stored, err := ps.db.Sessions.GetByID(ctx, id)
	if err != nil {
		return nil, dao.Session{}, err
	}

	sesh, ok := ps.live[id]
	if !ok {
		sesh = parlance.NewSessionFromState(stored.State)
		ps.live[id] = sesh
	}

	return sesh, stored, nil
}

// persist writes the current state of a live session back through the DAO.
// Caller must hold mtx.
func (ps *ParlanceServer) persist(ctx context.Context, stored dao.Session, sesh *parlance.Session) error {
	stored.State = sesh.State()
	_, err := ps.db.Sessions.Update(ctx, stored.ID, stored)
	return err
}
