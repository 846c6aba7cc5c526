package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/maybell/parlance"
	"github.com/maybell/parlance/internal/perrors"
	"github.com/maybell/parlance/internal/version"
	"github.com/maybell/parlance/internal/world"
	"github.com/maybell/parlance/server/dao"
)

func parseJSONRequest(req *http.Request, into interface{}) error {
	bodyData, err := io.ReadAll(req.Body)
	if err != nil {
		return fmt.Errorf("could not read request body: %w", err)
	}

	err = json.Unmarshal(bodyData, into)
	if err != nil {
		return fmt.Errorf("malformed JSON in request")
	}

	return nil
}

func sessionResponse(stored dao.Session, sesh *parlance.Session) SessionResponse {
	return SessionResponse{
		ID:        stored.ID.String(),
		Created:   stored.Created,
		Words:     len(sesh.Vocabulary().Words()),
		Objects:   len(sesh.World().Objects()),
		Relations: len(sesh.World().Relations()),
	}
}

func (ps *ParlanceServer) epCreateSession(req *http.Request) EndpointResult {
	ps.mtx.Lock()
	defer ps.mtx.Unlock()

	sesh := parlance.NewSession()

	stored, err := ps.db.Sessions.Create(req.Context(), dao.Session{State: sesh.State()})
	if err != nil {
		return jsonInternalServerError("could not create session: %v", err)
	}

	ps.live[stored.ID] = sesh

	resp := sessionResponse(stored, sesh)
	return jsonCreated(resp, "session %s created", stored.ID)
}

func (ps *ParlanceServer) epListSessions(req *http.Request) EndpointResult {
	ps.mtx.Lock()
	defer ps.mtx.Unlock()

	all, err := ps.db.Sessions.GetAll(req.Context())
	if err != nil {
		return jsonInternalServerError("could not list sessions: %v", err)
	}

	resp := make([]SessionResponse, 0, len(all))
	for _, stored := range all {
		sesh, ok := ps.live[stored.ID]
		if !ok {
			sesh = parlance.NewSessionFromState(stored.State)
			ps.live[stored.ID] = sesh
		}
		resp = append(resp, sessionResponse(stored, sesh))
	}

	return jsonOK(resp, "listed %d session(s)", len(resp))
}

func (ps *ParlanceServer) epGetSession(req *http.Request) EndpointResult {
	id, err := requireSessionID(req)
	if err != nil {
		return jsonBadRequest(err.Error(), err.Error())
	}

	ps.mtx.Lock()
	defer ps.mtx.Unlock()

	sesh, stored, err := ps.session(req.Context(), id)
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			return jsonNotFound()
		}
		return jsonInternalServerError("could not get session %s: %v", id, err)
	}

	return jsonOK(sessionResponse(stored, sesh), "session %s retrieved", id)
}

func (ps *ParlanceServer) epDeleteSession(req *http.Request) EndpointResult {
	id, err := requireSessionID(req)
	if err != nil {
		return jsonBadRequest(err.Error(), err.Error())
	}

	ps.mtx.Lock()
	defer ps.mtx.Unlock()

	_, err = ps.db.Sessions.Delete(req.Context(), id)
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			return jsonNotFound()
		}
		return jsonInternalServerError("could not delete session %s: %v", id, err)
	}

	delete(ps.live, id)

	return jsonNoContent("session %s deleted", id)
}

func (ps *ParlanceServer) epParseCommand(req *http.Request) EndpointResult {
	id, err := requireSessionID(req)
	if err != nil {
		return jsonBadRequest(err.Error(), err.Error())
	}

	var body CommandRequest
	if err := parseJSONRequest(req, &body); err != nil {
		return jsonBadRequest(err.Error(), err.Error())
	}

	ps.mtx.Lock()
	defer ps.mtx.Unlock()

	sesh, _, err := ps.session(req.Context(), id)
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			return jsonNotFound()
		}
		return jsonInternalServerError("could not get session %s: %v", id, err)
	}

	cmd, err := sesh.Parse(body.Input)
	if err != nil {
		msg := perrors.GameMessage(err)
		return jsonParseErr(msg, perrors.SuggestionFor(err), perrors.TokenIndex(err),
			"session %s: could not parse %q: %v", id, body.Input, err)
	}

	return jsonOK(CommandResponse{Command: cmd}, "session %s: parsed %q as %s", id, body.Input, cmd.Pattern)
}

func (ps *ParlanceServer) epTeachWord(req *http.Request) EndpointResult {
	id, err := requireSessionID(req)
	if err != nil {
		return jsonBadRequest(err.Error(), err.Error())
	}

	var body TeachRequest
	if err := parseJSONRequest(req, &body); err != nil {
		return jsonBadRequest(err.Error(), err.Error())
	}
	if body.Alias == "" || body.Canonical == "" {
		return jsonBadRequest("alias and canonical must both be set", "missing alias or canonical")
	}

	ps.mtx.Lock()
	defer ps.mtx.Unlock()

	sesh, stored, err := ps.session(req.Context(), id)
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			return jsonNotFound()
		}
		return jsonInternalServerError("could not get session %s: %v", id, err)
	}

	if err := sesh.Teach(body.Alias, body.Canonical); err != nil {
		return jsonBadRequest(perrors.GameMessage(err), "session %s: teach %q -> %q: %v", id, body.Alias, body.Canonical, err)
	}

	if err := ps.persist(req.Context(), stored, sesh); err != nil {
		return jsonInternalServerError("could not persist session %s: %v", id, err)
	}

	return jsonNoContent("session %s: taught %q -> %q", id, body.Alias, body.Canonical)
}

func (ps *ParlanceServer) epSetKind(req *http.Request) EndpointResult {
	id, err := requireSessionID(req)
	if err != nil {
		return jsonBadRequest(err.Error(), err.Error())
	}
	objID := chi.URLParam(req, "objID")

	var body KindRequest
	if err := parseJSONRequest(req, &body); err != nil {
		return jsonBadRequest(err.Error(), err.Error())
	}
	if body.Kind == "" {
		return jsonBadRequest("kind must be set", "missing kind")
	}

	ps.mtx.Lock()
	defer ps.mtx.Unlock()

	sesh, stored, err := ps.session(req.Context(), id)
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			return jsonNotFound()
		}
		return jsonInternalServerError("could not get session %s: %v", id, err)
	}

	sesh.World().SetKind(objID, body.Kind)

	if err := ps.persist(req.Context(), stored, sesh); err != nil {
		return jsonInternalServerError("could not persist session %s: %v", id, err)
	}

	return jsonNoContent("session %s: object %q is now kind %q", id, objID, body.Kind)
}

func (ps *ParlanceServer) epSetProperty(req *http.Request) EndpointResult {
	id, err := requireSessionID(req)
	if err != nil {
		return jsonBadRequest(err.Error(), err.Error())
	}
	objID := chi.URLParam(req, "objID")
	propName := chi.URLParam(req, "name")

	var body PropertyRequest
	if err := parseJSONRequest(req, &body); err != nil {
		return jsonBadRequest(err.Error(), err.Error())
	}

	val, err := world.FromNative(body.Value)
	if err != nil {
		return jsonBadRequest(err.Error(), "bad property value: %v", err)
	}

	ps.mtx.Lock()
	defer ps.mtx.Unlock()

	sesh, stored, err := ps.session(req.Context(), id)
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			return jsonNotFound()
		}
		return jsonInternalServerError("could not get session %s: %v", id, err)
	}

	sesh.World().SetProperty(objID, propName, val)

	if err := ps.persist(req.Context(), stored, sesh); err != nil {
		return jsonInternalServerError("could not persist session %s: %v", id, err)
	}

	return jsonNoContent("session %s: set %q.%q = %s", id, objID, propName, val)
}

func (ps *ParlanceServer) epGetRelations(req *http.Request) EndpointResult {
	id, err := requireSessionID(req)
	if err != nil {
		return jsonBadRequest(err.Error(), err.Error())
	}

	ps.mtx.Lock()
	defer ps.mtx.Unlock()

	sesh, _, err := ps.session(req.Context(), id)
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			return jsonNotFound()
		}
		return jsonInternalServerError("could not get session %s: %v", id, err)
	}

	rels := sesh.World().Relations()
	return jsonOK(RelationsResponse{Relations: rels}, "session %s: %d relation(s)", id, len(rels))
}

func (ps *ParlanceServer) epAddRelation(req *http.Request) EndpointResult {
	id, err := requireSessionID(req)
	if err != nil {
		return jsonBadRequest(err.Error(), err.Error())
	}

	var body RelationRequest
	if err := parseJSONRequest(req, &body); err != nil {
		return jsonBadRequest(err.Error(), err.Error())
	}
	if body.Name == "" || body.Subject == "" || body.Object == "" {
		return jsonBadRequest("name, subject, and object must all be set", "missing relation field")
	}

	ps.mtx.Lock()
	defer ps.mtx.Unlock()

	sesh, stored, err := ps.session(req.Context(), id)
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			return jsonNotFound()
		}
		return jsonInternalServerError("could not get session %s: %v", id, err)
	}

	sesh.World().Relate(body.Name, body.Subject, body.Object)

	if err := ps.persist(req.Context(), stored, sesh); err != nil {
		return jsonInternalServerError("could not persist session %s: %v", id, err)
	}

	return jsonNoContent("session %s: related %s(%s, %s)", id, body.Name, body.Subject, body.Object)
}

func (ps *ParlanceServer) epRemoveRelation(req *http.Request) EndpointResult {
	id, err := requireSessionID(req)
	if err != nil {
		return jsonBadRequest(err.Error(), err.Error())
	}

	var body RelationRequest
	if err := parseJSONRequest(req, &body); err != nil {
		return jsonBadRequest(err.Error(), err.Error())
	}

	ps.mtx.Lock()
	defer ps.mtx.Unlock()

	sesh, stored, err := ps.session(req.Context(), id)
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			return jsonNotFound()
		}
		return jsonInternalServerError("could not get session %s: %v", id, err)
	}

	sesh.World().Unrelate(body.Name, body.Subject, body.Object)

	if err := ps.persist(req.Context(), stored, sesh); err != nil {
		return jsonInternalServerError("could not persist session %s: %v", id, err)
	}

	return jsonNoContent("session %s: unrelated %s(%s, %s)", id, body.Name, body.Subject, body.Object)
}

func (ps *ParlanceServer) epGetRelated(req *http.Request) EndpointResult {
	id, err := requireSessionID(req)
	if err != nil {
		return jsonBadRequest(err.Error(), err.Error())
	}
	relName := chi.URLParam(req, "name")
	subject := chi.URLParam(req, "subject")

	ps.mtx.Lock()
	defer ps.mtx.Unlock()

	sesh, _, err := ps.session(req.Context(), id)
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			return jsonNotFound()
		}
		return jsonInternalServerError("could not get session %s: %v", id, err)
	}

	objects := sesh.World().Related(relName, subject)
	if objects == nil {
		objects = []string{}
	}

	return jsonOK(RelatedResponse{Objects: objects}, "session %s: %s(%s) has %d object(s)", id, relName, subject, len(objects))
}

func (ps *ParlanceServer) epGetInfo(req *http.Request) EndpointResult {
	resp := InfoResponse{
		Version:       version.Current,
		ServerVersion: version.ServerCurrent,
	}
	return jsonOK(resp, "info queried")
}
