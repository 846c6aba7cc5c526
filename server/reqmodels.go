package server

import (
	"time"

	"github.com/maybell/parlance/internal/command"
	"github.com/maybell/parlance/internal/world"
)

// CommandRequest is the body of a request to parse a command against a
// session.
type CommandRequest struct {
	Input string `json:"input"`
}

// CommandResponse is the result of a successfully parsed command.
type CommandResponse struct {
	Command command.Command `json:"command"`
}

// TeachRequest is the body of a request to add a vocabulary alias to a
// session.
type TeachRequest struct {
	Alias     string `json:"alias"`
	Canonical string `json:"canonical"`
}

// KindRequest is the body of a request to set an object's kind.
type KindRequest struct {
	Kind string `json:"kind"`
}

// PropertyRequest is the body of a request to set a property on an object.
// Value must be a string, a boolean, or an integral number.
type PropertyRequest struct {
	Value interface{} `json:"value"`
}

// RelationRequest is the body of a request to add or remove a relation
// triple.
type RelationRequest struct {
	Name    string `json:"name"`
	Subject string `json:"subject"`
	Object  string `json:"object"`
}

// SessionResponse is the representation of a session returned by session
// read endpoints.
type SessionResponse struct {
	ID      string    `json:"id"`
	Created time.Time `json:"created"`

	// Words is the number of words the session's vocabulary knows.
	Words int `json:"words"`

	// Objects is the number of objects in the session's world model.
	Objects int `json:"objects"`

	// Relations is the number of relation triples in the session's world
	// model.
	Relations int `json:"relations"`
}

// RelatedResponse is the result of querying a relation.
type RelatedResponse struct {
	Objects []string `json:"objects"`
}

// RelationsResponse is the full dump of a session's relation triples.
type RelationsResponse struct {
	Relations []world.Triple `json:"relations"`
}

// InfoResponse is the response to a version info request.
type InfoResponse struct {
	Version       string `json:"version"`
	ServerVersion string `json:"server_version"`
}
