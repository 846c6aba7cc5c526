package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
)

// ErrorResponse is the body returned from any endpoint that results in a
// non-2xx status.
type ErrorResponse struct {
	Error  string `json:"error"`
	Status int    `json:"status"`

	// Suggestion is set when the error was an unknown verb and a similar
	// known word exists.
	Suggestion string `json:"suggestion,omitempty"`

	// TokenIndex is set when the error can be pinned to a specific token of
	// the submitted input. It is 0-based and -1 when not applicable.
	TokenIndex int `json:"token_index,omitempty"`
}

// EndpointResult is the result of an endpoint call. It bundles the status,
// response body, and log messages so the response writing and logging can
// happen in one place.
type EndpointResult struct {
	isErr       bool
	isJSON      bool
	status      int
	resp        interface{}
	internalMsg string
}

func jsonOK(respObj interface{}, internalMsg string, v ...interface{}) EndpointResult {
	return jsonResponse(http.StatusOK, respObj, internalMsg, v...)
}

func jsonCreated(respObj interface{}, internalMsg string, v ...interface{}) EndpointResult {
	return jsonResponse(http.StatusCreated, respObj, internalMsg, v...)
}

func jsonNoContent(internalMsg string, v ...interface{}) EndpointResult {
	return jsonResponse(http.StatusNoContent, nil, internalMsg, v...)
}

func jsonNotFound() EndpointResult {
	return jsonErr(http.StatusNotFound, "The requested resource was not found", "not found")
}

func jsonBadRequest(userReason string, internalMsg string, v ...interface{}) EndpointResult {
	return jsonErr(http.StatusBadRequest, userReason, internalMsg, v...)
}

func jsonMethodNotAllowed(req *http.Request) EndpointResult {
	userReason := fmt.Sprintf("Method %s is not allowed for %s", req.Method, req.URL.Path)
	return jsonErr(http.StatusMethodNotAllowed, userReason, userReason)
}

func jsonInternalServerError(internalMsg string, v ...interface{}) EndpointResult {
	return jsonErr(http.StatusInternalServerError, "An internal server error occurred", internalMsg, v...)
}

func jsonResponse(status int, respObj interface{}, internalMsg string, v ...interface{}) EndpointResult {
	return EndpointResult{
		isJSON:      true,
		status:      status,
		resp:        respObj,
		internalMsg: fmt.Sprintf(internalMsg, v...),
	}
}

func jsonErr(status int, userReason string, internalMsg string, v ...interface{}) EndpointResult {
	return EndpointResult{
		isErr:  true,
		isJSON: true,
		status: status,
		resp: ErrorResponse{
			Error:      userReason,
			Status:     status,
			TokenIndex: -1,
		},
		internalMsg: fmt.Sprintf(internalMsg, v...),
	}
}

// jsonParseErr builds a 400 from a command parse failure, carrying the
// user-facing message plus whatever diagnostics the error includes.
func jsonParseErr(userReason string, suggestion string, tokenIndex int, internalMsg string, v ...interface{}) EndpointResult {
	return EndpointResult{
		isErr:  true,
		isJSON: true,
		status: http.StatusBadRequest,
		resp: ErrorResponse{
			Error:      userReason,
			Status:     http.StatusBadRequest,
			Suggestion: suggestion,
			TokenIndex: tokenIndex,
		},
		internalMsg: fmt.Sprintf(internalMsg, v...),
	}
}

func (r EndpointResult) writeResponse(w http.ResponseWriter, req *http.Request) {
	// if this hasn't been properly created, panic
	if r.status == 0 {
		panic("result not populated")
	}

	var respJSON []byte
	if r.isJSON && r.status != http.StatusNoContent {
		var err error
		respJSON, err = json.Marshal(r.resp)
		if err != nil {
			res := jsonInternalServerError("could not marshal JSON response: " + err.Error())
			res.writeResponse(w, req)
			return
		}
	}

	if r.isJSON {
		w.Header().Set("Content-Type", "application/json")
	}

	w.WriteHeader(r.status)

	if r.isJSON && r.status != http.StatusNoContent {
		w.Write(respJSON)
	}

	if r.isErr {
		logHTTPResponse("ERROR", req, r.status, r.internalMsg)
	} else {
		logHTTPResponse("DEBUG", req, r.status, r.internalMsg)
	}
}

func logHTTPResponse(level string, req *http.Request, respStatus int, msg string) {
	if len(level) > 5 {
		level = level[0:5]
	}
	for len(level) < 5 {
		level += " "
	}

	// we don't really care about the ephemeral port from the client end
	remoteAddrParts := strings.SplitN(req.RemoteAddr, ":", 2)
	remoteIP := remoteAddrParts[0]

	log.Printf("%s %s %s %s: HTTP-%d %s", level, remoteIP, req.Method, req.URL.Path, respStatus, msg)
}
