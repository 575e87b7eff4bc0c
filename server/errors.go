package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/katalvlaran/lvtrace/core"
	"github.com/katalvlaran/lvtrace/dijkstra"
	"github.com/katalvlaran/lvtrace/graphio"
	"github.com/katalvlaran/lvtrace/prim_kruskal"
)

// Error kinds reported in the "error" field of a failure response.
const (
	KindInvalidGraph   = "InvalidGraph"
	KindInvalidStart   = "InvalidStart"
	KindMissingSource  = "MissingSource"
	KindUnknownSource  = "UnknownSource"
	KindInvalidRequest = "InvalidRequest"
	KindInternal       = "InternalError"
)

// errInvalidRequest marks request bodies that are not a well-formed request object.
var errInvalidRequest = errors.New("server: invalid request")

// ErrorResponse is the body of every failure response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// classify maps an engine or decoding error to an HTTP status and error kind.
func classify(err error) (int, string) {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.Is(err, dijkstra.ErrMissingSource):
		return http.StatusBadRequest, KindMissingSource
	case errors.Is(err, dijkstra.ErrUnknownSource):
		return http.StatusBadRequest, KindUnknownSource
	case errors.Is(err, prim_kruskal.ErrInvalidStart):
		return http.StatusBadRequest, KindInvalidStart
	case errors.Is(err, core.ErrInvalidGraph):
		return http.StatusBadRequest, KindInvalidGraph
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge, KindInvalidRequest
	case errors.Is(err, errInvalidRequest), errors.Is(err, graphio.ErrSyntax):
		return http.StatusBadRequest, KindInvalidRequest
	default:
		return http.StatusInternalServerError, KindInternal
	}
}

// decodeRequest reads a JSON request object into dst.
func decodeRequest(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return err
		}
		return fmt.Errorf("%w: %v", errInvalidRequest, err)
	}

	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
