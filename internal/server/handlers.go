package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"
)

// maxRequestBytes bounds request bodies; class lists are short.
const maxRequestBytes = 1 << 20

type classesRequest struct {
	Classes []string `json:"classes"`
}

type mergeResponse struct {
	Classes string `json:"classes"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleMerge(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeClasses(w, r)
	if !ok {
		return
	}
	writeJSON(w, r, http.StatusOK, mergeResponse{
		Classes: s.merger.Merge(strings.Join(req.Classes, " ")),
	})
}

func (s *Server) handleExplain(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeClasses(w, r)
	if !ok {
		return
	}
	writeJSON(w, r, http.StatusOK, s.merger.Explain(strings.Join(req.Classes, " ")))
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func decodeClasses(w http.ResponseWriter, r *http.Request) (classesRequest, bool) {
	var req classesRequest
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes))
	if err := decoder.Decode(&req); err != nil {
		writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error()})
		return classesRequest{}, false
	}
	return req, true
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("failed to encode response")
	}
}
