// Package server exposes validation and analysis over HTTP.
package server

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/aguilarcarboni/musical-grammar/analysis"
	"github.com/aguilarcarboni/musical-grammar/grammar"
	"github.com/aguilarcarboni/musical-grammar/model"
	"github.com/aguilarcarboni/musical-grammar/song"
)

// NewRouter wires the API routes. CORS wrapping happens in the serve command.
func NewRouter() *mux.Router {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/api/validate", handleValidate).Methods("POST")
	router.HandleFunc("/api/analyze", handleAnalyze).Methods("POST")
	return router
}

// beginRequest tags the response before anything is written: every endpoint
// answers JSON and carries a request id.
func beginRequest(w http.ResponseWriter) string {
	w.Header().Set("Content-Type", "application/json")
	id := uuid.New().String()
	w.Header().Set("X-Request-Id", id)
	return id
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: msg})
}

func handleValidate(w http.ResponseWriter, r *http.Request) {
	id := beginRequest(w)

	reqBody, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "could not read request body")
		return
	}
	var input model.ValidateRequestBody
	if err := json.Unmarshal(reqBody, &input); err != nil {
		writeError(w, http.StatusBadRequest, "could not unmarshal request body: "+err.Error())
		return
	}

	log.Printf("[%v] validate (%v bytes)", id, len(input.Song))

	res := model.ValidateResponse{Valid: true}
	if err := grammar.Validate(input.Song); err != nil {
		res = model.ValidateResponse{Valid: false, Error: err.Error()}
	}
	json.NewEncoder(w).Encode(res)
}

func handleAnalyze(w http.ResponseWriter, r *http.Request) {
	id := beginRequest(w)

	reqBody, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "could not read request body")
		return
	}
	var input model.AnalyzeRequestBody
	if err := json.Unmarshal(reqBody, &input); err != nil {
		writeError(w, http.StatusBadRequest, "could not unmarshal request body: "+err.Error())
		return
	}

	log.Printf("[%v] analyze (%v bytes, layout %q)", id, len(input.Song), input.Layout)

	layout, err := analysis.ParseLayout(input.Layout)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := grammar.Validate(input.Song); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	sng, err := song.Parse(input.Song)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	rows, err := analysis.Expand(sng)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	notes, err := analysis.NoteLines(sng)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	res := model.AnalyzeResponse{
		Table:  analysis.FormatTable(rows, layout),
		Notes:  notes,
		Totals: [12]int(analysis.BuildHistogram(rows)),
	}
	json.NewEncoder(w).Encode(res)
}
