package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"prontuario/internal/api/request"
	"prontuario/internal/api/response"
	"prontuario/internal/dependencies/clock"
	"prontuario/internal/services/records"
)

// RecordHandler handles patient record endpoints
type RecordHandler struct {
	recordService *records.Service
	clock         clock.Clock
}

// NewRecordHandler creates a new record handler
func NewRecordHandler(recordService *records.Service, clk clock.Clock) *RecordHandler {
	return &RecordHandler{
		recordService: recordService,
		clock:         clk,
	}
}

// List handles GET /api/v1/records
func (h *RecordHandler) List(w http.ResponseWriter, r *http.Request) {
	rs, err := h.recordService.List(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.RecordListFromModel(rs, h.clock.Now()))
}

// Create handles POST /api/v1/records
func (h *RecordHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	record, err := h.recordService.Create(r.Context(), records.CreateInput{
		Name:        req.Name,
		BirthDate:   req.BirthDate,
		Profession:  req.Profession,
		Diagnosis:   req.Diagnosis,
		VisitDate:   req.VisitDate,
		InitialNote: req.InitialNote,
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.RecordFromModel(record, h.clock.Now()))
}

// Get handles GET /api/v1/records/{id}
func (h *RecordHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := recordID(w, r)
	if !ok {
		return
	}

	record, err := h.recordService.Get(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.RecordFromModel(record, h.clock.Now()))
}

// Delete handles DELETE /api/v1/records/{id}
func (h *RecordHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := recordID(w, r)
	if !ok {
		return
	}

	removed, err := h.recordService.Delete(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.DeletedRecord{
		ID:   removed.ID,
		Name: removed.Name,
	})
}

// AddNote handles POST /api/v1/records/{id}/evolutions
func (h *RecordHandler) AddNote(w http.ResponseWriter, r *http.Request) {
	id, ok := recordID(w, r)
	if !ok {
		return
	}

	var req request.AddNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	record, err := h.recordService.AddNote(r.Context(), id, req.Text)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.RecordFromModel(record, h.clock.Now()))
}

// recordID parses the {id} path variable, writing an error response when
// it is not a positive integer
func recordID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id < 1 {
		WriteError(w, NewInvalidRequestError("id must be a positive integer"))
		return 0, false
	}
	return id, true
}
