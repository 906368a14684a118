package response

import (
	"time"

	"prontuario/internal/model"
	"prontuario/internal/services/auth"
	"prontuario/internal/services/records"
)

// Note represents an evolution entry in API responses
type Note struct {
	Timestamp string `json:"data"`
	Text      string `json:"texto"`
}

// Record represents a patient record in API responses. Wire names match the
// persisted document; Age is computed for display and not persisted.
type Record struct {
	ID         int    `json:"id"`
	Name       string `json:"nome"`
	BirthDate  string `json:"data_nascimento"`
	Age        string `json:"idade"`
	Profession string `json:"profissao"`
	Diagnosis  string `json:"diagnostico"`
	Notes      []Note `json:"evolucao"`
	VisitDate  string `json:"data_atendimento"`
	CreatedAt  string `json:"data_criacao"`
}

// RecordFromModel converts a model.PatientRecord to a response Record,
// computing the age at today
func RecordFromModel(r *model.PatientRecord, today time.Time) Record {
	notes := make([]Note, len(r.Notes))
	for i, n := range r.Notes {
		notes[i] = Note{Timestamp: n.Timestamp, Text: n.Text}
	}

	return Record{
		ID:         r.ID,
		Name:       r.Name,
		BirthDate:  r.BirthDate,
		Age:        records.AgeLabel(r.BirthDate, today),
		Profession: r.Profession,
		Diagnosis:  r.Diagnosis,
		Notes:      notes,
		VisitDate:  r.VisitDate,
		CreatedAt:  r.CreatedAt,
	}
}

// RecordList is the response for listing records
type RecordList struct {
	Records []Record `json:"records"`
}

// RecordListFromModel converts a record collection
func RecordListFromModel(rs []model.PatientRecord, today time.Time) RecordList {
	out := make([]Record, len(rs))
	for i := range rs {
		out[i] = RecordFromModel(&rs[i], today)
	}
	return RecordList{Records: out}
}

// DeletedRecord is the response after deleting a record; the name is
// returned for confirmation messaging
type DeletedRecord struct {
	ID   int    `json:"id"`
	Name string `json:"nome"`
}

// AuthResponse is the response for the login endpoint
type AuthResponse struct {
	Username     string `json:"username"`
	IsAdmin      bool   `json:"is_admin"`
	SessionToken string `json:"session_token"`
}

// AuthResponseFromSession creates an AuthResponse from a session
func AuthResponseFromSession(s *auth.Session) AuthResponse {
	return AuthResponse{
		Username:     s.Username,
		IsAdmin:      s.IsAdmin(),
		SessionToken: s.Token,
	}
}

// UserList is the response for listing usernames
type UserList struct {
	Usernames []string `json:"usernames"`
}
