package model

// Date and timestamp layouts used in the persisted documents.
// Birth and visit dates are ISO, the creation date and evolution
// timestamps use the clinic's display formats. The three formats are
// deliberately distinct and are stored as-is; converting between them
// is a presentation concern.
const (
	DateLayout      = "2006-01-02"
	CreatedAtLayout = "02-01-2006"
	NoteTimeLayout  = "02-01-2006 15:04:05"
)

// PatientRecord is a single patient's case file.
// Field names on the wire are the clinic's Portuguese names.
type PatientRecord struct {
	ID         int    `json:"id"`
	Name       string `json:"nome"`
	BirthDate  string `json:"data_nascimento"` // ISO YYYY-MM-DD
	Profession string `json:"profissao"`
	Diagnosis  string `json:"diagnostico"`
	Notes      []Note `json:"evolucao"`
	VisitDate  string `json:"data_atendimento"` // ISO YYYY-MM-DD, may be empty
	CreatedAt  string `json:"data_criacao"`     // DD-MM-YYYY, set once at creation
}

// Note is a timestamped free-text progress entry ("evolution").
// A record's notes are append-only; insertion order is chronological order.
type Note struct {
	Timestamp string `json:"data"` // DD-MM-YYYY HH:MM:SS
	Text      string `json:"texto"`
}

// FindRecord returns the first record matching id, or nil.
// Lookup is strictly by the id field, never by position in the slice.
func FindRecord(records []PatientRecord, id int) *PatientRecord {
	for i := range records {
		if records[i].ID == id {
			return &records[i]
		}
	}
	return nil
}
