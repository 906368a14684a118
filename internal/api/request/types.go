package request

// LoginRequest is the request body for logging in
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// CreateRecordRequest is the request body for creating a patient record.
// Dates are ISO YYYY-MM-DD. The initial evolution text is optional.
type CreateRecordRequest struct {
	Name        string `json:"nome"`
	BirthDate   string `json:"data_nascimento"`
	Profession  string `json:"profissao,omitempty"`
	Diagnosis   string `json:"diagnostico"`
	VisitDate   string `json:"data_atendimento,omitempty"`
	InitialNote string `json:"evolucao_inicial,omitempty"`
}

// AddNoteRequest is the request body for appending an evolution entry
type AddNoteRequest struct {
	Text string `json:"texto"`
}

// AddUserRequest is the request body for adding a login credential
type AddUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
