package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Result types mirror the API response shapes

// AuthResult is the login/whoami response
type AuthResult struct {
	Username     string `json:"username"`
	IsAdmin      bool   `json:"is_admin"`
	SessionToken string `json:"session_token"`
}

// NoteResult is one evolution entry
type NoteResult struct {
	Timestamp string `json:"data"`
	Text      string `json:"texto"`
}

// RecordResult is a patient record response
type RecordResult struct {
	ID         int          `json:"id"`
	Name       string       `json:"nome"`
	BirthDate  string       `json:"data_nascimento"`
	Age        string       `json:"idade"`
	Profession string       `json:"profissao"`
	Diagnosis  string       `json:"diagnostico"`
	Notes      []NoteResult `json:"evolucao"`
	VisitDate  string       `json:"data_atendimento"`
	CreatedAt  string       `json:"data_criacao"`
}

// RecordListResult is the record listing response
type RecordListResult struct {
	Records []RecordResult `json:"records"`
}

// DeletedRecordResult is the delete confirmation response
type DeletedRecordResult struct {
	ID   int    `json:"id"`
	Name string `json:"nome"`
}

// UserListResult is the username listing response
type UserListResult struct {
	Usernames []string `json:"usernames"`
}

// HealthResult is the health check response
type HealthResult struct {
	Status string `json:"status"`
}

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case AuthResult:
		o.printAuthResult(v)
	case RecordResult:
		o.printRecord(v)
	case RecordListResult:
		o.printRecordList(v)
	case DeletedRecordResult:
		fmt.Printf("Record %d (%s) deleted\n", v.ID, v.Name)
	case UserListResult:
		o.printUserList(v)
	case HealthResult:
		fmt.Printf("Status: %s\n", v.Status)
	default:
		o.printJSON(data)
	}
}

func (o *Output) printAuthResult(a AuthResult) {
	fmt.Printf("Logged in as: %s\n", a.Username)
	if a.IsAdmin {
		fmt.Println("Role: administrator")
	}
}

func (o *Output) printRecord(r RecordResult) {
	fmt.Printf("Record #%d: %s\n", r.ID, r.Name)
	fmt.Printf("  Born: %s (age %s)\n", r.BirthDate, r.Age)
	if r.Profession != "" {
		fmt.Printf("  Profession: %s\n", r.Profession)
	}
	fmt.Printf("  Diagnosis: %s\n", r.Diagnosis)
	if r.VisitDate != "" {
		fmt.Printf("  Visit: %s\n", r.VisitDate)
	}
	fmt.Printf("  Created: %s\n", r.CreatedAt)

	if len(r.Notes) == 0 {
		fmt.Println("  No evolution entries yet")
		return
	}

	fmt.Println("  Evolution:")
	for _, n := range r.Notes {
		fmt.Printf("    [%s] %s\n", n.Timestamp, n.Text)
	}
}

func (o *Output) printRecordList(l RecordListResult) {
	if len(l.Records) == 0 {
		fmt.Println("No records registered yet")
		return
	}

	fmt.Printf("%-4s %-30s %-5s %-20s %s\n", "ID", "NAME", "AGE", "PROFESSION", "DIAGNOSIS")
	for _, r := range l.Records {
		diagnosis := r.Diagnosis
		if len(diagnosis) > 40 {
			diagnosis = diagnosis[:37] + "..."
		}
		fmt.Printf("%-4d %-30s %-5s %-20s %s\n", r.ID, truncate(r.Name, 30), r.Age, truncate(r.Profession, 20), diagnosis)
	}
}

func (o *Output) printUserList(l UserListResult) {
	fmt.Println("Active users:")
	for _, name := range l.Usernames {
		fmt.Printf("  - %s\n", name)
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return strings.TrimSpace(s[:max-3]) + "..."
}
