package records

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"prontuario/internal/dependencies/clock"
	"prontuario/internal/model"
	"prontuario/internal/storage"
)

// Service owns the collection of patient records. Every operation loads the
// collection fresh from storage, mutates it in memory, and persists the
// whole collection back; nothing is cached across calls.
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new records service
func New(storage storage.Storage, clk clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clk,
		logger:  logger,
	}
}

// CreateInput holds the fields for a new patient record. Dates are ISO
// YYYY-MM-DD. InitialNote is optional; when it trims to empty the record
// starts with no evolution entries.
type CreateInput struct {
	Name        string
	BirthDate   string
	Profession  string
	Diagnosis   string
	VisitDate   string
	InitialNote string
}

// List returns all records in creation order
func (s *Service) List(ctx context.Context) ([]model.PatientRecord, error) {
	return s.storage.LoadRecords(ctx)
}

// Get returns the record with the given id
func (s *Service) Get(ctx context.Context, id int) (*model.PatientRecord, error) {
	records, err := s.storage.LoadRecords(ctx)
	if err != nil {
		return nil, err
	}

	record := model.FindRecord(records, id)
	if record == nil {
		return nil, model.ErrRecordNotFound
	}
	return record, nil
}

// Create validates the input, assigns the next id, and persists the
// extended collection. The id is the count of current records plus one,
// assigned at creation time and immutable afterwards.
func (s *Service) Create(ctx context.Context, in CreateInput) (*model.PatientRecord, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, model.NewValidationError("nome")
	}
	if in.BirthDate == "" {
		return nil, model.NewValidationError("data_nascimento")
	}
	if _, err := time.Parse(model.DateLayout, in.BirthDate); err != nil {
		return nil, model.NewValidationError("data_nascimento")
	}
	diagnosis := strings.TrimSpace(in.Diagnosis)
	if diagnosis == "" {
		return nil, model.NewValidationError("diagnostico")
	}
	if in.VisitDate != "" {
		if _, err := time.Parse(model.DateLayout, in.VisitDate); err != nil {
			return nil, model.NewValidationError("data_atendimento")
		}
	}

	records, err := s.storage.LoadRecords(ctx)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()

	record := model.PatientRecord{
		ID:         len(records) + 1,
		Name:       name,
		BirthDate:  in.BirthDate,
		Profession: strings.TrimSpace(in.Profession),
		Diagnosis:  diagnosis,
		Notes:      []model.Note{},
		VisitDate:  in.VisitDate,
		CreatedAt:  now.Format(model.CreatedAtLayout),
	}

	if text := strings.TrimSpace(in.InitialNote); text != "" {
		record.Notes = append(record.Notes, model.Note{
			Timestamp: now.Format(model.NoteTimeLayout),
			Text:      text,
		})
	}

	records = append(records, record)
	if err := s.storage.SaveRecords(ctx, records); err != nil {
		return nil, err
	}

	s.logger.Info("record created",
		slog.Int("id", record.ID),
		slog.String("name", record.Name),
	)

	return &record, nil
}

// AddNote appends a timestamped evolution entry to the record with the
// given id and persists the whole collection.
func (s *Service) AddNote(ctx context.Context, id int, text string) (*model.PatientRecord, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, model.NewValidationError("texto")
	}

	records, err := s.storage.LoadRecords(ctx)
	if err != nil {
		return nil, err
	}

	record := model.FindRecord(records, id)
	if record == nil {
		return nil, model.ErrRecordNotFound
	}

	record.Notes = append(record.Notes, model.Note{
		Timestamp: s.clock.Now().Format(model.NoteTimeLayout),
		Text:      text,
	})

	if err := s.storage.SaveRecords(ctx, records); err != nil {
		return nil, err
	}

	s.logger.Info("note added", slog.Int("id", id))

	return record, nil
}

// Delete removes the first record whose id field matches, keyed strictly by
// id rather than slice position, and returns the removed record for
// confirmation messaging.
func (s *Service) Delete(ctx context.Context, id int) (*model.PatientRecord, error) {
	records, err := s.storage.LoadRecords(ctx)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range records {
		if records[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, model.ErrRecordNotFound
	}

	removed := records[idx]
	records = append(records[:idx], records[idx+1:]...)

	if err := s.storage.SaveRecords(ctx, records); err != nil {
		return nil, err
	}

	s.logger.Info("record deleted",
		slog.Int("id", removed.ID),
		slog.String("name", removed.Name),
	)

	return &removed, nil
}
