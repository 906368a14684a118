package records

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"prontuario/internal/dependencies/mocks"
	"prontuario/internal/model"
	"prontuario/internal/storage/memory"
	"prontuario/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC))
	s.service = New(s.storage, s.clock, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ServiceSuite) create(name string) *model.PatientRecord {
	record, err := s.service.Create(s.ctx, CreateInput{
		Name:      name,
		BirthDate: "2000-01-01",
		Diagnosis: "Lombalgia",
	})
	s.Require().NoError(err)
	return record
}

// Create tests

func (s *ServiceSuite) TestCreateSucceeds() {
	record, err := s.service.Create(s.ctx, CreateInput{
		Name:       "Maria Souza",
		BirthDate:  "1985-03-20",
		Profession: "Professora",
		Diagnosis:  "Tendinite",
		VisitDate:  "2024-06-15",
	})
	s.Require().NoError(err)

	s.Equal(1, record.ID)
	s.Equal("Maria Souza", record.Name)
	s.Equal("1985-03-20", record.BirthDate)
	s.Equal("Professora", record.Profession)
	s.Equal("Tendinite", record.Diagnosis)
	s.Equal("2024-06-15", record.VisitDate)
	s.Equal("15-06-2024", record.CreatedAt)
	s.Empty(record.Notes)
}

func (s *ServiceSuite) TestCreatePersists() {
	s.create("Maria Souza")

	records, err := s.storage.LoadRecords(s.ctx)
	s.Require().NoError(err)
	s.Len(records, 1)
	s.Equal("Maria Souza", records[0].Name)
}

func (s *ServiceSuite) TestCreateAssignsSequentialIDs() {
	for i, name := range []string{"A", "B", "C"} {
		record := s.create(name)
		s.Equal(i+1, record.ID)
	}
}

func (s *ServiceSuite) TestCreateIDIsCountPlusOne() {
	// The id rule is count-of-current-records plus one, assigned at call
	// time; deleting does not reserve the freed id.
	s.create("A")
	s.create("B")

	_, err := s.service.Delete(s.ctx, 1)
	s.Require().NoError(err)

	record := s.create("C")
	s.Equal(2, record.ID)
}

func (s *ServiceSuite) TestCreateTrimsFields() {
	record, err := s.service.Create(s.ctx, CreateInput{
		Name:       "  Ana Lima  ",
		BirthDate:  "1990-07-01",
		Profession: " Enfermeira ",
		Diagnosis:  "  Cervicalgia  ",
	})
	s.Require().NoError(err)

	s.Equal("Ana Lima", record.Name)
	s.Equal("Enfermeira", record.Profession)
	s.Equal("Cervicalgia", record.Diagnosis)
}

func (s *ServiceSuite) TestCreateWithInitialNote() {
	record, err := s.service.Create(s.ctx, CreateInput{
		Name:        "Ana Lima",
		BirthDate:   "1990-07-01",
		Diagnosis:   "Cervicalgia",
		InitialNote: "  Primeira sessão, dor intensa.  ",
	})
	s.Require().NoError(err)

	s.Require().Len(record.Notes, 1)
	s.Equal("15-06-2024 10:30:00", record.Notes[0].Timestamp)
	s.Equal("Primeira sessão, dor intensa.", record.Notes[0].Text)
}

func (s *ServiceSuite) TestCreateBlankInitialNoteStartsEmpty() {
	record, err := s.service.Create(s.ctx, CreateInput{
		Name:        "Ana Lima",
		BirthDate:   "1990-07-01",
		Diagnosis:   "Cervicalgia",
		InitialNote: "   ",
	})
	s.Require().NoError(err)
	s.Empty(record.Notes)
}

func (s *ServiceSuite) TestCreateFailsWithoutName() {
	_, err := s.service.Create(s.ctx, CreateInput{
		Name:      "   ",
		BirthDate: "1990-07-01",
		Diagnosis: "Cervicalgia",
	})
	s.True(model.IsValidation(err))

	records, _ := s.storage.LoadRecords(s.ctx)
	s.Empty(records)
}

func (s *ServiceSuite) TestCreateFailsWithoutBirthDate() {
	_, err := s.service.Create(s.ctx, CreateInput{
		Name:      "Ana Lima",
		Diagnosis: "Cervicalgia",
	})
	s.True(model.IsValidation(err))
}

func (s *ServiceSuite) TestCreateFailsWithMalformedBirthDate() {
	_, err := s.service.Create(s.ctx, CreateInput{
		Name:      "Ana Lima",
		BirthDate: "01/07/1990",
		Diagnosis: "Cervicalgia",
	})
	s.True(model.IsValidation(err))
}

func (s *ServiceSuite) TestCreateFailsWithoutDiagnosis() {
	_, err := s.service.Create(s.ctx, CreateInput{
		Name:      "Ana Lima",
		BirthDate: "1990-07-01",
		Diagnosis: "",
	})
	s.True(model.IsValidation(err))
}

// AddNote tests

func (s *ServiceSuite) TestAddNoteAppends() {
	s.create("Ana Lima")

	record, err := s.service.AddNote(s.ctx, 1, "Sessão 2: melhora parcial")
	s.Require().NoError(err)

	s.Require().Len(record.Notes, 1)
	s.Equal("15-06-2024 10:30:00", record.Notes[0].Timestamp)
	s.Equal("Sessão 2: melhora parcial", record.Notes[0].Text)
}

func (s *ServiceSuite) TestAddNotePreservesOrder() {
	s.create("Ana Lima")

	_, err := s.service.AddNote(s.ctx, 1, "first")
	s.Require().NoError(err)

	s.clock.Advance(time.Hour)
	record, err := s.service.AddNote(s.ctx, 1, "second")
	s.Require().NoError(err)

	s.Require().Len(record.Notes, 2)
	s.Equal("first", record.Notes[0].Text)
	s.Equal("second", record.Notes[1].Text)
	s.Equal("15-06-2024 11:30:00", record.Notes[1].Timestamp)
}

func (s *ServiceSuite) TestAddNoteDoesNotTouchOtherRecords() {
	s.create("Ana Lima")
	s.create("Maria Souza")

	_, err := s.service.AddNote(s.ctx, 1, "only for Ana")
	s.Require().NoError(err)

	other, err := s.service.Get(s.ctx, 2)
	s.Require().NoError(err)
	s.Empty(other.Notes)
}

func (s *ServiceSuite) TestAddNoteFailsForUnknownID() {
	_, err := s.service.AddNote(s.ctx, 42, "text")
	s.ErrorIs(err, model.ErrRecordNotFound)
}

func (s *ServiceSuite) TestAddNoteFailsOnBlankText() {
	s.create("Ana Lima")

	_, err := s.service.AddNote(s.ctx, 1, "   ")
	s.True(model.IsValidation(err))

	record, _ := s.service.Get(s.ctx, 1)
	s.Empty(record.Notes)
}

// Delete tests

func (s *ServiceSuite) TestDeleteRemovesAndReturnsRecord() {
	s.create("Ana Lima")
	s.create("Maria Souza")

	removed, err := s.service.Delete(s.ctx, 1)
	s.Require().NoError(err)
	s.Equal("Ana Lima", removed.Name)

	records, _ := s.service.List(s.ctx)
	s.Require().Len(records, 1)
	s.Equal("Maria Souza", records[0].Name)
}

func (s *ServiceSuite) TestDeleteKeysByIDNotPosition() {
	s.create("A")
	s.create("B")
	s.create("C")

	_, err := s.service.Delete(s.ctx, 1)
	s.Require().NoError(err)

	// Record with id 3 now sits at slice position 1; deletion must still
	// find it by its id field.
	removed, err := s.service.Delete(s.ctx, 3)
	s.Require().NoError(err)
	s.Equal("C", removed.Name)

	records, _ := s.service.List(s.ctx)
	s.Require().Len(records, 1)
	s.Equal(2, records[0].ID)
}

func (s *ServiceSuite) TestDeleteLeavesOtherRecordsIntact() {
	s.create("A")
	s.create("B")
	_, err := s.service.AddNote(s.ctx, 2, "nota de B")
	s.Require().NoError(err)

	before, err := s.service.Get(s.ctx, 2)
	s.Require().NoError(err)

	_, err = s.service.Delete(s.ctx, 1)
	s.Require().NoError(err)

	after, err := s.service.Get(s.ctx, 2)
	s.Require().NoError(err)
	s.Equal(*before, *after)
}

func (s *ServiceSuite) TestDeleteFailsForUnknownID() {
	_, err := s.service.Delete(s.ctx, 42)
	s.ErrorIs(err, model.ErrRecordNotFound)
}

// Get tests

func (s *ServiceSuite) TestGetReturnsRecord() {
	s.create("Ana Lima")

	record, err := s.service.Get(s.ctx, 1)
	s.Require().NoError(err)
	s.Equal("Ana Lima", record.Name)
}

func (s *ServiceSuite) TestGetFailsForUnknownID() {
	_, err := s.service.Get(s.ctx, 7)
	s.ErrorIs(err, model.ErrRecordNotFound)
}
