package auth

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
	s.service = New(s.storage, s.clock, DefaultConfig(), testutil.NopLogger())
	s.ctx = context.Background()
}

// Login tests

func (s *ServiceSuite) TestLoginBootstrapAdminSucceeds() {
	session, err := s.service.Login(s.ctx, model.AdminUsername, model.DefaultAdminPassword)
	s.Require().NoError(err)

	s.NotEmpty(session.Token)
	s.Equal(model.AdminUsername, session.Username)
	s.True(session.IsAdmin())
}

func (s *ServiceSuite) TestLoginFailsWithWrongPassword() {
	_, err := s.service.Login(s.ctx, model.AdminUsername, "wrong")
	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *ServiceSuite) TestLoginFailsWithUnknownUser() {
	_, err := s.service.Login(s.ctx, "nobody", model.DefaultAdminPassword)
	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *ServiceSuite) TestLoginComparesPasswordVerbatim() {
	err := s.storage.SaveUsers(s.ctx, model.Credentials{
		"admin":    model.DefaultAdminPassword,
		"aleandra": "Fisio 2024",
	})
	s.Require().NoError(err)

	_, err = s.service.Login(s.ctx, "aleandra", "fisio 2024")
	s.ErrorIs(err, ErrInvalidCredentials)

	session, err := s.service.Login(s.ctx, "aleandra", "Fisio 2024")
	s.Require().NoError(err)
	s.False(session.IsAdmin())
}

func (s *ServiceSuite) TestLoginSeesCredentialsAddedAfterStartup() {
	// Credentials are loaded fresh on every login, never cached
	_, err := s.service.Login(s.ctx, "nova", "senha")
	s.ErrorIs(err, ErrInvalidCredentials)

	users, _ := s.storage.LoadUsers(s.ctx)
	users["nova"] = "senha"
	s.Require().NoError(s.storage.SaveUsers(s.ctx, users))

	_, err = s.service.Login(s.ctx, "nova", "senha")
	s.NoError(err)
}

// Session tests

func (s *ServiceSuite) TestValidateSessionSucceeds() {
	session, _ := s.service.Login(s.ctx, model.AdminUsername, model.DefaultAdminPassword)

	validated, err := s.service.ValidateSession(session.Token)
	s.Require().NoError(err)
	s.Equal(session.Username, validated.Username)
}

func (s *ServiceSuite) TestValidateSessionFailsForUnknownToken() {
	_, err := s.service.ValidateSession("sess_bogus")
	s.ErrorIs(err, ErrInvalidSession)
}

func (s *ServiceSuite) TestValidateSessionFailsAfterExpiry() {
	session, _ := s.service.Login(s.ctx, model.AdminUsername, model.DefaultAdminPassword)

	s.clock.Advance(25 * time.Hour)

	_, err := s.service.ValidateSession(session.Token)
	s.ErrorIs(err, ErrInvalidSession)
}

func (s *ServiceSuite) TestInvalidateSessionLogsOut() {
	session, _ := s.service.Login(s.ctx, model.AdminUsername, model.DefaultAdminPassword)

	s.service.InvalidateSession(session.Token)

	_, err := s.service.ValidateSession(session.Token)
	s.ErrorIs(err, ErrInvalidSession)
}

func (s *ServiceSuite) TestCleanExpiredSessions() {
	old, _ := s.service.Login(s.ctx, model.AdminUsername, model.DefaultAdminPassword)

	s.clock.Advance(25 * time.Hour)
	fresh, _ := s.service.Login(s.ctx, model.AdminUsername, model.DefaultAdminPassword)

	s.service.CleanExpiredSessions()

	_, err := s.service.ValidateSession(old.Token)
	s.ErrorIs(err, ErrInvalidSession)

	_, err = s.service.ValidateSession(fresh.Token)
	s.NoError(err)
}
