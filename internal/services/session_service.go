package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/thmoreiracosta/fitconnect/internal/models"
	"go.uber.org/zap"
)

var (
	ErrForbidden              = errors.New("forbidden")
	ErrInvalidInput           = errors.New("invalid input")
	ErrInvalidStateTransition = errors.New("invalid state transition")
	ErrUserNotFound           = errors.New("user not found")
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// SessionState tags the resolved identity of the current user.
type SessionState string

const (
	SessionUnauthenticated SessionState = "unauthenticated"
	SessionNeedsOnboarding SessionState = "needs_onboarding"
	SessionStudent         SessionState = "student"
	SessionTrainer         SessionState = "trainer"
)

// Session is an explicit value threaded through callers; there is no
// package-level current user.
type Session struct {
	State SessionState
	User  *models.User
}

type currentUserSource interface {
	Me(ctx context.Context) (*models.User, error)
}

type userWriter interface {
	Update(ctx context.Context, id string, data models.User) (*models.User, error)
}

type SessionService struct {
	me     currentUserSource
	users  userWriter
	logger *zap.Logger
}

func NewSessionService(me currentUserSource, users userWriter, logger *zap.Logger) *SessionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SessionService{me: me, users: users, logger: logger}
}

// Resolve fetches the current user and tags the session. A fetch failure is
// indistinguishable from "not logged in" here; both land on the login
// screen, so the error is logged and the session reads unauthenticated.
func (s *SessionService) Resolve(ctx context.Context) Session {
	user, err := s.me.Me(ctx)
	if err != nil {
		s.logger.Warn("session resolution failed", zap.Error(err))
		return Session{State: SessionUnauthenticated}
	}
	if user == nil {
		return Session{State: SessionUnauthenticated}
	}
	switch user.UserType {
	case models.UserTypeStudent:
		return Session{State: SessionStudent, User: user}
	case models.UserTypeTrainer:
		return Session{State: SessionTrainer, User: user}
	default:
		return Session{State: SessionNeedsOnboarding, User: user}
	}
}

// ChooseStudentRole completes onboarding for the student path. The trainer
// path goes through RegisterTrainer instead, which gathers the professional
// record before committing the role.
func (s *SessionService) ChooseStudentRole(ctx context.Context, user *models.User) (*models.User, error) {
	if user == nil || user.ID == "" {
		return nil, ErrUserNotFound
	}

	updated := *user
	updated.UserType = models.UserTypeStudent
	return s.users.Update(ctx, user.ID, updated)
}

type RegisterTrainerInput struct {
	CREF            string  `validate:"required"`
	Bio             string  `validate:"-"`
	ExperienceYears int     `validate:"min=0"`
	HourlyRate      float64 `validate:"min=0"`
	Specialties     []string
}

// RegisterTrainer validates the professional record and commits the
// personal_trainer role together with it. Validation failures surface
// before any request is made.
func (s *SessionService) RegisterTrainer(ctx context.Context, user *models.User, input RegisterTrainerInput) (*models.User, error) {
	if user == nil || user.ID == "" {
		return nil, ErrUserNotFound
	}
	if strings.TrimSpace(input.CREF) == "" {
		return nil, fmt.Errorf("%w: cref is required", ErrInvalidInput)
	}
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	updated := *user
	updated.UserType = models.UserTypeTrainer
	updated.PersonalInfo = &models.PersonalInfo{
		CREF:            strings.TrimSpace(input.CREF),
		Bio:             strings.TrimSpace(input.Bio),
		ExperienceYears: input.ExperienceYears,
		HourlyRate:      input.HourlyRate,
		Specialties:     input.Specialties,
	}
	return s.users.Update(ctx, user.ID, updated)
}

// UpdateProfile replaces the current user's record. The store has no
// partial update, so callers pass the full desired record.
func (s *SessionService) UpdateProfile(ctx context.Context, user *models.User, changes models.User) (*models.User, error) {
	if user == nil || user.ID == "" {
		return nil, ErrUserNotFound
	}
	changes.ID = user.ID
	return s.users.Update(ctx, user.ID, changes)
}
