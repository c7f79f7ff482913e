package services

import (
	"context"
	"fmt"

	"github.com/thmoreiracosta/fitconnect/internal/models"
	"go.uber.org/zap"
)

type planStore interface {
	Filter(ctx context.Context, where map[string]any, order string, limit int) ([]models.WorkoutPlan, error)
	Create(ctx context.Context, data models.WorkoutPlan) (*models.WorkoutPlan, error)
	Update(ctx context.Context, id string, data models.WorkoutPlan) (*models.WorkoutPlan, error)
}

// planTransitions is the full status machine. completed is terminal for the
// client; the backend would still accept a forced write.
var planTransitions = map[models.PlanStatus]map[models.PlanStatus]bool{
	models.PlanStatusDraft:     {models.PlanStatusActive: true},
	models.PlanStatusActive:    {models.PlanStatusPaused: true, models.PlanStatusCompleted: true},
	models.PlanStatusPaused:    {models.PlanStatusActive: true, models.PlanStatusCompleted: true},
	models.PlanStatusCompleted: {},
}

func CanTransition(from, to models.PlanStatus) bool {
	return planTransitions[from][to]
}

// AllowedTransitions lists the statuses reachable from the given one, in a
// fixed order suitable for rendering transition controls.
func AllowedTransitions(from models.PlanStatus) []models.PlanStatus {
	ordered := []models.PlanStatus{
		models.PlanStatusActive,
		models.PlanStatusPaused,
		models.PlanStatusCompleted,
	}
	allowed := make([]models.PlanStatus, 0, len(ordered))
	for _, to := range ordered {
		if CanTransition(from, to) {
			allowed = append(allowed, to)
		}
	}
	return allowed
}

type PlanService struct {
	plans  planStore
	logger *zap.Logger
}

func NewPlanService(plans planStore, logger *zap.Logger) *PlanService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PlanService{plans: plans, logger: logger}
}

// ListPlans returns the current user's plans, newest first: plans they wrote
// for trainers, plans written for them for students.
func (s *PlanService) ListPlans(ctx context.Context, me *models.User) ([]models.WorkoutPlan, error) {
	if me == nil || me.ID == "" {
		return nil, ErrUserNotFound
	}
	plans, err := s.plans.Filter(ctx, planOwnerFilter(me), "-created_date", 0)
	if err != nil {
		s.logger.Error("plan list failed", zap.Error(err))
		return nil, fmt.Errorf("load plans: %w", err)
	}
	return plans, nil
}

type ExerciseInput struct {
	Name        string `validate:"required"`
	MuscleGroup string
	Sets        int `validate:"min=1"`
	Reps        string
	RestTime    string
	Notes       string
	VideoURL    string
}

type CreatePlanInput struct {
	Title         string `validate:"required"`
	Description   string
	StudentID     string          `validate:"required"`
	DurationWeeks int             `validate:"min=1"`
	Exercises     []ExerciseInput `validate:"dive"`
}

// CreatePlan stamps the acting trainer as owner and stores the plan as a
// draft. Only trainers create plans.
func (s *PlanService) CreatePlan(ctx context.Context, me *models.User, input CreatePlanInput) (*models.WorkoutPlan, error) {
	if me == nil || me.ID == "" {
		return nil, ErrUserNotFound
	}
	if me.UserType != models.UserTypeTrainer {
		return nil, ErrForbidden
	}
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}
	if input.StudentID == me.ID {
		return nil, fmt.Errorf("%w: plan student cannot be the trainer", ErrInvalidInput)
	}

	exercises := make([]models.Exercise, 0, len(input.Exercises))
	for _, ex := range input.Exercises {
		exercises = append(exercises, models.Exercise{
			Name:        ex.Name,
			MuscleGroup: ex.MuscleGroup,
			Sets:        ex.Sets,
			Reps:        ex.Reps,
			RestTime:    ex.RestTime,
			Notes:       ex.Notes,
			VideoURL:    ex.VideoURL,
		})
	}

	created, err := s.plans.Create(ctx, models.WorkoutPlan{
		Title:         input.Title,
		Description:   input.Description,
		TrainerID:     me.ID,
		StudentID:     input.StudentID,
		DurationWeeks: input.DurationWeeks,
		Exercises:     exercises,
		Status:        models.PlanStatusDraft,
	})
	if err != nil {
		s.logger.Error("plan create failed", zap.Error(err))
		return nil, fmt.Errorf("create plan: %w", err)
	}
	return created, nil
}

// SetStatus replaces the plan record with only the status changed. The
// authorization check is id-based: being a trainer is not enough, the actor
// must own the plan. Callers reload the plan list afterwards; there is no
// optimistic local update.
func (s *PlanService) SetStatus(ctx context.Context, me *models.User, plan models.WorkoutPlan, next models.PlanStatus) (*models.WorkoutPlan, error) {
	if me == nil || me.ID == "" {
		return nil, ErrUserNotFound
	}
	if !next.Valid() {
		return nil, ErrInvalidInput
	}
	if me.UserType != models.UserTypeTrainer || me.ID != plan.TrainerID {
		return nil, ErrForbidden
	}
	if !CanTransition(plan.Status, next) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidStateTransition, plan.Status, next)
	}

	plan.Status = next
	updated, err := s.plans.Update(ctx, plan.ID, plan)
	if err != nil {
		s.logger.Error("plan status update failed",
			zap.String("plan_id", plan.ID),
			zap.String("status", string(next)),
			zap.Error(err))
		return nil, fmt.Errorf("update plan status: %w", err)
	}
	return updated, nil
}

// ProgressPoint is one week of the progress chart.
type ProgressPoint struct {
	Week      int
	Total     int
	Completed int
}

// ProgressSeries derives the weekly chart series from a plan list: for each
// week up to the longest duration, how many plans cover that week and how
// many of those are completed.
func ProgressSeries(plans []models.WorkoutPlan) []ProgressPoint {
	weeks := 0
	for _, plan := range plans {
		if plan.DurationWeeks > weeks {
			weeks = plan.DurationWeeks
		}
	}
	if weeks == 0 {
		return nil
	}

	series := make([]ProgressPoint, weeks)
	for i := range series {
		series[i].Week = i + 1
	}
	for _, plan := range plans {
		for w := 0; w < plan.DurationWeeks; w++ {
			series[w].Total++
			if plan.Status == models.PlanStatusCompleted {
				series[w].Completed++
			}
		}
	}
	return series
}
