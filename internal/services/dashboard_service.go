package services

import (
	"context"
	"fmt"

	"github.com/thmoreiracosta/fitconnect/internal/models"
	"go.uber.org/zap"
)

const (
	nearbyFetchLimit   = 10
	nearbyDisplayLimit = 6
	recentPlanLimit    = 5
	dashboardPlanCards = 4
)

type userLister interface {
	List(ctx context.Context, order string, limit int) ([]models.User, error)
}

type planFinder interface {
	Filter(ctx context.Context, where map[string]any, order string, limit int) ([]models.WorkoutPlan, error)
}

type messageFinder interface {
	Filter(ctx context.Context, where map[string]any, order string, limit int) ([]models.Message, error)
}

// Dashboard is the aggregated view-state for the home screen.
type Dashboard struct {
	NearbyUsers    []models.User
	RecentPlans    []models.WorkoutPlan
	UnreadMessages int
	ActivePlans    int
}

// DisplayPlans is the slice the dashboard card actually renders.
func (d *Dashboard) DisplayPlans() []models.WorkoutPlan {
	if len(d.RecentPlans) <= dashboardPlanCards {
		return d.RecentPlans
	}
	return d.RecentPlans[:dashboardPlanCards]
}

type DashboardService struct {
	users    userLister
	plans    planFinder
	messages messageFinder
	logger   *zap.Logger
}

func NewDashboardService(users userLister, plans planFinder, messages messageFinder, logger *zap.Logger) *DashboardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{users: users, plans: plans, messages: messages, logger: logger}
}

// Load refreshes the whole dashboard. Any fetch failure aborts the refresh;
// partial results are never returned.
func (s *DashboardService) Load(ctx context.Context, me *models.User) (*Dashboard, error) {
	if me == nil || me.ID == "" {
		return nil, ErrUserNotFound
	}

	recent, err := s.users.List(ctx, "-created_date", nearbyFetchLimit)
	if err != nil {
		s.logger.Error("dashboard users load failed", zap.Error(err))
		return nil, fmt.Errorf("load dashboard: %w", err)
	}
	nearby := CandidateUsers(recent, me)
	if len(nearby) > nearbyDisplayLimit {
		nearby = nearby[:nearbyDisplayLimit]
	}

	plans, err := s.plans.Filter(ctx, planOwnerFilter(me), "-created_date", recentPlanLimit)
	if err != nil {
		s.logger.Error("dashboard plans load failed", zap.Error(err))
		return nil, fmt.Errorf("load dashboard: %w", err)
	}

	unread, err := s.messages.Filter(ctx, map[string]any{
		"receiver_id": me.ID,
		"is_read":     false,
	}, "-created_date", 0)
	if err != nil {
		s.logger.Error("dashboard unread load failed", zap.Error(err))
		return nil, fmt.Errorf("load dashboard: %w", err)
	}

	active := 0
	for _, plan := range plans {
		if plan.Status == models.PlanStatusActive {
			active++
		}
	}

	return &Dashboard{
		NearbyUsers:    nearby,
		RecentPlans:    plans,
		UnreadMessages: len(unread),
		ActivePlans:    active,
	}, nil
}

// CandidateUsers drops the current user, users sharing their role, and
// inactive users, preserving the fetched order. Geographic proximity is not
// computed; the recency-ordered page stands in for it.
func CandidateUsers(users []models.User, me *models.User) []models.User {
	candidates := make([]models.User, 0, len(users))
	for _, user := range users {
		if user.ID == me.ID || user.UserType == me.UserType || !user.IsActive {
			continue
		}
		candidates = append(candidates, user)
	}
	return candidates
}

// planOwnerFilter selects the id field for the current role. Users that have
// not completed onboarding are treated as students, matching how the views
// fall through before a role exists.
func planOwnerFilter(me *models.User) map[string]any {
	if me.UserType == models.UserTypeTrainer {
		return map[string]any{"trainer_id": me.ID}
	}
	return map[string]any{"student_id": me.ID}
}
