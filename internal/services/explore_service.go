package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/thmoreiracosta/fitconnect/internal/models"
	"go.uber.org/zap"
)

const exploreFetchLimit = 50

// FilterAll is the sentinel "no filter" value for select controls.
const FilterAll = "all"

type gymLister interface {
	List(ctx context.Context, order string, limit int) ([]models.Gym, error)
}

type ExploreService struct {
	users  userLister
	gyms   gymLister
	logger *zap.Logger
}

func NewExploreService(users userLister, gyms gymLister, logger *zap.Logger) *ExploreService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExploreService{users: users, gyms: gyms, logger: logger}
}

// LoadCandidates fetches the explore page: the newest users of the opposite
// role, excluding self and inactive accounts.
func (s *ExploreService) LoadCandidates(ctx context.Context, me *models.User) ([]models.User, error) {
	if me == nil || me.ID == "" {
		return nil, ErrUserNotFound
	}
	users, err := s.users.List(ctx, "-created_date", exploreFetchLimit)
	if err != nil {
		s.logger.Error("explore load failed", zap.Error(err))
		return nil, fmt.Errorf("load explore: %w", err)
	}
	return CandidateUsers(users, me), nil
}

// FilterUsers narrows an already-fetched page: case-insensitive substring on
// name and city, plus an optional specialty/goal tag.
func FilterUsers(users []models.User, query, specialty string) []models.User {
	query = strings.ToLower(strings.TrimSpace(query))
	filtered := make([]models.User, 0, len(users))
	for _, user := range users {
		if query != "" &&
			!strings.Contains(strings.ToLower(user.FullName), query) &&
			!strings.Contains(strings.ToLower(user.Location.City), query) {
			continue
		}
		if !matchesSpecialty(user, specialty) {
			continue
		}
		filtered = append(filtered, user)
	}
	return filtered
}

func matchesSpecialty(user models.User, specialty string) bool {
	if specialty == "" || specialty == FilterAll {
		return true
	}
	if user.PersonalInfo != nil {
		for _, tag := range user.PersonalInfo.Specialties {
			if tag == specialty {
				return true
			}
		}
	}
	if user.StudentInfo != nil {
		for _, tag := range user.StudentInfo.FitnessGoals {
			if tag == specialty {
				return true
			}
		}
	}
	return false
}

// Specialties collects the distinct tags present on the page, sorted, for
// the filter dropdown.
func Specialties(users []models.User) []string {
	seen := make(map[string]struct{})
	for _, user := range users {
		if user.PersonalInfo != nil {
			for _, tag := range user.PersonalInfo.Specialties {
				seen[tag] = struct{}{}
			}
		}
		if user.StudentInfo != nil {
			for _, tag := range user.StudentInfo.FitnessGoals {
				seen[tag] = struct{}{}
			}
		}
	}
	tags := make([]string, 0, len(seen))
	for tag := range seen {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// LoadGyms fetches the gym directory page, best rated first.
func (s *ExploreService) LoadGyms(ctx context.Context) ([]models.Gym, error) {
	gyms, err := s.gyms.List(ctx, "-rating", exploreFetchLimit)
	if err != nil {
		s.logger.Error("gym load failed", zap.Error(err))
		return nil, fmt.Errorf("load gyms: %w", err)
	}
	return gyms, nil
}

// FilterGyms narrows the fetched gym page: substring on name, address and
// city, plus an optional exact-city filter.
func FilterGyms(gyms []models.Gym, query, city string) []models.Gym {
	query = strings.ToLower(strings.TrimSpace(query))
	filtered := make([]models.Gym, 0, len(gyms))
	for _, gym := range gyms {
		if query != "" &&
			!strings.Contains(strings.ToLower(gym.Name), query) &&
			!strings.Contains(strings.ToLower(gym.Address), query) &&
			!strings.Contains(strings.ToLower(gym.Location.City), query) {
			continue
		}
		if city != "" && city != FilterAll && gym.Location.City != city {
			continue
		}
		filtered = append(filtered, gym)
	}
	return filtered
}

// Cities lists the distinct non-empty cities on the page, sorted.
func Cities(gyms []models.Gym) []string {
	seen := make(map[string]struct{})
	for _, gym := range gyms {
		if gym.Location.City != "" {
			seen[gym.Location.City] = struct{}{}
		}
	}
	cities := make([]string, 0, len(seen))
	for city := range seen {
		cities = append(cities, city)
	}
	sort.Strings(cities)
	return cities
}

// DefaultCity preselects the user's own city when the page has gyms there.
func DefaultCity(me *models.User, cities []string) string {
	if me == nil {
		return FilterAll
	}
	for _, city := range cities {
		if city == me.Location.City {
			return city
		}
	}
	return FilterAll
}
