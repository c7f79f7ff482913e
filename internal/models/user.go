package models

import "time"

// UserType is the closed set of roles a user can hold. The remote store
// persists it as a free string; the client only ever works with these values.
type UserType string

const (
	UserTypeUnset   UserType = ""
	UserTypeStudent UserType = "student"
	UserTypeTrainer UserType = "personal_trainer"
)

func (t UserType) Valid() bool {
	switch t {
	case UserTypeUnset, UserTypeStudent, UserTypeTrainer:
		return true
	}
	return false
}

// Counterpart returns the opposite role. Unset (and unknown) roles have no
// counterpart and map to unset.
func (t UserType) Counterpart() UserType {
	switch t {
	case UserTypeStudent:
		return UserTypeTrainer
	case UserTypeTrainer:
		return UserTypeStudent
	}
	return UserTypeUnset
}

type Location struct {
	City string `json:"city,omitempty"`
}

type Subscription struct {
	Plan    string     `json:"plan,omitempty"`
	Status  string     `json:"status,omitempty"`
	EndDate *time.Time `json:"end_date,omitempty"`
}

// PersonalInfo is only meaningful once UserType is personal_trainer.
type PersonalInfo struct {
	CREF            string   `json:"cref,omitempty"`
	Bio             string   `json:"bio,omitempty"`
	ExperienceYears int      `json:"experience_years,omitempty"`
	HourlyRate      float64  `json:"hourly_rate,omitempty"`
	Specialties     []string `json:"specialties,omitempty"`
}

// StudentInfo is only meaningful once UserType is student.
type StudentInfo struct {
	FitnessLevel     string   `json:"fitness_level,omitempty"`
	FitnessGoals     []string `json:"fitness_goals,omitempty"`
	BudgetRange      string   `json:"budget_range,omitempty"`
	HealthConditions string   `json:"health_conditions,omitempty"`
}

type User struct {
	ID           string        `json:"id"`
	FullName     string        `json:"full_name"`
	Email        string        `json:"email,omitempty"`
	Phone        string        `json:"phone,omitempty"`
	UserType     UserType      `json:"user_type,omitempty"`
	ProfileImage string        `json:"profile_image,omitempty"`
	Location     Location      `json:"location"`
	Rating       float64       `json:"rating,omitempty"`
	TotalReviews int           `json:"total_reviews,omitempty"`
	IsActive     bool          `json:"is_active"`
	IsVerified   bool          `json:"is_verified"`
	Subscription *Subscription `json:"subscription,omitempty"`
	PersonalInfo *PersonalInfo `json:"personal_info,omitempty"`
	StudentInfo  *StudentInfo  `json:"student_info,omitempty"`
	CreatedDate  time.Time     `json:"created_date"`
}
