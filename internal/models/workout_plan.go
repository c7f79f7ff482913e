package models

import "time"

// PlanStatus is the closed set of workout plan states.
type PlanStatus string

const (
	PlanStatusDraft     PlanStatus = "draft"
	PlanStatusActive    PlanStatus = "active"
	PlanStatusPaused    PlanStatus = "paused"
	PlanStatusCompleted PlanStatus = "completed"
)

func (s PlanStatus) Valid() bool {
	switch s {
	case PlanStatusDraft, PlanStatusActive, PlanStatusPaused, PlanStatusCompleted:
		return true
	}
	return false
}

type Exercise struct {
	Name        string `json:"name"`
	MuscleGroup string `json:"muscle_group,omitempty"`
	Sets        int    `json:"sets"`
	Reps        string `json:"reps,omitempty"`
	RestTime    string `json:"rest_time,omitempty"`
	Notes       string `json:"notes,omitempty"`
	VideoURL    string `json:"video_url,omitempty"`
}

// WorkoutPlan is owned jointly by the trainer that created it and the
// student it was written for. Mutated only through status transitions or
// full replacement.
type WorkoutPlan struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description,omitempty"`
	TrainerID     string     `json:"trainer_id"`
	StudentID     string     `json:"student_id"`
	DurationWeeks int        `json:"duration_weeks"`
	Exercises     []Exercise `json:"exercises,omitempty"`
	Status        PlanStatus `json:"status"`
	StartDate     *time.Time `json:"start_date,omitempty"`
	EndDate       *time.Time `json:"end_date,omitempty"`
	CreatedDate   time.Time  `json:"created_date"`
}
