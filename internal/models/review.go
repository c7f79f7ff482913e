package models

import "time"

type Review struct {
	ID          string    `json:"id"`
	ReviewerID  string    `json:"reviewer_id"`
	ReviewedID  string    `json:"reviewed_id"`
	Rating      float64   `json:"rating"`
	Comment     string    `json:"comment,omitempty"`
	ReviewType  string    `json:"review_type,omitempty"`
	CreatedDate time.Time `json:"created_date"`
}
