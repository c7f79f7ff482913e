package models

type MembershipPlan struct {
	Name     string  `json:"name"`
	Duration string  `json:"duration,omitempty"`
	Price    float64 `json:"price,omitempty"`
}

type Gym struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Address         string            `json:"address,omitempty"`
	Location        Location          `json:"location"`
	Phone           string            `json:"phone,omitempty"`
	Email           string            `json:"email,omitempty"`
	Website         string            `json:"website,omitempty"`
	Images          []string          `json:"images,omitempty"`
	Amenities       []string          `json:"amenities,omitempty"`
	OperatingHours  map[string]string `json:"operating_hours,omitempty"`
	MembershipPlans []MembershipPlan  `json:"membership_plans,omitempty"`
	Rating          float64           `json:"rating,omitempty"`
	TotalReviews    int               `json:"total_reviews,omitempty"`
}
