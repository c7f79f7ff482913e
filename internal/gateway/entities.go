package gateway

import (
	"context"
	"net/http"

	"github.com/thmoreiracosta/fitconnect/internal/models"
)

func (c *Client) Users() Collection[models.User] {
	return NewCollection[models.User](c, "User")
}

func (c *Client) WorkoutPlans() Collection[models.WorkoutPlan] {
	return NewCollection[models.WorkoutPlan](c, "WorkoutPlan")
}

func (c *Client) Messages() Collection[models.Message] {
	return NewCollection[models.Message](c, "Message")
}

func (c *Client) Gyms() Collection[models.Gym] {
	return NewCollection[models.Gym](c, "Gym")
}

func (c *Client) Reviews() Collection[models.Review] {
	return NewCollection[models.Review](c, "Review")
}

// Me returns the authenticated user or nil when the store has none. The
// backend scopes the User collection to the calling app user, so the first
// record of a limit-1 list is the session owner.
func (c *Client) Me(ctx context.Context) (*models.User, error) {
	var records []models.User
	if err := c.do(ctx, http.MethodGet, "User", "", listQuery("", 1), nil, &records); err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	return &records[0], nil
}
