package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/thmoreiracosta/fitconnect/internal/models"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL, "app-123", "key-abc", 5*time.Second, nil)
}

func TestListSendsAuthAndOrdering(t *testing.T) {
	var gotPath, gotKey, gotSort, gotLimit string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("api_key")
		gotSort = r.URL.Query().Get("sort")
		gotLimit = r.URL.Query().Get("limit")
		_ = json.NewEncoder(w).Encode([]models.Message{{ID: "m1", Content: "hello"}})
	})

	messages, err := client.Messages().List(context.Background(), "-created_date", 100)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if gotPath != "/api/apps/app-123/entities/Message" {
		t.Fatalf("unexpected path %q", gotPath)
	}
	if gotKey != "key-abc" {
		t.Fatalf("expected api_key header, got %q", gotKey)
	}
	if gotSort != "-created_date" || gotLimit != "100" {
		t.Fatalf("unexpected ordering params: sort=%q limit=%q", gotSort, gotLimit)
	}
	if len(messages) != 1 || messages[0].ID != "m1" {
		t.Fatalf("unexpected records: %+v", messages)
	}
}

func TestFilterEncodesPredicates(t *testing.T) {
	var gotQ string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQ = r.URL.Query().Get("q")
		_ = json.NewEncoder(w).Encode([]models.Message{})
	})

	_, err := client.Messages().Filter(context.Background(), map[string]any{
		"receiver_id": "u1",
		"is_read":     false,
	}, "-created_date", 0)
	if err != nil {
		t.Fatalf("Filter: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal([]byte(gotQ), &decoded); err != nil {
		t.Fatalf("filter param is not JSON: %q", gotQ)
	}
	if decoded["receiver_id"] != "u1" || decoded["is_read"] != false {
		t.Fatalf("unexpected predicates: %+v", decoded)
	}
}

func TestCreatePostsRecord(t *testing.T) {
	var gotMethod string
	var gotBody models.Message
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Fatalf("decode request body: %v", err)
		}
		gotBody.ID = "m9"
		_ = json.NewEncoder(w).Encode(gotBody)
	})

	created, err := client.Messages().Create(context.Background(), models.Message{
		SenderID:   "a",
		ReceiverID: "b",
		Content:    "oi",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if gotMethod != http.MethodPost {
		t.Fatalf("expected POST, got %s", gotMethod)
	}
	if gotBody.Content != "oi" || created.ID != "m9" {
		t.Fatalf("unexpected round trip: sent=%+v got=%+v", gotBody, created)
	}
}

func TestUpdatePutsToRecordPath(t *testing.T) {
	var gotMethod, gotPath string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		_ = json.NewEncoder(w).Encode(models.User{ID: "u7"})
	})

	_, err := client.Users().Update(context.Background(), "u7", models.User{ID: "u7", FullName: "Ana"})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if gotMethod != http.MethodPut {
		t.Fatalf("expected PUT, got %s", gotMethod)
	}
	if gotPath != "/api/apps/app-123/entities/User/u7" {
		t.Fatalf("unexpected path %q", gotPath)
	}
}

func TestGymAndReviewCollectionPaths(t *testing.T) {
	var gotPath string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte("[]"))
	})

	if _, err := client.Gyms().List(context.Background(), "-rating", 50); err != nil {
		t.Fatalf("List gyms: %v", err)
	}
	if gotPath != "/api/apps/app-123/entities/Gym" {
		t.Fatalf("unexpected gym path %q", gotPath)
	}

	if _, err := client.Reviews().List(context.Background(), "-created_date", 10); err != nil {
		t.Fatalf("List reviews: %v", err)
	}
	if gotPath != "/api/apps/app-123/entities/Review" {
		t.Fatalf("unexpected review path %q", gotPath)
	}
}

func TestNon2xxSurfacesAPIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.Users().List(context.Background(), "", 10)
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.Status != http.StatusBadGateway || apiErr.Entity != "User" {
		t.Fatalf("unexpected error fields: %+v", apiErr)
	}
	if apiErr.RequestID == "" {
		t.Fatalf("expected request id on error")
	}
}

func TestMeReturnsNilWhenStoreIsEmpty(t *testing.T) {
	var gotLimit string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotLimit = r.URL.Query().Get("limit")
		_ = json.NewEncoder(w).Encode([]models.User{})
	})

	me, err := client.Me(context.Background())
	if err != nil {
		t.Fatalf("Me: %v", err)
	}
	if me != nil {
		t.Fatalf("expected nil user, got %+v", me)
	}
	if gotLimit != "1" {
		t.Fatalf("expected limit=1, got %q", gotLimit)
	}
}

func TestMeReturnsFirstRecord(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]models.User{
			{ID: "u1", FullName: "Carla", UserType: models.UserTypeStudent},
		})
	})

	me, err := client.Me(context.Background())
	if err != nil {
		t.Fatalf("Me: %v", err)
	}
	if me == nil || me.ID != "u1" || me.UserType != models.UserTypeStudent {
		t.Fatalf("unexpected user: %+v", me)
	}
}
