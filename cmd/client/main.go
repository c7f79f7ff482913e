package main

import (
	"context"
	"fmt"
	"log"

	"github.com/thmoreiracosta/fitconnect/internal/config"
	"github.com/thmoreiracosta/fitconnect/internal/gateway"
	"github.com/thmoreiracosta/fitconnect/internal/services"
	"github.com/thmoreiracosta/fitconnect/internal/viewstate"
	"go.uber.org/zap"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Logger
	logger, err := buildLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	// 3. Entity gateway
	client := gateway.NewClient(cfg.BaseURL, cfg.AppID, cfg.APIKey, cfg.HTTPTimeout, logger)

	ctx := context.Background()

	// 4. Resolve session
	sessionService := services.NewSessionService(client, client.Users(), logger)
	session := sessionService.Resolve(ctx)
	switch session.State {
	case services.SessionUnauthenticated:
		log.Fatal("No authenticated user available")
	case services.SessionNeedsOnboarding:
		fmt.Printf("Signed in as %s, onboarding pending\n", session.User.Email)
		return
	}
	fmt.Printf("Signed in as %s (%s)\n", session.User.FullName, session.State)

	// 5. Load the dashboard
	dashboardService := services.NewDashboardService(client.Users(), client.WorkoutPlans(), client.Messages(), logger)
	var home viewstate.Loader[*services.Dashboard]
	home.Load(ctx, func(loadCtx context.Context) (*services.Dashboard, error) {
		return dashboardService.Load(loadCtx, session.User)
	})
	dashboard, err := home.Current()
	if err != nil {
		log.Fatalf("Failed to load dashboard: %v", err)
	}

	fmt.Printf("Unread messages: %d\n", dashboard.UnreadMessages)
	fmt.Printf("Active plans: %d\n", dashboard.ActivePlans)
	for _, user := range dashboard.NearbyUsers {
		fmt.Printf("  nearby: %s (%s)\n", user.FullName, user.Location.City)
	}
	for _, plan := range dashboard.DisplayPlans() {
		fmt.Printf("  plan: %s [%s]\n", plan.Title, plan.Status)
	}

	// 6. Inbox summary
	conversationService := services.NewConversationService(client.Messages(), client.Users(), logger)
	conversations, err := conversationService.ListConversations(ctx, session.User)
	if err != nil {
		log.Fatalf("Failed to load conversations: %v", err)
	}
	for _, conversation := range conversations {
		name := "unknown"
		if conversation.Counterpart != nil {
			name = conversation.Counterpart.FullName
		}
		fmt.Printf("  conversation with %s: %q (%d unread)\n",
			name, conversation.LastMessage.Content, conversation.UnreadCount)
	}
}

func buildLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Development() {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
