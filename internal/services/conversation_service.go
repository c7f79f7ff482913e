package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/thmoreiracosta/fitconnect/internal/models"
	"go.uber.org/zap"
)

const (
	inboxFetchLimit  = 100
	threadFetchLimit = 50
)

type messageSource interface {
	List(ctx context.Context, order string, limit int) ([]models.Message, error)
	Create(ctx context.Context, data models.Message) (*models.Message, error)
}

type userFinder interface {
	Filter(ctx context.Context, where map[string]any, order string, limit int) ([]models.User, error)
}

// Conversation is one pairwise thread derived from the flat message list.
type Conversation struct {
	ThreadKey   string
	Counterpart *models.User
	LastMessage models.Message
	UnreadCount int
}

type ConversationService struct {
	messages messageSource
	users    userFinder
	logger   *zap.Logger
}

func NewConversationService(messages messageSource, users userFinder, logger *zap.Logger) *ConversationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ConversationService{messages: messages, users: users, logger: logger}
}

// ThreadKey canonicalizes a participant pair: ids sorted lexicographically
// and joined, so (a,b) and (b,a) name the same thread.
func ThreadKey(a, b string) string {
	if a > b {
		a, b = b, a
	}
	return a + "-" + b
}

// ListConversations groups the current user's messages into pairwise
// threads. Every message touching the user lands in exactly one thread.
func (s *ConversationService) ListConversations(ctx context.Context, me *models.User) ([]Conversation, error) {
	if me == nil || me.ID == "" {
		return nil, ErrUserNotFound
	}

	all, err := s.messages.List(ctx, "-created_date", inboxFetchLimit)
	if err != nil {
		s.logger.Error("inbox load failed", zap.Error(err))
		return nil, fmt.Errorf("load conversations: %w", err)
	}

	groups := make(map[string][]models.Message)
	counterpartByKey := make(map[string]string)
	for _, msg := range all {
		if msg.SenderID != me.ID && msg.ReceiverID != me.ID {
			continue
		}
		counterpart := msg.SenderID
		if msg.SenderID == me.ID {
			counterpart = msg.ReceiverID
		}
		key := ThreadKey(me.ID, counterpart)
		groups[key] = append(groups[key], msg)
		counterpartByKey[key] = counterpart
	}

	// One user lookup per distinct counterpart.
	counterparts := make(map[string]*models.User, len(counterpartByKey))
	for _, id := range counterpartByKey {
		if _, done := counterparts[id]; done {
			continue
		}
		counterparts[id] = s.lookupUser(ctx, id)
	}

	conversations := make([]Conversation, 0, len(groups))
	for key, msgs := range groups {
		conversations = append(conversations, Conversation{
			ThreadKey:   key,
			Counterpart: counterparts[counterpartByKey[key]],
			LastMessage: lastMessage(msgs),
			UnreadCount: unreadCount(msgs, me.ID),
		})
	}

	sort.SliceStable(conversations, func(i, j int) bool {
		a, b := conversations[i].LastMessage, conversations[j].LastMessage
		if !a.CreatedDate.Equal(b.CreatedDate) {
			return a.CreatedDate.After(b.CreatedDate)
		}
		return conversations[i].ThreadKey < conversations[j].ThreadKey
	})

	return conversations, nil
}

// OpenThread re-fetches and keeps the messages whose computed key matches,
// in chronological order for display.
func (s *ConversationService) OpenThread(ctx context.Context, me *models.User, threadKey string) ([]models.Message, error) {
	if me == nil || me.ID == "" {
		return nil, ErrUserNotFound
	}
	if threadKey == "" {
		return nil, ErrInvalidInput
	}

	all, err := s.messages.List(ctx, "-created_date", threadFetchLimit)
	if err != nil {
		s.logger.Error("thread load failed", zap.String("thread", threadKey), zap.Error(err))
		return nil, fmt.Errorf("load thread: %w", err)
	}

	thread := make([]models.Message, 0, len(all))
	for _, msg := range all {
		if ThreadKey(msg.SenderID, msg.ReceiverID) == threadKey {
			thread = append(thread, msg)
		}
	}

	sort.SliceStable(thread, func(i, j int) bool {
		if !thread[i].CreatedDate.Equal(thread[j].CreatedDate) {
			return thread[i].CreatedDate.Before(thread[j].CreatedDate)
		}
		return thread[i].ID < thread[j].ID
	})

	return thread, nil
}

// SendMessage appends a message to the pair's thread and re-derives the
// thread from the store. Prior messages' remote unread state is left alone;
// there is also no guard against duplicate submission.
func (s *ConversationService) SendMessage(ctx context.Context, me *models.User, counterpartID, content, messageType string) ([]models.Message, error) {
	if me == nil || me.ID == "" {
		return nil, ErrUserNotFound
	}
	if counterpartID == "" || counterpartID == me.ID {
		return nil, ErrInvalidInput
	}
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return nil, ErrInvalidInput
	}
	if messageType == "" {
		messageType = "text"
	}

	key := ThreadKey(me.ID, counterpartID)
	if _, err := s.messages.Create(ctx, models.Message{
		SenderID:       me.ID,
		ReceiverID:     counterpartID,
		ConversationID: key,
		Content:        trimmed,
		MessageType:    messageType,
		IsRead:         false,
	}); err != nil {
		s.logger.Error("send failed", zap.String("thread", key), zap.Error(err))
		return nil, fmt.Errorf("send message: %w", err)
	}

	return s.OpenThread(ctx, me, key)
}

func (s *ConversationService) lookupUser(ctx context.Context, id string) *models.User {
	found, err := s.users.Filter(ctx, map[string]any{"id": id}, "", 1)
	if err != nil {
		s.logger.Warn("counterpart lookup failed", zap.String("user_id", id), zap.Error(err))
		return nil
	}
	if len(found) == 0 {
		return nil
	}
	return &found[0]
}

// lastMessage picks the newest by created_date; equal timestamps fall back
// to the greater id so the choice is deterministic.
func lastMessage(msgs []models.Message) models.Message {
	last := msgs[0]
	for _, msg := range msgs[1:] {
		if msg.CreatedDate.After(last.CreatedDate) {
			last = msg
			continue
		}
		if msg.CreatedDate.Equal(last.CreatedDate) && msg.ID > last.ID {
			last = msg
		}
	}
	return last
}

func unreadCount(msgs []models.Message, me string) int {
	count := 0
	for _, msg := range msgs {
		if msg.ReceiverID == me && !msg.IsRead {
			count++
		}
	}
	return count
}
