package models

import "time"

// Message is immutable once created except for IsRead. ConversationID is
// derived client-side from the two participant ids; the store does not
// enforce it.
type Message struct {
	ID             string    `json:"id"`
	SenderID       string    `json:"sender_id"`
	ReceiverID     string    `json:"receiver_id"`
	ConversationID string    `json:"conversation_id,omitempty"`
	Content        string    `json:"content"`
	MessageType    string    `json:"message_type,omitempty"`
	AttachmentURL  string    `json:"attachment_url,omitempty"`
	IsRead         bool      `json:"is_read"`
	CreatedDate    time.Time `json:"created_date"`
}
