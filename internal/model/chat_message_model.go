package model

import (
	"time"

	"github.com/google/uuid"
)

type ChatMessage struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	SessionID   uuid.UUID `gorm:"type:uuid;index" json:"session_id"`
	Sender      string    `gorm:"type:varchar(32)" json:"sender"` // user or assistant
	Message     string    `gorm:"type:text" json:"message"`
	MessageType string    `gorm:"type:varchar(32);default:text" json:"message_type"`
	Timestamp   time.Time `json:"timestamp"`
}

func (m *ChatMessage) TableName() string {
	return "chat_messages"
}
