package entity

import (
	"time"
)

// EditWindow is how long the author may still edit or delete a message.
const EditWindow = 30 * time.Minute

// db model
type ChatMessage struct {
	Id          string    `json:"id" firestore:"id"`
	AdminId     string    `json:"adminId" firestore:"adminId"`
	AdminName   string    `json:"adminName" firestore:"adminName"`
	AvatarUrl   string    `json:"avatarUrl,omitempty" firestore:"avatarUrl"`
	Message     string    `json:"message" firestore:"message"`
	MessageHtml string    `json:"messageHtml,omitempty" firestore:"messageHtml"`
	Timestamp   time.Time `json:"timestamp" firestore:"timestamp"`
	Edited      bool      `json:"edited,omitempty" firestore:"edited"`
}

// Editable reports whether the author may still change the message at t.
func (m *ChatMessage) Editable(t time.Time) bool {
	return t.Sub(m.Timestamp) < EditWindow
}

// controller model
type ChatMessageOutputModel struct {
	Id          string `json:"id"`
	AdminId     string `json:"adminId"`
	AdminName   string `json:"adminName"`
	AvatarUrl   string `json:"avatarUrl,omitempty"`
	Message     string `json:"message"`
	MessageHtml string `json:"messageHtml,omitempty"`
	Timestamp   string `json:"timestamp"`
	Edited      bool   `json:"edited,omitempty"`
}
