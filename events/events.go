package events

import (
	"time"

	"github.com/google/uuid"
)

// EventType names a change to site content.
type EventType string

const (
	BlogCreated EventType = "blog.created"
	BlogUpdated EventType = "blog.updated"
	BlogDeleted EventType = "blog.deleted"

	ProjectCreated EventType = "project.created"
	ProjectUpdated EventType = "project.updated"
	ProjectDeleted EventType = "project.deleted"

	MessageReceived EventType = "message.received"
	MessageUpdated  EventType = "message.updated"
	MessageDeleted  EventType = "message.deleted"
)

const (
	sourceAPI = "api"
	version   = "1"
)

// Event is implemented by every event in this package.
type Event interface {
	GetID() string
	GetType() EventType
}

// BaseEvent is embedded in every event.
type BaseEvent struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Source    string    `json:"source"`
	Version   string    `json:"version"`
}

func (e BaseEvent) GetID() string {
	return e.ID
}

func (e BaseEvent) GetType() EventType {
	return e.Type
}

func newBase(t EventType) BaseEvent {
	return BaseEvent{
		ID:        uuid.NewString(),
		Type:      t,
		Timestamp: time.Now().UTC(),
		Source:    sourceAPI,
		Version:   version,
	}
}

// ContentChangedEvent is published after a blog post or project is written.
// Title is empty for deletes.
type ContentChangedEvent struct {
	BaseEvent
	ResourceID string `json:"resource_id"`
	Title      string `json:"title,omitempty"`
}

func NewContentChanged(t EventType, resourceID, title string) ContentChangedEvent {
	return ContentChangedEvent{BaseEvent: newBase(t), ResourceID: resourceID, Title: title}
}

// MessageEvent is published for contact form activity. The message body is
// never included.
type MessageEvent struct {
	BaseEvent
	MessageID string `json:"message_id"`
	Name      string `json:"name,omitempty"`
	Email     string `json:"email,omitempty"`
	Read      bool   `json:"read"`
}

func NewMessageEvent(t EventType, messageID, name, email string, read bool) MessageEvent {
	return MessageEvent{BaseEvent: newBase(t), MessageID: messageID, Name: name, Email: email, Read: read}
}
