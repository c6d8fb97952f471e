package types

import "github.com/google/uuid"

// ClientID is a UUID-based identifier for Client
type ClientID string

// NewClientID generates a new UUID v4 ClientID
func NewClientID() ClientID {
	return ClientID(uuid.New().String())
}

// String returns the string representation of ClientID
func (c ClientID) String() string {
	return string(c)
}

// ServiceID is a UUID-based identifier for Service
type ServiceID string

// NewServiceID generates a new UUID v4 ServiceID
func NewServiceID() ServiceID {
	return ServiceID(uuid.New().String())
}

// String returns the string representation of ServiceID
func (s ServiceID) String() string {
	return string(s)
}

// NoteID is a UUID-based identifier for Note
type NoteID string

// NewNoteID generates a new UUID v4 NoteID
func NewNoteID() NoteID {
	return NoteID(uuid.New().String())
}

// String returns the string representation of NoteID
func (n NoteID) String() string {
	return string(n)
}

// CategoryID is a UUID-based identifier for Category
type CategoryID string

// NewCategoryID generates a new UUID v4 CategoryID
func NewCategoryID() CategoryID {
	return CategoryID(uuid.New().String())
}

// String returns the string representation of CategoryID
func (c CategoryID) String() string {
	return string(c)
}

// MessageID is a UUID-based identifier for ChatMessage
type MessageID string

// NewMessageID generates a new UUID v4 MessageID
func NewMessageID() MessageID {
	return MessageID(uuid.New().String())
}

// String returns the string representation of MessageID
func (m MessageID) String() string {
	return string(m)
}
