// Package queue defines message payloads exchanged over the message broker.
package queue

import (
	"time"

	"github.com/tablequeue/waitlist/internal/model"
)

// Event types published after a successful write.
const (
	EventCreated = "created"
	EventUpdated = "updated"
	EventDeleted = "deleted"
)

// WaitlistEvent is published whenever a waitlist row changes.  It carries
// enough information for downstream consumers (audit log, SMS notifier) to
// act without querying the primary database.  Entry is nil for deletes.
type WaitlistEvent struct {
	Type       string               `json:"type"`
	EntryID    uint64               `json:"entry_id"`
	Entry      *model.WaitlistEntry `json:"entry,omitempty"`
	OccurredAt string               `json:"occurred_at"`
}

// NewEvent stamps an event with the current UTC time.
func NewEvent(typ string, id uint64, entry *model.WaitlistEntry) WaitlistEvent {
	return WaitlistEvent{
		Type:       typ,
		EntryID:    id,
		Entry:      entry,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	}
}
