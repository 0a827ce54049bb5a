package events

import (
	"time"

	"github.com/google/uuid"
)

type Entity string

const (
	EntityProduct  Entity = "product"
	EntitySupplier Entity = "supplier"
)

type Action string

const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
	ActionDeleted Action = "deleted"
)

// InventoryEvent is published after a save or delete succeeded on a web service.
type InventoryEvent struct {
	EventID   string    `json:"event_id"`
	Entity    Entity    `json:"entity"`
	Action    Action    `json:"action"`
	EntityID  int64     `json:"entity_id,omitempty"`
	Name      string    `json:"name"`
	Timestamp time.Time `json:"timestamp"`
	RequestID string    `json:"request_id,omitempty"`
}

func NewInventoryEvent(entity Entity, action Action, id int64, name string) InventoryEvent {
	return InventoryEvent{
		EventID:   uuid.NewString(),
		Entity:    entity,
		Action:    action,
		EntityID:  id,
		Name:      name,
		Timestamp: time.Now().UTC(),
	}
}
