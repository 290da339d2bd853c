package amqp

import (
	"encoding/json"
	"time"
)

// Change operations published after successful mutations.
const (
	OpCreated = "created"
	OpUpdated = "updated"
	OpDeleted = "deleted"
)

// ChangeMessage notifies downstream consumers that a transaction changed.
// It carries only the operation and the record id; consumers re-fetch
// whatever state they need.
type ChangeMessage struct {
	Op        string    `json:"op"`
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
}

func NewChangeMessage(op, id string) *ChangeMessage {
	return &ChangeMessage{Op: op, ID: id, Timestamp: time.Now()}
}

func (m *ChangeMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func ChangeMessageFromJSON(data []byte) (*ChangeMessage, error) {
	var msg ChangeMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
