// Package state tracks one conversation thread: which destination handled the
// last turn, whether the caller already said goodbye, and the order id that
// scopes the thread's order in the order store.
package state

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrNilThreadState = errors.New("thread state is nil")
	ErrInvalidThread  = errors.New("thread id is empty")
)

type ThreadState struct {
	ThreadID    string `json:"thread_id"`
	ChannelType string `json:"channel_type"`

	// OrderID keys this thread's order; it defaults to the thread id so
	// concurrent callers never share an order.
	OrderID         string `json:"order_id"`
	LastDestination string `json:"last_destination,omitempty"`
	Turns           int    `json:"turns"`
	Finished        bool   `json:"finished,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewThreadState(threadID, channelType string, now time.Time) *ThreadState {
	return &ThreadState{
		ThreadID:    threadID,
		ChannelType: channelType,
		OrderID:     threadID,
		CreatedAt:   now.UTC(),
		UpdatedAt:   now.UTC(),
	}
}

func (t *ThreadState) Touch(now time.Time) {
	t.UpdatedAt = now.UTC()
}

// RecordTurn notes which destination handled this turn.
func (t *ThreadState) RecordTurn(destination string, now time.Time) {
	t.LastDestination = destination
	t.Turns++
	t.Touch(now)
}

func (t *ThreadState) Validate() error {
	if t == nil {
		return ErrNilThreadState
	}
	if strings.TrimSpace(t.ThreadID) == "" {
		return ErrInvalidThread
	}
	if strings.TrimSpace(t.OrderID) == "" {
		return errors.New("thread has no order id")
	}
	return nil
}

func (t *ThreadState) clone() *ThreadState {
	copied := *t
	return &copied
}
