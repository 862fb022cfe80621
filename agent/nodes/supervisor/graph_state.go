// Package supervisornode holds the per-turn pipeline steps the supervisor
// graph wires together.
package supervisornode

import (
	"errors"
	"strings"
	"time"

	routingx "delivoice/agent/routing"
	statex "delivoice/agent/state"
)

var (
	ErrInvalidMessage = errors.New("message is empty")
	ErrInvalidThread  = errors.New("thread id is empty")
)

type GraphInput struct {
	ThreadID string
	Text     string
}

type GraphOutput struct {
	Reply string
}

type GraphState struct {
	ThreadID string
	Text     string
	Now      time.Time

	Thread     *statex.ThreadState
	RouteLabel string
	Decision   routingx.Decision

	Message string
}

func ValidateRequest(in GraphInput, nowFn func() time.Time) (*GraphState, error) {
	threadID := strings.TrimSpace(in.ThreadID)
	if threadID == "" {
		return nil, ErrInvalidThread
	}

	text := strings.TrimSpace(in.Text)
	if text == "" {
		return nil, ErrInvalidMessage
	}

	return &GraphState{
		ThreadID: threadID,
		Text:     text,
		Now:      nowFn().UTC(),
	}, nil
}
