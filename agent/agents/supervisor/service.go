// Package supervisor runs one conversation turn end to end: classify the
// request, dispatch the right subagent, execute its tool calls, and persist
// the thread.
package supervisor

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/cloudwego/eino/compose"

	contractx "delivoice/agent/contract"
	nodex "delivoice/agent/nodes/supervisor"
	statex "delivoice/agent/state"
)

var (
	ErrInvalidMessage = nodex.ErrInvalidMessage
	ErrInvalidThread  = nodex.ErrInvalidThread
)

type Config struct {
	ChannelType string
}

type Supervisor struct {
	store  statex.Store
	models contractx.Registry
	tools  contractx.ToolGateway

	graphRunner compose.Runnable[nodex.GraphInput, nodex.GraphOutput]

	channelType string

	now func() time.Time
}

func New(
	store statex.Store,
	models contractx.Registry,
	tools contractx.ToolGateway,
	cfg Config,
) (*Supervisor, error) {
	if store == nil {
		return nil, errors.New("state store is required")
	}
	if models == nil {
		return nil, errors.New("model registry is required")
	}
	if tools == nil {
		return nil, errors.New("tool gateway is required")
	}

	channelType := strings.TrimSpace(cfg.ChannelType)
	if channelType == "" {
		channelType = "voice"
	}

	s := &Supervisor{
		store:       store,
		models:      models,
		tools:       tools,
		channelType: channelType,
		now:         time.Now,
	}

	graphRunner, err := s.compileHandleTurnGraph(context.Background())
	if err != nil {
		return nil, err
	}
	s.graphRunner = graphRunner

	return s, nil
}

func (s *Supervisor) HandleTurn(ctx context.Context, threadID string, text string) (string, error) {
	out, err := s.graphRunner.Invoke(ctx, nodex.GraphInput{
		ThreadID: threadID,
		Text:     text,
	})
	if err != nil {
		return "", err
	}
	return out.Reply, nil
}
