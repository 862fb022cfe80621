package subagent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/compose"

	contractx "delivoice/agent/contract"
)

type routerImpl struct {
	runner compose.Runnable[map[string]any, routeLLMOutput]
}

type routeLLMOutput struct {
	NextAgent string `json:"next_agent"`
}

func newRouter(ctx context.Context, chatModel einomodel.BaseChatModel, systemPrompt string) (*routerImpl, error) {
	runner, err := compileRouterGraph(ctx, chatModel, systemPrompt)
	if err != nil {
		return nil, fmt.Errorf("%w: compile router graph: %v", contractx.ErrModelInvoke, err)
	}
	return &routerImpl{runner: runner}, nil
}

// Route classifies one turn. The returned label is whatever the model said;
// the supervisor maps it onto the closed destination set, so an off-script
// label here is not an error.
func (r *routerImpl) Route(ctx context.Context, req contractx.RouteRequest) (contractx.RouteResponse, error) {
	if strings.TrimSpace(req.UserMessage) == "" {
		return contractx.RouteResponse{}, fmt.Errorf("%w: user message is required", contractx.ErrValidation)
	}

	payload := map[string]any{
		"user_message":     req.UserMessage,
		"last_destination": req.LastDestination,
	}
	inputBytes, err := json.Marshal(payload)
	if err != nil {
		return contractx.RouteResponse{}, fmt.Errorf("%w: marshal route payload: %v", contractx.ErrValidation, err)
	}

	out, err := r.runner.Invoke(ctx, map[string]any{
		"input": string(inputBytes),
	})
	if err != nil {
		return contractx.RouteResponse{}, fmt.Errorf("%w: router invoke: %v", contractx.ErrModelInvoke, err)
	}

	return contractx.RouteResponse{
		NextAgent: strings.TrimSpace(out.NextAgent),
	}, nil
}
