// Package subagent builds the model-backed agents: the router that classifies
// each turn, and the order and customer service agents that plan tool calls
// and phrase spoken replies.
package subagent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	contractx "delivoice/agent/contract"
	toolx "delivoice/agent/tool"
)

type subagentImpl struct {
	agentType        contractx.AgentType
	structuredRunner compose.Runnable[map[string]any, subagentLLMOutput]
	toolRunner       compose.Runnable[map[string]any, *schema.Message]
	runtimeRunner    compose.Runnable[contractx.SubagentRequest, contractx.SubagentResponse]
	allowedTools     map[string]struct{}
}

type subagentLLMOutput struct {
	Message string `json:"message"`
}

func newSubagent(
	ctx context.Context,
	agentType contractx.AgentType,
	chatModel einomodel.ToolCallingChatModel,
	systemPrompt string,
) (*subagentImpl, error) {
	structuredRunner, err := compileSubagentStructuredGraph(ctx, chatModel, systemPrompt)
	if err != nil {
		return nil, fmt.Errorf("%w: compile structured subagent graph: %v", contractx.ErrModelInvoke, err)
	}

	tools := toolx.InfosForAgent(agentType)
	toolModel, err := chatModel.WithTools(tools)
	if err != nil {
		return nil, fmt.Errorf("%w: bind tools for subagent=%s: %v", contractx.ErrModelInvoke, agentType, err)
	}
	toolRunner, err := compileSubagentToolPlanningGraph(ctx, toolModel, systemPrompt)
	if err != nil {
		return nil, fmt.Errorf("%w: compile tool planning graph: %v", contractx.ErrModelInvoke, err)
	}

	allowedTools := make(map[string]struct{}, len(tools))
	for _, t := range tools {
		if t == nil || strings.TrimSpace(t.Name) == "" {
			continue
		}
		allowedTools[t.Name] = struct{}{}
	}

	sub := &subagentImpl{
		agentType:        agentType,
		structuredRunner: structuredRunner,
		toolRunner:       toolRunner,
		allowedTools:     allowedTools,
	}

	runtimeRunner, err := compileSubagentRuntimeGraph(ctx, sub.runToolPlanning, sub.runStructured)
	if err != nil {
		return nil, fmt.Errorf("%w: compile subagent runtime graph: %v", contractx.ErrModelInvoke, err)
	}
	sub.runtimeRunner = runtimeRunner

	return sub, nil
}

func (s *subagentImpl) Run(ctx context.Context, req contractx.SubagentRequest) (contractx.SubagentResponse, error) {
	out, err := s.runtimeRunner.Invoke(ctx, req)
	if err != nil {
		return contractx.SubagentResponse{}, err
	}
	return out, nil
}

func (s *subagentImpl) runStructured(ctx context.Context, req contractx.SubagentRequest) (contractx.SubagentResponse, error) {
	payload := map[string]any{
		"mode":         "finalize",
		"user_message": req.UserMessage,
		"tool_results": req.ToolResults,
	}
	input, err := json.Marshal(payload)
	if err != nil {
		return contractx.SubagentResponse{}, fmt.Errorf("%w: marshal subagent payload: %v", contractx.ErrValidation, err)
	}

	out, err := s.structuredRunner.Invoke(ctx, map[string]any{
		"input": string(input),
	})
	if err != nil {
		return contractx.SubagentResponse{}, fmt.Errorf("%w: subagent invoke: %v", contractx.ErrModelInvoke, err)
	}

	message := strings.TrimSpace(out.Message)
	if message == "" {
		return contractx.SubagentResponse{}, fmt.Errorf("%w: subagent message is empty", contractx.ErrSchemaViolation)
	}

	return contractx.SubagentResponse{Message: message}, nil
}

func (s *subagentImpl) runToolPlanning(ctx context.Context, req contractx.SubagentRequest) (contractx.SubagentResponse, error) {
	payload := map[string]any{
		"mode":         "act",
		"user_message": req.UserMessage,
	}
	input, err := json.Marshal(payload)
	if err != nil {
		return contractx.SubagentResponse{}, fmt.Errorf("%w: marshal tool planning payload: %v", contractx.ErrValidation, err)
	}

	msg, err := s.toolRunner.Invoke(ctx, map[string]any{
		"input": string(input),
	})
	if err != nil {
		return contractx.SubagentResponse{}, fmt.Errorf("%w: tool planning invoke: %v", contractx.ErrModelInvoke, err)
	}
	if msg == nil {
		return contractx.SubagentResponse{}, fmt.Errorf("%w: empty tool planning response", contractx.ErrSchemaViolation)
	}

	toolRequests, err := toToolRequests(msg.ToolCalls)
	if err != nil {
		return contractx.SubagentResponse{}, err
	}

	if len(toolRequests) == 0 {
		content := strings.TrimSpace(msg.Content)
		if content == "" {
			return contractx.SubagentResponse{}, fmt.Errorf("%w: act mode produced neither tools nor text", contractx.ErrSchemaViolation)
		}
		return contractx.SubagentResponse{Message: content}, nil
	}

	for _, tr := range toolRequests {
		if _, ok := s.allowedTools[tr.Tool]; !ok {
			return contractx.SubagentResponse{}, fmt.Errorf("%w: tool=%s is not allowed for agent=%s", contractx.ErrSchemaViolation, tr.Tool, s.agentType)
		}
	}

	return contractx.SubagentResponse{ToolRequests: toolRequests}, nil
}

func toToolRequests(calls []schema.ToolCall) ([]contractx.ToolRequest, error) {
	if len(calls) == 0 {
		return nil, nil
	}
	reqs := make([]contractx.ToolRequest, 0, len(calls))
	for _, call := range calls {
		tool := strings.TrimSpace(call.Function.Name)
		if tool == "" {
			return nil, fmt.Errorf("%w: tool call name is empty", contractx.ErrSchemaViolation)
		}

		args := map[string]any{}
		rawArgs := strings.TrimSpace(call.Function.Arguments)
		if rawArgs != "" {
			if err := json.Unmarshal([]byte(rawArgs), &args); err != nil {
				return nil, fmt.Errorf("%w: invalid tool args for tool=%s: %v", contractx.ErrSchemaViolation, tool, err)
			}
		}

		reqs = append(reqs, contractx.ToolRequest{
			Tool: tool,
			Args: args,
		})
	}
	return reqs, nil
}
