package subagent

import (
	"context"
	"fmt"

	einomodel "github.com/cloudwego/eino/components/model"
	einoprompt "github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	contractx "delivoice/agent/contract"
)

func compileRouterGraph(
	ctx context.Context,
	chatModel einomodel.BaseChatModel,
	systemPrompt string,
) (compose.Runnable[map[string]any, routeLLMOutput], error) {
	runner, err := compileStructuredLLMGraph[routeLLMOutput](ctx, chatModel, systemPrompt, "router.model_graph")
	if err != nil {
		return nil, fmt.Errorf("compile router graph: %w", err)
	}
	return runner, nil
}

func compileSubagentStructuredGraph(
	ctx context.Context,
	chatModel einomodel.BaseChatModel,
	systemPrompt string,
) (compose.Runnable[map[string]any, subagentLLMOutput], error) {
	runner, err := compileStructuredLLMGraph[subagentLLMOutput](ctx, chatModel, systemPrompt, "subagent.structured_graph")
	if err != nil {
		return nil, fmt.Errorf("compile subagent structured graph: %w", err)
	}
	return runner, nil
}

func compileSubagentToolPlanningGraph(
	ctx context.Context,
	chatModel einomodel.BaseChatModel,
	systemPrompt string,
) (compose.Runnable[map[string]any, *schema.Message], error) {
	template := einoprompt.FromMessages(
		schema.FString,
		schema.SystemMessage(systemPrompt),
		schema.UserMessage("{input}"),
	)

	graph := compose.NewGraph[map[string]any, *schema.Message]()
	if err := graph.AddChatTemplateNode("prompt", template); err != nil {
		return nil, fmt.Errorf("add tool planning prompt node: %w", err)
	}
	if err := graph.AddChatModelNode("model", chatModel); err != nil {
		return nil, fmt.Errorf("add tool planning model node: %w", err)
	}
	if err := graph.AddEdge(compose.START, "prompt"); err != nil {
		return nil, fmt.Errorf("add tool planning edge start->prompt: %w", err)
	}
	if err := graph.AddEdge("prompt", "model"); err != nil {
		return nil, fmt.Errorf("add tool planning edge prompt->model: %w", err)
	}
	if err := graph.AddEdge("model", compose.END); err != nil {
		return nil, fmt.Errorf("add tool planning edge model->end: %w", err)
	}

	runner, err := graph.Compile(ctx, compose.WithGraphName("subagent.tool_planning_graph"))
	if err != nil {
		return nil, fmt.Errorf("compile subagent tool planning graph: %w", err)
	}
	return runner, nil
}

func compileSubagentRuntimeGraph(
	ctx context.Context,
	toolFlow func(context.Context, contractx.SubagentRequest) (contractx.SubagentResponse, error),
	structuredFlow func(context.Context, contractx.SubagentRequest) (contractx.SubagentResponse, error),
) (compose.Runnable[contractx.SubagentRequest, contractx.SubagentResponse], error) {
	graph := compose.NewGraph[contractx.SubagentRequest, contractx.SubagentResponse]()

	if err := graph.AddLambdaNode("validate",
		compose.InvokableLambda(func(ctx context.Context, req contractx.SubagentRequest) (contractx.SubagentRequest, error) {
			if req.UserMessage == "" {
				return contractx.SubagentRequest{}, fmt.Errorf("%w: user message is required", contractx.ErrValidation)
			}
			return req, nil
		}),
	); err != nil {
		return nil, fmt.Errorf("add subagent runtime validate node: %w", err)
	}

	if err := graph.AddLambdaNode("tool_path",
		compose.InvokableLambda(func(ctx context.Context, req contractx.SubagentRequest) (contractx.SubagentResponse, error) {
			return toolFlow(ctx, req)
		}),
	); err != nil {
		return nil, fmt.Errorf("add subagent runtime tool node: %w", err)
	}

	if err := graph.AddLambdaNode("structured_path",
		compose.InvokableLambda(func(ctx context.Context, req contractx.SubagentRequest) (contractx.SubagentResponse, error) {
			return structuredFlow(ctx, req)
		}),
	); err != nil {
		return nil, fmt.Errorf("add subagent runtime structured node: %w", err)
	}

	branch := compose.NewGraphBranch(
		func(ctx context.Context, req contractx.SubagentRequest) (string, error) {
			if len(req.ToolResults) == 0 {
				return "tool_path", nil
			}
			return "structured_path", nil
		},
		map[string]bool{
			"tool_path":       true,
			"structured_path": true,
		},
	)

	if err := graph.AddBranch("validate", branch); err != nil {
		return nil, fmt.Errorf("add subagent runtime branch: %w", err)
	}
	if err := graph.AddEdge(compose.START, "validate"); err != nil {
		return nil, fmt.Errorf("add subagent runtime edge start->validate: %w", err)
	}
	if err := graph.AddEdge("tool_path", compose.END); err != nil {
		return nil, fmt.Errorf("add subagent runtime edge tool->end: %w", err)
	}
	if err := graph.AddEdge("structured_path", compose.END); err != nil {
		return nil, fmt.Errorf("add subagent runtime edge structured->end: %w", err)
	}

	runner, err := graph.Compile(ctx, compose.WithGraphName("subagent.runtime_graph"))
	if err != nil {
		return nil, fmt.Errorf("compile subagent runtime graph: %w", err)
	}
	return runner, nil
}

func compileStructuredLLMGraph[T any](
	ctx context.Context,
	chatModel einomodel.BaseChatModel,
	systemPrompt string,
	graphName string,
) (compose.Runnable[map[string]any, T], error) {
	template := einoprompt.FromMessages(
		schema.FString,
		schema.SystemMessage(systemPrompt),
		schema.UserMessage("{input}"),
	)

	parser := schema.NewMessageJSONParser[T](&schema.MessageJSONParseConfig{
		ParseFrom: schema.MessageParseFromContent,
	})

	graph := compose.NewGraph[map[string]any, T]()
	if err := graph.AddChatTemplateNode("prompt", template); err != nil {
		return nil, fmt.Errorf("add structured prompt node: %w", err)
	}
	if err := graph.AddChatModelNode("model", chatModel); err != nil {
		return nil, fmt.Errorf("add structured model node: %w", err)
	}
	if err := graph.AddLambdaNode("parse_json", compose.MessageParser(parser)); err != nil {
		return nil, fmt.Errorf("add structured parser node: %w", err)
	}

	if err := graph.AddEdge(compose.START, "prompt"); err != nil {
		return nil, fmt.Errorf("add structured edge start->prompt: %w", err)
	}
	if err := graph.AddEdge("prompt", "model"); err != nil {
		return nil, fmt.Errorf("add structured edge prompt->model: %w", err)
	}
	if err := graph.AddEdge("model", "parse_json"); err != nil {
		return nil, fmt.Errorf("add structured edge model->parse: %w", err)
	}
	if err := graph.AddEdge("parse_json", compose.END); err != nil {
		return nil, fmt.Errorf("add structured edge parse->end: %w", err)
	}

	runner, err := graph.Compile(ctx, compose.WithGraphName(graphName))
	if err != nil {
		return nil, fmt.Errorf("compile structured graph: %w", err)
	}
	return runner, nil
}
