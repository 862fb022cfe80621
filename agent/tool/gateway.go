package tool

import (
	"context"

	contractx "delivoice/agent/contract"
)

// Gateway dispatches tool requests through the executor built for the calling
// agent, so an agent can never reach a tool outside its catalog.
type Gateway struct {
	executors map[contractx.AgentType]Executor
}

func NewGateway(deps Deps) (*Gateway, error) {
	if err := deps.validate(); err != nil {
		return nil, err
	}
	return &Gateway{
		executors: map[contractx.AgentType]Executor{
			contractx.AgentTypeOrder:           NewExecutor(contractx.AgentTypeOrder, deps),
			contractx.AgentTypeCustomerService: NewExecutor(contractx.AgentTypeCustomerService, deps),
		},
	}, nil
}

func (g *Gateway) Execute(ctx context.Context, agentType contractx.AgentType, reqs []contractx.ToolRequest) ([]contractx.ToolResult, error) {
	executor, ok := g.executors[agentType]
	if !ok {
		executor = DefaultExecutor(agentType)
	}

	results := make([]contractx.ToolResult, 0, len(reqs))
	for _, req := range reqs {
		out, err := executor(ctx, req.Tool, req.Args)
		if err != nil {
			return nil, err
		}
		if out.Tool == "" {
			out.Tool = req.Tool
		}
		results = append(results, out)
	}
	return results, nil
}
