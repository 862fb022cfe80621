package contract

import "context"

type Router interface {
	Route(ctx context.Context, req RouteRequest) (RouteResponse, error)
}

type Subagent interface {
	Run(ctx context.Context, req SubagentRequest) (SubagentResponse, error)
}

type Registry interface {
	Router() Router
	Order() Subagent
	CustomerService() Subagent
}

type ToolGateway interface {
	Execute(ctx context.Context, agentType AgentType, reqs []ToolRequest) ([]ToolResult, error)
}
