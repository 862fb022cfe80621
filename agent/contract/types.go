package contract

import "time"

type AgentType string

const (
	AgentTypeSupervisor      AgentType = "supervisor"
	AgentTypeOrder           AgentType = "order"
	AgentTypeCustomerService AgentType = "customer_service"
)

// RouteRequest carries everything the routing model sees for one turn.
type RouteRequest struct {
	UserMessage     string    `json:"user_message"`
	LastDestination string    `json:"last_destination,omitempty"`
	Now             time.Time `json:"now"`
}

// RouteResponse is the raw classification label emitted by the routing model.
// It is not trusted; routing.Decide maps it onto the closed destination set.
type RouteResponse struct {
	NextAgent string `json:"next_agent"`
}

type SubagentRequest struct {
	UserMessage string       `json:"user_message"`
	ToolResults []ToolResult `json:"tool_results,omitempty"`
}

type SubagentResponse struct {
	Message      string        `json:"message"`
	ToolRequests []ToolRequest `json:"tool_requests,omitempty"`
}

type ToolRequest struct {
	Tool string         `json:"tool"`
	Args map[string]any `json:"args,omitempty"`
}

type ToolResult struct {
	Tool   string `json:"tool"`
	Result any    `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}
