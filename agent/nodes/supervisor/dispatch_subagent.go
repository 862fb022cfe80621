package supervisornode

import (
	"context"
	"fmt"
	"strings"

	contractx "delivoice/agent/contract"
	routingx "delivoice/agent/routing"
)

// maxToolRounds bounds the plan/execute loop for one turn.
const maxToolRounds = 3

func DispatchSubagent(
	ctx context.Context,
	in *GraphState,
	models contractx.Registry,
	tools contractx.ToolGateway,
) (*GraphState, error) {
	if in == nil || in.Thread == nil {
		return nil, fmt.Errorf("%w: graph state is incomplete", contractx.ErrValidation)
	}
	if in.Decision.Terminal {
		return in, nil
	}

	sub, agentType, err := pickSubagent(in.Decision.Destination, models)
	if err != nil {
		return nil, err
	}

	req := contractx.SubagentRequest{
		UserMessage: in.Text,
	}

	for round := 0; round <= maxToolRounds; round++ {
		resp, err := sub.Run(ctx, req)
		if err != nil {
			return nil, err
		}

		if len(resp.ToolRequests) == 0 {
			in.Message = strings.TrimSpace(resp.Message)
			return in, nil
		}

		injectOrderID(resp.ToolRequests, in.Thread.OrderID)
		results, err := tools.Execute(ctx, agentType, resp.ToolRequests)
		if err != nil {
			return nil, err
		}
		req.ToolResults = append(req.ToolResults, results...)
	}

	return nil, fmt.Errorf("%w: subagent exceeded %d tool rounds", contractx.ErrSchemaViolation, maxToolRounds)
}

func pickSubagent(dest routingx.Destination, models contractx.Registry) (contractx.Subagent, contractx.AgentType, error) {
	switch dest {
	case routingx.DestinationOrder:
		return models.Order(), contractx.AgentTypeOrder, nil
	case routingx.DestinationCustomerService:
		return models.CustomerService(), contractx.AgentTypeCustomerService, nil
	default:
		return nil, "", fmt.Errorf("%w: no subagent for destination=%q", contractx.ErrValidation, dest)
	}
}

// injectOrderID scopes order tool calls to this thread's order. The model
// never chooses the order id.
func injectOrderID(reqs []contractx.ToolRequest, orderID string) {
	for i := range reqs {
		if !strings.HasPrefix(reqs[i].Tool, "order.") {
			continue
		}
		if reqs[i].Args == nil {
			reqs[i].Args = map[string]any{}
		}
		reqs[i].Args["order_id"] = orderID
	}
}
