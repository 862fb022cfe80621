package supervisornode

import (
	"fmt"

	contractx "delivoice/agent/contract"
	routingx "delivoice/agent/routing"
)

// ApplyRoute maps the raw router label onto the closed destination set and
// records the turn on the thread. A terminal decision short-circuits: the
// farewell becomes the reply and the thread is marked finished.
func ApplyRoute(in *GraphState) (*GraphState, error) {
	if in == nil || in.Thread == nil {
		return nil, fmt.Errorf("%w: graph state is incomplete", contractx.ErrValidation)
	}

	decision := routingx.Decide(in.RouteLabel)
	in.Decision = decision
	in.Thread.RecordTurn(string(decision.Destination), in.Now)

	if decision.Terminal {
		in.Thread.Finished = true
		in.Message = decision.Reply
	}

	return in, nil
}
