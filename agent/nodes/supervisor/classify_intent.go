package supervisornode

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	contractx "delivoice/agent/contract"
)

// ClassifyIntent asks the router which agent should take this turn. A router
// failure is not fatal: the empty label falls through to the default
// destination downstream.
func ClassifyIntent(ctx context.Context, in *GraphState, router contractx.Router) (*GraphState, error) {
	if in == nil || in.Thread == nil {
		return nil, fmt.Errorf("%w: graph state is incomplete", contractx.ErrValidation)
	}

	resp, err := router.Route(ctx, contractx.RouteRequest{
		UserMessage:     in.Text,
		LastDestination: in.Thread.LastDestination,
		Now:             in.Now,
	})
	if err != nil {
		log.Warn().Err(err).Str("thread_id", in.ThreadID).Msg("router failed, falling back to default destination")
		in.RouteLabel = ""
		return in, nil
	}

	in.RouteLabel = resp.NextAgent
	return in, nil
}
