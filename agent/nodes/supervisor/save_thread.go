package supervisornode

import (
	"context"
	"fmt"

	contractx "delivoice/agent/contract"
	statex "delivoice/agent/state"
)

func SaveThread(ctx context.Context, in *GraphState, store statex.Store) (*GraphState, error) {
	if in == nil || in.Thread == nil {
		return nil, fmt.Errorf("%w: graph state is incomplete", contractx.ErrValidation)
	}

	if err := store.Save(ctx, in.Thread); err != nil {
		return nil, fmt.Errorf("save thread state: %w", err)
	}
	return in, nil
}
