package supervisornode

import (
	"context"
	"errors"
	"fmt"
	"time"

	contractx "delivoice/agent/contract"
	statex "delivoice/agent/state"
)

func LoadOrCreateThread(
	ctx context.Context,
	in *GraphState,
	store statex.Store,
	channelType string,
) (*GraphState, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
	}

	st, err := loadOrCreateThread(ctx, store, in.ThreadID, channelType, in.Now)
	if err != nil {
		return nil, err
	}
	in.Thread = st
	return in, nil
}

func loadOrCreateThread(
	ctx context.Context,
	store statex.Store,
	threadID string,
	channelType string,
	now time.Time,
) (*statex.ThreadState, error) {
	st, err := store.Load(ctx, threadID)
	if err == nil {
		// A finished thread that speaks again starts a fresh conversation.
		if st.Finished {
			return statex.NewThreadState(threadID, channelType, now), nil
		}
		return st, nil
	}
	if !errors.Is(err, statex.ErrStateNotFound) {
		return nil, err
	}

	return statex.NewThreadState(threadID, channelType, now), nil
}
