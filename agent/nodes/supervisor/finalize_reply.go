package supervisornode

import (
	"fmt"
	"strings"

	contractx "delivoice/agent/contract"
)

func FinalizeReply(in *GraphState) (GraphOutput, error) {
	if in == nil {
		return GraphOutput{}, fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
	}

	reply := strings.TrimSpace(in.Message)
	if reply == "" {
		return GraphOutput{}, fmt.Errorf("%w: subagent returned empty message", contractx.ErrValidation)
	}
	return GraphOutput{Reply: reply}, nil
}
