// Package routing maps an upstream classification label onto the closed set
// of conversation destinations. It is a pure mapping; no state is carried
// between calls.
package routing

import "strings"

type Destination string

const (
	DestinationOrder           Destination = "order"
	DestinationCustomerService Destination = "customer_service"
	DestinationFinish          Destination = "FINISH"
)

// Farewell is spoken when the conversation is routed to FINISH.
const Farewell = "Thank you for visiting! Have a great day!"

// Decision is a terminal outcome (FINISH, with the reply already set) or a
// destination whose subagent handles the turn.
type Decision struct {
	Destination Destination
	Terminal    bool
	Reply       string
}

// Decide normalizes the label and picks a destination. The label comes from a
// model and is not trusted: anything outside the closed set, including an
// empty label, falls back to the order destination, the shop's primary
// function.
func Decide(label string) Decision {
	switch normalize(label) {
	case "finish":
		return Decision{Destination: DestinationFinish, Terminal: true, Reply: Farewell}
	case "customer_service":
		return Decision{Destination: DestinationCustomerService}
	default:
		return Decision{Destination: DestinationOrder}
	}
}

func normalize(label string) string {
	normalized := strings.ToLower(strings.TrimSpace(label))
	return strings.ReplaceAll(normalized, " ", "_")
}
