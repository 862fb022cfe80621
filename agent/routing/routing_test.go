package routing

import "testing"

func TestDecideFinishIsTerminal(t *testing.T) {
	t.Parallel()

	for _, label := range []string{"FINISH", "finish", " Finish "} {
		d := Decide(label)
		if d.Destination != DestinationFinish || !d.Terminal {
			t.Fatalf("label %q: expected terminal FINISH, got %+v", label, d)
		}
		if d.Reply != Farewell {
			t.Fatalf("label %q: missing farewell reply: %+v", label, d)
		}
	}
}

func TestDecideCustomerService(t *testing.T) {
	t.Parallel()

	for _, label := range []string{"customer_service", "Customer Service", "CUSTOMER_SERVICE"} {
		d := Decide(label)
		if d.Destination != DestinationCustomerService || d.Terminal {
			t.Fatalf("label %q: got %+v", label, d)
		}
	}
}

func TestDecideDefaultsToOrder(t *testing.T) {
	t.Parallel()

	for _, label := range []string{"", "order", "kitchen", "gibberish", "finish please"} {
		d := Decide(label)
		if d.Destination != DestinationOrder || d.Terminal {
			t.Fatalf("label %q: expected order destination, got %+v", label, d)
		}
		if d.Reply != "" {
			t.Fatalf("label %q: non-terminal decision must not carry a reply", label)
		}
	}
}
