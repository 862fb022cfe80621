package prompt

import (
	_ "embed"
	"strings"
)

var (
	//go:embed template/supervisor.txt
	supervisorRaw string

	//go:embed template/order.txt
	orderRaw string

	//go:embed template/customer_service.txt
	customerServiceRaw string
)

// PromptSet holds loaded prompt content.
type PromptSet struct {
	Supervisor      string
	Order           string
	CustomerService string
}

// LoadPromptSet returns a PromptSet with trimmed prompt strings.
// This is safe to call concurrently; the embed is compile-time, and trimming is cheap.
func LoadPromptSet() PromptSet {
	return PromptSet{
		Supervisor:      strings.TrimSpace(supervisorRaw),
		Order:           strings.TrimSpace(orderRaw),
		CustomerService: strings.TrimSpace(customerServiceRaw),
	}
}
