package tool

import (
	"context"
	"strings"
	"testing"

	contractx "delivoice/agent/contract"
	menux "delivoice/agent/menu"
	orderx "delivoice/agent/order"
	shopinfox "delivoice/agent/shopinfo"
)

func testDeps() Deps {
	return Deps{
		Menu:   menux.Default(),
		Orders: orderx.NewStore(),
		Shop:   shopinfox.Default(),
	}
}

func TestBuildForAgentOrder(t *testing.T) {
	t.Parallel()

	infos, executor := BuildForAgent(contractx.AgentTypeOrder, testDeps())
	if len(infos) != 9 {
		t.Fatalf("expected 9 tool infos, got %d", len(infos))
	}
	if infos[0].Name != ToolOrderAddItem {
		t.Fatalf("unexpected first tool: %s", infos[0].Name)
	}
	if executor == nil {
		t.Fatal("executor must not be nil")
	}
}

func TestExecutorAddThenView(t *testing.T) {
	t.Parallel()

	executor := NewExecutor(contractx.AgentTypeOrder, testDeps())
	ctx := context.Background()

	out, err := executor(ctx, ToolOrderAddItem, map[string]any{
		ArgOrderID: "t1",
		"item":     "Turkey Club",
		// JSON numbers decode as float64.
		"quantity":       float64(2),
		"customizations": "no mayo",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Error != "" {
		t.Fatalf("unexpected tool error: %s", out.Error)
	}
	res, ok := out.Result.(orderx.Result)
	if !ok {
		t.Fatalf("unexpected result type: %T", out.Result)
	}
	if !res.OK || !strings.Contains(res.Message, "2 x Turkey Club") {
		t.Fatalf("unexpected result: %+v", res)
	}

	out, err = executor(ctx, ToolOrderView, map[string]any{ArgOrderID: "t1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	view := out.Result.(orderx.Result)
	if !strings.Contains(view.Message, "Total: 2 items.") {
		t.Fatalf("unexpected view: %+v", view)
	}
}

func TestExecutorMissingArgument(t *testing.T) {
	t.Parallel()

	executor := NewExecutor(contractx.AgentTypeOrder, testDeps())
	out, err := executor(context.Background(), ToolOrderAddItem, map[string]any{ArgOrderID: "t1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Error == "" {
		t.Fatal("expected argument error")
	}
	if out.Result != nil {
		t.Fatalf("malformed call must not produce a result: %#v", out.Result)
	}
}

func TestExecutorRejectionStaysInResult(t *testing.T) {
	t.Parallel()

	executor := NewExecutor(contractx.AgentTypeOrder, testDeps())
	out, err := executor(context.Background(), ToolOrderAddItem, map[string]any{
		ArgOrderID: "t1",
		"item":     "BLT",
		"quantity": float64(0),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Error != "" {
		t.Fatalf("rejection must not use the error channel: %s", out.Error)
	}
	res := out.Result.(orderx.Result)
	if res.OK || !strings.Contains(res.Message, "positive quantity") {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestExecutorOutOfCatalogTool(t *testing.T) {
	t.Parallel()

	// The customer service agent has no order mutation tools.
	executor := NewExecutor(contractx.AgentTypeCustomerService, testDeps())
	out, err := executor(context.Background(), ToolOrderConfirm, map[string]any{ArgOrderID: "t1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.Error, "unavailable for agent=customer_service") {
		t.Fatalf("unexpected error message: %s", out.Error)
	}
}

func TestExecutorMenuAndShopTools(t *testing.T) {
	t.Parallel()

	executor := NewExecutor(contractx.AgentTypeCustomerService, testDeps())
	ctx := context.Background()

	out, err := executor(ctx, ToolMenuSandwichDetails, map[string]any{"sandwich": "turkey club"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text := out.Result.(string); !strings.Contains(text, "$8.99") {
		t.Fatalf("unexpected details: %s", text)
	}

	out, err = executor(ctx, ToolShopStoreInfo, map[string]any{"info_type": "hours"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text := out.Result.(string); !strings.Contains(text, "Store Hours") {
		t.Fatalf("unexpected store info: %s", text)
	}
}

func TestGatewayRoutesPerAgent(t *testing.T) {
	t.Parallel()

	gateway, err := NewGateway(testDeps())
	if err != nil {
		t.Fatalf("NewGateway() error = %v", err)
	}

	results, err := gateway.Execute(context.Background(), contractx.AgentTypeOrder, []contractx.ToolRequest{
		{Tool: ToolOrderAddItem, Args: map[string]any{ArgOrderID: "t1", "item": "BLT"}},
		{Tool: ToolOrderView, Args: map[string]any{ArgOrderID: "t1"}},
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	view := results[1].Result.(orderx.Result)
	if !strings.Contains(view.Message, "BLT") {
		t.Fatalf("unexpected view: %+v", view)
	}
}
