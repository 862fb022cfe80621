package tool

import (
	"context"

	"github.com/cloudwego/eino/schema"

	contractx "delivoice/agent/contract"
	orderx "delivoice/agent/order"
)

// ArgOrderID scopes a tool call to one order. The supervisor injects it from
// thread state; models never see or choose it.
const ArgOrderID = "order_id"

func executeOrderTool(ctx context.Context, store *orderx.Store, tool string, args map[string]any) (contractx.ToolResult, error) {
	orderID := stringArg(args, ArgOrderID)

	var res orderx.Result
	switch tool {
	case ToolOrderAddItem:
		item, err := requireStringArg(args, "item")
		if err != nil {
			return contractx.ToolResult{Tool: tool, Error: err.Error()}, nil
		}
		quantity, err := intArg(args, "quantity", 1)
		if err != nil {
			return contractx.ToolResult{Tool: tool, Error: err.Error()}, nil
		}
		res = store.AddItem(ctx, orderID, item, quantity, stringArg(args, "customizations"))
	case ToolOrderRemoveItem:
		item, err := requireStringArg(args, "item")
		if err != nil {
			return contractx.ToolResult{Tool: tool, Error: err.Error()}, nil
		}
		res = store.RemoveItem(ctx, orderID, item)
	case ToolOrderView:
		res = store.ViewOrder(ctx, orderID)
	case ToolOrderModifyItem:
		item, err := requireStringArg(args, "item")
		if err != nil {
			return contractx.ToolResult{Tool: tool, Error: err.Error()}, nil
		}
		newCustomizations, err := requireStringArg(args, "new_customizations")
		if err != nil {
			return contractx.ToolResult{Tool: tool, Error: err.Error()}, nil
		}
		res = store.ModifyItem(ctx, orderID, item, newCustomizations)
	case ToolOrderConfirm:
		res = store.ConfirmOrder(ctx, orderID)
	case ToolOrderCancel:
		res = store.CancelOrder(ctx, orderID)
	case ToolOrderClear:
		res = store.ClearOrder(ctx, orderID)
	}

	// Rejections ride in the result so the model can relay them to the
	// customer; Error is reserved for malformed calls.
	return contractx.ToolResult{Tool: tool, Result: res}, nil
}

func addItemInfo() *schema.ToolInfo {
	return &schema.ToolInfo{
		Name: ToolOrderAddItem,
		Desc: "Add an item to the customer's order.",
		ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
			"item":           {Type: schema.String, Desc: "Menu item to add", Required: true},
			"quantity":       {Type: schema.Integer, Desc: "How many to add, default 1"},
			"customizations": {Type: schema.String, Desc: "Customizations such as 'no mayo, extra cheese'"},
		}),
	}
}

func removeItemInfo() *schema.ToolInfo {
	return &schema.ToolInfo{
		Name: ToolOrderRemoveItem,
		Desc: "Remove an item from the customer's order.",
		ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
			"item": {Type: schema.String, Desc: "Item to remove", Required: true},
		}),
	}
}

func viewOrderInfo() *schema.ToolInfo {
	return &schema.ToolInfo{
		Name: ToolOrderView,
		Desc: "Read back the current order with quantities and customizations.",
	}
}

func modifyItemInfo() *schema.ToolInfo {
	return &schema.ToolInfo{
		Name: ToolOrderModifyItem,
		Desc: "Replace the customizations on an item already in the order.",
		ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
			"item":               {Type: schema.String, Desc: "Item to modify", Required: true},
			"new_customizations": {Type: schema.String, Desc: "New customizations replacing the old ones", Required: true},
		}),
	}
}

func confirmOrderInfo() *schema.ToolInfo {
	return &schema.ToolInfo{
		Name: ToolOrderConfirm,
		Desc: "Confirm the order and send it to the kitchen.",
	}
}

func cancelOrderInfo() *schema.ToolInfo {
	return &schema.ToolInfo{
		Name: ToolOrderCancel,
		Desc: "Cancel the entire order.",
	}
}

func clearOrderInfo() *schema.ToolInfo {
	return &schema.ToolInfo{
		Name: ToolOrderClear,
		Desc: "Remove every item from the order but keep it open for new items.",
	}
}
