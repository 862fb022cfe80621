package tool

import (
	"github.com/cloudwego/eino/schema"

	contractx "delivoice/agent/contract"
	menux "delivoice/agent/menu"
)

func executeMenuTool(catalog *menux.Catalog, tool string, args map[string]any) (contractx.ToolResult, error) {
	switch tool {
	case ToolMenuDescribe:
		return contractx.ToolResult{Tool: tool, Result: catalog.Describe(stringArg(args, "category"))}, nil
	case ToolMenuCheckAvailability:
		item, err := requireStringArg(args, "item")
		if err != nil {
			return contractx.ToolResult{Tool: tool, Error: err.Error()}, nil
		}
		return contractx.ToolResult{Tool: tool, Result: catalog.CheckAvailability(item)}, nil
	case ToolMenuSandwichDetails:
		name, err := requireStringArg(args, "sandwich")
		if err != nil {
			return contractx.ToolResult{Tool: tool, Error: err.Error()}, nil
		}
		return contractx.ToolResult{Tool: tool, Result: catalog.SandwichDetails(name)}, nil
	case ToolMenuListToppings:
		return contractx.ToolResult{Tool: tool, Result: catalog.ListToppingsAndCondiments()}, nil
	}
	return contractx.ToolResult{Tool: tool, Error: "unknown menu tool"}, nil
}

func describeMenuInfo() *schema.ToolInfo {
	return &schema.ToolInfo{
		Name: ToolMenuDescribe,
		Desc: "Describe the menu, either the whole thing or one category.",
		ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
			"category": {Type: schema.String, Desc: "Optional category: sandwiches, meats, cheeses, toppings, condiments, or breads"},
		}),
	}
}

func checkAvailabilityInfo() *schema.ToolInfo {
	return &schema.ToolInfo{
		Name: ToolMenuCheckAvailability,
		Desc: "Check whether a sandwich or ingredient is on the menu and available.",
		ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
			"item": {Type: schema.String, Desc: "Sandwich or ingredient name", Required: true},
		}),
	}
}

func sandwichDetailsInfo() *schema.ToolInfo {
	return &schema.ToolInfo{
		Name: ToolMenuSandwichDetails,
		Desc: "Get the description and price of a specific sandwich.",
		ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
			"sandwich": {Type: schema.String, Desc: "Sandwich name", Required: true},
		}),
	}
}

func listToppingsInfo() *schema.ToolInfo {
	return &schema.ToolInfo{
		Name: ToolMenuListToppings,
		Desc: "List every available topping and condiment.",
	}
}
