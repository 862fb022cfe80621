package tool

import (
	"github.com/cloudwego/eino/schema"

	contractx "delivoice/agent/contract"
	shopinfox "delivoice/agent/shopinfo"
)

func executeShopTool(info *shopinfox.Info, tool string, args map[string]any) (contractx.ToolResult, error) {
	switch tool {
	case ToolShopStoreInfo:
		return contractx.ToolResult{Tool: tool, Result: info.StoreInfo(stringArg(args, "info_type"))}, nil
	case ToolShopIngredientInfo:
		item, err := requireStringArg(args, "item")
		if err != nil {
			return contractx.ToolResult{Tool: tool, Error: err.Error()}, nil
		}
		return contractx.ToolResult{Tool: tool, Result: info.IngredientInfo(item)}, nil
	case ToolShopDietaryOptions:
		restriction, err := requireStringArg(args, "restriction")
		if err != nil {
			return contractx.ToolResult{Tool: tool, Error: err.Error()}, nil
		}
		return contractx.ToolResult{Tool: tool, Result: info.DietaryOptions(restriction)}, nil
	case ToolShopComplaint:
		issue, err := requireStringArg(args, "issue")
		if err != nil {
			return contractx.ToolResult{Tool: tool, Error: err.Error()}, nil
		}
		return contractx.ToolResult{Tool: tool, Result: info.Complaint(issue)}, nil
	}
	return contractx.ToolResult{Tool: tool, Error: "unknown shop tool"}, nil
}

func storeInfoInfo() *schema.ToolInfo {
	return &schema.ToolInfo{
		Name: ToolShopStoreInfo,
		Desc: "Get store hours, location, or contact information.",
		ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
			"info_type": {Type: schema.String, Desc: "One of hours, location, contact, or all"},
		}),
	}
}

func ingredientInfoInfo() *schema.ToolInfo {
	return &schema.ToolInfo{
		Name: ToolShopIngredientInfo,
		Desc: "Get sourcing and preparation details for an ingredient.",
		ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
			"item": {Type: schema.String, Desc: "Ingredient or sandwich to ask about", Required: true},
		}),
	}
}

func dietaryOptionsInfo() *schema.ToolInfo {
	return &schema.ToolInfo{
		Name: ToolShopDietaryOptions,
		Desc: "Describe menu options for a dietary restriction.",
		ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
			"restriction": {Type: schema.String, Desc: "Restriction such as vegetarian, vegan, or gluten-free", Required: true},
		}),
	}
}

func complaintInfo() *schema.ToolInfo {
	return &schema.ToolInfo{
		Name: ToolShopComplaint,
		Desc: "Acknowledge a customer complaint and offer to make it right.",
		ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
			"issue": {Type: schema.String, Desc: "What went wrong, in the customer's words", Required: true},
		}),
	}
}
