// Package tool exposes the order, menu, and shop operations to the language
// models as callable tools, and executes the calls the models request.
package tool

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/schema"

	contractx "delivoice/agent/contract"
	menux "delivoice/agent/menu"
	orderx "delivoice/agent/order"
	shopinfox "delivoice/agent/shopinfo"
)

const (
	ToolOrderAddItem    = "order.add_item"
	ToolOrderRemoveItem = "order.remove_item"
	ToolOrderView       = "order.view"
	ToolOrderModifyItem = "order.modify_item"
	ToolOrderConfirm    = "order.confirm"
	ToolOrderCancel     = "order.cancel"
	ToolOrderClear      = "order.clear"

	ToolMenuDescribe          = "menu.describe"
	ToolMenuCheckAvailability = "menu.check_availability"
	ToolMenuSandwichDetails   = "menu.sandwich_details"
	ToolMenuListToppings      = "menu.list_toppings"

	ToolShopStoreInfo      = "shop.store_info"
	ToolShopIngredientInfo = "shop.ingredient_info"
	ToolShopDietaryOptions = "shop.dietary_options"
	ToolShopComplaint      = "shop.complaint"
)

// Deps carries the domain objects the executors operate on.
type Deps struct {
	Menu   *menux.Catalog
	Orders *orderx.Store
	Shop   *shopinfox.Info
}

func (d Deps) validate() error {
	if d.Menu == nil {
		return fmt.Errorf("%w: menu catalog is required", contractx.ErrValidation)
	}
	if d.Orders == nil {
		return fmt.Errorf("%w: order store is required", contractx.ErrValidation)
	}
	if d.Shop == nil {
		return fmt.Errorf("%w: shop info is required", contractx.ErrValidation)
	}
	return nil
}

type Executor func(ctx context.Context, tool string, args map[string]any) (contractx.ToolResult, error)

func BuildForAgent(agentType contractx.AgentType, deps Deps) ([]*schema.ToolInfo, Executor) {
	return InfosForAgent(agentType), NewExecutor(agentType, deps)
}

func NewExecutor(agentType contractx.AgentType, deps Deps) Executor {
	fallback := DefaultExecutor(agentType)
	allowed := make(map[string]struct{})
	for _, info := range InfosForAgent(agentType) {
		allowed[info.Name] = struct{}{}
	}
	return func(ctx context.Context, tool string, args map[string]any) (contractx.ToolResult, error) {
		if err := deps.validate(); err != nil {
			return contractx.ToolResult{}, err
		}
		if _, ok := allowed[tool]; !ok {
			return fallback(ctx, tool, args)
		}
		switch tool {
		case ToolOrderAddItem, ToolOrderRemoveItem, ToolOrderView,
			ToolOrderModifyItem, ToolOrderConfirm, ToolOrderCancel, ToolOrderClear:
			return executeOrderTool(ctx, deps.Orders, tool, args)
		case ToolMenuDescribe, ToolMenuCheckAvailability, ToolMenuSandwichDetails, ToolMenuListToppings:
			return executeMenuTool(deps.Menu, tool, args)
		case ToolShopStoreInfo, ToolShopIngredientInfo, ToolShopDietaryOptions, ToolShopComplaint:
			return executeShopTool(deps.Shop, tool, args)
		default:
			return fallback(ctx, tool, args)
		}
	}
}

func DefaultExecutor(agentType contractx.AgentType) Executor {
	return func(ctx context.Context, tool string, _ map[string]any) (contractx.ToolResult, error) {
		return contractx.ToolResult{
			Tool:  tool,
			Error: fmt.Sprintf("tool=%s is unavailable for agent=%s", tool, agentType),
		}, nil
	}
}

// InfosForAgent returns the tool surface each agent is allowed to call. The
// order agent gets mutation tools plus the menu checks it needs to validate
// requests; the customer service agent gets the read-only surfaces.
func InfosForAgent(agentType contractx.AgentType) []*schema.ToolInfo {
	switch agentType {
	case contractx.AgentTypeOrder:
		return []*schema.ToolInfo{
			addItemInfo(), removeItemInfo(), viewOrderInfo(), modifyItemInfo(),
			confirmOrderInfo(), cancelOrderInfo(), clearOrderInfo(),
			checkAvailabilityInfo(), sandwichDetailsInfo(),
		}
	case contractx.AgentTypeCustomerService:
		return []*schema.ToolInfo{
			describeMenuInfo(), checkAvailabilityInfo(), sandwichDetailsInfo(),
			listToppingsInfo(), storeInfoInfo(), ingredientInfoInfo(),
			dietaryOptionsInfo(), complaintInfo(),
		}
	default:
		return nil
	}
}
