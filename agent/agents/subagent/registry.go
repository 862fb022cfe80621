package subagent

import (
	"context"
	"fmt"

	contractx "delivoice/agent/contract"
	llmx "delivoice/agent/llm"
	promptx "delivoice/agent/prompt"
)

type registryImpl struct {
	router          contractx.Router
	order           contractx.Subagent
	customerService contractx.Subagent
}

func (r *registryImpl) Router() contractx.Router {
	return r.router
}

func (r *registryImpl) Order() contractx.Subagent {
	return r.order
}

func (r *registryImpl) CustomerService() contractx.Subagent {
	return r.customerService
}

func NewRegistry(ctx context.Context, cfg llmx.Config) (contractx.Registry, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	prompts := promptx.LoadPromptSet()
	if prompts.Supervisor == "" || prompts.Order == "" || prompts.CustomerService == "" {
		return nil, contractx.ErrPromptMissing
	}

	supervisorModelCfg := cfg.OpenRouterFor(contractx.AgentTypeSupervisor)
	supervisorModel, err := supervisorModelCfg.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: create supervisor model: %v", contractx.ErrModelInvoke, err)
	}
	orderModelCfg := cfg.OpenRouterFor(contractx.AgentTypeOrder)
	orderModel, err := orderModelCfg.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: create order model: %v", contractx.ErrModelInvoke, err)
	}
	customerServiceModelCfg := cfg.OpenRouterFor(contractx.AgentTypeCustomerService)
	customerServiceModel, err := customerServiceModelCfg.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: create customer service model: %v", contractx.ErrModelInvoke, err)
	}

	router, err := newRouter(ctx, supervisorModel, prompts.Supervisor)
	if err != nil {
		return nil, err
	}

	order, err := newSubagent(ctx, contractx.AgentTypeOrder, orderModel, prompts.Order)
	if err != nil {
		return nil, err
	}
	customerService, err := newSubagent(ctx, contractx.AgentTypeCustomerService, customerServiceModel, prompts.CustomerService)
	if err != nil {
		return nil, err
	}

	return &registryImpl{
		router:          router,
		order:           order,
		customerService: customerService,
	}, nil
}
