package llm

import (
	"fmt"
	"strings"
	"time"

	contractx "delivoice/agent/contract"
	openrouterx "delivoice/pkg/openrouter"
)

type Config struct {
	BaseURL            string        `envconfig:"BASE_URL" split_words:"true" default:"https://openrouter.ai/api/v1"`
	APIKey             string        `envconfig:"API_KEY" split_words:"true" required:"true"`
	Model              string        `envconfig:"MODEL" split_words:"true" required:"true"`
	MaxCompletionToken int           `envconfig:"MAX_COMPLETION_TOKEN" split_words:"true" default:"2000"`
	Temperature        float32       `envconfig:"TEMPERATURE" split_words:"true" default:"0.5"`
	Timeout            time.Duration `envconfig:"TIMEOUT" split_words:"true" default:"30s"`
	SiteURL            string        `envconfig:"SITE_URL" split_words:"true"`
	SiteName           string        `envconfig:"SITE_NAME" split_words:"true"`

	SupervisorModel            string  `envconfig:"SUPERVISOR_MODEL" split_words:"true"`
	OrderModel                 string  `envconfig:"ORDER_MODEL" split_words:"true"`
	CustomerServiceModel       string  `envconfig:"CUSTOMER_SERVICE_MODEL" split_words:"true"`
	SupervisorTemperature      float32 `envconfig:"SUPERVISOR_TEMPERATURE" split_words:"true" default:"-1"`
	OrderTemperature           float32 `envconfig:"ORDER_TEMPERATURE" split_words:"true" default:"-1"`
	CustomerServiceTemperature float32 `envconfig:"CUSTOMER_SERVICE_TEMPERATURE" split_words:"true" default:"-1"`
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.APIKey) == "" {
		return fmt.Errorf("%w: openrouter api key is required", contractx.ErrValidation)
	}
	if strings.TrimSpace(c.Model) == "" {
		return fmt.Errorf("%w: default model is required", contractx.ErrValidation)
	}
	return nil
}

// OpenRouterFor returns the model config for one agent, applying per-agent
// overrides on top of the shared defaults.
func (c Config) OpenRouterFor(agentType contractx.AgentType) openrouterx.Config {
	modelName := strings.TrimSpace(c.Model)
	temp := c.Temperature

	switch agentType {
	case contractx.AgentTypeSupervisor:
		if v := strings.TrimSpace(c.SupervisorModel); v != "" {
			modelName = v
		}
		if c.SupervisorTemperature >= 0 {
			temp = c.SupervisorTemperature
		}
	case contractx.AgentTypeOrder:
		if v := strings.TrimSpace(c.OrderModel); v != "" {
			modelName = v
		}
		if c.OrderTemperature >= 0 {
			temp = c.OrderTemperature
		}
	case contractx.AgentTypeCustomerService:
		if v := strings.TrimSpace(c.CustomerServiceModel); v != "" {
			modelName = v
		}
		if c.CustomerServiceTemperature >= 0 {
			temp = c.CustomerServiceTemperature
		}
	}

	maxCompletionToken := c.MaxCompletionToken
	return openrouterx.Config{
		BaseURL:            strings.TrimSpace(c.BaseURL),
		APIKey:             strings.TrimSpace(c.APIKey),
		Model:              modelName,
		MaxCompletionToken: &maxCompletionToken,
		Temperature:        temp,
		Timeout:            c.Timeout,
		SiteURL:            strings.TrimSpace(c.SiteURL),
		SiteName:           strings.TrimSpace(c.SiteName),
	}
}
