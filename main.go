package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	subagentx "delivoice/agent/agents/subagent"
	supervisorx "delivoice/agent/agents/supervisor"
	contractx "delivoice/agent/contract"
	llmx "delivoice/agent/llm"
	menux "delivoice/agent/menu"
	orderx "delivoice/agent/order"
	shopinfox "delivoice/agent/shopinfo"
	statex "delivoice/agent/state"
	toolx "delivoice/agent/tool"
	configx "delivoice/pkg/config"
	_ "delivoice/pkg/logger/autoload"
	openrouterx "delivoice/pkg/openrouter"
	qstashx "delivoice/pkg/qstash"
)

type AppConfig struct {
	ChannelType       string `envconfig:"CHANNEL_TYPE" default:"voice"`
	ThreadStore       string `envconfig:"THREAD_STORE" default:"memory"`
	KitchenWebhookURL string `envconfig:"KITCHEN_WEBHOOK_URL"`
	ReceiptsDSN       string `envconfig:"RECEIPTS_DSN"`
}

func main() {
	ctx := context.Background()

	appCfg := configx.MustNew[AppConfig]("")

	orderOpts := []orderx.Option{}
	if dsn := strings.TrimSpace(appCfg.ReceiptsDSN); dsn != "" {
		archive := orderx.NewPostgresArchive(dsn)
		if err := archive.Init(ctx); err != nil {
			log.Fatal().Err(err).Msg("init receipt archive")
		}
		defer archive.Close()
		orderOpts = append(orderOpts, orderx.WithArchive(archive))
	}
	if destination := strings.TrimSpace(appCfg.KitchenWebhookURL); destination != "" {
		qstashCfg := configx.MustNew[qstashx.Config]("QSTASH")
		notifier := orderx.NewKitchenNotifier(qstashx.MustNew(*qstashCfg), destination)
		orderOpts = append(orderOpts, orderx.WithNotifier(notifier))
	}

	deps := toolx.Deps{
		Menu:   menux.Default(),
		Orders: orderx.NewStore(orderOpts...),
		Shop:   shopinfox.Default(),
	}
	gateway, err := toolx.NewGateway(deps)
	if err != nil {
		log.Fatal().Err(err).Msg("build tool gateway")
	}

	llmCfg := configx.MustNew[llmx.Config]("OPENROUTER")
	sdkCfg := llmCfg.OpenRouterFor(contractx.AgentTypeSupervisor)
	sdkClient := openrouterx.NewClient(sdkCfg)
	if sdkClient == nil {
		log.Fatal().Msg("failed to initialize openrouter client")
	}
	if _, err := sdkClient.Models.List(ctx); err != nil {
		log.Warn().Err(err).Msg("openrouter connectivity check failed")
	}

	registry, err := subagentx.NewRegistry(ctx, *llmCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("build model registry")
	}

	store, err := newThreadStore(appCfg.ThreadStore)
	if err != nil {
		log.Fatal().Err(err).Msg("build thread store")
	}

	service, err := supervisorx.New(store, registry, gateway, supervisorx.Config{
		ChannelType: appCfg.ChannelType,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("build supervisor")
	}

	runREPL(ctx, service)
}

func newThreadStore(backend string) (statex.Store, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", "memory":
		return statex.NewMemoryStore(), nil
	case "redis":
		cfg := configx.MustNew[statex.UpstashRedisConfig]("UPSTASH_REDIS")
		return statex.NewUpstashRedisStore(*cfg)
	default:
		return nil, fmt.Errorf("unknown thread store backend %q", backend)
	}
}

func runREPL(ctx context.Context, service *supervisorx.Supervisor) {
	threadID := uuid.NewString()
	fmt.Println("Sandwich shop assistant. Type a message, or 'quit' to exit.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		if strings.EqualFold(text, "quit") || strings.EqualFold(text, "exit") {
			return
		}

		reply, err := service.HandleTurn(ctx, threadID, text)
		if err != nil {
			log.Error().Err(err).Msg("turn failed")
			fmt.Println("Sorry, something went wrong. Could you say that again?")
			continue
		}
		fmt.Println(reply)
	}
}
