package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	contractx "github.com/staywise/hotel-dialogue/engine/contract"
	controllerx "github.com/staywise/hotel-dialogue/engine/controller"
	"github.com/staywise/hotel-dialogue/engine/session"
	tierx "github.com/staywise/hotel-dialogue/engine/tier"
	configx "github.com/staywise/hotel-dialogue/pkg/config"
	_ "github.com/staywise/hotel-dialogue/pkg/logger/autoload"
	openrouterx "github.com/staywise/hotel-dialogue/pkg/openrouter"
	"github.com/staywise/hotel-dialogue/recommend"
)

type AppConfig struct {
	ConversationID string `envconfig:"CONVERSATION_ID" split_words:"true" default:"local"`
	StoreBackend   string `envconfig:"STORE_BACKEND" split_words:"true" default:"none"`
	EnableModel    bool   `envconfig:"ENABLE_MODEL" split_words:"true" default:"false"`
}

func main() {
	ctx := context.Background()
	appCfg := configx.MustNew[AppConfig]("")

	store := newStore(ctx, appCfg.StoreBackend)

	classifier := tierx.NewClassifier()
	opts := []controllerx.Option{}

	if store != nil {
		rec, err := store.Load(ctx, appCfg.ConversationID)
		switch {
		case err == nil:
			opts = append(opts, controllerx.WithSnapshot(rec.Snapshot()))
		case errors.Is(err, session.ErrStateNotFound):
			// fresh conversation
		default:
			log.Warn().Err(err).Msg("load conversation state")
		}
	}

	if appCfg.EnableModel {
		openRouterCfg := configx.MustNew[openrouterx.OpenRouterConfig]("OPENROUTER")
		gen, err := recommend.NewModelGenerator(ctx, openRouterCfg)
		if err != nil {
			log.Fatal().Err(err).Msg("initialize recommendation generator")
		}
		sink := recommend.NewAsyncSink(gen, func(text string, _ contractx.RecommendationRequest) {
			fmt.Println()
			fmt.Println("--- recommendations ---")
			fmt.Println(text)
			fmt.Println("-----------------------")
		})
		opts = append(opts, controllerx.WithSink(sink))
	}

	ctrl, err := controllerx.New(classifier, opts...)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize dialogue controller")
	}

	fmt.Println("Hotel booking assistant. Type text, or a token prefixed with '/' (e.g. /main_menu). Ctrl-D to exit.")

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var input contractx.Input
		if rest, ok := strings.CutPrefix(line, "/"); ok {
			input = contractx.Selection{Token: rest}
		} else {
			input = contractx.FreeText{Text: line}
		}

		bundle := ctrl.Process(input)
		fmt.Printf("[%s] %s\n", bundle.StepTag, bundle.Message)
		if bundle.Keyboard.Name != "" {
			fmt.Printf("  keyboard: %s", bundle.Keyboard.Name)
			for k, v := range bundle.Keyboard.Params {
				fmt.Printf(" %s=%s", k, v)
			}
			fmt.Println()
		}

		if store != nil {
			if err := store.Save(ctx, appCfg.ConversationID, ctrl.Record()); err != nil {
				log.Warn().Err(err).Msg("save conversation state")
			}
		}
	}
}

func newStore(ctx context.Context, backend string) session.Store {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", "none":
		return nil
	case "upstash":
		cfg := configx.MustNew[session.UpstashRedisConfig]("UPSTASH_REDIS")
		store, err := session.NewUpstashRedisStore(*cfg)
		if err != nil {
			log.Fatal().Err(err).Msg("open upstash store")
		}
		return store
	case "redis":
		cfg := configx.MustNew[session.RedisConfig]("REDIS")
		client, err := cfg.NewClient(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("connect to redis")
		}
		store, err := session.NewRedisStore(client)
		if err != nil {
			log.Fatal().Err(err).Msg("open redis store")
		}
		return store
	case "postgres":
		cfg := configx.MustNew[session.PostgresConfig]("POSTGRES")
		store, err := session.NewPostgresStore(*cfg)
		if err != nil {
			log.Fatal().Err(err).Msg("open postgres store")
		}
		if err := store.Init(ctx); err != nil {
			log.Fatal().Err(err).Msg("initialize postgres store")
		}
		return store
	default:
		log.Fatal().Str("backend", backend).Msg("unknown store backend")
		return nil
	}
}
