package obs

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Artox/open-build-service/api/pkg/backend"
	"github.com/Artox/open-build-service/api/pkg/config"
	"github.com/Artox/open-build-service/api/pkg/controller"
	"github.com/Artox/open-build-service/api/pkg/diststats"
	"github.com/Artox/open-build-service/api/pkg/janitor"
	"github.com/Artox/open-build-service/api/pkg/pubsub"
	"github.com/Artox/open-build-service/api/pkg/server"
	"github.com/Artox/open-build-service/api/pkg/status"
	"github.com/Artox/open-build-service/api/pkg/store"
	"github.com/Artox/open-build-service/api/pkg/system"
)

func NewServeConfig() (*config.ServerConfig, error) {
	serverConfig, err := config.LoadServerConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load server config: %v", err)
	}

	if serverConfig.WebServer.URL == "" {
		serverConfig.WebServer.URL = fmt.Sprintf("http://%s:%d", serverConfig.WebServer.Host, serverConfig.WebServer.Port)
	}
	if serverConfig.Status.PrewarmInterval > 0 && len(serverConfig.Status.PrewarmProjects) == 0 {
		return nil, fmt.Errorf("prewarm projects are required when the prewarm interval is set")
	}

	return &serverConfig, nil
}

func newServeCmd() *cobra.Command {
	envHelpText := generateEnvHelpText(&config.ServerConfig{}, "")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the obs webui api server.",
		Long:  "Start the obs webui api server.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			serveConfig, err := NewServeConfig()
			if err != nil {
				return err
			}
			err = serve(cmd, serveConfig)
			if err != nil {
				log.Fatal().Err(err).Msg("failed to run server")
			}
			return nil
		},
	}

	serveCmd.Long += "\n\nEnvironment Variables:\n\n" + envHelpText

	return serveCmd
}

func serve(cmd *cobra.Command, cfg *config.ServerConfig) error {
	system.SetupLogging(cfg.LogLevel, cfg.LogPretty)

	// Context ensures main goroutine waits until killed with ctrl+c:
	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	janitor := janitor.NewJanitor(cfg.Janitor)
	err := janitor.Initialize()
	if err != nil {
		return err
	}

	store, err := store.NewPostgresStore(cfg.Store)
	if err != nil {
		return err
	}
	defer store.Close()

	backendClient, err := backend.NewClient(cfg.Backend)
	if err != nil {
		return err
	}

	ps, err := pubsub.New(cfg.PubSub)
	if err != nil {
		return err
	}
	defer ps.Close()

	aggregator, err := status.NewAggregator(cfg.Status, store, backendClient)
	if err != nil {
		return err
	}
	defer aggregator.Close()

	runner, err := diststats.NewRunner(cfg.Diststats, &diststats.RealCommander{})
	if err != nil {
		return err
	}
	defer runner.Close()

	appController, err := controller.NewController(controller.Options{
		Store:       store,
		Backend:     backendClient,
		PubSub:      ps,
		Status:      aggregator,
		Diststats:   runner,
		Concurrency: cfg.Status.Concurrency,
	})
	if err != nil {
		return err
	}

	if cfg.Status.PrewarmInterval > 0 {
		prewarmer, err := status.NewPrewarmer(aggregator, cfg.Status.PrewarmProjects, cfg.Status.PrewarmInterval)
		if err != nil {
			return err
		}
		go func() {
			if err := prewarmer.Start(ctx); err != nil {
				log.Error().Err(err).Msg("status prewarmer stopped")
			}
		}()
	}

	apiServer, err := server.NewServer(cfg, store, ps, appController, aggregator, janitor)
	if err != nil {
		return err
	}

	log.Info().Msgf("obs webui api server listening on %s", cfg.WebServer.URL)

	return runServer(ctx, apiServer)
}

func runServer(ctx context.Context, apiServer *server.ObsAPIServer) error {
	if err := apiServer.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("api server failed: %w", err)
	}
	return nil
}
