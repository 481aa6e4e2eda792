package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/podshelf/catalog-api/api"
	"github.com/podshelf/catalog-api/api/types"
	"github.com/podshelf/catalog-api/internal/database"
	"github.com/podshelf/catalog-api/internal/models"
	"github.com/podshelf/catalog-api/internal/services/auth"
	"github.com/podshelf/catalog-api/internal/services/episodes"
	"github.com/podshelf/catalog-api/internal/services/hashtags"
	"github.com/podshelf/catalog-api/internal/services/podcasts"
	"github.com/podshelf/catalog-api/internal/services/reviews"
	"github.com/podshelf/catalog-api/internal/services/users"
	"github.com/podshelf/catalog-api/pkg/config"
)

var (
	serverHost string
	serverPort int
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long: `Start the Podcast Catalog API server with the configured settings.

Example:
  catalog-api serve
  catalog-api serve --port 9090
  catalog-api serve --host 0.0.0.0 --port 8080`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	// Server flags
	serveCmd.Flags().StringVar(&serverHost, "host", "", "server host (overrides config)")
	serveCmd.Flags().IntVar(&serverPort, "port", 0, "server port (overrides config)")
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Use config values if flags not provided
	if serverHost == "" {
		serverHost = cfg.Server.Host
	}
	if serverPort == 0 {
		serverPort = cfg.Server.Port
	}

	if cfg.Auth.TokenSecret == "" {
		return fmt.Errorf("auth.token_secret is required (set CATALOG_AUTH_TOKEN_SECRET)")
	}

	db, err := database.Initialize(cfg.Database.Path, cfg.Database.LogQueries)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("failed to auto-migrate database: %w", err)
	}

	deps := buildDependencies(db, cfg)

	address := fmt.Sprintf("%s:%d", serverHost, serverPort)
	server := api.NewServer(address)
	server.SetDatabase(db)
	server.SetDependencies(deps)

	if err := server.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	fmt.Printf("Starting Podcast Catalog API server on %s\n", address)

	// Channel to listen for interrupt signals
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// Channel to receive server errors
	serverErr := make(chan error, 1)

	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			serverErr <- fmt.Errorf("server error: %w", err)
		}
	}()

	fmt.Printf("Server is ready to handle requests at %s\n", address)

	select {
	case <-stop:
		fmt.Println("\nShutting down server...")
	case err := <-serverErr:
		fmt.Fprintf(os.Stderr, "\n%v\n", err)
		fmt.Println("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Server forced to shutdown: %v\n", err)
		return err
	}

	fmt.Println("Server gracefully stopped")
	return nil
}

// buildDependencies wires repositories and services for the handlers.
func buildDependencies(db *database.DB, cfg *config.Config) *types.Dependencies {
	tokens := auth.NewTokens(cfg.Auth.TokenSecret, cfg.Auth.TokenTTL)

	hashtagService := hashtags.NewService(hashtags.NewRepository(db.DB))
	podcastService := podcasts.NewService(podcasts.NewRepository(db.DB), hashtagService)
	episodeService := episodes.NewService(episodes.NewRepository(db.DB), podcastService)
	reviewService := reviews.NewService(reviews.NewRepository(db.DB), podcastService)
	userService := users.NewService(users.NewRepository(db.DB), tokens)

	return &types.Dependencies{
		DB:             db,
		Tokens:         tokens,
		UserService:    userService,
		PodcastService: podcastService,
		EpisodeService: episodeService,
		ReviewService:  reviewService,
		HashTagService: hashtagService,
	}
}
