package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/brackup/brackup-cli/internal/api"
	"github.com/brackup/brackup-cli/internal/cache"
	"github.com/brackup/brackup-cli/internal/config"
	"github.com/brackup/brackup-cli/internal/metrics"
	"github.com/brackup/brackup-cli/internal/router"
	"github.com/brackup/brackup-cli/internal/session"
	"github.com/brackup/brackup-cli/internal/storage"
)

var (
	refresh bool

	app *services
)

// services holds the constructed client: one session store, one router,
// and one resource cache per entity, injected into every command.
type services struct {
	sess        *session.Service
	router      *router.Router
	games       *cache.GamesStore
	teams       *cache.TeamsStore
	tournaments *cache.TournamentsStore
	users       *cache.UsersStore
	matches     *cache.MatchesService
	teardown    func()
}

var rootCmd = &cobra.Command{
	Use:   "brackup",
	Short: "A terminal client for the brackup tournament platform",
	Long: `A command-line client for the brackup gaming-tournament platform:
authenticate against the platform's identity provider, browse and manage
tournaments, teams, games and users, and render server-computed brackets.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		app, err = newServices(cmd)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if app != nil && app.teardown != nil {
			app.teardown()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&refresh, "refresh", false, "Bypass the local cache and fetch fresh data")
}

// newServices wires the whole client: config, local storage, the request
// pipeline, the session store, the route table and the resource caches.
// A persisted token is verified here, before any command runs, so guards
// never race against an unresolved verification.
func newServices(cmd *cobra.Command) (*services, error) {
	cfg := config.Load()
	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	db, dbTeardown, err := storage.Open(cfg.DBName, cfg.Turso.PrimaryURL, cfg.Turso.AuthToken)
	if err != nil {
		return nil, fmt.Errorf("failed to open local storage: %w", err)
	}
	store := storage.New(db)

	metricsSvc := metrics.NewService()
	nav := router.New()
	client := api.NewClient(cfg.APIBaseURL, session.NewTokenSource(store), nav, metricsSvc)
	sess := session.New(store, client, nav, metricsSvc)
	nav.Register(router.Routes(sess)...)

	sess.Restore(cmd.Context())

	return &services{
		sess:        sess,
		router:      nav,
		games:       cache.NewGames(client, metricsSvc),
		teams:       cache.NewTeams(client, metricsSvc),
		tournaments: cache.NewTournaments(client, metricsSvc),
		users:       cache.NewUsers(client, metricsSvc),
		matches:     cache.NewMatches(client, metricsSvc),
		teardown:    dbTeardown,
	}, nil
}

// navigate runs a route through the guards exactly as a browser route
// change would. A redirect means the command may not proceed.
func navigate(cmd *cobra.Command, path string) error {
	resolved := app.router.Navigate(cmd.Context(), path)
	if resolved != path {
		return fmt.Errorf("redirected to %s", resolved)
	}
	return nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}
