// Package main provides portalctl, the offline tooling for the portfolio
// content store: schema migration, seeding, and static export.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"

	"portfolioapi/internal/config"
	"portfolioapi/internal/database"
	"portfolioapi/internal/logging"
)

// env is shared by every subcommand and opened in PersistentPreRunE.
type env struct {
	cfg *config.AppConfig
	log logging.Logger
	db  *sql.DB
}

var app = &env{}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(app).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(e *env) *cobra.Command {
	root := &cobra.Command{
		Use:   "portalctl",
		Short: "Manage portfolio content outside the API server",
		Long: `portalctl migrates the content schema, seeds content from a JSON file,
and exports published content and media for static frontend deployment.`,
		SilenceUsage:       true,
		PersistentPreRunE:  e.open,
		PersistentPostRunE: e.close,
	}

	root.AddCommand(newMigrateCmd(e))
	root.AddCommand(newSeedCmd(e))
	root.AddCommand(newExportCmd(e))
	return root
}

// open loads configuration and connects to the database.
func (e *env) open(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "help" || !cmd.Runnable() {
		return nil
	}

	e.cfg = config.Load()
	e.log = logging.NewJSON(os.Stderr, e.cfg.Location()).With("command", cmd.Name())

	db, err := database.NewPostgres(commandContext(cmd), e.cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	e.db = db
	return nil
}

func (e *env) close(cmd *cobra.Command, args []string) error {
	if e.db != nil {
		return e.db.Close()
	}
	return nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
