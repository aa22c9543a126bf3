package main

import (
	"github.com/spf13/cobra"

	"portfolioapi/internal/database/migration"
)

func newMigrateCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the content schema if it does not exist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return migration.EnsureMigrated(commandContext(cmd), e.db, e.log, e.cfg.Database.Host)
		},
	}
}
