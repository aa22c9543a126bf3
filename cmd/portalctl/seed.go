package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"portfolioapi/internal/database/migration"
	"portfolioapi/internal/repository/postgres"
	"portfolioapi/internal/seed"
	"portfolioapi/internal/storage"
)

func newSeedCmd(e *env) *cobra.Command {
	var (
		file  string
		reset bool
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Import content from a JSON file",
		Long: `Upserts the profile and resume/passion texts from the file. With --reset,
all content is cleared first and every list in the file is inserted in order.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd)

			payload, err := seed.LoadFile(file)
			if err != nil {
				return err
			}
			if err := migration.EnsureMigrated(ctx, e.db, e.log, e.cfg.Database.Host); err != nil {
				return err
			}
			store, err := storage.Open(e.cfg.Media, e.cfg.MinIO)
			if err != nil {
				return fmt.Errorf("open storage: %w", err)
			}

			s := seed.NewSeeder(postgres.NewContentPostgres(e.db), store, e.log)
			res, err := s.Run(ctx, payload, seed.Options{Reset: reset, BaseDir: filepath.Dir(file)})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d records, uploaded %d media files.\n", res.Inserted, res.Uploaded)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "data/content.json", "seed file")
	cmd.Flags().BoolVar(&reset, "reset", false, "clear existing content before importing")
	return cmd
}
