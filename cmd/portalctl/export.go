package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"portfolioapi/internal/asset"
	"portfolioapi/internal/export"
	"portfolioapi/internal/repository/postgres"
	"portfolioapi/internal/service"
	"portfolioapi/internal/storage"
)

func newExportCmd(e *env) *cobra.Command {
	var opt export.Options

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export published content and media for static deployment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd)
			cfg := e.cfg

			applyExportDefaults(&opt, cmd, cfg.Export.OutputJSON, cfg.Export.OutputMediaDir, cfg.Export.PublicPrefix)
			if opt.BaseURL == "" {
				opt.BaseURL = cfg.PublicBaseURL
			}
			opt.MediaPrefix = storage.PathPrefix(cfg.Media, cfg.MinIO)
			if opt.MediaPrefix == "" {
				e.log.Warn(ctx, "export_presigned_media",
					"detail", "set MINIO_PUBLIC_URL so media URLs can be mapped to files")
			}

			store, err := storage.Open(cfg.Media, cfg.MinIO)
			if err != nil {
				return fmt.Errorf("open storage: %w", err)
			}
			content := service.NewContentService(postgres.NewContentPostgres(e.db), asset.NewResolver(store))

			res, err := export.NewExporter(content, store, e.log).Run(ctx, opt)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Exported content to %s (%d media files copied, %d missing).\n",
				res.OutputJSON, res.Copied, res.Missing)
			return nil
		},
	}

	cmd.Flags().StringVar(&opt.OutputJSON, "output-json", "", "output JSON path (default from EXPORT_OUTPUT_JSON)")
	cmd.Flags().StringVar(&opt.OutputMediaDir, "output-media-dir", "", "output media folder (default from EXPORT_OUTPUT_MEDIA_DIR)")
	cmd.Flags().StringVar(&opt.PublicPrefix, "public-prefix", "", "URL prefix of exported media (default from EXPORT_PUBLIC_PREFIX)")
	cmd.Flags().StringVar(&opt.BaseURL, "base-url", "", "origin used for file URLs before rewriting (default from PUBLIC_BASE_URL)")
	return cmd
}

// applyExportDefaults fills options the user did not set on the command line.
func applyExportDefaults(opt *export.Options, cmd *cobra.Command, outJSON, outMedia, prefix string) {
	if !cmd.Flags().Changed("output-json") {
		opt.OutputJSON = outJSON
	}
	if !cmd.Flags().Changed("output-media-dir") {
		opt.OutputMediaDir = outMedia
	}
	if !cmd.Flags().Changed("public-prefix") {
		opt.PublicPrefix = prefix
	}
}
