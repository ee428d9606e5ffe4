package cli

import (
	"fmt"

	"github.com/jankowskaweronika/mojifix/internal/document"
	"github.com/jankowskaweronika/mojifix/internal/model"
	"github.com/jankowskaweronika/mojifix/internal/pipeline"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	dryRun bool
	noSync bool
)

func init() {
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "report what would be replaced without writing")
	rootCmd.Flags().BoolVar(&noSync, "no-sync", false, "skip fsync before replacing files")

	_ = viper.BindPFlag("write.dry_run", rootCmd.Flags().Lookup("dry-run"))
}

func runRepair(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("no-sync") {
		cfg.Write.Sync = !noSync
	}

	paths := args
	if len(paths) == 0 {
		paths = cfg.Target.Paths
	}
	if len(paths) == 0 {
		paths = []string{model.DefaultTarget}
	}

	store := document.NewOSStore(document.WithSync(cfg.Write.Sync))
	p := pipeline.NewPipeline(cfg, store, logger)

	reports, err := p.RunAll(cmd.Context(), paths)

	out := cmd.OutOrStdout()
	pipeline.RenderSummary(out, reports)
	if cfg.Output.Verbose {
		for _, r := range reports {
			pipeline.RenderHits(out, r)
		}
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "Done!")
	return nil
}
