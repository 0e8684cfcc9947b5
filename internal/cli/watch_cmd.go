package cli

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"guardgen/internal/gen"
	"guardgen/internal/watch"
)

func init() {
	rootCmd.AddCommand(watchCmd)
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Regenerate views whenever sources or config change",
	Long: "Generates once, then watches the configuration file and the loaded package " +
		"directories, regenerating after changes settle. Stops on interrupt.",
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	regenerate := func() error {
		p, _, err := buildPlan(cfgPath)
		if err != nil {
			return err
		}

		files, err := gen.NewGenerator().Generate(p)
		if err != nil {
			return err
		}

		return gen.WriteFiles(files, p.OutputDir)
	}

	// First run also discovers the directories to watch.
	p, loader, err := buildPlan(cfgPath)
	if err != nil {
		return err
	}

	files, err := gen.NewGenerator().Generate(p)
	if err != nil {
		return err
	}

	if err := gen.WriteFiles(files, p.OutputDir); err != nil {
		return err
	}

	paths := append([]string{cfgPath}, loader.Dirs()...)

	w, err := watch.New(paths, regenerate, func(err error) {
		if err != nil {
			logger.Error("regeneration failed", zap.Error(err))
		} else {
			logger.Info("views regenerated")
		}
	})
	if err != nil {
		return err
	}

	logger.Info("watching for changes", zap.Strings("paths", paths))

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return w.Run(ctx)
}
