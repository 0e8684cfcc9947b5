package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"guardgen/internal/gen"
)

func init() {
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify that generated views are up to date",
	Long: "Regenerates views in memory and compares them against the output directory. " +
		"Exits non-zero when any file is missing or stale; writes nothing.",
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	p, _, err := buildPlan(cfgPath)
	if err != nil {
		return err
	}

	files, err := gen.NewGenerator().Generate(p)
	if err != nil {
		return err
	}

	stale, err := gen.Check(files, p.OutputDir)
	if err != nil {
		return err
	}

	if len(stale) > 0 {
		for _, name := range stale {
			logger.Warn("stale generated file", zap.String("file", name))
		}

		return fmt.Errorf("%d generated file(s) out of date; run guardgen generate", len(stale))
	}

	logger.Info("generated views are up to date", zap.Int("files", len(files)))

	return nil
}
