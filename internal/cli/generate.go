package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"guardgen/internal/gen"
)

func init() {
	rootCmd.AddCommand(generateCmd)
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate guarded view files from the configuration",
	Long: "Loads the configured packages, classifies each entity's members against its " +
		"guard pattern, and writes one view file per entity to the output directory.",
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	p, _, err := buildPlan(cfgPath)
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

	logger.Info("views generated",
		zap.Int("entities", len(p.Entities)),
		zap.Int("files", len(files)),
		zap.String("dir", p.OutputDir))

	return nil
}
