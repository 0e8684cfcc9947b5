package cli

import (
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"guardgen/internal/plan"
	"guardgen/shape"
	"guardgen/view"
)

var dumpShapes bool

func init() {
	inspectCmd.Flags().BoolVar(&dumpShapes, "dump", false, "dump the full derived shapes")
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Show how each entity's members classify under its pattern",
	Long: "Resolves the configuration and prints the open/restricted partition of every " +
		"entity's instance and static facets without generating anything.",
	Args: cobra.NoArgs,
	RunE: runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	p, _, err := buildPlan(cfgPath)
	if err != nil {
		return err
	}

	for i := range p.Entities {
		printEntity(cmd, &p.Entities[i])
	}

	return nil
}

func printEntity(cmd *cobra.Command, ep *plan.EntityPlan) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "%s (pattern %s, track_origin %v)\n",
		ep.Captured.Entity.ID, ep.Pattern, ep.TrackOrigin)

	printFacet(cmd, shape.FacetInstance, ep.Wrapped.Instance())
	printFacet(cmd, shape.FacetStatic, ep.Wrapped.Static())

	if dumpShapes {
		spew.Fdump(out, ep.Wrapped.Instance().Shape(), ep.Wrapped.Static().Shape())
	}

	fmt.Fprintln(out)
}

func printFacet(cmd *cobra.Command, facet shape.Facet, r view.RestrictedShape) {
	part := r.Partition()
	if len(part.Open) == 0 && len(part.Restricted) == 0 {
		return
	}

	fmt.Fprintf(cmd.OutOrStdout(), "  %s: open [%s] restricted [%s]\n",
		facet,
		strings.Join(part.Open, ", "),
		strings.Join(part.Restricted, ", "))
}
