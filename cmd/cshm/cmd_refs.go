package main

import (
	"fmt"

	"github.com/katalvlaran/cshm/reflib"
	"github.com/spf13/cobra"
)

var refsCmd = &cobra.Command{
	Use:   "refs",
	Short: "List the reference library's coverage",
	Long: `refs lists the reference polyhedra the built-in library carries for one
coordination number, or every coordination number it supports when --cn is
omitted. Lets an operator discover library contents without running an
analysis.`,
	RunE: runRefs,
}

func init() {
	refsCmd.Flags().Int("cn", 0, "coordination number to list (0: list all supported CNs)")
}

func runRefs(cmd *cobra.Command, args []string) error {
	lib := reflib.Default()
	cn, _ := cmd.Flags().GetInt("cn")

	if cn == 0 {
		for _, n := range lib.CoordinationNumbers() {
			fmt.Printf("CN=%-2d  %d reference(s)\n", n, len(lib.ForCN(n)))
		}
		return nil
	}

	refs := lib.ForCN(cn)
	if len(refs) == 0 {
		return newNoReference(fmt.Sprintf("no reference geometries for CN=%d", cn))
	}
	for _, ref := range refs {
		fmt.Printf("%-10s %-28s %s\n", ref.Code, ref.Name, ref.PointGroup)
	}
	return nil
}
