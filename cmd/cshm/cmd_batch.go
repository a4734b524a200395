package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/katalvlaran/cshm/analyzer"
	"github.com/katalvlaran/cshm/batch"
	"github.com/katalvlaran/cshm/coordination"
	"github.com/katalvlaran/cshm/model"
	"github.com/katalvlaran/cshm/reflib"
	"github.com/spf13/cobra"
)

var batchCmd = &cobra.Command{
	Use:   "batch <structure.json>...",
	Short: "Analyze many structures in one run",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runBatch,
}

func init() {
	batchCmd.Flags().Int("metal", -1, "center atom index applied to every structure (default: first metal-indicator atom per structure)")
	batchCmd.Flags().Float64("radius", 0, "coordination radius applied to every structure (0: auto-select via --target-cn)")
	batchCmd.Flags().Int("target-cn", 0, "target coordination number for per-structure radius auto-selection")
	batchCmd.Flags().String("mode", "default", "search intensity: default|intensive")
	batchCmd.Flags().Bool("flexible", false, "run the anisotropic-scale extension on each structure's best match")
	batchCmd.Flags().Uint64("seed", 1, "deterministic PRNG seed, shared across all structures")
	batchCmd.Flags().String("out", "", "write JSON results to this directory instead of stdout")
	batchCmd.Flags().Int("timeout-ms", 0, "per-structure analysis deadline in milliseconds (0: none)")
	batchCmd.Flags().Bool("quiet", false, "suppress progress output")
}

func runBatch(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	if _, err := loadConfig(configPath); err != nil {
		return err
	}

	metalFlag, _ := cmd.Flags().GetInt("metal")
	radiusFlag, _ := cmd.Flags().GetFloat64("radius")
	targetCN, _ := cmd.Flags().GetInt("target-cn")

	items := make([]batch.Item, 0, len(args))
	for _, path := range args {
		structure, err := loadStructure(path)
		if err != nil {
			return err
		}

		center, radius, err := resolveSelection(structure, metalFlag, radiusFlag, targetCN)
		if err != nil {
			return err
		}

		items = append(items, batch.Item{Structure: structure, CenterIndex: center, Radius: radius})
	}

	opts, err := parseCommonOptions(cmd)
	if err != nil {
		return err
	}

	quiet, _ := cmd.Flags().GetBool("quiet")
	an := analyzer.New(reflib.Default())
	d := batch.New(an)

	res, err := d.Run(context.Background(), items, opts, batchProgressRenderer(os.Stderr, quiet))
	if err != nil {
		return err
	}
	if res.State == model.BatchCancelled {
		return newCancelled("batch run cancelled")
	}

	return writeBatchResult(cmd, res)
}

// resolveSelection picks a center and radius for one structure in a batch,
// using an explicit --metal/--radius when given and falling back to
// per-structure auto-selection otherwise.
func resolveSelection(structure model.Structure, metalFlag int, radiusFlag float64, targetCN int) (int, float64, error) {
	center := metalFlag
	if center < 0 {
		centers := coordination.SuggestCenters(structure)
		if len(centers) == 0 {
			return 0, 0, newInputError(fmt.Sprintf("%s: no --metal index given and no metal-indicator atom found", structure.ID))
		}
		center = centers[0]
	}

	radius := radiusFlag
	if radius <= 0 {
		if targetCN < 2 {
			return 0, 0, newInputError(fmt.Sprintf("%s: either --radius > 0 or --target-cn >= 2 is required", structure.ID))
		}
		gap, err := coordination.SuggestRadius(structure, center, targetCN)
		if err != nil {
			return 0, 0, newInputError(err.Error())
		}
		radius = gap.Radius
	}

	return center, radius, nil
}

func writeBatchResult(cmd *cobra.Command, res model.BatchResult) error {
	outDir, _ := cmd.Flags().GetString("out")
	if outDir == "" {
		data, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", outDir, err)
	}
	for idx, ar := range res.Results {
		if ar == nil {
			continue
		}
		data, err := json.MarshalIndent(ar, "", "  ")
		if err != nil {
			return err
		}
		name := ar.StructureID
		if name == "" {
			name = fmt.Sprintf("result-%d", idx)
		}
		path := filepath.Join(outDir, name+".json")
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}
	fmt.Printf("wrote %d result(s) to %s\n", len(res.Results), outDir)
	return nil
}
