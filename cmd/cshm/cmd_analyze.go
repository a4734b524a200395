package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/katalvlaran/cshm/analyzer"
	"github.com/katalvlaran/cshm/coordination"
	"github.com/katalvlaran/cshm/model"
	"github.com/katalvlaran/cshm/reflib"
	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <structure.json>",
	Short: "Analyze one structure's coordination geometry",
	Args:  cobra.ExactArgs(1),
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().Int("metal", -1, "center atom index (default: first metal-indicator atom found)")
	analyzeCmd.Flags().Float64("radius", 0, "coordination radius in ångstrom (0: auto-select via --target-cn)")
	analyzeCmd.Flags().Int("target-cn", 0, "target coordination number for radius auto-selection (requires --radius 0)")
	analyzeCmd.Flags().String("mode", "default", "search intensity: default|intensive")
	analyzeCmd.Flags().Bool("flexible", false, "run the anisotropic-scale extension on the best match")
	analyzeCmd.Flags().Uint64("seed", 1, "deterministic PRNG seed")
	analyzeCmd.Flags().String("out", "", "write JSON result to this path instead of stdout")
	analyzeCmd.Flags().Int("timeout-ms", 0, "analysis deadline in milliseconds (0: none)")
	analyzeCmd.Flags().Bool("quiet", false, "suppress progress output")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	if _, err := loadConfig(configPath); err != nil {
		return err
	}

	structure, err := loadStructure(args[0])
	if err != nil {
		return err
	}

	center, _ := cmd.Flags().GetInt("metal")
	if center < 0 {
		centers := coordination.SuggestCenters(structure)
		if len(centers) == 0 {
			return newInputError("no --metal index given and no metal-indicator atom found")
		}
		center = centers[0]
	}

	radius, _ := cmd.Flags().GetFloat64("radius")
	targetCN, _ := cmd.Flags().GetInt("target-cn")
	if radius <= 0 {
		if targetCN < 2 {
			return newInputError("either --radius > 0 or --target-cn >= 2 is required")
		}
		gap, err := coordination.SuggestRadius(structure, center, targetCN)
		if err != nil {
			return newInputError(err.Error())
		}
		radius = gap.Radius
	}

	atoms, err := coordination.Select(structure, center, radius)
	if err != nil {
		return newInputError(err.Error())
	}

	opts, err := parseCommonOptions(cmd)
	if err != nil {
		return err
	}

	quiet, _ := cmd.Flags().GetBool("quiet")
	an := analyzer.New(reflib.Default())

	if !quiet {
		fmt.Fprintf(os.Stderr, "analyzing %s (center=%d, cn=%d, mode=%s)...\n", structure.ID, center, len(atoms), opts.Mode)
	}
	ctx := context.Background()
	result := an.Analyze(ctx, structure.ID, center, atoms, opts, progressRenderer(os.Stderr, quiet))

	if result.Err != "" {
		return analysisErrAsCLIError(result.Err)
	}

	return writeResult(cmd, result)
}

func parseCommonOptions(cmd *cobra.Command) (model.Options, error) {
	modeStr, _ := cmd.Flags().GetString("mode")
	var mode model.Mode
	switch modeStr {
	case "default", "":
		mode = model.ModeDefault
	case "intensive":
		mode = model.ModeIntensive
	default:
		return model.Options{}, newInputError(fmt.Sprintf("unknown --mode %q (want default|intensive)", modeStr))
	}

	flexible, _ := cmd.Flags().GetBool("flexible")
	seed, _ := cmd.Flags().GetUint64("seed")
	timeoutMs, _ := cmd.Flags().GetInt("timeout-ms")

	return model.Options{Mode: mode, Flexible: flexible, Seed: seed, TimeoutMs: timeoutMs}, nil
}

func analysisErrAsCLIError(kind string) error {
	code := exitCodeForAnalysisErr(kind)
	return &cliError{code: code, msg: kind}
}

func writeResult(cmd *cobra.Command, result model.AnalysisResult) error {
	outPath, _ := cmd.Flags().GetString("out")
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}

	if outPath == "" {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}
	fmt.Printf("wrote %s\n", outPath)
	return nil
}
