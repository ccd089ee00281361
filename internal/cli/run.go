package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mtcs/engine"
	"github.com/katalvlaran/mtcs/internal/csvio"
	"github.com/katalvlaran/mtcs/mcmf"
)

var (
	runInputFile  string
	runOutputFile string
	runSkipCheck  bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "clear an obligation CSV file and write the resulting set-offs",
	RunE:  runRun,
}

func init() {
	runCmd.Flags().StringVarP(&runInputFile, "input-file", "i", "", "path to the obligations CSV file")
	runCmd.Flags().StringVarP(&runOutputFile, "output-file", "o", "", "path to write the set-offs CSV file")
	runCmd.Flags().BoolVar(&runSkipCheck, "skip-check", false, "skip the post-run checker")
	_ = runCmd.MarkFlagRequired("input-file")
	_ = runCmd.MarkFlagRequired("output-file")
}

func runRun(_ *cobra.Command, _ []string) error {
	in, err := os.Open(runInputFile)
	if err != nil {
		return fmt.Errorf("open input file: %w", err)
	}
	defer in.Close()

	obligations, err := csvio.ReadObligations(in)
	if err != nil {
		return err
	}

	eng, err := selectEngine()
	if err != nil {
		return err
	}

	setoffs, err := engine.Run(obligations, eng, logger)
	if err != nil {
		return err
	}

	if !runSkipCheck {
		if err := engine.Check(setoffs, logger); err != nil {
			return err
		}
	}

	out, err := os.Create(runOutputFile)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer out.Close()

	if err := csvio.WriteSetOffs(out, setoffs); err != nil {
		return err
	}

	logger.Info("run complete", "obligations", len(obligations), "set_offs", len(setoffs))

	return nil
}

func selectEngine() (mcmf.Engine[int64, int64], error) {
	switch cfg.Engine.Kind {
	case "network-simplex":
		return &mcmf.NetworkSimplex[int64, int64]{}, nil
	case "primal-dual", "":
		return &mcmf.PrimalDual[int64, int64]{}, nil
	default:
		return nil, fmt.Errorf("unknown engine kind %q", cfg.Engine.Kind)
	}
}
