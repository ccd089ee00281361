package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mtcs/engine"
	"github.com/katalvlaran/mtcs/internal/csvio"
)

var checkInputFile string

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "verify a set-off CSV file's post-conditions",
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().StringVarP(&checkInputFile, "input-file", "i", "", "path to the set-offs CSV file")
	_ = checkCmd.MarkFlagRequired("input-file")
}

func runCheck(_ *cobra.Command, _ []string) error {
	in, err := os.Open(checkInputFile)
	if err != nil {
		return fmt.Errorf("open input file: %w", err)
	}
	defer in.Close()

	setoffs, err := csvio.ReadSetOffs(in)
	if err != nil {
		return err
	}

	if err := engine.Check(setoffs, logger); err != nil {
		return err
	}

	logger.Info("check passed", "set_offs", len(setoffs))
	fmt.Println("OK")

	return nil
}
