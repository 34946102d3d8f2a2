package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AnyUserName/imgbudget/internal/ingest"
	"github.com/AnyUserName/imgbudget/internal/pipeline"
	"github.com/AnyUserName/imgbudget/internal/report"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Run the upload checks without compressing",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(_ *cobra.Command, args []string) error {
	src, err := pipeline.LoadSource(args[0])
	if err != nil {
		return err
	}

	if err := ingest.Validate(src); err != nil {
		fmt.Printf("  ✗ %s\n", ingest.Message(err, err.Error()))
		return fmt.Errorf("check %s: %w", src.Filename, err)
	}

	fmt.Printf("  ✓ %s (%s, %s)\n", src.Filename, src.MediaType, report.FormatSize(src.Size()))
	if ingest.WithinBudget(src) {
		fmt.Println("  ✓ Within budget — will be stored unchanged")
	} else {
		fmt.Printf("  • Over budget by %s — will be re-encoded\n",
			report.FormatSize(src.Size()-ingest.Budget))
	}
	return nil
}
