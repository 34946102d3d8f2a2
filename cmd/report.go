package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/AnyUserName/imgbudget/internal/report"
)

var reportCmd = &cobra.Command{
	Use:   "report <out_dir_or_report>",
	Short: "Display and verify the report of a compress run",
	Args:  cobra.ExactArgs(1),
	RunE:  runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)
}

func runReport(_ *cobra.Command, args []string) error {
	path := args[0]

	// If path is a directory, look for the report inside.
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		path = filepath.Join(path, report.FileName)
	}

	r, err := report.ReadJSON(path)
	if err != nil {
		return err
	}

	printReport(r)

	errs := r.Verify(filepath.Dir(path))
	if len(errs) == 0 {
		fmt.Println("  ✓ Report is valid — output file present and within budget")
		fmt.Println()
		return nil
	}

	fmt.Printf("  ✗ Report has %d error(s):\n", len(errs))
	for _, e := range errs {
		fmt.Printf("    • %s\n", e)
	}
	fmt.Println()
	return fmt.Errorf("verification failed with %d errors", len(errs))
}

func printReport(r *report.Report) {
	fmt.Println()
	fmt.Printf("  Report version:  %d\n", r.Version)
	fmt.Printf("  Generated:       %s\n", r.GeneratedAt)
	fmt.Printf("  Encoder:         %s\n", r.Encoder)
	fmt.Println()
	fmt.Printf("  Input:           %s (%s, %s)\n", r.Input.Filename, r.Input.MediaType, report.FormatSize(r.Input.Size))

	out := r.Output
	fmt.Printf("  Output:          %s (%s, %s)\n", out.Filename, out.MediaType, report.FormatSize(out.Size))
	if out.WasCompressed {
		saved := float64(0)
		if r.Input.Size > 0 {
			saved = (1 - float64(out.Size)/float64(r.Input.Size)) * 100
		}
		fmt.Printf("  Dimensions:      %dx%d\n", out.Width, out.Height)
		fmt.Printf("  Quality:         %.1f after %d attempt(s)\n", out.Quality, out.Attempts)
		fmt.Printf("  Saved:           %.0f%%\n", saved)
	} else {
		fmt.Println("  Compressed:      no (within budget)")
	}
	fmt.Printf("  Storage key:     %s\n", out.StorageKey)
	fmt.Println()
}
