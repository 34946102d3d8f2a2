package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/AnyUserName/imgbudget/internal/logger"
)

var (
	version = "0.1.0"
	verbose bool
	log     = zap.NewNop().Sugar()
)

var rootCmd = &cobra.Command{
	Use:   "imgbudget",
	Short: "Validate uploaded images and fit them under the 1 MB budget",
	Long: `imgbudget — the image ingestion step of the admin panel.

Checks the declared type and filename of an upload, passes files of
1 MB or less through untouched, and re-encodes larger ones (longest side
capped at 1080px, quality stepped down from 0.8) until they fit.`,
	Version: version,
	PersistentPreRun: func(*cobra.Command, []string) {
		log = logger.New("imgbudget", verbose)
	},
	PersistentPostRun: func(*cobra.Command, []string) {
		_ = log.Sync()
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"imgbudget %s (%s/%s, %s)\n",
		version, runtime.GOOS, runtime.GOARCH, runtime.Version(),
	))
}
