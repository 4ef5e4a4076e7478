package cmd

import (
	"github.com/spf13/cobra"

	"task-quick-add/pkg/log"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "quickadd",
	Short: "Extract due dates from task titles",
	Long: `quickadd turns free-form task titles into a cleaned title and a due date.

It understands keywords (today, tomorrow, next week, end of month...),
weekday names, ordinal days (21st), relative offsets (in 3 days),
explicit dates (2024-06-21, 24/06/2021, jun 21) and a time suffix
(at 5pm, @ 9:15am).`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log parser decisions to stderr")
}

func newLogger() log.Logger {
	if !verbose {
		return log.NewNop()
	}
	return log.Init(log.ZapConfig{
		Level:        "debug",
		Mode:         log.ModeDevelopment,
		Encoding:     log.EncodingConsole,
		ColorEnabled: true,
	})
}
