package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/flytaly/cardtext/cmd/preview"
)

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Preview a card text file and re-render it on every change",
	Long: `Preview a card text file and re-render it on every change

Both the file and the host config are polled for changes.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfig(cmd)
		cfg.Source = args[0]
		_, err := preview.NewProgram(cfg).Run()
		return err
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().DurationP("interval", "i", 500*time.Millisecond, "poll interval duration (e.g. 1s, 500ms...)")
}
