package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/flytaly/cardtext/cmd/preview"
	"github.com/flytaly/cardtext/pkg/log"
	"github.com/flytaly/cardtext/pkg/source"
	"github.com/flytaly/cardtext/pkg/termview"
)

func getConfig(cmd *cobra.Command) preview.ProgramCfg {
	configPath, _ := cmd.Flags().GetString("config")
	logPath, _ := cmd.Flags().GetString("log")
	width, _ := cmd.Flags().GetInt("width")
	dark, _ := cmd.Flags().GetBool("dark")
	links, _ := cmd.Flags().GetBool("links")
	interval, _ := cmd.Flags().GetDuration("interval")
	return preview.ProgramCfg{
		ConfigPath: configPath,
		LogPath:    logPath,
		Width:      width,
		Dark:       dark,
		Links:      links,
		Interval:   interval,
	}
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cardtext <file>",
	Short: "Render card text into styled spans",
	Long: `Render card text into styled spans

The file is either markdown with the element style in YAML front matter,
or a rich text block in card JSON (*.json). Host styling comes from the
config file given with --config, or from the built-in defaults.

Use 'watch' command to re-render the file whenever it changes.
`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfig(cmd)
		logger, err := log.New(cfg.LogPath)
		if err != nil {
			return err
		}
		defer logger.Close()

		res, err := source.RenderFile(source.Options{
			ConfigPath: cfg.ConfigPath,
			Width:      cfg.Width,
			Logger:     logger,
			Location:   time.Local,
		}, args[0])
		if err != nil {
			return err
		}

		if dump, _ := cmd.Flags().GetBool("spans"); dump {
			out, err := yaml.Marshal(res)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), termview.Paint(res, termview.Options{
			Width: cfg.Width,
			Dark:  cfg.Dark,
			Links: cfg.Links,
		}))
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute(version string) {
	rootCmd.Version = version
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "path to the host config file, YAML or JSON (default is the built-in config)")
	rootCmd.PersistentFlags().StringP("log", "l", "", "path to the log file")
	rootCmd.PersistentFlags().IntP("width", "w", 0, "column width used for wrapping and maxLines (0 disables wrapping)")
	rootCmd.PersistentFlags().Bool("dark", false, "adapt colors to a dark terminal")
	rootCmd.PersistentFlags().Bool("links", false, "print link targets after linked text")

	rootCmd.Flags().Bool("spans", false, "print the resolved spans as YAML instead of painting them")
}
