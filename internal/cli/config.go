package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"wincon/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	RunE:  runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		path := viper.ConfigFileUsed()
		if path == "" {
			path = config.ConfigFile()
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	w := cmd.OutOrStdout()
	rows := [][2]string{
		{"alt.width", fmt.Sprint(cfg.Alt.Width)},
		{"alt.height", fmt.Sprint(cfg.Alt.Height)},
		{"alt.restore", fmt.Sprint(cfg.Alt.Restore)},
		{"capture.trim", fmt.Sprint(cfg.Capture.Trim)},
		{"capture.max_lines", fmt.Sprint(cfg.Capture.MaxLines)},
		{"events.timeout", cfg.Events.Timeout.String()},
		{"events.max", fmt.Sprint(cfg.Events.Max)},
		{"logging.level", cfg.Logging.Level},
		{"logging.file", cfg.Logging.File},
	}
	fmt.Fprintln(w, renderTable("Configuration", rows))
	return nil
}
