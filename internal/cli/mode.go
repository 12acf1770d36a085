package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"wincon/console"
)

var modeInput bool

var modeCmd = &cobra.Command{
	Use:   "mode",
	Short: "Get or change the console mode",
	Long: `Get or change the mode of the active screen buffer, or of the console
input buffer with --input. Flags are given by name (see "wincon mode flags")
or as a hex value.`,
	Args: cobra.NoArgs,
	RunE: runModeGet,
}

var modeGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Print the current mode",
	Args:  cobra.NoArgs,
	RunE:  runModeGet,
}

var modeSetCmd = &cobra.Command{
	Use:   "set <hex>",
	Short: "Replace the mode with a hex value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := parseMode(args[0])
		if err != nil {
			return err
		}
		return updateMode(cmd, func(uint32) uint32 { return v })
	},
}

var modeEnableCmd = &cobra.Command{
	Use:   "enable <flag>...",
	Short: "Turn mode flags on",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bits, err := parseModeFlags(args, modeInput)
		if err != nil {
			return err
		}
		return updateMode(cmd, func(cur uint32) uint32 { return applyMode(cur, bits, true) })
	},
}

var modeDisableCmd = &cobra.Command{
	Use:   "disable <flag>...",
	Short: "Turn mode flags off",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bits, err := parseModeFlags(args, modeInput)
		if err != nil {
			return err
		}
		return updateMode(cmd, func(cur uint32) uint32 { return applyMode(cur, bits, false) })
	},
}

var modeFlagsCmd = &cobra.Command{
	Use:   "flags",
	Short: "List the known mode flags",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		flags := console.OutputModeFlags()
		title := "Output mode flags"
		if modeInput {
			flags = console.InputModeFlags()
			title = "Input mode flags"
		}
		rows := make([][2]string, 0, len(flags))
		for _, f := range flags {
			rows = append(rows, [2]string{f.Name, fmt.Sprintf("%#06x", f.Value)})
		}
		fmt.Fprintln(cmd.OutOrStdout(), renderTable(title, rows))
	},
}

func init() {
	rootCmd.AddCommand(modeCmd)
	modeCmd.PersistentFlags().BoolVar(&modeInput, "input", false, "operate on the console input buffer")
	modeCmd.AddCommand(modeGetCmd, modeSetCmd, modeEnableCmd, modeDisableCmd, modeFlagsCmd)
}

// applyMode sets or clears bits in cur.
func applyMode(cur, bits uint32, enable bool) uint32 {
	if enable {
		return cur | bits
	}
	return cur &^ bits
}

func openMode(input bool) (*console.ConsoleMode, error) {
	t := console.CurrentOutputHandle
	if input {
		t = console.CurrentInputHandle
	}
	h, err := console.NewHandle(t)
	if err != nil {
		return nil, err
	}
	return console.ConsoleModeFrom(h), nil
}

func runModeGet(cmd *cobra.Command, _ []string) error {
	m, err := openMode(modeInput)
	if err != nil {
		return err
	}
	defer m.Close()

	cur, err := m.Mode()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), describeMode(cur, modeInput))
	return nil
}

func updateMode(cmd *cobra.Command, next func(uint32) uint32) error {
	m, err := openMode(modeInput)
	if err != nil {
		return err
	}
	defer m.Close()

	cur, err := m.Mode()
	if err != nil {
		return err
	}
	want := next(cur)
	if err := m.SetMode(want); err != nil {
		return err
	}
	logger.Info("mode changed", "input", modeInput, "from", cur, "to", want)
	fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", describeMode(cur, modeInput), describeMode(want, modeInput))
	return nil
}
