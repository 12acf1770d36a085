package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"wincon/console"
)

var windowRelative bool

var windowCmd = &cobra.Command{
	Use:   "window <left,top,right,bottom>",
	Short: "Move or resize the console window within its buffer",
	Long: `Set the window rectangle of the active screen buffer. With --relative the
values are added to the current rectangle, so "0,1,0,1" scrolls down a row.`,
	Args: cobra.ExactArgs(1),
	RunE: runWindow,
}

func init() {
	rootCmd.AddCommand(windowCmd)
	windowCmd.Flags().BoolVarP(&windowRelative, "relative", "r", false, "offsets from the current window")
}

// parseRect parses "left,top,right,bottom". Negative values are allowed for
// relative moves.
func parseRect(s string) (console.WindowPositions, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return console.WindowPositions{}, fmt.Errorf("invalid rectangle %q: want left,top,right,bottom", s)
	}
	var v [4]int16
	for i, p := range parts {
		n, err := strconv.ParseInt(strings.TrimSpace(p), 10, 16)
		if err != nil {
			return console.WindowPositions{}, fmt.Errorf("invalid rectangle value %q", p)
		}
		v[i] = int16(n)
	}
	return console.WindowPositions{Left: v[0], Top: v[1], Right: v[2], Bottom: v[3]}, nil
}

func runWindow(cmd *cobra.Command, args []string) error {
	rect, err := parseRect(args[0])
	if err != nil {
		return err
	}

	buf, err := console.CurrentScreenBuffer()
	if err != nil {
		return err
	}
	defer buf.Close()

	con := console.ConsoleFrom(buf.Handle().Clone())
	defer con.Close()
	if err := con.SetWindowInfo(!windowRelative, rect); err != nil {
		return err
	}

	info, err := buf.Info()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), formatRect(info.TerminalWindow()))
	return nil
}
