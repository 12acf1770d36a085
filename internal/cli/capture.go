package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"wincon/console"
	"wincon/internal/screen"
)

var (
	captureAll   bool
	captureWidth int
)

var captureCmd = &cobra.Command{
	Use:   "capture",
	Short: "Print the text of the active screen buffer",
	Long: `Print the characters visible in the console window, or the whole buffer
with --all. Attributes are not captured.`,
	Args: cobra.NoArgs,
	RunE: runCapture,
}

func init() {
	rootCmd.AddCommand(captureCmd)
	captureCmd.Flags().BoolVarP(&captureAll, "all", "a", false, "capture the whole buffer, not just the window")
	captureCmd.Flags().IntVarP(&captureWidth, "width", "w", 0, "truncate lines to this many columns")
	captureCmd.Flags().Int("max-lines", 0, "keep only the last N lines")
	captureCmd.Flags().Bool("trim", true, "drop blank lines at the bottom")
	_ = viper.BindPFlag("capture.max_lines", captureCmd.Flags().Lookup("max-lines"))
	_ = viper.BindPFlag("capture.trim", captureCmd.Flags().Lookup("trim"))
}

// region is a rectangle of buffer cells.
type region struct {
	left, top  int16
	cols, rows int16
}

// captureRegion returns the window, or the whole buffer when all is set.
func captureRegion(info console.ScreenBufferInfo, all bool) region {
	if all {
		size := info.BufferSize()
		return region{cols: size.Width, rows: size.Height}
	}
	win := info.TerminalWindow()
	return region{left: win.Left, top: win.Top, cols: win.Width(), rows: win.Height()}
}

func readRegion(con *console.Console, r region) (*screen.Snapshot, error) {
	snap := screen.New(int(r.cols))
	for y := r.top; y < r.top+r.rows; y++ {
		text, err := con.ReadOutputCharacters(console.NewCoord(r.left, y), uint32(r.cols))
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", y, err)
		}
		snap.AppendRow(text)
	}
	return snap, nil
}

func runCapture(cmd *cobra.Command, _ []string) error {
	buf, err := console.CurrentScreenBuffer()
	if err != nil {
		return err
	}
	defer buf.Close()

	info, err := buf.Info()
	if err != nil {
		return err
	}

	con := console.ConsoleFrom(buf.Handle().Clone())
	defer con.Close()

	r := captureRegion(info, captureAll)
	logger.Debug("capturing", "left", r.left, "top", r.top, "cols", r.cols, "rows", r.rows)
	snap, err := readRegion(con, r)
	if err != nil {
		return err
	}

	lines := snap.Lines(cfg.Capture.MaxLines, cfg.Capture.Trim)
	if captureWidth > 0 {
		for i, l := range lines {
			lines[i] = ansi.Truncate(l, captureWidth, "")
		}
	}
	if len(lines) > 0 {
		fmt.Fprintln(cmd.OutOrStdout(), strings.Join(lines, "\n"))
	}
	return nil
}
