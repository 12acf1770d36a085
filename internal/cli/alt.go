package cli

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"wincon/console"
	"wincon/internal/config"
)

var altCmd = &cobra.Command{
	Use:   "alt [command [args...]]",
	Short: "Run a command on a fresh screen buffer",
	Long: `Create a new screen buffer, make it active and run a command with its
output attached to that buffer. The previously active buffer is shown again
when the command exits unless --restore=false is given. Without a command the
user's shell is started.`,
	RunE: runAlt,
}

func init() {
	rootCmd.AddCommand(altCmd)
	altCmd.Flags().SetInterspersed(false)
	d := config.Default().Alt
	altCmd.Flags().Int("width", 0, fmt.Sprintf("buffer width in columns, at least the window width (config alt.width, default %d)", d.Width))
	altCmd.Flags().Int("height", 0, fmt.Sprintf("buffer height in rows, at least the window height (config alt.height, default %d)", d.Height))
	altCmd.Flags().Bool("restore", true, "show the previous buffer when the command exits")
	_ = viper.BindPFlag("alt.width", altCmd.Flags().Lookup("width"))
	_ = viper.BindPFlag("alt.height", altCmd.Flags().Lookup("height"))
	_ = viper.BindPFlag("alt.restore", altCmd.Flags().Lookup("restore"))
}

// altSize picks the buffer size for a window of the given size. Zero means
// the window dimension, and the result is never smaller than the window.
func altSize(window console.Size, width, height int) console.Size {
	w, h := int(window.Width), int(window.Height)
	if width > w {
		w = width
	}
	if height > h {
		h = height
	}
	return console.NewSize(int16(min(w, 32767)), int16(min(h, 32767)))
}

func shellCommand() []string {
	if runtime.GOOS == "windows" {
		if comspec := os.Getenv("COMSPEC"); comspec != "" {
			return []string{comspec}
		}
		return []string{"cmd.exe"}
	}
	if sh := os.Getenv("SHELL"); sh != "" {
		return []string{sh}
	}
	return []string{"/bin/sh"}
}

func runAlt(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		args = shellCommand()
	}

	original, err := console.CurrentScreenBuffer()
	if err != nil {
		return fmt.Errorf("open active buffer: %w", err)
	}
	defer original.Close()

	info, err := original.Info()
	if err != nil {
		return fmt.Errorf("read active buffer: %w", err)
	}

	alt, err := console.CreateScreenBuffer()
	if err != nil {
		return fmt.Errorf("create buffer: %w", err)
	}
	defer alt.Close()

	size := altSize(info.TerminalSize(), cfg.Alt.Width, cfg.Alt.Height)
	if err := alt.SetSize(size.Width, size.Height); err != nil {
		return fmt.Errorf("resize buffer to %s: %w", formatSize(size), err)
	}

	out, err := alt.Handle().File("CONOUT$")
	if err != nil {
		return fmt.Errorf("duplicate buffer handle: %w", err)
	}
	defer out.Close()

	if err := alt.Show(); err != nil {
		return fmt.Errorf("show buffer: %w", err)
	}
	logger.Info("alternate buffer active", "handle", alt.Handle().String(), "size", formatSize(size))
	if cfg.Alt.Restore {
		defer func() {
			if err := original.Show(); err != nil {
				logger.Error("restore buffer failed", "error", err)
			}
		}()
	}

	child := exec.CommandContext(cmd.Context(), args[0], args[1:]...)
	child.Stdin = os.Stdin
	child.Stdout = out
	child.Stderr = out
	if err := child.Run(); err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}
	return nil
}
