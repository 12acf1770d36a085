package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"wincon/console"
	"wincon/internal/vt"
)

var (
	writeAttr string
	writeAt   string
	writeRaw  bool
)

var writeCmd = &cobra.Command{
	Use:   "write [text...]",
	Short: "Write text to the active screen buffer",
	Long: `Write text at the cursor, or at --at X,Y, through the console API.
Without arguments the text is read from stdin. Escape sequences are removed
when the buffer does not process virtual terminal sequences, unless --raw is
given.`,
	RunE: runWrite,
}

func init() {
	rootCmd.AddCommand(writeCmd)
	writeCmd.Flags().StringVar(&writeAttr, "attr", "", "character attributes for the text, e.g. 0x1f")
	writeCmd.Flags().StringVar(&writeAt, "at", "", "move the cursor to X,Y first")
	writeCmd.Flags().BoolVar(&writeRaw, "raw", false, "write escape sequences unchanged")
}

// prepareText strips escape sequences unless the buffer interprets them.
func prepareText(text string, mode uint32, raw bool) string {
	if raw || mode&console.EnableVirtualTerminalProcessing != 0 || !vt.Contains(text) {
		return text
	}
	return vt.Strip(text)
}

func runWrite(cmd *cobra.Command, args []string) error {
	var text string
	if len(args) > 0 {
		text = strings.Join(args, " ")
	} else {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		text = string(data)
	}

	buf, err := console.CurrentScreenBuffer()
	if err != nil {
		return err
	}
	defer buf.Close()

	con := console.ConsoleFrom(buf.Handle().Clone())
	defer con.Close()

	mode := console.ConsoleModeFrom(buf.Handle().Clone())
	defer mode.Close()
	m, err := mode.Mode()
	if err != nil {
		return err
	}
	text = prepareText(text, m, writeRaw)

	if writeAt != "" {
		pos, err := parseCoord(writeAt)
		if err != nil {
			return err
		}
		if err := con.SetCursorPosition(pos); err != nil {
			return err
		}
	}

	if writeAttr != "" {
		attr, err := parseAttr(writeAttr)
		if err != nil {
			return err
		}
		info, err := buf.Info()
		if err != nil {
			return err
		}
		if err := con.SetTextAttribute(attr); err != nil {
			return err
		}
		defer func() {
			if err := con.SetTextAttribute(info.Attributes()); err != nil {
				logger.Error("restore attributes failed", "error", err)
			}
		}()
	}

	n, err := con.WriteString(text)
	logger.Debug("wrote text", "bytes", n, "of", len(text))
	return err
}
