package cli

import (
	"fmt"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"wincon/console"
)

var (
	fillChar  string
	fillAttr  string
	fillAt    string
	fillCount uint32
)

var fillCmd = &cobra.Command{
	Use:   "fill",
	Short: "Fill cells of the active screen buffer",
	Long: `Fill --count cells starting at --at X,Y with a character, attributes or
both. Filling wraps to following rows and stops at the end of the buffer.`,
	Args: cobra.NoArgs,
	RunE: runFill,
}

func init() {
	rootCmd.AddCommand(fillCmd)
	fillCmd.Flags().StringVar(&fillChar, "char", "", "character to write")
	fillCmd.Flags().StringVar(&fillAttr, "attr", "", "attributes to write, e.g. 0x1f")
	fillCmd.Flags().StringVar(&fillAt, "at", "0,0", "first cell as X,Y")
	fillCmd.Flags().Uint32VarP(&fillCount, "count", "n", 0, "number of cells (0 fills one row)")
}

func fillRune(s string) (rune, error) {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || size != len(s) {
		return 0, fmt.Errorf("--char must be exactly one character, got %q", s)
	}
	return r, nil
}

func runFill(cmd *cobra.Command, _ []string) error {
	if fillChar == "" && fillAttr == "" {
		return fmt.Errorf("nothing to fill: give --char, --attr or both")
	}
	start, err := parseCoord(fillAt)
	if err != nil {
		return err
	}

	buf, err := console.CurrentScreenBuffer()
	if err != nil {
		return err
	}
	defer buf.Close()

	count := fillCount
	if count == 0 {
		info, err := buf.Info()
		if err != nil {
			return err
		}
		count = uint32(info.BufferSize().Width)
	}

	con := console.ConsoleFrom(buf.Handle().Clone())
	defer con.Close()

	out := cmd.OutOrStdout()
	if fillChar != "" {
		r, err := fillRune(fillChar)
		if err != nil {
			return err
		}
		n, err := con.FillWithCharacter(start, count, r)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "filled %d cells with %q\n", n, r)
	}
	if fillAttr != "" {
		attr, err := parseAttr(fillAttr)
		if err != nil {
			return err
		}
		n, err := con.FillWithAttribute(start, count, attr)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "filled %d cells with attributes %#06x\n", n, attr)
	}
	return nil
}
