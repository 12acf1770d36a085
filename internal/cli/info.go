package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"wincon/console"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show console handles, buffer geometry, font and modes",
	Args:  cobra.NoArgs,
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

type section struct {
	title string
	rows  [][2]string
}

func (s *section) add(key, value string) {
	s.rows = append(s.rows, [2]string{key, value})
}

func (s *section) addErr(key string, err error) {
	s.add(key, errValue(err))
}

func runInfo(cmd *cobra.Command, _ []string) error {
	sections := []section{
		streamSection(),
		outputSection(),
		inputSection(),
	}
	out := make([]string, 0, len(sections))
	for _, s := range sections {
		out = append(out, renderTable(s.title, s.rows))
	}
	fmt.Fprintln(cmd.OutOrStdout(), strings.Join(out, "\n\n"))
	return nil
}

func streamSection() section {
	s := section{title: "Streams"}
	for _, f := range []*os.File{os.Stdin, os.Stdout, os.Stderr} {
		s.add(f.Name(), fmt.Sprintf("terminal=%t", term.IsTerminal(int(f.Fd()))))
	}
	return s
}

func outputSection() section {
	s := section{title: "Output"}

	std, err := console.StdOutput()
	if err != nil {
		s.addErr("std handle", err)
	} else {
		s.add("std handle", std.String())
		_ = std.Close()
	}

	buf, err := console.CurrentScreenBuffer()
	if err != nil {
		s.addErr("active buffer", err)
		return s
	}
	defer buf.Close()
	s.add("active buffer", buf.Handle().String())

	if info, err := buf.Info(); err != nil {
		s.addErr("buffer", err)
	} else {
		s.add("buffer size", formatSize(info.BufferSize()))
		s.add("window", formatRect(info.TerminalWindow()))
		s.add("window size", formatSize(info.TerminalSize()))
		s.add("max window", formatSize(info.MaxWindowSize()))
		s.add("cursor", formatCoord(info.CursorPos()))
		s.add("attributes", fmt.Sprintf("%#06x", info.Attributes()))
	}

	if font, err := buf.FontInfo(); err != nil {
		s.addErr("font", err)
	} else {
		s.add("font", fmt.Sprintf("#%d %s", font.Index(), formatSize(font.Size())))
	}

	con := console.ConsoleFrom(buf.Handle().Clone())
	defer con.Close()
	if largest, err := con.LargestWindowSize(); err != nil {
		s.addErr("largest window", err)
	} else {
		s.add("largest window", formatCoord(largest))
	}

	mode := console.ConsoleModeFrom(buf.Handle().Clone())
	defer mode.Close()
	if m, err := mode.Mode(); err != nil {
		s.addErr("mode", err)
	} else {
		s.add("mode", describeMode(m, false))
	}
	return s
}

func inputSection() section {
	s := section{title: "Input"}

	h, err := console.CurrentInput()
	if err != nil {
		s.addErr("handle", err)
		return s
	}
	s.add("handle", h.String())

	con := console.ConsoleFrom(h.Clone())
	defer con.Close()
	if n, err := con.NumberOfInputEvents(); err != nil {
		s.addErr("pending events", err)
	} else {
		s.add("pending events", fmt.Sprint(n))
	}

	mode := console.ConsoleModeFrom(h)
	defer mode.Close()
	if m, err := mode.Mode(); err != nil {
		s.addErr("mode", err)
	} else {
		s.add("mode", describeMode(m, true))
	}
	return s
}
