package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"wincon/console"
)

const vkEscape = 0x1B

// errTimedOut is returned by waitInput when the stop semaphore was signaled.
var errTimedOut = errors.New("timed out")

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Print console input records as they arrive",
	Long: `Switch the input buffer to window, mouse and extended mode and print every
input record until Esc is pressed, --max records were read or --timeout
elapsed. The previous input mode is restored on exit.`,
	Args: cobra.NoArgs,
	RunE: runEvents,
}

func init() {
	rootCmd.AddCommand(eventsCmd)
	eventsCmd.Flags().Duration("timeout", 0, "stop after this long (0 waits for Esc)")
	eventsCmd.Flags().Int("max", 0, "stop after this many records (0 is unlimited)")
	_ = viper.BindPFlag("events.timeout", eventsCmd.Flags().Lookup("timeout"))
	_ = viper.BindPFlag("events.max", eventsCmd.Flags().Lookup("max"))
}

// eventsMode turns on the input kinds the command reports and turns off
// line editing and quick edit, which would swallow keys and mouse input.
func eventsMode(mode uint32) uint32 {
	mode |= console.EnableWindowInput | console.EnableMouseInput | console.EnableExtendedFlags
	mode &^= console.EnableLineInput | console.EnableEchoInput | console.EnableQuickEditMode
	return mode
}

func isEscape(rec console.InputRecord) bool {
	return rec.Type == console.KeyEvent && rec.Key.KeyDown && rec.Key.VirtualKeyCode == vkEscape
}

func runEvents(cmd *cobra.Command, _ []string) error {
	in, err := console.CurrentInput()
	if err != nil {
		return err
	}
	con := console.ConsoleFrom(in)
	defer con.Close()

	mode := console.ConsoleModeFrom(in.Clone())
	defer mode.Close()
	old, err := mode.Mode()
	if err != nil {
		return err
	}
	if err := mode.SetMode(eventsMode(old)); err != nil {
		return err
	}
	defer func() {
		if err := mode.SetMode(old); err != nil {
			logger.Error("restore input mode failed", "error", err)
		}
	}()

	stop, err := console.NewSemaphore()
	if err != nil {
		return err
	}
	defer stop.Close()

	if timeout := cfg.Events.Timeout; timeout > 0 {
		timerSem := stop.Clone()
		timer := time.AfterFunc(timeout, func() {
			defer timerSem.Close()
			if err := timerSem.Release(); err != nil {
				logger.Warn("signal timeout failed", "error", err)
			}
		})
		defer func() {
			if timer.Stop() {
				_ = timerSem.Close()
			}
		}()
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, keyStyle.Render("press Esc to stop"))
	seen := 0
	for {
		if err := waitInput(con.Handle(), stop.Handle()); err != nil {
			if errors.Is(err, errTimedOut) {
				logger.Info("events timed out", "records", seen)
				return nil
			}
			return err
		}

		pending, err := con.NumberOfInputEvents()
		if err != nil {
			return err
		}
		if pending == 0 {
			continue
		}
		records, err := con.ReadInput(int(pending))
		if err != nil {
			return err
		}
		for _, rec := range records {
			seen++
			fmt.Fprintf(out, "%4d %s\n", seen, formatRecord(rec))
			if isEscape(rec) || (cfg.Events.Max > 0 && seen >= cfg.Events.Max) {
				return nil
			}
		}
	}
}
