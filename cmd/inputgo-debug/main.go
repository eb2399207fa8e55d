//go:build (linux || freebsd) && (amd64 || arm64)

// inputgo-debug is a small diagnostic tool for libinput, similar in spirit
// to `libinput debug-events`. It lists input devices and prints the event
// stream of a seat.
//
// Reading /dev/input requires privileges; run as root or as a member of the
// input group.
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/obinnaokechukwu/inputgo"
)

// Version is set during build.
var Version = "0.1.0-dev"

var (
	flagSeat    string
	flagVerbose bool

	logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "inputgo-debug"})

	rootCmd = &cobra.Command{
		Use:   "inputgo-debug",
		Short: "Inspect libinput devices and events",
		Long: `inputgo-debug lists the input devices libinput sees on a seat and can
print the live event stream, including tablet tool capabilities. It is a
debugging aid for the inputgo library, not a general-purpose event monitor.`,
		SilenceUsage: true,
	}
)

func init() {
	rootCmd.Version = Version
	rootCmd.PersistentFlags().StringVar(&flagSeat, "seat", "seat0", "udev seat to attach to")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(listDevicesCmd)
	rootCmd.AddCommand(debugEventsCmd)
}

// newContext creates the udev-backed context shared by all subcommands.
func newContext() (*inputgo.Context, error) {
	ctx, err := inputgo.NewUdevContext(flagSeat)
	if err != nil {
		return nil, err
	}
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
		ctx.SetLogPriority(inputgo.LogPriorityDebug)
	}
	return ctx, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
