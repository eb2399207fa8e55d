//go:build (linux || freebsd) && (amd64 || arm64)

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/obinnaokechukwu/inputgo"
)

var listDevicesCmd = &cobra.Command{
	Use:   "list-devices",
	Short: "List input devices on the seat",
	Long:  `List every input device libinput enumerates on the seat, with its capabilities.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := newContext()
		if err != nil {
			return err
		}
		defer ctx.Close()

		// The first dispatch after creation queues a DeviceAdded event for
		// every device already present on the seat.
		if err := ctx.Dispatch(); err != nil {
			return err
		}

		count := 0
		for {
			ev := ctx.NextEvent()
			if ev == nil {
				break
			}
			if ev.Type() == inputgo.EventTypeDeviceAdded {
				printDevice(ev.Device())
				count++
			}
			ev.Close()
		}

		if count == 0 {
			logger.Warn("no devices found; missing permissions on /dev/input?")
		}
		return nil
	},
}

func printDevice(dev *inputgo.Device) {
	if dev == nil {
		return
	}
	defer dev.Close()

	caps := make([]string, 0, 4)
	for _, c := range dev.Capabilities() {
		caps = append(caps, c.String())
	}

	seatName := "-"
	if seat := dev.Seat(); seat != nil {
		seatName = fmt.Sprintf("%s/%s", seat.PhysicalName(), seat.LogicalName())
		seat.Close()
	}

	fmt.Printf("%-14s %04x:%04x  %-24s %s\n",
		dev.Sysname(),
		dev.VendorID(), dev.ProductID(),
		strings.Join(caps, ","),
		dev.Name(),
	)
	fmt.Printf("%-14s seat: %s\n", "", seatName)
}
