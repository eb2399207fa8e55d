//go:build (linux || freebsd) && (amd64 || arm64)

package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/obinnaokechukwu/inputgo"
)

var debugEventsCmd = &cobra.Command{
	Use:   "debug-events",
	Short: "Print the live event stream of the seat",
	Long: `Attach to the seat and print every event libinput produces until
interrupted. Tablet tool events include the tool's identity and capability
flags.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := newContext()
		if err != nil {
			return err
		}
		defer ctx.Close()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
		defer signal.Stop(sigCh)

		logger.Info("reading events", "seat", flagSeat, "fd", ctx.Fd())

		for {
			select {
			case <-sigCh:
				logger.Info("interrupted")
				return nil
			default:
			}

			ready, err := ctx.Wait(250 * time.Millisecond)
			if err != nil {
				return err
			}
			if !ready {
				continue
			}
			if err := ctx.Dispatch(); err != nil {
				return err
			}

			for {
				ev := ctx.NextEvent()
				if ev == nil {
					break
				}
				printEvent(ev)
				ev.Close()
			}
		}
	},
}

func printEvent(ev *inputgo.Event) {
	typ := ev.Type()

	switch {
	case typ == inputgo.EventTypeDeviceAdded || typ == inputgo.EventTypeDeviceRemoved:
		dev := ev.Device()
		logger.Info(typ.String(), "device", dev.Name(), "sysname", dev.Sysname())
		dev.Close()

	case typ == inputgo.EventTypeKeyboardKey:
		k := ev.Keyboard()
		logger.Info(typ.String(), "key", k.Key(), "state", k.KeyState().String(), "usec", k.TimeUsec())

	case typ.IsPointer():
		printPointerEvent(typ, ev.Pointer())

	case typ.IsTouch():
		t := ev.Touch()
		logger.Info(typ.String(), "slot", t.Slot(), "x", t.X(), "y", t.Y())

	case typ.IsTabletTool():
		printTabletEvent(typ, ev.TabletTool())

	default:
		logger.Info(typ.String())
	}
}

func printPointerEvent(typ inputgo.EventType, p *inputgo.PointerEvent) {
	switch typ {
	case inputgo.EventTypePointerMotion:
		logger.Info(typ.String(), "dx", p.DX(), "dy", p.DY())
	case inputgo.EventTypePointerMotionAbsolute:
		logger.Info(typ.String(), "x", p.AbsoluteX(), "y", p.AbsoluteY())
	case inputgo.EventTypePointerButton:
		logger.Info(typ.String(), "button", p.Button(), "state", p.ButtonState().String())
	default: // scroll variants
		logger.Info(typ.String(),
			"vertical", p.ScrollValue(inputgo.ScrollVertical),
			"horizontal", p.ScrollValue(inputgo.ScrollHorizontal))
	}
}

func printTabletEvent(typ inputgo.EventType, te *inputgo.TabletToolEvent) {
	tool := te.Tool()
	defer tool.Close()

	switch typ {
	case inputgo.EventTypeTabletToolProximity:
		logger.Info(typ.String(),
			"state", te.ProximityState().String(),
			"tool", tool.Type().String(),
			"serial", tool.Serial(),
			"tool_id", tool.ToolID(),
			"unique", tool.IsUnique(),
			"pressure", tool.HasPressure(),
			"tilt", tool.HasTilt(),
			"distance", tool.HasDistance(),
			"rotation", tool.HasRotation(),
			"slider", tool.HasSlider(),
			"wheel", tool.HasWheel(),
			"size", tool.HasSize(),
		)
	case inputgo.EventTypeTabletToolTip:
		logger.Info(typ.String(),
			"state", te.TipState().String(),
			"x", te.X(), "y", te.Y(),
			"pressure", te.Pressure(),
		)
	case inputgo.EventTypeTabletToolButton:
		logger.Info(typ.String(), "button", te.Button(), "state", te.ButtonState().String())
	default: // axis
		logger.Info(typ.String(),
			"x", te.X(), "y", te.Y(),
			"pressure", te.Pressure(),
			"tilt_x", te.TiltX(), "tilt_y", te.TiltY(),
		)
	}
}
