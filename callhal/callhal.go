package callhal

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/BertoldVdb/hid-callctl/hiddev"
)

type LogFunc func(level int, format string, param ...interface{})

// StatusFunc receives the human readable state transition lines. The
// default writes them to stdout.
type StatusFunc func(format string, param ...interface{})

type Config struct {
	LogFunc    LogFunc
	StatusFunc StatusFunc
}

// HAL drives the call-control indicators of one open hiddev node. The
// three indicator states are shared between the event loop and the command
// loop and are only touched while holding lock.
type HAL struct {
	dev    hiddev.Device
	config Config

	lock        sync.Mutex
	muteState   int32
	hookState   int32
	ringerState int32

	run atomic.Bool
}

// CallState is a snapshot of the indicator states.
type CallState struct {
	Mute    int32
	OffHook int32
	Ringer  int32
}

func New(dev hiddev.Device, config Config) (*HAL, error) {
	h := &HAL{
		dev:    dev,
		config: config,
	}
	h.run.Store(true)

	if h.config.LogFunc == nil {
		h.config.LogFunc = func(level int, format string, param ...interface{}) {}
	}
	if h.config.StatusFunc == nil {
		h.config.StatusFunc = func(format string, param ...interface{}) {
			fmt.Printf(format+"\n", param...)
		}
	}

	if err := dev.InitReports(); err != nil {
		return nil, err
	}

	if name, err := dev.Name(); err == nil {
		h.config.LogFunc(1, "HID device name: %q", name)
	}
	if version, err := dev.Version(); err == nil {
		h.config.LogFunc(2, "hiddev driver version: 0x%x", version)
	}

	/* The device keeps the LEDs across reopens, so seed our view from it */
	h.muteState, _ = h.ReadUsage(hiddev.ReportTypeOutput, PageLED, LEDMute)
	h.hookState, _ = h.ReadUsage(hiddev.ReportTypeOutput, PageLED, LEDOffHook)
	h.ringerState, _ = h.ReadUsage(hiddev.ReportTypeOutput, PageLED, LEDRing)

	h.config.LogFunc(1, "Initial state: mute=%d offhook=%d ringer=%d",
		h.muteState, h.hookState, h.ringerState)

	return h, nil
}

// Running reports whether the loops should keep going.
func (h *HAL) Running() bool {
	return h.run.Load()
}

// Stop makes both loops exit on their next poll iteration.
func (h *HAL) Stop() {
	h.run.Store(false)
}

func (h *HAL) State() CallState {
	h.lock.Lock()
	defer h.lock.Unlock()

	return CallState{
		Mute:    h.muteState,
		OffHook: h.hookState,
		Ringer:  h.ringerState,
	}
}
