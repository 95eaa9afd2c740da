package callhal

import (
	"time"

	"github.com/BertoldVdb/hid-callctl/hiddev"
)

const eventWaitTimeout = time.Second

// EventLoop reads input events from the device until Stop is called or a
// read fails. The wait is bounded so the run flag is observed at least
// once a second. A failed or short read is fatal and stops both loops.
func (h *HAL) EventLoop() error {
	for h.Running() {
		events, err := h.dev.ReadEvents(eventWaitTimeout)
		if err != nil {
			h.config.LogFunc(0, "%v", err)
			h.Stop()
			return err
		}

		for _, ev := range events {
			h.handleEvent(ev)
		}
	}

	return nil
}

// handleEvent dispatches one event record. The lock is held per record,
// not across a whole batch.
func (h *HAL) handleEvent(ev hiddev.Event) {
	h.lock.Lock()
	defer h.lock.Unlock()

	h.config.LogFunc(2, "Event: %x = %d", ev.Code, ev.Value)

	switch uint16(ev.Code >> 16) {
	case PageTelephony:
		switch uint16(ev.Code) {
		case TelHookSwitch:
			if h.hookState == ev.Value {
				return
			}
			if h.hookState == 0 {
				/* Going off-hook answers the call, so kill the ringer first */
				h.WriteUsage(hiddev.ReportTypeOutput, PageLED, LEDRing, 0)
				h.WriteUsage(hiddev.ReportTypeOutput, PageTelephony, TelRinger, 0)
				h.ringerState = 0
			}
			h.WriteUsage(hiddev.ReportTypeOutput, PageLED, LEDOffHook, ev.Value)
			h.hookState = ev.Value
			if h.hookState == 0 {
				h.config.StatusFunc("--> Hook in place")
			} else {
				h.config.StatusFunc("--> Hook lifted")
			}

		case TelPhoneMute:
			/* Momentary control, only the rising edge toggles */
			if ev.Value != 1 {
				return
			}
			h.muteState = 1 - h.muteState
			h.WriteUsage(hiddev.ReportTypeOutput, PageLED, LEDMute, h.muteState)
			if h.muteState == 0 {
				h.config.StatusFunc("--> Unmuted")
			} else {
				h.config.StatusFunc("--> Muted")
			}
		}

	case PageConsumer:
		switch uint16(ev.Code) {
		case ConVolumeIncr:
			if ev.Value != 0 {
				h.config.StatusFunc("Volume increment = 0x%x", ev.Value)
			}
		case ConVolumeDecr:
			if ev.Value != 0 {
				h.config.StatusFunc("Volume decrement = 0x%x", ev.Value)
			}
		}
	}
}
