package callhal

import (
	"os"
	"time"

	"golang.org/x/sys/unix"

	"github.com/BertoldVdb/hid-callctl/hiddev"
)

const commandPollInterval = 100 * time.Millisecond

// HandleKey performs the action bound to one command character. Unknown
// characters are ignored.
func (h *HAL) HandleKey(key byte) {
	switch key {
	case 'o':
		h.lock.Lock()
		h.hookState = 1 - h.hookState
		if h.hookState == 1 {
			h.WriteUsage(hiddev.ReportTypeOutput, PageLED, LEDRing, 0)
			h.WriteUsage(hiddev.ReportTypeOutput, PageTelephony, TelRinger, 0)
			h.ringerState = 0
		}
		h.WriteUsage(hiddev.ReportTypeOutput, PageLED, LEDOffHook, h.hookState)
		if h.hookState == 0 {
			h.config.StatusFunc("<-- Put back Hook")
		} else {
			h.config.StatusFunc("<-- Lift Hook")
		}
		h.lock.Unlock()

	case 'm':
		h.lock.Lock()
		h.muteState = 1 - h.muteState
		h.WriteUsage(hiddev.ReportTypeOutput, PageLED, LEDMute, h.muteState)
		if h.muteState == 0 {
			h.config.StatusFunc("<-- Unmute")
		} else {
			h.config.StatusFunc("<-- Mute")
		}
		h.lock.Unlock()

	case 'r':
		h.lock.Lock()
		h.ringerState = 1 - h.ringerState
		h.WriteUsage(hiddev.ReportTypeOutput, PageLED, LEDRing, h.ringerState)
		h.WriteUsage(hiddev.ReportTypeOutput, PageTelephony, TelRinger, h.ringerState)
		h.lock.Unlock()

	case 'q':
		h.Stop()

	case '?':
		h.PrintHelp()
	}
}

func (h *HAL) PrintHelp() {
	h.config.StatusFunc("Usage:")
	h.config.StatusFunc(" o = offhook toggle")
	h.config.StatusFunc(" m = mute toggle")
	h.config.StatusFunc(" r = ringer toggle")
	h.config.StatusFunc(" q = quit")
	h.config.StatusFunc(" ? = this help")
}

// CommandLoop polls for single command characters until Stop is called.
// The descriptor is put into non-blocking mode so the run flag can be
// checked between polls.
func (h *HAL) CommandLoop(fd int) error {
	if err := unix.SetNonblock(fd, true); err != nil {
		return os.NewSyscallError("SetNonblock", err)
	}

	var buf [1]byte
	for h.Running() {
		n, err := unix.Read(fd, buf[:])
		if err == nil && n == 1 {
			h.HandleKey(buf[0])
		}

		time.Sleep(commandPollInterval)
	}

	return nil
}
