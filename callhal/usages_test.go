package callhal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageName(t *testing.T) {
	tests := []struct {
		page uint16
		want string
	}{
		{PageTelephony, "TelephonyUsagePage"},
		{PageConsumer, "ConsumerUsagePage"},
		{PageLED, "LEDUsagePage"},
		{PageButton, "ButtonUsagePage"},
		{0x0000, "not translated"},
		{0x0001, "not translated"},
		{0xFF00, "not translated"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, PageName(tc.page), "page 0x%04x", tc.page)
	}
}

func TestPageNameOf(t *testing.T) {
	assert.Equal(t, "TelephonyUsagePage", PageNameOf(usage(PageTelephony, TelHookSwitch)))
	assert.Equal(t, "LEDUsagePage", PageNameOf(usage(PageLED, LEDMute)))
	assert.Equal(t, "not translated", PageNameOf(0xDEAD0001))
}
