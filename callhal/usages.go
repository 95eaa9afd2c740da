package callhal

// HID usage pages used by call-control capable headsets.
const (
	PageLED       uint16 = 0x0008
	PageButton    uint16 = 0x0009
	PageTelephony uint16 = 0x000B
	PageConsumer  uint16 = 0x000C
)

// LED usage page (0x08)
const (
	LEDMute       uint16 = 0x0009
	LEDOffHook    uint16 = 0x0017
	LEDRing       uint16 = 0x0018
	LEDHold       uint16 = 0x0020
	LEDMicrophone uint16 = 0x0021
	LEDOnLine     uint16 = 0x002A
	LEDOffLine    uint16 = 0x002B
)

// Telephony usage page (0x0B)
const (
	TelHookSwitch    uint16 = 0x0020
	TelFlash         uint16 = 0x0021
	TelFeature       uint16 = 0x0022
	TelHold          uint16 = 0x0023
	TelRedial        uint16 = 0x0024
	TelTransfer      uint16 = 0x0025
	TelDrop          uint16 = 0x0026
	TelPark          uint16 = 0x0027
	TelForward       uint16 = 0x0028
	TelAlternate     uint16 = 0x0029
	TelLine          uint16 = 0x002A
	TelSpeaker       uint16 = 0x002B
	TelConference    uint16 = 0x002C
	TelRingEnable    uint16 = 0x002D
	TelRingSelect    uint16 = 0x002E
	TelPhoneMute     uint16 = 0x002F
	TelCaller        uint16 = 0x0030
	TelSend          uint16 = 0x0031
	TelVoiceMail     uint16 = 0x0070
	TelRinger        uint16 = 0x009E
	TelPhoneKey0     uint16 = 0x00B0
	TelPhoneKey1     uint16 = 0x00B1
	TelPhoneKey2     uint16 = 0x00B2
	TelPhoneKey3     uint16 = 0x00B3
	TelPhoneKey4     uint16 = 0x00B4
	TelPhoneKey5     uint16 = 0x00B5
	TelPhoneKey6     uint16 = 0x00B6
	TelPhoneKey7     uint16 = 0x00B7
	TelPhoneKey8     uint16 = 0x00B8
	TelPhoneKey9     uint16 = 0x00B9
	TelPhoneKeyStar  uint16 = 0x00BA
	TelPhoneKeyPound uint16 = 0x00BB
	TelPhoneKeyA     uint16 = 0x00BC
	TelPhoneKeyB     uint16 = 0x00BD
	TelPhoneKeyC     uint16 = 0x00BE
	TelPhoneKeyD     uint16 = 0x00BF
	TelControl       uint16 = 0xFFFF
)

// Consumer usage page (0x0C)
const (
	ConVolumeIncr uint16 = 0x00E9
	ConVolumeDecr uint16 = 0x00EA
)

// PageName translates a usage page to a label for diagnostics.
func PageName(page uint16) string {
	switch page {
	case PageTelephony:
		return "TelephonyUsagePage"
	case PageConsumer:
		return "ConsumerUsagePage"
	case PageLED:
		return "LEDUsagePage"
	case PageButton:
		return "ButtonUsagePage"
	default:
		return "not translated"
	}
}

// PageNameOf translates the page half of a full 32 bit usage code.
func PageNameOf(usageCode uint32) string {
	return PageName(uint16(usageCode >> 16))
}
