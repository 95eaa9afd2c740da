package callhal

import (
	"fmt"
	"os"

	"github.com/BertoldVdb/hid-callctl/hiddev"
)

// JabraVendorID is the USB vendor id matched by default.
const JabraVendorID uint16 = 0x0B0E

const (
	devicePattern = "/dev/usb/hiddev%d"
	deviceScanMax = 19
)

type DeviceOpener func(path string) (hiddev.Device, error)

// Locate scans /dev/usb/hiddev0 through hiddev18 and returns the path of
// the first node whose vendor id matches. A missing node is skipped, any
// other open failure aborts the scan.
func Locate(vendorID uint16, logf LogFunc) (string, error) {
	return LocateWith(hiddev.Open, vendorID, logf)
}

func LocateWith(open DeviceOpener, vendorID uint16, logf LogFunc) (string, error) {
	if logf == nil {
		logf = func(level int, format string, param ...interface{}) {}
	}

	for i := 0; i < deviceScanMax; i++ {
		path := fmt.Sprintf(devicePattern, i)

		match, err := probeDevice(open, path, vendorID, logf)
		if err != nil {
			return "", err
		}
		if match {
			return path, nil
		}
	}

	return "", ErrorNoDevice
}

func probeDevice(open DeviceOpener, path string, vendorID uint16, logf LogFunc) (bool, error) {
	dev, err := open(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	defer dev.Close()

	info, err := dev.Info()
	if err != nil {
		return false, err
	}

	name, err := dev.Name()
	if err != nil {
		return false, err
	}

	version, err := dev.Version()
	if err != nil {
		return false, err
	}

	logf(2, "%s: ID %04x:%04x %q (hiddev 0x%x)",
		path, uint16(info.Vendor), uint16(info.Product), name, version)

	return uint16(info.Vendor) == vendorID, nil
}
