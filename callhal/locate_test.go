package callhal

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BertoldVdb/hid-callctl/hiddev"
)

func TestLocateReturnsFirstMatch(t *testing.T) {
	var opened []string

	open := func(path string) (hiddev.Device, error) {
		opened = append(opened, path)

		switch path {
		case "/dev/usb/hiddev0":
			return nil, os.ErrNotExist
		case "/dev/usb/hiddev1":
			dev := newFakeDevice()
			dev.info.Vendor = 0x1234
			return dev, nil
		case "/dev/usb/hiddev2":
			return newFakeDevice(), nil
		}

		t.Fatalf("probed %s after a match", path)
		return nil, nil
	}

	path, err := LocateWith(open, JabraVendorID, nil)

	require.NoError(t, err)
	assert.Equal(t, "/dev/usb/hiddev2", path)
	assert.Equal(t, []string{
		"/dev/usb/hiddev0",
		"/dev/usb/hiddev1",
		"/dev/usb/hiddev2",
	}, opened)
}

func TestLocateNoMatchingDevice(t *testing.T) {
	open := func(path string) (hiddev.Device, error) {
		return nil, os.ErrNotExist
	}

	_, err := LocateWith(open, JabraVendorID, nil)

	assert.ErrorIs(t, err, ErrorNoDevice)
}

func TestLocateOpenFailureIsFatal(t *testing.T) {
	var opened int

	open := func(path string) (hiddev.Device, error) {
		opened++
		return nil, os.ErrPermission
	}

	_, err := LocateWith(open, JabraVendorID, nil)

	assert.ErrorIs(t, err, os.ErrPermission)
	assert.Equal(t, 1, opened, "a non-ENOENT failure must abort the scan")
}

func TestLocateClosesProbedDevices(t *testing.T) {
	probed := map[string]*fakeDevice{}

	open := func(path string) (hiddev.Device, error) {
		dev := newFakeDevice()
		if path != "/dev/usb/hiddev1" {
			dev.info.Vendor = 0x1234
		}
		probed[path] = dev
		return dev, nil
	}

	path, err := LocateWith(open, JabraVendorID, nil)

	require.NoError(t, err)
	assert.Equal(t, "/dev/usb/hiddev1", path)
	for path, dev := range probed {
		assert.Equal(t, 1, dev.closed, "%s not closed exactly once", path)
	}
}
