package callhal

import (
	"errors"
	"time"

	"github.com/BertoldVdb/hid-callctl/hiddev"
)

// fakeUsage is one usage backed by its own one-usage field.
type fakeUsage struct {
	code  uint32
	min   int32
	max   int32
	value int32
}

type writeOp struct {
	code  uint32
	value int32
}

var errNotFound = errors.New("usage not found")

// fakeDevice is a scripted hiddev.Device. Every usage lives in its own
// field of report id 3, field index = position in fields.
type fakeDevice struct {
	info    hiddev.DevInfo
	name    string
	version int

	fields []*fakeUsage

	writes  []writeOp
	commits int

	events   [][]hiddev.Event
	eventErr error

	closed int
}

func newFakeDevice() *fakeDevice {
	f := &fakeDevice{
		info:    hiddev.DevInfo{Vendor: int16(JabraVendorID)},
		name:    "Fake Headset",
		version: 0x010004,
	}
	f.addUsage(PageLED, LEDMute, 0, 1)
	f.addUsage(PageLED, LEDOffHook, 0, 1)
	f.addUsage(PageLED, LEDRing, 0, 1)
	f.addUsage(PageTelephony, TelRinger, 0, 1)
	return f
}

func (f *fakeDevice) addUsage(page uint16, code uint16, min int32, max int32) {
	f.fields = append(f.fields, &fakeUsage{
		code: uint32(page)<<16 | uint32(code),
		min:  min,
		max:  max,
	})
}

func (f *fakeDevice) lookupCode(code uint32) (int, *fakeUsage) {
	for i, u := range f.fields {
		if u.code == code {
			return i, u
		}
	}
	return -1, nil
}

func (f *fakeDevice) Info() (hiddev.DevInfo, error) { return f.info, nil }
func (f *fakeDevice) Name() (string, error)         { return f.name, nil }
func (f *fakeDevice) Version() (int, error)         { return f.version, nil }
func (f *fakeDevice) InitReports() error            { return nil }

func (f *fakeDevice) ReportInfo(rinfo *hiddev.ReportInfo) error {
	if rinfo.ReportID != hiddev.ReportIDFirst {
		return errNotFound
	}
	rinfo.ReportID = 3
	rinfo.NumFields = uint32(len(f.fields))
	return nil
}

func (f *fakeDevice) FieldInfo(finfo *hiddev.FieldInfo) error {
	if int(finfo.FieldIndex) >= len(f.fields) {
		return errNotFound
	}
	u := f.fields[finfo.FieldIndex]
	finfo.MaxUsage = 1
	finfo.LogicalMinimum = u.min
	finfo.LogicalMaximum = u.max
	return nil
}

func (f *fakeDevice) UsageCode(uref *hiddev.UsageRef) error {
	if int(uref.FieldIndex) >= len(f.fields) || uref.UsageIndex != 0 {
		return errNotFound
	}
	uref.UsageCode = f.fields[uref.FieldIndex].code
	return nil
}

func (f *fakeDevice) GetUsage(uref *hiddev.UsageRef) error {
	i, u := f.lookupCode(uref.UsageCode)
	if u == nil {
		return errNotFound
	}
	uref.ReportID = 3
	uref.FieldIndex = uint32(i)
	uref.UsageIndex = 0
	uref.Value = u.value
	return nil
}

func (f *fakeDevice) SetUsage(uref *hiddev.UsageRef) error {
	_, u := f.lookupCode(uref.UsageCode)
	if u == nil {
		return errNotFound
	}
	u.value = uref.Value
	f.writes = append(f.writes, writeOp{code: uref.UsageCode, value: uref.Value})
	return nil
}

func (f *fakeDevice) SetReport(rinfo *hiddev.ReportInfo) error {
	f.commits++
	return nil
}

func (f *fakeDevice) ReadEvents(timeout time.Duration) ([]hiddev.Event, error) {
	if len(f.events) > 0 {
		batch := f.events[0]
		f.events = f.events[1:]
		return batch, nil
	}
	if f.eventErr != nil {
		err := f.eventErr
		f.eventErr = nil
		return nil, err
	}

	time.Sleep(time.Millisecond)
	return nil, nil
}

func (f *fakeDevice) Close() error {
	f.closed++
	return nil
}
