package hiddev

import (
	"errors"
	"time"
)

// Report types as defined by linux/hiddev.h.
const (
	ReportTypeInput   uint32 = 1
	ReportTypeOutput  uint32 = 2
	ReportTypeFeature uint32 = 3
)

// Report id placeholders used when resolving usages and walking reports.
const (
	ReportIDUnknown uint32 = 0xFFFFFFFF
	ReportIDFirst   uint32 = 0x00000100
	ReportIDNext    uint32 = 0x00000200
)

// DevInfo mirrors struct hiddev_devinfo.
type DevInfo struct {
	BusType         uint32
	BusNum          uint32
	DevNum          uint32
	IfNum           uint32
	Vendor          int16
	Product         int16
	Version         int16
	NumApplications uint32
}

// ReportInfo mirrors struct hiddev_report_info.
type ReportInfo struct {
	ReportType uint32
	ReportID   uint32
	NumFields  uint32
}

// FieldInfo mirrors struct hiddev_field_info.
type FieldInfo struct {
	ReportType      uint32
	ReportID        uint32
	FieldIndex      uint32
	MaxUsage        uint32
	Flags           uint32
	Physical        uint32
	Logical         uint32
	Application     uint32
	LogicalMinimum  int32
	LogicalMaximum  int32
	PhysicalMinimum int32
	PhysicalMaximum int32
	UnitExponent    uint32
	Unit            uint32
}

// UsageRef mirrors struct hiddev_usage_ref.
type UsageRef struct {
	ReportType uint32
	ReportID   uint32
	FieldIndex uint32
	UsageIndex uint32
	UsageCode  uint32
	Value      int32
}

// Event mirrors struct hiddev_event, the fixed-size record delivered by
// reading the device node.
type Event struct {
	Code  uint32
	Value int32
}

var ErrorShortRead = errors.New("Got too short read from device")

type Device interface {
	Info() (DevInfo, error)
	Name() (string, error)
	Version() (int, error)
	InitReports() error

	ReportInfo(rinfo *ReportInfo) error
	FieldInfo(finfo *FieldInfo) error
	UsageCode(uref *UsageRef) error
	GetUsage(uref *UsageRef) error
	SetUsage(uref *UsageRef) error
	SetReport(rinfo *ReportInfo) error

	// ReadEvents waits up to timeout for input to become available and
	// returns the batch delivered by a single read. A timeout yields a nil
	// slice and nil error.
	ReadEvents(timeout time.Duration) ([]Event, error)

	Close() error
}

func Open(path string) (Device, error) {
	return openHiddevInternal(path)
}
