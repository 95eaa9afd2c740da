//go:build linux

package hiddev

import (
	"os"
	"runtime"
	"time"
	"unsafe"

	"golang.org/x/sys/unix"
)

/* ioctl request encoding, linux asm-generic/ioctl.h */
const (
	iocNumberBits = 8
	iocTypeBits   = 8
	iocSizeBits   = 14

	iocWrite uintptr = 1
	iocRead  uintptr = 2

	iocNumberShift = 0
	iocTypeShift   = iocNumberShift + iocNumberBits
	iocSizeShift   = iocTypeShift + iocTypeBits
	iocDirShift    = iocSizeShift + iocSizeBits
)

func ioc(dir, nr, size uintptr) uintptr {
	return (dir << iocDirShift) | ('H' << iocTypeShift) | (nr << iocNumberShift) | (size << iocSizeShift)
}

var (
	hidiocGVersion    = ioc(iocRead, 0x01, 4)
	hidiocGDevInfo    = ioc(iocRead, 0x03, unsafe.Sizeof(DevInfo{}))
	hidiocInitReport  = ioc(0, 0x05, 0)
	hidiocSReport     = ioc(iocWrite, 0x08, unsafe.Sizeof(ReportInfo{}))
	hidiocGReportInfo = ioc(iocRead|iocWrite, 0x09, unsafe.Sizeof(ReportInfo{}))
	hidiocGFieldInfo  = ioc(iocRead|iocWrite, 0x0A, unsafe.Sizeof(FieldInfo{}))
	hidiocGUsage      = ioc(iocRead|iocWrite, 0x0B, unsafe.Sizeof(UsageRef{}))
	hidiocSUsage      = ioc(iocWrite, 0x0C, unsafe.Sizeof(UsageRef{}))
	hidiocGUCode      = ioc(iocRead|iocWrite, 0x0D, unsafe.Sizeof(UsageRef{}))
)

const eventSize = int(unsafe.Sizeof(Event{}))

// eventBatchMax bounds how many records one read may return.
const eventBatchMax = 64

type Hiddev struct {
	dev *os.File
}

func openHiddevInternal(path string) (Device, error) {
	dev, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	return &Hiddev{
		dev: dev,
	}, nil
}

func (h *Hiddev) ioctl(name string, op uintptr, arg unsafe.Pointer) error {
	_, _, errno := unix.Syscall(
		unix.SYS_IOCTL,
		h.dev.Fd(),
		op,
		uintptr(arg),
	)

	if errno != 0 {
		return os.NewSyscallError(name, errno)
	}

	return nil
}

func (h *Hiddev) Info() (DevInfo, error) {
	var info DevInfo
	err := h.ioctl("HIDIOCGDEVINFO", hidiocGDevInfo, unsafe.Pointer(&info))
	runtime.KeepAlive(&info)
	return info, err
}

func (h *Hiddev) Name() (string, error) {
	var buf [128]byte

	err := h.ioctl("HIDIOCGNAME", ioc(iocRead, 0x06, uintptr(len(buf))), unsafe.Pointer(&buf))
	runtime.KeepAlive(&buf)
	if err != nil {
		return "", err
	}

	name := buf[:]
	for i, m := range name {
		if m == 0 {
			name = name[:i]
			break
		}
	}

	return string(name), nil
}

func (h *Hiddev) Version() (int, error) {
	var version int32
	err := h.ioctl("HIDIOCGVERSION", hidiocGVersion, unsafe.Pointer(&version))
	runtime.KeepAlive(&version)
	return int(version), err
}

func (h *Hiddev) InitReports() error {
	return h.ioctl("HIDIOCINITREPORT", hidiocInitReport, nil)
}

func (h *Hiddev) ReportInfo(rinfo *ReportInfo) error {
	err := h.ioctl("HIDIOCGREPORTINFO", hidiocGReportInfo, unsafe.Pointer(rinfo))
	runtime.KeepAlive(rinfo)
	return err
}

func (h *Hiddev) FieldInfo(finfo *FieldInfo) error {
	err := h.ioctl("HIDIOCGFIELDINFO", hidiocGFieldInfo, unsafe.Pointer(finfo))
	runtime.KeepAlive(finfo)
	return err
}

func (h *Hiddev) UsageCode(uref *UsageRef) error {
	err := h.ioctl("HIDIOCGUCODE", hidiocGUCode, unsafe.Pointer(uref))
	runtime.KeepAlive(uref)
	return err
}

func (h *Hiddev) GetUsage(uref *UsageRef) error {
	err := h.ioctl("HIDIOCGUSAGE", hidiocGUsage, unsafe.Pointer(uref))
	runtime.KeepAlive(uref)
	return err
}

func (h *Hiddev) SetUsage(uref *UsageRef) error {
	err := h.ioctl("HIDIOCSUSAGE", hidiocSUsage, unsafe.Pointer(uref))
	runtime.KeepAlive(uref)
	return err
}

func (h *Hiddev) SetReport(rinfo *ReportInfo) error {
	err := h.ioctl("HIDIOCSREPORT", hidiocSReport, unsafe.Pointer(rinfo))
	runtime.KeepAlive(rinfo)
	return err
}

func (h *Hiddev) ReadEvents(timeout time.Duration) ([]Event, error) {
	fd := int(h.dev.Fd())

	var fds unix.FdSet
	fds.Set(fd)
	tv := unix.NsecToTimeval(timeout.Nanoseconds())

	n, err := unix.Select(fd+1, &fds, nil, nil, &tv)
	if err == unix.EINTR || n == 0 {
		return nil, nil
	}
	if err != nil {
		return nil, os.NewSyscallError("select", err)
	}

	var ev [eventBatchMax]Event
	buf := (*[eventBatchMax * eventSize]byte)(unsafe.Pointer(&ev))[:]

	rd, err := unix.Read(fd, buf)
	runtime.KeepAlive(&ev)
	if err != nil {
		return nil, os.NewSyscallError("read", err)
	}
	if rd < eventSize {
		return nil, ErrorShortRead
	}

	out := make([]Event, rd/eventSize)
	copy(out, ev[:len(out)])
	return out, nil
}

func (h *Hiddev) Close() error {
	return h.dev.Close()
}
