//go:build linux

package hiddev

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

// The request numbers below are the ones linux/hiddev.h expands to on all
// supported architectures. A mismatch means a struct changed size.
func TestIoctlRequestNumbers(t *testing.T) {
	assert.Equal(t, uintptr(0x80044801), hidiocGVersion)
	assert.Equal(t, uintptr(0x801C4803), hidiocGDevInfo)
	assert.Equal(t, uintptr(0x00004805), hidiocInitReport)
	assert.Equal(t, uintptr(0x80804806), ioc(iocRead, 0x06, 128))
	assert.Equal(t, uintptr(0x400C4808), hidiocSReport)
	assert.Equal(t, uintptr(0xC00C4809), hidiocGReportInfo)
	assert.Equal(t, uintptr(0xC038480A), hidiocGFieldInfo)
	assert.Equal(t, uintptr(0xC018480B), hidiocGUsage)
	assert.Equal(t, uintptr(0x4018480C), hidiocSUsage)
	assert.Equal(t, uintptr(0xC018480D), hidiocGUCode)
}

func TestStructLayout(t *testing.T) {
	assert.Equal(t, uintptr(28), unsafe.Sizeof(DevInfo{}))
	assert.Equal(t, uintptr(12), unsafe.Sizeof(ReportInfo{}))
	assert.Equal(t, uintptr(56), unsafe.Sizeof(FieldInfo{}))
	assert.Equal(t, uintptr(24), unsafe.Sizeof(UsageRef{}))
	assert.Equal(t, uintptr(8), unsafe.Sizeof(Event{}))
}
