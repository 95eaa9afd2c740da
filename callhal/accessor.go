package callhal

import (
	"github.com/BertoldVdb/hid-callctl/hiddev"
)

// resolveUsage looks up the usage ref and field info for (page, code) on
// the given report type. The report id is resolved by the device, so the
// lookup is repeated on every access instead of cached.
func (h *HAL) resolveUsage(reportType uint32, page uint16, code uint16) (hiddev.UsageRef, hiddev.FieldInfo, error) {
	uref := hiddev.UsageRef{
		ReportType: reportType,
		ReportID:   hiddev.ReportIDUnknown,
		UsageCode:  uint32(page)<<16 | uint32(code),
	}
	if err := h.dev.GetUsage(&uref); err != nil {
		h.config.LogFunc(0, "%v", err)
		return uref, hiddev.FieldInfo{}, err
	}

	finfo := hiddev.FieldInfo{
		ReportType: uref.ReportType,
		ReportID:   uref.ReportID,
		FieldIndex: uref.FieldIndex,
	}
	if err := h.dev.FieldInfo(&finfo); err != nil {
		h.config.LogFunc(0, "%v", err)
		return uref, finfo, err
	}

	return uref, finfo, nil
}

// ReadUsage returns the live value of a usage. The device is the sole
// source of truth, nothing is cached.
func (h *HAL) ReadUsage(reportType uint32, page uint16, code uint16) (int32, error) {
	uref, _, err := h.resolveUsage(reportType, page, code)
	if err != nil {
		return 0, err
	}

	if err := h.dev.GetUsage(&uref); err != nil {
		h.config.LogFunc(0, "%v", err)
		return 0, err
	}

	return uref.Value, nil
}

// WriteUsage sets a usage value and commits the containing report. A value
// outside the field's logical bounds is reported and not written.
func (h *HAL) WriteUsage(reportType uint32, page uint16, code uint16, value int32) error {
	uref, finfo, err := h.resolveUsage(reportType, page, code)
	if err != nil {
		return err
	}

	if value < finfo.LogicalMinimum || value > finfo.LogicalMaximum {
		h.config.LogFunc(0, "%s: value %d outside of allowed range (%d-%d)",
			PageNameOf(uref.UsageCode), value, finfo.LogicalMinimum, finfo.LogicalMaximum)
		return ErrorValueOutOfRange
	}

	uref.Value = value
	if err := h.dev.SetUsage(&uref); err != nil {
		h.config.LogFunc(0, "%v", err)
		return err
	}

	rinfo := hiddev.ReportInfo{
		ReportType: uref.ReportType,
		ReportID:   uref.ReportID,
	}
	if err := h.dev.SetReport(&rinfo); err != nil {
		h.config.LogFunc(0, "%v", err)
		return err
	}

	return nil
}
