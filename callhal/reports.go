package callhal

import (
	"fmt"
	"io"

	"github.com/BertoldVdb/hid-callctl/hiddev"
)

// DumpReports walks the report structure of one report type and writes the
// report, field and usage details including live values. Diagnostic only.
func (h *HAL) DumpReports(w io.Writer, reportType uint32) error {
	rinfo := hiddev.ReportInfo{
		ReportType: reportType,
		ReportID:   hiddev.ReportIDFirst,
	}

	for h.dev.ReportInfo(&rinfo) == nil {
		fmt.Fprintf(w, "report_id=0x%X (%d fields)\n", rinfo.ReportID, rinfo.NumFields)

		for i := 0; i < int(rinfo.NumFields); i++ {
			finfo := hiddev.FieldInfo{
				ReportType: rinfo.ReportType,
				ReportID:   rinfo.ReportID,
				FieldIndex: uint32(i),
			}
			if err := h.dev.FieldInfo(&finfo); err != nil {
				return err
			}

			fmt.Fprintf(w, "  field_index=%d maxusage=%d flags=0x%X\n"+
				"    physical=0x%X logical=0x%X application=0x%X\n"+
				"    logical_minimum=%d,maximum=%d physical_minimum=%d,maximum=%d\n",
				finfo.FieldIndex,
				finfo.MaxUsage,
				finfo.Flags,
				finfo.Physical,
				finfo.Logical,
				finfo.Application,
				finfo.LogicalMinimum,
				finfo.LogicalMaximum,
				finfo.PhysicalMinimum,
				finfo.PhysicalMaximum)

			for j := 0; j < int(finfo.MaxUsage); j++ {
				uref := hiddev.UsageRef{
					ReportType: finfo.ReportType,
					ReportID:   finfo.ReportID,
					FieldIndex: uint32(i),
					UsageIndex: uint32(j),
				}
				if err := h.dev.UsageCode(&uref); err != nil {
					return err
				}
				if err := h.dev.GetUsage(&uref); err != nil {
					return err
				}

				fmt.Fprintf(w, "    usage_index=%d usage_code=0x%X (%s) value=%d\n",
					uref.UsageIndex,
					uref.UsageCode,
					PageNameOf(uref.UsageCode),
					uref.Value)
			}
		}
		fmt.Fprintln(w)

		rinfo.ReportID |= hiddev.ReportIDNext
	}

	return nil
}
