package main

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/inancgumus/screen"

	"github.com/BertoldVdb/hid-callctl/hiddev"
)

type ShowReportsCmd struct {
	Type string `optional enum:"input,output,feature,all" default:"all" help:"Report type to dump."`
	Loop bool   `optional help:"Redraw the dump periodically and mark changes."`
}

func reportTypeFromName(name string) (uint32, error) {
	switch name {
	case "input":
		return hiddev.ReportTypeInput, nil
	case "output":
		return hiddev.ReportTypeOutput, nil
	case "feature":
		return hiddev.ReportTypeFeature, nil
	}
	return 0, fmt.Errorf("Invalid report type %q", name)
}

func reportTypeName(reportType uint32) string {
	switch reportType {
	case hiddev.ReportTypeInput:
		return "INPUT"
	case hiddev.ReportTypeOutput:
		return "OUTPUT"
	case hiddev.ReportTypeFeature:
		return "FEATURE"
	}
	return "?"
}

func (s *ShowReportsCmd) reportTypes() ([]uint32, error) {
	if s.Type == "all" {
		return []uint32{
			hiddev.ReportTypeInput,
			hiddev.ReportTypeOutput,
			hiddev.ReportTypeFeature,
		}, nil
	}

	rt, err := reportTypeFromName(s.Type)
	if err != nil {
		return nil, err
	}
	return []uint32{rt}, nil
}

func (s *ShowReportsCmd) Run(c *Context) error {
	types, err := s.reportTypes()
	if err != nil {
		return err
	}

	red := color.New(color.FgRed)
	var prev []string

	for {
		startTime := time.Now()

		var buf bytes.Buffer
		for _, rt := range types {
			fmt.Fprintf(&buf, "*** %s:\n", reportTypeName(rt))
			if err := c.hal.DumpReports(&buf, rt); err != nil {
				return err
			}
		}

		if !s.Loop {
			fmt.Print(buf.String())
			return nil
		}

		lines := strings.Split(buf.String(), "\n")
		screen.Clear()
		screen.MoveTopLeft()
		for i, line := range lines {
			if prev != nil && i < len(prev) && prev[i] != line {
				red.Println(line)
			} else {
				fmt.Println(line)
			}
		}
		prev = lines

		d := time.Since(startTime)
		td := 200 * time.Millisecond
		if d < td {
			time.Sleep(td - d)
		}
	}
}
