package main

import (
	"fmt"

	"github.com/BertoldVdb/hid-callctl/callhal"
)

type UsageRefArgs struct {
	Page int `arg name:"page" help:"Usage page." type:"hex"`
	Code int `arg name:"code" help:"Usage code." type:"hex"`
}

type ReadUsageCmd struct {
	Type  string       `optional enum:"input,output,feature" default:"output" help:"Report type."`
	Usage UsageRefArgs `embed`
}

func (r *ReadUsageCmd) Run(c *Context) error {
	rt, err := reportTypeFromName(r.Type)
	if err != nil {
		return err
	}

	value, err := c.hal.ReadUsage(rt, uint16(r.Usage.Page), uint16(r.Usage.Code))
	if err != nil {
		return err
	}

	fmt.Printf("%s 0x%04X:0x%04X = %d\n",
		callhal.PageName(uint16(r.Usage.Page)), r.Usage.Page, r.Usage.Code, value)
	return nil
}

type WriteUsageCmd struct {
	Type  string       `optional enum:"input,output,feature" default:"output" help:"Report type."`
	Usage UsageRefArgs `embed`
	Value int          `arg name:"value" help:"Value to write." type:"int"`
}

func (w *WriteUsageCmd) Run(c *Context) error {
	rt, err := reportTypeFromName(w.Type)
	if err != nil {
		return err
	}

	err = c.hal.WriteUsage(rt, uint16(w.Usage.Page), uint16(w.Usage.Code), int32(w.Value))
	if err != nil {
		return err
	}

	fmt.Printf("Wrote %d to %s 0x%04X:0x%04X.\n",
		w.Value, callhal.PageName(uint16(w.Usage.Page)), w.Usage.Page, w.Usage.Code)
	return nil
}
