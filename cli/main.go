package main

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"

	"github.com/BertoldVdb/hid-callctl/callhal"
	"github.com/BertoldVdb/hid-callctl/hiddev"
)

type Context struct {
	dev hiddev.Device
	hal *callhal.HAL
}

var CLI struct {
	VID      int    `optional type:"hex" help:"The USB Vendor ID to match." default:"b0e"`
	Path     string `optional help:"Open this hiddev node directly instead of scanning."`
	LogLevel int    `optional help:"Higher values give more output."`

	Run         RunCmd         `cmd default:"1" help:"Interactive call control session."`
	ListDev     ListHIDCmd     `cmd help:"List HID devices."`
	ShowReports ShowReportsCmd `cmd help:"Dump the report structure of the device."`
	ReadUsage   ReadUsageCmd   `cmd name:"read-usage" help:"Read a single usage value."`
	WriteUsage  WriteUsageCmd  `cmd name:"write-usage" help:"Write a single usage value."`
}

type intMapper struct {
	base int
}

func (h intMapper) Decode(ctx *kong.DecodeContext, target reflect.Value) error {
	var value string
	err := ctx.Scan.PopValueInto("int", &value)
	if err != nil {
		return err
	}
	i, err := strconv.ParseInt(value, h.base, 64)
	if err != nil {
		return err
	}
	target.SetInt(i)
	return nil
}

func logFunc(level int, format string, param ...interface{}) {
	if level > CLI.LogLevel {
		return
	}
	fmt.Fprintf(os.Stderr, format+"\n", param...)
}

func statusFunc() callhal.StatusFunc {
	green := color.New(color.FgGreen)

	return func(format string, param ...interface{}) {
		if strings.HasPrefix(format, "-->") || strings.HasPrefix(format, "<--") {
			green.Printf(format+"\n", param...)
			return
		}
		fmt.Printf(format+"\n", param...)
	}
}

func (c *Context) openDevice() error {
	path := CLI.Path
	if path == "" {
		var err error
		path, err = callhal.Locate(uint16(CLI.VID), logFunc)
		if err != nil {
			return err
		}
	}
	fmt.Printf("Using device %s\n", path)

	dev, err := hiddev.Open(path)
	if err != nil {
		if os.IsPermission(err) {
			return fmt.Errorf("No permission to open %s, try this as root", path)
		}
		return err
	}

	hal, err := callhal.New(dev, callhal.Config{
		LogFunc:    logFunc,
		StatusFunc: statusFunc(),
	})
	if err != nil {
		dev.Close()
		return err
	}

	c.dev = dev
	c.hal = hal
	return nil
}

func main() {
	os.Exit(run())
}

func run() int {
	red := color.New(color.FgRed)

	k, err := kong.New(&CLI,
		kong.NamedMapper("int", intMapper{}),
		kong.NamedMapper("hex", intMapper{base: 16}))
	if err != nil {
		fmt.Println(err)
		return 1
	}

	ctx, err := k.Parse(os.Args[1:])
	if err != nil {
		fmt.Println(err)
		return 1
	}

	c := &Context{}
	if ctx.Command() != "list-dev" {
		if err := c.openDevice(); err != nil {
			red.Fprintln(os.Stderr, err)
			return 1
		}
		defer c.dev.Close()
	}

	if err := ctx.Run(c); err != nil {
		red.Fprintln(os.Stderr, err)
		return 1
	}

	return 0
}
