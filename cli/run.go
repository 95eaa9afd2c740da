package main

import (
	"os"
)

type RunCmd struct {
}

func (r *RunCmd) Run(c *Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- c.hal.EventLoop()
	}()

	c.hal.PrintHelp()

	if err := c.hal.CommandLoop(int(os.Stdin.Fd())); err != nil {
		c.hal.Stop()
		<-errCh
		return err
	}

	/* A fatal device error in the event loop also ends the command loop,
	 * make sure it reaches the exit code */
	return <-errCh
}
