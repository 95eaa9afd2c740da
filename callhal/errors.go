package callhal

import "errors"

var (
	ErrorNoDevice        = errors.New("No matching device found")
	ErrorValueOutOfRange = errors.New("Value outside of allowed range")
)
