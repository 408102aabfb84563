package colour

import "errors"

var (
	// ErrInvalidFormat indicates a colour string or space name could not be parsed.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrInvalidArgument indicates a numeric argument outside its permitted range,
	// such as asking for a scheme with fewer than one colour.
	ErrInvalidArgument = errors.New("invalid argument")
)
