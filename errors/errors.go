package errors

import "fmt"

var (
	ErrInvalidArgument = fmt.Errorf("invalid argument")
	ErrParse           = fmt.Errorf("unable to parse date")
	ErrUnknownZone     = fmt.Errorf("unknown time zone")
)
