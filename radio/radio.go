package radio

import (
	"fmt"

	"github.com/codeplox-dev/wifiscand/scan"
)

// Discovery is a single network sighting reported during a scan.
type Discovery struct {
	SSID     string
	BSSID    scan.BSSID
	RSSI     int16
	Channel  uint8
	AuthMask uint8
}

// Handler receives each discovery of a running scan.
type Handler func(Discovery)

// Radio is the scanning capability of the wireless hardware. A scan is
// started with a handler and runs until Active reports false; every
// discovery of that scan is delivered before Active goes false.
type Radio interface {
	Start() error
	Stop() error
	StartScan(handler Handler) error
	Active() bool
}

// CodeUnknown is the error code reported when a start failure carries no
// code of its own.
const CodeUnknown int32 = -1

// StartError reports a scan that could not be started, carrying the
// numeric code of the underlying failure.
type StartError struct {
	Code  int32
	Cause error
}

func (e *StartError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("could not start scan (code %d): %v", e.Code, e.Cause)
	}

	return fmt.Sprintf("could not start scan (code %d)", e.Code)
}

// ErrorCode returns the code carried by a start error, or CodeUnknown for
// any other error.
func ErrorCode(err error) int32 {
	if startErr, ok := err.(*StartError); ok {
		return startErr.Code
	}

	return CodeUnknown
}
