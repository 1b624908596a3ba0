// Package scan models the barcode scanner screen. Decoded values are logged
// and reported back to the screen; they are not resolved to products.
package scan

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"time"
)

// Cooldown is how long a capture blocks the next one.
const Cooldown = 3 * time.Second

var (
	ErrNoPermission = errors.New("scan: camera permission not granted")
	ErrCoolingDown  = errors.New("scan: waiting before next capture")
	ErrUnsupported  = errors.New("scan: unsupported barcode")
	ErrChecksum     = errors.New("scan: bad check digit")
)

// Permission is the camera permission state.
type Permission int

const (
	PermissionUnknown Permission = iota
	PermissionGranted
	PermissionDenied
)

// Facing is the active camera.
type Facing string

const (
	FacingBack  Facing = "back"
	FacingFront Facing = "front"
)

// Result is one decoded capture.
type Result struct {
	Data   string
	Format Format
	At     time.Time
}

// Scanner holds scanner screen state.
type Scanner struct {
	Permission Permission
	Facing     Facing
	Torch      bool
	Scanned    bool
	Last       *Result

	logger *log.Logger
}

// New returns a scanner on the back camera. A nil logger discards.
func New(logger *log.Logger) *Scanner {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Scanner{Facing: FacingBack, logger: logger}
}

// Resolve records the answer to the permission prompt.
func (s *Scanner) Resolve(granted bool) {
	if granted {
		s.Permission = PermissionGranted
		return
	}
	s.Permission = PermissionDenied
}

// ToggleTorch flips the flashlight.
func (s *Scanner) ToggleTorch() { s.Torch = !s.Torch }

// Flip switches between back and front cameras.
func (s *Scanner) Flip() {
	if s.Facing == FacingBack {
		s.Facing = FacingFront
		return
	}
	s.Facing = FacingBack
}

// Capture decodes data. While a previous capture is still within Cooldown,
// or has not been rearmed, the capture is ignored with ErrCoolingDown.
func (s *Scanner) Capture(data string, now time.Time) (Result, error) {
	if s.Permission != PermissionGranted {
		return Result{}, ErrNoPermission
	}
	if s.Scanned {
		if s.Last != nil && now.Sub(s.Last.At) < Cooldown {
			return Result{}, ErrCoolingDown
		}
		s.Scanned = false
	}
	data = strings.TrimSpace(data)
	format, err := Detect(data)
	if err != nil {
		return Result{}, err
	}
	res := Result{Data: data, Format: format, At: now}
	s.Last = &res
	s.Scanned = true
	s.logger.Printf("barcode scanned: %s (%s)", data, format)
	return res, nil
}

// Rearm allows the next capture immediately.
func (s *Scanner) Rearm() { s.Scanned = false }

// Expire clears the scanned flag once the cooldown has passed.
func (s *Scanner) Expire(now time.Time) {
	if s.Scanned && s.Last != nil && now.Sub(s.Last.At) >= Cooldown {
		s.Scanned = false
	}
}

func (s *Scanner) String() string {
	return fmt.Sprintf("camera=%s torch=%t", s.Facing, s.Torch)
}
