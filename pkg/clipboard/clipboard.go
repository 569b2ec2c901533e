package clipboard

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	osc52 "github.com/aymanbagabas/go-osc52/v2"
)

// Clipboard errors
var (
	ErrUnavailable = errors.New("clipboard unavailable")
	ErrWriteFailed = errors.New("clipboard write failed")
)

// Backend names accepted by New
const (
	BackendAuto   = "auto"
	BackendSystem = "system"
	BackendOSC52  = "osc52"
)

// Writer puts text on a clipboard.
type Writer interface {
	WriteText(text string) error
}

// Option configures the writer returned by New.
type Option func(*options)

type options struct {
	onFallback func(error)
}

// WithFallbackNotice registers fn to be called with the system clipboard's
// error each time the auto backend falls back to OSC 52.
func WithFallbackNotice(fn func(error)) Option {
	return func(o *options) {
		o.onFallback = fn
	}
}

// New returns the writer for the named backend. OSC 52 sequences are written
// to out, which defaults to stderr.
func New(backend string, out io.Writer, opts ...Option) (Writer, error) {
	if out == nil {
		out = os.Stderr
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	switch strings.ToLower(backend) {
	case "", BackendAuto:
		return &Fallback{
			Primary:    &System{},
			Secondary:  &OSC52{Out: out},
			OnFallback: o.onFallback,
		}, nil
	case BackendSystem:
		return &System{}, nil
	case BackendOSC52:
		return &OSC52{Out: out}, nil
	default:
		return nil, fmt.Errorf("unknown clipboard backend: %s", backend)
	}
}

// System writes to the OS clipboard. Availability is checked lazily on the
// first write, so a missing clipboard utility is reported per attempt.
type System struct {
	unsupported func() bool
	write       func(string) error
}

func (s *System) WriteText(text string) error {
	unsupported := s.unsupported
	if unsupported == nil {
		unsupported = func() bool { return clipboard.Unsupported }
	}
	write := s.write
	if write == nil {
		write = clipboard.WriteAll
	}

	if unsupported() {
		return fmt.Errorf("system clipboard: %w", ErrUnavailable)
	}
	if err := write(text); err != nil {
		return fmt.Errorf("system clipboard: %w: %v", ErrWriteFailed, err)
	}
	return nil
}

// OSC52 asks the terminal emulator to set the clipboard using an OSC 52
// escape sequence. This works over SSH but cannot confirm the terminal
// honoured the request.
type OSC52 struct {
	Out io.Writer
}

func (o *OSC52) WriteText(text string) error {
	if o.Out == nil {
		return fmt.Errorf("osc52: %w", ErrUnavailable)
	}
	if _, err := osc52.New(text).WriteTo(o.Out); err != nil {
		return fmt.Errorf("osc52: %w: %v", ErrWriteFailed, err)
	}
	return nil
}

// Fallback tries Primary and uses Secondary only when Primary is unavailable.
// A write failure on an available Primary is returned as is. OnFallback, if
// set, receives Primary's error before Secondary is tried.
type Fallback struct {
	Primary    Writer
	Secondary  Writer
	OnFallback func(error)
}

func (f *Fallback) WriteText(text string) error {
	err := f.Primary.WriteText(text)
	if err == nil || !errors.Is(err, ErrUnavailable) || f.Secondary == nil {
		return err
	}
	if f.OnFallback != nil {
		f.OnFallback(err)
	}
	return f.Secondary.WriteText(text)
}
