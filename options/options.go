package options

import (
	"errors"
	"fmt"

	"github.com/richinsley/eglsweep/inputs"
)

// Options holds everything the command line can set.
type Options struct {
	Width  int
	Height int
	Step   float64
	FPS    int
	// Frames stops the loop after that many frames; 0 runs until exit.
	Frames  uint64
	ExitKey string
	// Record is the output file; empty disables recording.
	Record     string
	FFMPEGPath string
	Codec      string
	// LogAddr is a host:port that receives a copy of the log output.
	LogAddr    string
	CPUProfile string
	Verbose    bool
	Debug      bool
}

func Defaults() Options {
	return Options{
		Width:   1280,
		Height:  720,
		Step:    10,
		ExitKey: inputs.KeyEscape.String(),
		Codec:   "h264",
	}
}

func (o Options) Validate() error {
	var errs []error
	if o.Width <= 0 || o.Height <= 0 {
		errs = append(errs, fmt.Errorf("invalid size %dx%d", o.Width, o.Height))
	}
	if o.Step <= 0 {
		errs = append(errs, fmt.Errorf("step must be positive, got %v", o.Step))
	}
	if o.FPS < 0 {
		errs = append(errs, fmt.Errorf("fps must not be negative, got %d", o.FPS))
	}
	if o.ExitKey != "" && o.Key() == inputs.KeyUnknown {
		errs = append(errs, fmt.Errorf("unknown exit key %q", o.ExitKey))
	}
	if o.Record != "" && o.FPS == 0 {
		errs = append(errs, errors.New("--record needs --fps"))
	}
	switch o.Codec {
	case "h264", "hevc":
	default:
		errs = append(errs, fmt.Errorf("unsupported codec %q", o.Codec))
	}
	return errors.Join(errs...)
}

// Key returns the exit key, or KeyUnknown when none is set.
func (o Options) Key() inputs.Key {
	return inputs.ParseKey(o.ExitKey)
}
