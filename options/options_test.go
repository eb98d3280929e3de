package options_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/richinsley/eglsweep/inputs"
	"github.com/richinsley/eglsweep/options"
)

func TestDefaultsAreValid(t *testing.T) {
	o := options.Defaults()
	assert.NoError(t, o.Validate())
	assert.Equal(t, 1280, o.Width)
	assert.Equal(t, 720, o.Height)
	assert.Equal(t, 10.0, o.Step)
	assert.Equal(t, inputs.KeyEscape, o.Key())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*options.Options)
		want   string
	}{
		{"zero width", func(o *options.Options) { o.Width = 0 }, "invalid size"},
		{"negative step", func(o *options.Options) { o.Step = -1 }, "step"},
		{"zero step", func(o *options.Options) { o.Step = 0 }, "step must be positive"},
		{"negative fps", func(o *options.Options) { o.FPS = -5 }, "fps"},
		{"unknown key", func(o *options.Options) { o.ExitKey = "hyper" }, "unknown exit key"},
		{"record without fps", func(o *options.Options) { o.Record = "out.mp4" }, "--record needs --fps"},
		{"bad codec", func(o *options.Options) { o.Codec = "vp9" }, "unsupported codec"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := options.Defaults()
			tt.modify(&o)
			err := o.Validate()
			if assert.Error(t, err) {
				assert.Contains(t, err.Error(), tt.want)
			}
		})
	}
}

func TestValidateReportsAllProblems(t *testing.T) {
	o := options.Defaults()
	o.Height = -1
	o.Codec = "av1"
	err := o.Validate()
	assert.ErrorContains(t, err, "invalid size")
	assert.ErrorContains(t, err, "unsupported codec")
}

func TestRecordWithFPS(t *testing.T) {
	o := options.Defaults()
	o.Record = "out.mkv"
	o.FPS = 30
	assert.NoError(t, o.Validate())
}

func TestNoExitKey(t *testing.T) {
	o := options.Defaults()
	o.ExitKey = ""
	assert.NoError(t, o.Validate())
	assert.Equal(t, inputs.KeyUnknown, o.Key())
}
