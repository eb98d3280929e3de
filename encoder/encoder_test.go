package encoder

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	ffmpeg "github.com/u2takey/ffmpeg-go"
)

func TestGetArgs(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		out  ffmpeg.KwArgs
	}{
		{
			name: "h264",
			cfg:  Config{Width: 1280, Height: 720, FPS: 60, OutputFile: "out.mp4"},
			out:  ffmpeg.KwArgs{"pix_fmt": "yuv420p", "c:v": "libx264", "b:v": "8M"},
		},
		{
			name: "hevc mp4 is tagged",
			cfg:  Config{Width: 640, Height: 480, FPS: 30, OutputFile: "out.mp4", Codec: "hevc"},
			out:  ffmpeg.KwArgs{"pix_fmt": "yuv420p", "c:v": "libx265", "b:v": "8M", "tag:v": "hvc1"},
		},
		{
			name: "hevc mkv",
			cfg:  Config{Width: 640, Height: 480, FPS: 30, OutputFile: "out.mkv", Codec: "hevc"},
			out:  ffmpeg.KwArgs{"pix_fmt": "yuv420p", "c:v": "libx265", "b:v": "8M"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, out := getArgs(tt.cfg)
			assert.Equal(t, "rawvideo", in["f"])
			assert.Equal(t, "rgba", in["pix_fmt"])
			assert.Equal(t, tt.cfg.FPS, in["framerate"])
			assert.Equal(t, tt.out, out)
		})
	}

	in, _ := getArgs(Config{Width: 1280, Height: 720, FPS: 60})
	assert.Equal(t, "1280x720", in["s"])
}

func TestNewRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"zero width", Config{Height: 720, FPS: 60, OutputFile: "out.mp4"}},
		{"zero fps", Config{Width: 1280, Height: 720, OutputFile: "out.mp4"}},
		{"no output", Config{Width: 1280, Height: 720, FPS: 60}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := New(tt.cfg)
			require.Error(t, err)
			assert.Nil(t, r)
		})
	}
}

func TestWriteFrameChecksSize(t *testing.T) {
	r := &Recorder{frameSize: 16, frames: make(chan []byte, 1)}

	assert.Error(t, r.WriteFrame(make([]byte, 8)))

	pixels := make([]byte, 16)
	pixels[0] = 7
	require.NoError(t, r.WriteFrame(pixels))
	got := <-r.frames
	pixels[0] = 9
	assert.Equal(t, byte(7), got[0], "frame is copied")
}

func TestWriteFrameAfterClose(t *testing.T) {
	r := &Recorder{frameSize: 4, frames: make(chan []byte, 1), done: make(chan error, 1)}
	r.done <- nil

	require.NoError(t, r.Close())
	require.NoError(t, r.Close())
	assert.ErrorIs(t, r.WriteFrame(make([]byte, 4)), ErrClosed)
}

func TestWriteFrameRacingClose(t *testing.T) {
	r := &Recorder{frameSize: 4, frames: make(chan []byte, 1), done: make(chan error, 1)}
	go func() {
		for range r.frames {
		}
		r.done <- nil
	}()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				err := r.WriteFrame(make([]byte, 4))
				if err != nil {
					assert.ErrorIs(t, err, ErrClosed)
					return
				}
			}
		}()
	}
	require.NoError(t, r.Close())
	wg.Wait()
}
