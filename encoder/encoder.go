// Package encoder records presented frames by piping raw RGBA into an
// ffmpeg process.
package encoder

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	ffmpeg "github.com/u2takey/ffmpeg-go"

	"github.com/richinsley/eglsweep/internal/logx"
)

const numBuffers = 4

var ErrClosed = errors.New("encoder: closed")

type Config struct {
	Width      int
	Height     int
	FPS        int
	OutputFile string
	// FFmpegPath overrides the ffmpeg binary looked up on PATH.
	FFmpegPath string
	// Codec is "h264" or "hevc".
	Codec string
}

// Recorder implements canvas.Sink. Frames are copied and handed to a
// goroutine that writes them into ffmpeg's stdin.
type Recorder struct {
	cfg       Config
	frameSize int
	frames    chan []byte
	done      chan error

	// sendMu serializes WriteFrame and Close so no frame is sent after the
	// queue is closed. The pump never takes it.
	sendMu sync.Mutex

	mu     sync.Mutex
	err    error
	closed bool
}

func getArgs(cfg Config) (inputArgs ffmpeg.KwArgs, outputArgs ffmpeg.KwArgs) {
	inputArgs = ffmpeg.KwArgs{
		"f":         "rawvideo",
		"pix_fmt":   "rgba",
		"s":         fmt.Sprintf("%dx%d", cfg.Width, cfg.Height),
		"framerate": cfg.FPS,
	}

	outputArgs = ffmpeg.KwArgs{"pix_fmt": "yuv420p"}
	if cfg.Codec == "hevc" {
		outputArgs["c:v"] = "libx265"
		if strings.HasSuffix(cfg.OutputFile, ".mp4") {
			outputArgs["tag:v"] = "hvc1"
		}
	} else {
		outputArgs["c:v"] = "libx264"
	}
	outputArgs["b:v"] = "8M"
	return
}

// New starts ffmpeg. Frames must be exactly Width*Height*4 bytes.
func New(cfg Config) (*Recorder, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("encoder: invalid size %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.FPS <= 0 {
		return nil, fmt.Errorf("encoder: invalid frame rate %d", cfg.FPS)
	}
	if cfg.OutputFile == "" {
		return nil, errors.New("encoder: no output file")
	}

	pipeReader, pipeWriter := io.Pipe()
	inputArgs, outputArgs := getArgs(cfg)

	ffmpegCmd := ffmpeg.Input("pipe:", inputArgs).
		Output(cfg.OutputFile, outputArgs).
		OverWriteOutput().WithInput(pipeReader)
	if cfg.FFmpegPath != "" {
		ffmpegCmd = ffmpegCmd.SetFfmpegPath(cfg.FFmpegPath)
	}

	r := &Recorder{
		cfg:       cfg,
		frameSize: cfg.Width * cfg.Height * 4,
		frames:    make(chan []byte, numBuffers),
		done:      make(chan error, 1),
	}

	errc := make(chan error, 1)
	go func() {
		err := ffmpegCmd.Run()
		// Unblock the pump if ffmpeg exits before reading everything.
		if err != nil {
			pipeReader.CloseWithError(err)
		} else {
			pipeReader.CloseWithError(io.ErrClosedPipe)
		}
		errc <- err
	}()
	go r.pump(pipeWriter, errc)

	logx.Logger().Info("recording",
		slog.String("output", cfg.OutputFile),
		slog.String("codec", outputArgs["c:v"].(string)),
		slog.Int("fps", cfg.FPS))
	return r, nil
}

func (r *Recorder) pump(w *io.PipeWriter, errc <-chan error) {
	var n int64
	for frame := range r.frames {
		if r.failed() {
			continue
		}
		if _, err := w.Write(frame); err != nil {
			logx.Logger().Error("write frame to ffmpeg", slog.Int64("frame", n), slog.String("error", err.Error()))
			r.setErr(err)
			continue
		}
		n++
	}
	w.Close()
	err := <-errc
	logx.Logger().Info("recording finished", slog.Int64("frames", n))
	r.done <- err
}

func (r *Recorder) failed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err != nil
}

func (r *Recorder) setErr(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err == nil {
		r.err = err
	}
}

// WriteFrame queues a copy of pixels. It blocks while the queue is full.
func (r *Recorder) WriteFrame(pixels []byte) error {
	r.sendMu.Lock()
	defer r.sendMu.Unlock()

	r.mu.Lock()
	closed, err := r.closed, r.err
	r.mu.Unlock()
	if closed {
		return ErrClosed
	}
	if err != nil {
		return fmt.Errorf("encoder: %w", err)
	}
	if len(pixels) != r.frameSize {
		return fmt.Errorf("encoder: frame is %d bytes, want %d", len(pixels), r.frameSize)
	}

	frame := make([]byte, len(pixels))
	copy(frame, pixels)
	r.frames <- frame
	return nil
}

// Close flushes the queue and waits for ffmpeg to finish the file.
func (r *Recorder) Close() error {
	r.sendMu.Lock()
	defer r.sendMu.Unlock()

	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil
	}
	r.closed = true
	r.mu.Unlock()

	close(r.frames)
	if err := <-r.done; err != nil {
		return fmt.Errorf("ffmpeg: %w", err)
	}
	return nil
}
