package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-errors/errors"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/richinsley/eglsweep/bootstrap"
	"github.com/richinsley/eglsweep/canvas"
	"github.com/richinsley/eglsweep/canvas/glpresent"
	"github.com/richinsley/eglsweep/egl"
	"github.com/richinsley/eglsweep/eglcontext"
	"github.com/richinsley/eglsweep/encoder"
	"github.com/richinsley/eglsweep/glfwcontext"
	"github.com/richinsley/eglsweep/graphics"
	"github.com/richinsley/eglsweep/inputs"
	"github.com/richinsley/eglsweep/internal/logx"
	"github.com/richinsley/eglsweep/options"
	"github.com/richinsley/eglsweep/renderer"
)

var opts = options.Defaults()

var rootCmd = &cobra.Command{
	Use:          "eglsweep",
	Short:        "sweep a face across an EGL window",
	Long:         "eglsweep opens a window, binds an OpenGL 4.3 core context to it through EGL\nand draws a face that sweeps left to right until Escape is pressed.",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, args []string) {
		run(func() error { return runSweep(opts) })
	},
}

func init() {
	runtime.LockOSThread()
}

func init() {
	f := rootCmd.Flags()
	f.IntVar(&opts.Width, "width", opts.Width, "window width")
	f.IntVar(&opts.Height, "height", opts.Height, "window height")
	f.Float64Var(&opts.Step, "step", opts.Step, "pixels the scene moves per frame")
	f.IntVar(&opts.FPS, "fps", opts.FPS, "frame rate cap, 0 follows the buffer swap")
	f.Uint64Var(&opts.Frames, "frames", opts.Frames, "stop after this many frames, 0 runs until exit")
	f.StringVar(&opts.ExitKey, "exit-key", opts.ExitKey, "key that ends the loop (escape, enter, space, q, plus)")
	f.StringVar(&opts.Record, "record", opts.Record, "record presented frames to this file")
	f.StringVar(&opts.FFMPEGPath, "ffmpeg", opts.FFMPEGPath, "path to ffmpeg executable")
	f.StringVar(&opts.Codec, "codec", opts.Codec, "recording codec (h264, hevc)")
	f.StringVar(&opts.LogAddr, "log-addr", opts.LogAddr, "also send log output to this TCP host:port")
	f.StringVar(&opts.CPUProfile, "cpuprofile", opts.CPUProfile, "write a CPU profile into this directory")
	f.BoolVarP(&opts.Verbose, "verbose", "v", opts.Verbose, "log progress")
	f.BoolVarP(&opts.Debug, "debug", "d", opts.Debug, "debug logging and error stack traces")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(fn func() error) {
	err := fn()
	if err == nil {
		return
	}
	if stackFramer, ok := err.(interface{ ErrorStack() string }); opts.Debug && ok {
		fmt.Fprintln(os.Stderr, stackFramer.ErrorStack())
	} else {
		fmt.Fprintln(os.Stderr, "eglsweep:", err)
	}
	os.Exit(1)
}

func logLevel(o options.Options) slog.Level {
	switch {
	case o.Debug:
		return slog.LevelDebug
	case o.Verbose:
		return slog.LevelInfo
	default:
		return slog.LevelWarn
	}
}

func runSweep(o options.Options) error {
	if err := o.Validate(); err != nil {
		return err
	}

	platform, err := bootstrap.Init(bootstrap.Config{
		LogAddr:           o.LogAddr,
		Level:             logLevel(o),
		InitGraphics:      glfwcontext.InitGraphics,
		TerminateGraphics: glfwcontext.TerminateGraphics,
	})
	if err != nil {
		return err
	}
	defer platform.Shutdown()
	log := logx.Logger()

	if o.CPUProfile != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(o.CPUProfile), profile.Quiet).Stop()
	}

	backend, err := egl.New()
	if err != nil {
		return err
	}

	win, err := glfwcontext.New(glfwcontext.Options{
		Width:   o.Width,
		Height:  o.Height,
		Title:   "eglsweep",
		Visible: true,
		ExitKey: o.Key(),
	})
	if err != nil {
		return err
	}
	defer win.Shutdown()

	native := win.NativeWindow()
	if native == 0 {
		return errors.New("no native window handle; EGL needs an X11 window")
	}

	width, height := win.GetFramebufferSize()
	if width != o.Width || height != o.Height {
		log.Info("framebuffer size differs from window size",
			slog.Int("width", width),
			slog.Int("height", height))
	}

	var canvasOpts []canvas.Option
	if o.Record != "" {
		rec, err := encoder.New(encoder.Config{
			Width:      width,
			Height:     height,
			FPS:        o.FPS,
			OutputFile: o.Record,
			FFmpegPath: o.FFMPEGPath,
			Codec:      o.Codec,
		})
		if err != nil {
			return err
		}
		defer func() {
			if err := rec.Close(); err != nil {
				log.Error("finish recording", slog.String("error", err.Error()))
			}
		}()
		canvasOpts = append(canvasOpts, canvas.WithSink(rec))
	}

	binder := canvas.Binder{
		NewPresenter: func(width, height int) (canvas.Presenter, error) {
			p, err := glpresent.New(width, height, graphics.APIOpenGL)
			if err != nil {
				return nil, err
			}
			return p, nil
		},
		Options: canvasOpts,
	}
	bind := renderer.SurfaceBinderFunc(func(width, height int) (renderer.DrawSurface, error) {
		c, err := binder.Bind(width, height)
		if err != nil {
			return nil, err
		}
		return c, nil
	})

	r := renderer.New(
		eglcontext.New(backend, eglcontext.WithNativeDisplay(glfwcontext.NativeDisplay())),
		bind,
		inputs.LimitFrames(win, o.Frames),
		renderer.WithSize(width, height),
		renderer.WithStep(o.Step),
		renderer.WithFrameRate(o.FPS),
	)
	if err := r.Run(native); err != nil {
		return err
	}
	log.Info("done", slog.Uint64("frames", r.Frames()))
	return nil
}
