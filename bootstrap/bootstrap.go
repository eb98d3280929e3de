// Package bootstrap prepares the process for rendering: it pins the calling
// goroutine to its OS thread, installs the shared logger and brings the
// windowing system up, then undoes all of it in reverse on Shutdown.
package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"runtime"
	"time"

	"github.com/richinsley/eglsweep/internal/logx"
)

const dialTimeout = 3 * time.Second

type Config struct {
	// LogAddr, when set, is a TCP host:port that receives a copy of every
	// log line.
	LogAddr string
	Level   slog.Level
	// Output defaults to os.Stderr.
	Output io.Writer

	// InitGraphics and TerminateGraphics bring the window system up and
	// down on the pinned thread. Either may be nil.
	InitGraphics      func() error
	TerminateGraphics func()
}

type Platform struct {
	cfg  Config
	conn net.Conn
	down bool
}

// Init must be called from the goroutine that will run the frame loop.
func Init(cfg Config) (*Platform, error) {
	runtime.LockOSThread()

	p := &Platform{cfg: cfg}
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	if cfg.LogAddr != "" {
		conn, err := net.DialTimeout("tcp", cfg.LogAddr, dialTimeout)
		if err != nil {
			runtime.UnlockOSThread()
			return nil, fmt.Errorf("connect log sink %s: %w", cfg.LogAddr, err)
		}
		p.conn = conn
		out = io.MultiWriter(out, conn)
	}
	logx.SetLogger(slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: cfg.Level})))

	if cfg.InitGraphics != nil {
		if err := cfg.InitGraphics(); err != nil {
			p.teardownLogging()
			runtime.UnlockOSThread()
			return nil, fmt.Errorf("initialize graphics: %w", err)
		}
	}
	logx.Logger().Debug("platform ready", slog.String("log_addr", cfg.LogAddr))
	return p, nil
}

// Shutdown is safe to call more than once.
func (p *Platform) Shutdown() {
	if p.down {
		return
	}
	p.down = true
	if p.cfg.TerminateGraphics != nil {
		p.cfg.TerminateGraphics()
	}
	p.teardownLogging()
	runtime.UnlockOSThread()
}

func (p *Platform) teardownLogging() {
	logx.SetLogger(nil)
	if p.conn != nil {
		p.conn.Close()
		p.conn = nil
	}
}
