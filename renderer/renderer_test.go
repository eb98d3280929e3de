package renderer_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gogpu/gg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/richinsley/eglsweep/graphics"
	"github.com/richinsley/eglsweep/inputs"
	"github.com/richinsley/eglsweep/renderer"
)

type recorder struct {
	calls []string
}

func (r *recorder) add(format string, args ...any) {
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

func (r *recorder) count(name string) int {
	n := 0
	for _, c := range r.calls {
		if c == name {
			n++
		}
	}
	return n
}

type fakeContext struct {
	rec        *recorder
	acquireErr error
	swapErr    error
}

func (f *fakeContext) Acquire(graphics.NativeWindow) error {
	f.rec.add("acquire")
	return f.acquireErr
}

func (f *fakeContext) Release() { f.rec.add("release") }

func (f *fakeContext) SwapBuffers() error {
	f.rec.add("swap")
	return f.swapErr
}

type fakeSurface struct {
	rec      *recorder
	flushErr error
	draws    [][2]float64
	cleared  []gg.RGBA
}

func (f *fakeSurface) Clear(c gg.RGBA) {
	f.rec.add("clear")
	f.cleared = append(f.cleared, c)
}

func (f *fakeSurface) DrawShapeAt(x, y float64) {
	f.rec.add("draw")
	f.draws = append(f.draws, [2]float64{x, y})
}

func (f *fakeSurface) Flush() error {
	f.rec.add("flush")
	return f.flushErr
}

func (f *fakeSurface) Close() error {
	f.rec.add("close")
	return nil
}

type harness struct {
	rec     *recorder
	ctx     *fakeContext
	surface *fakeSurface
	bindErr error
}

func newHarness() *harness {
	rec := &recorder{}
	return &harness{
		rec:     rec,
		ctx:     &fakeContext{rec: rec},
		surface: &fakeSurface{rec: rec},
	}
}

func (h *harness) binder() renderer.SurfaceBinder {
	return renderer.SurfaceBinderFunc(func(width, height int) (renderer.DrawSurface, error) {
		h.rec.add("bind %dx%d", width, height)
		if h.bindErr != nil {
			return nil, h.bindErr
		}
		return h.surface, nil
	})
}

// exitAfter returns a poller that reports Exit on poll n+1.
func (h *harness) exitAfter(n int) inputs.Poller {
	polls := 0
	return inputs.PollerFunc(func() inputs.State {
		h.rec.add("poll")
		polls++
		return inputs.State{Exit: polls > n}
	})
}

func TestSweepStaysInRange(t *testing.T) {
	s := renderer.NewSweep(10, 1280)
	assert.Zero(t, s.X())

	for i := 1; i <= 128; i++ {
		s.Advance()
		require.Equal(t, float64(10*i), s.X())
	}
	s.Advance()
	assert.Zero(t, s.X(), "wraps once x passes the width")

	for i := 0; i < 1000; i++ {
		s.Advance()
		require.GreaterOrEqual(t, s.X(), 0.0)
		require.LessOrEqual(t, s.X(), 1280.0)
	}
}

func TestSweepUnevenStep(t *testing.T) {
	s := renderer.NewSweep(300, 1000)
	var xs []float64
	for i := 0; i < 5; i++ {
		s.Advance()
		xs = append(xs, s.X())
	}
	assert.Equal(t, []float64{300, 600, 900, 0, 300}, xs)
}

func TestRunExitOnFirstPoll(t *testing.T) {
	h := newHarness()
	r := renderer.New(h.ctx, h.binder(), h.exitAfter(0))

	require.NoError(t, r.Run(1))
	assert.Equal(t, []string{"acquire", "bind 1280x720", "poll", "close", "release"}, h.rec.calls)
	assert.Zero(t, r.Frames())
	assert.Zero(t, r.X())
}

func TestRunThreeFrames(t *testing.T) {
	h := newHarness()
	r := renderer.New(h.ctx, h.binder(), h.exitAfter(3))

	require.NoError(t, r.Run(1))
	assert.Equal(t, uint64(3), r.Frames())
	assert.Equal(t, 30.0, r.X())
	assert.Equal(t, 4, h.rec.count("poll"))
	assert.Equal(t, 3, h.rec.count("clear"))
	assert.Equal(t, 9, h.rec.count("draw"))
	assert.Equal(t, 3, h.rec.count("flush"))
	assert.Equal(t, 3, h.rec.count("swap"))
	assert.Equal(t, 1, h.rec.count("release"))
	assert.Equal(t, h.rec.count("poll")-1, h.rec.count("swap"))
}

func TestRunFrameOrder(t *testing.T) {
	h := newHarness()
	r := renderer.New(h.ctx, h.binder(), h.exitAfter(1), renderer.WithSize(640, 480))

	require.NoError(t, r.Run(1))
	assert.Equal(t, []string{
		"acquire",
		"bind 640x480",
		"poll", "clear", "draw", "draw", "draw", "flush", "swap",
		"poll",
		"close",
		"release",
	}, h.rec.calls)
}

func TestRunDrawsDefaultScene(t *testing.T) {
	h := newHarness()
	r := renderer.New(h.ctx, h.binder(), h.exitAfter(2))

	require.NoError(t, r.Run(1))
	assert.Equal(t, [][2]float64{
		{10, 10}, {210, 10}, {10, 210},
		{20, 10}, {220, 10}, {20, 210},
	}, h.surface.draws)
	assert.Equal(t, []gg.RGBA{gg.Black, gg.Black}, h.surface.cleared)
}

func TestRunOptions(t *testing.T) {
	h := newHarness()
	bg := gg.RGB(0.2, 0.4, 0.6)
	r := renderer.New(h.ctx, h.binder(), h.exitAfter(2),
		renderer.WithStep(25),
		renderer.WithBackground(bg),
		renderer.WithScene(renderer.Scene{{DX: 5, Y: 7}}),
	)

	require.NoError(t, r.Run(1))
	assert.Equal(t, 50.0, r.X())
	assert.Equal(t, [][2]float64{{30, 7}, {55, 7}}, h.surface.draws)
	assert.Equal(t, []gg.RGBA{bg, bg}, h.surface.cleared)
}

func TestRunFrameRate(t *testing.T) {
	h := newHarness()
	r := renderer.New(h.ctx, h.binder(), h.exitAfter(3), renderer.WithFrameRate(1000))

	require.NoError(t, r.Run(1))
	assert.Equal(t, uint64(3), r.Frames())
}

func TestRunAcquireFailure(t *testing.T) {
	h := newHarness()
	h.ctx.acquireErr = errors.New("no display")
	r := renderer.New(h.ctx, h.binder(), h.exitAfter(5))

	err := r.Run(1)
	assert.ErrorIs(t, err, h.ctx.acquireErr)
	assert.Equal(t, []string{"acquire"}, h.rec.calls)
}

func TestRunBindFailure(t *testing.T) {
	h := newHarness()
	h.bindErr = errors.New("no framebuffer")
	r := renderer.New(h.ctx, h.binder(), h.exitAfter(5))

	err := r.Run(1)
	assert.ErrorIs(t, err, h.bindErr)
	assert.Equal(t, []string{"acquire", "bind 1280x720", "release"}, h.rec.calls)
}

func TestRunFlushFailure(t *testing.T) {
	h := newHarness()
	h.surface.flushErr = errors.New("upload failed")
	r := renderer.New(h.ctx, h.binder(), h.exitAfter(5))

	err := r.Run(1)
	require.Error(t, err)
	assert.ErrorIs(t, err, h.surface.flushErr)
	assert.Contains(t, err.Error(), "flush frame")
	assert.Zero(t, h.rec.count("swap"))
	assert.Equal(t, []string{"close", "release"}, h.rec.calls[len(h.rec.calls)-2:])
	assert.Zero(t, r.Frames())
}

func TestRunPresentFailure(t *testing.T) {
	h := newHarness()
	h.ctx.swapErr = errors.New("bad surface")
	r := renderer.New(h.ctx, h.binder(), h.exitAfter(5))

	err := r.Run(1)
	require.Error(t, err)
	assert.ErrorIs(t, err, h.ctx.swapErr)
	assert.Contains(t, err.Error(), "present frame")
	assert.Equal(t, 1, h.rec.count("poll"))
	assert.Equal(t, []string{"close", "release"}, h.rec.calls[len(h.rec.calls)-2:])
}

func TestSweepClampsNegativeStep(t *testing.T) {
	s := renderer.NewSweep(-10, 1280)
	for i := 0; i < 3; i++ {
		s.Advance()
		require.GreaterOrEqual(t, s.X(), 0.0)
		require.LessOrEqual(t, s.X(), 1280.0)
	}
}

func TestRunIgnoresNonPositiveStep(t *testing.T) {
	for _, step := range []float64{-10, 0} {
		t.Run(fmt.Sprint(step), func(t *testing.T) {
			h := newHarness()
			r := renderer.New(h.ctx, h.binder(), h.exitAfter(3), renderer.WithStep(step))

			require.NoError(t, r.Run(1))
			assert.Equal(t, 30.0, r.X(), "default step is kept")
		})
	}
}
