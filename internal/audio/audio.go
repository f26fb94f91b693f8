// Package audio plays the procedural thunder cue through oto. Playback
// degrades to a no-op when the device is missing, still warming up, or
// the app runs muted.
package audio

import (
	"io"
	"math"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/oto/v2"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
)

const sfxVolume = 0.58

// System manages procedural sound playback. A nil *System is safe to
// call, so callers can keep going when device init fails.
type System struct {
	ctx   *oto.Context
	ready chan struct{}

	mute    int32  // atomic bool
	active  int32  // currently playing thunder rolls
	variant uint64 // decorrelates back-to-back strikes
}

// NewSystem opens the audio device.
func NewSystem(mute bool) (*System, error) {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return nil, err
	}
	s := &System{ctx: ctx, ready: ready}
	s.SetMute(mute)
	return s, nil
}

// SetMute toggles playback without touching the device.
func (s *System) SetMute(mute bool) {
	if s == nil {
		return
	}
	var v int32
	if mute {
		v = 1
	}
	atomic.StoreInt32(&s.mute, v)
}

func (s *System) Muted() bool {
	return s != nil && atomic.LoadInt32(&s.mute) != 0
}

// Thunder plays one thunder roll, fire-and-forget. Skipped while the
// device warms up and capped at two simultaneous rolls to avoid clipping.
func (s *System) Thunder() {
	if s == nil || s.ctx == nil || s.Muted() {
		return
	}
	select {
	case <-s.ready:
	default:
		return
	}
	if atomic.LoadInt32(&s.active) >= 2 {
		return
	}
	atomic.AddInt32(&s.active, 1)

	seed := atomic.AddUint64(&s.variant, 1) ^ uint64(time.Now().UnixNano())
	samples := genThunder(seed)
	go func() {
		defer atomic.AddInt32(&s.active, -1)
		reader := &soundReader{data: samples}
		player := s.ctx.NewPlayer(reader)
		player.SetVolume(sfxVolume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

// putStereoF32 writes a [-1,1] sample as float32 LE to both stereo channels at frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	buf[i*8] = byte(v)
	buf[i*8+1] = byte(v >> 8)
	buf[i*8+2] = byte(v >> 16)
	buf[i*8+3] = byte(v >> 24)
	buf[i*8+4] = byte(v)
	buf[i*8+5] = byte(v >> 8)
	buf[i*8+6] = byte(v >> 16)
	buf[i*8+7] = byte(v >> 24)
}

// softSat applies gentle tanh-like saturation instead of hard clipping.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/(x)
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// lcg advances an LCG seed and returns a noise sample in [-1,1].
func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
}

// makeBuf allocates a stereo float32 buffer for n samples.
func makeBuf(n int) []byte { return make([]byte, n*8) }
