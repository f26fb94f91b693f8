package audio

import (
	"bytes"
	"math"
	"testing"
)

func sampleAt(buf []byte, i int) float32 {
	v := uint32(buf[i*8]) | uint32(buf[i*8+1])<<8 | uint32(buf[i*8+2])<<16 | uint32(buf[i*8+3])<<24
	return math.Float32frombits(v)
}

func TestThunderLengthInRange(t *testing.T) {
	buf := genThunder(1)
	if len(buf)%8 != 0 {
		t.Fatalf("buffer len %d is not stereo-f32 aligned", len(buf))
	}
	n := len(buf) / 8
	if n < int(1.8*SampleRate) || n > int(2.4*SampleRate)+1 {
		t.Fatalf("thunder length %d samples out of range", n)
	}
}

func TestThunderSamplesBounded(t *testing.T) {
	buf := genThunder(99)
	for i := 0; i < len(buf)/8; i++ {
		v := sampleAt(buf, i)
		if math.IsNaN(float64(v)) || v < -1 || v > 1 {
			t.Fatalf("sample %d = %v", i, v)
		}
	}
}

func TestThunderIsMono(t *testing.T) {
	buf := genThunder(7)
	for i := 0; i < len(buf)/8; i++ {
		l := buf[i*8 : i*8+4]
		r := buf[i*8+4 : i*8+8]
		if !bytes.Equal(l, r) {
			t.Fatalf("channels diverge at frame %d", i)
		}
	}
}

func TestThunderSeedDeterministic(t *testing.T) {
	if !bytes.Equal(genThunder(42), genThunder(42)) {
		t.Fatal("same seed produced different rolls")
	}
	if bytes.Equal(genThunder(1), genThunder(2)) {
		t.Fatal("different seeds produced identical rolls")
	}
}

func TestSoftSatBounds(t *testing.T) {
	for _, x := range []float64{-10, -2, -1, -0.5, 0, 0.5, 1, 2, 10} {
		y := softSat(x)
		if y < -1 || y > 1 {
			t.Fatalf("softSat(%v) = %v", x, y)
		}
		if x != 0 && math.Signbit(x) != math.Signbit(y) {
			t.Fatalf("softSat(%v) flipped sign to %v", x, y)
		}
	}
}

func TestLCGRange(t *testing.T) {
	seed := uint64(5)
	for i := 0; i < 1000; i++ {
		v := lcg(&seed)
		if v < -1 || v > 1 {
			t.Fatalf("lcg sample %v out of range", v)
		}
	}
}

func TestNilSystemIsSafe(t *testing.T) {
	var s *System
	s.Thunder()
	s.SetMute(true)
	if s.Muted() {
		t.Fatal("nil system reported muted")
	}
}
