package sensor

import (
	"math"
	"sync"
	"testing"

	"github.com/df07/go-lighttracer/pkg/core"
)

func TestSplashAccumulatesIntoFloorPixel(t *testing.T) {
	s := New(4, 3)

	s.Splash(1.2, 2.9, core.NewVec3(1, 2, 3))
	s.Splash(1.99, 2.0, core.NewVec3(1, 1, 1))

	if got := s.Pixel(1, 2); got != core.NewVec3(2, 3, 4) {
		t.Errorf("Pixel(1, 2) = %v, want {2 3 4}", got)
	}
	if got := s.Pixel(0, 0); !got.IsZero() {
		t.Errorf("Pixel(0, 0) = %v, want zero", got)
	}
	if accepted, dropped := s.Counts(); accepted != 2 || dropped != 0 {
		t.Errorf("Counts() = %d, %d, want 2, 0", accepted, dropped)
	}
}

func TestSplashDropsInvalidContributions(t *testing.T) {
	s := New(4, 3)
	c := core.NewVec3(1, 1, 1)

	tests := []struct {
		name  string
		x, y  float64
		color core.Vec3
	}{
		{"negative x", -0.01, 1, c},
		{"negative y", 1, -0.5, c},
		{"x at width", 4.0, 1, c},
		{"y at height", 1, 3.0, c},
		{"NaN position", math.NaN(), 1, c},
		{"NaN color", 1, 1, core.NewVec3(math.NaN(), 0, 0)},
		{"infinite color", 1, 1, core.NewVec3(0, math.Inf(1), 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s.Splash(tt.x, tt.y, tt.color)
		})
	}

	if total := s.Total(); !total.IsZero() {
		t.Errorf("Total() = %v, want zero", total)
	}
	if accepted, dropped := s.Counts(); accepted != 0 || dropped != int64(len(tests)) {
		t.Errorf("Counts() = %d, %d, want 0, %d", accepted, dropped, len(tests))
	}
}

func TestConcurrentSplash(t *testing.T) {
	const workers = 8
	const perWorker = 5000
	s := New(16, 16)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				x := float64((w+i)%16) + 0.5
				y := float64(i%16) + 0.5
				s.Splash(x, y, core.NewVec3(1, 0, 0))
			}
		}(w)
	}
	wg.Wait()

	total := s.Total()
	if total.X != workers*perWorker {
		t.Errorf("Total().X = %f, want %d", total.X, workers*perWorker)
	}
}

func TestFrameAveragesSamples(t *testing.T) {
	s := New(2, 1)
	s.Splash(1.5, 0.5, core.NewVec3(4, 2, 1))

	frame := s.Frame(4)
	if len(frame) != 2 {
		t.Fatalf("len(Frame) = %d, want 2", len(frame))
	}
	if frame[1][0] != 1 || frame[1][1] != 0.5 || frame[1][2] != 0.25 {
		t.Errorf("Frame()[1] = %v, want [1 0.5 0.25]", frame[1])
	}
	if frame[0][0] != 0 {
		t.Errorf("Frame()[0] = %v, want black", frame[0])
	}
}

func TestImageToneMapping(t *testing.T) {
	s := New(2, 2)
	s.Splash(0, 0, core.NewVec3(1, 1, 1))    // 0.5 after averaging
	s.Splash(1, 0, core.NewVec3(10, 10, 10)) // clamps to white

	img := s.Image(2, 1.0)

	if b := img.Bounds(); b.Dx() != 2 || b.Dy() != 2 {
		t.Fatalf("image bounds = %v, want 2x2", b)
	}
	want := uint8(math.Round(255 * math.Pow(0.5, 1/DisplayGamma)))
	if got := img.RGBAAt(0, 0); got.R != want || got.A != 255 {
		t.Errorf("pixel (0,0) = %v, want R=%d", got, want)
	}
	if got := img.RGBAAt(1, 0); got.R != 255 || got.G != 255 || got.B != 255 {
		t.Errorf("pixel (1,0) = %v, want white", got)
	}
	if got := img.RGBAAt(0, 1); got.R != 0 || got.A != 255 {
		t.Errorf("pixel (0,1) = %v, want opaque black", got)
	}

	// Exposure scales before clamping
	if got := s.Image(2, 2.0).RGBAAt(0, 0); got.R != 255 {
		t.Errorf("exposed pixel (0,0) = %v, want white", got)
	}
}

func TestReset(t *testing.T) {
	s := New(2, 2)
	s.Splash(0.5, 0.5, core.NewVec3(1, 1, 1))
	s.Splash(-1, 0.5, core.NewVec3(1, 1, 1))
	s.Reset()

	if total := s.Total(); !total.IsZero() {
		t.Errorf("Total() after Reset = %v", total)
	}
	if accepted, dropped := s.Counts(); accepted != 0 || dropped != 0 {
		t.Errorf("Counts() after Reset = %d, %d", accepted, dropped)
	}
}
