package lights

import (
	"math"
	"testing"

	"github.com/df07/go-lighttracer/pkg/core"
)

// MockEmitter implements the Emitter interface for testing
type MockEmitter struct {
	power float64
}

func (me *MockEmitter) Emit(sampler core.Sampler) EmitterSample {
	return EmitterSample{
		Energy:       core.NewVec3(1, 1, 1),
		Direction:    core.NewVec3(0, 0, 1),
		DirectionPDF: 1.0 / math.Pi,
		AreaPDF:      1.0,
	}
}

func (me *MockEmitter) Type() EmitterType { return EmitterArea }
func (me *MockEmitter) IsDirac() bool     { return false }
func (me *MockEmitter) Power() float64    { return me.power }

func TestEmitterSampler_Uniform(t *testing.T) {
	emitters := []Emitter{&MockEmitter{power: 1}, &MockEmitter{power: 9}}
	sampler, err := NewEmitterSampler(emitters, WeightUniform)
	if err != nil {
		t.Fatalf("NewEmitterSampler failed: %v", err)
	}

	if sampler.Count() != len(emitters) {
		t.Errorf("Count: got %d, expected %d", sampler.Count(), len(emitters))
	}
	for i := range emitters {
		if p := sampler.Probability(i); math.Abs(p-0.5) > 1e-12 {
			t.Errorf("Probability(%d): got %f, expected 0.5", i, p)
		}
	}

	if idx := sampler.Sample(0.25); idx != 0 {
		t.Errorf("Sample(0.25): got %d, expected 0", idx)
	}
	if idx := sampler.Sample(0.75); idx != 1 {
		t.Errorf("Sample(0.75): got %d, expected 1", idx)
	}
}

func TestEmitterSampler_PowerWeighted(t *testing.T) {
	emitters := []Emitter{&MockEmitter{power: 1}, &MockEmitter{power: 3}}
	sampler, err := NewEmitterSampler(emitters, WeightPower)
	if err != nil {
		t.Fatalf("NewEmitterSampler failed: %v", err)
	}

	emitter, probability := sampler.Emitter(1)
	if emitter != emitters[1] {
		t.Error("Emitter(1) returned the wrong emitter")
	}
	if math.Abs(probability-0.75) > 1e-12 {
		t.Errorf("Probability: got %f, expected 0.75", probability)
	}

	// Empirical selection frequencies follow the weights
	counts := make([]int, 2)
	const n = 10000
	for i := 0; i < n; i++ {
		counts[sampler.Sample((float64(i)+0.5)/n)]++
	}
	if math.Abs(float64(counts[1])/n-0.75) > 1e-3 {
		t.Errorf("Selection frequency: got %f, expected 0.75", float64(counts[1])/n)
	}
}

func TestEmitterSampler_EdgeCases(t *testing.T) {
	empty, err := NewEmitterSampler(nil, WeightUniform)
	if err != nil {
		t.Fatalf("NewEmitterSampler failed: %v", err)
	}
	if idx := empty.Sample(0.5); idx != -1 {
		t.Errorf("Empty sampler: got index %d, expected -1", idx)
	}
	if e, p := empty.Emitter(0); e != nil || p != 0 {
		t.Errorf("Empty sampler returned %v, %f", e, p)
	}

	// Zero weights fall back to uniform
	zero, err := NewWeightedEmitterSampler([]Emitter{&MockEmitter{}, &MockEmitter{}}, []float64{0, 0})
	if err != nil {
		t.Fatalf("NewWeightedEmitterSampler failed: %v", err)
	}
	if p := zero.Probability(1); math.Abs(p-0.5) > 1e-12 {
		t.Errorf("Zero weights: got %f, expected 0.5", p)
	}

	// A zero-weight emitter is never selected
	skip, err := NewWeightedEmitterSampler([]Emitter{&MockEmitter{}, &MockEmitter{}}, []float64{1, 0})
	if err != nil {
		t.Fatalf("NewWeightedEmitterSampler failed: %v", err)
	}
	if idx := skip.Sample(0.999999); idx != 0 {
		t.Errorf("Zero-weight emitter selected: %d", idx)
	}

	if _, err := NewWeightedEmitterSampler([]Emitter{&MockEmitter{}}, []float64{1, 2}); err == nil {
		t.Error("Expected an error for mismatched weights")
	}
	if _, err := NewWeightedEmitterSampler([]Emitter{&MockEmitter{}}, []float64{-1}); err == nil {
		t.Error("Expected an error for negative weights")
	}
}
