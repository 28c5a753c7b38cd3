package lights

import (
	"fmt"
	"strings"
)

// Weighting selects how an EmitterSampler distributes selection probability
type Weighting int

const (
	WeightUniform Weighting = iota // Every emitter is equally likely
	WeightPower                    // Probability proportional to emitted power
)

// EmitterSampler picks the emitter that starts each emission path
type EmitterSampler struct {
	emitters []Emitter
	weights  []float64 // Normalized selection probabilities
	cdf      []float64
}

// NewWeightedEmitterSampler creates a sampler with user-specified weights.
// Weights are normalized to sum to 1; all-zero weights fall back to uniform.
func NewWeightedEmitterSampler(emitters []Emitter, weights []float64) (*EmitterSampler, error) {
	if len(emitters) != len(weights) {
		return nil, fmt.Errorf("lights: %d emitters but %d weights", len(emitters), len(weights))
	}

	totalWeight := 0.0
	for i, weight := range weights {
		if weight < 0 {
			return nil, fmt.Errorf("lights: negative weight %g for emitter %d", weight, i)
		}
		totalWeight += weight
	}

	normalized := make([]float64, len(weights))
	for i, weight := range weights {
		if totalWeight == 0 {
			normalized[i] = 1.0 / float64(len(weights))
		} else {
			normalized[i] = weight / totalWeight
		}
	}

	cdf := make([]float64, len(normalized))
	cumulative := 0.0
	for i, weight := range normalized {
		cumulative += weight
		cdf[i] = cumulative
	}

	return &EmitterSampler{emitters: emitters, weights: normalized, cdf: cdf}, nil
}

// NewEmitterSampler creates a sampler using one of the built-in weightings
func NewEmitterSampler(emitters []Emitter, weighting Weighting) (*EmitterSampler, error) {
	weights := make([]float64, len(emitters))
	for i, emitter := range emitters {
		if weighting == WeightPower {
			weights[i] = emitter.Power()
		} else {
			weights[i] = 1
		}
	}
	return NewWeightedEmitterSampler(emitters, weights)
}

// Sample selects an emitter index from a uniform number u in [0, 1).
// Returns -1 when there are no emitters.
func (es *EmitterSampler) Sample(u float64) int {
	if len(es.emitters) == 0 {
		return -1
	}

	for i, c := range es.cdf {
		if u < c && es.weights[i] > 0 {
			return i
		}
	}

	// Rounding can leave the last cdf entry just below 1
	for i := len(es.weights) - 1; i >= 0; i-- {
		if es.weights[i] > 0 {
			return i
		}
	}
	return len(es.weights) - 1
}

// Emitter returns the emitter at index and its selection probability
func (es *EmitterSampler) Emitter(index int) (Emitter, float64) {
	if index < 0 || index >= len(es.emitters) {
		return nil, 0.0
	}
	return es.emitters[index], es.weights[index]
}

// Probability returns the selection probability of the emitter at index
func (es *EmitterSampler) Probability(index int) float64 {
	if index < 0 || index >= len(es.weights) {
		return 0.0
	}
	return es.weights[index]
}

// Count returns the number of emitters
func (es *EmitterSampler) Count() int {
	return len(es.emitters)
}

// String returns a string representation for debugging
func (es *EmitterSampler) String() string {
	if len(es.emitters) == 0 {
		return "EmitterSampler{no emitters}"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "EmitterSampler{%d emitters:\n", len(es.emitters))
	for i, emitter := range es.emitters {
		fmt.Fprintf(&b, "  [%d] %s: %.1f%%\n", i, emitter.Type(), es.weights[i]*100)
	}
	b.WriteString("}")
	return b.String()
}
