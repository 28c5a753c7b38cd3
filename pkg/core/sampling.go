package core

import (
	"math"
	"math/rand"
)

// Sampler provides random sampling for rendering algorithms
// Can be swapped out for deterministic testing or different sampling patterns
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
}

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get2D returns two random float64 values in [0, 1)
func (r *RandomSampler) Get2D() Vec2 {
	return NewVec2(r.random.Float64(), r.random.Float64())
}

// PixelSeed derives the random seed of a pixel task from its coordinates.
// Results are reproducible because nothing but (x, y) feeds the seed.
func PixelSeed(x, y int) int64 {
	return int64(x+1)*0x1337 + int64(y+1)*0xbeef
}

// NewPixelSampler creates a sampler owned by the task of pixel (x, y)
func NewPixelSampler(x, y int) *RandomSampler {
	return NewRandomSampler(rand.New(rand.NewSource(PixelSeed(x, y))))
}

// SampleCosineHemisphereLocal generates a cosine-weighted direction around +Z
func SampleCosineHemisphereLocal(sample Vec2) Vec3 {
	// Generate point in unit disk, then lift it onto the hemisphere
	a := 2.0 * math.Pi * sample.X
	r := math.Sqrt(sample.Y)

	x := r * math.Cos(a)
	y := r * math.Sin(a)
	z := math.Sqrt(math.Max(0, 1.0-sample.Y))

	return NewVec3(x, y, z)
}

// SampleCosineHemisphere generates a cosine-weighted random direction in hemisphere around normal
func SampleCosineHemisphere(normal Vec3, sample Vec2) Vec3 {
	return NewFrame(normal).ToWorld(SampleCosineHemisphereLocal(sample))
}

// CosineHemispherePDF is the solid angle density of SampleCosineHemisphere
func CosineHemispherePDF(cosTheta float64) float64 {
	if cosTheta <= 0 {
		return 0
	}
	return cosTheta / math.Pi
}

// SampleUniformTriangle returns barycentric coordinates (b1, b2) distributed
// uniformly over the area of a triangle. The point is a + b1*e1 + b2*e2.
func SampleUniformTriangle(sample Vec2) (float64, float64) {
	su := math.Sqrt(sample.X)
	return 1 - su, sample.Y * su
}

// SampleOnUnitSphere generates a uniform random direction on the unit sphere
func SampleOnUnitSphere(sample Vec2) Vec3 {
	z := 1.0 - 2.0*sample.X // z ∈ [-1, 1]
	r := math.Sqrt(math.Max(0, 1.0-z*z))
	phi := 2.0 * math.Pi * sample.Y
	x := r * math.Cos(phi)
	y := r * math.Sin(phi)
	return NewVec3(x, y, z)
}

// UniformSpherePDF is the solid angle density of SampleOnUnitSphere
func UniformSpherePDF() float64 {
	return 1.0 / (4.0 * math.Pi)
}
