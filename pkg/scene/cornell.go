package scene

import (
	"github.com/df07/go-lighttracer/pkg/camera"
	"github.com/df07/go-lighttracer/pkg/core"
	"github.com/df07/go-lighttracer/pkg/lights"
	"github.com/df07/go-lighttracer/pkg/material"
)

// Cornell box dimensions (standard 555x555x555 units), Z up
const boxSize = 555.0

// NewCornellScene creates a classic Cornell box with quad walls, a ceiling
// area light, a short diffuse block and a tall mirror block
func NewCornellScene(width, height int) (*Scene, error) {
	s := New("cornell")
	if err := addCornellCamera(s, width, height); err != nil {
		return nil, err
	}
	addCornellBox(s)

	// Ceiling light (smaller quad in the center of the ceiling), facing down
	lightSize := 130.0
	lightOffset := (boxSize - lightSize) / 2.0
	s.AddQuadLight(
		core.NewVec3(lightOffset, lightOffset, boxSize-1), // corner (slightly below ceiling)
		core.NewVec3(0, lightSize, 0),                     // u vector (Y direction)
		core.NewVec3(lightSize, 0, 0),                     // v vector (X direction)
		core.NewVec3(15.0, 15.0, 15.0),                    // bright white emission
	)

	if err := s.Build(lights.WeightPower); err != nil {
		return nil, err
	}
	return s, nil
}

// NewPointLightScene is the Cornell box lit by a single point light
func NewPointLightScene(width, height int) (*Scene, error) {
	s := New("point-light")
	if err := addCornellCamera(s, width, height); err != nil {
		return nil, err
	}
	addCornellBox(s)

	s.AddPointLight(
		core.NewVec3(boxSize/2, boxSize/2, boxSize-50),
		core.NewVec3(150000, 150000, 150000),
	)

	if err := s.Build(lights.WeightPower); err != nil {
		return nil, err
	}
	return s, nil
}

func addCornellCamera(s *Scene, width, height int) error {
	cam, err := camera.NewPinhole(
		core.NewVec3(boxSize/2, -800, boxSize/2), // outside the open front, looking in
		core.NewVec3(boxSize/2, 0, boxSize/2),
		50.0, // ~40° horizontal field of view
		width, height,
	)
	if err != nil {
		return err
	}
	s.Camera = cam
	return nil
}

func addCornellBox(s *Scene) {
	white := s.AddMaterial(material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73)))
	red := s.AddMaterial(material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05)))
	green := s.AddMaterial(material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15)))
	mirror := s.AddMaterial(material.NewMirror(core.NewVec3(0.9, 0.9, 0.9)))

	x := core.NewVec3(boxSize, 0, 0)
	y := core.NewVec3(0, boxSize, 0)
	z := core.NewVec3(0, 0, boxSize)

	s.AddQuad(core.NewVec3(0, 0, 0), x, y, white)       // Floor
	s.AddQuad(core.NewVec3(0, 0, boxSize), x, y, white) // Ceiling
	s.AddQuad(core.NewVec3(0, boxSize, 0), x, z, white) // Back wall
	s.AddQuad(core.NewVec3(0, 0, 0), y, z, red)         // Left wall
	s.AddQuad(core.NewVec3(boxSize, 0, 0), y, z, green) // Right wall

	s.AddBox(core.NewVec3(290, 65, 0), core.NewVec3(455, 230, 165), white)
	s.AddBox(core.NewVec3(100, 270, 0), core.NewVec3(265, 435, 330), mirror)
}

// NewSingleLightScene is a lone triangle emitter over a diffuse floor. With
// a path length of one only the floor's direct lighting is visible.
func NewSingleLightScene(width, height int) (*Scene, error) {
	s := New("single-light")

	cam, err := camera.NewPinhole(core.NewVec3(0, -4, 2), core.NewVec3(0, 0, 0.5), 35.0, width, height)
	if err != nil {
		return nil, err
	}
	s.Camera = cam

	floor := s.AddMaterial(material.NewLambertian(core.NewVec3(0.8, 0.8, 0.8)))
	s.AddQuad(core.NewVec3(-3, -3, 0), core.NewVec3(6, 0, 0), core.NewVec3(0, 6, 0), floor)

	// Downward facing: (b-a) × (c-a) points to -Z
	s.AddTriangleLight(
		core.NewVec3(-0.5, -0.5, 1.5),
		core.NewVec3(0, 0.5, 1.5),
		core.NewVec3(0.5, -0.5, 1.5),
		core.NewVec3(10, 10, 10),
	)

	if err := s.Build(lights.WeightUniform); err != nil {
		return nil, err
	}
	return s, nil
}
