package scene

import (
	"fmt"
	"strings"
)

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string // Unique identifier, used on the command line
	DisplayName string
	Description string
	Emitters    string // Kind of light sources
}

type builder func(width, height int) (*Scene, error)

type registered struct {
	info  SceneInfo
	build builder
}

var builtinScenes = []registered{
	{SceneInfo{ID: "cornell", Description: "Cornell box with a diffuse and a mirror block", Emitters: "quad area light"}, NewCornellScene},
	{SceneInfo{ID: "single-light", Description: "Single triangle light over a diffuse floor", Emitters: "triangle area light"}, NewSingleLightScene},
	{SceneInfo{ID: "point-light", Description: "Cornell box lit by a point light", Emitters: "point light"}, NewPointLightScene},
}

// ListScenes returns the built-in scenes in a stable order
func ListScenes() []SceneInfo {
	infos := make([]SceneInfo, 0, len(builtinScenes))
	for _, r := range builtinScenes {
		info := r.info
		info.DisplayName = titleCase(info.ID)
		infos = append(infos, info)
	}
	return infos
}

// Load builds the named scene with a camera of the given resolution
func Load(id string, width, height int) (*Scene, error) {
	for _, r := range builtinScenes {
		if r.info.ID == id {
			logger.Debugf("loading scene %q at %dx%d", id, width, height)
			return r.build(width, height)
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownScene, id)
}

// titleCase converts a filename-style string to title case
// e.g., "cornell-empty" -> "Cornell Empty"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}
	return strings.Join(words, " ")
}
