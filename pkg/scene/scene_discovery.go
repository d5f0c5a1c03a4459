package scene

import (
	"fmt"
	"sort"
	"strings"
)

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string // Unique identifier used on the command line
	DisplayName string // Name for window titles and listings
	Description string // One-line description
	Seeded      bool   // Whether the scene depends on the random seed
}

type sceneFactory func(seed int64) (*Scene, error)

var builtinScenes = map[string]struct {
	info    SceneInfo
	factory sceneFactory
}{
	"random": {
		info: SceneInfo{ID: "random", DisplayName: "Random Spheres", Description: "Eight randomly placed spheres", Seeded: true},
		factory: func(seed int64) (*Scene, error) {
			return NewRandomScene(seed, DefaultRandomConfig())
		},
	},
	"single": {
		info:    SceneInfo{ID: "single", DisplayName: "Single Sphere", Description: "One sphere in front of the camera"},
		factory: func(int64) (*Scene, error) { return NewSingleSphereScene(), nil },
	},
	"shadow": {
		info:    SceneInfo{ID: "shadow", DisplayName: "Shadow", Description: "A small sphere casting a shadow on a larger one"},
		factory: func(int64) (*Scene, error) { return NewShadowScene(), nil },
	},
}

// ListScenes returns every built-in scene sorted by ID
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtinScenes))
	for _, entry := range builtinScenes {
		scenes = append(scenes, entry.info)
	}
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].ID < scenes[j].ID
	})
	return scenes
}

// Create builds the named scene. Seeded scenes use seed; the others ignore it.
func Create(name string, seed int64) (*Scene, error) {
	entry, ok := builtinScenes[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (available: %s)", name, availableNames())
	}
	return entry.factory(seed)
}

// Lookup returns the description of a built-in scene
func Lookup(name string) (SceneInfo, bool) {
	entry, ok := builtinScenes[strings.ToLower(strings.TrimSpace(name))]
	return entry.info, ok
}

func availableNames() string {
	var names []string
	for _, info := range ListScenes() {
		names = append(names, info.ID)
	}
	return strings.Join(names, ", ")
}
