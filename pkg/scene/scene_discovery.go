package scene

import (
	"fmt"
	"sort"
)

// SceneInfo describes a built-in scene
type SceneInfo struct {
	Name        string
	Description string
	create      func() *Scene
}

var builtinScenes = []SceneInfo{
	{"default", "Five spheres and a cube over a ground sphere", NewDefaultScene},
	{"materials", "Every material on a sphere and a cube", NewMaterialsScene},
	{"spheregrid", "10x10 grid of spheres and cubes with mixed materials", NewSphereGridScene},
}

// ListScenes returns the built-in scenes sorted by name
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, len(builtinScenes))
	copy(scenes, builtinScenes)
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].Name < scenes[j].Name
	})
	return scenes
}

// Lookup creates the built-in scene with the given name
func Lookup(name string) (*Scene, error) {
	for _, info := range builtinScenes {
		if info.Name == name {
			return info.create(), nil
		}
	}
	return nil, fmt.Errorf("unknown scene %q", name)
}
