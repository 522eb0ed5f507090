package scene

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownScene is returned by ByName for names that are not registered
var ErrUnknownScene = errors.New("unknown scene")

var builtinScenes = map[string]func(Options) *Scene{
	"raytrace": NewRaytraceScene,
	"full":     NewFullScene,
	"texture":  NewTextureScene,
}

// ByName builds the built-in scene registered under name
func ByName(name string, opts Options) (*Scene, error) {
	build, ok := builtinScenes[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (available: %v)", ErrUnknownScene, name, Names())
	}
	return build(opts), nil
}

// Names returns the registered scene names in sorted order
func Names() []string {
	names := make([]string, 0, len(builtinScenes))
	for name := range builtinScenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
