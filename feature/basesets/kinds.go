package basesets

import (
	"fmt"

	"basemedia/core/baseset"
)

// Graphics sets replace the sprites of the original game data.
var Graphics = baseset.Kind{
	Name:      "graphics",
	Extension: ".obg",
	Files:     []string{"base", "logos", "arctic", "tropical", "toyland", "extra"},
}

// Sound sets provide the sample catalogue.
var Sound = baseset.Kind{
	Name:      "sound",
	Extension: ".obs",
	Files:     []string{"samples"},
}

// Music sets provide the theme and three playlists of ten songs. A song may be
// left empty.
var Music = baseset.Kind{
	Name:       "music",
	Extension:  ".obm",
	Files:      musicSlots(),
	AllowEmpty: true,
}

func musicSlots() []string {
	slots := []string{"theme"}
	for _, playlist := range []string{"old", "new", "ezy"} {
		for i := 0; i < 10; i++ {
			slots = append(slots, fmt.Sprintf("%s_%d", playlist, i))
		}
	}
	return slots
}

// Kinds returns the supported kinds in scan order.
func Kinds() []baseset.Kind {
	return []baseset.Kind{Graphics, Sound, Music}
}

// KindByName returns the kind with the given name.
func KindByName(name string) (baseset.Kind, bool) {
	for _, k := range Kinds() {
		if k.Name == name {
			return k, true
		}
	}
	return baseset.Kind{}, false
}
