package media_test

import (
	"testing"

	"basemedia/core/media"

	"github.com/stretchr/testify/assert"
)

func TestConfig_IsValidSource(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   bool
	}{
		{"Disk", media.SourceDisk, true},
		{"Storage", media.SourceStorage, true},
		{"Invalid", "ftp", false},
		{"Empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := media.Config{Source: tt.source}
			assert.Equal(t, tt.want, c.IsValidSource())
		})
	}
}

func TestConfig_Preferred(t *testing.T) {
	c := media.Config{Graphics: "OpenGFX", Sound: "OpenSFX", Music: "OpenMSX"}

	assert.Equal(t, "OpenGFX", c.Preferred("graphics"))
	assert.Equal(t, "OpenSFX", c.Preferred("sound"))
	assert.Equal(t, "OpenMSX", c.Preferred("music"))
	assert.Equal(t, "", c.Preferred("fonts"))
}
