package media

// Config holds configuration for base set discovery.
type Config struct {
	// Source selects where manifests and set files are read from (disk, storage).
	Source string `mapstructure:"source" default:"disk"`
	// Root is the search directory used by the disk source.
	Root string `mapstructure:"root" default:"./baseset"`
	// Prefix is the object key prefix used by the storage source.
	Prefix string `mapstructure:"prefix" default:"baseset/"`
	// Language is the preferred description language, e.g. "en_GB".
	Language string `mapstructure:"language" default:"en_GB"`
	// DigestCacheSize bounds the number of file digests kept in memory.
	DigestCacheSize int `mapstructure:"digest_cache_size" default:"512"`
	// Graphics is the preferred graphics set name. Empty picks the best set.
	Graphics string `mapstructure:"graphics" default:""`
	// Sound is the preferred sound set name.
	Sound string `mapstructure:"sound" default:""`
	// Music is the preferred music set name.
	Music string `mapstructure:"music" default:""`
}

const (
	SourceDisk    = "disk"
	SourceStorage = "storage"
)

// IsValidSource checks if the configured source is valid.
func (c Config) IsValidSource() bool {
	switch c.Source {
	case SourceDisk, SourceStorage:
		return true
	default:
		return false
	}
}

// Preferred returns the configured set name for a kind, or "" when none is set.
func (c Config) Preferred(kind string) string {
	switch kind {
	case "graphics":
		return c.Graphics
	case "sound":
		return c.Sound
	case "music":
		return c.Music
	default:
		return ""
	}
}
