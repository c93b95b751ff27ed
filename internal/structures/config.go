package structures

import "time"

type Server struct {
	Host string `yaml:"host" validate:"required"`
	Port int    `yaml:"port" validate:"required|uint|min:1"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `yaml:"mode" validate:"required|uint"`
	Dir   string `yaml:"dir" validate:"required|unixPath"`
}

type LiveDataConfig struct {
	BaseURL string        `yaml:"baseUrl" validate:"required|fullUrl"`
	Timeout time.Duration `yaml:"timeout" validate:"required|min:1"`
}

type SyncConfig struct {
	Interval  time.Duration `yaml:"interval" validate:"required|min:1"`
	OnStartup bool          `yaml:"onStartup"`
}

type StorageConfig struct {
	Backend     string        `yaml:"backend" validate:"required|in:file,gcs"`
	Dir         string        `yaml:"dir"`
	Compress    bool          `yaml:"compress"`
	Bucket      string        `yaml:"bucket"`
	Credentials string        `yaml:"credentials"`
	Timeout     time.Duration `yaml:"timeout"`
}

// ParkConfig identifies one park belonging to a destination. The id is the
// upstream live-data entity id used in fetch URLs and snapshot keys.
type ParkConfig struct {
	ID   string `yaml:"id" validate:"required"`
	Slug string `yaml:"slug"`
}

// DestinationConfig is the static descriptor for one destination. Identity
// fields are configuration, never derived from upstream data.
type DestinationConfig struct {
	ID    string       `yaml:"id" validate:"required"`
	Name  string       `yaml:"name" validate:"required"`
	Slug  string       `yaml:"slug" validate:"required"`
	Parks []ParkConfig `yaml:"parks" validate:"required"`
}

type CacheConfig struct {
	Enabled bool `yaml:"enabled"`
	Size    int  `yaml:"size"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

type Config struct {
	AppName      string
	Debug        bool
	Path         string
	Destinations []DestinationConfig `yaml:"destinations" validate:"required"`
	LiveData     LiveDataConfig      `yaml:"liveData"`
	Sync         SyncConfig          `yaml:"sync"`
	Storage      StorageConfig       `yaml:"storage"`
	WebServer    Server              `yaml:"webServer"`
	Logger       LoggerConfig        `yaml:"logger"`
	Cache        CacheConfig         `yaml:"cache"`
	Metrics      MetricsConfig       `yaml:"metrics"`
}

// Destination returns the configured descriptor for slug, or nil.
func (c *Config) Destination(slug string) *DestinationConfig {
	for i := range c.Destinations {
		if c.Destinations[i].Slug == slug {
			return &c.Destinations[i]
		}
	}
	return nil
}
