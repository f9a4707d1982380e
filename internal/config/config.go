package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/sundjerbob/ww3-sub001/internal/terrain"
)

// Config aggregates every tunable the tooling accepts, from a YAML file,
// TERRAINGEN_* environment variables, or flag bindings — in that order of
// increasing precedence.
type Config struct {
	Noise  NoiseConfig  `mapstructure:"noise"`
	Chunk  ChunkConfig  `mapstructure:"chunk"`
	Viewer ViewerConfig `mapstructure:"viewer"`
}

type NoiseConfig struct {
	Seed        int64   `mapstructure:"seed"`
	Amplitude   float64 `mapstructure:"amplitude"`
	Frequency   float64 `mapstructure:"frequency"`
	Octaves     int     `mapstructure:"octaves"`
	Persistence float64 `mapstructure:"persistence"`
	Lacunarity  float64 `mapstructure:"lacunarity"`
	BaseHeight  float64 `mapstructure:"base_height"`
}

type ChunkConfig struct {
	Size       float64 `mapstructure:"size"`
	Resolution int     `mapstructure:"resolution"`
}

type ViewerConfig struct {
	Width    int `mapstructure:"width"`
	Height   int `mapstructure:"height"`
	FPSLimit int `mapstructure:"fps_limit"`
	Radius   int `mapstructure:"radius"`
}

// SetDefaults registers the default values on a viper instance. Defaults
// mirror terrain.DefaultNoiseParams / DefaultChunkParams.
func SetDefaults(v *viper.Viper) {
	np := terrain.DefaultNoiseParams()
	v.SetDefault("noise.seed", np.Seed)
	v.SetDefault("noise.amplitude", np.Amplitude)
	v.SetDefault("noise.frequency", np.Frequency)
	v.SetDefault("noise.octaves", np.Octaves)
	v.SetDefault("noise.persistence", np.Persistence)
	v.SetDefault("noise.lacunarity", np.Lacunarity)
	v.SetDefault("noise.base_height", np.BaseHeight)

	cp := terrain.DefaultChunkParams()
	v.SetDefault("chunk.size", cp.ChunkSize)
	v.SetDefault("chunk.resolution", cp.ChunkResolution)

	v.SetDefault("viewer.width", 1280)
	v.SetDefault("viewer.height", 720)
	v.SetDefault("viewer.fps_limit", 120)
	v.SetDefault("viewer.radius", 8)
}

// Load reads configuration from the given file (optional) plus the
// environment, validates it, and returns the result.
func Load(v *viper.Viper, cfgFile string) (Config, error) {
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName("terraingen")
	}

	v.SetEnvPrefix("TERRAINGEN")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing default config file is fine; an explicit one is not.
		if cfgFile != "" {
			return Config{}, fmt.Errorf("config: reading %s: %w", cfgFile, err)
		}
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return Config{}, fmt.Errorf("config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}

	if err := cfg.NoiseParams().Validate(); err != nil {
		return Config{}, err
	}
	if err := cfg.ChunkParams().Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// NoiseParams converts the loaded values into terrain parameters.
func (c Config) NoiseParams() terrain.NoiseParams {
	return terrain.NoiseParams{
		Seed:        c.Noise.Seed,
		Amplitude:   c.Noise.Amplitude,
		Frequency:   c.Noise.Frequency,
		Octaves:     c.Noise.Octaves,
		Persistence: c.Noise.Persistence,
		Lacunarity:  c.Noise.Lacunarity,
		BaseHeight:  c.Noise.BaseHeight,
	}
}

// ChunkParams converts the loaded values into chunk layout parameters.
func (c Config) ChunkParams() terrain.ChunkParams {
	return terrain.ChunkParams{
		ChunkSize:       c.Chunk.Size,
		ChunkResolution: c.Chunk.Resolution,
	}
}
