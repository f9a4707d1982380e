package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sundjerbob/ww3-sub001/internal/config"
	"github.com/sundjerbob/ww3-sub001/internal/terrain"
)

var cfgFile string

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "terraingen",
})

var rootCmd = &cobra.Command{
	Use:   "terraingen",
	Short: "Procedural terrain generator",
	Long: `terraingen deterministically generates terrain from seeded gradient
noise: chunk meshes for rendering, height queries for placement, and
heightmap images for inspection.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./terraingen.yaml)")
	rootCmd.PersistentFlags().Int64("seed", terrain.DefaultNoiseParams().Seed, "World seed")
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")

	if err := viper.BindPFlag("noise.seed", rootCmd.PersistentFlags().Lookup("seed")); err != nil {
		panic(fmt.Sprintf("failed to bind flag: %v", err))
	}
	if err := viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose")); err != nil {
		panic(fmt.Sprintf("failed to bind flag: %v", err))
	}
}

// loadConfig reads the effective configuration and builds a store from it.
func loadConfig() (config.Config, *terrain.Store, error) {
	cfg, err := config.Load(viper.GetViper(), cfgFile)
	if err != nil {
		return config.Config{}, nil, err
	}
	if viper.GetBool("verbose") {
		logger.SetLevel(log.DebugLevel)
		logger.Debug("configuration loaded",
			"seed", cfg.Noise.Seed,
			"octaves", cfg.Noise.Octaves,
			"chunkSize", cfg.Chunk.Size,
			"resolution", cfg.Chunk.Resolution)
	}

	store, err := terrain.NewStore(cfg.NoiseParams(), cfg.ChunkParams())
	if err != nil {
		return config.Config{}, nil, err
	}
	return cfg, store, nil
}
