package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Print effective parameters and sample heights",
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	cfg, store, err := loadConfig()
	if err != nil {
		return err
	}

	fmt.Printf("seed:        %d\n", cfg.Noise.Seed)
	fmt.Printf("amplitude:   %g\n", cfg.Noise.Amplitude)
	fmt.Printf("frequency:   %g\n", cfg.Noise.Frequency)
	fmt.Printf("octaves:     %d\n", cfg.Noise.Octaves)
	fmt.Printf("persistence: %g\n", cfg.Noise.Persistence)
	fmt.Printf("lacunarity:  %g\n", cfg.Noise.Lacunarity)
	fmt.Printf("base height: %g\n", cfg.Noise.BaseHeight)
	fmt.Printf("chunk size:  %g\n", cfg.Chunk.Size)
	fmt.Printf("resolution:  %d\n", cfg.Chunk.Resolution)

	fmt.Println("\nsample heights:")
	for _, p := range [][2]float64{{0, 0}, {100, 100}, {-250, 75}, {1000, -1000}} {
		fmt.Printf("  height(%g, %g) = %.4f\n", p[0], p[1], store.HeightAt(p[0], p[1]))
	}

	res := cfg.Chunk.Resolution
	fmt.Printf("\nper chunk: %d vertices, %d indices\n", res*res, (res-1)*(res-1)*6)
	return nil
}
