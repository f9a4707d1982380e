package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sundjerbob/ww3-sub001/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Render a heightmap PNG",
	Long:  `Sample the heightfield over a world-space square and write a grayscale PNG.`,
	RunE:  runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringP("out", "o", "heightmap.png", "Output file path")
	exportCmd.Flags().Int("size", 512, "Sampled square size in pixels (one world unit per pixel)")
	exportCmd.Flags().Float64("origin-x", 0, "World X of the top-left pixel")
	exportCmd.Flags().Float64("origin-z", 0, "World Z of the top-left pixel")
	exportCmd.Flags().Bool("shade", false, "Apply hillshading from surface normals")
	exportCmd.Flags().Bool("grain", false, "Overlay a paper-grain noise texture")
	exportCmd.Flags().Int("scale", 1, "Integer output upscaling factor")
}

func runExport(cmd *cobra.Command, args []string) error {
	_, store, err := loadConfig()
	if err != nil {
		return err
	}

	out, _ := cmd.Flags().GetString("out")
	size, _ := cmd.Flags().GetInt("size")
	originX, _ := cmd.Flags().GetFloat64("origin-x")
	originZ, _ := cmd.Flags().GetFloat64("origin-z")
	shade, _ := cmd.Flags().GetBool("shade")
	grain, _ := cmd.Flags().GetBool("grain")
	scale, _ := cmd.Flags().GetInt("scale")

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("export: creating %s: %w", out, err)
	}
	defer f.Close()

	opts := export.Options{
		OriginX: originX,
		OriginZ: originZ,
		Size:    size,
		Shade:   shade,
		Grain:   grain,
		Scale:   scale,
	}
	if err := export.WriteHeightmapPNG(f, store, opts); err != nil {
		return err
	}

	logger.Info("heightmap written", "path", out, "size", size, "scale", scale)
	return nil
}
