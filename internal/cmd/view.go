package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sundjerbob/ww3-sub001/internal/viewer"
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Fly around the generated terrain",
	Long: `Open an interactive window and stream terrain chunks around the camera.
WASD moves, mouse looks, space/shift fly up and down, Esc quits.`,
	RunE: runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)

	viewCmd.Flags().Int("width", 1280, "Window width")
	viewCmd.Flags().Int("height", 720, "Window height")
	viewCmd.Flags().Int("fps-limit", 120, "Frame rate cap (0 disables)")
	viewCmd.Flags().Int("radius", 8, "Chunk streaming radius around the camera")

	bindFlags := []struct {
		key  string
		flag string
	}{
		{"viewer.width", "width"},
		{"viewer.height", "height"},
		{"viewer.fps_limit", "fps-limit"},
		{"viewer.radius", "radius"},
	}
	for _, b := range bindFlags {
		if err := viper.BindPFlag(b.key, viewCmd.Flags().Lookup(b.flag)); err != nil {
			panic(err)
		}
	}
}

func runView(cmd *cobra.Command, args []string) error {
	cfg, store, err := loadConfig()
	if err != nil {
		return err
	}

	logger.Info("starting viewer",
		"seed", cfg.Noise.Seed,
		"radius", cfg.Viewer.Radius)

	app, err := viewer.New(store, viewer.Options{
		Width:    cfg.Viewer.Width,
		Height:   cfg.Viewer.Height,
		FPSLimit: cfg.Viewer.FPSLimit,
		Radius:   cfg.Viewer.Radius,
	})
	if err != nil {
		return err
	}
	defer app.Close()

	app.Run()
	return nil
}
