package main

import (
	"flag"
	"os"
	"path/filepath"
	"strings"

	"cubular/internal/game"
)

func main() {
	opts := game.DefaultOptions()

	scenePath := flag.String("scene", opts.ScenePath, "scene file to load")
	width := flag.Int("width", int(opts.Width), "window width")
	height := flag.Int("height", int(opts.Height), "window height")
	fps := flag.Int("fps", int(opts.FPS), "target frames per second")
	flag.Parse()

	// A scene given on the command line is relative to where we were started.
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "scene" {
			if abs, err := filepath.Abs(*scenePath); err == nil {
				*scenePath = abs
			}
		}
	})

	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			if _, err := os.Stat(filepath.Join(execDir, "assets")); err == nil {
				os.Chdir(execDir)
			}
		}
	}

	opts.ScenePath = *scenePath
	opts.Width = int32(*width)
	opts.Height = int32(*height)
	opts.FPS = int32(*fps)

	g := game.New(opts)
	g.Run()
}
