package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/schollz/progressbar/v3"

	"github.com/ShuoLyu0907/IDEA9103-Group-Somwrita-D/internal/asset"
	"github.com/ShuoLyu0907/IDEA9103-Group-Somwrita-D/internal/document"
	"github.com/ShuoLyu0907/IDEA9103-Group-Somwrita-D/internal/engine"
	"github.com/ShuoLyu0907/IDEA9103-Group-Somwrita-D/internal/export"
	"github.com/ShuoLyu0907/IDEA9103-Group-Somwrita-D/internal/logging"
)

type size struct {
	width, height int
}

func (s size) String() string {
	return fmt.Sprintf("%dx%d", s.width, s.height)
}

// parseSizes parses a comma separated list of WIDTHxHEIGHT pairs.
func parseSizes(list string) ([]size, error) {
	var out []size
	for _, item := range strings.Split(list, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		ws, hs, ok := strings.Cut(strings.ToLower(item), "x")
		if !ok {
			return nil, fmt.Errorf("size %q: want WIDTHxHEIGHT", item)
		}
		w, err := strconv.Atoi(ws)
		if err != nil {
			return nil, fmt.Errorf("size %q: bad width: %w", item, err)
		}
		h, err := strconv.Atoi(hs)
		if err != nil {
			return nil, fmt.Errorf("size %q: bad height: %w", item, err)
		}
		if w <= 0 || h <= 0 {
			return nil, fmt.Errorf("size %q: dimensions must be positive", item)
		}
		out = append(out, size{w, h})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no sizes given")
	}
	return out, nil
}

func run(args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("treerender", flag.ContinueOnError)
	fs.SetOutput(stderr)
	sizes := fs.String("sizes", "800x1300", "comma separated WIDTHxHEIGHT list")
	outDir := fs.String("out", ".", "output directory")
	sceneFile := fs.String("scene", "", "scene file (YAML or JSON); defaults to the built-in apple tree")
	background := fs.String("background", "", "background image; the fallback fill is used when empty or unreadable")
	step := fs.Float64("step", engine.DefaultAngularStep, "split circle angular step in radians")
	logLevel := fs.String("log-level", "info", "log level")
	if err := fs.Parse(args); err != nil {
		return err
	}

	slog.SetDefault(logging.New(stderr, logging.Options{Level: *logLevel}))

	targets, err := parseSizes(*sizes)
	if err != nil {
		return err
	}

	scene := document.AppleTree()
	if *sceneFile != "" {
		if scene, err = document.LoadSceneFile(*sceneFile); err != nil {
			return fmt.Errorf("load scene: %w", err)
		}
	}

	eng := engine.NewEngine(scene)
	eng.SetAngularStep(*step)
	if *background != "" {
		img, err := asset.Load(*background)
		if err != nil {
			slog.Debug("background unavailable, using fallback", "path", *background, "error", err)
		} else {
			eng.SetBackground(img)
		}
	}

	pb := progressbar.NewOptions(len(targets),
		progressbar.OptionSetWriter(stderr),
		progressbar.OptionSetDescription("rendering"),
	)
	defer pb.Close()

	for _, sz := range targets {
		path := filepath.Join(*outDir, fmt.Sprintf("tree-%s.png", sz))
		if err := export.WritePNGFile(path, eng, sz.width, sz.height); err != nil {
			return fmt.Errorf("render %s: %w", sz, err)
		}
		vp := eng.Viewport()
		x0, y0, x1, y1 := vp.DesignBounds()
		slog.Debug("wrote snapshot",
			"path", path,
			"scale", vp.Scale,
			"design_bounds", fmt.Sprintf("(%.1f, %.1f)-(%.1f, %.1f)", x0, y0, x1, y1),
		)
		if err := pb.Add(1); err != nil {
			slog.Debug("progress bar", "error", err)
		}
	}

	return nil
}

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "treerender: %v\n", err)
		os.Exit(1)
	}
}
