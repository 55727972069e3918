// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/image/draw"
	"gopkg.in/natefinch/lumberjack.v2"

	"strata.org/app"
	"strata.org/app/headless"
	"strata.org/example"
	"strata.org/widget/material"
)

type renderFlags struct {
	size    string
	theme   string
	out     string
	scale   float64
	logFile string
	script  []string
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "strata",
		Short: "Render strata examples headlessly",
		Long: `Strata renders the example widget trees without a window system.

Input actions given with --do are applied in order, and a frame is
drawn after each one. The last frame is written as a PNG image.`,
		SilenceUsage: true,
	}
	root.AddCommand(newListCmd(), newRenderCmd())
	return root
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the examples",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, n := range example.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), n)
			}
		},
	}
}

func newRenderCmd() *cobra.Command {
	var f renderFlags
	cmd := &cobra.Command{
		Use:   "render <example>",
		Short: "Render an example to a PNG image",
		Long: `Render an example to a PNG image.

Actions:
  click X,Y     press and release the primary button
  press X,Y     press the primary button
  release X,Y   release the primary button
  move X,Y      move the pointer
  leave         move the pointer out of the window
  type TEXT     type text
  key NAME      press a key, optionally with modifiers as in Short-A`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: example.Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return render(cmd.ErrOrStderr(), args[0], f)
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&f.size, "size", "400x300", "window size as WIDTHxHEIGHT")
	fl.StringVar(&f.theme, "theme", "", "TOML theme file")
	fl.StringVarP(&f.out, "out", "o", "", "output PNG file (default <example>.png)")
	fl.Float64Var(&f.scale, "scale", 1, "scale factor of the output image")
	fl.StringVar(&f.logFile, "log", "", "log file, rotated when large (default stderr)")
	fl.StringArrayVar(&f.script, "do", nil, "input action, repeatable")
	return cmd
}

func render(stderr io.Writer, name string, f renderFlags) error {
	newRoot, ok := example.All[name]
	if !ok {
		return fmt.Errorf("strata: unknown example %q", name)
	}
	logger, closeLog := newLogger(stderr, f.logFile)
	defer closeLog()
	w, h, err := parseSize(f.size)
	if err != nil {
		return err
	}
	script, err := parseScript(f.script)
	if err != nil {
		return err
	}
	shaper, err := newShaper()
	if err != nil {
		return err
	}
	opts := []app.Option{app.Shaper(shaper)}
	if f.theme != "" {
		th, err := material.LoadTheme(f.theme)
		if err != nil {
			return err
		}
		opts = append(opts, app.Theme(th))
		logger.Printf("loaded theme %s", f.theme)
	}
	win := headless.NewWindow(newRoot(), w, h, opts...)
	if err := win.Frame(); err != nil {
		return err
	}
	for _, a := range script {
		logger.Printf("%s: %s", name, a)
		if err := a.apply(win); err != nil {
			return fmt.Errorf("strata: %s: %w", a, err)
		}
		if win.Invalidated() {
			if err := win.Frame(); err != nil {
				return err
			}
		}
	}
	img := scale(win.Screenshot(), f.scale)
	out := f.out
	if out == "" {
		out = name + ".png"
	}
	if err := writePNG(out, img); err != nil {
		return err
	}
	logger.Printf("wrote %s (%d frames)", out, win.Frames())
	return nil
}

// newLogger returns a logger writing to stderr, or to a rotated file
// if path is set.
func newLogger(stderr io.Writer, path string) (*log.Logger, func()) {
	if path == "" {
		return log.New(stderr, "strata: ", log.LstdFlags), func() {}
	}
	lj := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
	}
	return log.New(lj, "", log.LstdFlags), func() { lj.Close() }
}

// scale resizes img by s with Catmull-Rom filtering.
func scale(img *image.RGBA, s float64) *image.RGBA {
	if s <= 0 || s == 1 {
		return img
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, int(float64(b.Dx())*s), int(float64(b.Dy())*s)))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("strata: encode %s: %w", path, err)
	}
	return f.Close()
}
