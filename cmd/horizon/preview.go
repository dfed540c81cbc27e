package main

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/spf13/cobra"
	_ "golang.org/x/image/webp" // scene input

	"github.com/gogpu/horizon"
	"github.com/gogpu/horizon/dom"
	"github.com/gogpu/horizon/preview"
)

// maxSettleFrames bounds the animation frames run before the lens settles.
const maxSettleFrames = 1000

type previewFlags struct {
	out          string
	input        string
	lensX, lensY float64
	disabled     bool
	debug        bool
}

func newPreviewCmd(cfg *Config) *cobra.Command {
	var flags previewFlags
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render a scene through the filter graph in software",
		Long: `Render a scene through the filter graph in software.

The effect is installed on an in-memory document sized to the scene, the
pointer is moved to the lens position and animation frames run until the
lens settles. Without --input a checkerboard of the configured viewport
size is used.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f := cmd.Flags()
			if !f.Changed("debug") {
				flags.debug = cfg.Debug
			}
			scene, err := loadScene(flags.input, cfg.Viewport)
			if err != nil {
				return err
			}
			b := scene.Bounds()
			vp := Viewport{Width: float64(b.Dx()), Height: float64(b.Dy())}

			at := Config{Viewport: vp, Lens: cfg.Lens}.LensPoint()
			if f.Changed("lens-x") {
				at.X = flags.lensX
			}
			if f.Changed("lens-y") {
				at.Y = flags.lensY
			}

			img, frames, err := renderPreview(scene, cfg.TextureSize, at, flags)
			if err != nil {
				return err
			}
			var buf bytes.Buffer
			if err := png.Encode(&buf, img); err != nil {
				return fmt.Errorf("encode preview: %w", err)
			}
			if err := writeFile(flags.out, buf.Bytes()); err != nil {
				return err
			}
			printer.Fprintf(cmd.OutOrStdout(), "wrote %s: %dx%d preview, lens at (%v, %v) after %d frames, %d bytes\n",
				flags.out, b.Dx(), b.Dy(), at.X, at.Y, frames, buf.Len())
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVarP(&flags.out, "output", "o", "preview.png", "output PNG path")
	f.StringVarP(&flags.input, "input", "i", "", "scene image (PNG or WebP); default is a checkerboard")
	f.Float64Var(&flags.lensX, "lens-x", 0, "pointer x in scene coordinates (default center)")
	f.Float64Var(&flags.lensY, "lens-y", 0, "pointer y in scene coordinates (default center)")
	f.BoolVar(&flags.disabled, "disabled", false, "render with the effect toggled off")
	f.BoolVar(&flags.debug, "debug", false, "include the displacement map overlay")
	return cmd
}

func loadScene(path string, vp Viewport) (image.Image, error) {
	if path == "" {
		return preview.Checkerboard(int(vp.Width), int(vp.Height)), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scene: %w", err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode scene %s: %w", path, err)
	}
	return img, nil
}

// renderPreview drives the controller over an in-memory document until the
// lens reaches the pointer, then renders the installed graph.
func renderPreview(scene image.Image, textureSize int, at Point, flags previewFlags) (*image.NRGBA, int, error) {
	b := scene.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())

	doc := dom.NewDocument()
	target := dom.NewNode("", "div")
	target.SetAttribute("class", "container")
	target.SetBoundingClientRect(dom.Rect{Width: w, Height: h})
	doc.Body().AppendChild(target)

	win := dom.NewManualWindow(w, h)
	c, err := horizon.Init(doc, win,
		horizon.WithTextureSize(textureSize),
		horizon.WithDebug(flags.debug))
	if err != nil {
		return nil, 0, err
	}
	defer c.Stop()

	win.MoveMouse(at.X, at.Y)
	frames := 0
	for frames < maxSettleFrames {
		n := win.Step()
		frames += n
		if n == 0 || c.Pointer().Gap() < 0.01 {
			break
		}
	}
	if flags.disabled {
		c.SetEnabled(false)
	}

	img, err := preview.RenderDocument(scene, doc)
	if err != nil {
		return nil, frames, err
	}
	return img, frames, nil
}
