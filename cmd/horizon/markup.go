package main

import (
	"github.com/spf13/cobra"

	"github.com/gogpu/horizon"
	"github.com/gogpu/horizon/dom"
)

func newMarkupCmd(cfg *Config) *cobra.Command {
	var (
		out           string
		debug         bool
		width, height float64
	)
	cmd := &cobra.Command{
		Use:   "markup",
		Short: "Write a standalone SVG holding the filter graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f := cmd.Flags()
			if !f.Changed("debug") {
				debug = cfg.Debug
			}
			if !f.Changed("width") {
				width = cfg.Viewport.Width
			}
			if !f.Changed("height") {
				height = cfg.Viewport.Height
			}

			svg, err := standaloneSVG(cfg.TextureSize, width, height, debug)
			if err != nil {
				return err
			}
			if err := writeFile(out, []byte(svg)); err != nil {
				return err
			}
			ec := horizon.ConfigFor(width, height)
			printer.Fprintf(cmd.OutOrStdout(), "wrote %s: diameter %v, strength %v, %d bytes\n",
				out, ec.Diameter, ec.Strength, len(svg))
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "filter.svg", "output SVG path")
	cmd.Flags().BoolVar(&debug, "debug", false, "include the displacement map overlay")
	cmd.Flags().Float64Var(&width, "width", 0, "viewport width (default from config)")
	cmd.Flags().Float64Var(&height, "height", 0, "viewport height (default from config)")
	return cmd
}

// standaloneSVG returns a zero-size svg document with the filter defs for
// a viewport of the given size.
func standaloneSVG(textureSize int, width, height float64, debug bool) (string, error) {
	lens, err := horizon.LensDataURI(textureSize)
	if err != nil {
		return "", err
	}
	ec := horizon.ConfigFor(width, height)
	markup := horizon.BuildFilterMarkup(horizon.FilterParams{
		LensURL:          lens,
		NeutralIntercept: horizon.NeutralIntercept(),
		Diameter:         ec.Diameter,
		Strength:         ec.Strength,
		Debug:            debug,
	})

	svg := dom.NewNode(dom.SVGNamespace, "svg")
	svg.SetAttribute("id", horizon.FilterContainerID)
	svg.SetAttribute("width", "0")
	svg.SetAttribute("height", "0")
	if err := svg.SetInnerMarkup(markup); err != nil {
		return "", err
	}
	return svg.OuterMarkup() + "\n", nil
}
