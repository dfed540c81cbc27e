package main

import (
	"bytes"

	"github.com/spf13/cobra"

	"github.com/gogpu/horizon"
)

func newTextureCmd(cfg *Config) *cobra.Command {
	var (
		out  string
		size int
	)
	cmd := &cobra.Command{
		Use:   "texture",
		Short: "Write the lens displacement texture as PNG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("size") {
				size = cfg.TextureSize
			}
			pm, err := horizon.GenerateLens(size)
			if err != nil {
				return err
			}
			var buf bytes.Buffer
			if err := pm.EncodePNG(&buf); err != nil {
				return err
			}
			if err := writeFile(out, buf.Bytes()); err != nil {
				return err
			}
			printer.Fprintf(cmd.OutOrStdout(), "wrote %s: %dx%d lens texture, %d bytes\n",
				out, size, size, buf.Len())
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "lens.png", "output PNG path")
	cmd.Flags().IntVar(&size, "size", horizon.DefaultTextureSize, "texture edge length in pixels")
	return cmd
}
