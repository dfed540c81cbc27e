// Command horizon generates the event-horizon lens assets and previews the
// effect offline.
//
// Usage:
//
//	horizon texture -o lens.png --size 512
//	horizon markup -o filter.svg --width 1920 --height 1080 --debug
//	horizon preview -o preview.png --input scene.png --lens-x 400 --lens-y 300
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/horizon"
)

type rootFlags struct {
	configPath string
	verbose    bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "horizon:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var flags rootFlags
	cfg := defaultConfig()

	root := &cobra.Command{
		Use:           "horizon",
		Short:         "Event-horizon lens assets and previews",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if flags.verbose {
				horizon.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(),
					&slog.HandlerOptions{Level: slog.LevelDebug})))
			}
			loaded, err := loadConfig(flags.configPath)
			if err != nil {
				return err
			}
			cfg = loaded
			return nil
		},
	}
	root.PersistentFlags().StringVar(&flags.configPath, "config", "", "YAML file with default settings")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "log debug output to stderr")

	root.AddCommand(
		newTextureCmd(&cfg),
		newMarkupCmd(&cfg),
		newPreviewCmd(&cfg),
	)
	return root
}

// printer formats summaries with grouped digits.
var printer = message.NewPrinter(language.English)

func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
