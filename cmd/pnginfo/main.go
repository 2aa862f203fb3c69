// Command pnginfo inspects, decodes and converts PNG files.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robert-malhotra/go-png/internal/oops"
	"github.com/robert-malhotra/go-png/png"
)

var (
	logLevel    string
	strictOrder bool
	maxPixels   uint64
	maxInflated int64
)

var rootCommand = &cobra.Command{
	Use:           "pnginfo",
	Short:         "Inspect, decode and convert PNG files",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := zerolog.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		zerolog.SetGlobalLevel(level)
		return nil
	},
}

func init() {
	zerolog.ErrorStackMarshaler = oops.ZerologStackMarshaler
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})

	flags := rootCommand.PersistentFlags()
	flags.StringVar(&logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")
	flags.BoolVar(&strictOrder, "strict", false, "require IHDR to be the first chunk")
	flags.Uint64Var(&maxPixels, "max-pixels", png.DefaultMaxPixels, "reject images with more pixels (0 = no limit)")
	flags.Int64Var(&maxInflated, "max-inflated", 0, "reject images whose image data inflates to more bytes (0 = no limit)")
}

// decodeOptions maps the global flags onto decoder options.
func decodeOptions() []png.DecodeOption {
	opts := []png.DecodeOption{
		png.WithLogger(log.Logger),
		png.WithMaxPixels(maxPixels),
		png.WithMaxInflatedSize(maxInflated),
	}
	if strictOrder {
		opts = append(opts, png.WithStrictHeaderOrder())
	}
	return opts
}

func main() {
	if err := rootCommand.Execute(); err != nil {
		log.Error().Stack().Err(err).Msg("pnginfo failed")
		os.Exit(1)
	}
}
