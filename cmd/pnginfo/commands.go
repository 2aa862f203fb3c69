package main

import (
	"fmt"
	"image"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"

	"github.com/robert-malhotra/go-png/png"
	"github.com/robert-malhotra/go-png/resource"
)

func init() {
	var showPalette bool
	chunksCommand := &cobra.Command{
		Use:   "chunks <file.png>",
		Short: "List every chunk with its length and CRC status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			buf, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			infos, err := png.Inspect(buf)
			out := cmd.OutOrStdout()
			for _, info := range infos {
				status := "ok"
				if !info.Valid {
					status = "CRC MISMATCH"
				}
				kind := "ancillary"
				if info.Critical {
					kind = "critical"
				}
				fmt.Fprintf(out, "%-4s  offset %-8d length %-8d crc %08x  %-9s  %s\n",
					info.Type, info.Offset, info.Length, info.CRC, kind, status)
			}
			if err != nil {
				return err
			}

			size, err := png.InflatedSize(buf, decodeOptions()...)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Inflated image data: %d bytes\n", size)

			if !showPalette {
				return nil
			}
			pal, err := png.ReadPalette(buf, decodeOptions()...)
			if err != nil {
				return err
			}
			if pal == nil {
				fmt.Fprintln(out, "No palette")
				return nil
			}
			fmt.Fprintf(out, "Palette: %d entries\n", len(pal))
			for i, c := range pal {
				fmt.Fprintf(out, "  %3d: #%02x%02x%02x alpha %d\n", i, c.R, c.G, c.B, c.A)
			}
			return nil
		},
	}
	chunksCommand.Flags().BoolVar(&showPalette, "palette", false, "also print the palette entries of indexed images")
	rootCommand.AddCommand(chunksCommand)

	headerCommand := &cobra.Command{
		Use:   "header <file.png>",
		Short: "Print the image header",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			buf, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			h, err := png.ReadHeader(buf)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Width: %d   Height: %d\n", h.Width, h.Height)
			fmt.Fprintf(out, "Bit depth: %d\n", h.BitDepth)
			fmt.Fprintf(out, "Color type: %d (%s)\n", h.ColorType, h.ColorName())
			fmt.Fprintf(out, "Compression method: %d\n", h.CompressionMethod)
			fmt.Fprintf(out, "Filter method: %d\n", h.FilterMethod)
			fmt.Fprintf(out, "Interlace method: %d\n", h.InterlaceMethod)
			if err := h.Validate(); err != nil {
				fmt.Fprintf(out, "Not decodable: %v\n", err)
			}
			return nil
		},
	}
	rootCommand.AddCommand(headerCommand)

	decodeCommand := &cobra.Command{
		Use:   "decode <file.png>...",
		Short: "Decode files into a resource library and report the result",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lib := resource.NewLibrary()
			opts := append(decodeOptions(), png.WithRegistry(lib))

			failed := 0
			for _, name := range args {
				buf, err := os.ReadFile(name)
				if err == nil {
					err = png.Decode(name, buf, opts...)
				}
				if err != nil {
					log.Error().Err(err).Str("file", name).Msg("decode failed")
					failed++
					continue
				}
			}

			out := cmd.OutOrStdout()
			for _, name := range lib.Names() {
				res, _ := lib.Get(name)
				img := res.(*png.Image)
				fmt.Fprintf(out, "%s: %dx%d, %d channel(s), %d bytes", name, img.Width, img.Height, img.Channels, img.Size())
				if img.Palette != nil {
					fmt.Fprintf(out, ", %d palette entries", len(img.Palette))
				}
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "%d decoded, %d failed, %d bytes in library\n", lib.Len(), failed, lib.UsedMemory())

			if failed > 0 {
				return fmt.Errorf("%d of %d files failed to decode", failed, len(args))
			}
			return nil
		},
	}
	rootCommand.AddCommand(decodeCommand)

	var convertWidth int
	convertCommand := &cobra.Command{
		Use:   "convert <in.png> <out.bmp>",
		Short: "Decode a PNG and write it as BMP, optionally scaled",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			buf, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			img, err := png.DecodeImage(buf, decodeOptions()...)
			if err != nil {
				return err
			}

			var dst image.Image = img.ToImage()
			if convertWidth > 0 && convertWidth != int(img.Width) {
				dst = scale(dst, convertWidth)
			}

			f, err := os.Create(args[1])
			if err != nil {
				return err
			}
			if err := bmp.Encode(f, dst); err != nil {
				f.Close()
				return fmt.Errorf("encoding bmp: %w", err)
			}
			return f.Close()
		},
	}
	convertCommand.Flags().IntVar(&convertWidth, "width", 0, "scale to this width, keeping the aspect ratio")
	rootCommand.AddCommand(convertCommand)

	stripCommand := &cobra.Command{
		Use:   "strip <in.png> <out.png>",
		Short: "Rewrite a PNG without ancillary or corrupt chunks",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			buf, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			out, err := png.Strip(buf, decodeOptions()...)
			if err != nil {
				return err
			}
			log.Info().Int("before", len(buf)).Int("after", len(out)).Msg("stripped")
			return os.WriteFile(args[1], out, 0o644)
		},
	}
	rootCommand.AddCommand(stripCommand)
}

// scale resizes src to the given width with Catmull-Rom resampling.
func scale(src image.Image, width int) image.Image {
	b := src.Bounds()
	height := b.Dy() * width / b.Dx()
	if height < 1 {
		height = 1
	}
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}
