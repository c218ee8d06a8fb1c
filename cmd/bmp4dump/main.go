// bmp4dump inspects a 4 bpp BMP file: it prints the file header and DIB
// metadata, the color table, and an ANSI true-color preview of the pixels.
package main

import (
	"flag"
	"fmt"
	"image"
	"log/slog"
	"os"

	"golang.org/x/image/draw"

	"github.com/fumiama/bmp4"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [-config file] image.bmp\n", os.Args[0])
		os.Exit(2)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		slog.Error("Couldn't load config", "err", err)
		os.Exit(1)
	}

	name := flag.Arg(0)
	bm, err := bmp4.DecodeFile(name)
	if err != nil {
		slog.Error("Couldn't decode bitmap", "file", name, "err", err)
		os.Exit(1)
	}

	printMetadata(name, bm)
	if cfg.ShowPalette {
		printPalette(bm.Palette)
	}
	if cfg.ShowPixels {
		if err := printPixels(bm, cfg); err != nil {
			slog.Error("Couldn't render preview", "file", name, "err", err)
			os.Exit(1)
		}
	}
}

func printMetadata(name string, b *bmp4.Bitmap) {
	fmt.Printf("Filename: \t%v\n", name)
	fmt.Printf("Filesize: \t%v bytes\n", b.Header.FileSize)
	fmt.Printf("Width: \t\t%v px\n", b.Info.Width)
	fmt.Printf("Height: \t%v px\n", b.Info.Height)
	fmt.Printf("BitCount: \t%v bits\n", b.Info.BitCount)
	fmt.Printf("PixelOffset: \t%v bytes\n", b.Header.Offset)
	fmt.Printf("Colors: \t%v entries\n", b.Info.ColorsUsed)
	fmt.Printf("Stride: \t%v bytes\n", bmp4.RowStride(int(b.Info.Width), b.Info.BitCount))
}

func printPalette(p bmp4.Palette) {
	fmt.Println("Palette:")
	for i, c := range p {
		fmt.Printf("  %3d: %s (%3d, %3d, %3d)\n", i, coloredBlock("  ", c.R, c.G, c.B), c.R, c.G, c.B)
	}
}

// printPixels renders the pixel grid as colored terminal blocks, downscaled
// with nearest-neighbor to at most cfg.MaxWidth columns.
func printPixels(b *bmp4.Bitmap, cfg *Config) error {
	src, err := b.Image()
	if err != nil {
		return err
	}

	var img image.Image = src
	bounds := src.Bounds()
	if cfg.MaxWidth > 0 && bounds.Dx() > cfg.MaxWidth {
		h := bounds.Dy() * cfg.MaxWidth / bounds.Dx()
		if h < 1 {
			h = 1
		}
		dst := image.NewRGBA(image.Rect(0, 0, cfg.MaxWidth, h))
		draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, bounds, draw.Src, nil)
		img = dst
	}

	bounds = img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			fmt.Print(coloredBlock(cfg.Block, byte(r>>8), byte(g>>8), byte(bl>>8)))
		}
		fmt.Println()
	}
	return nil
}

// coloredBlock wraps s in a 24-bit ANSI background color escape.
func coloredBlock(s string, red, green, blue byte) string {
	return fmt.Sprintf("\033[48;2;%d;%d;%dm%s\033[0m", red, green, blue, s)
}
