// Command mipdemo builds a mipmap pyramid from an image file and prints
// the resulting level table. It plays the collaborator role the texel
// library leaves to its callers: decoding the input file and encoding
// any output.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/texel"
)

func main() {
	var (
		input  = flag.String("input", "", "input image (PNG or JPEG)")
		levels = flag.Int("levels", 0, "mipmap levels to build (0 = full pyramid)")
		filter = flag.String("filter", "bilinear", "resampling filter: nearest, box, bilinear, catmullrom, lanczos2, lanczos3")
		outdir = flag.String("outdir", "", "if set, write each level as PNG into this directory")
	)
	flag.Parse()

	if *input == "" {
		flag.Usage()
		os.Exit(2)
	}

	f, err := parseFilter(*filter)
	if err != nil {
		log.Fatalf("Bad filter: %v", err)
	}

	img, err := decode(*input)
	if err != nil {
		log.Fatalf("Failed to decode %s: %v", *input, err)
	}

	base := texel.FromImage(img)
	if base == nil {
		log.Fatalf("Image %s has no pixels", *input)
	}

	tex, err := texel.Build(base, texel.WithLevels(*levels), texel.WithFilter(f))
	if errors.Is(err, texel.ErrDimension) {
		log.Fatalf("Base is %dx%d: mipmapping needs power-of-two dimensions "+
			"(use -levels 1 for a single-level texture): %v",
			base.Width(), base.Height(), err)
	}
	if err != nil {
		log.Fatalf("Build failed: %v", err)
	}

	log.Printf("Built %d level(s) from %s (%dx%d, widthLog2=%d, heightLog2=%d, filter=%s)",
		tex.NumLevels(), *input, tex.Width(), tex.Height(),
		tex.WidthLog2(), tex.HeightLog2(), f)

	for _, l := range tex.Levels() {
		log.Printf("  level %2d: %4dx%-4d (%d bytes)",
			l.Index, l.Width(), l.Height(), l.Buffer.ByteSize())
	}

	if *outdir != "" {
		if err := writeLevels(tex, *outdir); err != nil {
			log.Fatalf("Failed to write levels: %v", err)
		}
		log.Printf("Levels written to %s", *outdir)
	}
}

func parseFilter(name string) (texel.Filter, error) {
	switch strings.ToLower(name) {
	case "nearest":
		return texel.FilterNearest, nil
	case "box":
		return texel.FilterBox, nil
	case "bilinear":
		return texel.FilterBilinear, nil
	case "catmullrom":
		return texel.FilterCatmullRom, nil
	case "lanczos2":
		return texel.FilterLanczos2, nil
	case "lanczos3":
		return texel.FilterLanczos3, nil
	default:
		return 0, fmt.Errorf("unknown filter %q", name)
	}
}

func decode(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return jpeg.Decode(f)
	default:
		return png.Decode(f)
	}
}

func writeLevels(tex *texel.Texture, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for _, l := range tex.Levels() {
		path := filepath.Join(dir, fmt.Sprintf("level_%02d.png", l.Index))
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := png.Encode(f, l.Buffer.Image()); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
	}
	return nil
}
