// Package icons slices pre-rendered grid images into individual icon files.
package icons

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/thesavant42/iconkit/internal/models"
)

// Extractor writes grid cells as PNG files under OutDir
type Extractor struct {
	OutDir string
	logger *log.Logger

	// Notify, if set, is called after each icon is written
	Notify func(models.ExtractResult)
}

// NewExtractor creates an extractor writing into outDir
func NewExtractor(outDir string, logger *log.Logger) *Extractor {
	return &Extractor{
		OutDir: outDir,
		logger: logger,
	}
}

// Extract processes each grid in order. A grid whose source image is
// missing or cannot be decoded is skipped. Errors creating the output
// directory or writing an icon are returned.
func (e *Extractor) Extract(grids []models.Grid) ([]models.ExtractResult, error) {
	if err := os.MkdirAll(e.OutDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	var results []models.ExtractResult
	for _, g := range grids {
		if len(g.Cells) != g.CellCount() {
			return results, fmt.Errorf("grid %s: %d names for %dx%d cells", g.Name, len(g.Cells), g.Cols, g.Rows)
		}

		src, err := loadImage(g.Source)
		if errors.Is(err, fs.ErrNotExist) {
			e.logger.Debug("source image missing, skipping", "grid", g.Name, "path", g.Source)
			continue
		}
		if err != nil {
			e.logger.Error("cannot decode source image, skipping", "grid", g.Name, "path", g.Source, "err", err)
			continue
		}

		bounds := src.Bounds()
		e.logger.Debug("slicing grid", "grid", g.Name, "width", bounds.Dx(), "height", bounds.Dy(), "cols", g.Cols, "rows", g.Rows)

		for i, name := range g.Cells {
			r := CellRect(bounds, g.Cols, g.Rows, i)
			out := filepath.Join(e.OutDir, name)
			if err := writePNG(out, crop(src, r)); err != nil {
				return results, fmt.Errorf("grid %s: %w", g.Name, err)
			}

			res := models.ExtractResult{Grid: g.Name, Name: name, Path: out, Bounds: r}
			results = append(results, res)
			if e.Notify != nil {
				e.Notify(res)
			}
		}
	}
	return results, nil
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// crop copies r out of src into a new image anchored at the origin
func crop(src image.Image, r image.Rectangle) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	draw.Draw(dst, dst.Bounds(), src, r.Min, draw.Src)
	return dst
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}
