// Package summary draws the PNG report regenerated after every refresh.
package summary

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/sbilibin2017/gw-country-exchange/internal/logger"
	"github.com/sbilibin2017/gw-country-exchange/internal/models"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Canvas size of the generated image.
const (
	Width  = 800
	Height = 480
)

// TopN is the number of countries listed in the report.
const TopN = 5

const timeLayout = "2006-01-02T15:04:05.000Z"

var (
	background = color.White
	titleColor = color.RGBA{R: 0x1a, G: 0x23, B: 0x7e, A: 0xff}
	textColor  = color.RGBA{R: 0x21, G: 0x21, B: 0x21, A: 0xff}
)

// regularFont is parsed on first use and shared by every render.
var regularFont = sync.OnceValues(func() (*opentype.Font, error) {
	return opentype.Parse(goregular.TTF)
})

// CountryStats provides the figures printed on the report.
type CountryStats interface {
	TopByGDP(ctx context.Context, limit int) ([]models.GDPEntry, error)
	Count(ctx context.Context) (int64, error)
}

// RefreshTimeReader reads the last refresh time.
type RefreshTimeReader interface {
	GetLastRefreshedAt(ctx context.Context) (*time.Time, error)
}

// Renderer renders the summary image to a fixed path.
type Renderer struct {
	stats CountryStats
	meta  RefreshTimeReader
	path  string
}

// NewRenderer creates a Renderer writing to path.
func NewRenderer(stats CountryStats, meta RefreshTimeReader, path string) *Renderer {
	return &Renderer{stats: stats, meta: meta, path: path}
}

// Path returns the location of the rendered image.
func (r *Renderer) Path() string {
	return r.path
}

// Render reads the current figures and replaces the image on disk.
// The file is written next to its destination and renamed into place.
func (r *Renderer) Render(ctx context.Context) error {
	top, err := r.stats.TopByGDP(ctx, TopN)
	if err != nil {
		return fmt.Errorf("read top countries: %w", err)
	}
	total, err := r.stats.Count(ctx)
	if err != nil {
		return fmt.Errorf("count countries: %w", err)
	}
	last, err := r.meta.GetLastRefreshedAt(ctx)
	if err != nil {
		return fmt.Errorf("read last refresh: %w", err)
	}

	img, err := drawReport(total, last, top)
	if err != nil {
		return err
	}

	if err := writeAtomic(r.path, img); err != nil {
		return err
	}

	logger.Log.Infow("summary image rendered", "path", r.path, "total", total)
	return nil
}

func drawReport(total int64, last *time.Time, top []models.GDPEntry) (*image.RGBA, error) {
	f, err := regularFont()
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}

	titleFace, err := newFace(f, 28)
	if err != nil {
		return nil, err
	}
	defer titleFace.Close()
	headerFace, err := newFace(f, 20)
	if err != nil {
		return nil, err
	}
	defer headerFace.Close()
	rowFace, err := newFace(f, 18)
	if err != nil {
		return nil, err
	}
	defer rowFace.Close()

	img := image.NewRGBA(image.Rect(0, 0, Width, Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	lastRefresh := "N/A"
	if last != nil {
		lastRefresh = last.UTC().Format(timeLayout)
	}

	text(img, titleFace, titleColor, 24, 48, "Country Summary Report")
	text(img, headerFace, textColor, 24, 88, fmt.Sprintf("Total Countries: %d", total))
	text(img, headerFace, textColor, 24, 118, "Last Refresh: "+lastRefresh)
	text(img, headerFace, textColor, 24, 160, fmt.Sprintf("Top %d by Estimated GDP:", TopN))

	for i, entry := range top {
		gdp := "N/A"
		if entry.EstimatedGDP != nil {
			gdp = fmt.Sprintf("%.2f", *entry.EstimatedGDP)
		}
		text(img, rowFace, textColor, 40, 190+30*i, fmt.Sprintf("%d. %s - %s", i+1, entry.Name, gdp))
	}

	return img, nil
}

func newFace(f *opentype.Font, size float64) (font.Face, error) {
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create %.0fpt face: %w", size, err)
	}
	return face, nil
}

func text(dst draw.Image, face font.Face, c color.Color, x, y int, s string) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

func writeAtomic(path string, img image.Image) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create image dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".summary-*.png")
	if err != nil {
		return fmt.Errorf("create temp image: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if err := png.Encode(tmp, img); err != nil {
		tmp.Close()
		return fmt.Errorf("encode image: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp image: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("chmod temp image: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replace image: %w", err)
	}
	return nil
}
