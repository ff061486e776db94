// Package preview downloads a photo and renders it as terminal text using
// half-block cells, two vertical pixels per cell.
package preview

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"  // GIF decoder for photo previews
	_ "image/jpeg" // JPEG decoder for photo previews
	_ "image/png"  // PNG decoder for photo previews
	"io"
	"net/http"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/nfnt/resize"
)

// ErrPreview is matched by every error returned from Load.
var ErrPreview = errors.New("preview failed")

const (
	maxImageBytes = 10 << 20
	upperHalf     = "▀"
	minWidth      = 4

	// maxPixels bounds the decoded size; headers are checked before decoding.
	maxPixels = 24 << 20
	// maxRows bounds the rendered height in terminal rows.
	maxRows = 200
)

// Error describes a failed preview load.
type Error struct {
	URL string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("preview %s: %v", e.URL, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool { return target == ErrPreview }

// Image is a rendered preview.
type Image struct {
	URL    string
	Bytes  int64 // downloaded size
	Width  int   // source width in pixels
	Height int   // source height in pixels
	Lines  []string
}

// View returns the rendered rows joined by newlines.
func (i *Image) View() string {
	return strings.Join(i.Lines, "\n")
}

// Caption describes the source image, e.g. "500×375 · 42 kB".
func (i *Image) Caption() string {
	return fmt.Sprintf("%d×%d · %s", i.Width, i.Height, humanize.Bytes(uint64(max(i.Bytes, 0)))) //nolint:gosec // clamped to non-negative
}

// Loader fetches and renders previews. There is no cache; every Load
// issues a request.
type Loader struct {
	httpClient *http.Client
	background colorful.Color
}

// NewLoader creates a loader compositing transparent pixels over the
// given background color ("#rrggbb"). An invalid color falls back to black.
func NewLoader(background string) *Loader {
	bg, err := colorful.Hex(background)
	if err != nil {
		bg = colorful.Color{}
	}
	return &Loader{
		httpClient: &http.Client{},
		background: bg,
	}
}

// Load downloads the image at url and renders it width cells wide.
func (l *Loader) Load(ctx context.Context, url string, width int) (*Image, error) {
	if url == "" {
		return nil, &Error{URL: url, Err: errors.New("photo has no image")}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, &Error{URL: url, Err: err}
	}

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return nil, &Error{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &Error{URL: url, Err: fmt.Errorf("unexpected status: %s", resp.Status)}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return nil, &Error{URL: url, Err: fmt.Errorf("read image: %w", err)}
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, &Error{URL: url, Err: fmt.Errorf("decode image: %w", err)}
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || int64(cfg.Width)*int64(cfg.Height) > maxPixels {
		return nil, &Error{URL: url, Err: fmt.Errorf("image too large: %d×%d", cfg.Width, cfg.Height)}
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &Error{URL: url, Err: fmt.Errorf("decode image: %w", err)}
	}

	b := img.Bounds()
	return &Image{
		URL:    url,
		Bytes:  int64(len(data)),
		Width:  b.Dx(),
		Height: b.Dy(),
		Lines:  l.Render(img, width),
	}, nil
}

// Render scales img to width cells, keeping its aspect ratio, and returns
// one string per terminal row. Tall images are narrowed so the result
// never exceeds maxRows rows.
func (l *Loader) Render(img image.Image, width int) []string {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil
	}
	width = max(width, minWidth)

	// Each cell shows two pixels stacked, so a square image of width w
	// cells takes w/2 rows.
	height := max(width*b.Dy()/b.Dx(), 2)
	if height > 2*maxRows {
		height = 2 * maxRows
		width = max(height*b.Dx()/b.Dy(), 1)
	}
	height += height % 2

	scaled := resize.Resize(uint(width), uint(height), img, resize.Bilinear) //nolint:gosec // small positive dimensions
	sb := scaled.Bounds()

	lines := make([]string, 0, height/2)
	for y := sb.Min.Y; y+1 < sb.Max.Y; y += 2 {
		var row strings.Builder
		for x := sb.Min.X; x < sb.Max.X; x++ {
			top := l.composite(scaled.At(x, y))
			bottom := l.composite(scaled.At(x, y+1))
			row.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color(top.Hex())).
				Background(lipgloss.Color(bottom.Hex())).
				Render(upperHalf))
		}
		lines = append(lines, row.String())
	}
	return lines
}

// composite blends c over the loader background according to its alpha.
func (l *Loader) composite(c color.Color) colorful.Color {
	_, _, _, a := c.RGBA()
	if a == 0 {
		return l.background
	}
	nrgba := color.NRGBAModel.Convert(c).(color.NRGBA)
	opaque := colorful.Color{
		R: float64(nrgba.R) / 255,
		G: float64(nrgba.G) / 255,
		B: float64(nrgba.B) / 255,
	}
	if a == 0xffff {
		return opaque
	}
	return l.background.BlendRgb(opaque, float64(a)/0xffff).Clamped()
}
