package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"golang.org/x/term"

	"github.com/llehouerou/shutter/internal/favorites"
	"github.com/llehouerou/shutter/internal/flickr"
	"github.com/llehouerou/shutter/internal/ui/render"
	"github.com/llehouerou/shutter/internal/ui/styles"
)

const titleWidth = 40

// printer writes plain tables. Colors are used only on a terminal.
type printer struct {
	w     io.Writer
	color bool
	now   func() time.Time
}

func newPrinter(w io.Writer) *printer {
	return &printer{w: w, color: isTerminal(w), now: time.Now}
}

func isTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

func (p *printer) style(s lipgloss.Style, text string) string {
	if !p.color {
		return text
	}
	return s.Render(text)
}

// Photos prints one photo per line: id, title and image URL.
func (p *printer) Photos(photos []flickr.Photo) error {
	s := styles.T().S()
	if len(photos) == 0 {
		_, err := fmt.Fprintln(p.w, p.style(s.Muted, "No photos"))
		return err
	}

	idW := columnWidth(len(photos), func(i int) string { return photos[i].ID })
	for _, ph := range photos {
		url := ph.ImageURL
		if url == "" {
			url = p.style(s.Subtle, "-")
		}
		line := strings.Join([]string{
			p.style(s.Key, render.Pad(ph.ID, idW)),
			render.TruncateAndPad(cliTitle(ph.Title), titleWidth),
			url,
		}, "  ")
		if _, err := fmt.Fprintln(p.w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(p.w, p.style(s.Muted, humanize.Comma(int64(len(photos)))+" "+pluralize(len(photos), "photo")))
	return err
}

// Favorites prints stored favorites with when they were added.
func (p *printer) Favorites(entries []favorites.Entry) error {
	s := styles.T().S()
	if len(entries) == 0 {
		_, err := fmt.Fprintln(p.w, p.style(s.Muted, "No favorites"))
		return err
	}

	idW := columnWidth(len(entries), func(i int) string { return entries[i].ID })
	now := p.now()
	for _, e := range entries {
		line := strings.Join([]string{
			p.style(s.Favorite, "♥"),
			p.style(s.Key, render.Pad(e.ID, idW)),
			render.TruncateAndPad(cliTitle(e.Title), titleWidth),
			p.style(s.Muted, humanize.RelTime(e.AddedAt, now, "ago", "from now")),
		}, "  ")
		if _, err := fmt.Fprintln(p.w, line); err != nil {
			return err
		}
	}
	return nil
}

// Cleared reports how many favorites were removed.
func (p *printer) Cleared(n int) {
	s := styles.T().S()
	if n == 0 {
		fmt.Fprintln(p.w, p.style(s.Muted, "No favorites to clear"))
		return
	}
	fmt.Fprintln(p.w, p.style(s.Success, "Cleared "+humanize.Comma(int64(n))+" "+pluralize(n, "favorite")))
}

func columnWidth(n int, value func(int) string) int {
	w := 0
	for i := range n {
		w = max(w, lipgloss.Width(value(i)))
	}
	return w
}

func cliTitle(title string) string {
	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return render.Sanitize(title)
}

func pluralize(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
