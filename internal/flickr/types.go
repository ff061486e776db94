package flickr

import (
	"errors"
	"fmt"
)

// ErrFetch matches every error returned by Client. Callers never need to
// distinguish transport, decode and API-reported failures.
var ErrFetch = errors.New("fetch photos")

// Photo is a single photo listing entry.
// ImageURL is empty when the API did not provide a small-size URL.
type Photo struct {
	ID       string
	Title    string
	ImageURL string
}

// HasImage returns true if the photo has a displayable image URL.
func (p Photo) HasImage() bool {
	return p.ImageURL != ""
}

// FetchError describes a failed fetch. Err is nil for API-reported failures.
type FetchError struct {
	Op         string // "recent" or "search"
	Diagnostic string
	Err        error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("flickr %s: %s: %v", e.Op, e.Diagnostic, e.Err)
	}
	return fmt.Sprintf("flickr %s: %s", e.Op, e.Diagnostic)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrFetch) hold for every FetchError.
func (e *FetchError) Is(target error) bool { return target == ErrFetch }

// API response types

type listResponse struct {
	Stat    string    `json:"stat"`
	Code    int       `json:"code"`
	Message string    `json:"message"`
	Photos  photoPage `json:"photos"`
}

type photoPage struct {
	Photo []photoItem `json:"photo"`
}

type photoItem struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	URLSmall string `json:"url_s"`
}
