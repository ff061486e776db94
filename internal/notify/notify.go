// Package notify provides desktop notifications via D-Bus.
package notify

import (
	"fmt"
	"strings"
)

// Urgency represents notification priority levels per freedesktop spec.
type Urgency byte

const (
	UrgencyLow      Urgency = 0
	UrgencyNormal   Urgency = 1
	UrgencyCritical Urgency = 2
)

const (
	appName      = "Shutter"
	desktopEntry = "shutter"
	favoriteIcon = "emblem-favorite"

	// DefaultTimeout is the display time for shutter notifications (ms).
	DefaultTimeout int32 = 4000
)

// Notification contains data for a desktop notification.
type Notification struct {
	Title      string  // Summary text (required)
	Body       string  // Body text (optional, supports basic markup)
	Icon       string  // Path to image file or icon name (optional)
	Timeout    int32   // ms, -1 = server default, 0 = never expire
	ReplacesID uint32  // 0 = new notification, >0 = replace existing
	Urgency    Urgency // Low, Normal, Critical
}

// Notifier sends desktop notifications.
type Notifier interface {
	// Notify sends a notification and returns its ID.
	// Returns 0 and nil error if notifications are disabled or unavailable.
	Notify(n Notification) (uint32, error)
	// Close closes a notification by ID.
	Close(id uint32) error
}

// FavoriteAdded builds the notification shown after a photo was saved.
// total is the favorites count including the new one.
func FavoriteAdded(title string, total int) Notification {
	title = strings.TrimSpace(title)
	if title == "" {
		title = "Untitled photo"
	}
	body := "1 favorite"
	if total != 1 {
		body = fmt.Sprintf("%d favorites", total)
	}
	return Notification{
		Title:   "Added to favorites: " + title,
		Body:    body,
		Icon:    favoriteIcon,
		Timeout: DefaultTimeout,
		Urgency: UrgencyLow,
	}
}

// FavoritesCleared builds the notification shown after clearing favorites.
func FavoritesCleared() Notification {
	return Notification{
		Title:   "Favorites cleared",
		Icon:    favoriteIcon,
		Timeout: DefaultTimeout,
		Urgency: UrgencyLow,
	}
}

// Disabled returns a notifier that drops every notification.
func Disabled() Notifier {
	return &stubNotifier{}
}

// stubNotifier is used when notifications are disabled or D-Bus is unavailable.
type stubNotifier struct{}

func (s *stubNotifier) Notify(_ Notification) (uint32, error) {
	return 0, nil
}

func (s *stubNotifier) Close(_ uint32) error {
	return nil
}
