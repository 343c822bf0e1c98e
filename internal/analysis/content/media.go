package content

import "strings"

// MediaKind identifies a bracketed media placeholder such as [写真].
type MediaKind string

const (
	Sticker  MediaKind = "sticker"
	Photo    MediaKind = "photo"
	Video    MediaKind = "video"
	File     MediaKind = "file"
	Contact  MediaKind = "contact"
	Location MediaKind = "location"
	Voice    MediaKind = "voice"
	ShopCard MediaKind = "shopcard"
	Poll     MediaKind = "poll"
	Schedule MediaKind = "schedule"
	Event    MediaKind = "event"
	Link     MediaKind = "link"
	Album    MediaKind = "album"
)

// IsExpressive reports whether the kind counts as a media element when
// judging a pair's expression style.
func (k MediaKind) IsExpressive() bool {
	switch k {
	case Sticker, Photo, Video, File, Voice:
		return true
	}
	return false
}

type mediaToken struct {
	token string
	kind  MediaKind
}

// MediaPlaceholder reports whether the trimmed body is exactly one of the
// known placeholders, and which kind.
func (c *Classifier) MediaPlaceholder(body string) (MediaKind, bool) {
	lower := strings.ToLower(strings.TrimSpace(body))
	for _, set := range c.locales {
		for _, t := range set.Media {
			if lower == strings.ToLower(t.token) {
				return t.kind, true
			}
		}
	}
	return "", false
}

// FindPlaceholder reports the first placeholder contained anywhere in body.
func (c *Classifier) FindPlaceholder(body string) (MediaKind, bool) {
	lower := strings.ToLower(body)
	for _, set := range c.locales {
		for _, t := range set.Media {
			if strings.Contains(lower, strings.ToLower(t.token)) {
				return t.kind, true
			}
		}
	}
	return "", false
}

// IsSticker reports whether body is exactly a sticker placeholder.
func (c *Classifier) IsSticker(body string) bool {
	kind, ok := c.MediaPlaceholder(body)
	return ok && kind == Sticker
}

// IsMediaElement reports whether body is a sticker or carries a
// photo/video/file/voice placeholder.
func (c *Classifier) IsMediaElement(body string) bool {
	if c.IsSticker(body) {
		return true
	}
	lower := strings.ToLower(body)
	for _, set := range c.locales {
		for _, t := range set.Media {
			if t.kind.IsExpressive() && strings.Contains(lower, strings.ToLower(t.token)) {
				return true
			}
		}
	}
	return false
}

func MediaPlaceholder(body string) (MediaKind, bool) { return Default.MediaPlaceholder(body) }
func FindPlaceholder(body string) (MediaKind, bool) { return Default.FindPlaceholder(body) }
func IsSticker(body string) bool { return Default.IsSticker(body) }
func IsMediaElement(body string) bool { return Default.IsMediaElement(body) }
