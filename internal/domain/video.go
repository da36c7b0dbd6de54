package domain

import (
	"fmt"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	EmbedHost      = "streamtape.com"
	InvalidEmbedID = "invalid_id"
	MaxTitleLength = 255
)

type Video struct {
	ID            int64     `json:"id" db:"id"`
	Title         string    `json:"title" db:"title"`
	Description   *string   `json:"description" db:"description"`
	Hashtags      *string   `json:"hashtags" db:"hashtags"`
	StreamtapeURL string    `json:"streamtape_url" db:"streamtape_url"`
	StreamtapeID  string    `json:"streamtape_id" db:"streamtape_id"`
	BannerPath    string    `json:"banner_path" db:"banner_path"`
	BannerURL     string    `json:"banner_url" db:"-"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

// HashtagList returns the stored comma-separated hashtags as trimmed,
// non-empty tags in their original order.
func (v Video) HashtagList() []string {
	if v.Hashtags == nil {
		return []string{}
	}
	return SplitHashtags(*v.Hashtags)
}

func (v Video) EmbedURL() string {
	return fmt.Sprintf("https://%s/e/%s/", EmbedHost, v.StreamtapeID)
}

func (v Video) WatchURL() string {
	return fmt.Sprintf("/watch/%d", v.ID)
}

func SplitHashtags(raw string) []string {
	tags := []string{}
	for _, tag := range strings.Split(raw, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

type VideoInput struct {
	Title         string `json:"title" form:"title"`
	Description   string `json:"description" form:"description"`
	Hashtags      string `json:"hashtags" form:"hashtags"`
	StreamtapeURL string `json:"streamtape_url" form:"streamtape_url"`
}

func (in VideoInput) Validate() error {
	return ValidateVideo(in.Title, in.StreamtapeURL)
}

// Apply copies the trimmed input onto v and re-derives the embed id.
// Empty optional fields are stored as NULL.
func (in VideoInput) Apply(v *Video) {
	v.Title = strings.TrimSpace(in.Title)
	v.Description = optionalString(in.Description)
	v.Hashtags = optionalString(in.Hashtags)
	v.StreamtapeURL = strings.TrimSpace(in.StreamtapeURL)
	v.StreamtapeID = ExtractEmbedID(v.StreamtapeURL)
}

func ValidateVideo(title, embedURL string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return &ValidationError{Kind: ErrInvalidTitle, Message: "Title is required"}
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return &ValidationError{
			Kind:    ErrInvalidTitle,
			Message: fmt.Sprintf("Title too long (max %d characters)", MaxTitleLength),
		}
	}

	if strings.TrimSpace(embedURL) == "" || !strings.Contains(embedURL, EmbedHost) {
		return &ValidationError{
			Kind:    ErrInvalidEmbedURL,
			Message: fmt.Sprintf("Invalid Streamtape URL - must contain '%s'", EmbedHost),
		}
	}

	return nil
}

// ExtractEmbedID derives the hosted video id from an embed URL. A URL with an
// /e/ segment yields the segment after it, otherwise the last non-empty path
// segment is used. Anything unusable yields InvalidEmbedID.
func ExtractEmbedID(rawURL string) string {
	raw := strings.TrimSpace(rawURL)
	if end := strings.IndexAny(raw, "?#"); end >= 0 {
		raw = raw[:end]
	}

	// The id is kept exactly as written, so /e/ links are cut from the raw
	// string instead of a decoded path.
	if idx := strings.LastIndex(raw, "/e/"); idx >= 0 {
		rest := raw[idx+len("/e/"):]
		if end := strings.Index(rest, "/"); end >= 0 {
			rest = rest[:end]
		}
		if rest == "" {
			return InvalidEmbedID
		}
		return rest
	}

	u, err := url.Parse(raw)
	if err != nil {
		return InvalidEmbedID
	}

	path := strings.Trim(u.EscapedPath(), "/")
	if u.Host == "" {
		// "streamtape.com/ABC" parses with the host inside the path.
		if idx := strings.Index(path, "/"); idx >= 0 {
			path = path[idx+1:]
		} else {
			path = ""
		}
	}
	if path == "" {
		return InvalidEmbedID
	}

	return path[strings.LastIndex(path, "/")+1:]
}

func optionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
