package domain_test

import (
	"errors"
	"strings"
	"testing"

	"streamhub/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractEmbedID(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"embed url with trailing slash", "https://streamtape.com/e/ABC123/", "ABC123"},
		{"embed url with title segment", "https://streamtape.com/e/ABC123/my-video.mp4", "ABC123"},
		{"plain url", "https://streamtape.com/ABC123", "ABC123"},
		{"plain url with trailing slash", "https://streamtape.com/v/ABC123/", "ABC123"},
		{"no scheme", "streamtape.com/e/XYZ", "XYZ"},
		{"no scheme plain", "streamtape.com/XYZ", "XYZ"},
		{"surrounding whitespace", "  https://streamtape.com/e/ABC123/  ", "ABC123"},
		{"host only", "https://streamtape.com/", domain.InvalidEmbedID},
		{"bare host", "streamtape.com", domain.InvalidEmbedID},
		{"empty embed segment", "https://streamtape.com/e/", domain.InvalidEmbedID},
		{"query and fragment dropped", "https://streamtape.com/e/ABC123?autoplay=1#t=5", "ABC123"},
		{"escaped id kept as written", "https://streamtape.com/e/AB%20C/", "AB%20C"},
		{"bad escape kept as written", "https://streamtape.com/e/AB%zz/", "AB%zz"},
		{"escaped plain url kept as written", "https://streamtape.com/v/AB%20C", "AB%20C"},
		{"malformed", "http://[::1", domain.InvalidEmbedID},
		{"empty", "", domain.InvalidEmbedID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.ExtractEmbedID(tt.url))
		})
	}
}

func TestValidateVideo(t *testing.T) {
	const okURL = "https://streamtape.com/e/ABC123/"

	t.Run("Valid", func(t *testing.T) {
		assert.NoError(t, domain.ValidateVideo("  My video  ", okURL))
	})

	t.Run("Exactly max length after trim", func(t *testing.T) {
		title := "  " + strings.Repeat("a", domain.MaxTitleLength) + "  "
		assert.NoError(t, domain.ValidateVideo(title, okURL))
	})

	t.Run("Multibyte title counted in characters", func(t *testing.T) {
		assert.NoError(t, domain.ValidateVideo(strings.Repeat("é", domain.MaxTitleLength), okURL))
	})

	t.Run("Empty title", func(t *testing.T) {
		err := domain.ValidateVideo("   ", okURL)
		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.ErrorIs(t, err, domain.ErrInvalidTitle)
		assert.Equal(t, "Title is required", err.Error())
	})

	t.Run("Title too long", func(t *testing.T) {
		err := domain.ValidateVideo(strings.Repeat("a", domain.MaxTitleLength+1), okURL)
		assert.ErrorIs(t, err, domain.ErrInvalidTitle)
		assert.Contains(t, err.Error(), "max 255")
	})

	t.Run("Empty url", func(t *testing.T) {
		err := domain.ValidateVideo("title", "")
		assert.ErrorIs(t, err, domain.ErrInvalidEmbedURL)
		assert.False(t, errors.Is(err, domain.ErrInvalidTitle))
	})

	t.Run("Untrusted host", func(t *testing.T) {
		err := domain.ValidateVideo("title", "https://example.com/e/ABC123/")
		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.ErrorIs(t, err, domain.ErrInvalidEmbedURL)
	})
}

func TestVideo_HashtagList(t *testing.T) {
	raw := "a, b,, c "
	v := domain.Video{Hashtags: &raw}
	assert.Equal(t, []string{"a", "b", "c"}, v.HashtagList())

	var empty domain.Video
	assert.Empty(t, empty.HashtagList())
	assert.NotNil(t, empty.HashtagList())
}

func TestVideo_DerivedURLs(t *testing.T) {
	v := domain.Video{ID: 42, StreamtapeID: "ABC123"}
	assert.Equal(t, "https://streamtape.com/e/ABC123/", v.EmbedURL())
	assert.Equal(t, "/watch/42", v.WatchURL())
}

func TestVideoInput_Apply(t *testing.T) {
	input := domain.VideoInput{
		Title:         "  Title  ",
		Description:   "   ",
		Hashtags:      " go, fiber ",
		StreamtapeURL: " https://streamtape.com/e/XYZ/ ",
	}

	var v domain.Video
	input.Apply(&v)

	assert.Equal(t, "Title", v.Title)
	assert.Nil(t, v.Description)
	require.NotNil(t, v.Hashtags)
	assert.Equal(t, "go, fiber", *v.Hashtags)
	assert.Equal(t, "https://streamtape.com/e/XYZ/", v.StreamtapeURL)
	assert.Equal(t, "XYZ", v.StreamtapeID)
}
