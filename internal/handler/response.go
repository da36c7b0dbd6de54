package handler

import (
	"time"

	"streamhub/internal/domain"
)

type VideoResponse struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Description   *string   `json:"description"`
	Hashtags      *string   `json:"hashtags"`
	HashtagList   []string  `json:"hashtag_list"`
	StreamtapeURL string    `json:"streamtape_url"`
	StreamtapeID  string    `json:"streamtape_id"`
	EmbedURL      string    `json:"embed_url"`
	BannerPath    string    `json:"banner_path"`
	BannerURL     string    `json:"banner_url"`
	WatchURL      string    `json:"watch_url"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func newVideoResponse(v domain.Video) VideoResponse {
	return VideoResponse{
		ID:            v.ID,
		Title:         v.Title,
		Description:   v.Description,
		Hashtags:      v.Hashtags,
		HashtagList:   v.HashtagList(),
		StreamtapeURL: v.StreamtapeURL,
		StreamtapeID:  v.StreamtapeID,
		EmbedURL:      v.EmbedURL(),
		BannerPath:    v.BannerPath,
		BannerURL:     v.BannerURL,
		WatchURL:      v.WatchURL(),
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
	}
}
