package models

import "time"

const (
	ContentTypeVideo     = "video"
	ContentTypeImage     = "image"
	ContentTypeVideoLink = "video-link"

	StatusDraft     = "draft"
	StatusPublished = "published"
)

type ContentItem struct {
	ID           string    `json:"id"`
	Type         string    `json:"type"`
	Title        string    `json:"title"`
	Description  string    `json:"description,omitempty"`
	URL          string    `json:"url,omitempty"`
	FileURL      string    `json:"fileUrl,omitempty"`
	ThumbnailURL string    `json:"thumbnailUrl,omitempty"`
	UploadedBy   string    `json:"uploadedBy"`
	UploadedAt   time.Time `json:"uploadedAt"`
	Status       string    `json:"status"`
}

// VisibleContent filters items the way consumers are expected to: admins see
// everything, everyone else sees published items plus their own uploads.
func VisibleContent(viewer *User, items []ContentItem) []ContentItem {
	if viewer != nil && viewer.Role == AdminRole {
		return items
	}
	out := make([]ContentItem, 0, len(items))
	for _, item := range items {
		if item.Status == StatusPublished {
			out = append(out, item)
			continue
		}
		if viewer != nil && item.UploadedBy == viewer.ID {
			out = append(out, item)
		}
	}
	return out
}
