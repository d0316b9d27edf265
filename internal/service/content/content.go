package content

import (
	"EasyToLearn/internal/app_errors"
	"EasyToLearn/internal/models"
	"EasyToLearn/internal/storage"
	"time"
)

// NewContentItem carries the caller-supplied fields of an upload; identity
// and timestamps are stamped here.
type NewContentItem struct {
	Type         string
	Title        string
	Description  string
	URL          string
	FileURL      string
	ThumbnailURL string
	Status       string
}

type ContentPatch struct {
	Title        *string `json:"title,omitempty"`
	Description  *string `json:"description,omitempty"`
	URL          *string `json:"url,omitempty"`
	FileURL      *string `json:"fileUrl,omitempty"`
	ThumbnailURL *string `json:"thumbnailUrl,omitempty"`
	Status       *string `json:"status,omitempty"`
}

// AddContent appends an upload stamped with the current user and time. Any
// authenticated user may upload content.
func (r *Repository) AddContent(item NewContentItem) (string, error) {
	user := r.sessions.Current()
	if user == nil {
		return "", app_errors.ErrNotAuthenticated
	}
	status := item.Status
	if status == "" {
		status = models.StatusDraft
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	record := models.ContentItem{
		ID:           models.NewID(),
		Type:         item.Type,
		Title:        item.Title,
		Description:  item.Description,
		URL:          item.URL,
		FileURL:      item.FileURL,
		ThumbnailURL: item.ThumbnailURL,
		UploadedBy:   user.ID,
		UploadedAt:   time.Now().UTC(),
		Status:       status,
	}
	items := storage.ReadCollection[models.ContentItem](r.records, storage.SlotContent)
	items = append(items, record)
	if err := storage.WriteCollection(r.records, storage.SlotContent, items); err != nil {
		return "", err
	}
	return record.ID, nil
}

// UpdateContent merges a partial patch onto the item. Unknown id reports
// false.
func (r *Repository) UpdateContent(id string, patch ContentPatch) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := storage.ReadCollection[models.ContentItem](r.records, storage.SlotContent)
	for i := range items {
		if items[i].ID != id {
			continue
		}
		if patch.Title != nil {
			items[i].Title = *patch.Title
		}
		if patch.Description != nil {
			items[i].Description = *patch.Description
		}
		if patch.URL != nil {
			items[i].URL = *patch.URL
		}
		if patch.FileURL != nil {
			items[i].FileURL = *patch.FileURL
		}
		if patch.ThumbnailURL != nil {
			items[i].ThumbnailURL = *patch.ThumbnailURL
		}
		if patch.Status != nil {
			items[i].Status = *patch.Status
		}
		return storage.WriteCollection(r.records, storage.SlotContent, items) == nil
	}
	return false
}

// DeleteContent removes an item by id. Deleting an absent id still reports
// success.
func (r *Repository) DeleteContent(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := storage.ReadCollection[models.ContentItem](r.records, storage.SlotContent)
	kept := items[:0]
	for _, item := range items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	return storage.WriteCollection(r.records, storage.SlotContent, kept) == nil
}

func (r *Repository) ContentByID(id string) (*models.ContentItem, bool) {
	for _, item := range r.Content() {
		if item.ID == id {
			return &item, true
		}
	}
	return nil, false
}

func (r *Repository) Content() []models.ContentItem {
	return storage.ReadCollection[models.ContentItem](r.records, storage.SlotContent)
}
