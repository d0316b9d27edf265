package content

import (
	"EasyToLearn/internal/app_errors"
	"EasyToLearn/internal/models"
	"EasyToLearn/internal/storage"
	"time"
)

type NewBlogPost struct {
	Title         string
	Content       string
	CoverImageURL string
	Sections      []models.BlogSection
}

type BlogPostPatch struct {
	Title         *string              `json:"title,omitempty"`
	Content       *string              `json:"content,omitempty"`
	CoverImageURL *string              `json:"coverImageUrl,omitempty"`
	Sections      []models.BlogSection `json:"sections,omitempty"`
}

// AddBlogPost prepends a post stamped with the current author. Blank sections
// are dropped; a post with nothing left is rejected.
func (r *Repository) AddBlogPost(post NewBlogPost) (string, error) {
	user := r.sessions.Current()
	if user == nil {
		return "", app_errors.ErrNotAuthenticated
	}
	sections := models.NonEmptySections(post.Sections)
	if len(sections) == 0 {
		return "", app_errors.ErrEmptyPost
	}
	for i := range sections {
		if sections[i].ID == "" {
			sections[i].ID = models.NewID()
		}
	}
	body := post.Content
	if body == "" {
		body = models.PlainContent(sections)
	}
	record := models.BlogPost{
		ID:            models.NewID(),
		Title:         post.Title,
		Content:       body,
		CoverImageURL: post.CoverImageURL,
		AuthorID:      user.ID,
		AuthorName:    user.Name,
		CreatedAt:     time.Now().UTC(),
		Sections:      sections,
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	posts := storage.ReadCollection[models.BlogPost](r.records, storage.SlotBlogPosts)
	posts = append([]models.BlogPost{record}, posts...)
	if err := storage.WriteCollection(r.records, storage.SlotBlogPosts, posts); err != nil {
		return "", err
	}
	return record.ID, nil
}

// UpdateBlogPost merges a patch and stamps UpdatedAt. A patch whose sections
// are all blank is refused, keeping the at-least-one-section invariant.
func (r *Repository) UpdateBlogPost(id string, patch BlogPostPatch) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	posts := storage.ReadCollection[models.BlogPost](r.records, storage.SlotBlogPosts)
	for i := range posts {
		if posts[i].ID != id {
			continue
		}
		if patch.Sections != nil {
			sections := models.NonEmptySections(patch.Sections)
			if len(sections) == 0 {
				return false
			}
			for j := range sections {
				if sections[j].ID == "" {
					sections[j].ID = models.NewID()
				}
			}
			posts[i].Sections = sections
			posts[i].Content = models.PlainContent(sections)
		}
		if patch.Title != nil {
			posts[i].Title = *patch.Title
		}
		if patch.Content != nil {
			posts[i].Content = *patch.Content
		}
		if patch.CoverImageURL != nil {
			posts[i].CoverImageURL = *patch.CoverImageURL
		}
		now := time.Now().UTC()
		posts[i].UpdatedAt = &now
		return storage.WriteCollection(r.records, storage.SlotBlogPosts, posts) == nil
	}
	return false
}

func (r *Repository) DeleteBlogPost(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	posts := storage.ReadCollection[models.BlogPost](r.records, storage.SlotBlogPosts)
	kept := posts[:0]
	for _, post := range posts {
		if post.ID != id {
			kept = append(kept, post)
		}
	}
	return storage.WriteCollection(r.records, storage.SlotBlogPosts, kept) == nil
}

func (r *Repository) BlogPostByID(id string) (*models.BlogPost, bool) {
	for _, post := range r.BlogPosts() {
		if post.ID == id {
			return &post, true
		}
	}
	return nil, false
}

// BlogPosts returns all posts, newest first.
func (r *Repository) BlogPosts() []models.BlogPost {
	return storage.ReadCollection[models.BlogPost](r.records, storage.SlotBlogPosts)
}
