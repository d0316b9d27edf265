package models

import (
	"strings"
	"time"
)

const (
	SectionTypeText = "text"
	SectionTypeCode = "code"
)

// BlogSection is one block of a post body, either prose or a code snippet.
type BlogSection struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Value    string `json:"value"`
	Language string `json:"language,omitempty"`
}

type BlogPost struct {
	ID            string        `json:"id"`
	Title         string        `json:"title"`
	Content       string        `json:"content"`
	CoverImageURL string        `json:"coverImageUrl,omitempty"`
	AuthorID      string        `json:"authorId"`
	AuthorName    string        `json:"authorName"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     *time.Time    `json:"updatedAt,omitempty"`
	Sections      []BlogSection `json:"sections"`
}

// NonEmptySections drops sections whose value is blank. A post must keep at
// least one after save.
func NonEmptySections(sections []BlogSection) []BlogSection {
	out := make([]BlogSection, 0, len(sections))
	for _, s := range sections {
		if strings.TrimSpace(s.Value) != "" {
			out = append(out, s)
		}
	}
	return out
}

// PlainContent joins the text sections into the post's plain-text body,
// used when the caller does not supply one.
func PlainContent(sections []BlogSection) string {
	parts := make([]string, 0, len(sections))
	for _, s := range sections {
		if s.Type == SectionTypeText {
			parts = append(parts, s.Value)
		}
	}
	return strings.Join(parts, "\n\n")
}
