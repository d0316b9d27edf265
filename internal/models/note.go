package models

import "time"

const (
	NoteTypePDF        = "PDF"
	NoteTypeCheatsheet = "Cheatsheet"
	NoteTypeWorksheet  = "Worksheet"
	NoteTypeSlides     = "Slides"
	NoteTypeOther      = "Other"
)

type NoteResource struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description,omitempty"`
	Category     string    `json:"category,omitempty"`
	ResourceType string    `json:"resourceType"`
	FileURL      string    `json:"fileUrl"`
	FileName     string    `json:"fileName"`
	FileType     string    `json:"fileType"`
	UploadedBy   string    `json:"uploadedBy"`
	UploadedAt   time.Time `json:"uploadedAt"`
}
