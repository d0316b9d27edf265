package content

import (
	"EasyToLearn/internal/app_errors"
	"EasyToLearn/internal/models"
	"EasyToLearn/internal/storage"
	"time"
)

type NewNote struct {
	Title        string
	Description  string
	Category     string
	ResourceType string
	FileURL      string
	FileName     string
	FileType     string
}

type NotePatch struct {
	Title        *string `json:"title,omitempty"`
	Description  *string `json:"description,omitempty"`
	Category     *string `json:"category,omitempty"`
	ResourceType *string `json:"resourceType,omitempty"`
}

// AddNote appends a study resource. Only admins and instructors may publish
// notes.
func (r *Repository) AddNote(note NewNote) (string, error) {
	if !r.canManage() {
		return "", app_errors.ErrForbidden
	}
	user := r.sessions.Current()
	record := models.NoteResource{
		ID:           models.NewID(),
		Title:        note.Title,
		Description:  note.Description,
		Category:     note.Category,
		ResourceType: note.ResourceType,
		FileURL:      note.FileURL,
		FileName:     note.FileName,
		FileType:     note.FileType,
		UploadedBy:   user.ID,
		UploadedAt:   time.Now().UTC(),
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	notes := storage.ReadCollection[models.NoteResource](r.records, storage.SlotNotes)
	notes = append(notes, record)
	if err := storage.WriteCollection(r.records, storage.SlotNotes, notes); err != nil {
		return "", err
	}
	return record.ID, nil
}

func (r *Repository) UpdateNote(id string, patch NotePatch) bool {
	if !r.canManage() {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	notes := storage.ReadCollection[models.NoteResource](r.records, storage.SlotNotes)
	for i := range notes {
		if notes[i].ID != id {
			continue
		}
		if patch.Title != nil {
			notes[i].Title = *patch.Title
		}
		if patch.Description != nil {
			notes[i].Description = *patch.Description
		}
		if patch.Category != nil {
			notes[i].Category = *patch.Category
		}
		if patch.ResourceType != nil {
			notes[i].ResourceType = *patch.ResourceType
		}
		return storage.WriteCollection(r.records, storage.SlotNotes, notes) == nil
	}
	return false
}

func (r *Repository) DeleteNote(id string) bool {
	if !r.canManage() {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	notes := storage.ReadCollection[models.NoteResource](r.records, storage.SlotNotes)
	kept := notes[:0]
	for _, note := range notes {
		if note.ID != id {
			kept = append(kept, note)
		}
	}
	return storage.WriteCollection(r.records, storage.SlotNotes, kept) == nil
}

func (r *Repository) NoteByID(id string) (*models.NoteResource, bool) {
	for _, note := range r.Notes() {
		if note.ID == id {
			return &note, true
		}
	}
	return nil, false
}

func (r *Repository) Notes() []models.NoteResource {
	return storage.ReadCollection[models.NoteResource](r.records, storage.SlotNotes)
}
