package content_test

import (
	"EasyToLearn/internal/app_errors"
	"EasyToLearn/internal/service/content"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotesAreManagerOnly(t *testing.T) {
	repo, sessions := newRepo(t, client())

	_, err := repo.AddNote(content.NewNote{Title: "cheat sheet"})
	assert.ErrorIs(t, err, app_errors.ErrForbidden)

	sessions.user = instructor()
	id, err := repo.AddNote(content.NewNote{
		Title:        "Go basics",
		Category:     "programming",
		ResourceType: "pdf",
		FileName:     "go.pdf",
		FileType:     "application/pdf",
	})
	require.NoError(t, err)

	note, ok := repo.NoteByID(id)
	require.True(t, ok)
	assert.Equal(t, "Go basics", note.Title)
	assert.Equal(t, "instr-1", note.UploadedBy)

	sessions.user = client()
	title := "stolen"
	assert.False(t, repo.UpdateNote(id, content.NotePatch{Title: &title}))
	assert.False(t, repo.DeleteNote(id))
	assert.Len(t, repo.Notes(), 1)

	sessions.user = admin()
	assert.True(t, repo.UpdateNote(id, content.NotePatch{Title: &title}))
	note, _ = repo.NoteByID(id)
	assert.Equal(t, "stolen", note.Title)

	assert.True(t, repo.DeleteNote(id))
	assert.True(t, repo.DeleteNote(id))
	assert.Empty(t, repo.Notes())
}

func TestNoteByIDUnknown(t *testing.T) {
	repo, _ := newRepo(t, admin())
	_, ok := repo.NoteByID("missing")
	assert.False(t, ok)
}
