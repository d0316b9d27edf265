package content_test

import (
	"EasyToLearn/internal/app_errors"
	"EasyToLearn/internal/models"
	"EasyToLearn/internal/service/content"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlogPostRoundTrip(t *testing.T) {
	repo, _ := newRepo(t, client())

	sections := []models.BlogSection{
		{Type: models.SectionTypeText, Value: "Why Go?"},
		{Type: models.SectionTypeCode, Value: `fmt.Println("hi")`, Language: "go"},
	}
	id, err := repo.AddBlogPost(content.NewBlogPost{Title: "First Post", Sections: sections})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	post, ok := repo.BlogPostByID(id)
	require.True(t, ok)
	assert.Equal(t, "First Post", post.Title)
	assert.Equal(t, "user-1", post.AuthorID)
	assert.Equal(t, "Regular User", post.AuthorName)
	require.Len(t, post.Sections, 2)
	assert.Equal(t, "Why Go?", post.Sections[0].Value)
	assert.Equal(t, `fmt.Println("hi")`, post.Sections[1].Value)
	assert.Equal(t, "go", post.Sections[1].Language)
	assert.Equal(t, "Why Go?", post.Content)
}

func TestBlogPostRequiresUser(t *testing.T) {
	repo, _ := newRepo(t, nil)

	_, err := repo.AddBlogPost(content.NewBlogPost{
		Title:    "No Author",
		Sections: []models.BlogSection{{Type: models.SectionTypeText, Value: "body"}},
	})
	assert.ErrorIs(t, err, app_errors.ErrNotAuthenticated)
}

func TestBlogPostRejectsAllBlankSections(t *testing.T) {
	repo, _ := newRepo(t, client())

	_, err := repo.AddBlogPost(content.NewBlogPost{
		Title:    "Empty",
		Sections: []models.BlogSection{{Type: models.SectionTypeText, Value: "  "}},
	})
	assert.ErrorIs(t, err, app_errors.ErrEmptyPost)
}

func TestBlogPostsNewestFirst(t *testing.T) {
	repo, _ := newRepo(t, client())

	section := []models.BlogSection{{Type: models.SectionTypeText, Value: "body"}}
	_, err := repo.AddBlogPost(content.NewBlogPost{Title: "older", Sections: section})
	require.NoError(t, err)
	_, err = repo.AddBlogPost(content.NewBlogPost{Title: "newer", Sections: section})
	require.NoError(t, err)

	posts := repo.BlogPosts()
	require.Len(t, posts, 2)
	assert.Equal(t, "newer", posts[0].Title)
	assert.Equal(t, "older", posts[1].Title)
}

func TestUpdateBlogPost(t *testing.T) {
	repo, _ := newRepo(t, client())
	id, err := repo.AddBlogPost(content.NewBlogPost{
		Title:    "Draft",
		Sections: []models.BlogSection{{Type: models.SectionTypeText, Value: "v1"}},
	})
	require.NoError(t, err)

	title := "Final"
	require.True(t, repo.UpdateBlogPost(id, content.BlogPostPatch{Title: &title}))

	post, ok := repo.BlogPostByID(id)
	require.True(t, ok)
	assert.Equal(t, "Final", post.Title)
	assert.Equal(t, "v1", post.Sections[0].Value)
	assert.NotNil(t, post.UpdatedAt)
}

func TestUpdateBlogPostKeepsSectionInvariant(t *testing.T) {
	repo, _ := newRepo(t, client())
	id, err := repo.AddBlogPost(content.NewBlogPost{
		Title:    "Post",
		Sections: []models.BlogSection{{Type: models.SectionTypeText, Value: "v1"}},
	})
	require.NoError(t, err)

	blank := content.BlogPostPatch{Sections: []models.BlogSection{{Type: models.SectionTypeText, Value: ""}}}
	assert.False(t, repo.UpdateBlogPost(id, blank))

	post, _ := repo.BlogPostByID(id)
	assert.Equal(t, "v1", post.Sections[0].Value)
}

func TestUpdateUnknownBlogPost(t *testing.T) {
	repo, _ := newRepo(t, client())
	title := "x"
	assert.False(t, repo.UpdateBlogPost("missing", content.BlogPostPatch{Title: &title}))
}

func TestDeleteBlogPostIsIdempotent(t *testing.T) {
	repo, _ := newRepo(t, client())
	id, err := repo.AddBlogPost(content.NewBlogPost{
		Title:    "Doomed",
		Sections: []models.BlogSection{{Type: models.SectionTypeText, Value: "body"}},
	})
	require.NoError(t, err)

	assert.True(t, repo.DeleteBlogPost(id))
	assert.True(t, repo.DeleteBlogPost(id))
	assert.True(t, repo.DeleteBlogPost("never-existed"))
	assert.Empty(t, repo.BlogPosts())
}
