package content

import (
	"EasyToLearn/internal/models"
	"EasyToLearn/internal/storage"
	"EasyToLearn/pkg/logger"
	"sync"
)

// SessionSource supplies the identity used to stamp and gate writes.
type SessionSource interface {
	Current() *models.User
}

// Repository is the CRUD surface over the persisted collections. Every
// mutation reads the whole collection, applies the change, and writes the
// whole collection back; mu serializes those read-modify-write cycles so
// concurrent handlers cannot lose each other's records. Reads return
// collections unfiltered; visibility rules belong to consumers.
type Repository struct {
	log      logger.Log
	records  storage.RecordStore
	sessions SessionSource

	mu sync.Mutex
}

func NewRepository(l logger.Log, records storage.RecordStore, sessions SessionSource) *Repository {
	return &Repository{
		log:      l,
		records:  records,
		sessions: sessions,
	}
}

func (r *Repository) canManage() bool {
	user := r.sessions.Current()
	if user == nil {
		return false
	}
	return user.Role == models.AdminRole || user.Role == models.InstructorRole
}
