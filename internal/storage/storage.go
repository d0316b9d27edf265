package storage

// Slot keys for the persisted collections. Each slot holds one JSON-encoded
// sequence (or a single record, for the session slot) and is always replaced
// whole on write.
const (
	SlotUsers         = "users"
	SlotCurrentUser   = "currentUser"
	SlotContent       = "content"
	SlotBlogPosts     = "blogPosts"
	SlotQuizQuestions = "quizQuestions"
	SlotQuizAttempts  = "quizAttempts"
	SlotNotes         = "notes"
)

// RecordStore is the keyed persistence surface the repositories are built on.
// Read returns nil with no error for an absent slot.
type RecordStore interface {
	Read(slot string) ([]byte, error)
	Write(slot string, data []byte) error
	Delete(slot string) error
	Close() error
}
