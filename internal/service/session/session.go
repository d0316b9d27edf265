package session

import (
	"EasyToLearn/internal/app_errors"
	"EasyToLearn/internal/models"
	"EasyToLearn/internal/storage"
	"EasyToLearn/pkg/logger"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// Store holds the single signed-in user and notifies subscribers whenever it
// changes. The user record kept here and in the currentUser slot is always
// redacted; password hashes live only in the users collection.
type Store struct {
	log     logger.Log
	records storage.RecordStore

	// usersMu serializes read-modify-write of the users collection so
	// concurrent registrations cannot drop each other's records.
	usersMu sync.Mutex

	mu        sync.Mutex
	current   *models.User
	observers map[int]func(*models.User)
	nextObsID int
}

func NewStore(l logger.Log, records storage.RecordStore) *Store {
	s := &Store{
		log:       l,
		records:   records,
		observers: make(map[int]func(*models.User)),
	}
	s.seedUsers()
	if saved, ok := storage.ReadRecord[models.User](records, storage.SlotCurrentUser); ok {
		saved.Password = ""
		s.current = &saved
	}
	return s
}

// Current returns the signed-in user, or nil when signed out.
func (s *Store) Current() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	u := *s.current
	return &u
}

// Subscribe registers an observer and immediately replays the current value
// to it. The returned function removes the observer.
func (s *Store) Subscribe(fn func(*models.User)) func() {
	s.mu.Lock()
	id := s.nextObsID
	s.nextObsID++
	s.observers[id] = fn
	current := s.current
	s.mu.Unlock()

	fn(current)

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.observers, id)
	}
}

// Login verifies the email and password against the users collection. The
// email comparison is exact and case-sensitive. On failure it returns false
// without touching the session.
func (s *Store) Login(email, password string) bool {
	users := storage.ReadCollection[models.User](s.records, storage.SlotUsers)
	for _, u := range users {
		if u.Email != email {
			continue
		}
		if !checkPasswordHash(password, u.Password) {
			continue
		}
		s.setCurrent(&u)
		s.log.Info("user logged in", "user_id", u.ID, "role", u.Role)
		return true
	}
	return false
}

// Logout clears the session and its persisted slot. Navigating back to the
// login view is the delivery layer's concern.
func (s *Store) Logout() {
	s.setCurrent(nil)
}

// Register creates a user with the default role. Emails are unique across
// the collection.
func (s *Store) Register(email, password, name string) (*models.User, error) {
	if len(password) < 6 {
		return nil, app_errors.ErrPasswordTooShort
	}
	hash, err := hashPassword(password)
	if err != nil {
		return nil, err
	}

	s.usersMu.Lock()
	defer s.usersMu.Unlock()
	users := storage.ReadCollection[models.User](s.records, storage.SlotUsers)
	for _, u := range users {
		if u.Email == email {
			return nil, app_errors.ErrUserExists
		}
	}

	user := models.User{
		ID:       models.NewID(),
		Email:    email,
		Password: hash,
		Role:     models.ClientRole,
		Name:     name,
	}
	users = append(users, user)
	if err := storage.WriteCollection(s.records, storage.SlotUsers, users); err != nil {
		return nil, err
	}
	redacted := user.Redacted()
	return &redacted, nil
}

// SocialProfile is an externally verified identity handed over by the social
// login collaborator.
type SocialProfile struct {
	ID       string
	Email    string
	Name     string
	Provider string
}

// SocialLogin upserts a user by email and signs them in. An account that
// already exists keeps its role and password.
func (s *Store) SocialLogin(profile SocialProfile) (*models.User, error) {
	s.usersMu.Lock()
	defer s.usersMu.Unlock()
	users := storage.ReadCollection[models.User](s.records, storage.SlotUsers)
	for i, u := range users {
		if u.Email != profile.Email {
			continue
		}
		if u.Provider == "" {
			users[i].Provider = profile.Provider
			if err := storage.WriteCollection(s.records, storage.SlotUsers, users); err != nil {
				return nil, err
			}
		}
		s.setCurrent(&users[i])
		return s.Current(), nil
	}

	user := models.User{
		ID:       profile.ID,
		Email:    profile.Email,
		Role:     models.ClientRole,
		Name:     profile.Name,
		Provider: profile.Provider,
	}
	if user.ID == "" {
		user.ID = models.NewID()
	}
	users = append(users, user)
	if err := storage.WriteCollection(s.records, storage.SlotUsers, users); err != nil {
		return nil, err
	}
	s.setCurrent(&user)
	s.log.Info("social login", "provider", profile.Provider, "user_id", user.ID)
	return s.Current(), nil
}

// UserByID looks a user up in the users collection, redacted.
func (s *Store) UserByID(id string) (*models.User, error) {
	users := storage.ReadCollection[models.User](s.records, storage.SlotUsers)
	for _, u := range users {
		if u.ID == id {
			redacted := u.Redacted()
			return &redacted, nil
		}
	}
	return nil, app_errors.ErrUserNotFound
}

func (s *Store) setCurrent(user *models.User) {
	s.mu.Lock()
	if user == nil {
		s.current = nil
		if err := s.records.Delete(storage.SlotCurrentUser); err != nil {
			s.log.ErrorErr("failed to clear session slot", err)
		}
	} else {
		redacted := user.Redacted()
		s.current = &redacted
		if err := storage.WriteRecord(s.records, storage.SlotCurrentUser, redacted); err != nil {
			s.log.ErrorErr("failed to persist session slot", err)
		}
	}
	observers := make([]func(*models.User), 0, len(s.observers))
	for _, fn := range s.observers {
		observers = append(observers, fn)
	}
	current := s.current
	s.mu.Unlock()

	for _, fn := range observers {
		fn(current)
	}
}

// seedUsers provisions the default accounts on a fresh store so the app is
// usable before anyone registers.
func (s *Store) seedUsers() {
	users := storage.ReadCollection[models.User](s.records, storage.SlotUsers)
	if len(users) > 0 {
		return
	}
	defaults := []struct {
		email, password, role, name string
	}{
		{"admin@easytocode.com", "admin123", models.AdminRole, "Admin User"},
		{"instructor@easytocode.com", "instructor123", models.InstructorRole, "Instructor User"},
		{"user@easytocode.com", "user123", models.ClientRole, "Regular User"},
	}
	for _, d := range defaults {
		hash, err := hashPassword(d.password)
		if err != nil {
			s.log.ErrorErr("failed to seed user", err, "email", d.email)
			continue
		}
		users = append(users, models.User{
			ID:       models.NewID(),
			Email:    d.email,
			Password: hash,
			Role:     d.role,
			Name:     d.name,
		})
	}
	if err := storage.WriteCollection(s.records, storage.SlotUsers, users); err != nil {
		s.log.ErrorErr("failed to seed users", err)
	}
}

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func checkPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
