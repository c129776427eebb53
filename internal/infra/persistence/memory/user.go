package memory

import (
	"context"
	"strings"

	"ecovis/internal/domain/entity"
	"ecovis/internal/domain/repository"
)

// FindUserByID returns a copy of the user or ErrUserNotFound.
func (s *Store) FindUserByID(_ context.Context, id int64) (*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	clone := *user

	return &clone, nil
}

// FindUserByUsername matches the username ignoring case.
func (s *Store) FindUserByUsername(_ context.Context, username string) (*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.findUser(func(u *entity.User) bool { return strings.EqualFold(u.Username, username) })
}

// FindUserByEmail matches the email ignoring case.
func (s *Store) FindUserByEmail(_ context.Context, email string) (*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.findUser(func(u *entity.User) bool { return strings.EqualFold(u.Email, email) })
}

func (s *Store) findUser(match func(*entity.User) bool) (*entity.User, error) {
	for _, user := range s.users {
		if match(user) {
			clone := *user
			return &clone, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

// CreateUser assigns the id, creation time and a zero eco score to user.
func (s *Store) CreateUser(_ context.Context, user *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if strings.EqualFold(existing.Username, user.Username) || strings.EqualFold(existing.Email, user.Email) {
			return repository.ErrDuplicateUser
		}
	}

	s.userSeq++
	user.ID = s.userSeq
	user.EcoScore = 0
	user.CreatedAt = s.now()

	clone := *user
	s.users[user.ID] = &clone

	return nil
}

// AddEcoScore adds points to the user's eco score without recording an activity.
func (s *Store) AddEcoScore(_ context.Context, userID int64, points int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[userID]
	if !ok {
		return repository.ErrUserNotFound
	}
	user.EcoScore += points

	return nil
}
