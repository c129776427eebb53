package memory

import (
	"context"
	"time"

	"ecovis/internal/domain/entity"
	"ecovis/internal/domain/repository"
	"ecovis/internal/domain/scoring"
)

// CreateWasteRecognition stores the recognition and awards its owner.
func (s *Store) CreateWasteRecognition(_ context.Context, recognition *entity.WasteRecognition) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[recognition.UserID]
	if !ok {
		return repository.ErrUserNotFound
	}

	award := scoring.ForWasteRecognition(string(recognition.WasteType))
	at := s.now()

	s.wasteSeq++
	recognition.ID = s.wasteSeq
	recognition.PointsEarned = award.Points
	recognition.CreatedAt = at

	clone := *recognition
	s.wastes[recognition.ID] = &clone
	s.award(user, award, at)

	return nil
}

// ListWasteRecognitionsByUser returns the user's recognitions, newest first.
func (s *Store) ListWasteRecognitionsByUser(_ context.Context, userID int64) ([]*entity.WasteRecognition, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return collect(s.wastes,
		func(w *entity.WasteRecognition) bool { return w.UserID == userID },
		func(w *entity.WasteRecognition) (time.Time, int64) { return w.CreatedAt, w.ID },
	), nil
}
