package memory

import (
	"context"
	"time"

	"ecovis/internal/domain/entity"
	"ecovis/internal/domain/repository"
	"ecovis/internal/domain/scoring"
)

// CreateEmissionsCalculation stores the calculation and awards its owner.
func (s *Store) CreateEmissionsCalculation(_ context.Context, calculation *entity.EmissionsCalculation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[calculation.UserID]
	if !ok {
		return repository.ErrUserNotFound
	}

	award := scoring.ForEmissionsCalculation(calculation.VehicleMake, calculation.VehicleModel)
	at := s.now()

	s.calculationSeq++
	calculation.ID = s.calculationSeq
	calculation.PointsEarned = award.Points
	calculation.CreatedAt = at

	clone := *calculation
	s.calculations[calculation.ID] = &clone
	s.award(user, award, at)

	return nil
}

// ListEmissionsCalculationsByUser returns the user's calculations, newest first.
func (s *Store) ListEmissionsCalculationsByUser(_ context.Context, userID int64) ([]*entity.EmissionsCalculation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return collect(s.calculations,
		func(c *entity.EmissionsCalculation) bool { return c.UserID == userID },
		func(c *entity.EmissionsCalculation) (time.Time, int64) { return c.CreatedAt, c.ID },
	), nil
}
