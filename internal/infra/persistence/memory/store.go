// Package memory contains an in-process implementation of repository.Store.
// All state lives in maps guarded by a single RWMutex; every award event is
// applied under the write lock so readers never observe a half-applied award.
package memory

import (
	"cmp"
	"log/slog"
	"slices"
	"sync"
	"time"

	"ecovis/config"
	"ecovis/internal/domain/entity"
	"ecovis/internal/domain/repository"
	"ecovis/internal/domain/scoring"

	"go.uber.org/fx"
)

var _ repository.Store = (*Store)(nil)

// Params defines the dependencies of the memory store.
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// Store keeps every entity in process memory. It is safe for concurrent use.
type Store struct {
	mu  sync.RWMutex
	now func() time.Time

	users        map[int64]*entity.User
	wastes       map[int64]*entity.WasteRecognition
	calculations map[int64]*entity.EmissionsCalculation
	posts        map[int64]*entity.ForumPost
	comments     map[int64]*entity.ForumComment
	products     map[int64]*entity.Product
	activities   map[int64]*entity.UserActivity

	// per-entity id sequences, the last id handed out
	userSeq        int64
	wasteSeq       int64
	calculationSeq int64
	postSeq        int64
	commentSeq     int64
	productSeq     int64
	activitySeq    int64
}

// New builds the store and seeds demo data when storage.seed is enabled.
// Seeding finishes before New returns.
func New(params Params) *Store {
	store := NewStore()

	if params.Config != nil && params.Config.Storage.Seed {
		store.Seed(params.Logger)
	}

	return store
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		now:          time.Now,
		users:        make(map[int64]*entity.User),
		wastes:       make(map[int64]*entity.WasteRecognition),
		calculations: make(map[int64]*entity.EmissionsCalculation),
		posts:        make(map[int64]*entity.ForumPost),
		comments:     make(map[int64]*entity.ForumComment),
		products:     make(map[int64]*entity.Product),
		activities:   make(map[int64]*entity.UserActivity),
	}
}

// award credits the user and appends the matching activity.
// Callers must hold the write lock and have checked the user exists.
func (s *Store) award(user *entity.User, award scoring.Award, at time.Time) {
	user.EcoScore += award.Points

	s.activitySeq++
	s.activities[s.activitySeq] = &entity.UserActivity{
		ID:           s.activitySeq,
		UserID:       user.ID,
		ActivityType: string(award.Kind),
		Description:  award.Description,
		PointsEarned: award.Points,
		CreatedAt:    at,
	}
}

// newestFirst orders by creation time descending, breaking ties by id descending.
func newestFirst(aAt, bAt time.Time, aID, bID int64) int {
	if c := bAt.Compare(aAt); c != 0 {
		return c
	}

	return cmp.Compare(bID, aID)
}

// paginate applies page to an already sorted slice. A non-positive limit means no limit.
func paginate[T any](items []T, page repository.Page) []T {
	offset := max(page.Offset, 0)
	if offset >= len(items) {
		return []T{}
	}
	items = items[offset:]

	if page.Limit > 0 && page.Limit < len(items) {
		items = items[:page.Limit]
	}

	return items
}

// collect copies every value of m matching keep and sorts the copies newest first.
func collect[T any](m map[int64]*T, keep func(*T) bool, meta func(*T) (time.Time, int64)) []*T {
	out := make([]*T, 0, len(m))
	for _, v := range m {
		if keep != nil && !keep(v) {
			continue
		}
		clone := *v
		out = append(out, &clone)
	}

	slices.SortFunc(out, func(a, b *T) int {
		aAt, aID := meta(a)
		bAt, bID := meta(b)

		return newestFirst(aAt, bAt, aID, bID)
	})

	return out
}
