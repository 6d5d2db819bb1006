package store

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/rs/xid"

	"github.com/sakif/achievement-society/internal/apperror"
	"github.com/sakif/achievement-society/internal/model"
	"github.com/sakif/achievement-society/internal/storage"
)

// Achievements owns the achievement collection. The collection is kept in
// insertion order with the newest record first (creates prepend), so the
// default ordering is reverse-chronological. Every mutating call
// re-serializes the full collection to storage.
type Achievements struct {
	mu       sync.RWMutex
	kv       storage.KV
	comments *Comments
	logger   *slog.Logger
	seed     []model.Achievement

	records []model.Achievement
}

// NewAchievements creates the achievement store. comments is the cascade
// partner: deleting an achievement deletes its comments through it.
func NewAchievements(kv storage.KV, comments *Comments, seed []model.Achievement, logger *slog.Logger) *Achievements {
	return &Achievements{kv: kv, comments: comments, seed: seed, logger: logger}
}

// Load reads the persisted collection, falling back to the seed records
// (persisted immediately) when nothing has been stored yet.
func (s *Achievements) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var records []model.Achievement
	ok, err := storage.LoadJSON(ctx, s.kv, storage.KeyAchievements, &records)
	if err != nil {
		return fmt.Errorf("store: loading achievements: %w", err)
	}
	if !ok {
		records = make([]model.Achievement, 0, len(s.seed))
		for _, a := range s.seed {
			records = append(records, a.Clone())
		}
		if err := storage.SaveJSON(ctx, s.kv, storage.KeyAchievements, records); err != nil {
			return fmt.Errorf("store: persisting seeded achievements: %w", err)
		}
		s.logger.Info("seeded achievements", slog.Int("count", len(records)))
	}
	s.records = records
	return nil
}

// List returns a snapshot of the full collection in insertion order,
// newest first.
func (s *Achievements) List() []model.Achievement {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Achievement, 0, len(s.records))
	for _, a := range s.records {
		out = append(out, a.Clone())
	}
	return out
}

// ByID returns one achievement by id.
func (s *Achievements) ByID(id string) (model.Achievement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.records {
		if a.ID == id {
			return a.Clone(), nil
		}
	}
	return model.Achievement{}, apperror.NotFound("achievement", id)
}

// ByUser returns the achievements owned by one user, newest first.
func (s *Achievements) ByUser(userID string) []model.Achievement {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.Achievement
	for _, a := range s.records {
		if a.UserID == userID {
			out = append(out, a.Clone())
		}
	}
	return out
}

// Create validates the draft and prepends a new achievement owned by the
// acting user. The store assigns the id and CreatedAt and starts the like
// set empty.
func (s *Achievements) Create(ctx context.Context, draft model.AchievementDraft, actingUser *model.User) (model.Achievement, error) {
	if actingUser == nil {
		return model.Achievement{}, apperror.NotAuthenticated("create an achievement")
	}

	draft.Title = strings.TrimSpace(draft.Title)
	draft.Description = strings.TrimSpace(draft.Description)
	if err := validate.Struct(draft); err != nil {
		return model.Achievement{}, validationError(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	achievement := model.Achievement{
		ID:            xid.New().String(),
		UserID:        actingUser.ID,
		Title:         draft.Title,
		Description:   draft.Description,
		Category:      draft.Category,
		ImageURL:      draft.ImageURL,
		Links:         slices.Clone(draft.Links),
		Tags:          slices.Clone(draft.Tags),
		Collaborators: slices.Clone(draft.Collaborators),
		Date:          draft.Date,
		CreatedAt:     time.Now(),
		Likes:         []string{},
	}

	records := append([]model.Achievement{achievement}, s.records...)
	if err := storage.SaveJSON(ctx, s.kv, storage.KeyAchievements, records); err != nil {
		return model.Achievement{}, fmt.Errorf("store: persisting achievements: %w", err)
	}
	s.records = records

	s.logger.Info("achievement created",
		slog.String("id", achievement.ID),
		slog.String("userID", actingUser.ID),
		slog.String("title", achievement.Title),
	)
	return achievement.Clone(), nil
}

// Update applies a partial patch to an achievement. Only the owner may
// update; patch fields overwrite, all others are retained.
func (s *Achievements) Update(ctx context.Context, id string, patch model.AchievementPatch, actingUser *model.User) (model.Achievement, error) {
	if actingUser == nil {
		return model.Achievement{}, apperror.NotAuthenticated("update an achievement")
	}
	if err := validate.Struct(patch); err != nil {
		return model.Achievement{}, validationError(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return model.Achievement{}, apperror.NotFound("achievement", id)
	}
	if s.records[idx].UserID != actingUser.ID {
		return model.Achievement{}, apperror.Forbidden("you can only update your own achievements")
	}

	updated := s.records[idx].Clone()
	patch.Apply(&updated)

	records := append([]model.Achievement(nil), s.records...)
	records[idx] = updated
	if err := storage.SaveJSON(ctx, s.kv, storage.KeyAchievements, records); err != nil {
		return model.Achievement{}, fmt.Errorf("store: persisting achievements: %w", err)
	}
	s.records = records

	s.logger.Info("achievement updated", slog.String("id", id))
	return updated.Clone(), nil
}

// Delete removes an achievement and cascades to its comments. Only the
// owner may delete. Both collections are re-persisted as one logical
// operation (each behind its own single Set).
func (s *Achievements) Delete(ctx context.Context, id string, actingUser *model.User) error {
	if actingUser == nil {
		return apperror.NotAuthenticated("delete an achievement")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return apperror.NotFound("achievement", id)
	}
	if s.records[idx].UserID != actingUser.ID {
		return apperror.Forbidden("you can only delete your own achievements")
	}

	records := append(append([]model.Achievement(nil), s.records[:idx]...), s.records[idx+1:]...)
	if err := storage.SaveJSON(ctx, s.kv, storage.KeyAchievements, records); err != nil {
		return fmt.Errorf("store: persisting achievements: %w", err)
	}
	s.records = records

	if err := s.comments.DeleteByAchievement(ctx, id); err != nil {
		return fmt.Errorf("store: cascading comments for achievement %s: %w", id, err)
	}

	s.logger.Info("achievement deleted", slog.String("id", id))
	return nil
}

// Like records that the acting user likes the achievement. Liking an
// already-liked achievement is an idempotent no-op, not an error.
func (s *Achievements) Like(ctx context.Context, id string, actingUser *model.User) error {
	if actingUser == nil {
		return apperror.NotAuthenticated("like an achievement")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return apperror.NotFound("achievement", id)
	}
	if s.records[idx].LikedBy(actingUser.ID) {
		return nil // already liked
	}

	updated := s.records[idx].Clone()
	updated.Likes = append(updated.Likes, actingUser.ID)

	records := append([]model.Achievement(nil), s.records...)
	records[idx] = updated
	if err := storage.SaveJSON(ctx, s.kv, storage.KeyAchievements, records); err != nil {
		return fmt.Errorf("store: persisting achievements: %w", err)
	}
	s.records = records
	return nil
}

// Unlike removes the acting user's like. Unliking an achievement that was
// never liked is an idempotent no-op.
func (s *Achievements) Unlike(ctx context.Context, id string, actingUser *model.User) error {
	if actingUser == nil {
		return apperror.NotAuthenticated("unlike an achievement")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return apperror.NotFound("achievement", id)
	}
	if !s.records[idx].LikedBy(actingUser.ID) {
		return nil // nothing to remove
	}

	updated := s.records[idx].Clone()
	updated.Likes = slices.DeleteFunc(updated.Likes, func(uid string) bool {
		return uid == actingUser.ID
	})

	records := append([]model.Achievement(nil), s.records...)
	records[idx] = updated
	if err := storage.SaveJSON(ctx, s.kv, storage.KeyAchievements, records); err != nil {
		return fmt.Errorf("store: persisting achievements: %w", err)
	}
	s.records = records
	return nil
}

// indexOf returns the position of id in the collection, or -1. Callers
// must hold the lock.
func (s *Achievements) indexOf(id string) int {
	for i := range s.records {
		if s.records[i].ID == id {
			return i
		}
	}
	return -1
}
