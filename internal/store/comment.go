package store

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/rs/xid"

	"github.com/sakif/achievement-society/internal/apperror"
	"github.com/sakif/achievement-society/internal/model"
	"github.com/sakif/achievement-society/internal/storage"
)

// Comments owns the comment collection, keyed by achievement. The
// achievement store calls DeleteByAchievement when an achievement is
// deleted so no orphaned comments survive.
type Comments struct {
	mu     sync.RWMutex
	kv     storage.KV
	logger *slog.Logger
	seed   []model.Comment

	records []model.Comment
}

// NewComments creates the comment store. seed is used on first start, when
// nothing has been persisted yet.
func NewComments(kv storage.KV, seed []model.Comment, logger *slog.Logger) *Comments {
	return &Comments{kv: kv, seed: seed, logger: logger}
}

// Load reads the persisted collection, falling back to the seed records
// (which are persisted immediately) when the key is absent.
func (s *Comments) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var records []model.Comment
	ok, err := storage.LoadJSON(ctx, s.kv, storage.KeyComments, &records)
	if err != nil {
		return fmt.Errorf("store: loading comments: %w", err)
	}
	if !ok {
		records = append([]model.Comment(nil), s.seed...)
		if err := storage.SaveJSON(ctx, s.kv, storage.KeyComments, records); err != nil {
			return fmt.Errorf("store: persisting seeded comments: %w", err)
		}
		s.logger.Info("seeded comments", slog.Int("count", len(records)))
	}
	s.records = records
	return nil
}

// List returns a snapshot of the full collection, newest first.
func (s *Comments) List() []model.Comment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Comment(nil), s.records...)
}

// ByAchievement returns the comments on one achievement, newest first.
func (s *Comments) ByAchievement(achievementID string) []model.Comment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.Comment
	for _, c := range s.records {
		if c.AchievementID == achievementID {
			out = append(out, c)
		}
	}
	return out
}

// Add creates a comment on an achievement. The text must be non-empty after
// trimming. The new comment is prepended and the collection persisted.
func (s *Comments) Add(ctx context.Context, achievementID, text string, actingUser *model.User) (model.Comment, error) {
	if actingUser == nil {
		return model.Comment{}, apperror.NotAuthenticated("comment")
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return model.Comment{}, apperror.ValidationFailed("text", "comment text is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	comment := model.Comment{
		ID:            xid.New().String(),
		AchievementID: achievementID,
		UserID:        actingUser.ID,
		Text:          text,
		CreatedAt:     time.Now(),
	}

	records := append([]model.Comment{comment}, s.records...)
	if err := storage.SaveJSON(ctx, s.kv, storage.KeyComments, records); err != nil {
		return model.Comment{}, fmt.Errorf("store: persisting comments: %w", err)
	}
	s.records = records

	s.logger.Info("comment added",
		slog.String("id", comment.ID),
		slog.String("achievementID", achievementID),
		slog.String("userID", actingUser.ID),
	)
	return comment, nil
}

// Delete removes a comment. Only the author may delete it.
func (s *Comments) Delete(ctx context.Context, id string, actingUser *model.User) error {
	if actingUser == nil {
		return apperror.NotAuthenticated("delete a comment")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, c := range s.records {
		if c.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return apperror.NotFound("comment", id)
	}
	if s.records[idx].UserID != actingUser.ID {
		return apperror.Forbidden("you can only delete your own comments")
	}

	records := append(append([]model.Comment(nil), s.records[:idx]...), s.records[idx+1:]...)
	if err := storage.SaveJSON(ctx, s.kv, storage.KeyComments, records); err != nil {
		return fmt.Errorf("store: persisting comments: %w", err)
	}
	s.records = records

	s.logger.Info("comment deleted", slog.String("id", id))
	return nil
}

// DeleteByAchievement removes every comment on the given achievement in one
// pass with a single persist. This is the cascade hook used by the
// achievement store's Delete.
func (s *Comments) DeleteByAchievement(ctx context.Context, achievementID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := make([]model.Comment, 0, len(s.records))
	for _, c := range s.records {
		if c.AchievementID != achievementID {
			records = append(records, c)
		}
	}
	if len(records) == len(s.records) {
		return nil // nothing to cascade
	}

	if err := storage.SaveJSON(ctx, s.kv, storage.KeyComments, records); err != nil {
		return fmt.Errorf("store: persisting comments: %w", err)
	}
	removed := len(s.records) - len(records)
	s.records = records

	s.logger.Info("comments cascaded",
		slog.String("achievementID", achievementID),
		slog.Int("removed", removed),
	)
	return nil
}
