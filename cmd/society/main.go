// Package main is a small console consumer of the achievement society data
// layer. It stands in for the web UI: it wires the dependency graph the
// same way a real front end host would, loads (or seeds) the stores, and
// prints the feed projection.
//
// The data layer itself never touches the environment — all configuration
// is read here and passed down as constructor arguments:
//
//	SOCIETY_STORAGE   "file" (default) or "sqlite"
//	SOCIETY_DATA_DIR  data directory for the file backend (default "data")
//	SOCIETY_DB_PATH   database path for the sqlite backend (default "data/society.db")
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/sakif/achievement-society/internal/auth"
	"github.com/sakif/achievement-society/internal/seed"
	"github.com/sakif/achievement-society/internal/storage"
	"github.com/sakif/achievement-society/internal/storage/kvfile"
	"github.com/sakif/achievement-society/internal/storage/sqlite"
	"github.com/sakif/achievement-society/internal/store"
	"github.com/sakif/achievement-society/internal/view"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// A .env file is optional; real env vars win over it.
	_ = godotenv.Load()

	kv, err := openStorage(logger)
	if err != nil {
		logger.Error("failed to open storage", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer kv.Close()

	identity := store.NewIdentity(kv, auth.NewPasswordHasher(), seed.Users(), logger)
	comments := store.NewComments(kv, seed.Comments(), logger)
	achievements := store.NewAchievements(kv, comments, seed.Achievements(), logger)

	ctx := context.Background()
	if err := identity.Load(ctx); err != nil {
		logger.Error("failed to load session", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := comments.Load(ctx); err != nil {
		logger.Error("failed to load comments", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := achievements.Load(ctx); err != nil {
		logger.Error("failed to load achievements", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if user, status := identity.Current(); status == store.StatusAuthenticated {
		fmt.Printf("signed in as %s (%s)\n\n", user.FullName, user.Username)
	} else {
		fmt.Printf("not signed in\n\n")
	}

	feed := view.Feed(achievements.List(), view.FeedOptions{Count: view.FeedPageSize})
	counts := view.CommentCounts(comments.List())

	fmt.Println("Latest achievements:")
	for _, a := range feed {
		author := "unknown"
		if u, err := identity.UserByID(a.UserID); err == nil {
			author = u.FullName
		}
		fmt.Printf("  %s — %s [%s]\n", a.Date.Format("2006-01-02"), a.Title, a.Category)
		fmt.Printf("      by %s · %d likes · %d comments\n", author, len(a.Likes), counts[a.ID])
	}
}

// openStorage picks the persistence backend from the environment. Both
// implement the same port, so nothing downstream cares which one runs.
func openStorage(logger *slog.Logger) (storage.KV, error) {
	backend := os.Getenv("SOCIETY_STORAGE")
	if backend == "" {
		backend = "file"
	}

	switch backend {
	case "file":
		dir := os.Getenv("SOCIETY_DATA_DIR")
		if dir == "" {
			dir = "data"
		}
		logger.Info("using file storage", slog.String("dir", dir))
		return kvfile.New(dir)
	case "sqlite":
		path := os.Getenv("SOCIETY_DB_PATH")
		if path == "" {
			path = filepath.Join("data", "society.db")
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
		logger.Info("using sqlite storage", slog.String("path", path))
		return sqlite.New(path)
	default:
		return nil, fmt.Errorf("unknown SOCIETY_STORAGE value %q (want file or sqlite)", backend)
	}
}
