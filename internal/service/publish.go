package service

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dailylift/dailylift/internal/progress"
	"github.com/dailylift/dailylift/internal/storage"
)

// PublishService uploads a built output tree to a storage backend.
type PublishService struct {
	store    storage.Storage
	reporter progress.Reporter
}

func NewPublishService(store storage.Storage, reporter progress.Reporter) *PublishService {
	return &PublishService{store: store, reporter: reporter}
}

// Publish saves every file under distDir at its relative path and returns the count.
func (s *PublishService) Publish(ctx context.Context, distDir string) (int, error) {
	var files []string
	err := filepath.WalkDir(distDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to scan %s: %w", distDir, err)
	}
	if len(files) == 0 {
		return 0, fmt.Errorf("nothing to publish in %s, run build first", distDir)
	}

	s.reporter.Start(len(files), "Uploading")
	defer s.reporter.Finish()

	for i, path := range files {
		if err := ctx.Err(); err != nil {
			return i, err
		}

		rel, err := filepath.Rel(distDir, path)
		if err != nil {
			return i, err
		}
		rel = filepath.ToSlash(rel)

		err = s.upload(ctx, path, rel)
		if err != nil {
			return i, err
		}
		s.reporter.Step(rel)
	}

	slog.Info("publish complete", "files", len(files), "url", s.store.URL("index.html"))
	return len(files), nil
}

func (s *PublishService) upload(ctx context.Context, path, name string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", name, err)
	}
	defer f.Close()

	return s.store.Save(ctx, name, f)
}
