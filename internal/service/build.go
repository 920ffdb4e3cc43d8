package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/dailylift/dailylift/internal/config"
	"github.com/dailylift/dailylift/internal/storage"
)

// BuildResult summarises one run of the pipeline.
type BuildResult struct {
	Posts       int
	FilesCopied int
	SitemapURLs int
	Duration    time.Duration
}

type BuildService struct {
	cfg     *config.Config
	blog    *BlogService
	pages   *PageRenderer
	sitemap *SitemapService
	out     *storage.LocalStorage
}

func NewBuildService(cfg *config.Config) (*BuildService, error) {
	pages, err := NewPageRenderer(cfg.SiteURL, cfg.AdClient, cfg.AdSlot)
	if err != nil {
		return nil, err
	}

	return &BuildService{
		cfg:     cfg,
		blog:    NewBlogService(cfg.ContentPath),
		pages:   pages,
		sitemap: NewSitemapService(cfg.SiteURL),
		out:     storage.NewLocalStorage(cfg.DistPath),
	}, nil
}

// Build regenerates the output directory from source, data and blog content.
func (s *BuildService) Build(ctx context.Context) (*BuildResult, error) {
	start := time.Now()
	result := &BuildResult{}
	dist := s.out.Root()

	slog.Info("build started", "src", s.cfg.SrcPath, "dist", dist)

	if s.cfg.IsDocker {
		slog.Info("docker mode, output directory not cleaned", "dist", dist)
	} else {
		err := storage.CleanDir(dist)
		if err != nil {
			return nil, fmt.Errorf("failed to clean output directory: %w", err)
		}
	}

	copied, err := storage.CopyTree(s.cfg.SrcPath, dist)
	if err != nil {
		return nil, err
	}
	result.FilesCopied += copied

	copied, err = storage.CopyTree(s.cfg.DataPath, filepath.Join(dist, "data"))
	if err != nil {
		return nil, err
	}
	result.FilesCopied += copied
	slog.Debug("static files copied", "count", result.FilesCopied)

	posts, err := s.blog.Posts()
	if err != nil {
		return nil, err
	}
	for _, post := range posts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		html, err := s.pages.RenderPost(post)
		if err != nil {
			return nil, err
		}
		err = s.out.Save(ctx, "blog/"+post.Slug+".html", bytes.NewReader(html))
		if err != nil {
			return nil, err
		}
		slog.Debug("post rendered", "slug", post.Slug)
	}
	result.Posts = len(posts)

	index, err := json.MarshalIndent(s.blog.Index(posts), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode blog index: %w", err)
	}
	err = s.out.Save(ctx, "data/blog-index.json", bytes.NewReader(index))
	if err != nil {
		return nil, err
	}

	tmpl, err := LoadRobotsTemplate(filepath.Join(s.cfg.SrcPath, "robots.txt"))
	if err != nil {
		return nil, err
	}
	robots := RobotsTxt(tmpl, s.cfg.SiteURL)
	err = s.out.Save(ctx, "robots.txt", strings.NewReader(robots))
	if err != nil {
		return nil, err
	}

	result.SitemapURLs, err = s.sitemap.WriteSitemap(dist)
	if err != nil {
		return nil, err
	}

	result.Duration = time.Since(start)
	slog.Info("build complete",
		"posts", result.Posts,
		"files_copied", result.FilesCopied,
		"sitemap_urls", result.SitemapURLs,
		"duration", result.Duration,
	)
	return result, nil
}
