package service

import (
	"encoding/xml"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dailylift/dailylift/internal/model"
)

// pageRules assigns crawl hints by output path; the first match wins.
// Paths not listed fall through to the default rule.
var pageRules = []struct {
	Match      func(path string) bool
	Priority   string
	ChangeFreq string
}{
	{exactPath("index.html"), "1.0", "daily"},
	{exactPath("tools.html"), "0.9", "weekly"},
	{exactPath("blog.html"), "0.8", "weekly"},
	{pathPrefix("blog/"), "0.6", "monthly"},
}

var defaultPageRule = struct {
	Priority   string
	ChangeFreq string
}{"0.5", "weekly"}

func exactPath(want string) func(string) bool {
	return func(path string) bool { return path == want }
}

func pathPrefix(prefix string) func(string) bool {
	return func(path string) bool { return strings.HasPrefix(path, prefix) }
}

type SitemapService struct {
	baseURL string
	now     func() time.Time
}

// NewSitemapService creates a new sitemap service
func NewSitemapService(baseURL string) *SitemapService {
	// Ensure baseURL doesn't have trailing slash
	baseURL = strings.TrimSuffix(baseURL, "/")

	return &SitemapService{
		baseURL: baseURL,
		now:     time.Now,
	}
}

// HTMLFiles lists every .html file under dir as slash-separated relative paths in lexical order.
// A missing dir yields no files.
func HTMLFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) && path == dir {
				return filepath.SkipAll
			}
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".html") {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s for html files: %w", dir, err)
	}
	return files, nil
}

// Entries maps output pages to sitemap URLs, one per file.
func (s *SitemapService) Entries(files []string) []model.SitemapURL {
	today := s.now().Format("2006-01-02")
	urls := make([]model.SitemapURL, 0, len(files))

	for _, file := range files {
		loc := file
		if file == "index.html" {
			loc = ""
		}

		priority, changeFreq := defaultPageRule.Priority, defaultPageRule.ChangeFreq
		for _, rule := range pageRules {
			if rule.Match(file) {
				priority, changeFreq = rule.Priority, rule.ChangeFreq
				break
			}
		}

		urls = append(urls, model.SitemapURL{
			Loc:        s.baseURL + "/" + loc,
			LastMod:    today,
			ChangeFreq: changeFreq,
			Priority:   priority,
		})
	}

	return urls
}

// GenerateSitemap renders the sitemap XML for every html file in distDir
func (s *SitemapService) GenerateSitemap(distDir string) ([]byte, int, error) {
	files, err := HTMLFiles(distDir)
	if err != nil {
		return nil, 0, err
	}

	sitemap := model.Sitemap{
		XMLNS: model.SitemapNamespace,
		URLs:  s.Entries(files),
	}

	// Generate XML
	output, err := xml.MarshalIndent(sitemap, "", "  ")
	if err != nil {
		return nil, 0, err
	}

	// Add XML header
	result := xml.Header + string(output)
	return []byte(result), len(sitemap.URLs), nil
}

// WriteSitemap writes sitemap.xml into distDir and returns the URL count.
func (s *SitemapService) WriteSitemap(distDir string) (int, error) {
	data, count, err := s.GenerateSitemap(distDir)
	if err != nil {
		return 0, err
	}

	err = os.WriteFile(filepath.Join(distDir, "sitemap.xml"), data, 0644)
	if err != nil {
		return 0, fmt.Errorf("failed to write sitemap: %w", err)
	}
	return count, nil
}
