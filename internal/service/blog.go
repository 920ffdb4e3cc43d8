package service

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/dailylift/dailylift/internal/markdown"
	"github.com/dailylift/dailylift/internal/model"
)

const wordsPerMinute = 200

type BlogService struct {
	parser      *markdown.Parser
	contentPath string
}

func NewBlogService(contentPath string) *BlogService {
	return &BlogService{
		parser:      markdown.NewParser(),
		contentPath: contentPath,
	}
}

// Posts loads every Markdown post in the content directory in lexical file order.
// A missing content directory is not an error.
func (s *BlogService) Posts() ([]*model.BlogPost, error) {
	entries, err := os.ReadDir(s.contentPath)
	if os.IsNotExist(err) {
		slog.Info("no blog content directory found, skipping", "path", s.contentPath)
		return []*model.BlogPost{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read blog directory %s: %w", s.contentPath, err)
	}

	posts := []*model.BlogPost{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		post, err := s.Post(strings.TrimSuffix(entry.Name(), ".md"))
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}

	return posts, nil
}

func (s *BlogService) Post(slug string) (*model.BlogPost, error) {
	path := filepath.Join(s.contentPath, slug+".md")
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read blog post %s: %w", slug, err)
	}

	doc, err := s.parser.Render(content)
	if err != nil {
		return nil, fmt.Errorf("failed to render blog post %s: %w", slug, err)
	}

	meta := doc.Meta
	body := doc.Body
	post := &model.BlogPost{
		Slug:        slug,
		Title:       slug,
		Emoji:       model.DefaultPostEmoji,
		Hue:         model.DefaultPostHue,
		Keywords:    []string{},
		Content:     body,
		HTMLContent: string(doc.HTML),
		ReadTime:    readTime(body),
	}

	title, ok := meta["title"].(string)
	if ok && title != "" {
		post.Title = title
	}

	description, ok := meta["description"].(string)
	if ok {
		post.Description = description
	}

	post.Date = metaDate(meta["date"])

	switch keywords := meta["keywords"].(type) {
	case []any:
		for _, kw := range keywords {
			kwStr, ok := kw.(string)
			if ok {
				post.Keywords = append(post.Keywords, kwStr)
			}
		}
	case string:
		if keywords != "" {
			post.Keywords = append(post.Keywords, keywords)
		}
	}

	emoji, ok := meta["emoji"].(string)
	if ok && emoji != "" {
		post.Emoji = emoji
	}

	hue, ok := metaNumber(meta["hue"])
	if ok && hue != 0 {
		post.Hue = hue
	}

	return post, nil
}

// Index builds blog index entries sorted by date descending.
// Ties keep input order; posts without a parseable date sort last.
func (s *BlogService) Index(posts []*model.BlogPost) []model.BlogIndexEntry {
	index := make([]model.BlogIndexEntry, 0, len(posts))
	for _, post := range posts {
		index = append(index, post.IndexEntry())
	}

	sort.SliceStable(index, func(i, j int) bool {
		di, okI := parseDate(index[i].Date)
		dj, okJ := parseDate(index[j].Date)
		if !okI || !okJ {
			return okI && !okJ
		}
		return di.After(dj)
	})

	return index
}

func readTime(body string) string {
	words := len(strings.Fields(body))
	minutes := int(math.Ceil(float64(words) / wordsPerMinute))
	if minutes < 1 {
		minutes = 1
	}
	return strconv.Itoa(minutes) + " min read"
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// metaDate normalises a front-matter date; YAML decodes bare dates to time.Time.
func metaDate(v any) string {
	switch d := v.(type) {
	case string:
		return d
	case time.Time:
		if d.Hour() == 0 && d.Minute() == 0 && d.Second() == 0 {
			return d.Format("2006-01-02")
		}
		return d.Format(time.RFC3339)
	}
	return ""
}

func metaNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float64:
		return n, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err == nil {
			return f, true
		}
	}
	return 0, false
}
