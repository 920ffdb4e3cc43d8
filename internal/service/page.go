package service

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/dailylift/dailylift/internal/model"
)

//go:embed templates/*.html
var templatesFS embed.FS

// PageRenderer fills the blog post layout with a post's fields.
type PageRenderer struct {
	tmpl     *template.Template
	siteURL  string
	adClient string
	adSlot   string
	now      func() time.Time
}

type postPage struct {
	Title       string
	Description string
	Keywords    string
	Date        string
	Slug        string
	ReadTime    string
	SiteURL     string
	AdClient    string
	AdSlot      string
	Year        int
	Content     template.HTML
}

func NewPageRenderer(siteURL, adClient, adSlot string) (*PageRenderer, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/post.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse post template: %w", err)
	}

	return &PageRenderer{
		tmpl:     tmpl,
		siteURL:  strings.TrimSuffix(siteURL, "/"),
		adClient: adClient,
		adSlot:   adSlot,
		now:      time.Now,
	}, nil
}

// RenderPost returns the complete HTML document for post.
func (r *PageRenderer) RenderPost(post *model.BlogPost) ([]byte, error) {
	page := postPage{
		Title:       post.Title,
		Description: post.Description,
		Keywords:    strings.Join(post.Keywords, ", "),
		Date:        post.Date,
		Slug:        post.Slug,
		ReadTime:    post.ReadTime,
		SiteURL:     r.siteURL,
		AdClient:    r.adClient,
		AdSlot:      r.adSlot,
		Year:        r.now().Year(),
		// Rendered from repository-owned Markdown.
		Content: template.HTML(post.HTMLContent),
	}

	var buf bytes.Buffer
	err := r.tmpl.ExecuteTemplate(&buf, "post.html", page)
	if err != nil {
		return nil, fmt.Errorf("failed to render post %s: %w", post.Slug, err)
	}
	return buf.Bytes(), nil
}
