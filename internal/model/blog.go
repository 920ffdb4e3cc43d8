package model

// Defaults applied when a post's front-matter omits a field.
const (
	DefaultPostEmoji = "📝"
	DefaultPostHue   = 265
)

type BlogPost struct {
	Title       string
	Slug        string
	Description string
	Keywords    []string
	Date        string // as written in front-matter, usually YYYY-MM-DD
	Emoji       string
	Hue         float64
	Content     string
	HTMLContent string
	ReadTime    string
}

// BlogIndexEntry is one element of data/blog-index.json.
type BlogIndexEntry struct {
	Slug        string  `json:"slug"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
	ReadTime    string  `json:"readTime"`
	Emoji       string  `json:"emoji"`
	Hue         float64 `json:"hue"`
}

func (p *BlogPost) IndexEntry() BlogIndexEntry {
	return BlogIndexEntry{
		Slug:        p.Slug,
		Title:       p.Title,
		Description: p.Description,
		Date:        p.Date,
		ReadTime:    p.ReadTime,
		Emoji:       p.Emoji,
		Hue:         p.Hue,
	}
}
