package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/text/cases"

	"github.com/dailylift/dailylift/internal/model"
	"github.com/dailylift/dailylift/internal/storage"
)

const (
	CurrentQuoteFile    = "current-quote.json"
	QuoteCollectionFile = "quotes-collection.json"
)

// DefaultQuoteOfDay is shown when the collection is empty.
var DefaultQuoteOfDay = model.Quote{
	Text:   "The only way to do great work is to love what you do.",
	Author: "Steve Jobs",
}

// RecordResult reports what Record wrote.
type RecordResult struct {
	Current         model.CurrentQuote
	Added           bool
	CollectionTotal int
}

// QuoteService persists fetched quotes in the data directory.
type QuoteService struct {
	dataPath string
	store    *storage.LocalStorage
	fold     cases.Caser
}

func NewQuoteService(dataPath string) *QuoteService {
	return &QuoteService{
		dataPath: dataPath,
		store:    storage.NewLocalStorage(dataPath),
		fold:     cases.Fold(),
	}
}

// Record overwrites the current quote and appends q to the collection unless an
// entry with the same normalised text is already there.
func (s *QuoteService) Record(ctx context.Context, q model.Quote, now time.Time) (*RecordResult, error) {
	current := model.CurrentQuote{
		Date:   now.UTC().Format("2006-01-02"),
		Text:   q.Text,
		Author: q.Author,
	}

	err := s.writeJSON(ctx, CurrentQuoteFile, current)
	if err != nil {
		return nil, err
	}
	slog.Info("current quote updated", "date", current.Date)

	collection := s.Collection()
	result := &RecordResult{Current: current, CollectionTotal: len(collection)}

	if s.contains(collection, q.Text) {
		slog.Info("quote already in collection, skipping", "total", len(collection))
		return result, nil
	}

	collection = append(collection, q)
	err = s.writeJSON(ctx, QuoteCollectionFile, collection)
	if err != nil {
		return nil, err
	}

	result.Added = true
	result.CollectionTotal = len(collection)
	slog.Info("quote added to collection", "total", len(collection))
	return result, nil
}

// Collection loads the quote archive; a missing or corrupt file counts as empty.
func (s *QuoteService) Collection() []model.Quote {
	data, err := os.ReadFile(filepath.Join(s.dataPath, QuoteCollectionFile))
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("failed to read quote collection, starting empty", "error", err)
		}
		return []model.Quote{}
	}

	var collection []model.Quote
	err = json.Unmarshal(data, &collection)
	if err != nil {
		slog.Warn("quote collection is corrupt, starting empty", "error", err)
		return []model.Quote{}
	}
	return collection
}

// Current reads data/current-quote.json.
func (s *QuoteService) Current() (model.CurrentQuote, error) {
	var current model.CurrentQuote

	data, err := os.ReadFile(filepath.Join(s.dataPath, CurrentQuoteFile))
	if err != nil {
		return current, fmt.Errorf("failed to read current quote: %w", err)
	}

	err = json.Unmarshal(data, &current)
	if err != nil {
		return current, fmt.Errorf("failed to parse current quote: %w", err)
	}
	return current, nil
}

// QuoteOfDay picks the same quote for every visitor on a given UTC day.
func QuoteOfDay(collection []model.Quote, now time.Time) model.Quote {
	if len(collection) == 0 {
		return DefaultQuoteOfDay
	}
	day := now.UTC().Unix() / 86400
	return collection[int(day%int64(len(collection)))]
}

func (s *QuoteService) contains(collection []model.Quote, text string) bool {
	key := s.normalize(text)
	for _, q := range collection {
		if s.normalize(q.Text) == key {
			return true
		}
	}
	return false
}

func (s *QuoteService) normalize(text string) string {
	return s.fold.String(strings.TrimSpace(text))
}

func (s *QuoteService) writeJSON(ctx context.Context, name string, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	err := enc.Encode(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", name, err)
	}
	return s.store.Save(ctx, name, &buf)
}
