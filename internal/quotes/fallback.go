package quotes

import (
	"context"

	"github.com/dailylift/dailylift/internal/model"
)

// FallbackQuote is used when every remote provider fails.
var FallbackQuote = model.Quote{
	Text:   "The best preparation for tomorrow is doing your best today.",
	Author: "H. Jackson Brown Jr.",
}

// FallbackProvider always succeeds with a fixed quote.
type FallbackProvider struct {
	quote model.Quote
}

func NewFallbackProvider() *FallbackProvider {
	return &FallbackProvider{quote: FallbackQuote}
}

func (p *FallbackProvider) Name() string {
	return "fallback"
}

func (p *FallbackProvider) Fetch(context.Context) (model.Quote, error) {
	return p.quote, nil
}
