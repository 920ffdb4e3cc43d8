package model

type Quote struct {
	Text   string `json:"text"`
	Author string `json:"author"`
}

// CurrentQuote is the dated record in data/current-quote.json, overwritten daily.
type CurrentQuote struct {
	Date   string `json:"date"`
	Text   string `json:"text"`
	Author string `json:"author"`
}

func (c CurrentQuote) Quote() Quote {
	return Quote{Text: c.Text, Author: c.Author}
}
