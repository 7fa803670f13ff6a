package jsonstore

import (
	"time"

	"portfolioapi/internal/model"
)

// SpanishLang is the only language code with its own seeded copy; every other code gets English.
const SpanishLang = "es"

type seedCopy struct {
	title, content, summary string
}

var (
	seedES = seedCopy{
		title:   "Bienvenidos a mi Blog",
		content: "Este es mi primer post...",
		summary: "Una breve introducción...",
	}
	seedEN = seedCopy{
		title:   "Welcome to my Blog",
		content: "This is my first post...",
		summary: "A brief introduction...",
	}
)

// SeedPost builds the example post written into a partition the first time it is accessed.
func SeedPost(lang string, now time.Time) model.BlogPost {
	c := seedEN
	if lang == SpanishLang {
		c = seedES
	}
	return model.BlogPost{
		ID:       "1",
		Title:    c.title,
		Content:  c.content,
		Summary:  c.summary,
		Date:     now.Format(model.DateLayout),
		Tags:     []string{"Welcome", "First Post"},
		ReadTime: 2,
	}
}
