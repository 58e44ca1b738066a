package configs

import (
	"time"

	"golang.org/x/text/language"
)

// Dashboard tunes the data source and the campaign table.
type Dashboard struct {
	// RefreshInterval is the period between data refreshes. Zero or a
	// negative value disables refreshing.
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL" envDefault:"5s"`
	// PageSize is the number of campaign rows per table page.
	PageSize int `env:"PAGE_SIZE" envDefault:"10"`
	// RowCount is the number of campaign rows each generated dataset holds.
	RowCount int `env:"ROW_COUNT" envDefault:"50"`
	// Seed seeds the random data source. Zero seeds from the clock.
	Seed int64 `env:"SEED" envDefault:"0"`
	// Locale drives name collation and number formatting, as a BCP 47 tag.
	Locale string `env:"LOCALE" envDefault:"en"`
}

// LanguageTag parses Locale, falling back to English when it is invalid.
func (c Dashboard) LanguageTag() language.Tag {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.English
	}
	return tag
}
