package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var supported = []language.Tag{
	language.English,
	language.Indonesian,
}

var matcher = language.NewMatcher(supported)

// MatchLocale resolves the best supported locale for an Accept-Language
// header, falling back to the provided default when nothing matches.
func MatchLocale(acceptLanguage, fallback string) string {
	if acceptLanguage == "" {
		return normalize(fallback)
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return normalize(fallback)
	}
	tag, _, conf := matcher.Match(tags...)
	if conf == language.No {
		return normalize(fallback)
	}
	base, _ := tag.Base()
	return base.String()
}

// FormatAmount renders a monetary amount with locale-aware digit
// grouping for display fields.
func FormatAmount(locale string, amount int64) string {
	tag, err := language.Parse(normalize(locale))
	if err != nil {
		tag = language.English
	}
	p := message.NewPrinter(tag)
	return p.Sprint(number.Decimal(amount))
}

func normalize(locale string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		return "en"
	}
	base, _ := tag.Base()
	return base.String()
}
