// Package i18n defines the languages HomeoInvent supports and how incoming
// language values are matched against them.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

var supportedTags = []language.Tag{
	language.AmericanEnglish,
	language.BrazilianPortuguese,
}

var matcher = language.NewMatcher(supportedTags)

// SupportedTags returns the supported language tags, default first.
func SupportedTags() []language.Tag {
	out := make([]language.Tag, len(supportedTags))
	copy(out, supportedTags)
	return out
}

// DefaultTag returns the default language tag.
func DefaultTag() language.Tag {
	return supportedTags[0]
}

// ParseTag parses value and reports whether it maps to a supported tag with
// at least high confidence.
func ParseTag(value string) (language.Tag, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return DefaultTag(), false
	}
	tag, err := language.Parse(value)
	if err != nil {
		return DefaultTag(), false
	}
	_, index, confidence := matcher.Match(tag)
	if confidence < language.High {
		return DefaultTag(), false
	}
	return supportedTags[index], true
}

// MatchTags returns the best supported tag for a preference list.
func MatchTags(tags []language.Tag) language.Tag {
	if len(tags) == 0 {
		return DefaultTag()
	}
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return DefaultTag()
	}
	return supportedTags[index]
}
