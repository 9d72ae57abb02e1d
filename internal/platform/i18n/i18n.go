// Package i18n resolves supported UI languages for the web client.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var supported = []language.Tag{
	language.English,
	language.Spanish,
}

var matcher = language.NewMatcher(supported)

// SupportedTags returns the languages the UI can render.
func SupportedTags() []language.Tag {
	tags := make([]language.Tag, len(supported))
	copy(tags, supported)
	return tags
}

// DefaultTag returns the fallback language.
func DefaultTag() language.Tag {
	return supported[0]
}

// ParseTag parses value into a supported tag. The bool reports whether the
// value matched a supported language.
func ParseTag(value string) (language.Tag, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return DefaultTag(), false
	}
	tag, err := language.Parse(value)
	if err != nil {
		return DefaultTag(), false
	}
	matched, _, confidence := matcher.Match(tag)
	if confidence == language.No {
		return DefaultTag(), false
	}
	return canonical(matched), true
}

// MatchTags picks the best supported language for the requested tags.
func MatchTags(requested []language.Tag) language.Tag {
	if len(requested) == 0 {
		return DefaultTag()
	}
	matched, _, confidence := matcher.Match(requested...)
	if confidence == language.No {
		return DefaultTag()
	}
	return canonical(matched)
}

// Printer returns a message printer for the supplied tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}

// canonical collapses matcher output (which may carry extensions) back to
// one of the supported base tags.
func canonical(tag language.Tag) language.Tag {
	base, _ := tag.Base()
	for _, candidate := range supported {
		candidateBase, _ := candidate.Base()
		if candidateBase == base {
			return candidate
		}
	}
	return DefaultTag()
}
