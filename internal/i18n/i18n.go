// Package i18n provides the localized default strings used by page
// components when the site configuration leaves a value unset.
package i18n

import (
	"errors"
	"fmt"
	"sort"

	"golang.org/x/text/language"
)

// DefaultLocale is used when nothing better can be matched.
const DefaultLocale = "en-US"

// ErrUnknownLocale is returned by For when no translation table exists for
// the requested locale.
var ErrUnknownLocale = errors.New("unknown locale")

// PropertyDefaults are the fallbacks for page properties that a page or site
// did not set explicitly.
type PropertyDefaults struct {
	Title       string
	Description string
}

// Translation is the set of localized strings for a single locale.
type Translation struct {
	PropertyDefaults PropertyDefaults
}

var (
	supportedTags []language.Tag
	supportedKeys []string
	matcher       language.Matcher
)

func init() {
	supportedKeys = make([]string, 0, len(translations))
	for key := range translations {
		supportedKeys = append(supportedKeys, key)
	}
	sort.Strings(supportedKeys)

	// The default locale goes first so the matcher falls back to it.
	supportedTags = []language.Tag{language.MustParse(DefaultLocale)}
	for _, key := range supportedKeys {
		if key != DefaultLocale {
			supportedTags = append(supportedTags, language.MustParse(key))
		}
	}
	matcher = language.NewMatcher(supportedTags)
}

// For returns the translation table for locale. The locale is canonicalized
// first, so "en-us" and "en-US" are the same key.
func For(locale string) (Translation, error) {
	key, err := canonical(locale)
	if err != nil {
		return Translation{}, err
	}
	t, ok := translations[key]
	if !ok {
		return Translation{}, fmt.Errorf("%w: %q", ErrUnknownLocale, locale)
	}
	return t, nil
}

// IsSupported reports whether For would succeed for locale.
func IsSupported(locale string) bool {
	_, err := For(locale)
	return err == nil
}

// Supported returns the supported locale keys in sorted order.
func Supported() []string {
	out := make([]string, len(supportedKeys))
	copy(out, supportedKeys)
	return out
}

// Match picks the closest supported locale for a free-form tag or an
// Accept-Language header value. It never fails; unparseable or unmatched
// input yields DefaultLocale.
func Match(accept string) string {
	tags, _, err := language.ParseAcceptLanguage(accept)
	if err != nil || len(tags) == 0 {
		return DefaultLocale
	}
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return DefaultLocale
	}
	return supportedTags[index].String()
}

func canonical(locale string) (string, error) {
	if locale == "" {
		return "", fmt.Errorf("%w: empty locale", ErrUnknownLocale)
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrUnknownLocale, locale, err)
	}
	return tag.String(), nil
}
