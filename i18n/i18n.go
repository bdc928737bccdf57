// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

// Package i18n provides static UI strings in a handful of languages.
package i18n

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Translator looks up static UI strings by key.
type Translator struct {
	tag     language.Tag
	printer *message.Printer
}

var (
	supported = []language.Tag{language.English, language.German, language.Spanish, language.French}
	builder   = buildCatalog()
)

// New returns a translator for lang (a BCP 47 tag such as "de" or "es-MX").
// Unsupported or malformed tags fall back to English.
func New(lang string) *Translator {
	tag := match(lang)
	return &Translator{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(builder)),
	}
}

// T returns the string for key. Unknown keys are returned unchanged.
func (t *Translator) T(key string) string {
	return t.printer.Sprintf(key)
}

func (t *Translator) Language() language.Tag { return t.tag }

// Supported lists the catalog languages, English first.
func Supported() []language.Tag {
	cp := make([]language.Tag, len(supported))
	copy(cp, supported)
	return cp
}

func match(lang string) language.Tag {
	if lang == "" {
		return language.English
	}
	requested, err := language.Parse(lang)
	if err != nil {
		return language.English
	}
	_, idx, conf := language.NewMatcher(supported).Match(requested)
	if conf == language.No {
		return language.English
	}
	return supported[idx]
}

func buildCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for tag, entries := range messages {
		for key, msg := range entries {
			if err := b.SetString(tag, key, msg); err != nil {
				panic(fmt.Sprintf("i18n: %s %q: %v", tag, key, err))
			}
		}
	}
	return b
}
