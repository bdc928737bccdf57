// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package state

import (
	"regexp"
	"strings"
)

var (
	blankPattern     = regexp.MustCompile(`^[\s\r\n]+$`)
	loraPattern      = regexp.MustCompile(`withLora\(\s*([^,()\s]+)\s*(?:,\s*[-+]?[0-9]*\.?[0-9]+\s*)?\)`)
	embeddingPattern = regexp.MustCompile(`<([^<>\s]+)>`)
)

// Checks is the result of running the prompt checkers over one prompt.
type Checks struct {
	Text       string
	Valid      bool
	Loras      []string
	Embeddings []string
	Words      int
}

// Blank reports whether text is empty or made only of spaces and line breaks.
func Blank(text string) bool {
	return len(text) == 0 || blankPattern.MatchString(text)
}

// RunCheckers inspects a prompt for validity and for LoRA and embedding triggers.
// Names are reported once each, in order of first appearance.
func RunCheckers(text string) Checks {
	c := Checks{
		Text:  text,
		Valid: !Blank(text),
		Words: len(strings.Fields(text)),
	}

	for _, m := range loraPattern.FindAllStringSubmatch(text, -1) {
		c.Loras = appendUnique(c.Loras, m[1])
	}

	// withLora(...) never contains angle brackets, so the two patterns do not overlap.
	for _, m := range embeddingPattern.FindAllStringSubmatch(text, -1) {
		c.Embeddings = appendUnique(c.Embeddings, m[1])
	}

	return c
}

func appendUnique(list []string, v string) []string {
	for _, existing := range list {
		if existing == v {
			return list
		}
	}
	return append(list, v)
}
