// Package sections splits one combined model reply into per-persona answers.
//
// The expected grammar is a sequence of sections, each introduced by Marker,
// followed by the persona label, Separator and the answer body:
//
//	### Police Guideline Officer:
//	Stay calm and call 100.
//	### Lord Krishna:
//	Act without attachment to outcome.
//
// Models do not always follow it, so parsing is best effort: anything that
// does not fit is dropped and every expected persona still gets an entry.
package sections

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/zhouzirui/cm-assistant/backend/internal/model/answer"
)

const (
	Marker    = "###"
	Separator = ":"
)

// Section is the parsed answer for one expected persona.
type Section struct {
	PersonaID string
	Body      string
	Found     bool
}

// ParseOrdered returns one Section per expected id, in the order given.
// Ids absent from raw carry answer.Placeholder with Found=false.
func ParseOrdered(raw string, expected []string) []Section {
	wanted := make(map[string]string, len(expected))
	for _, id := range expected {
		key := normalizeLabel(id)
		if _, dup := wanted[key]; !dup {
			wanted[key] = id
		}
	}

	bodies := make(map[string]string, len(expected))
	// text ahead of the first marker is preamble, never a section
	fragments := strings.Split(raw, Marker)[1:]
	for _, fragment := range fragments {
		label, body, ok := splitFragment(fragment)
		if !ok {
			continue
		}
		id, known := wanted[normalizeLabel(label)]
		if !known {
			continue
		}
		// first section for a persona wins
		if _, seen := bodies[id]; seen {
			continue
		}
		bodies[id] = body
	}

	out := make([]Section, 0, len(expected))
	for _, id := range expected {
		body, found := bodies[id]
		if !found {
			body = answer.Placeholder
		}
		out = append(out, Section{PersonaID: id, Body: body, Found: found})
	}
	return out
}

// Parse is ParseOrdered keyed by persona id.
func Parse(raw string, expected []string) map[string]string {
	sections := ParseOrdered(raw, expected)
	out := make(map[string]string, len(sections))
	for _, s := range sections {
		out[s.PersonaID] = s.Body
	}
	return out
}

func splitFragment(fragment string) (label, body string, ok bool) {
	fragment = strings.TrimSpace(fragment)
	if fragment == "" {
		return "", "", false
	}
	idx := strings.Index(fragment, Separator)
	if idx < 0 {
		return "", "", false
	}
	label = strings.TrimSpace(fragment[:idx])
	body = strings.TrimSpace(fragment[idx+len(Separator):])
	if label == "" || body == "" {
		return "", "", false
	}
	return label, body, true
}

// CheckLabel reports whether id can open a section and be matched back when
// the reply is parsed.
func CheckLabel(id string) error {
	switch {
	case strings.Contains(id, Marker):
		return fmt.Errorf("label %q contains the section marker %q", id, Marker)
	case strings.Contains(id, Separator):
		return fmt.Errorf("label %q contains the separator %q", id, Separator)
	case normalizeLabel(id) == "":
		return fmt.Errorf("label %q has nothing left to match after normalization", id)
	}
	return nil
}

// LabelKey is the normalized form under which labels are compared.
func LabelKey(id string) string {
	return normalizeLabel(id)
}

// normalizeLabel trims surrounding whitespace, punctuation and symbols
// (markdown bold, stray hashes, colons, quotes), collapses inner whitespace
// and folds case.
func normalizeLabel(label string) string {
	trimmed := strings.TrimFunc(label, func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsPunct(r) || unicode.IsSymbol(r)
	})
	return strings.ToLower(strings.Join(strings.Fields(trimmed), " "))
}
