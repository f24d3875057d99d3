// Package language holds the fixed table of response languages offered to users.
package language

import (
	"errors"
	"fmt"
	"strings"

	xlanguage "golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// ErrUnknownLanguage is returned for display names absent from the directory.
var ErrUnknownLanguage = errors.New("unknown language")

// Language pairs a display name with a translation target code.
type Language struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// NativeName renders the language in its own script, e.g. "हिन्दी" for hi.
func (l Language) NativeName() string {
	tag, err := xlanguage.Parse(l.Code)
	if err != nil {
		return l.Name
	}
	if name := display.Self.Name(tag); name != "" {
		return name
	}
	return l.Name
}

// Seed returns the default language table.
func Seed() []Language {
	return []Language{
		{Name: "English", Code: "en"},
		{Name: "Hindi", Code: "hi"},
		{Name: "Marathi", Code: "mr"},
		{Name: "Gujarati", Code: "gu"},
		{Name: "Tamil", Code: "ta"},
		{Name: "Telugu", Code: "te"},
		{Name: "Kannada", Code: "kn"},
		{Name: "Malayalam", Code: "ml"},
		{Name: "Bengali", Code: "bn"},
		{Name: "Punjabi", Code: "pa"},
	}
}

// Directory is an immutable name -> code lookup.
type Directory struct {
	items []Language
	index map[string]int
}

// NewDirectory validates codes and names and builds a Directory.
func NewDirectory(items []Language) (*Directory, error) {
	d := &Directory{
		items: make([]Language, 0, len(items)),
		index: make(map[string]int, len(items)),
	}
	for _, item := range items {
		name := strings.TrimSpace(item.Name)
		if name == "" {
			return nil, fmt.Errorf("language with code %q has no name", item.Code)
		}
		if _, err := xlanguage.Parse(item.Code); err != nil {
			return nil, fmt.Errorf("language %s: invalid code %q: %w", name, item.Code, err)
		}
		if _, dup := d.index[name]; dup {
			return nil, fmt.Errorf("duplicate language name %q", name)
		}
		d.index[name] = len(d.items)
		d.items = append(d.items, Language{Name: name, Code: item.Code})
	}
	return d, nil
}

// MustDirectory is NewDirectory for static tables known to be valid.
func MustDirectory(items []Language) *Directory {
	d, err := NewDirectory(items)
	if err != nil {
		panic(err)
	}
	return d
}

// Lookup resolves a display name.
func (d *Directory) Lookup(name string) (Language, error) {
	idx, ok := d.index[strings.TrimSpace(name)]
	if !ok {
		return Language{}, fmt.Errorf("%w: %q", ErrUnknownLanguage, name)
	}
	return d.items[idx], nil
}

// List returns the languages in table order.
func (d *Directory) List() []Language {
	return append([]Language(nil), d.items...)
}

// Names returns the display names in table order.
func (d *Directory) Names() []string {
	names := make([]string, len(d.items))
	for i, item := range d.items {
		names[i] = item.Name
	}
	return names
}
