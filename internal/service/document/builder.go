// Package document renders an answer set as a Word document for download.
package document

import (
	"bytes"
	"fmt"

	"github.com/zhouzirui/cm-assistant/backend/internal/model/answer"
)

const (
	Filename    = "AI_Agent_Responses.docx"
	ContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	Title       = "AI Agent Responses"
)

// Artifact is a serialized document ready to be served as a download.
type Artifact struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Section is one heading and paragraph pair.
type Section struct {
	Heading string
	Body    string
}

// Builder assembles documents from answer sets.
type Builder struct {
	title string
}

// NewBuilder returns a Builder using the default document title.
func NewBuilder() *Builder {
	return &Builder{title: Title}
}

// Sections lists the document sections for the personas in order that have an entry in set.
func (b *Builder) Sections(set *answer.Set, order []string) []Section {
	out := make([]Section, 0, len(order))
	for _, id := range order {
		entry, ok := set.Get(id)
		if !ok {
			continue
		}
		heading := entry.Label
		if heading == "" {
			heading = entry.PersonaID
		}
		out = append(out, Section{Heading: heading, Body: entry.Text})
	}
	return out
}

// Build renders the sections into a .docx artifact.
func (b *Builder) Build(set *answer.Set, order []string) (Artifact, error) {
	doc, err := newDocument()
	if err != nil {
		return Artifact{}, fmt.Errorf("preparing docx template: %w", err)
	}
	doc.AddParagraph().Style(styleTitle).AddText(b.title)

	for _, section := range b.Sections(set, order) {
		doc.AddParagraph().Style(styleHeading).AddText(section.Heading)
		doc.AddParagraph().AddText(section.Body)
	}

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return Artifact{}, fmt.Errorf("writing docx: %w", err)
	}

	return Artifact{
		Filename:    Filename,
		ContentType: ContentType,
		Data:        buf.Bytes(),
	}, nil
}
