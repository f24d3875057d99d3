package ai

import (
	"fmt"
	"strings"

	"github.com/zhouzirui/cm-assistant/backend/internal/analysis/sections"
	"github.com/zhouzirui/cm-assistant/backend/internal/model/persona"
)

// PromptBuilder composes the system instruction for combined requests.
type PromptBuilder struct {
	marker    string
	separator string
}

// NewPromptBuilder uses the section grammar understood by the sections parser.
func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{
		marker:    sections.Marker,
		separator: sections.Separator,
	}
}

// SectionHeader renders the line that must open a persona's answer.
func (pb *PromptBuilder) SectionHeader(personaID string) string {
	return fmt.Sprintf("%s %s%s", pb.marker, personaID, pb.separator)
}

// Combined lists every persona with its own instruction and states the
// output format the reply must follow.
func (pb *PromptBuilder) Combined(personas []persona.Persona) string {
	var builder strings.Builder
	builder.WriteString("You are a panel of advisors. Answer the user's question separately for each persona listed below, ")
	builder.WriteString("staying fully in that persona's role and following its instruction.\n\nPersonas:\n")

	for i, p := range personas {
		fmt.Fprintf(&builder, "%d. %s\n   Instruction: %s\n", i+1, p.ID, strings.TrimSpace(p.Instruction))
	}

	builder.WriteString("\nOutput format:\n")
	fmt.Fprintf(&builder, "- Begin each persona's answer with a line of the form \"%s\" using the persona name exactly as listed.\n",
		pb.SectionHeader("<persona name>"))
	builder.WriteString("- Put that persona's answer on the lines that follow.\n")
	builder.WriteString("- Answer every persona, in the order listed, and write nothing before the first section.\n\n")

	builder.WriteString("Example:\n")
	for _, p := range personas {
		builder.WriteString(pb.SectionHeader(p.ID))
		builder.WriteString("\n<answer>\n")
	}
	return builder.String()
}
