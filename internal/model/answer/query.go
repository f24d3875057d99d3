package answer

import "strings"

// Query captures one user submission. It is discarded once answered.
type Query struct {
	Question string   `json:"question"`
	Language string   `json:"language"`
	Personas []string `json:"personas"`
}

// Normalized trims the question and drops blank or repeated persona ids,
// keeping the first occurrence order.
func (q Query) Normalized() Query {
	out := Query{
		Question: strings.TrimSpace(q.Question),
		Language: strings.TrimSpace(q.Language),
		Personas: make([]string, 0, len(q.Personas)),
	}
	seen := make(map[string]struct{}, len(q.Personas))
	for _, id := range q.Personas {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out.Personas = append(out.Personas, id)
	}
	return out
}
