package answer

// Placeholder is the text recorded for a persona the combined reply skipped.
const Placeholder = "No answer generated."

// Failure classifies why an entry holds sentinel text instead of an answer.
type Failure string

const (
	FailureNone        Failure = ""
	FailureGateway     Failure = "gateway"
	FailureMissing     Failure = "missing"
	FailureTranslation Failure = "translation"
)

// Entry is one persona's final answer.
type Entry struct {
	PersonaID string  `json:"personaId"`
	Label     string  `json:"label"`
	Icon      string  `json:"icon,omitempty"`
	StyleKey  string  `json:"styleKey"`
	Text      string  `json:"text"`
	Failure   Failure `json:"failure,omitempty"`
	Detail    string  `json:"detail,omitempty"`
}

// Failed reports whether Text is sentinel content.
func (e Entry) Failed() bool {
	return e.Failure != FailureNone
}

// Set is an ordered persona -> answer mapping.
type Set struct {
	entries []Entry
	index   map[string]int
}

// NewSet returns an empty Set sized for n entries.
func NewSet(n int) *Set {
	return &Set{
		entries: make([]Entry, 0, n),
		index:   make(map[string]int, n),
	}
}

// Put appends an entry, replacing an existing one with the same persona id in place.
func (s *Set) Put(e Entry) {
	if idx, ok := s.index[e.PersonaID]; ok {
		s.entries[idx] = e
		return
	}
	s.index[e.PersonaID] = len(s.entries)
	s.entries = append(s.entries, e)
}

// Get returns the entry for a persona id.
func (s *Set) Get(personaID string) (Entry, bool) {
	if s == nil {
		return Entry{}, false
	}
	idx, ok := s.index[personaID]
	if !ok {
		return Entry{}, false
	}
	return s.entries[idx], true
}

// Entries returns the entries in insertion order.
func (s *Set) Entries() []Entry {
	if s == nil {
		return nil
	}
	return append([]Entry(nil), s.entries...)
}

// Len returns the number of entries.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.entries)
}

// Texts returns persona id -> final text.
func (s *Set) Texts() map[string]string {
	out := make(map[string]string, s.Len())
	for _, e := range s.Entries() {
		out[e.PersonaID] = e.Text
	}
	return out
}
