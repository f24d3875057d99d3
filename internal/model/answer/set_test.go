package answer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueryNormalized(t *testing.T) {
	q := Query{
		Question: "  What is justice?\n",
		Language: " Hindi ",
		Personas: []string{"Lord Krishna", "", "Dr. Ambedkar", "Lord Krishna", "  "},
	}.Normalized()

	assert.Equal(t, "What is justice?", q.Question)
	assert.Equal(t, "Hindi", q.Language)
	assert.Equal(t, []string{"Lord Krishna", "Dr. Ambedkar"}, q.Personas)
}

func TestSetKeepsInsertionOrder(t *testing.T) {
	set := NewSet(3)
	set.Put(Entry{PersonaID: "b", Text: "1"})
	set.Put(Entry{PersonaID: "a", Text: "2"})
	set.Put(Entry{PersonaID: "b", Text: "3", Failure: FailureTranslation})

	entries := set.Entries()
	if assert.Len(t, entries, 2) {
		assert.Equal(t, "b", entries[0].PersonaID)
		assert.Equal(t, "3", entries[0].Text)
		assert.True(t, entries[0].Failed())
		assert.False(t, entries[1].Failed())
	}
	assert.Equal(t, map[string]string{"a": "2", "b": "3"}, set.Texts())
}

func TestNilSet(t *testing.T) {
	var set *Set
	assert.Equal(t, 0, set.Len())
	assert.Nil(t, set.Entries())
	_, ok := set.Get("x")
	assert.False(t, ok)
}
