package main

import (
	"reflect"
	"testing"

	"github.com/zhouzirui/cm-assistant/backend/internal/model/answer"
)

func TestSplitList(t *testing.T) {
	got := splitList(" Lord Krishna, ,Dr. Ambedkar,")
	want := []string{"Lord Krishna", "Dr. Ambedkar"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if splitList("") != nil {
		t.Fatal("expected nil for empty input")
	}
}

func TestEntryHeading(t *testing.T) {
	cases := []struct {
		entry answer.Entry
		want  string
	}{
		{answer.Entry{PersonaID: "Lord Krishna", Label: "Lord Krishna", Icon: "🕉"}, "🕉 Lord Krishna"},
		{answer.Entry{PersonaID: "Dr. Ambedkar", Label: "Dr. Ambedkar"}, "Dr. Ambedkar"},
		{answer.Entry{PersonaID: "Chanakya"}, "Chanakya"},
	}
	for _, tc := range cases {
		if got := entryHeading(tc.entry); got != tc.want {
			t.Fatalf("expected %q, got %q", tc.want, got)
		}
	}
}
