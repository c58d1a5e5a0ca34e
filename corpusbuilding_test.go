//    ConstellateTopicModeller
//    Copyright: paulkdata 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"reflect"
	"testing"
)

func teststopset() map[string]struct{} {
	return ToSet([]string{"about", "because", "which", "their"})
}

func TestScrubToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		give string
		want string
		keep bool
	}{
		{"Hamlet", "hamlet", true},
		{"cities", "city", true},
		{"Studies", "study", true},
		{"résumé", "resume", true},
		{"naïveté", "naivete", true},
		{"don't", "dont", true},
		{"Whales", "whale", true},
		{"zzzzqqq", "zzzzqqq", true}, // not in the lemmatizer's dictionary: passes through
		{"act", "", false},           // too short
		{"a", "", false},
		{"", "", false},
		{"1848", "", false},  // digits
		{"b612x", "", false}, // digits buried in the token
		{"because", "", false},
		{"Which", "", false},
		{"...", "", false},
	}

	stops := teststopset()

	for _, tt := range tests {
		got, keep := scrubtoken(tt.give, stops)
		if keep != tt.keep {
			t.Errorf("scrubtoken(%q) kept = %v; want %v", tt.give, keep, tt.keep)
			continue
		}
		if keep && got != tt.want {
			t.Errorf("scrubtoken(%q) = %q; want %q", tt.give, got, tt.want)
		}
	}
}

func TestCleanDocs(t *testing.T) {
	t.Parallel()

	docs := []DatasetDocument{
		{
			ID:    "doc-1",
			Title: "first",
			UnigramCount: map[string]int{
				"whale":   3,
				"ocean":   2,
				"because": 5,
				"it":      9,
			},
		},
		{
			ID:           "doc-2",
			Title:        "empty",
			UnigramCount: map[string]int{"a": 4, "1848": 1},
		},
	}

	cleaned := cleandocs(docs, teststopset())

	if len(cleaned) != 2 {
		t.Fatalf("cleandocs() returned %d docs; want 2", len(cleaned))
	}

	// counts expand and the expansion is in lexical token order
	want := []string{"ocean", "ocean", "whale", "whale", "whale"}
	if !reflect.DeepEqual(cleaned[0].Tokens, want) {
		t.Errorf("cleandocs()[0].Tokens = %v; want %v", cleaned[0].Tokens, want)
	}

	// a document whose tokens all die stays in the corpus as an empty doc
	if len(cleaned[1].Tokens) != 0 {
		t.Errorf("cleandocs()[1].Tokens = %v; want none", cleaned[1].Tokens)
	}

	if cleaned[0].ID != "doc-1" || cleaned[1].ID != "doc-2" {
		t.Errorf("cleandocs() lost document identity: %q, %q", cleaned[0].ID, cleaned[1].ID)
	}
}

func TestCleanDocsDeterministic(t *testing.T) {
	t.Parallel()

	docs := []DatasetDocument{
		{ID: "d", UnigramCount: map[string]int{
			"whale": 2, "ocean": 1, "harpoon": 1, "voyage": 3, "captain": 2,
		}},
	}

	first := cleandocs(docs, teststopset())
	for i := 0; i < 10; i++ {
		again := cleandocs(docs, teststopset())
		if !reflect.DeepEqual(first[0].Tokens, again[0].Tokens) {
			t.Fatalf("cleandocs() is order-unstable: %v vs %v", first[0].Tokens, again[0].Tokens)
		}
	}
}

func TestDocsIntoStrings(t *testing.T) {
	t.Parallel()

	docs := []CleanDoc{
		{ID: "a", Tokens: []string{"whale", "whale", "ocean"}},
		{ID: "b", Tokens: nil},
		{ID: "c", Tokens: []string{"ocean"}},
	}

	dict := NewDictionary(docs)
	bow := buildbowcorpus(dict, docs)

	ss := docsintostrings(dict, bow)

	// the empty document is dropped: the vectoriser cannot count nothing
	if len(ss) != 2 {
		t.Fatalf("docsintostrings() returned %d docs; want 2", len(ss))
	}
	if ss[0] != "ocean whale whale" {
		t.Errorf("docsintostrings()[0] = %q; want %q", ss[0], "ocean whale whale")
	}
	if ss[1] != "ocean" {
		t.Errorf("docsintostrings()[1] = %q; want %q", ss[1], "ocean")
	}
}
