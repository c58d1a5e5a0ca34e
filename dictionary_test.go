//    ConstellateTopicModeller
//    Copyright: paulkdata 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"reflect"
	"testing"
)

func smallcorpus() []CleanDoc {
	return []CleanDoc{
		{ID: "d1", Tokens: []string{"whale", "whale", "ocean", "voyage"}},
		{ID: "d2", Tokens: []string{"whale", "harpoon"}},
		{ID: "d3", Tokens: []string{"ocean", "voyage", "voyage"}},
		{ID: "d4", Tokens: nil},
	}
}

func TestNewDictionary(t *testing.T) {
	t.Parallel()

	d := NewDictionary(smallcorpus())

	wantvocab := []string{"harpoon", "ocean", "voyage", "whale"}
	if !reflect.DeepEqual(d.ID2Token, wantvocab) {
		t.Fatalf("NewDictionary() vocab = %v; want %v", d.ID2Token, wantvocab)
	}

	if d.Size() != 4 {
		t.Errorf("Size() = %d; want 4", d.Size())
	}

	if d.DocCount != 4 {
		t.Errorf("DocCount = %d; want 4", d.DocCount)
	}

	// ids are dense and bidirectional
	for id, tok := range d.ID2Token {
		if d.Token2ID[tok] != id {
			t.Errorf("Token2ID[%q] = %d; want %d", tok, d.Token2ID[tok], id)
		}
	}

	wantdf := map[string]int{"harpoon": 1, "ocean": 2, "voyage": 2, "whale": 2}
	wantcf := map[string]int{"harpoon": 1, "ocean": 2, "voyage": 3, "whale": 3}
	for tok, id := range d.Token2ID {
		if d.DocFreq[id] != wantdf[tok] {
			t.Errorf("DocFreq[%q] = %d; want %d", tok, d.DocFreq[id], wantdf[tok])
		}
		if d.CorpusFreq[id] != wantcf[tok] {
			t.Errorf("CorpusFreq[%q] = %d; want %d", tok, d.CorpusFreq[id], wantcf[tok])
		}
	}
}

func TestFilterExtremes(t *testing.T) {
	t.Parallel()

	// "harpoon" (df 1) dies to nobelow; nothing hits the noabove ceiling at 1.0
	d := NewDictionary(smallcorpus())
	d.FilterExtremes(2, 1.0, 0)

	want := []string{"ocean", "voyage", "whale"}
	if !reflect.DeepEqual(d.ID2Token, want) {
		t.Fatalf("FilterExtremes(2, 1.0, 0) vocab = %v; want %v", d.ID2Token, want)
	}

	// ids must be dense again after the prune
	for id, tok := range d.ID2Token {
		if d.Token2ID[tok] != id {
			t.Errorf("post-prune Token2ID[%q] = %d; want %d", tok, d.Token2ID[tok], id)
		}
	}

	// "whale" appears in 2 of 4 docs: a 0.25 ceiling removes it and "ocean" and "voyage" too
	d2 := NewDictionary(smallcorpus())
	d2.FilterExtremes(0, 0.25, 0)

	want2 := []string{"harpoon"}
	if !reflect.DeepEqual(d2.ID2Token, want2) {
		t.Errorf("FilterExtremes(0, 0.25, 0) vocab = %v; want %v", d2.ID2Token, want2)
	}
}

func TestFilterExtremesKeepN(t *testing.T) {
	t.Parallel()

	// the cap keeps the corpus-frequent tokens: voyage (3) and whale (3) beat ocean (2) and harpoon (1)
	d := NewDictionary(smallcorpus())
	d.FilterExtremes(0, 1.0, 2)

	want := []string{"voyage", "whale"}
	if !reflect.DeepEqual(d.ID2Token, want) {
		t.Fatalf("FilterExtremes(0, 1.0, 2) vocab = %v; want %v", d.ID2Token, want)
	}

	// survivor ids stay lexical even though the cap sorted by frequency
	if d.Token2ID["voyage"] != 0 || d.Token2ID["whale"] != 1 {
		t.Errorf("post-cap ids are not lexical: %v", d.Token2ID)
	}
}

func TestDoc2Bow(t *testing.T) {
	t.Parallel()

	d := NewDictionary(smallcorpus())

	bow := d.Doc2Bow([]string{"whale", "ocean", "whale", "kraken"})

	want := BowDoc{
		{ID: d.Token2ID["ocean"], Count: 1},
		{ID: d.Token2ID["whale"], Count: 2},
	}
	if !reflect.DeepEqual(bow, want) {
		t.Errorf("Doc2Bow() = %v; want %v", bow, want)
	}

	if len(d.Doc2Bow(nil)) != 0 {
		t.Errorf("Doc2Bow(nil) should yield an empty bag")
	}
}

func TestBuildBowCorpus(t *testing.T) {
	t.Parallel()

	docs := smallcorpus()
	d := NewDictionary(docs)
	bows := buildbowcorpus(d, docs)

	if len(bows) != len(docs) {
		t.Fatalf("buildbowcorpus() returned %d bags; want %d", len(bows), len(docs))
	}

	// the empty document keeps its slot as an empty bag
	if len(bows[3]) != 0 {
		t.Errorf("buildbowcorpus()[3] = %v; want an empty bag", bows[3])
	}

	// bag totals must match token totals
	for i, doc := range docs {
		total := 0
		for _, entry := range bows[i] {
			total += entry.Count
		}
		if total != len(doc.Tokens) {
			t.Errorf("bag %d totals %d tokens; want %d", i, total, len(doc.Tokens))
		}
	}
}
