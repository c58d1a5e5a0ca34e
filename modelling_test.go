//    ConstellateTopicModeller
//    Copyright: paulkdata 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"math"
	"reflect"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestTopTerms(t *testing.T) {
	t.Parallel()

	// 2 topics x 4 words
	tow := mat.NewDense(2, 4, []float64{
		0.1, 0.7, 0.2, 0.0,
		0.4, 0.0, 0.1, 0.5,
	})
	vocab := []string{"apple", "berry", "cherry", "damson"}

	tops := topterms(tow, vocab, 2)

	if len(tops) != 2 {
		t.Fatalf("topterms() returned %d topics; want 2", len(tops))
	}

	want0 := []string{"berry", "cherry"}
	want1 := []string{"damson", "apple"}
	for i, wt := range [][]string{want0, want1} {
		got := make([]string, len(tops[i]))
		for j, tt := range tops[i] {
			got[j] = tt.Term
		}
		if !reflect.DeepEqual(got, wt) {
			t.Errorf("topic %d terms = %v; want %v", i, got, wt)
		}
	}

	if tops[0][0].Weight != 0.7 {
		t.Errorf("top weight of topic 0 = %v; want 0.7", tops[0][0].Weight)
	}

	// asking for more terms than the vocabulary has must not panic
	all := topterms(tow, vocab, 99)
	if len(all[0]) != 4 {
		t.Errorf("topterms() with an oversized topn returned %d terms; want 4", len(all[0]))
	}
}

func TestDocsPerTopic(t *testing.T) {
	t.Parallel()

	// 2 topics x 3 docs: docs 0 and 2 belong to topic 1, doc 1 to topic 0
	dot := mat.NewDense(2, 3, []float64{
		0.2, 0.9, 0.3,
		0.8, 0.1, 0.7,
	})

	got := docspertopic(dot)
	want := []int{1, 2}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("docspertopic() = %v; want %v", got, want)
	}
}

func TestTopicWeights(t *testing.T) {
	t.Parallel()

	dot := mat.NewDense(2, 3, []float64{
		0.2, 0.9, 0.3, // totals 1.4
		0.8, 0.1, 0.7, // totals 1.6
	})

	got := topicweights(dot)
	if math.Abs(got[1]-1.0) > 1e-12 {
		t.Errorf("heaviest topic weight = %v; want 1.0", got[1])
	}
	if math.Abs(got[0]-1.4/1.6) > 1e-12 {
		t.Errorf("lighter topic weight = %v; want %v", got[0], 1.4/1.6)
	}

	zeros := topicweights(mat.NewDense(2, 2, nil))
	if zeros[0] != 0 || zeros[1] != 0 {
		t.Errorf("topicweights() of a zero matrix = %v; want zeros", zeros)
	}
}

func TestNormalizeRowsAndCols(t *testing.T) {
	t.Parallel()

	m := mat.NewDense(2, 3, []float64{
		1, 2, 1,
		0, 0, 0, // an all-zero row must survive untouched
	})
	normalizerows(m)

	rowtotal := m.At(0, 0) + m.At(0, 1) + m.At(0, 2)
	if math.Abs(rowtotal-1.0) > 1e-12 {
		t.Errorf("row 0 sums to %v; want 1.0", rowtotal)
	}
	if m.At(1, 0) != 0 || m.At(1, 1) != 0 || m.At(1, 2) != 0 {
		t.Errorf("the zero row changed: %v %v %v", m.At(1, 0), m.At(1, 1), m.At(1, 2))
	}

	n := mat.NewDense(3, 2, []float64{
		1, 0,
		2, 0,
		1, 0,
	})
	normalizecols(n)

	coltotal := n.At(0, 0) + n.At(1, 0) + n.At(2, 0)
	if math.Abs(coltotal-1.0) > 1e-12 {
		t.Errorf("column 0 sums to %v; want 1.0", coltotal)
	}
	if n.At(0, 1) != 0 || n.At(1, 1) != 0 || n.At(2, 1) != 0 {
		t.Errorf("the zero column changed")
	}
}

// no t.Parallel(): the test adjusts the global Config and redirects HOME for the stop list
func TestModelComparison(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	was := Config
	Config.WorkerCount = 2
	defer func() { Config = was }()

	docs := []CleanDoc{
		{ID: "d1", Tokens: []string{"whale", "whale", "ocean", "voyage"}},
		{ID: "d2", Tokens: []string{"whale", "ocean", "ocean", "voyage"}},
		{ID: "d3", Tokens: []string{"grain", "harvest", "harvest", "field"}},
		{ID: "d4", Tokens: []string{"grain", "grain", "harvest", "field"}},
		{ID: "d5", Tokens: nil},
	}
	dict := NewDictionary(docs)
	bow := buildbowcorpus(dict, docs)

	outcomes, e := modelcomparison(dict, bow, 2, 10, 3)
	if e != nil {
		t.Fatalf("modelcomparison() failed: %v", e)
	}

	if len(outcomes) != 2 {
		t.Fatalf("got %d outcomes; want 2", len(outcomes))
	}
	if outcomes[0].Name != LDAMODELNAME || outcomes[1].Name != NMFMODELNAME {
		t.Errorf("outcome names = %q, %q", outcomes[0].Name, outcomes[1].Name)
	}

	for _, oc := range outcomes {
		if oc.TopicCount != 2 || oc.Passes != 10 {
			t.Errorf("%s: TopicCount/Passes = %d/%d; want 2/10", oc.Name, oc.TopicCount, oc.Passes)
		}
		if len(oc.Topics) != 2 {
			t.Fatalf("%s: got %d topics; want 2", oc.Name, len(oc.Topics))
		}
		for topic := 0; topic < 2; topic++ {
			if len(oc.Topics[topic]) == 0 || len(oc.Topics[topic]) > 3 {
				t.Errorf("%s: topic %d has %d terms; want 1-3", oc.Name, topic, len(oc.Topics[topic]))
			}
		}

		// the empty document is skipped, so four docs reach the models
		dr, dc := oc.DocsOverTopics.Dims()
		if dr != 2 || dc != 4 {
			t.Errorf("%s: DocsOverTopics is %dx%d; want 2x4", oc.Name, dr, dc)
		}
		total := 0
		for _, ct := range oc.DocsPerTopic {
			total += ct
		}
		if total != 4 {
			t.Errorf("%s: DocsPerTopic totals %d docs; want 4", oc.Name, total)
		}
		if len(oc.TopicWeights) != 2 {
			t.Errorf("%s: TopicWeights = %v", oc.Name, oc.TopicWeights)
		}
		if oc.Coherence != oc.Coherence {
			t.Errorf("%s: coherence is NaN", oc.Name)
		}
		if oc.Elapsed < 0 {
			t.Errorf("%s: negative elapsed time %v", oc.Name, oc.Elapsed)
		}
	}
}

func TestRunNMFOutcome(t *testing.T) {
	t.Parallel()

	docs := []CleanDoc{
		{ID: "d1", Tokens: []string{"whale", "whale", "ocean", "voyage"}},
		{ID: "d2", Tokens: []string{"whale", "ocean", "ocean"}},
		{ID: "d3", Tokens: []string{"grain", "harvest", "harvest"}},
		{ID: "d4", Tokens: []string{"grain", "grain", "harvest"}},
	}
	dict := NewDictionary(docs)
	bow := buildbowcorpus(dict, docs)

	oc, e := runnmf(dict, bow, 2, 30, 3)
	if e != nil {
		t.Fatalf("runnmf() failed: %v", e)
	}

	if oc.Name != NMFMODELNAME {
		t.Errorf("Name = %q; want %q", oc.Name, NMFMODELNAME)
	}
	if len(oc.Topics) != 2 {
		t.Fatalf("got %d topics; want 2", len(oc.Topics))
	}
	if len(oc.Topics[0]) != 3 {
		t.Errorf("got %d top terms; want 3", len(oc.Topics[0]))
	}
	if len(oc.DocsPerTopic) != 2 || len(oc.TopicWeights) != 2 {
		t.Errorf("per-topic stats have the wrong shape: %v %v", oc.DocsPerTopic, oc.TopicWeights)
	}

	total := 0
	for _, ct := range oc.DocsPerTopic {
		total += ct
	}
	if total != 4 {
		t.Errorf("DocsPerTopic totals %d docs; want 4", total)
	}

	dr, dc := oc.DocsOverTopics.Dims()
	if dr != 2 || dc != 4 {
		t.Errorf("DocsOverTopics is %dx%d; want 2x4", dr, dc)
	}
}
