//    ConstellateTopicModeller
//    Copyright: paulkdata 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"testing"

	"gonum.org/v1/gonum/mat"
)

// a small term x doc matrix with two obvious blocks
func blockmatrix() *mat.Dense {
	return mat.NewDense(6, 4, []float64{
		5, 4, 0, 0,
		4, 5, 0, 0,
		3, 4, 0, 0,
		0, 0, 5, 4,
		0, 0, 4, 5,
		0, 0, 3, 4,
	})
}

func TestNMFFactorize(t *testing.T) {
	t.Parallel()

	v := blockmatrix()
	model := NewNMF(2, 50)

	w, h, e := model.Factorize(v)
	if e != nil {
		t.Fatalf("Factorize() failed: %v", e)
	}

	wr, wc := w.Dims()
	hr, hc := h.Dims()
	if wr != 6 || wc != 2 {
		t.Errorf("W is %dx%d; want 6x2", wr, wc)
	}
	if hr != 2 || hc != 4 {
		t.Errorf("H is %dx%d; want 2x4", hr, hc)
	}

	for i := 0; i < wr; i++ {
		for j := 0; j < wc; j++ {
			if w.At(i, j) < 0 {
				t.Fatalf("W[%d,%d] = %v is negative", i, j, w.At(i, j))
			}
		}
	}
	for i := 0; i < hr; i++ {
		for j := 0; j < hc; j++ {
			if h.At(i, j) < 0 {
				t.Fatalf("H[%d,%d] = %v is negative", i, j, h.At(i, j))
			}
		}
	}

	// a clean two-block matrix should reconstruct well inside the pass budget
	residual := model.residual(v, w, h) / mat.Norm(v, 2)
	if residual > 0.2 {
		t.Errorf("relative residual after fitting = %v; want < 0.2", residual)
	}
}

func TestNMFDeterministic(t *testing.T) {
	t.Parallel()

	w1, h1, e1 := NewNMF(2, 20).Factorize(blockmatrix())
	w2, h2, e2 := NewNMF(2, 20).Factorize(blockmatrix())
	if e1 != nil || e2 != nil {
		t.Fatalf("Factorize() failed: %v %v", e1, e2)
	}

	if !mat.EqualApprox(w1, w2, 1e-12) || !mat.EqualApprox(h1, h2, 1e-12) {
		t.Errorf("two fits with the same seed disagree")
	}
}

func TestNMFTooSmall(t *testing.T) {
	t.Parallel()

	v := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	if _, _, e := NewNMF(3, 10).Factorize(v); e == nil {
		t.Errorf("Factorize() accepted a 2x2 matrix for 3 topics")
	}
}

func TestBowIntoTermDoc(t *testing.T) {
	t.Parallel()

	docs := []CleanDoc{
		{ID: "d1", Tokens: []string{"whale", "whale", "ocean"}},
		{ID: "d2", Tokens: nil},
		{ID: "d3", Tokens: []string{"ocean"}},
	}
	dict := NewDictionary(docs)
	bow := buildbowcorpus(dict, docs)

	v := bowintotermdoc(dict, bow)

	r, c := v.Dims()
	if r != dict.Size() {
		t.Errorf("term rows = %d; want %d", r, dict.Size())
	}
	// the empty bag does not get a column
	if c != 2 {
		t.Fatalf("doc columns = %d; want 2", c)
	}

	if v.At(dict.Token2ID["whale"], 0) != 2 {
		t.Errorf("V[whale, d1] = %v; want 2", v.At(dict.Token2ID["whale"], 0))
	}
	if v.At(dict.Token2ID["ocean"], 1) != 1 {
		t.Errorf("V[ocean, d3] = %v; want 1", v.At(dict.Token2ID["ocean"], 1))
	}
}
