//    ConstellateTopicModeller
//    Copyright: paulkdata 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

//
// NON-NEGATIVE MATRIX FACTORIZATION
//

// no library in the module graph offers NMF, so we factorize by hand:
// V (terms x docs) ≈ W (terms x topics) * H (topics x docs)
// multiplicative updates per Lee & Seung minimizing the Frobenius norm;
// the update rules cannot produce a negative value from non-negative factors

const (
	NMFEVALFREQUENCY = 5
	NMFEPSILON       = 1e-9
)

type NMF struct {
	K      int
	Passes int
	Tol    float64
	Rnd    *rand.Rand
}

func NewNMF(k int, passes int) *NMF {
	return &NMF{
		K:      k,
		Passes: passes,
		Tol:    NMFTOLERANCE,
		Rnd:    rand.New(rand.NewSource(int64(k*passes + 1))),
	}
}

// Factorize - fit W and H to v; stops at the pass budget or when the relative improvement drops below Tol
func (n *NMF) Factorize(v *mat.Dense) (*mat.Dense, *mat.Dense, error) {
	const (
		MSG1  = "NMF pass %d: residual %.6f"
		FAIL1 = "Factorize() needs a matrix with at least %d rows and columns"
	)

	rows, cols := v.Dims()
	if rows < n.K || cols < n.K {
		return nil, nil, errors.New(fmt.Sprintf(FAIL1, n.K))
	}

	w := mat.NewDense(rows, n.K, nil)
	h := mat.NewDense(n.K, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < n.K; j++ {
			w.Set(i, j, n.Rnd.Float64()+NMFEPSILON)
		}
	}
	for i := 0; i < n.K; i++ {
		for j := 0; j < cols; j++ {
			h.Set(i, j, n.Rnd.Float64()+NMFEPSILON)
		}
	}

	vnorm := mat.Norm(v, 2)
	if vnorm == 0 {
		return w, h, nil
	}

	previous := math.MaxFloat64

	var wtv, wtw, wtwh mat.Dense
	var vht, hht, whht mat.Dense

	for pass := 0; pass < n.Passes; pass++ {
		// H <- H .* (WᵀV) ./ (WᵀW H)
		wtv.Mul(w.T(), v)
		wtw.Mul(w.T(), w)
		wtwh.Mul(&wtw, h)
		for i := 0; i < n.K; i++ {
			for j := 0; j < cols; j++ {
				h.Set(i, j, h.At(i, j)*wtv.At(i, j)/(wtwh.At(i, j)+NMFEPSILON))
			}
		}

		// W <- W .* (VHᵀ) ./ (W H Hᵀ)
		vht.Mul(v, h.T())
		hht.Mul(h, h.T())
		whht.Mul(w, &hht)
		for i := 0; i < rows; i++ {
			for j := 0; j < n.K; j++ {
				w.Set(i, j, w.At(i, j)*vht.At(i, j)/(whht.At(i, j)+NMFEPSILON))
			}
		}

		if (pass+1)%NMFEVALFREQUENCY == 0 || pass == n.Passes-1 {
			residual := n.residual(v, w, h) / vnorm
			msg(fmt.Sprintf(MSG1, pass+1, residual), MSGTMI)
			if previous-residual < n.Tol {
				break
			}
			previous = residual
		}
	}

	return w, h, nil
}

// residual - the Frobenius norm of V - WH
func (n *NMF) residual(v *mat.Dense, w *mat.Dense, h *mat.Dense) float64 {
	var wh mat.Dense
	wh.Mul(w, h)
	wh.Sub(v, &wh)
	return mat.Norm(&wh, 2)
}

// bowintotermdoc - a bag of words corpus as a dense terms x docs matrix; empty bags are skipped
func bowintotermdoc(dict *Dictionary, bow []BowDoc) *mat.Dense {
	var kept []BowDoc
	for i := 0; i < len(bow); i++ {
		if len(bow[i]) > 0 {
			kept = append(kept, bow[i])
		}
	}

	v := mat.NewDense(dict.Size(), len(kept), nil)
	for doc := 0; doc < len(kept); doc++ {
		for _, entry := range kept[doc] {
			v.Set(entry.ID, doc, float64(entry.Count))
		}
	}
	return v
}
