//    ConstellateTopicModeller
//    Copyright: paulkdata 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"math"
)

//
// TOPIC COHERENCE
//

// UMass coherence after Mimno et al.: for topic words ranked w1..wM,
// score = mean over pairs (l < m) of log((D(wm, wl) + 1) / D(wl))
// where D() counts documents from the modelled corpus itself;
// usually negative, but the +1 smoothing can push it positive
// when the top terms always co-occur; larger is better either way

// umasscoherence - mean topic coherence of a model's top terms
func umasscoherence(topics [][]TopicTerm, dict *Dictionary, bow []BowDoc) float64 {
	if len(topics) == 0 {
		return 0
	}

	docsets := make([]map[int]struct{}, len(bow))
	for i := 0; i < len(bow); i++ {
		docsets[i] = make(map[int]struct{}, len(bow[i]))
		for _, entry := range bow[i] {
			docsets[i][entry.ID] = struct{}{}
		}
	}

	total := float64(0)
	for t := 0; t < len(topics); t++ {
		total += topiccoherence(topics[t], dict, docsets)
	}
	return total / float64(len(topics))
}

// topiccoherence - UMass score of a single ranked term list
func topiccoherence(terms []TopicTerm, dict *Dictionary, docsets []map[int]struct{}) float64 {
	// terms the dictionary does not know cannot be scored
	var ids []int
	for _, tt := range terms {
		if id, y := dict.Token2ID[tt.Term]; y {
			ids = append(ids, id)
		}
	}

	if len(ids) < 2 {
		return 0
	}

	df := func(id int) int {
		ct := 0
		for i := 0; i < len(docsets); i++ {
			if _, y := docsets[i][id]; y {
				ct += 1
			}
		}
		return ct
	}

	codf := func(a int, b int) int {
		ct := 0
		for i := 0; i < len(docsets); i++ {
			if _, y := docsets[i][a]; !y {
				continue
			}
			if _, y := docsets[i][b]; y {
				ct += 1
			}
		}
		return ct
	}

	total := float64(0)
	pairs := 0
	for m := 1; m < len(ids); m++ {
		for l := 0; l < m; l++ {
			d := df(ids[l])
			if d == 0 {
				continue
			}
			total += math.Log(float64(codf(ids[m], ids[l])+1) / float64(d))
			pairs += 1
		}
	}

	if pairs == 0 {
		return 0
	}

	return total / float64(pairs)
}
