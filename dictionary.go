//    ConstellateTopicModeller
//    Copyright: paulkdata 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"fmt"
	"sort"
)

//
// DICTIONARY AND BAGS OF WORDS
//

// Dictionary - a bidirectional token/id mapping with corpus statistics; ids are dense: 0..V-1
type Dictionary struct {
	Token2ID   map[string]int
	ID2Token   []string
	DocFreq    []int // number of documents a token appears in
	CorpusFreq []int // total count of a token across all documents
	DocCount   int
}

// BowEntry - one (token id, count) pair of a bag of words
type BowEntry struct {
	ID    int
	Count int
}

// BowDoc - a document as a bag of words; sorted by token id
type BowDoc []BowEntry

// NewDictionary - build a Dictionary over cleaned documents
func NewDictionary(docs []CleanDoc) *Dictionary {
	df := make(map[string]int)
	cf := make(map[string]int)

	for i := 0; i < len(docs); i++ {
		indoc := make(map[string]int)
		for _, t := range docs[i].Tokens {
			indoc[t] += 1
		}
		for t, ct := range indoc {
			df[t] += 1
			cf[t] += ct
		}
	}

	vocab := StringMapKeysIntoSlice(df)
	sort.Strings(vocab)

	d := &Dictionary{
		Token2ID:   make(map[string]int, len(vocab)),
		ID2Token:   vocab,
		DocFreq:    make([]int, len(vocab)),
		CorpusFreq: make([]int, len(vocab)),
		DocCount:   len(docs),
	}

	for id, t := range vocab {
		d.Token2ID[t] = id
		d.DocFreq[id] = df[t]
		d.CorpusFreq[id] = cf[t]
	}

	return d
}

// Size - the number of tokens in the Dictionary
func (d *Dictionary) Size() int {
	return len(d.ID2Token)
}

// FilterExtremes - prune the vocabulary the way gensim's filter_extremes() does; ids are reassigned densely
func (d *Dictionary) FilterExtremes(nobelow int, noabove float64, keepn int) {
	const (
		MSG1 = "FilterExtremes() pruned the dictionary: %d tokens --> %d tokens"
	)

	was := d.Size()

	ceiling := int(noabove * float64(d.DocCount))

	var survivors []int
	for id := 0; id < d.Size(); id++ {
		if d.DocFreq[id] < nobelow {
			continue
		}
		if d.DocFreq[id] > ceiling {
			continue
		}
		survivors = append(survivors, id)
	}

	if keepn > 0 && len(survivors) > keepn {
		sort.Slice(survivors, func(i, j int) bool {
			a := survivors[i]
			b := survivors[j]
			if d.CorpusFreq[a] != d.CorpusFreq[b] {
				return d.CorpusFreq[a] > d.CorpusFreq[b]
			}
			return d.ID2Token[a] < d.ID2Token[b]
		})
		survivors = survivors[0:keepn]
	}

	// keep the id order lexical regardless of how the cap reordered things
	sort.Slice(survivors, func(i, j int) bool {
		return d.ID2Token[survivors[i]] < d.ID2Token[survivors[j]]
	})

	t2i := make(map[string]int, len(survivors))
	i2t := make([]string, len(survivors))
	ndf := make([]int, len(survivors))
	ncf := make([]int, len(survivors))

	for nid, oid := range survivors {
		t := d.ID2Token[oid]
		t2i[t] = nid
		i2t[nid] = t
		ndf[nid] = d.DocFreq[oid]
		ncf[nid] = d.CorpusFreq[oid]
	}

	d.Token2ID = t2i
	d.ID2Token = i2t
	d.DocFreq = ndf
	d.CorpusFreq = ncf

	msg(fmt.Sprintf(MSG1, was, d.Size()), MSGFYI)
}

// Doc2Bow - turn a token list into a bag of words; tokens not in the Dictionary vanish
func (d *Dictionary) Doc2Bow(tokens []string) BowDoc {
	counts := make(map[int]int)
	for _, t := range tokens {
		if id, y := d.Token2ID[t]; y {
			counts[id] += 1
		}
	}

	bow := make(BowDoc, 0, len(counts))
	for id, ct := range counts {
		bow = append(bow, BowEntry{ID: id, Count: ct})
	}
	sort.Slice(bow, func(i, j int) bool {
		return bow[i].ID < bow[j].ID
	})

	return bow
}

// buildbowcorpus - every document as a bag of words; empty documents yield empty bags
func buildbowcorpus(d *Dictionary, docs []CleanDoc) []BowDoc {
	bows := make([]BowDoc, len(docs))
	for i := 0; i < len(docs); i++ {
		bows[i] = d.Doc2Bow(docs[i].Tokens)
	}
	return bows
}
