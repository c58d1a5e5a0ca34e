//    ConstellateTopicModeller
//    Copyright: paulkdata 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

//
// TOKEN CLEANING AND CORPUS PREP
//

// CleanDoc - a document reduced to its usable tokens
type CleanDoc struct {
	ID     string
	Title  string
	Tokens []string
}

var (
	TheLemmatizer = buildlemmatizer()
	accentstrip   = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

func buildlemmatizer() *golem.Lemmatizer {
	lem, e := golem.New(en.New())
	chkf(e, "buildlemmatizer()")
	return lem
}

// stripaccents - résumé --> resume, naïve --> naive, etc.
func stripaccents(u string) string {
	s, _, e := transform.String(accentstrip, u)
	if e != nil {
		return u
	}
	return s
}

// scrubtoken - lowercase, deaccent, strip, lemmatize; the bool reports whether the token survived
func scrubtoken(token string, stops map[string]struct{}) (string, bool) {
	tok := strings.ToLower(strings.TrimSpace(token))
	tok = stripaccents(tok)

	// "1848" and "b612" carry no topical weight
	for _, r := range tok {
		if unicode.IsDigit(r) {
			return "", false
		}
	}

	var sb strings.Builder
	for _, r := range tok {
		if r >= 'a' && r <= 'z' {
			sb.WriteRune(r)
		}
	}
	tok = sb.String()

	if len(tok) < MINTOKENLENGTH {
		return "", false
	}

	if _, y := stops[tok]; y {
		return "", false
	}

	lemma := strings.ToLower(TheLemmatizer.Lemma(tok))

	if len(lemma) < MINTOKENLENGTH {
		return "", false
	}

	if _, y := stops[lemma]; y {
		return "", false
	}

	return lemma, true
}

// cleandocs - turn raw unigram counts into per-document token lists
func cleandocs(docs []DatasetDocument, stops map[string]struct{}) []CleanDoc {
	const (
		MSG1 = "cleandocs() kept %d of %d token instances"
	)

	kept := 0
	seen := 0

	cleaned := make([]CleanDoc, len(docs))
	for i := 0; i < len(docs); i++ {
		cleaned[i].ID = docs[i].ID
		cleaned[i].Title = docs[i].Title

		// map iteration order is random; the corpus should not be
		uu := StringMapKeysIntoSlice(docs[i].UnigramCount)
		sort.Strings(uu)

		var tokens []string
		for _, u := range uu {
			ct := docs[i].UnigramCount[u]
			seen += ct
			scrubbed, ok := scrubtoken(u, stops)
			if !ok {
				continue
			}
			kept += ct
			for j := 0; j < ct; j++ {
				tokens = append(tokens, scrubbed)
			}
		}
		cleaned[i].Tokens = tokens
	}

	msg(fmt.Sprintf(MSG1, kept, seen), MSGFYI)

	return cleaned
}

// docsintostrings - rebuild per-document text from the bags so both models see the same vocabulary
func docsintostrings(dict *Dictionary, bow []BowDoc) []string {
	ss := make([]string, 0, len(bow))
	for i := 0; i < len(bow); i++ {
		if len(bow[i]) == 0 {
			// the vectoriser has nothing to count in an empty bag
			continue
		}
		var sb strings.Builder
		for _, entry := range bow[i] {
			w := dict.ID2Token[entry.ID]
			for j := 0; j < entry.Count; j++ {
				sb.WriteString(w)
				sb.WriteString(" ")
			}
		}
		ss = append(ss, strings.TrimSpace(sb.String()))
	}
	return ss
}
