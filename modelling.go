//    ConstellateTopicModeller
//    Copyright: paulkdata 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"fmt"
	"sort"
	"time"

	"github.com/james-bowman/nlp"
	"gonum.org/v1/gonum/mat"
)

//
// MODEL FITTING
//

const (
	LDAMODELNAME = "LDA"
	NMFMODELNAME = "NMF"
)

// TopicTerm - one term of a topic with its weight in that topic
type TopicTerm struct {
	Term   string
	Weight float64
}

// ModelOutcome - everything a fitted topic model has to report
type ModelOutcome struct {
	Name           string
	Topics         [][]TopicTerm
	Coherence      float64
	Elapsed        time.Duration
	TopicCount     int
	Passes         int
	DocsPerTopic   []int
	TopicWeights   []float64
	DocsOverTopics *mat.Dense // topics x docs
}

// modelcomparison - fit LDA and NMF on the same corpus and score both
func modelcomparison(dict *Dictionary, bow []BowDoc, ntopics int, passes int, topwords int) ([]ModelOutcome, error) {
	const (
		MSG1 = "modelcomparison() modelling %d documents with a vocabulary of %d tokens"
	)

	corpus := docsintostrings(dict, bow)
	msg(fmt.Sprintf(MSG1, len(corpus), dict.Size()), MSGNOTE)

	lda, e := runlda(corpus, ntopics, passes, topwords)
	if e != nil {
		return nil, e
	}
	lda.Coherence = umasscoherence(lda.Topics, dict, bow)

	nmf, e := runnmf(dict, bow, ntopics, passes, topwords)
	if e != nil {
		return nil, e
	}
	nmf.Coherence = umasscoherence(nmf.Topics, dict, bow)

	return []ModelOutcome{lda, nmf}, nil
}

// runlda - fit a Latent Dirichlet Allocation model; the training loop is the library's
func runlda(corpus []string, ntopics int, passes int, topwords int) (ModelOutcome, error) {
	stops := StringMapKeysIntoSlice(getstopset())
	vectoriser := nlp.NewCountVectoriser(stops...)

	lda := nlp.NewLatentDirichletAllocation(ntopics)
	lda.Processes = Config.WorkerCount
	lda.Iterations = passes
	lda.TransformationPasses = passes / 2
	if lda.TransformationPasses < 1 {
		lda.TransformationPasses = 1
	}

	pipeline := nlp.NewPipeline(vectoriser, lda)

	start := time.Now()
	docsOverTopics, e := pipeline.FitTransform(corpus...)
	elapsed := time.Now().Sub(start)

	if e != nil {
		return ModelOutcome{}, e
	}

	topicsOverWords := lda.Components()

	vocab := make([]string, len(vectoriser.Vocabulary))
	for k, v := range vectoriser.Vocabulary {
		vocab[v] = k
	}

	dot := mat.DenseCopyOf(docsOverTopics)

	oc := ModelOutcome{
		Name:           LDAMODELNAME,
		Topics:         topterms(topicsOverWords, vocab, topwords),
		Elapsed:        elapsed,
		TopicCount:     ntopics,
		Passes:         passes,
		DocsPerTopic:   docspertopic(dot),
		TopicWeights:   topicweights(dot),
		DocsOverTopics: dot,
	}

	return oc, nil
}

// runnmf - fit a Non-negative Matrix Factorization model over the bag of words corpus
func runnmf(dict *Dictionary, bow []BowDoc, ntopics int, passes int, topwords int) (ModelOutcome, error) {
	v := bowintotermdoc(dict, bow)

	model := NewNMF(ntopics, passes)

	start := time.Now()
	w, h, e := model.Factorize(v)
	elapsed := time.Now().Sub(start)

	if e != nil {
		return ModelOutcome{}, e
	}

	// W columns are topics; report them as rows the way lda.Components() does
	topicsOverWords := mat.DenseCopyOf(w.T())
	normalizerows(topicsOverWords)

	// H columns are docs; normalize so each doc distributes weight 1 across the topics
	dot := mat.DenseCopyOf(h)
	normalizecols(dot)

	oc := ModelOutcome{
		Name:           NMFMODELNAME,
		Topics:         topterms(topicsOverWords, dict.ID2Token, topwords),
		Elapsed:        elapsed,
		TopicCount:     ntopics,
		Passes:         passes,
		DocsPerTopic:   docspertopic(dot),
		TopicWeights:   topicweights(dot),
		DocsOverTopics: dot,
	}

	return oc, nil
}

type topicsorter struct {
	W string
	V float64
}

// topterms - the most significant words for each topic
func topterms(topicsOverWords mat.Matrix, vocab []string, topn int) [][]TopicTerm {
	tr, tc := topicsOverWords.Dims()

	if topn > tc {
		topn = tc
	}

	tops := make([][]TopicTerm, tr)
	for topic := 0; topic < tr; topic++ {
		tss := make([]topicsorter, tc)
		for word := 0; word < tc; word++ {
			tss[word] = topicsorter{
				W: vocab[word],
				V: topicsOverWords.At(topic, word),
			}
		}
		sort.Slice(tss, func(i, j int) bool {
			return tss[i].V > tss[j].V
		})

		terms := make([]TopicTerm, topn)
		for i := 0; i < topn; i++ {
			terms[i] = TopicTerm{Term: tss[i].W, Weight: tss[i].V}
		}
		tops[topic] = terms
	}
	return tops
}

// docspertopic - N documents have topic X as their dominant topic
func docspertopic(docsOverTopics mat.Matrix) []int {
	dr, dc := docsOverTopics.Dims()
	counter := make([]int, dr)
	for doc := 0; doc < dc; doc++ {
		max := float64(0)
		winner := 0
		for topic := 0; topic < dr; topic++ {
			if docsOverTopics.At(topic, doc) > max {
				winner = topic
				max = docsOverTopics.At(topic, doc)
			}
		}
		counter[winner] += 1
	}
	return counter
}

// topicweights - scaled total accumulated weight of each topic; the heaviest topic is 1.0
func topicweights(docsOverTopics mat.Matrix) []float64 {
	dr, dc := docsOverTopics.Dims()
	counter := make([]float64, dr)
	for doc := 0; doc < dc; doc++ {
		for topic := 0; topic < dr; topic++ {
			counter[topic] += docsOverTopics.At(topic, doc)
		}
	}

	high := float64(0)
	for i := 0; i < dr; i++ {
		if counter[i] > high {
			high = counter[i]
		}
	}

	scaled := make([]float64, dr)
	if high == 0 {
		return scaled
	}
	for i := 0; i < dr; i++ {
		scaled[i] = counter[i] / high
	}
	return scaled
}

// normalizerows - scale each row to sum to 1
func normalizerows(m *mat.Dense) {
	r, c := m.Dims()
	for i := 0; i < r; i++ {
		total := float64(0)
		for j := 0; j < c; j++ {
			total += m.At(i, j)
		}
		if total == 0 {
			continue
		}
		for j := 0; j < c; j++ {
			m.Set(i, j, m.At(i, j)/total)
		}
	}
}

// normalizecols - scale each column to sum to 1
func normalizecols(m *mat.Dense) {
	r, c := m.Dims()
	for j := 0; j < c; j++ {
		total := float64(0)
		for i := 0; i < r; i++ {
			total += m.At(i, j)
		}
		if total == 0 {
			continue
		}
		for i := 0; i < r; i++ {
			m.Set(i, j, m.At(i, j)/total)
		}
	}
}
