//    ConstellateTopicModeller
//    Copyright: paulkdata 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"bytes"
	"fmt"

	"github.com/danaugrs/go-tsne/tsne"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/gonum/mat"
)

//
// GRAPHING
//

const (
	CHRTWIDTH  = "900px"
	CHRTHEIGHT = "600px"
)

// coherencebarchart - one bar per model; the html+js gets injected into the web UI
func coherencebarchart(outcomes []ModelOutcome) string {
	const (
		TITLESTR   = "Model coherence (UMass; higher is better)"
		SERIESNAME = "coherence"
	)

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: TITLESTR}),
		charts.WithInitializationOpts(opts.Initialization{Width: CHRTWIDTH, Height: CHRTHEIGHT}),
	)

	names := make([]string, len(outcomes))
	data := make([]opts.BarData, len(outcomes))
	for i, oc := range outcomes {
		names[i] = oc.Name
		data[i] = opts.BarData{Value: oc.Coherence}
	}

	bar.SetXAxis(names).AddSeries(SERIESNAME, data)

	return renderhtmlandjs(bar)
}

// tsnescatter - t-Distributed Stochastic Neighbor Embedding of the docs-over-topics distribution
func tsnescatter(oc ModelOutcome) string {
	const (
		PERPLEX  = 150 // default 300
		LEARNRT  = 100 // default 100
		MAXITER  = 150 // default 300
		VERBOSE  = false
		TITLESTR = "%s: documents embedded in 2d; one series per dominant topic"
		SERIES   = "topic %d"
		SYMBSIZE = 8
	)

	docsOverTopics := oc.DocsOverTopics
	dr, dc := docsOverTopics.Dims()

	if dc < 3*dr {
		// too few documents for a meaningful embedding
		return ""
	}

	doclabels := make([]int, dc)
	for doc := 0; doc < dc; doc++ {
		max := float64(0)
		winner := 0
		for topic := 0; topic < dr; topic++ {
			if docsOverTopics.At(topic, doc) > max {
				winner = topic
				max = docsOverTopics.At(topic, doc)
			}
		}
		doclabels[doc] = winner
	}

	// the embedder wants one row per document
	var dd []float64
	for doc := 0; doc < dc; doc++ {
		for topic := 0; topic < dr; topic++ {
			dd = append(dd, docsOverTopics.At(topic, doc))
		}
	}
	wv := mat.NewDense(dc, dr, dd)

	t := tsne.NewTSNE(2, PERPLEX, LEARNRT, MAXITER, VERBOSE)
	t.EmbedData(wv, nil)

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: fmt.Sprintf(TITLESTR, oc.Name)}),
		charts.WithInitializationOpts(opts.Initialization{Width: CHRTWIDTH, Height: CHRTHEIGHT}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value"}),
	)

	series := make(map[int][]opts.ScatterData)
	for doc := 0; doc < dc; doc++ {
		x := t.Y.At(doc, 0)
		y := t.Y.At(doc, 1)
		pt := opts.ScatterData{Value: []interface{}{x, y}, SymbolSize: SYMBSIZE}
		series[doclabels[doc]] = append(series[doclabels[doc]], pt)
	}

	for topic := 0; topic < dr; topic++ {
		if len(series[topic]) == 0 {
			continue
		}
		scatter.AddSeries(fmt.Sprintf(SERIES, topic+1), series[topic])
	}

	return renderhtmlandjs(scatter)
}

// renderhtmlandjs - build a single-chart page and yield its html+js
func renderhtmlandjs(c components.Charter) string {
	p := components.NewPage()
	p.AddCharts(c)

	var buf bytes.Buffer
	err := p.Render(&buf)
	chke(err)

	return buf.String()
}
