//    ConstellateTopicModeller
//    Copyright: paulkdata 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
)

//
// RESULTS REPORTING
//

// printcomparison - the model vs model table that the whole exercise builds towards
func printcomparison(outcomes []ModelOutcome) {
	tw := tablewriter.NewWriter(os.Stdout)
	tw.SetHeader([]string{"Model", "Coherence", "Seconds", "Topics", "Passes"})
	tw.SetBorder(false)

	for _, oc := range outcomes {
		tw.Append([]string{
			oc.Name,
			fmt.Sprintf("%.4f", oc.Coherence),
			fmt.Sprintf("%.3f", oc.Elapsed.Seconds()),
			fmt.Sprintf("%d", oc.TopicCount),
			fmt.Sprintf("%d", oc.Passes),
		})
	}

	tw.Render()
}

// printtopics - the top terms of every topic of every model
func printtopics(outcomes []ModelOutcome) {
	const (
		HEAD = "S1%s topicsS0"
		ROW  = "C1topic %dC0: %s  C6[%d docs (%.1f%%); weight %.2f]C0"
	)

	for _, oc := range outcomes {
		_, dc := oc.DocsOverTopics.Dims()
		msg(styleoutput(fmt.Sprintf(HEAD, oc.Name)), MSGMAND)
		for topic := 0; topic < oc.TopicCount; topic++ {
			ww := make([]string, len(oc.Topics[topic]))
			for i, tt := range oc.Topics[topic] {
				ww[i] = tt.Term
			}
			pct := float64(0)
			if dc > 0 {
				pct = float64(oc.DocsPerTopic[topic]) / float64(dc) * 100
			}
			out := fmt.Sprintf(ROW, topic+1, strings.Join(ww, ", "), oc.DocsPerTopic[topic], pct, oc.TopicWeights[topic])
			msg(coloroutput(out), MSGMAND)
		}
	}
}

// htmlsummarytable - the comparison table for the web UI
func htmlsummarytable(outcomes []ModelOutcome) string {
	const (
		FULLTABLE = `
	<table class="modelsummary"><tbody>
	%s
	</tbody></table>
	<hr>`

		TABLETOP = `
    <tr class="vectorrow">
        <td class="vectorrank" colspan = "5">Topic model comparison</td>
    </tr>
	<tr class="vectorrow">
		<td class="vectorrank">Model</td>
		<td class="vectorrank">Coherence (UMass)</td>
		<td class="vectorrank">Seconds</td>
		<td class="vectorrank">Topics</td>
		<td class="vectorrank">Passes</td>
	</tr>
    %s`

		TABLEROW = `
	<tr class="%s">%s
	</tr>`

		TABLEELEM = `
		<td class="vectorsent">%s</td>
		<td class="vectorscore">%.4f</td>
		<td class="vectorscore">%.3f</td>
		<td class="vectorrank">%d</td>
		<td class="vectorrank">%d</td>`

		NTH = 2
	)

	var tablecolumn []string
	for _, oc := range outcomes {
		r := fmt.Sprintf(TABLEELEM, oc.Name, oc.Coherence, oc.Elapsed.Seconds(), oc.TopicCount, oc.Passes)
		tablecolumn = append(tablecolumn, r)
	}

	var tablerows []string
	for i := range tablecolumn {
		rn := "vectorrow"
		if i%NTH == 0 {
			rn = "nthrow"
		}
		tablerows = append(tablerows, fmt.Sprintf(TABLEROW, rn, tablecolumn[i]))
	}

	tableout := fmt.Sprintf(TABLETOP, strings.Join(tablerows, "\n"))
	tableout = fmt.Sprintf(FULLTABLE, tableout)
	return tableout
}

// htmltopicsummary - html table that reports on top words and topic weights in one model
func htmltopicsummary(oc ModelOutcome) string {
	const (
		FULLTABLE = `
	<table class="topicwords"><tbody>
	%s
	</tbody></table>
	`

		TABLETOP = `
    <tr class="vectorrow">
        <td class="vectorrank" colspan = "4">Topic model via %s</td>
    </tr>
	<tr class="vectorrow">
		<td class="vectorrank">Topic</td>
		<td class="vectorrank">Top %d words associated with each topic</td>
		<td class="vectorrank"># of documents with topic N as their dominant topic</td>
		<td class="vectorrank">scaled total accumulated weight of each topic</td>
	</tr>
    %s`

		TABLEROW = `
	<tr class="%s">%s
	</tr>`

		TABLEELEM = `
		<td class="vectorrank">%d</td>
		<td class="vectorsent">%s</td>
		<td class="vectorsent">%d (%.2f%%)</td>
		<td class="vectorsent">%.2f%%</td>`

		NTH = 2
	)

	_, dc := oc.DocsOverTopics.Dims()

	topn := 0
	if len(oc.Topics) > 0 {
		topn = len(oc.Topics[0])
	}

	var tablecolumn []string
	for topic := 0; topic < oc.TopicCount; topic++ {
		ww := make([]string, len(oc.Topics[topic]))
		for i, tt := range oc.Topics[topic] {
			ww[i] = tt.Term
		}
		data := strings.Join(ww, ", ")
		pct := float64(0)
		if dc > 0 {
			pct = float64(oc.DocsPerTopic[topic]) / float64(dc) * 100
		}
		r := fmt.Sprintf(TABLEELEM, topic+1, data, oc.DocsPerTopic[topic], pct, oc.TopicWeights[topic]*100)
		tablecolumn = append(tablecolumn, r)
	}

	var tablerows []string
	for i := range tablecolumn {
		rn := "vectorrow"
		if i%NTH == 0 {
			rn = "nthrow"
		}
		tablerows = append(tablerows, fmt.Sprintf(TABLEROW, rn, tablecolumn[i]))
	}

	tableout := fmt.Sprintf(TABLETOP, oc.Name, topn, strings.Join(tablerows, "\n"))
	tableout = fmt.Sprintf(FULLTABLE, tableout)
	return tableout
}
