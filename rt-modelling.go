//    ConstellateTopicModeller
//    Copyright: paulkdata 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

//
// ROUTES
//

// RunOutputJSON - what the modelling route sends back to the browser
type RunOutputJSON struct {
	Title   string `json:"title"`
	Summary string `json:"summary"`
	Found   string `json:"found"`
	Image   string `json:"image"`
}

// RtFrontpage - list the known datasets and the archived runs
func RtFrontpage(c echo.Context) error {
	const (
		PAGE = `<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>%s</title></head>
<body>
<h1>%s (v%s)</h1>
<h2>known datasets</h2>
<ul>
%s
</ul>
<h2>archived runs</h2>
<ul>
%s
</ul>
</body>
</html>`
		DSROW  = `<li><a href="/model/run/%s">%s</a>: %s</li>`
		RUNROW = `<li><a href="/runs/fetch/%s">%s</a>: %s (%s)</li>`
		NORUNS = `<li>(none yet)</li>`
	)

	dss := StringMapKeysIntoSlice(KnownDatasets)
	sort.Strings(dss)

	var dsrows []string
	for _, ds := range dss {
		dsrows = append(dsrows, fmt.Sprintf(DSROW, ds, ds, KnownDatasets[ds]))
	}

	var runrows []string
	for _, s := range archivelist() {
		runrows = append(runrows, fmt.Sprintf(RUNROW, s.Fingerprint, s.Fingerprint, s.Dataset, s.Stamp.Format(time.RFC822)))
	}
	if len(runrows) == 0 {
		runrows = append(runrows, NORUNS)
	}

	page := fmt.Sprintf(PAGE, MYNAME, MYNAME, VERSION, strings.Join(dsrows, "\n"), strings.Join(runrows, "\n"))

	return c.HTML(http.StatusOK, page)
}

// RtModelRun - fetch a dataset, fit both models, and report the comparison
func RtModelRun(c echo.Context) error {
	const (
		TITLE   = "topic models of dataset '%s'"
		SUMMARY = "%d documents; %d token vocabulary; %d topics; %d passes"
	)

	ds := c.Param("ds")

	outcomes, rec, e := comparisonpipeline(ds, "")
	if e != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, e.Error())
	}

	var tables []string
	tables = append(tables, htmlsummarytable(outcomes))
	for _, oc := range outcomes {
		tables = append(tables, htmltopicsummary(oc))
	}

	var img string
	img += coherencebarchart(outcomes)
	for _, oc := range outcomes {
		img += tsnescatter(oc)
	}

	oj := RunOutputJSON{
		Title:   fmt.Sprintf(TITLE, ds),
		Summary: fmt.Sprintf(SUMMARY, rec.Docs, rec.Vocabulary, Config.Topics, Config.Passes),
		Found:   strings.Join(tables, ""),
		Image:   img,
	}

	return c.JSONPretty(http.StatusOK, oj, JSONINDENT)
}

// RtRunList - the archive index as JSON
func RtRunList(c echo.Context) error {
	return c.JSONPretty(http.StatusOK, archivelist(), JSONINDENT)
}

// RtRunFetch - one archived run as JSON
func RtRunFetch(c echo.Context) error {
	fp := c.Param("fp")

	rec, e := archivefetch(fp)
	if e != nil {
		return echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("no archived run '%s'", fp))
	}

	return c.JSONPretty(http.StatusOK, rec, JSONINDENT)
}
