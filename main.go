//    ConstellateTopicModeller
//    Copyright: paulkdata 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/pkg/profile"
)

func main() {
	const (
		NOWORK = "nothing to do: provide a dataset via '-ds' or '-df', or launch the webserver via '-ws'; see '-h'"
	)

	LookForConfigFile()
	ConfigAtLaunch()

	if !Config.QuietStart {
		fmt.Println(fmt.Sprintf(TERMINALTEXT, MYNAME, PROJYEAR, PROJAUTH))
	}

	printversion()

	if Config.Profiling {
		// go tool pprof --pdf ./ctm ./cpu.pprof > profile.pdf
		defer profile.Start(profile.ProfilePath(".")).Stop()
	}

	if SQLProvider == "pgsql" {
		SQLPool = FillPSQLPoool()
	}

	if Config.WebUI {
		StartEchoServer()
		return
	}

	if Config.Dataset == "" && Config.DatasetFile == "" {
		msg(NOWORK, MSGMAND)
		return
	}

	outcomes, _, err := comparisonpipeline(Config.Dataset, Config.DatasetFile)
	chke(err)

	printcomparison(outcomes)
	printtopics(outcomes)
}

// comparisonpipeline - dataset in, fitted and scored models out; the run is archived along the way
func comparisonpipeline(ds string, df string) ([]ModelOutcome, RunRecord, error) {
	const (
		MSG1 = "%d documents loaded and cleaned"
		MSG2 = "dictionary and bag-of-words corpus built (%d tokens)"
		MSG3 = "models fitted and scored"
	)

	start := time.Now()
	previous := time.Now()

	var fp string
	var err error

	label := ds
	if df != "" {
		fp = df
		label = df
	} else {
		if ds == "" {
			return nil, RunRecord{}, errors.New("comparisonpipeline() was given neither a dataset id nor a file")
		}
		fp, err = fetchdataset(ds, datasetcachedir())
		if err != nil {
			return nil, RunRecord{}, err
		}
	}

	docs, err := loaddataset(fp)
	if err != nil {
		return nil, RunRecord{}, err
	}

	stops := getstopset()
	cleaned := cleandocs(docs, stops)
	timetracker("A1", fmt.Sprintf(MSG1, len(cleaned)), start, previous)

	previous = time.Now()
	dict := NewDictionary(cleaned)
	dict.FilterExtremes(Config.DictNoBelow, Config.DictNoAbove, Config.DictKeepN)
	bow := buildbowcorpus(dict, cleaned)
	timetracker("A2", fmt.Sprintf(MSG2, dict.Size()), start, previous)

	previous = time.Now()
	outcomes, err := modelcomparison(dict, bow, Config.Topics, Config.Passes, Config.TopWords)
	if err != nil {
		return nil, RunRecord{}, err
	}
	timetracker("A3", MSG3, start, previous)

	rec := buildrunrecord(label, dict, outcomes)
	archiverun(rec)

	return outcomes, rec, nil
}
