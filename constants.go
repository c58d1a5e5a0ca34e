//    ConstellateTopicModeller
//    Copyright: paulkdata 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

const (
	MYNAME         = "Constellate Topic Modeller"
	SHORTNAME      = "CTM"
	VERSION        = "1.2.0"
	SERVEDFROMHOST = "127.0.0.1"
	SERVEDFROMPORT = 8000

	CONFIGLOCATION = "."
	CONFIGALTAPTH  = "%s/.config/ctm/"
	CONFIGBASIC    = "ctm-conf.json"
	CONFIGSTOPS    = "ctm-stops.json"
	DATASETCACHE   = "datasets"
	JSONINDENT     = "  "
	WRITEPERMS     = 0644

	// one document per line; the payload arrives gzipped
	DATASETDOWNLOADTPL = "https://backend.constellate.org/dataset/%s/download"
	DATASETFILETPL     = "%s.jsonl.gz"

	DEFAULTTOPICCOUNT = 7
	DEFAULTPASSES     = 12
	DEFAULTTOPWORDS   = 8
	MINTOKENLENGTH    = 4

	// gensim's filter_extremes() defaults; KEEPN is lower than gensim's because NMF wants a dense term-document matrix
	DEFAULTDICTNOBELOW = 5
	DEFAULTDICTNOABOVE = 0.5
	DEFAULTDICTKEEPN   = 25000

	NMFTOLERANCE = 1e-4

	MAXECHOREQPERSECONDPERIP = 60
	DEFAULTECHOLOGLEVEL      = 0
	DEFAULTGOLOGLEVEL        = MSGCRIT
	USEGZIP                  = false
	BLACKANDWHITE            = false

	RUNTABLENAME    = "modelruns"
	ARCHIVEDBNAME   = "ctm-runs.db"
	DEFAULTPSQLHOST = "127.0.0.1"
	DEFAULTPSQLPORT = 5432
	DEFAULTPSQLUSER = "ctm"
	DEFAULTPSQLDB   = "ctmDB"

	MINCONFIG = `{
  "PosgreSQL" :
  {"Pass": "YOURPASSWORDHERE" ,"Host": "127.0.0.1", "Port": 5432, "DBName": "ctmDB" ,"User": "ctm"}
}`

	TERMINALTEXT = `
	%s / Copyright (C) %s / %s

	This program comes with ABSOLUTELY NO WARRANTY;
	without even the implied warranty of MERCHANTABILITY
	or FITNESS FOR A PARTICULAR PURPOSE.

	This is free software, and you are welcome to redistribute
	it and/or modify it under the terms of the GNU General
	Public License version 3.
`

	HELPTEXT = `S1command line optionsS0:
   C1-bwC0     disable color in the console output
   C1-dfC0 C2{f}C0 model a local dataset file: C2{f}C0 is a path to a '.jsonl' or '.jsonl.gz' file
   C1-dsC0 C2{d}C0 model dataset C2{d}C0: downloads are cached in 'C3%sC0'
   C1-elC0 C2{n}C0 set echo server logging level: C20C0-C23C0
   C1-glC0 C2{n}C0 set the logging level: C20C0 is terse; C25C0 is prolix (default: C2%dC0)
   C1-gzC0     enable gzip compression of the server's responses
   C1-knC0 C2{n}C0 dictionary pruning: keep only the C2{n}C0 most frequent tokens (default: C2%dC0)
   C1-naC0 C2{f}C0 dictionary pruning: drop tokens in more than this fraction of docs (default: C2%.2fC0)
   C1-nbC0 C2{n}C0 dictionary pruning: drop tokens in fewer than C2{n}C0 docs (default: C2%dC0)
   C1-pfC0     write a CPU profile to the current working directory
   C1-psC0 C2{n}C0 number of passes when fitting the models (default: C2%dC0)
   C1-qC0      quiet launch: suppress the copyright notice
   C1-saC0 C2{a}C0 serve from address C2{a}C0 (default: C2%sC0)
   C1-spC0 C2{n}C0 serve from port C2{n}C0 (default: C2%dC0)
   C1-tpC0 C2{n}C0 number of topics to model (default: C2%dC0)
   C1-twC0 C2{n}C0 number of top words to report per topic (default: C2%dC0)
   C1-vC0      print version and exit
   C1-vvC0     print full version info and exit
   C1-wcC0 C2{n}C0 worker count for the LDA fit (default: number of cores)
   C1-wsC0     run the webserver rather than a one-shot comparison
   C1-hC0      print this help information
   after launch you can edit the configuration files in 'C3%sC0'
   see also 'C3%sC0'
`

	PROJYEAR = "2024"
	PROJAUTH = "paulkdata"
	PROJURL  = "https://github.com/paulkdata/topic-modelling-with-constellate"
)

// KnownDatasets - sample public datasets for the frontpage
var KnownDatasets = map[string]string{
	"f6ae29d4-3a70-36ee-d9a0-a54a3f9b56b2": "Shakespeare Quarterly, 1950-present",
	"b4668c50-a970-c4d7-eb2c-bb6d04313542": "Negro American Literature Forum / African American Review",
	"04371b31-b491-1ab9-2f26-20f9d95bb4cf": "Documents containing 'climate change', 1990-2020",
}
