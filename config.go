//    ConstellateTopicModeller
//    Copyright: paulkdata 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"strconv"
)

var (
	Config CurrentConfiguration
)

type CurrentConfiguration struct {
	BlackAndWhite bool
	Dataset       string
	DatasetFile   string
	DictKeepN     int
	DictNoAbove   float64
	DictNoBelow   int
	EchoLog       int // 0: "none", 1: "terse", 2: "prolix", 3: "prolix+remoteip"
	Gzip          bool
	HostIP        string
	HostPort      int
	LogLevel      int
	PGLogin       PostgresLogin
	Passes        int
	Profiling     bool
	QuietStart    bool
	TopWords      int
	Topics        int
	WebUI         bool
	WorkerCount   int
}

// LookForConfigFile - test to see if we can find a config file; if not build one with the default values
func LookForConfigFile() {
	const (
		FYI = "\tC1Creating configuration directory: 'C3%sC1'C0"
		FNF = "\tC1Generating a default 'C3%sC1'C0"
		FWR = "\tC1Wrote configuration to 'C3%sC1'C0\n"
	)

	h, e := os.UserHomeDir()
	chke(e)

	_, a := os.Stat(fmt.Sprintf("%s/%s", CONFIGLOCATION, CONFIGBASIC))
	_, b := os.Stat(fmt.Sprintf(CONFIGALTAPTH, h) + CONFIGBASIC)

	notfound := (a != nil) && (b != nil)

	if notfound {
		_, e = os.Stat(fmt.Sprintf(CONFIGALTAPTH, h))
		if e != nil {
			fmt.Println(coloroutput(fmt.Sprintf(FYI, fmt.Sprintf(CONFIGALTAPTH, h))))
			ee := os.MkdirAll(fmt.Sprintf(CONFIGALTAPTH, h), os.FileMode(0700))
			chke(ee)
		}

		fmt.Println(coloroutput(fmt.Sprintf(FNF, CONFIGBASIC)))

		cfg := BuildDefaultConfig()
		content, err := json.MarshalIndent(cfg, JSONINDENT, JSONINDENT)
		chke(err)

		err = os.WriteFile(fmt.Sprintf(CONFIGALTAPTH, h)+CONFIGBASIC, content, WRITEPERMS)
		chke(err)

		fmt.Println(coloroutput(fmt.Sprintf(FWR, fmt.Sprintf(CONFIGALTAPTH, h)+CONFIGBASIC)))
	}
}

// ConfigAtLaunch - read the configuration values from JSON and/or command line
func ConfigAtLaunch() {
	const (
		FAIL1 = "Could not parse your information as a valid collection of credentials. Use the following template:"
		FAIL2 = `"{\"Pass\": \"YOURPASSWORDHERE\" ,\"Host\": \"127.0.0.1\", \"Port\": 5432, \"DBName\": \"ctmDB\" ,\"User\": \"ctm\"}"`
		FAIL3 = `Could not parse the information in '%s'. Skipping and attempting to use built-in defaults instead.`
		FAIL6 = "Could not open '%s'"
		FAIL7 = "The '%s' flag requires a value; see '-h'"
	)

	Config = BuildDefaultConfig()

	uh, _ := os.UserHomeDir()
	h := fmt.Sprintf(CONFIGALTAPTH, uh)
	basiccfg := fmt.Sprintf("%s%s", h, CONFIGBASIC)

	loadedcfg, e := os.Open(basiccfg)
	if e != nil {
		msg(fmt.Sprintf(FAIL6, basiccfg), MSGPEEK)
	}

	decoderc := json.NewDecoder(loadedcfg)
	confc := CurrentConfiguration{}
	errc := decoderc.Decode(&confc)
	_ = loadedcfg.Close()

	if errc == nil {
		Config = confc
	} else {
		msg(fmt.Sprintf(FAIL3, basiccfg), MSGPEEK)
	}

	args := os.Args[1:len(os.Args)]

	needsvalue := ToSet([]string{"-df", "-ds", "-el", "-gl", "-kn", "-na", "-nb", "-pg", "-ps",
		"-sa", "-sp", "-tp", "-tw", "-wc"})

	for i, a := range args {
		if _, y := needsvalue[a]; y {
			// "ctm -ds" with nothing after it must not reach args[i+1]
			if _, ok := flagvalue(args, i); !ok {
				msg(fmt.Sprintf(FAIL7, a), MSGMAND)
				os.Exit(1)
			}
		}
		switch a {
		case "-vv":
			printversion()
			printbuildinfo()
			os.Exit(1)
		case "-v":
			fmt.Println(VERSION)
			os.Exit(1)
		case "-bw":
			Config.BlackAndWhite = true
		case "-df":
			Config.DatasetFile = args[i+1]
		case "-ds":
			Config.Dataset = args[i+1]
		case "-el":
			ll, err := strconv.Atoi(args[i+1])
			chke(err)
			Config.EchoLog = ll
		case "-gl":
			ll, err := strconv.Atoi(args[i+1])
			chke(err)
			Config.LogLevel = ll
		case "-gz":
			Config.Gzip = true
		case "-h":
			printversion()
			printbuildinfo()
			ht := styleoutput(coloroutput(HELPTEXT))
			fmt.Println(fmt.Sprintf(ht, datasetcachedir(), DEFAULTGOLOGLEVEL, DEFAULTDICTKEEPN,
				DEFAULTDICTNOABOVE, DEFAULTDICTNOBELOW, DEFAULTPASSES, SERVEDFROMHOST, SERVEDFROMPORT,
				DEFAULTTOPICCOUNT, DEFAULTTOPWORDS, h, PROJURL))
			os.Exit(0)
		case "-kn":
			kn, err := strconv.Atoi(args[i+1])
			chke(err)
			Config.DictKeepN = kn
		case "-na":
			na, err := strconv.ParseFloat(args[i+1], 64)
			chke(err)
			Config.DictNoAbove = na
		case "-nb":
			nb, err := strconv.Atoi(args[i+1])
			chke(err)
			Config.DictNoBelow = nb
		case "-pf":
			Config.Profiling = true
		case "-pg":
			js := args[i+1]
			var pl PostgresLogin
			err := json.Unmarshal([]byte(js), &pl)
			if err != nil {
				msg(FAIL1, MSGMAND)
				msg(FAIL2, MSGCRIT)
				fmt.Printf(MINCONFIG)
			}
			Config.PGLogin = pl
		case "-ps":
			ps, err := strconv.Atoi(args[i+1])
			chke(err)
			Config.Passes = ps
		case "-q":
			Config.QuietStart = true
		case "-sa":
			Config.HostIP = args[i+1]
		case "-sp":
			p, err := strconv.Atoi(args[i+1])
			chke(err)
			Config.HostPort = p
		case "-tp":
			tp, err := strconv.Atoi(args[i+1])
			chke(err)
			Config.Topics = tp
		case "-tw":
			tw, err := strconv.Atoi(args[i+1])
			chke(err)
			Config.TopWords = tw
		case "-wc":
			wc, err := strconv.Atoi(args[i+1])
			chke(err)
			Config.WorkerCount = wc
		case "-ws":
			Config.WebUI = true
		default:
			// do nothing
		}
	}

	y := ""
	if errc != nil {
		y = " *not*"
	}
	msg(fmt.Sprintf("'%s'%s loaded", basiccfg, y), MSGTMI)

	SQLProvider = "sqlite"
	if Config.PGLogin.Pass != "" {
		SQLProvider = "pgsql"
	}
}

// flagvalue - the value following args[i]; false if the command line ends first
func flagvalue(args []string, i int) (string, bool) {
	if i+1 >= len(args) {
		return "", false
	}
	return args[i+1], true
}

// BuildDefaultConfig - return a CurrentConfiguration filled out with various default values
func BuildDefaultConfig() CurrentConfiguration {
	var c CurrentConfiguration
	c.BlackAndWhite = BLACKANDWHITE
	c.DictKeepN = DEFAULTDICTKEEPN
	c.DictNoAbove = DEFAULTDICTNOABOVE
	c.DictNoBelow = DEFAULTDICTNOBELOW
	c.EchoLog = DEFAULTECHOLOGLEVEL
	c.Gzip = USEGZIP
	c.HostIP = SERVEDFROMHOST
	c.HostPort = SERVEDFROMPORT
	c.LogLevel = DEFAULTGOLOGLEVEL
	c.Passes = DEFAULTPASSES
	c.QuietStart = false
	c.TopWords = DEFAULTTOPWORDS
	c.Topics = DEFAULTTOPICCOUNT
	c.WorkerCount = runtime.NumCPU()

	pl := PostgresLogin{
		Host:   DEFAULTPSQLHOST,
		Port:   DEFAULTPSQLPORT,
		User:   DEFAULTPSQLUSER,
		Pass:   "",
		DBName: DEFAULTPSQLDB,
	}

	c.PGLogin = pl

	return c
}

func printversion() {
	// example:
	// [CTM] Constellate Topic Modeller (v1.2.0) [gl=0]
	const (
		ME = "C5%sC0 (C2v%sC0)"
		LL = " [C6gl=%dC0]"
	)
	v := fmt.Sprintf(ME, MYNAME, VERSION)
	v += fmt.Sprintf(LL, Config.LogLevel)
	msg(coloroutput(v), MSGMAND)
}

func printbuildinfo() {
	// example:
	// 	Golang:	go1.21.4		System:	darwin-arm64
	const (
		GV = "\tS1Golang:S0\tC3%sC0\t"
		SY = "\tS1System:S0\tC3%s-%sC0"
	)
	bi := messenger.ColStyle(fmt.Sprintf(GV, runtime.Version()))
	bi += messenger.ColStyle(fmt.Sprintf(SY, runtime.GOOS, runtime.GOARCH))
	fmt.Println(bi)
}
