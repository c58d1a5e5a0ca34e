//    ConstellateTopicModeller
//    Copyright: paulkdata 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

var (
	// English100 - the most common english words; most die at the length check anyway, but the cleaner should not depend on that
	English100 = []string{"the", "be", "to", "of", "and", "a", "in", "that", "have", "i", "it", "for", "not", "on",
		"with", "he", "as", "you", "do", "at", "this", "but", "his", "by", "from", "they", "we", "say", "her", "she",
		"or", "an", "will", "my", "one", "all", "would", "there", "their", "what", "so", "up", "out", "if", "about",
		"who", "get", "which", "go", "me", "when", "make", "can", "like", "time", "no", "just", "him", "know", "take",
		"people", "into", "year", "your", "good", "some", "could", "them", "see", "other", "than", "then", "now",
		"look", "only", "come", "its", "over", "think", "also", "back", "after", "use", "two", "how", "our", "work",
		"first", "well", "way", "even", "new", "want", "because", "any", "these", "give", "day", "most", "us"}
	// EnglishExtra - weak tokens that survive the cleaner often enough to pollute the topics
	EnglishExtra = []string{"were", "been", "being", "have", "having", "does", "doing", "shall", "should", "ought",
		"might", "must", "very", "such", "each", "both", "more", "much", "many", "own", "same", "again", "further",
		"once", "here", "where", "why", "while", "until", "during", "between", "through", "against", "above", "below",
		"under", "before", "among", "within", "without", "upon", "toward", "towards", "whose", "whom", "whether",
		"although", "though", "thus", "therefore", "however", "moreover", "perhaps", "rather", "quite", "since",
		"ever", "never", "always", "often", "sometimes", "anything", "everything", "nothing", "something", "anyone",
		"everyone", "someone", "nobody", "else", "etc", "said", "says", "also", "may", "yet", "nor", "per", "via",
		"thee", "thou", "thy", "hath", "doth", "unto", "shalt", "wherefore", "whereas", "thereof", "therein"}
	EnglishStop = append(English100, EnglishExtra...)
	// EnglishKeep - members of EnglishStop we will not toss
	EnglishKeep = []string{"people", "year", "time", "work", "day", "world"}
)

// getstopset - the stopwords one will use when cleaning tokens
func getstopset() map[string]struct{} {
	stops := readstopconfig()
	return ToSet(stops)
}

// readstopconfig - read the CONFIGSTOPS file and return []stopwords; if it does not exist, generate it
func readstopconfig() []string {
	const (
		ERR1 = "readstopconfig() cannot find UserHomeDir"
		ERR2 = "readstopconfig() failed to parse "
		MSG1 = "readstopconfig() wrote stop configuration file: "
		MSG2 = "readstopconfig() read stop configuration from: "
	)

	stops := SetSubtraction(Unique(EnglishStop), EnglishKeep)

	h, e := os.UserHomeDir()
	if e != nil {
		msg(ERR1, 0)
		return stops
	}

	_, yes := os.Stat(fmt.Sprintf(CONFIGALTAPTH, h) + CONFIGSTOPS)

	if yes != nil {
		sort.Strings(stops)
		content, err := json.MarshalIndent(stops, JSONINDENT, JSONINDENT)
		chke(err)

		// a local ctm-conf.json means LookForConfigFile never made this directory
		err = os.MkdirAll(fmt.Sprintf(CONFIGALTAPTH, h), os.FileMode(0700))
		chke(err)

		err = os.WriteFile(fmt.Sprintf(CONFIGALTAPTH, h)+CONFIGSTOPS, content, WRITEPERMS)
		chke(err)
		msg(MSG1+CONFIGSTOPS, MSGPEEK)
	} else {
		loadedcfg, _ := os.Open(fmt.Sprintf(CONFIGALTAPTH, h) + CONFIGSTOPS)
		decoderc := json.NewDecoder(loadedcfg)
		var stp []string
		errc := decoderc.Decode(&stp)
		_ = loadedcfg.Close()
		if errc != nil {
			msg(ERR2+CONFIGSTOPS, MSGCRIT)
		} else {
			stops = stp
		}
		msg(MSG2+CONFIGSTOPS, MSGTMI)
	}
	return stops
}
