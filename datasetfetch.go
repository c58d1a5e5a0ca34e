//    ConstellateTopicModeller
//    Copyright: paulkdata 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"bufio"
	"compress/gzip"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

//
// DATASET ACQUISITION
//

// DatasetDocument - one line of a '.jsonl' dataset file
type DatasetDocument struct {
	ID           string         `json:"id"`
	Title        string         `json:"title"`
	PubYear      int            `json:"publicationYear"`
	WordCount    int            `json:"wordCount"`
	UnigramCount map[string]int `json:"unigramCount"`
}

// datasetcachedir - where downloaded datasets live; created on demand
func datasetcachedir() string {
	h, e := os.UserHomeDir()
	if e != nil {
		return DATASETCACHE
	}
	return fmt.Sprintf(CONFIGALTAPTH, h) + DATASETCACHE
}

// fetchdataset - grab dataset {id} over HTTP unless a cached copy exists; returns the path to the local file
func fetchdataset(id string, cachedir string) (string, error) {
	const (
		MSG1    = "fetchdataset() reusing cached copy of 'C3%sC0'"
		MSG2    = "fetchdataset() downloading 'C3%sC0'"
		MSG3    = "fetchdataset() wrote %s (%.1fM in %.1fs)"
		FAIL1   = "fetchdataset() could not create cache directory '%s'"
		FAIL2   = "fetchdataset() received status '%s' for dataset '%s'"
		TIMEOUT = 300 * time.Second
	)

	fp := fmt.Sprintf("%s/%s", cachedir, fmt.Sprintf(DATASETFILETPL, id))

	if _, e := os.Stat(fp); e == nil {
		msg(coloroutput(fmt.Sprintf(MSG1, id)), MSGNOTE)
		return fp, nil
	}

	if e := os.MkdirAll(cachedir, os.FileMode(0700)); e != nil {
		return "", fmt.Errorf(FAIL1, cachedir)
	}

	msg(coloroutput(fmt.Sprintf(MSG2, id)), MSGNOTE)

	start := time.Now()

	cl := http.Client{Timeout: TIMEOUT}
	res, e := cl.Get(fmt.Sprintf(DATASETDOWNLOADTPL, id))
	if e != nil {
		return "", e
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf(FAIL2, res.Status, id)
	}

	out, e := os.Create(fp)
	if e != nil {
		return "", e
	}

	n, e := io.Copy(out, res.Body)
	ee := out.Close()
	if e != nil {
		// half-written files poison the cache
		_ = os.Remove(fp)
		return "", e
	}
	if ee != nil {
		_ = os.Remove(fp)
		return "", ee
	}

	msg(fmt.Sprintf(MSG3, fp, float64(n)/1024/1024, time.Now().Sub(start).Seconds()), MSGFYI)

	return fp, nil
}

// loaddataset - parse a '.jsonl' or '.jsonl.gz' dataset file into documents
func loaddataset(fp string) ([]DatasetDocument, error) {
	const (
		FAIL1   = "loaddataset() could not parse line %d of '%s'"
		FAIL2   = "no documents found in '%s'"
		MSG1    = "loaddataset() read %d documents from '%s'"
		MAXLINE = 64 * 1024 * 1024 // unigramCount maps for monographs are big
	)

	f, e := os.Open(fp)
	if e != nil {
		return nil, e
	}
	defer f.Close()

	var rdr io.Reader = f
	if strings.HasSuffix(fp, ".gz") {
		zr, ee := gzip.NewReader(f)
		if ee != nil {
			return nil, ee
		}
		defer zr.Close()
		rdr = zr
	}

	var docs []DatasetDocument

	scanner := bufio.NewScanner(rdr)
	scanner.Buffer(make([]byte, 0, 1024*1024), MAXLINE)

	ln := 0
	for scanner.Scan() {
		ln += 1
		b := scanner.Bytes()
		if len(b) == 0 {
			continue
		}
		var d DatasetDocument
		if ee := json.Unmarshal(b, &d); ee != nil {
			return nil, fmt.Errorf(FAIL1, ln, fp)
		}
		docs = append(docs, d)
	}

	if e = scanner.Err(); e != nil {
		return nil, e
	}

	if len(docs) == 0 {
		return nil, errors.New(fmt.Sprintf(FAIL2, fp))
	}

	msg(fmt.Sprintf(MSG1, len(docs), fp), MSGFYI)

	return docs, nil
}
