//    ConstellateTopicModeller
//    Copyright: paulkdata 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"bytes"
	"compress/gzip"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

//
// THE RUN ARCHIVE
//

// every completed comparison is archived as a gzipped JSON blob keyed by a fingerprint;
// sqlite by default, postgres when credentials are configured;
// archive trouble is logged and swallowed: a failed INSERT must not cost you the run you just waited on

var (
	dbm       = NewFncMessageMaker("modeldbcalls.go")
	ArchiveDB *sql.DB
)

// RunRow - one model's summary line inside an archived run
type RunRow struct {
	Model     string
	Coherence float64
	Seconds   float64
	Topics    int
	Passes    int
	TopTerms  [][]string
}

// RunRecord - an archived comparison run
type RunRecord struct {
	Fingerprint string
	Dataset     string
	Stamp       time.Time
	Docs        int
	Vocabulary  int
	Rows        []RunRow
}

// RunSummary - what the archive index reports about a run
type RunSummary struct {
	Fingerprint string
	Dataset     string
	Stamp       time.Time
}

// runfingerprint - a fresh archive key
func runfingerprint() string {
	return strings.Replace(uuid.New().String(), "-", "", -1)
}

// buildrunrecord - flatten model outcomes into an archivable RunRecord
func buildrunrecord(dataset string, dict *Dictionary, outcomes []ModelOutcome) RunRecord {
	rec := RunRecord{
		Fingerprint: runfingerprint(),
		Dataset:     dataset,
		Stamp:       time.Now(),
		Docs:        dict.DocCount,
		Vocabulary:  dict.Size(),
	}

	for _, oc := range outcomes {
		row := RunRow{
			Model:     oc.Name,
			Coherence: oc.Coherence,
			Seconds:   oc.Elapsed.Seconds(),
			Topics:    oc.TopicCount,
			Passes:    oc.Passes,
		}
		for _, tp := range oc.Topics {
			terms := make([]string, len(tp))
			for i, tt := range tp {
				terms[i] = tt.Term
			}
			row.TopTerms = append(row.TopTerms, terms)
		}
		rec.Rows = append(rec.Rows, row)
	}

	return rec
}

// archiverun - store a RunRecord; errors are logged, never fatal
func archiverun(rec RunRecord) {
	const (
		MSG1 = "archiverun(): stored %s"
		MSG2 = "%s compression: %dK -> %dK (-> %.1f%%)"
		FAIL = "archiverun() could not store the run: %s"
		GZ   = gzip.BestSpeed
	)

	rb, e := json.Marshal(rec)
	if e != nil {
		msg(fmt.Sprintf(FAIL, e.Error()), MSGNOTE)
		return
	}

	l1 := len(rb)

	var buf bytes.Buffer
	zw, e := gzip.NewWriterLevel(&buf, GZ)
	dbm.EC(e)
	_, e = zw.Write(rb)
	dbm.EC(e)
	e = zw.Close()
	dbm.EC(e)

	b := buf.Bytes()
	l2 := len(b)

	switch SQLProvider {
	case "pgsql":
		e = pgsqlarchiveadd(rec, l2, b)
	default:
		e = sqlitearchiveadd(rec, l2, b)
	}

	if e != nil {
		msg(fmt.Sprintf(FAIL, e.Error()), MSGNOTE)
		return
	}

	msg(fmt.Sprintf(MSG1, rec.Fingerprint), MSGPEEK)
	msg(fmt.Sprintf(MSG2, rec.Fingerprint, l1/1024, l2/1024, (float32(l2)/float32(l1))*100), MSGPEEK)
	buf.Reset()
}

// archivefetch - get an archived RunRecord back via its fingerprint
func archivefetch(fp string) (RunRecord, error) {
	var blob []byte
	var e error

	switch SQLProvider {
	case "pgsql":
		blob, e = pgsqlarchivefetch(fp)
	default:
		blob, e = sqlitearchivefetch(fp)
	}

	if e != nil {
		return RunRecord{}, e
	}

	// the data in the tables is zipped and needs unzipping
	zr, e := gzip.NewReader(bytes.NewReader(blob))
	if e != nil {
		return RunRecord{}, e
	}
	decompr, e := io.ReadAll(zr)
	if e != nil {
		return RunRecord{}, e
	}
	e = zr.Close()
	if e != nil {
		return RunRecord{}, e
	}

	var rec RunRecord
	e = json.Unmarshal(decompr, &rec)
	if e != nil {
		return RunRecord{}, e
	}

	return rec, nil
}

// archivelist - every stored run, newest first
func archivelist() []RunSummary {
	const (
		FAIL = "archivelist() could not read the archive: %s"
	)

	var ss []RunSummary
	var e error

	switch SQLProvider {
	case "pgsql":
		ss, e = pgsqlarchivelist()
	default:
		ss, e = sqlitearchivelist()
	}

	if e != nil {
		msg(fmt.Sprintf(FAIL, e.Error()), MSGNOTE)
		return []RunSummary{}
	}

	return ss
}

//
// SQLITE PROVIDER
//

// OpenSQLiteArchive - open (and if need be create) the archive database file
func OpenSQLiteArchive() *sql.DB {
	if ArchiveDB != nil {
		return ArchiveDB
	}

	h, e := os.UserHomeDir()
	chke(e)

	db, e := opensqlitearchiveat(fmt.Sprintf(CONFIGALTAPTH, h) + ARCHIVEDBNAME)
	chke(e)

	ArchiveDB = db
	return ArchiveDB
}

// opensqlitearchiveat - open an archive database at an arbitrary path
func opensqlitearchiveat(fp string) (*sql.DB, error) {
	const (
		CREATE = `
			CREATE TABLE IF NOT EXISTS %s
			(
			  fingerprint TEXT,
			  stamp TEXT,
			  dataset TEXT,
			  runsize INT,
			  rundata BLOB
			)`
	)

	db, e := sql.Open("sqlite", fp)
	if e != nil {
		return nil, e
	}

	_, e = db.ExecContext(context.Background(), fmt.Sprintf(CREATE, RUNTABLENAME))
	if e != nil {
		return nil, e
	}

	return db, nil
}

func sqlitearchiveadd(rec RunRecord, size int, blob []byte) error {
	const (
		INS = `INSERT INTO %s (fingerprint, stamp, dataset, runsize, rundata) VALUES (?, ?, ?, ?, ?)`
	)
	db := OpenSQLiteArchive()
	_, e := db.ExecContext(context.Background(), fmt.Sprintf(INS, RUNTABLENAME),
		rec.Fingerprint, rec.Stamp.Format(time.RFC3339), rec.Dataset, size, blob)
	return e
}

func sqlitearchivefetch(fp string) ([]byte, error) {
	const (
		Q = `SELECT rundata FROM %s WHERE fingerprint = ? LIMIT 1`
	)
	db := OpenSQLiteArchive()
	var blob []byte
	e := db.QueryRowContext(context.Background(), fmt.Sprintf(Q, RUNTABLENAME), fp).Scan(&blob)
	return blob, e
}

func sqlitearchivelist() ([]RunSummary, error) {
	const (
		Q = `SELECT fingerprint, stamp, dataset FROM %s ORDER BY stamp DESC`
	)
	db := OpenSQLiteArchive()
	rows, e := db.QueryContext(context.Background(), fmt.Sprintf(Q, RUNTABLENAME))
	if e != nil {
		return nil, e
	}
	defer rows.Close()

	var ss []RunSummary
	for rows.Next() {
		var s RunSummary
		var stamp string
		if e = rows.Scan(&s.Fingerprint, &stamp, &s.Dataset); e != nil {
			return nil, e
		}
		s.Stamp, _ = time.Parse(time.RFC3339, stamp)
		ss = append(ss, s)
	}
	return ss, rows.Err()
}

//
// POSTGRESQL PROVIDER
//

// pgsqlarchiveinit - create RUNTABLENAME
func pgsqlarchiveinit() {
	const (
		CREATE = `
			CREATE TABLE %s
			(
			  fingerprint character(32),
			  stamp timestamptz,
			  dataset text,
			  runsize int,
			  rundata bytea
			)`
		EXISTS = "already exists"
	)
	dbc := GetPSQLconnection()
	defer dbc.Release()

	ex := fmt.Sprintf(CREATE, RUNTABLENAME)
	_, err := dbc.Exec(context.Background(), ex)
	if err != nil {
		m := err.Error()
		if !strings.Contains(m, EXISTS) {
			dbm.EC(err)
		}
	} else {
		msg("pgsqlarchiveinit(): success", MSGFYI)
	}
}

func pgsqlarchiveadd(rec RunRecord, size int, blob []byte) error {
	const (
		INS = `
			INSERT INTO %s
				(fingerprint, stamp, dataset, runsize, rundata)
			VALUES ('%s', $1, $2, $3, $4)`
		DNE = "does not exist"
	)

	dbc := GetPSQLconnection()
	defer dbc.Release()

	ex := fmt.Sprintf(INS, RUNTABLENAME, rec.Fingerprint)

	_, e := dbc.Exec(context.Background(), ex, rec.Stamp, rec.Dataset, size, blob)
	if e != nil && strings.Contains(e.Error(), DNE) {
		pgsqlarchiveinit()
		_, e = dbc.Exec(context.Background(), ex, rec.Stamp, rec.Dataset, size, blob)
	}
	return e
}

func pgsqlarchivefetch(fp string) ([]byte, error) {
	const (
		// the fingerprint arrives from the web routes and must stay a parameter
		Q = `SELECT rundata FROM %s WHERE fingerprint = $1 LIMIT 1`
	)

	dbc := GetPSQLconnection()
	defer dbc.Release()

	var blob []byte
	e := dbc.QueryRow(context.Background(), fmt.Sprintf(Q, RUNTABLENAME), fp).Scan(&blob)
	return blob, e
}

func pgsqlarchivelist() ([]RunSummary, error) {
	const (
		Q   = `SELECT fingerprint, stamp, dataset FROM %s ORDER BY stamp DESC`
		DNE = "does not exist"
	)

	dbc := GetPSQLconnection()
	defer dbc.Release()

	rows, e := dbc.Query(context.Background(), fmt.Sprintf(Q, RUNTABLENAME))
	if e != nil {
		if strings.Contains(e.Error(), DNE) {
			pgsqlarchiveinit()
			return []RunSummary{}, nil
		}
		return nil, e
	}
	defer rows.Close()

	var ss []RunSummary
	for rows.Next() {
		var s RunSummary
		if e = rows.Scan(&s.Fingerprint, &s.Stamp, &s.Dataset); e != nil {
			return nil, e
		}
		s.Fingerprint = strings.TrimSpace(s.Fingerprint)
		ss = append(ss, s)
	}
	return ss, rows.Err()
}
