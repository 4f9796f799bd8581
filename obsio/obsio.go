// Package obsio - observation tables and event lists.
package obsio

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/katalvlaran/ddrelocator/seismic"
)

// Sentinel errors for file parsing.
var (
	// ErrBadRecord indicates a malformed line in an observation table.
	ErrBadRecord = errors.New("obsio: malformed observation record")

	// ErrBadEventList indicates an event list without the expected
	// master and slave rows or with unparseable fields.
	ErrBadEventList = errors.New("obsio: malformed event list")
)

// obsColumns is the fixed column order of an observation table.
const obsColumns = "station latitude longitude distance azimuth phase time dtdd dtdh dt cc weight"

// numObsFields is the per-line field count of an observation table.
const numObsFields = 12

// originLayouts are the accepted origin-time spellings, tried in order.
var originLayouts = [...]string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
}

// ReadObsSet reads an observation table. Blank lines and '#' comments are
// skipped; a header row repeating the column names is recognized and
// skipped as well. Any other malformed line aborts the read with
// ErrBadRecord naming the line number.
func ReadObsSet(path string) (seismic.ObsSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("obsio: open observation table: %w", err)
	}
	defer f.Close()

	return parseObsSet(f)
}

// parseObsSet scans the table line by line.
func parseObsSet(r io.Reader) (seismic.ObsSet, error) {
	var obs seismic.ObsSet
	sc := bufio.NewScanner(r)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if fields[0] == "station" {
			// Header row.
			continue
		}
		if len(fields) != numObsFields {
			return nil, fmt.Errorf("%w: line %d: %d fields, want %d",
				ErrBadRecord, lineNo, len(fields), numObsFields)
		}

		var (
			ob   seismic.Obs
			vals [numObsFields - 2]float64
		)
		ob.Station = fields[0]
		ob.Phase = fields[5]
		for i, idx := range [...]int{1, 2, 3, 4, 6, 7, 8, 9, 10, 11} {
			v, err := strconv.ParseFloat(fields[idx], 64)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: field %d: %v", ErrBadRecord, lineNo, idx+1, err)
			}
			vals[i] = v
		}
		ob.Latitude, ob.Longitude = vals[0], vals[1]
		ob.Distance, ob.Azimuth = vals[2], vals[3]
		ob.Time = vals[4]
		ob.Dtdd, ob.Dtdh = vals[5], vals[6]
		ob.Dt, ob.CC, ob.Weight = vals[7], vals[8], vals[9]

		obs = append(obs, ob)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("obsio: read observation table: %w", err)
	}

	return obs, nil
}

// WriteObsSet writes an observation table with a header row, one line per
// observation, floats rendered with six decimals.
func WriteObsSet(path string, obs seismic.ObsSet) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("obsio: create observation table: %w", err)
	}

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, obsColumns)
	for i := range obs {
		ob := &obs[i]
		fmt.Fprintf(w, "%s %.6f %.6f %.6f %.6f %s %.6f %.6f %.6f %.6f %.6f %.6f\n",
			ob.Station, ob.Latitude, ob.Longitude, ob.Distance, ob.Azimuth,
			ob.Phase, ob.Time, ob.Dtdd, ob.Dtdh, ob.Dt, ob.CC, ob.Weight)
	}
	if err = w.Flush(); err != nil {
		f.Close()

		return fmt.Errorf("obsio: write observation table: %w", err)
	}

	return f.Close()
}

// ReadEvents reads a master/slave event list: a CSV with header
// time,latitude,longitude,depth,magnitude and at least two data rows,
// '#' comment lines allowed.
func ReadEvents(path string) (master, slave seismic.Event, err error) {
	f, err := os.Open(path)
	if err != nil {
		return master, slave, fmt.Errorf("obsio: open event list: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comment = '#'
	r.TrimLeadingSpace = true

	rows, err := r.ReadAll()
	if err != nil {
		return master, slave, fmt.Errorf("%w: %v", ErrBadEventList, err)
	}
	// Drop the header if present.
	if len(rows) > 0 && len(rows[0]) > 0 && strings.EqualFold(rows[0][0], "time") {
		rows = rows[1:]
	}
	if len(rows) < 2 {
		return master, slave, fmt.Errorf("%w: need master and slave rows, got %d", ErrBadEventList, len(rows))
	}

	if master, err = parseEvent(rows[0]); err != nil {
		return master, slave, err
	}
	if slave, err = parseEvent(rows[1]); err != nil {
		return master, slave, err
	}

	return master, slave, nil
}

// parseEvent converts one CSV row to an Event.
func parseEvent(row []string) (seismic.Event, error) {
	var ev seismic.Event
	if len(row) != 5 {
		return ev, fmt.Errorf("%w: %d columns, want 5", ErrBadEventList, len(row))
	}

	origin, err := parseOrigin(strings.TrimSpace(row[0]))
	if err != nil {
		return ev, fmt.Errorf("%w: origin %q: %v", ErrBadEventList, row[0], err)
	}
	ev.Origin = origin

	vals := [4]float64{}
	for i := range vals {
		v, err := strconv.ParseFloat(strings.TrimSpace(row[i+1]), 64)
		if err != nil {
			return ev, fmt.Errorf("%w: column %d: %v", ErrBadEventList, i+2, err)
		}
		vals[i] = v
	}
	ev.Latitude, ev.Longitude, ev.Depth, ev.Magnitude = vals[0], vals[1], vals[2], vals[3]

	return ev, nil
}

// parseOrigin tries the accepted time layouts in order.
func parseOrigin(s string) (time.Time, error) {
	var firstErr error
	for _, layout := range originLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t.UTC(), nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}

	return time.Time{}, firstErr
}
