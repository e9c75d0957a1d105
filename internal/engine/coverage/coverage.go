// Package coverage extracts the cover/uncover summary from coverage reports.
//
// Both parsers scan line by line and stop at the first match. A report
// without a matching line is not an error: the parsers return ok == false.
package coverage

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"os"
	"regexp"
	"strconv"

	"go.trai.ch/cascade/internal/core/domain"
	"go.trai.ch/zerr"
)

// maxLineSize bounds a single report line. HTML reports inline their chart
// data and can exceed bufio's default token size.
const maxLineSize = 16 * 1024 * 1024

var (
	htmlLabels   = regexp.MustCompile(`'labels', (\['Cover (\d+)%','Uncover (\d+)%'\])`)
	xmlLineRate  = regexp.MustCompile(`line-rate="(0\.\d+)"`)
	errNoMatches = errors.New("no match")
)

// ParseHTML finds the chart label literal of an HTML report and keeps it verbatim.
func ParseHTML(r io.Reader) (domain.CoverageSummary, bool, error) {
	var summary domain.CoverageSummary
	err := scan(r, func(line []byte) bool {
		m := htmlLabels.FindSubmatch(line)
		if m == nil {
			return false
		}
		cover, _ := strconv.Atoi(string(m[2]))
		uncover, _ := strconv.Atoi(string(m[3]))
		summary = domain.NewCoverageSummaryLiteral(cover, uncover, string(m[1]))
		return true
	})
	return result(summary, err)
}

// ParseXML finds the first line-rate attribute of a Cobertura report.
// The cover percentage is the rate times 100, truncated.
func ParseXML(r io.Reader) (domain.CoverageSummary, bool, error) {
	var summary domain.CoverageSummary
	err := scan(r, func(line []byte) bool {
		m := xmlLineRate.FindSubmatch(line)
		if m == nil {
			return false
		}
		rate, perr := strconv.ParseFloat(string(m[1]), 64)
		if perr != nil {
			return false
		}
		summary = domain.NewCoverageSummary(int(rate * 100))
		return true
	})
	return result(summary, err)
}

// ReadReport opens the report at path and applies the parser for its format.
// A missing report yields ok == false and no error.
func ReadReport(path string, cobertura bool) (domain.CoverageSummary, bool, error) {
	f, err := os.Open(path) //nolint:gosec // report location is derived from the working directory
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.CoverageSummary{}, false, nil
		}
		return domain.CoverageSummary{}, false, zerr.With(zerr.Wrap(domain.ErrReportReadFailed, err.Error()), "path", path)
	}
	defer func() { _ = f.Close() }()

	parse := ParseHTML
	if cobertura {
		parse = ParseXML
	}

	summary, ok, err := parse(f)
	if err != nil {
		return domain.CoverageSummary{}, false, zerr.With(err, "path", path)
	}
	return summary, ok, nil
}

// scan feeds lines to match until it reports true.
func scan(r io.Reader, match func(line []byte) bool) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		if match(scanner.Bytes()) {
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return zerr.Wrap(domain.ErrReportReadFailed, err.Error())
	}
	return errNoMatches
}

func result(summary domain.CoverageSummary, err error) (domain.CoverageSummary, bool, error) {
	switch {
	case err == nil:
		return summary, true, nil
	case errors.Is(err, errNoMatches):
		return domain.CoverageSummary{}, false, nil
	default:
		return domain.CoverageSummary{}, false, err
	}
}
