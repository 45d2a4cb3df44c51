// Package manifest reads passenger manifests. The first non-blank line holds the
// passenger count, followed by one "destination name start" record per passenger.
package manifest

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"sweepsim/src/types"
)

var (
	ErrUnreadable      = errors.New("manifest unreadable")
	ErrMalformed       = errors.New("manifest malformed")
	ErrFloorOutOfRange = errors.New("manifest floor out of range")
)

// Record is one passenger line.
type Record struct {
	Destination int
	Name        string
	Start       int
	Line        int
}

// Adder is satisfied by *sim.Sim.
type Adder interface {
	AddPerson(start int, person types.Person) (bool, error)
}

// Parse reads every record from r. Blank lines are skipped anywhere in the input.
func Parse(r io.Reader) ([]Record, error) {
	scanner := bufio.NewScanner(r)
	lineNum := 0

	nextLine := func() ([]string, bool) {
		for scanner.Scan() {
			lineNum++
			fields := strings.Fields(scanner.Text())
			if len(fields) > 0 {
				return fields, true
			}
		}
		return nil, false
	}

	header, ok := nextLine()
	if !ok {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
		}
		return nil, fmt.Errorf("%w: missing passenger count", ErrMalformed)
	}
	if len(header) != 1 {
		return nil, fmt.Errorf("%w: line %d: expected passenger count, got %d fields", ErrMalformed, lineNum, len(header))
	}
	count, err := strconv.Atoi(header[0])
	if err != nil || count < 0 {
		return nil, fmt.Errorf("%w: line %d: invalid passenger count %q", ErrMalformed, lineNum, header[0])
	}

	records := make([]Record, 0, count)
	for len(records) < count {
		fields, ok := nextLine()
		if !ok {
			if err := scanner.Err(); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
			}
			return nil, fmt.Errorf("%w: expected %d passengers, found %d", ErrMalformed, count, len(records))
		}
		record, err := parseRecord(fields, lineNum)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	if fields, ok := nextLine(); ok {
		return nil, fmt.Errorf("%w: line %d: unexpected content %q after %d passengers", ErrMalformed, lineNum, strings.Join(fields, " "), count)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	return records, nil
}

func parseRecord(fields []string, lineNum int) (Record, error) {
	if len(fields) != 3 {
		return Record{}, fmt.Errorf("%w: line %d: expected 3 fields, got %d", ErrMalformed, lineNum, len(fields))
	}
	destination, err := strconv.Atoi(fields[0])
	if err != nil {
		return Record{}, fmt.Errorf("%w: line %d: invalid destination %q", ErrMalformed, lineNum, fields[0])
	}
	start, err := strconv.Atoi(fields[2])
	if err != nil {
		return Record{}, fmt.Errorf("%w: line %d: invalid start floor %q", ErrMalformed, lineNum, fields[2])
	}
	return Record{
		Destination: destination,
		Name:        fields[1],
		Start:       start,
		Line:        lineNum,
	}, nil
}

// Validate checks every floor index against a building of floorCount floors.
func Validate(records []Record, floorCount int) error {
	for _, rec := range records {
		if rec.Destination < 0 || rec.Destination >= floorCount {
			return fmt.Errorf("%w: line %d: destination %d for %s (floors 0-%d)", ErrFloorOutOfRange, rec.Line, rec.Destination, rec.Name, floorCount-1)
		}
		if rec.Start < 0 || rec.Start >= floorCount {
			return fmt.Errorf("%w: line %d: start floor %d for %s (floors 0-%d)", ErrFloorOutOfRange, rec.Line, rec.Start, rec.Name, floorCount-1)
		}
	}
	return nil
}

// Load reads and validates the manifest at path.
func Load(path string, floorCount int) ([]Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	defer file.Close()

	records, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := Validate(records, floorCount); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	slog.Debug("Manifest loaded", "path", path, "passengers", len(records))
	return records, nil
}

// Populate adds every record to dst and returns how many were queued.
// Records must already have passed Validate.
func Populate(dst Adder, records []Record) (int, error) {
	queued := 0
	for _, rec := range records {
		enqueued, err := dst.AddPerson(rec.Start, types.NewPerson(rec.Name, rec.Destination))
		if err != nil {
			return queued, fmt.Errorf("line %d: %w", rec.Line, err)
		}
		if enqueued {
			queued++
		}
	}
	return queued, nil
}
