package importer

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/pfrederiksen/ihcc-events/internal/event"
	"github.com/pfrederiksen/ihcc-events/internal/logger"
)

// Column names the importer reads. Any other columns in the export are
// ignored.
const (
	colSubject     = "Subject"
	colStartDate   = "Start Date"
	colStartTime   = "Start Time"
	colDescription = "Description"
	colLocation    = "Location"
)

// Stats counts normalized events per category for one batch.
type Stats map[event.Category]int

// Add increments the count for a category.
func (s Stats) Add(c event.Category) {
	s[c]++
}

// Result is the outcome of one batch import.
type Result struct {
	Events        []*event.Event `json:"events"`
	Stats         Stats          `json:"stats"`
	RejectedCount int            `json:"rejected_count"`
}

// Importer runs batches of delimited calendar-export text through the
// record parser.
type Importer struct {
	parser  *Parser
	metrics *logger.Metrics
}

// New creates a batch importer around a record parser.
func New(parser *Parser) *Importer {
	return &Importer{
		parser:  parser,
		metrics: logger.NewMetrics(),
	}
}

// Metrics exposes the counters and timings accumulated across batches.
func (im *Importer) Metrics() *logger.Metrics {
	return im.metrics
}

// ImportBatch parses a whole delimited-text export. The first line is the
// header and defines column order; the delimiter (tab or comma) is sniffed
// from it. Every data row goes through the record parser; rejected rows are
// counted and skipped, never aborting the batch. Empty or header-only input
// yields an empty successful result.
func (im *Importer) ImportBatch(text string) *Result {
	start := time.Now()
	result := &Result{
		Events: []*event.Event{},
		Stats:  Stats{},
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return result
	}

	reader := csv.NewReader(strings.NewReader(text))
	reader.Comma = sniffDelimiter(text)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		logger.Warn("unreadable header row", logger.Fields{"error": err.Error()})
		return result
	}
	columns := indexColumns(header)

	// A row must at least reach the subject and start date columns; exports
	// are routinely ragged in their trailing columns and that is fine.
	minFields := columns[colSubject]
	if columns[colStartDate] > minFields {
		minFields = columns[colStartDate]
	}
	minFields++

	for rowNum := 1; ; rowNum++ {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			result.RejectedCount++
			logger.Warn("unreadable row", logger.Fields{"row": rowNum, "error": err.Error()})
			continue
		}

		if len(row) < minFields {
			result.RejectedCount++
			logger.Debug("malformed row", logger.Fields{"row": rowNum, "fields": len(row)})
			continue
		}

		rec := Record{
			Title:       cell(row, columns, colSubject),
			DateText:    cell(row, columns, colStartDate),
			TimeText:    cell(row, columns, colStartTime),
			Description: cell(row, columns, colDescription),
			Location:    cell(row, columns, colLocation),
		}

		evt, reason := im.parser.ParseRecord(rec)
		if reason != RejectNone {
			result.RejectedCount++
			logger.Debug("rejected row", logger.Fields{"row": rowNum, "reason": string(reason)})
			continue
		}

		result.Events = append(result.Events, evt)
		result.Stats.Add(evt.Category)
	}

	im.metrics.Add("events_imported", int64(len(result.Events)))
	im.metrics.Add("rows_rejected", int64(result.RejectedCount))
	im.metrics.RecordTiming("import_batch", time.Since(start))

	logger.Info("batch imported", logger.Fields{
		"events":   len(result.Events),
		"rejected": result.RejectedCount,
	})
	logger.Debug("import metrics", logger.Fields(im.metrics.Snapshot()))

	return result
}

// sniffDelimiter picks the field delimiter from the header line: tab when
// present, comma otherwise.
func sniffDelimiter(text string) rune {
	headerLine := text
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		headerLine = text[:i]
	}
	if strings.ContainsRune(headerLine, '\t') {
		return '\t'
	}
	return ','
}

// indexColumns maps trimmed header names to their positions.
func indexColumns(header []string) map[string]int {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}
	return columns
}

// cell reads a named column from a row, tolerating rows shorter than the
// header and headers missing the column entirely.
func cell(row []string, columns map[string]int, name string) string {
	idx, ok := columns[name]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
