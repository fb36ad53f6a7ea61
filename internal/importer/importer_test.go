package importer

import (
	"bytes"
	"math/rand"
	"os"
	"strings"
	"testing"

	"github.com/pfrederiksen/ihcc-events/internal/dates"
	"github.com/pfrederiksen/ihcc-events/internal/event"
	"github.com/pfrederiksen/ihcc-events/internal/logger"
)

func newTestImporter() *Importer {
	return New(NewParser(nil, nil, rand.New(rand.NewSource(1))))
}

func TestImportBatchSample(t *testing.T) {
	result := newTestImporter().ImportBatch(SampleCSV)

	if result.RejectedCount != 0 {
		t.Errorf("RejectedCount = %d, want 0", result.RejectedCount)
	}
	if len(result.Events) != 5 {
		t.Fatalf("got %d events, want 5", len(result.Events))
	}

	wantCategories := []event.Category{
		event.CategoryFitness, // WoW Day
		event.CategoryFitness, // Cardio Sculpt
		event.CategoryKids,    // Jr. Tennis Member-Guest
		event.CategoryKids,    // Father-Son Night of Fun!
		event.CategoryFitness, // Circuit Training
	}
	for i, want := range wantCategories {
		if got := result.Events[i].Category; got != want {
			t.Errorf("event %d (%s) category = %s, want %s", i, result.Events[i].Title, got, want)
		}
	}

	if result.Stats[event.CategoryFitness] != 3 || result.Stats[event.CategoryKids] != 2 {
		t.Errorf("Stats = %v, want Fitness:3 Kids:2", result.Stats)
	}
}

func TestImportBatchRecordsMetrics(t *testing.T) {
	im := newTestImporter()
	im.ImportBatch(SampleCSV)

	snapshot := im.Metrics().Snapshot()
	counters := snapshot["counters"].(map[string]int64)
	if counters["events_imported"] != 5 {
		t.Errorf("events_imported = %d, want 5", counters["events_imported"])
	}
	if counters["rows_rejected"] != 0 {
		t.Errorf("rows_rejected = %d, want 0", counters["rows_rejected"])
	}

	timings := snapshot["timings"].(map[string]map[string]interface{})
	if _, ok := timings["import_batch"]; !ok {
		t.Error("import_batch timing not recorded")
	}
}

func TestImportBatchLogsMetricsAtDebug(t *testing.T) {
	var buf bytes.Buffer
	logger.SetDefault(logger.New(logger.LevelDebug, &buf))
	defer logger.SetDefault(logger.New(logger.LevelInfo, os.Stderr))

	newTestImporter().ImportBatch(SampleCSV)

	out := buf.String()
	if !strings.Contains(out, "import metrics") {
		t.Fatalf("debug output missing metrics entry:\n%s", out)
	}
	if !strings.Contains(out, "events_imported") || !strings.Contains(out, "import_batch") {
		t.Errorf("metrics entry missing counters or timings:\n%s", out)
	}
}

func TestImportBatchSampleNormalization(t *testing.T) {
	result := newTestImporter().ImportBatch(SampleCSV)
	if len(result.Events) != 5 {
		t.Fatalf("got %d events, want 5", len(result.Events))
	}

	wow := result.Events[0]
	if wow.Date != "2025-06-20" {
		t.Errorf("date = %q, want 2025-06-20", wow.Date)
	}
	if wow.Time != "05:15:00" {
		t.Errorf("time = %q, want 05:15:00", wow.Time)
	}
	if wow.Location != event.DefaultLocation {
		t.Errorf("location = %q, want default club name", wow.Location)
	}
	if len(wow.Description) > 200 {
		t.Errorf("description length = %d, want <= 200", len(wow.Description))
	}
	if !strings.HasPrefix(wow.RegistrationURL, event.BaseURL+"/events/wow-day") {
		t.Errorf("registration URL = %q, want slug-derived", wow.RegistrationURL)
	}

	// Explicit prices beat category defaults: $25 on Jr. Tennis, the lower
	// $30 on Father-Son.
	if got := result.Events[2].Price; got != 25 {
		t.Errorf("Jr. Tennis price = %d, want 25", got)
	}
	if got := result.Events[3].Price; got != 30 {
		t.Errorf("Father-Son price = %d, want 30", got)
	}
}

func TestImportBatchHeaderOnly(t *testing.T) {
	result := newTestImporter().ImportBatch("Subject\tStart Date\tStart Time\tDescription\tLocation")

	if len(result.Events) != 0 {
		t.Errorf("got %d events, want 0", len(result.Events))
	}
	if len(result.Stats) != 0 {
		t.Errorf("Stats = %v, want empty", result.Stats)
	}
	if result.RejectedCount != 0 {
		t.Errorf("RejectedCount = %d, want 0", result.RejectedCount)
	}
}

func TestImportBatchEmptyInput(t *testing.T) {
	result := newTestImporter().ImportBatch("")

	if len(result.Events) != 0 || result.RejectedCount != 0 {
		t.Errorf("empty input: events=%d rejected=%d, want 0/0", len(result.Events), result.RejectedCount)
	}
}

func TestImportBatchRejections(t *testing.T) {
	csv := strings.Join([]string{
		"Subject\tStart Date\tStart Time\tDescription\tLocation",
		"\t6/20/2025\t5:15 AM\tno subject here\t",             // missing subject
		"Ghost Event\tTBD\t5:15 AM\tdate never announced\t",   // unparseable date
		"Stub",                                                // malformed: no date column at all
		"Wine Dinner\t6/21/2025\t7:00 PM\tFive courses $89\t", // valid
	}, "\n")

	result := newTestImporter().ImportBatch(csv)

	if result.RejectedCount != 3 {
		t.Errorf("RejectedCount = %d, want 3", result.RejectedCount)
	}
	if len(result.Events) != 1 {
		t.Fatalf("got %d events, want 1", len(result.Events))
	}
	if result.Events[0].Title != "Wine Dinner" {
		t.Errorf("surviving event = %q, want Wine Dinner", result.Events[0].Title)
	}
	if result.Events[0].Price != 89 {
		t.Errorf("price = %d, want explicit 89", result.Events[0].Price)
	}
}

func TestImportBatchCommaDelimited(t *testing.T) {
	csv := strings.Join([]string{
		"Subject,Start Date,Start Time,Description,Location",
		`Trivia Night,7/10/2025,7:00 PM,"Teams of four, prizes for the winners",Grill Room`,
	}, "\n")

	result := newTestImporter().ImportBatch(csv)

	if len(result.Events) != 1 {
		t.Fatalf("got %d events, want 1 (rejected=%d)", len(result.Events), result.RejectedCount)
	}
	evt := result.Events[0]
	if evt.Title != "Trivia Night" {
		t.Errorf("title = %q", evt.Title)
	}
	if evt.Description != "Teams of four, prizes for the winners" {
		t.Errorf("description = %q, want quoted field intact", evt.Description)
	}
	if evt.Location != "Grill Room" {
		t.Errorf("location = %q, want Grill Room", evt.Location)
	}
	if evt.Category != event.CategorySocial {
		t.Errorf("category = %s, want Social", evt.Category)
	}
}

func TestImportBatchExtraColumnsIgnored(t *testing.T) {
	csv := strings.Join([]string{
		"Priority\tSubject\tStart Date\tStart Time\tDescription\tLocation\tShow time as",
		"Normal\tYoga at Dawn\t8/1/2025\t6:00 AM\tSunrise flow on the lawn\tPool Deck\t2",
	}, "\n")

	result := newTestImporter().ImportBatch(csv)

	if len(result.Events) != 1 {
		t.Fatalf("got %d events, want 1", len(result.Events))
	}
	evt := result.Events[0]
	if evt.Title != "Yoga at Dawn" || evt.Category != event.CategoryFitness {
		t.Errorf("event = %q/%s, want Yoga at Dawn/Fitness", evt.Title, evt.Category)
	}
	if evt.Time != "06:00:00" {
		t.Errorf("time = %q, want 06:00:00", evt.Time)
	}
}

func TestParseRecordTimeFallback(t *testing.T) {
	p := NewParser(nil, nil, rand.New(rand.NewSource(1)))

	evt, reason := p.ParseRecord(Record{
		Title:    "Harvest Dinner",
		DateText: "10/3/2025",
	})
	if reason != RejectNone {
		t.Fatalf("reason = %q, want none", reason)
	}
	if evt.Time != dates.DefaultTime {
		t.Errorf("time = %q, want fallback %q", evt.Time, dates.DefaultTime)
	}
}

func TestParseRecordScanTextPath(t *testing.T) {
	p := NewParser(nil, nil, rand.New(rand.NewSource(1)))

	evt, reason := p.ParseRecord(Record{
		Title:           "Oktoberfest on the Patio",
		ScanText:        "Oktoberfest on the Patio 9/26/2025 5:30 PM bratwurst and beer",
		Description:     "Bratwurst, pretzels, and a live band",
		RegistrationURL: "https://www.ihcckc.com/default.aspx?p=.NETEventView&ID=1234567",
	})
	if reason != RejectNone {
		t.Fatalf("reason = %q, want none", reason)
	}
	if evt.Date != "2025-09-26" || evt.Time != "17:30:00" {
		t.Errorf("date/time = %s %s, want 2025-09-26 17:30:00", evt.Date, evt.Time)
	}
	if evt.RegistrationURL != "https://www.ihcckc.com/default.aspx?p=.NETEventView&ID=1234567" {
		t.Errorf("registration URL = %q, want supplied URL kept", evt.RegistrationURL)
	}
}

func TestParseRecordNoDateSources(t *testing.T) {
	p := NewParser(nil, nil, rand.New(rand.NewSource(1)))

	if _, reason := p.ParseRecord(Record{Title: "Mystery Event"}); reason != RejectMissingRequiredField {
		t.Errorf("reason = %q, want %q", reason, RejectMissingRequiredField)
	}
	if _, reason := p.ParseRecord(Record{Title: "", DateText: "6/20/2025"}); reason != RejectMissingRequiredField {
		t.Errorf("reason = %q, want %q", reason, RejectMissingRequiredField)
	}
	if _, reason := p.ParseRecord(Record{Title: "Ghost", ScanText: "no date in here"}); reason != RejectUnparseableDate {
		t.Errorf("reason = %q, want %q", reason, RejectUnparseableDate)
	}
}
