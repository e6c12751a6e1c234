package dataset

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"comm-metrics-go/internal/types"
)

func TestWriteSegmentsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session_01.csv")
	in := []types.SegmentRecord{
		{VideoFile: "a.mp4", StartTimestamp: 0, Transcription: "hello world", WordCount: 2, SentimentScore: 0.31, Sentiment: "positive"},
		{VideoFile: "a.mp4", StartTimestamp: 5, Transcription: "", WordCount: 0, SentimentScore: 0, Sentiment: "neutral"},
	}
	if err := WriteSegments(path, in); err != nil {
		t.Fatalf("write: %v", err)
	}

	out, err := LoadSegments(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(out) != len(in) {
		t.Fatalf("got %d rows, want %d", len(out), len(in))
	}
	if out[0].Transcription != "hello world" || out[0].WordCount != 2 {
		t.Errorf("row 0 mismatch: %+v", out[0])
	}
	if out[1].Sentiment != "neutral" || out[1].StartTimestamp != 5 {
		t.Errorf("row 1 mismatch: %+v", out[1])
	}
}

func TestLoadSegmentsRejectsHeaderOnlyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	if err := WriteSegments(path, nil); err != nil {
		t.Fatalf("write: %v", err)
	}
	_, err := LoadSegments(path)
	if err == nil {
		t.Fatal("expected error for header-only file")
	}
	if !strings.Contains(err.Error(), "no data rows") {
		t.Errorf("error %q should mention missing data rows", err)
	}
}

func TestLoadSegmentsRejectsMissingColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	w := csv.NewWriter(f)
	w.Write([]string{"video_file", "start_timestamp", "transcription"})
	w.Write([]string{"a.mp4", "0.0", "hello"})
	w.Flush()
	f.Close()

	_, err = LoadSegments(path)
	if err == nil {
		t.Fatal("expected error for missing columns")
	}
	if !strings.Contains(err.Error(), "word_count") {
		t.Errorf("error %q should name the missing column", err)
	}
}

func TestLoadSegmentsMissingFile(t *testing.T) {
	if _, err := LoadSegments(filepath.Join(t.TempDir(), "nope.csv")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestAppendMetricsWritesHeaderOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "metrics.csv")
	rows := []types.MetricRow{
		{Recording: "a.mp4", DurationSec: 10, Segments: 2, WordCount: 4, MeanCompound: 0.1, Sentiment: "positive"},
		{Recording: "b.mp4", DurationSec: 7.5, Segments: 2, WordCount: 0, MeanCompound: 0, Sentiment: "neutral"},
	}
	for _, r := range rows {
		if err := AppendMetrics(path, r); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	all, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 3 {
		t.Fatalf("got %d lines, want header + 2 rows", len(all))
	}
	for i, h := range MetricsHeader {
		if all[0][i] != h {
			t.Errorf("header[%d] = %q, want %q", i, all[0][i], h)
		}
	}
	if all[1][0] != "a.mp4" || all[2][0] != "b.mp4" {
		t.Errorf("rows out of order: %v", all[1:])
	}
}

func TestWriteSummaryWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.xlsx")
	rows := []types.MetricRow{
		{Recording: "a.mp4", DurationSec: 10, Segments: 2, WordCount: 4, MeanCompound: 0.2, Sentiment: "positive", PositiveCount: 2},
	}
	if err := WriteSummaryWorkbook(path, rows); err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	if fi, err := os.Stat(path); err != nil || fi.Size() == 0 {
		t.Fatalf("workbook not written: %v", err)
	}
}
