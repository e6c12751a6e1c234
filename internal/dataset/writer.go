package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"comm-metrics-go/internal/types"
)

// Column order is the fixed schema shared by the writer, the loader and the
// visualization step. Not configurable per run.
var SegmentHeader = []string{"video_file", "start_timestamp", "transcription", "word_count", "sentiment_score", "sentiment"}

var MetricsHeader = []string{"recording", "duration_sec", "segments", "word_count", "mean_compound", "sentiment"}

// WriteSegments writes the per-segment transcript CSV for one recording.
func WriteSegments(path string, rows []types.SegmentRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(SegmentHeader); err != nil {
		return err
	}
	for _, r := range rows {
		rec := []string{
			r.VideoFile,
			strconv.FormatFloat(r.StartTimestamp, 'f', 1, 64),
			r.Transcription,
			strconv.Itoa(r.WordCount),
			strconv.FormatFloat(r.SentimentScore, 'f', 4, 64),
			r.Sentiment,
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// AppendMetrics appends one MetricRow to the run-level metrics CSV, writing
// the header only when the file is new or empty.
func AppendMetrics(path string, row types.MetricRow) error {
	needHeader := true
	if fi, err := os.Stat(path); err == nil && fi.Size() > 0 {
		needHeader = false
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if needHeader {
		if err := w.Write(MetricsHeader); err != nil {
			return err
		}
	}
	rec := []string{
		row.Recording,
		strconv.FormatFloat(row.DurationSec, 'f', 2, 64),
		strconv.Itoa(row.Segments),
		strconv.Itoa(row.WordCount),
		strconv.FormatFloat(row.MeanCompound, 'f', 4, 64),
		row.Sentiment,
	}
	if err := w.Write(rec); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}
