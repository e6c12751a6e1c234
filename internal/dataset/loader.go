package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"comm-metrics-go/internal/types"
)

// LoadSegments reads a per-segment CSV back for visualization. The file must
// carry the fixed schema; a missing column or a header-only file is a data
// format error, not something to chart around.
func LoadSegments(path string) ([]types.SegmentRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: empty file, expected header %v", path, SegmentHeader)
	}

	idx := map[string]int{}
	for i, h := range rows[0] {
		idx[strings.TrimSpace(strings.ToLower(h))] = i
	}
	for _, col := range SegmentHeader {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("%s: missing column %q", path, col)
		}
	}
	if len(rows) == 1 {
		return nil, fmt.Errorf("%s: no data rows", path)
	}

	out := make([]types.SegmentRecord, 0, len(rows)-1)
	for i, row := range rows[1:] {
		rec := types.SegmentRecord{
			VideoFile:     row[idx["video_file"]],
			Transcription: row[idx["transcription"]],
			Sentiment:     row[idx["sentiment"]],
		}
		rec.StartTimestamp, err = strconv.ParseFloat(strings.TrimSpace(row[idx["start_timestamp"]]), 64)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: bad start_timestamp: %w", path, i+2, err)
		}
		rec.WordCount, err = strconv.Atoi(strings.TrimSpace(row[idx["word_count"]]))
		if err != nil {
			return nil, fmt.Errorf("%s row %d: bad word_count: %w", path, i+2, err)
		}
		rec.SentimentScore, err = strconv.ParseFloat(strings.TrimSpace(row[idx["sentiment_score"]]), 64)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: bad sentiment_score: %w", path, i+2, err)
		}
		out = append(out, rec)
	}
	return out, nil
}
