package types

// Recording is one experiment session video discovered on disk.
type Recording struct {
	Path        string  `json:"path"`
	Name        string  `json:"name"`
	DurationSec float64 `json:"duration_sec,omitempty"`
}

// SegmentRecord is one row of the per-segment transcript CSV: a fixed-length
// slice of a recording's audio with its transcription and sentiment.
type SegmentRecord struct {
	VideoFile      string  `json:"video_file"`
	StartTimestamp float64 `json:"start_timestamp"`
	Transcription  string  `json:"transcription"`
	WordCount      int     `json:"word_count"`
	SentimentScore float64 `json:"sentiment_score"`
	Sentiment      string  `json:"sentiment"`
}

// MetricRow summarizes one whole recording; exactly one is appended to the
// run-level metrics CSV per successfully processed video.
type MetricRow struct {
	Recording     string  `json:"recording"`
	DurationSec   float64 `json:"duration_sec"`
	Segments      int     `json:"segments"`
	WordCount     int     `json:"word_count"`
	MeanCompound  float64 `json:"mean_compound"`
	Sentiment     string  `json:"sentiment"`
	NegativeCount int     `json:"negative_count"`
	NeutralCount  int     `json:"neutral_count"`
	PositiveCount int     `json:"positive_count"`
}
