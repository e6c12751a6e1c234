package visualize

import (
	"fmt"
	"os"

	"github.com/wcharczuk/go-chart/v2"

	"comm-metrics-go/internal/sentiment"
	"comm-metrics-go/internal/types"
)

// Bucket is one histogram bar: total transcribed words inside one
// fixed-length stretch of session time.
type Bucket struct {
	Index int
	Label string
	Words int
}

// Tally is one bar of the sentiment distribution chart.
type Tally struct {
	Label string
	Count int
}

// BucketWordCounts sums word counts per bucketSec-second time bucket. Buckets
// are contiguous from zero, so quiet stretches show up as empty bars. Every
// row lands in exactly one bucket and the bar totals add up to the total
// word count.
func BucketWordCounts(rows []types.SegmentRecord, bucketSec int) ([]Bucket, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("no rows to bucket")
	}
	if bucketSec <= 0 {
		return nil, fmt.Errorf("bucket length must be positive, got %d", bucketSec)
	}

	maxIdx := 0
	counts := map[int]int{}
	for _, r := range rows {
		idx := int(r.StartTimestamp) / bucketSec
		if idx < 0 {
			idx = 0
		}
		counts[idx] += r.WordCount
		if idx > maxIdx {
			maxIdx = idx
		}
	}

	out := make([]Bucket, 0, maxIdx+1)
	for i := 0; i <= maxIdx; i++ {
		out = append(out, Bucket{
			Index: i,
			Label: fmt.Sprintf("%d-%d sec", i*bucketSec, (i+1)*bucketSec),
			Words: counts[i],
		})
	}
	return out, nil
}

// TallySentiments counts rows per sentiment label, in a fixed display order.
func TallySentiments(rows []types.SegmentRecord) ([]Tally, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("no rows to tally")
	}
	counts := map[string]int{}
	for _, r := range rows {
		counts[r.Sentiment]++
	}
	order := []string{sentiment.LabelNegative, sentiment.LabelNeutral, sentiment.LabelPositive}
	out := make([]Tally, 0, len(order))
	for _, label := range order {
		out = append(out, Tally{Label: label, Count: counts[label]})
	}
	return out, nil
}

// RenderHistogram saves the word-count-per-bucket bar chart as a PNG.
func RenderHistogram(path string, buckets []Bucket) error {
	if len(buckets) == 0 {
		return fmt.Errorf("no buckets to render")
	}
	bars := make([]chart.Value, 0, len(buckets))
	maxWords := 1.0
	for _, b := range buckets {
		bars = append(bars, chart.Value{Value: float64(b.Words), Label: b.Label})
		if float64(b.Words) > maxWords {
			maxWords = float64(b.Words)
		}
	}
	graph := chart.BarChart{
		Title:    "Transcribed Words per Time Bucket",
		Height:   512,
		BarWidth: 48,
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: maxWords},
		},
		Bars: bars,
	}
	return renderPNG(path, graph)
}

// RenderSentimentBars saves the sentiment distribution bar chart as a PNG.
func RenderSentimentBars(path string, tallies []Tally) error {
	if len(tallies) == 0 {
		return fmt.Errorf("no tallies to render")
	}
	bars := make([]chart.Value, 0, len(tallies))
	maxCount := 1.0
	for _, tl := range tallies {
		bars = append(bars, chart.Value{Value: float64(tl.Count), Label: tl.Label})
		if float64(tl.Count) > maxCount {
			maxCount = float64(tl.Count)
		}
	}
	graph := chart.BarChart{
		Title:    "Sentiment Classification Distribution",
		Height:   512,
		BarWidth: 80,
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: maxCount},
		},
		Bars: bars,
	}
	return renderPNG(path, graph)
}

func renderPNG(path string, graph chart.BarChart) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := graph.Render(chart.PNG, f); err != nil {
		return fmt.Errorf("render %s: %w", path, err)
	}
	return nil
}
