package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"comm-metrics-go/internal/config"
	"comm-metrics-go/internal/dataset"
	"comm-metrics-go/internal/media"
	"comm-metrics-go/internal/sentiment"
	"comm-metrics-go/internal/transcription"
	"comm-metrics-go/internal/types"
)

// Media is the slice of ffmpeg functionality the pipeline needs; tests stub
// it to run without the binaries installed.
type Media interface {
	ProbeDuration(ctx context.Context, path string) (float64, error)
	ExtractAudio(ctx context.Context, videoPath, wavPath string) error
	SplitWAV(ctx context.Context, wavPath, dir string, segmentSec int) ([]media.Segment, error)
}

type Pipeline struct {
	cfg      *config.Root
	log      *logrus.Entry
	media    Media
	rec      transcription.Recognizer
	analyzer *sentiment.Analyzer
}

func New(cfg *config.Root, log *logrus.Entry) *Pipeline {
	return &Pipeline{
		cfg:      cfg,
		log:      log,
		media:    media.NewFFmpeg(cfg.Audio.SampleRate, cfg.Audio.Channels),
		rec:      transcription.New(cfg.ASR.URL),
		analyzer: sentiment.NewAnalyzer(),
	}
}

// Result reports what one batch run did.
type Result struct {
	Processed   int
	Skipped     int
	MetricsPath string
	SummaryPath string
}

// Run processes every video in the configured directory, one at a time in
// listing order. A recording that cannot be decoded or transcribed is logged
// and skipped; the batch itself keeps going.
func (p *Pipeline) Run(ctx context.Context) (Result, error) {
	recordings, err := ScanVideos(p.cfg.Paths.Videos, p.cfg.Extensions)
	if err != nil {
		return Result{}, err
	}
	if err := os.MkdirAll(p.cfg.Paths.Outputs, 0o755); err != nil {
		return Result{}, fmt.Errorf("create output dir: %w", err)
	}

	res := Result{
		MetricsPath: filepath.Join(p.cfg.Paths.Outputs, "metrics.csv"),
		SummaryPath: filepath.Join(p.cfg.Paths.Outputs, "summary.xlsx"),
	}
	var metricRows []types.MetricRow
	for _, rec := range recordings {
		recLog := p.log.WithField("recording", rec.Name)
		row, err := p.processOne(ctx, rec)
		if err != nil {
			recLog.WithError(err).Warn("skipping recording")
			res.Skipped++
			continue
		}
		if err := dataset.AppendMetrics(res.MetricsPath, row); err != nil {
			return res, fmt.Errorf("append metrics: %w", err)
		}
		metricRows = append(metricRows, row)
		res.Processed++
		recLog.WithFields(logrus.Fields{
			"segments":   row.Segments,
			"word_count": row.WordCount,
			"sentiment":  row.Sentiment,
		}).Info("recording processed")
	}

	if len(metricRows) > 0 {
		if err := dataset.WriteSummaryWorkbook(res.SummaryPath, metricRows); err != nil {
			p.log.WithError(err).Warn("summary workbook not written")
			res.SummaryPath = ""
		}
	} else {
		res.SummaryPath = ""
	}
	return res, nil
}

func (p *Pipeline) processOne(ctx context.Context, rec types.Recording) (types.MetricRow, error) {
	workDir, err := os.MkdirTemp("", "comm-metrics-")
	if err != nil {
		return types.MetricRow{}, err
	}
	defer os.RemoveAll(workDir)

	wavPath := filepath.Join(workDir, rec.Name+".wav")
	if err := p.media.ExtractAudio(ctx, rec.Path, wavPath); err != nil {
		return types.MetricRow{}, fmt.Errorf("extract audio: %w", err)
	}
	duration, err := p.media.ProbeDuration(ctx, wavPath)
	if err != nil {
		return types.MetricRow{}, fmt.Errorf("probe duration: %w", err)
	}
	segments, err := p.media.SplitWAV(ctx, wavPath, workDir, p.cfg.Segmentation.Seconds)
	if err != nil {
		return types.MetricRow{}, fmt.Errorf("segment audio: %w", err)
	}

	segRows := make([]types.SegmentRecord, 0, len(segments))
	for _, seg := range segments {
		text, err := p.rec.Transcribe(ctx, seg.Path)
		if err != nil {
			return types.MetricRow{}, fmt.Errorf("transcribe segment at %.1fs: %w", seg.Start, err)
		}
		compound := p.analyzer.Score(text)
		segRows = append(segRows, types.SegmentRecord{
			VideoFile:      rec.Path,
			StartTimestamp: seg.Start,
			Transcription:  text,
			WordCount:      len(strings.Fields(text)),
			SentimentScore: compound,
			Sentiment:      sentiment.Classify(compound),
		})
	}

	segCSV := filepath.Join(p.cfg.Paths.Outputs,
		fmt.Sprintf("%s_%s.csv", rec.Name, time.Now().Format("20060102_150405")))
	if err := dataset.WriteSegments(segCSV, segRows); err != nil {
		return types.MetricRow{}, err
	}
	p.log.WithField("recording", rec.Name).WithField("csv", segCSV).Debug("segment csv written")

	return summarize(rec, duration, segRows), nil
}

// summarize folds the per-segment rows into the recording's MetricRow. The
// recording-level label comes from classifying the mean compound score;
// per-label counts are kept alongside so nothing is lost.
func summarize(rec types.Recording, duration float64, segRows []types.SegmentRecord) types.MetricRow {
	row := types.MetricRow{
		Recording:   rec.Name + filepath.Ext(rec.Path),
		DurationSec: duration,
		Segments:    len(segRows),
	}
	mean := 0.0
	for _, s := range segRows {
		row.WordCount += s.WordCount
		mean += s.SentimentScore
		switch s.Sentiment {
		case sentiment.LabelNegative:
			row.NegativeCount++
		case sentiment.LabelPositive:
			row.PositiveCount++
		default:
			row.NeutralCount++
		}
	}
	if len(segRows) > 0 {
		mean /= float64(len(segRows))
	}
	row.MeanCompound = mean
	row.Sentiment = sentiment.Classify(mean)
	return row
}

// ScanVideos lists the recordings in dir, filtered by extension
// (case-insensitive), in directory listing order. Subdirectories are not
// descended into.
func ScanVideos(dir string, extensions []string) ([]types.Recording, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read videos dir: %w", err)
	}
	var out []types.Recording
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		for _, want := range extensions {
			if ext == strings.ToLower(want) {
				base := strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))
				out = append(out, types.Recording{
					Path: filepath.Join(dir, e.Name()),
					Name: base,
				})
				break
			}
		}
	}
	return out, nil
}
