package media

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

// Segment is one fixed-length slice of an extracted audio track.
type Segment struct {
	Start float64 `json:"start"`
	Path  string  `json:"path"`
}

// FFmpeg shells out to the ffmpeg/ffprobe binaries on PATH.
type FFmpeg struct {
	SampleRate int
	Channels   int
}

func NewFFmpeg(sampleRate, channels int) *FFmpeg {
	return &FFmpeg{SampleRate: sampleRate, Channels: channels}
}

// ProbeDuration returns the container duration in seconds.
func (f *FFmpeg) ProbeDuration(ctx context.Context, path string) (float64, error) {
	cmd := exec.CommandContext(ctx, "ffprobe",
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path)
	var out, errb bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errb
	if err := cmd.Run(); err != nil {
		return 0, fmt.Errorf("ffprobe %s: %v: %s", filepath.Base(path), err, strings.TrimSpace(errb.String()))
	}
	s := strings.TrimSpace(out.String())
	d, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("ffprobe duration %q: %w", s, err)
	}
	return d, nil
}

// ExtractAudio demuxes the audio track of videoPath into a mono WAV file.
func (f *FFmpeg) ExtractAudio(ctx context.Context, videoPath, wavPath string) error {
	args := []string{"-y",
		"-i", videoPath,
		"-vn",
		"-ac", strconv.Itoa(f.Channels),
		"-ar", strconv.Itoa(f.SampleRate),
		"-f", "wav",
		wavPath,
	}
	return runFFmpeg(ctx, args)
}

// SplitWAV cuts the extracted audio into chunks of at most segmentSec
// seconds, one WAV per chunk, returned in timestamp order. Cuts land on
// fixed boundaries; no attempt is made to avoid splitting mid-word.
func (f *FFmpeg) SplitWAV(ctx context.Context, wavPath, dir string, segmentSec int) ([]Segment, error) {
	dur, err := f.ProbeDuration(ctx, wavPath)
	if err != nil {
		return nil, err
	}
	starts := SegmentStarts(dur, segmentSec)
	segs := make([]Segment, 0, len(starts))
	for i, start := range starts {
		out := filepath.Join(dir, fmt.Sprintf("segment_%04d.wav", i))
		args := []string{"-y",
			"-i", wavPath,
			"-ss", strconv.FormatFloat(start, 'f', 3, 64),
			"-t", strconv.Itoa(segmentSec),
			"-c", "copy",
			out,
		}
		if err := runFFmpeg(ctx, args); err != nil {
			return nil, fmt.Errorf("split at %.1fs: %w", start, err)
		}
		segs = append(segs, Segment{Start: start, Path: out})
	}
	return segs, nil
}

// SegmentStarts returns the start offsets of the fixed-size segmentation of
// a track of the given duration. A final partial chunk is kept; a track
// whose length is an exact multiple does not get an empty trailing chunk.
func SegmentStarts(durationSec float64, segmentSec int) []float64 {
	if durationSec <= 0 || segmentSec <= 0 {
		return nil
	}
	var starts []float64
	step := float64(segmentSec)
	for t := 0.0; t < durationSec; t += step {
		starts = append(starts, t)
	}
	return starts
}

func runFFmpeg(ctx context.Context, args []string) error {
	cmd := exec.CommandContext(ctx, "ffmpeg", args...)
	var errb bytes.Buffer
	cmd.Stderr = &errb
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("ffmpeg: %v: %s", err, lastLine(errb.String()))
	}
	return nil
}

func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	if len(lines) == 0 {
		return ""
	}
	return strings.TrimSpace(lines[len(lines)-1])
}
