package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Audio struct {
	SampleRate int `yaml:"sample_rate"`
	Channels   int `yaml:"channels"`
}

type Segmentation struct {
	Seconds int `yaml:"seconds"`
}

type ASR struct {
	URL string `yaml:"url"`
}

type Paths struct {
	Videos  string `yaml:"videos"`
	Outputs string `yaml:"outputs"`
}

type Visualize struct {
	CSV       string `yaml:"csv"`
	BucketSec int    `yaml:"bucket_sec"`
}

type Root struct {
	Paths        Paths        `yaml:"paths"`
	Audio        Audio        `yaml:"audio"`
	Segmentation Segmentation `yaml:"segmentation"`
	ASR          ASR          `yaml:"asr"`
	Visualize    Visualize    `yaml:"visualize"`
	Extensions   []string     `yaml:"extensions"`
}

// Load reads config.yaml from CONFIG_PATH or a couple of conventional
// locations. A missing file is not an error: defaults alone describe a
// runnable mock-mode setup.
func Load() (*Root, error) {
	guess := []string{
		filepath.Join("config", "config.yaml"),
		"config.yaml",
	}
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		guess = []string{p}
	}

	cfg := &Root{}
	for _, p := range guess {
		f, err := os.Open(p)
		if err != nil {
			continue
		}
		err = yaml.NewDecoder(f).Decode(cfg)
		f.Close()
		if err != nil {
			return nil, err
		}
		break
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Root) applyDefaults() {
	if c.Paths.Videos == "" {
		c.Paths.Videos = "data/videos"
	}
	if c.Paths.Outputs == "" {
		c.Paths.Outputs = "output_csv"
	}
	if c.Audio.SampleRate == 0 {
		c.Audio.SampleRate = 16000
	}
	if c.Audio.Channels == 0 {
		c.Audio.Channels = 1
	}
	if c.Segmentation.Seconds == 0 {
		c.Segmentation.Seconds = 5
	}
	if c.Visualize.BucketSec == 0 {
		c.Visualize.BucketSec = 5
	}
	if len(c.Extensions) == 0 {
		c.Extensions = []string{".mp4", ".avi", ".mov", ".mkv"}
	}
}
