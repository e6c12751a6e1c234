package sentiment

import (
	"strings"

	"github.com/jonreiter/govader"
)

// Labels used across the CSV schema and the distribution chart.
const (
	LabelNegative = "negative"
	LabelNeutral  = "neutral"
	LabelPositive = "positive"
)

// Classification thresholds on the VADER compound score. These are the
// standard cutoffs recommended for the lexicon: compound >= 0.05 reads
// positive, <= -0.05 negative, anything between neutral.
const (
	positiveThreshold = 0.05
	negativeThreshold = -0.05
)

type Analyzer struct {
	vader *govader.SentimentIntensityAnalyzer
}

func NewAnalyzer() *Analyzer {
	return &Analyzer{vader: govader.NewSentimentIntensityAnalyzer()}
}

// Score returns the compound polarity of text in [-1, 1]. Blank text scores
// zero, which classifies as neutral.
func (a *Analyzer) Score(text string) float64 {
	if strings.TrimSpace(text) == "" {
		return 0
	}
	return a.vader.PolarityScores(text).Compound
}

// Classify maps a compound score onto the three-way sentiment label.
func Classify(compound float64) string {
	switch {
	case compound >= positiveThreshold:
		return LabelPositive
	case compound <= negativeThreshold:
		return LabelNegative
	default:
		return LabelNeutral
	}
}
