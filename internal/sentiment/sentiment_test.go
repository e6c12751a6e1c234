package sentiment

import "testing"

func TestClassify(t *testing.T) {
	cases := []struct {
		compound float64
		want     string
	}{
		{0.9, LabelPositive},
		{0.05, LabelPositive},
		{0.049, LabelNeutral},
		{0, LabelNeutral},
		{-0.049, LabelNeutral},
		{-0.05, LabelNegative},
		{-1, LabelNegative},
	}
	for _, c := range cases {
		if got := Classify(c.compound); got != c.want {
			t.Errorf("Classify(%v) = %q, want %q", c.compound, got, c.want)
		}
	}
}

func TestScoreBlankTextIsNeutral(t *testing.T) {
	a := NewAnalyzer()
	for _, text := range []string{"", "   ", "\n\t"} {
		got := a.Score(text)
		if got != 0 {
			t.Errorf("Score(%q) = %v, want 0", text, got)
		}
		if Classify(got) != LabelNeutral {
			t.Errorf("blank text classified %q, want neutral", Classify(got))
		}
	}
}

func TestScorePolarity(t *testing.T) {
	a := NewAnalyzer()
	pos := a.Score("I love this, it is great and wonderful")
	neg := a.Score("I hate this, it is terrible and awful")
	if pos <= 0 {
		t.Errorf("positive text scored %v, want > 0", pos)
	}
	if neg >= 0 {
		t.Errorf("negative text scored %v, want < 0", neg)
	}
}
