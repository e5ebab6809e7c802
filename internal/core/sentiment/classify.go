package sentiment

import "math"

const (
	lexiconThreshold = 0.1
	lexiconGain      = 5.0
	lexiconNeutral   = 0.5

	blendLocal     = 0.6
	blendExternal  = 0.4
	blendThreshold = 0.15
	blendGain      = 3.0
	blendNeutral   = 0.4
	blendSlope     = 0.6
)

// Classification is the label, confidence in [0,1] and unrounded score for one input
type Classification struct {
	Label      Label
	Confidence float64
	Score      float64
}

// Classify blends the component scores for mode and maps the result to a label.
// Thresholds are strict, a score sitting exactly on one is neutral
func Classify(mode Mode, local, external float64) Classification {
	if mode == ModeLexiconOnly {
		return threshold(local, lexiconThreshold, lexiconGain, lexiconNeutral)
	}

	score := blendLocal*local + blendExternal*external
	c := threshold(score, blendThreshold, blendGain, 0)
	if c.Label == Neutral {
		// grows with |score| rather than with distance from the threshold
		c.Confidence = blendNeutral + math.Abs(score)*blendSlope
	}
	return c
}

func threshold(score, t, gain, neutral float64) Classification {
	switch {
	case score > t:
		return Classification{Label: Positive, Confidence: math.Min(math.Abs(score)*gain, 1), Score: score}
	case score < -t:
		return Classification{Label: Negative, Confidence: math.Min(math.Abs(score)*gain, 1), Score: score}
	default:
		return Classification{Label: Neutral, Confidence: neutral, Score: score}
	}
}

// Round2 rounds x to two decimals
func Round2(x float64) float64 {
	r := math.Round(x*100) / 100
	if r == 0 {
		return 0 // no negative zero on the wire
	}
	return r
}

// Percent converts a [0,1] confidence to an integer percentage
func Percent(c float64) int {
	return int(math.Round(c * 100))
}
