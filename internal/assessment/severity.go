package assessment

import (
	"math"

	"github.com/tbourn/go-wellness-backend/internal/domain"
)

// Level is a qualitative severity label.
type Level string

const (
	Normal          Level = "Normal"
	Mild            Level = "Mild"
	Moderate        Level = "Moderate"
	Severe          Level = "Severe"
	ExtremelySevere Level = "Extremely Severe"
	Unknown         Level = "Unknown"
)

// Band is an inclusive score range. The last band of a scale is open-ended.
type Band struct {
	Level Level `json:"level"`
	Low   int   `json:"low"`
	High  int   `json:"high"`
}

// Contains reports whether score lies in the band.
func (b Band) Contains(score int) bool { return score >= b.Low && score <= b.High }

// Bands are the published DASS-21 cut points, ascending per scale.
var Bands = map[Scale][]Band{
	Depression: {
		{Normal, 0, 9}, {Mild, 10, 13}, {Moderate, 14, 20}, {Severe, 21, 27}, {ExtremelySevere, 28, math.MaxInt},
	},
	Anxiety: {
		{Normal, 0, 7}, {Mild, 8, 9}, {Moderate, 10, 14}, {Severe, 15, 19}, {ExtremelySevere, 20, math.MaxInt},
	},
	Stress: {
		{Normal, 0, 14}, {Mild, 15, 18}, {Moderate, 19, 25}, {Severe, 26, 33}, {ExtremelySevere, 34, math.MaxInt},
	},
}

// Classify returns the first band containing score, or Unknown.
func Classify(scale Scale, score int) Level {
	for _, b := range Bands[scale] {
		if b.Contains(score) {
			return b.Level
		}
	}
	return Unknown
}

// Severity is the classification of a full result.
type Severity struct {
	Depression Level `json:"depression"`
	Anxiety    Level `json:"anxiety"`
	Stress     Level `json:"stress"`
}

// ClassifyScores classifies all three sub-scales.
func ClassifyScores(s domain.Scores) Severity {
	return Severity{
		Depression: Classify(Depression, s.Depression),
		Anxiety:    Classify(Anxiety, s.Anxiety),
		Stress:     Classify(Stress, s.Stress),
	}
}
