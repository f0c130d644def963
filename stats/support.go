package stats

import (
	"fmt"
	"math"
)

// Summary describes the supports of the patterns found at one level.
type Summary struct {
	Count int
	Min   int
	Max   int
	Mean  float64
}

func Summarize(supports []int) Summary {
	s := Summary{Count: len(supports)}
	if len(supports) == 0 {
		return s
	}
	s.Min, s.Max = supports[0], supports[0]
	total := 0
	for _, c := range supports {
		if c < s.Min {
			s.Min = c
		}
		if c > s.Max {
			s.Max = c
		}
		total += c
	}
	s.Mean = Round(float64(total)/float64(len(supports)), 2)
	return s
}

func (s Summary) String() string {
	if s.Count == 0 {
		return "none"
	}
	return fmt.Sprintf("support min %d max %d mean %v", s.Min, s.Max, s.Mean)
}

func Round(val float64, places int) (newVal float64) {
	pow := math.Pow(10, float64(places))
	return math.Round(val*pow) / pow
}
