package review

import (
	"math"
	"strconv"

	"HomeChef-Backend/domain"
)

// Summarize computes the mean (one decimal) and the 1..5 histogram of ratings.
// Out-of-range values are ignored.
func Summarize(ratings []int) domain.RatingSummary {
	summary := domain.RatingSummary{StarCounts: make(map[string]int64, 5)}
	for star := 1; star <= 5; star++ {
		summary.StarCounts[strconv.Itoa(star)] = 0
	}

	var sum int64
	for _, r := range ratings {
		if r < 1 || r > 5 {
			continue
		}
		summary.StarCounts[strconv.Itoa(r)]++
		summary.Total++
		sum += int64(r)
	}

	if summary.Total > 0 {
		summary.Average = Round(float64(sum)/float64(summary.Total), 1)
	}
	return summary
}

func Round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
