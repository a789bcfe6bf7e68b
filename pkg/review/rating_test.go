package review

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)

	assert.Equal(t, 0.0, s.Average)
	assert.Equal(t, int64(0), s.Total)
	assert.Len(t, s.StarCounts, 5)
	for _, star := range []string{"1", "2", "3", "4", "5"} {
		assert.Equal(t, int64(0), s.StarCounts[star])
	}
}

func TestSummarizeHistogramSumsToTotal(t *testing.T) {
	s := Summarize([]int{5, 5, 4, 1, 3, 5})

	assert.Equal(t, int64(6), s.Total)
	assert.Equal(t, 3.8, s.Average)
	assert.Equal(t, int64(3), s.StarCounts["5"])
	assert.Equal(t, int64(0), s.StarCounts["2"])

	var sum int64
	for _, c := range s.StarCounts {
		sum += c
	}
	assert.Equal(t, s.Total, sum)
}

func TestSummarizeIgnoresOutOfRange(t *testing.T) {
	s := Summarize([]int{0, 6, 4})

	assert.Equal(t, int64(1), s.Total)
	assert.Equal(t, 4.0, s.Average)
}

func TestRound(t *testing.T) {
	assert.Equal(t, 4.7, Round(4.666, 1))
	assert.Equal(t, 1.23, Round(1.234, 2))
}
