package usecase

import (
	"math"

	"github.com/fadilmartias/interview-assistant/internal/model"
)

// TotalScore is the arithmetic mean of all scored answers, rounded to two
// decimal places. Unscored answers are skipped; no scored answers yields 0.
func TotalScore(answers []model.InterviewAnswer) float64 {
	sum := 0.0
	count := 0
	for _, a := range answers {
		if a.Score == nil {
			continue
		}
		sum += *a.Score
		count++
	}
	if count == 0 {
		return 0.0
	}
	return round2(sum / float64(count))
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
