package usecase

import (
	"testing"

	"github.com/fadilmartias/interview-assistant/internal/model"
	"github.com/stretchr/testify/assert"
)

func ptr(f float64) *float64 { return &f }

func TestTotalScore(t *testing.T) {
	tests := []struct {
		name    string
		answers []model.InterviewAnswer
		want    float64
	}{
		{
			name: "mean of all scores",
			answers: []model.InterviewAnswer{
				{Score: ptr(9)}, {Score: ptr(8)}, {Score: ptr(7)},
				{Score: ptr(6)}, {Score: ptr(5)}, {Score: ptr(4)},
			},
			want: 6.5,
		},
		{
			name: "rounded to two decimals",
			answers: []model.InterviewAnswer{
				{Score: ptr(7)}, {Score: ptr(7)}, {Score: ptr(6)},
			},
			want: 6.67,
		},
		{
			name: "unscored answers skipped",
			answers: []model.InterviewAnswer{
				{Score: ptr(8)}, {Score: nil}, {Score: ptr(6)},
			},
			want: 7,
		},
		{
			name:    "no answers",
			answers: nil,
			want:    0,
		},
		{
			name: "only unscored answers",
			answers: []model.InterviewAnswer{
				{Score: nil}, {Score: nil},
			},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TotalScore(tt.answers))
		})
	}
}
