package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayStatusOverridesAtRetryCeiling(t *testing.T) {
	tests := []struct {
		name    string
		session InterviewSession
		want    string
	}{
		{"created", InterviewSession{Status: StatusCreated}, StatusCreated},
		{"in progress", InterviewSession{Status: StatusInProgress}, StatusInProgress},
		{"one retry left", InterviewSession{Status: StatusInProgress, RetryCount: 1}, StatusInProgress},
		{"at the ceiling", InterviewSession{Status: StatusInProgress, RetryCount: 2}, StatusMaxRetries},
		{"over the ceiling", InterviewSession{Status: StatusAbandoned, RetryCount: 3}, StatusMaxRetries},
		{"completed at the ceiling", InterviewSession{Status: StatusCompleted, RetryCount: 2}, StatusMaxRetries},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.session.DisplayStatus())
		})
	}
}

func TestHasCandidateInfo(t *testing.T) {
	full := InterviewSession{CandidateName: "Jane", CandidateEmail: "jane@example.com", CandidatePhone: "+15550100"}
	assert.True(t, full.HasCandidateInfo())

	missingPhone := full
	missingPhone.CandidatePhone = ""
	assert.False(t, missingPhone.HasCandidateInfo())

	assert.False(t, (&InterviewSession{}).HasCandidateInfo())
}
