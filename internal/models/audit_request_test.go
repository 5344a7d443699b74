package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriorityForUrgency(t *testing.T) {
	tests := []struct {
		urgency  string
		expected string
	}{
		{UrgencyCritical, PriorityHigh},
		{UrgencyHigh, PriorityMedium},
		{UrgencyMedium, PriorityNormal},
		{UrgencyLow, PriorityNormal},
		{"", PriorityNormal},
		{"bogus", PriorityNormal},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, PriorityForUrgency(tt.urgency), "urgency %q", tt.urgency)
	}
}
