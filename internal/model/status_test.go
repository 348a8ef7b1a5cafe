package model

import "testing"

func TestRefreshStatus_String(t *testing.T) {
	tests := []struct {
		status   RefreshStatus
		expected string
	}{
		{RefreshStatusIdle, "Idle"},
		{RefreshStatusFetching, "Fetching"},
		{RefreshStatusRendering, "Rendering"},
	}

	for _, test := range tests {
		if result := test.status.String(); result != test.expected {
			t.Errorf("String() = %s, expected %s", result, test.expected)
		}
	}
}
