package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSourceRef(t *testing.T) {
	cases := []struct {
		raw      string
		isCard   bool
		rowIndex int
	}{
		{"BC-5", true, 5},
		{"BC-123", true, 123},
		{"BC-xyz", false, 0},
		{"BC-", false, 0},
		{"C-5", false, 0},
		{"", false, 0},
		{"bc-5", false, 0}, // prefix is case-sensitive
	}
	for _, tc := range cases {
		ref := ParseSourceRef(tc.raw)
		assert.Equal(t, tc.isCard, ref.IsCard, "raw %q", tc.raw)
		assert.Equal(t, tc.rowIndex, ref.RowIndex, "raw %q", tc.raw)
		assert.Equal(t, tc.raw, ref.Raw)
	}
}

func TestLinkActive(t *testing.T) {
	assert.True(t, OpportunityContactLink{Status: "active"}.Active())
	assert.False(t, OpportunityContactLink{Status: "Active"}.Active())
	assert.False(t, OpportunityContactLink{Status: "inactive"}.Active())
	assert.False(t, OpportunityContactLink{Status: ""}.Active())
}
