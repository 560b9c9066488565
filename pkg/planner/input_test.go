package planner

import (
	"errors"
	"testing"

	"github.com/stefanpenner/nower/pkg/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEntry(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantName string
		wantDue  *store.Date
		wantErr  bool
	}{
		{name: "plain", input: "Learn guitar", wantName: "Learn guitar"},
		{name: "with due date", input: "Learn guitar due_date:2030-01-01", wantName: "Learn guitar", wantDue: datePtr("2030-01-01")},
		{name: "surrounding space", input: "  Learn guitar   due_date:2030-01-01 ", wantName: "Learn guitar", wantDue: datePtr("2030-01-01")},
		{name: "garbage after marker", input: "Learn due_date:x", wantErr: true},
		{name: "no space before marker", input: "Learn guitardue_date:2030-01-01", wantName: "Learn guitardue_date:2030-01-01"},
		{name: "marker twice ignores date", input: "a due_date:2030-01-01 due_date:2031-01-01", wantName: "a"},
		{name: "bad date", input: "Learn guitar due_date:next week", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, due, err := ParseEntry(tt.input)
			if tt.wantErr {
				var derr *DateError
				require.True(t, errors.As(err, &derr))
				assert.Equal(t, tt.input, derr.Input)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, tt.wantDue, due)
		})
	}
}
