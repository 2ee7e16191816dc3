package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTaskProgress(t *testing.T) {
	tests := []struct {
		name        string
		done, total int
		want        string
		filled      int
	}{
		{"none done", 0, 4, "0/4 done", 0},
		{"half", 2, 4, "2/4 done", 5},
		{"all", 4, 4, "4/4 done", 10},
		{"clamps overshoot", 6, 4, "4/4 done", 10},
		{"clamps negative", -1, 4, "0/4 done", 0},
		{"no tasks", 0, 0, "no tasks", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TaskProgress(tt.done, tt.total, 10)
			assert.Contains(t, got, tt.want)
			assert.Equal(t, tt.filled, strings.Count(got, "█"))
		})
	}
}
