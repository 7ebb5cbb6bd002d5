package paging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNext(t *testing.T) {
	tests := []struct {
		name       string
		total      uint64
		limit      uint64
		wantOffset uint64
		wantLimit  uint64
	}{
		{name: "first page", total: 25, limit: 10, wantOffset: 10, wantLimit: 20},
		{name: "limit clamped to total", total: 25, limit: 20, wantOffset: 20, wantLimit: 25},
		{name: "limit equals total", total: 25, limit: 25, wantOffset: 25, wantLimit: 25},
		{name: "limit past total", total: 25, limit: 30, wantOffset: 25, wantLimit: 25},
		{name: "empty collection", total: 0, limit: 10, wantOffset: 0, wantLimit: 0},
		{name: "zero limit", total: 25, limit: 0, wantOffset: 0, wantLimit: 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			off, lim := Next(tt.total, tt.limit)
			assert.Equal(t, tt.wantOffset, off)
			assert.Equal(t, tt.wantLimit, lim)
		})
	}
}

func TestNext_Invariants(t *testing.T) {
	for total := uint64(0); total < 40; total++ {
		for limit := uint64(0); limit < 50; limit++ {
			off, lim := Next(total, limit)
			assert.LessOrEqual(t, off, total)
			assert.LessOrEqual(t, lim, total)
			assert.LessOrEqual(t, off, lim)
		}
	}
}
