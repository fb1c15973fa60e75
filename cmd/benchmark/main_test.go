package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBenchmarksDrainEveryValue(t *testing.T) {
	for _, b := range benchmarks {
		t.Run(b.name, func(t *testing.T) {
			for _, n := range []int{0, 1, 5} {
				assert.Equal(t, n+1, b.fn(n))
			}
		})
	}
}
