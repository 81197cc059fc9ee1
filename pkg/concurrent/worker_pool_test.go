package concurrent

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun(t *testing.T) {
	jobs := make([]int, 50)
	for i := range jobs {
		jobs[i] = i
	}

	for _, workers := range []int{0, 1, 3, 100} {
		got := Run(workers, jobs, func(job int) int { return job * job })
		sort.Ints(got)

		want := make([]int, len(jobs))
		for i := range want {
			want[i] = i * i
		}
		assert.Equal(t, want, got, "workers %d", workers)
	}

	assert.Empty(t, Run(3, []int{}, func(job int) int { return job }))
}
