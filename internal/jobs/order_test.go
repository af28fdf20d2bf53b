package jobs

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareWorkedExample(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	a := Job{ID: "a", Name: "A", IsActive: true, NextExecutionAt: base.Add(20 * time.Second).Format(time.RFC3339)}
	b := Job{ID: "b", Name: "B", IsActive: true, NextExecutionAt: base.Add(10 * time.Second).Format(time.RFC3339)}
	c := Job{ID: "c", Name: "C", IsActive: true, NextExecutionAt: "not-a-timestamp"}
	d := Job{ID: "d", Name: "D", IsActive: true}
	i1 := Job{ID: "i1", Name: "I1", IsActive: false, NextExecutionAt: base.Add(5 * time.Second).Format(time.RFC3339)}

	got := SortDefault([]Job{a, b, c, d, i1})

	ids := make([]string, len(got))
	for i, j := range got {
		ids[i] = j.ID
	}
	assert.Equal(t, []string{"b", "a", "c", "d", "i1"}, ids)
}

func TestCompareInvalidAndAbsentNextRunTieOnName(t *testing.T) {
	invalid := Job{ID: "1", Name: "alpha", IsActive: true, NextExecutionAt: "garbage"}
	absent := Job{ID: "2", Name: "beta", IsActive: true}

	// invalid and absent are the same bucket, so the name decides
	assert.Negative(t, Compare(invalid, absent))
	assert.Positive(t, Compare(absent, invalid))
}

func TestCompareNameCaseInsensitive(t *testing.T) {
	a := Job{ID: "1", Name: "alpha"}
	b := Job{ID: "2", Name: "ALPHB"}
	assert.Negative(t, Compare(a, b))
}

func TestCompareIDTieBreak(t *testing.T) {
	a := Job{ID: "1", Name: "same"}
	b := Job{ID: "2", Name: "SAME"}
	assert.Negative(t, Compare(a, b))
	assert.Positive(t, Compare(b, a))
	assert.Zero(t, Compare(a, a))
}

func TestCompareAntisymmetric(t *testing.T) {
	jobsList := fixtureJobs()
	for _, a := range jobsList {
		for _, b := range jobsList {
			assert.Equal(t, Compare(a, b), -Compare(b, a), "a=%s b=%s", a.ID, b.ID)
		}
	}
}

func TestCompareTransitive(t *testing.T) {
	jobsList := fixtureJobs()
	for _, a := range jobsList {
		for _, b := range jobsList {
			for _, c := range jobsList {
				if Compare(a, b) <= 0 && Compare(b, c) <= 0 {
					assert.LessOrEqual(t, Compare(a, c), 0, "a=%s b=%s c=%s", a.ID, b.ID, c.ID)
				}
			}
		}
	}
}

func TestSortDefaultPermutationInvariant(t *testing.T) {
	jobsList := fixtureJobs()
	want := SortDefault(jobsList)

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		shuffled := append([]Job(nil), jobsList...)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		assert.Equal(t, want, SortDefault(shuffled))
	}
}

func TestSortDefaultDoesNotMutateInput(t *testing.T) {
	in := []Job{
		{ID: "2", Name: "b", IsActive: true},
		{ID: "1", Name: "a", IsActive: true},
	}
	out := SortDefault(in)

	require.Equal(t, "2", in[0].ID)
	require.Equal(t, "1", out[0].ID)
}

func fixtureJobs() []Job {
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	return []Job{
		{ID: "1", Name: "alpha", IsActive: true, NextExecutionAt: base.Format(time.RFC3339)},
		{ID: "2", Name: "beta", IsActive: true, NextExecutionAt: base.Add(time.Hour).Format(time.RFC3339)},
		{ID: "3", Name: "beta", IsActive: true, NextExecutionAt: base.Add(time.Hour).Format(time.RFC3339)},
		{ID: "4", Name: "Gamma", IsActive: true, NextExecutionAt: "invalid"},
		{ID: "5", Name: "delta", IsActive: true},
		{ID: "6", Name: "epsilon", IsActive: false, NextExecutionAt: base.Format(time.RFC3339)},
		{ID: "7", Name: "zeta", IsActive: false},
		{ID: "8", Name: "ZETA", IsActive: false},
	}
}
