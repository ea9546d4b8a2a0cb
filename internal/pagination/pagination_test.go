package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPagesIsCeil(t *testing.T) {
	cases := []struct {
		total   int64
		perPage int
		want    int
	}{
		{0, 5, 0},
		{1, 5, 1},
		{5, 5, 1},
		{6, 5, 2},
		{11, 5, 3},
		{100, 20, 5},
		{101, 20, 6},
	}
	for _, tc := range cases {
		p := New(1, tc.perPage, tc.total)
		assert.Equal(t, tc.want, p.Pages(), "total=%d perPage=%d", tc.total, tc.perPage)
	}
}

func TestPrevNextFlags(t *testing.T) {
	p := New(1, 5, 23) // 5 pages
	assert.False(t, p.HasPrev())
	assert.True(t, p.HasNext())

	p.Page = 3
	assert.True(t, p.HasPrev())
	assert.True(t, p.HasNext())
	assert.Equal(t, 2, p.PrevNum())
	assert.Equal(t, 4, p.NextNum())

	p.Page = 5
	assert.True(t, p.HasPrev())
	assert.False(t, p.HasNext())
}

func TestEmptyTotal(t *testing.T) {
	p := New(1, 5, 0)
	assert.Equal(t, 0, p.Pages())
	assert.False(t, p.HasPrev())
	assert.False(t, p.HasNext())
	assert.Empty(t, p.IterPagesDefault())
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, New(1, 5, 50).Offset())
	assert.Equal(t, 10, New(3, 5, 50).Offset())
}

func TestIterPagesSmallSetHasNoGaps(t *testing.T) {
	p := New(2, 5, 15) // 3 pages, everything fits
	assert.Equal(t, []int{1, 2, 3}, p.IterPagesDefault())
}

func TestIterPagesCollapsesDistantPages(t *testing.T) {
	p := New(10, 5, 100) // 20 pages, current in the middle
	nav := p.IterPagesDefault()

	assert.Equal(t, []int{1, Gap, 9, 10, 11, Gap, 20}, nav)
}

func TestIterPagesNeverEmitsConsecutiveGaps(t *testing.T) {
	for _, pages := range []int64{7, 23, 57, 100, 311} {
		for page := 1; int64(page) <= pages; page++ {
			p := New(page, 1, pages)
			nav := p.IterPagesDefault()
			for i := 1; i < len(nav); i++ {
				if nav[i] == Gap {
					assert.NotEqual(t, Gap, nav[i-1],
						"consecutive gaps at page %d of %d", page, pages)
				}
			}
		}
	}
}

func TestIterPagesAlwaysIncludesFirstAndLast(t *testing.T) {
	for _, pages := range []int64{1, 2, 5, 40} {
		for page := 1; int64(page) <= pages; page++ {
			p := New(page, 1, pages)
			nav := p.IterPagesDefault()
			assert.Contains(t, nav, 1)
			assert.Contains(t, nav, int(pages))
		}
	}
}

func TestIterPagesMonotonic(t *testing.T) {
	p := New(7, 10, 500)
	nav := p.IterPagesDefault()
	lastNum := 0
	for _, n := range nav {
		if n == Gap {
			continue
		}
		assert.Greater(t, n, lastNum)
		lastNum = n
	}
}
