// Package pagination computes page windows for listing views: total page
// count, prev/next flags and a nav sequence with distant pages collapsed
// into gap markers.
package pagination

import "math"

// Gap marks a collapsed run of page numbers inside a nav sequence.
const Gap = 0

// Pagination describes one window over a counted result set. Page is
// 1-based. Page numbers are never validated against bounds here; callers
// clamp or accept empty results for out-of-range pages.
type Pagination struct {
	Page    int
	PerPage int
	Total   int64
}

func New(page, perPage int, total int64) *Pagination {
	return &Pagination{Page: page, PerPage: perPage, Total: total}
}

// Pages is the total page count: ceil(Total/PerPage). Zero when there are
// no items.
func (p *Pagination) Pages() int {
	if p.PerPage <= 0 {
		return 0
	}
	return int(math.Ceil(float64(p.Total) / float64(p.PerPage)))
}

func (p *Pagination) HasPrev() bool {
	return p.Page > 1
}

func (p *Pagination) HasNext() bool {
	return p.Page < p.Pages()
}

func (p *Pagination) PrevNum() int {
	return p.Page - 1
}

func (p *Pagination) NextNum() int {
	return p.Page + 1
}

// Offset is the row offset of the current window.
func (p *Pagination) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// IterPages returns the nav sequence. It always keeps the first leftEdge
// and last rightEdge pages, plus leftCurrent pages before and rightCurrent
// pages after the current one. Each jump in the shown numbers is collapsed
// into exactly one Gap marker, never two in a row.
func (p *Pagination) IterPages(leftEdge, rightEdge, leftCurrent, rightCurrent int) []int {
	pages := p.Pages()
	nav := make([]int, 0, pages)

	last := 0
	for num := 1; num <= pages; num++ {
		if num <= leftEdge ||
			(num > p.Page-leftCurrent-1 && num < p.Page+rightCurrent) ||
			num > pages-rightEdge {
			if last+1 != num {
				nav = append(nav, Gap)
			}
			nav = append(nav, num)
			last = num
		}
	}
	return nav
}

// IterPagesDefault applies the edge/current widths the listing views use.
func (p *Pagination) IterPagesDefault() []int {
	return p.IterPages(1, 1, 1, 2)
}
