package board_test

import (
	"testing"

	"github.com/fr4nk3nst1ner/offerboard/internal/board"
)

func TestPageBounds(t *testing.T) {
	cases := []struct {
		page, size, total int
		start, end        int
	}{
		{0, 10, 25, 0, 10},
		{1, 10, 25, 10, 20},
		{2, 10, 25, 20, 25},
		{3, 10, 25, 25, 25},
		{0, 10, 0, 0, 0},
		{-1, 10, 25, 0, 0},
		{0, 0, 25, 0, 0},
	}
	for _, c := range cases {
		start, end := board.PageBounds(c.page, c.size, c.total)
		if start != c.start || end != c.end {
			t.Errorf("PageBounds(%d, %d, %d) = [%d, %d), want [%d, %d)",
				c.page, c.size, c.total, start, end, c.start, c.end)
		}
	}
}

func TestHasMoreMatchesFormula(t *testing.T) {
	for size := 1; size <= 5; size++ {
		for total := 0; total <= 12; total++ {
			for page := 0; page <= 12; page++ {
				want := (page+1)*size < total
				if got := board.HasMore(page, size, total); got != want {
					t.Fatalf("HasMore(%d, %d, %d) = %v, want %v", page, size, total, got, want)
				}
			}
		}
	}
}

func TestPagesConcatenateToWholeList(t *testing.T) {
	for size := 1; size <= 7; size++ {
		for total := 0; total <= 20; total++ {
			items := make([]int, total)
			for i := range items {
				items[i] = i
			}

			var seen []int
			page := 0
			for {
				seen = append(seen, board.PageOf(items, page, size)...)
				if !board.HasMore(page, size, total) {
					break
				}
				page++
			}

			if len(seen) != total {
				t.Fatalf("size %d total %d: got %d items", size, total, len(seen))
			}
			for i, v := range seen {
				if v != i {
					t.Fatalf("size %d total %d: item %d is %d", size, total, i, v)
				}
			}
		}
	}
}

func TestStateVisibleAndCurrent(t *testing.T) {
	s := board.State{Filtered: sample(12), PageSize: 5, Page: 1}

	if got := len(s.Current()); got != 5 {
		t.Fatalf("current page has %d offers, want 5", got)
	}
	if s.Current()[0].ID != 6 {
		t.Fatalf("current page starts at %d, want 6", s.Current()[0].ID)
	}
	if got := len(s.Visible()); got != 10 {
		t.Fatalf("visible offers = %d, want 10", got)
	}
	if !s.HasMore() {
		t.Fatal("page 1 of 12/5 should have more")
	}

	s.Page = 2
	if got := len(s.Current()); got != 2 || s.HasMore() {
		t.Fatalf("last page: %d offers, has more %v", got, s.HasMore())
	}
}
