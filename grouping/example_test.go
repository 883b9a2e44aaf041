package grouping_test

import (
	"fmt"

	"github.com/katalvlaran/regmean/grouping"
	"github.com/katalvlaran/regmean/roster"
)

// ExampleSelectHalf picks the two best and two worst first-half performers
// of a hand-made roster and shows how far each group moved in the second half.
func ExampleSelectHalf() {
	tbl := roster.NewTable([]roster.Player{
		{ID: "Ada", RatingFH: 9.0, RatingSH: 7.5, ZFH: 1.8, AbsZFH: 1.8},
		{ID: "Ben", RatingFH: 4.0, RatingSH: 6.0, ZFH: -1.7, AbsZFH: 1.7},
		{ID: "Cal", RatingFH: 6.8, RatingSH: 6.9, ZFH: 0.1, AbsZFH: 0.1},
		{ID: "Dee", RatingFH: 8.5, RatingSH: 7.0, ZFH: 1.4, AbsZFH: 1.4},
		{ID: "Eve", RatingFH: 5.0, RatingSH: 6.2, ZFH: -1.1, AbsZFH: 1.1},
	})
	g, err := grouping.SelectHalf(tbl, roster.FirstHalf, 2)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, item := range grouping.Legend(g) {
		fmt.Println(item.Label)
	}
	// Output:
	// Best Performers: -1.50
	// Average Performers: 0.65
	// Worst Performers: 1.60
	// Population Mean
}
