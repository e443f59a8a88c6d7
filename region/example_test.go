package region_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/gridlab/grid"
	"github.com/katalvlaran/gridlab/region"
)

// ExampleFind lists the plots of one crop in a small garden.
func ExampleFind() {
	g := grid.MustParse("AAAA\nBBCD\nBBCC\nEEEC")
	for _, r := range region.Find(g, 'C') {
		fmt.Println(r, r.Perimeter(g), r.Sides())
	}
	// Output:
	// C[4]@(1,2) 10 8
}

// ExampleAnalyze prices fencing for the whole garden.
func ExampleAnalyze() {
	g := grid.MustParse("AAAA\nBBCD\nBBCC\nEEEC")
	sum, err := region.Analyze(context.Background(), g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(len(sum.Regions), sum.FenceCost, sum.BulkCost)
	// Output:
	// 5 140 80
}
