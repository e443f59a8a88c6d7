package ordering_test

import (
	"slices"
	"testing"

	"github.com/katalvlaran/gridlab/ordering"
)

// BenchmarkRepair_Reversed sorts a fully reversed 50-page update under a
// total order of 1225 rules.
func BenchmarkRepair_Reversed(b *testing.B) {
	const pages = 50
	var rules []ordering.Rule
	u := make(ordering.Update, 0, pages)
	for i := range pages {
		for j := i + 1; j < pages; j++ {
			rules = append(rules, ordering.Rule{Before: ordering.Page(i), After: ordering.Page(j)})
		}
		u = append(u, ordering.Page(i))
	}
	slices.Reverse(u)
	r := ordering.NewRules(rules)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := r.Repair(u); err != nil {
			b.Fatal(err)
		}
	}
}
