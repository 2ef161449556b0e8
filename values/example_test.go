// Package values_test provides runnable examples for catalogs and series.
package values_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/rcmb/values"
)

// ExampleExpand builds an E6 catalog for one decade.
func ExampleExpand() {
	vals, err := values.Expand("e6", 1000, 9999)
	if err != nil {
		panic(err)
	}
	c := values.MustCatalog(vals)
	names := make([]string, 0, c.Len())
	for _, v := range c.Values() {
		names = append(names, values.FormatSI(v))
	}
	fmt.Println(strings.Join(names, " "))
	fmt.Println(values.FormatSI(c.Nearest(2000)))
	// Output:
	// 1k 1.5k 2.2k 3.3k 4.7k 6.8k
	// 2.2k
}
