package roman_test

import (
	"fmt"

	"github.com/katalvlaran/romandom/builder"
	"github.com/katalvlaran/romandom/roman"
)

// ExampleDecoder_Decode decodes an all-low chromosome on a star: the hub
// becomes the single dominator.
func ExampleDecoder_Decode() {
	g, _ := builder.BuildGraph(nil, builder.Star(5))

	d, err := roman.DefaultDecoder().Decode(g, []float64{0.1, 0.1, 0.1, 0.1, 0.1})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(d.Labels, d.Cost)
	// Output: 2 0 0 0 0 2
}
