package syllable_test

import (
	"fmt"

	"github.com/jeduden/readability/syllable"
)

func ExampleCount() {
	for _, w := range []string{"cake", "bubble", "readability"} {
		n, _ := syllable.Count(w)
		fmt.Println(w, n)
	}
	_, err := syllable.Count("?!")
	fmt.Println(err)
	// Output:
	// cake 1
	// bubble 2
	// readability 5
	// syllable: empty word
}
