package wordlist_test

import (
	"fmt"
	"strings"

	"github.com/jeduden/readability/wordlist"
)

func ExampleParse() {
	set, err := wordlist.Parse(strings.NewReader("a\nabout\nabove\n"))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(set.Len(), set.Contains("About"), set.Contains("zebra"))
	// Output:
	// 3 true false
}
