package readability_test

import (
	"fmt"

	"github.com/jeduden/readability"
	"github.com/jeduden/readability/wordlist"
)

func ExampleNewAnalysis() {
	easy := wordlist.New("i", "four")
	doc := readability.NewDocument(readability.Sentence{
		{Text: "I"},
		{Text: "contain"},
		{Text: "four"},
		{Text: "words"},
		{Text: ".", IsPunct: true},
	})

	a := readability.NewAnalysis(doc, easy, readability.DefaultOptions())
	c := a.Counts()
	fmt.Printf("words=%d syllables=%d difficult=%d\n", c.Words, c.Syllables, c.DifficultWords)
	fmt.Printf("grade=%.2f ease=%.1f\n", a.FleschKincaidGrade(), a.FleschKincaidEase())
	fmt.Printf("smog=%v\n", a.SMOG())
	// Output:
	// words=4 syllables=5 difficult=2
	// grade=0.72 ease=97.0
	// smog=0
}

func ExampleResolve() {
	defs, err := readability.Resolve(readability.SplitList("smog, RDB001"))
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, def := range defs {
		fmt.Println(def.ID, def.Name)
	}
	// Output:
	// RDB004 smog
	// RDB001 flesch-kincaid-grade
}
