package readability

import "github.com/jeduden/readability/wordlist"

// Analysis scores a single Document. Counts are computed on first use
// and reused by every metric, so metrics can be queried in any order.
// An Analysis is owned by one goroutine; the easy-word set it reads may
// be shared.
type Analysis struct {
	doc  Document
	easy *wordlist.Set
	opts Options

	counts      Counts
	countsReady bool
}

// NewAnalysis prepares doc for scoring against easy. Zero-valued option
// fields fall back to DefaultOptions.
func NewAnalysis(doc Document, easy *wordlist.Set, opts Options) *Analysis {
	return &Analysis{
		doc:  doc,
		easy: easy,
		opts: opts.withDefaults(),
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.SMOGMinSentences > 0 {
		d.SMOGMinSentences = o.SMOGMinSentences
	}
	if o.ForcastSample > 0 {
		d.ForcastSample = o.ForcastSample
	}
	if o.ForcastWindow != "" {
		d.ForcastWindow = o.ForcastWindow
	}
	if o.LinsearSample > 0 {
		d.LinsearSample = o.LinsearSample
	}
	return d
}

// Counts returns the document's aggregate counts.
func (a *Analysis) Counts() Counts {
	if !a.countsReady {
		a.counts = Count(a.doc, a.easy)
		a.countsReady = true
	}
	return a.counts
}

// FleschKincaidGrade returns the Flesch-Kincaid Grade Level, or 0.
func (a *Analysis) FleschKincaidGrade() float64 {
	return FleschKincaidGrade(a.Counts()).Number
}

// FleschKincaidEase returns the Flesch-Kincaid Reading Ease, or 0.
func (a *Analysis) FleschKincaidEase() float64 {
	return FleschKincaidEase(a.Counts()).Number
}

// DaleChall returns the Dale-Chall score, or 0.
func (a *Analysis) DaleChall() float64 {
	return DaleChall(a.Counts()).Number
}

// SMOG returns the SMOG grade, or 0 for short documents.
func (a *Analysis) SMOG() float64 {
	return a.smog().Number
}

// ColemanLiau returns the Coleman-Liau index, or 0.
func (a *Analysis) ColemanLiau() float64 {
	return ColemanLiau(a.Counts()).Number
}

// AutomatedReadability returns the Automated Readability Index, or 0.
func (a *Analysis) AutomatedReadability() float64 {
	return AutomatedReadability(a.Counts()).Number
}

// Forcast returns the FORCAST grade, or 0 for short documents.
func (a *Analysis) Forcast() float64 {
	return a.forcast().Number
}

// LinsearWrite returns the Linsear Write grade, or 0.
func (a *Analysis) LinsearWrite() float64 {
	return a.linsearWrite().Number
}

func (a *Analysis) smog() Value {
	return SMOG(a.Counts(), a.opts.SMOGMinSentences)
}

func (a *Analysis) forcast() Value {
	window := a.doc.Tokens
	if a.opts.ForcastWindow == WindowWords {
		window = a.doc.words()
	}
	return Forcast(a.Counts(), window, a.opts.ForcastSample)
}

func (a *Analysis) linsearWrite() Value {
	return LinsearWrite(sampleLinsear(a.doc, a.opts.LinsearSample))
}

// Value computes the metric described by def.
func (a *Analysis) Value(def Definition) Value {
	return def.Compute(a)
}

// Scores is a snapshot of every metric for one document. Each field is
// 0 when its formula's guard failed.
type Scores struct {
	FleschKincaidGrade   float64 `json:"flesch_kincaid_grade_level"`
	FleschKincaidEase    float64 `json:"flesch_kincaid_reading_ease"`
	DaleChall            float64 `json:"dale_chall"`
	SMOG                 float64 `json:"smog"`
	ColemanLiau          float64 `json:"coleman_liau_index"`
	AutomatedReadability float64 `json:"automated_readability_index"`
	Forcast              float64 `json:"forcast"`
	LinsearWrite         float64 `json:"linsear_write"`
}

// Analyze computes every metric for doc.
func Analyze(doc Document, easy *wordlist.Set, opts Options) Scores {
	a := NewAnalysis(doc, easy, opts)
	return Scores{
		FleschKincaidGrade:   a.FleschKincaidGrade(),
		FleschKincaidEase:    a.FleschKincaidEase(),
		DaleChall:            a.DaleChall(),
		SMOG:                 a.SMOG(),
		ColemanLiau:          a.ColemanLiau(),
		AutomatedReadability: a.AutomatedReadability(),
		Forcast:              a.Forcast(),
		LinsearWrite:         a.LinsearWrite(),
	}
}
