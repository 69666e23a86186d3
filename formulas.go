package readability

import "math"

// The formulas below are pure functions of their inputs. Each returns
// UnavailableValue when its guard fails instead of dividing by zero or
// scoring a sample too small for the formula to mean anything.

// FleschKincaidGrade computes the Flesch-Kincaid Grade Level.
// Formula: 11.8*(syllables/words) + 0.39*(words/sentences) - 15.59
func FleschKincaidGrade(c Counts) Value {
	if c.Sentences == 0 || c.Words == 0 || c.Syllables == 0 {
		return UnavailableValue()
	}
	return AvailableValue(11.8*float64(c.Syllables)/float64(c.Words) +
		0.39*float64(c.Words)/float64(c.Sentences) -
		15.59)
}

// FleschKincaidEase computes the Flesch-Kincaid Reading Ease.
// Formula: 206.835 - 1.015*(words/sentences) - 84.6*(syllables/words)
func FleschKincaidEase(c Counts) Value {
	if c.Sentences == 0 || c.Words == 0 || c.Syllables == 0 {
		return UnavailableValue()
	}
	wordsPerSentence := float64(c.Words) / float64(c.Sentences)
	syllablesPerWord := float64(c.Syllables) / float64(c.Words)
	return AvailableValue(206.835 - 1.015*wordsPerSentence - 84.6*syllablesPerWord)
}

// DaleChall computes the Dale-Chall score. Above 5% difficult words the
// raw score is adjusted by 3.6365.
func DaleChall(c Counts) Value {
	if c.Sentences == 0 || c.Words == 0 {
		return UnavailableValue()
	}
	pctDifficult := 100 * float64(c.DifficultWords) / float64(c.Words)
	avgSentence := float64(c.Words) / float64(c.Sentences)
	grade := 0.1579*pctDifficult + 0.0496*avgSentence
	if pctDifficult > 5 {
		grade += 3.6365
	}
	return AvailableValue(grade)
}

// SMOG computes the SMOG grade. Documents with fewer than minSentences
// sentences score 0.
// Formula: 1.0430*sqrt(polysyllables*30/sentences) + 3.1291
func SMOG(c Counts, minSentences int) Value {
	if c.Sentences < minSentences || c.Sentences == 0 || c.Words == 0 {
		return UnavailableValue()
	}
	return AvailableValue(1.0430*math.Sqrt(float64(c.Polysyllables)*30/float64(c.Sentences)) + 3.1291)
}

// ColemanLiau computes the Coleman-Liau index from letters and
// sentences per 100 words. Digits are not letters here.
func ColemanLiau(c Counts) Value {
	if c.Words == 0 || c.Letters == 0 {
		return UnavailableValue()
	}
	l := float64(c.Letters) / float64(c.Words) * 100
	s := float64(c.Sentences) / float64(c.Words) * 100
	return AvailableValue(0.0588*l - 0.296*s - 15.8)
}

// AutomatedReadability computes the Automated Readability Index.
// Formula: 4.71*(characters/words) + 0.5*(words/sentences) - 21.43
// Characters include digits.
func AutomatedReadability(c Counts) Value {
	if c.Words == 0 || c.Sentences == 0 {
		return UnavailableValue()
	}
	return AvailableValue(4.71*float64(c.LettersWithDigits)/float64(c.Words) +
		0.5*float64(c.Words)/float64(c.Sentences) -
		21.43)
}

// Forcast computes the FORCAST grade from the number of monosyllabic
// words among the first sample tokens of window. Documents with fewer
// than sample words score 0.
func Forcast(c Counts, window []Token, sample int) Value {
	if sample <= 0 || c.Words < sample {
		return UnavailableValue()
	}
	if len(window) > sample {
		window = window[:sample]
	}
	mono := 0
	for _, t := range window {
		if !t.IsPunct && syllables(t.Text) == 1 {
			mono++
		}
	}
	return AvailableValue(20 - float64(mono)/10)
}

// LinsearSample is the slice of a document Linsear Write is scored on.
type LinsearSample struct {
	Easy      int // words with fewer than 3 syllables
	Hard      int // words with 3 or more syllables
	Sentences int // sentences holding at least one sampled word
}

// LinsearWrite computes the Linsear Write grade.
func LinsearWrite(s LinsearSample) Value {
	if s.Easy+s.Hard == 0 || s.Sentences == 0 {
		return UnavailableValue()
	}
	r := float64(s.Easy+3*s.Hard) / float64(s.Sentences)
	if r > 20 {
		return AvailableValue(r / 2)
	}
	return AvailableValue((r - 2) / 2)
}

// sampleLinsear reads up to limit words from doc, sentence by sentence.
func sampleLinsear(doc Document, limit int) LinsearSample {
	var s LinsearSample
	for _, sent := range doc.Sentences {
		if s.Easy+s.Hard >= limit {
			break
		}
		sampled := false
		for _, t := range sent {
			if s.Easy+s.Hard >= limit {
				break
			}
			if !t.IsWord() {
				continue
			}
			sampled = true
			if syllables(t.Text) >= 3 {
				s.Hard++
			} else {
				s.Easy++
			}
		}
		if sampled {
			s.Sentences++
		}
	}
	return s
}
