// Package langhint provides coarse script and language detection for scraped review text
package langhint

import "unicode"

// Script is a coarse writing system tag
type Script string

const (
	// ScriptUnknown means s had no letters
	ScriptUnknown Script = ""
	// ScriptJapanese means kana was present
	ScriptJapanese Script = "Japanese"
	// ScriptHan means only ideographs, ambiguous between zh and ja
	ScriptHan Script = "Han"
	// ScriptHangul means Korean syllables dominate
	ScriptHangul Script = "Hangul"
	// ScriptLatin means Latin letters dominate
	ScriptLatin Script = "Latin"
	// ScriptOther covers every other script
	ScriptOther Script = "Other"
)

// CJK reports whether the script uses ideographic date grammars ("3日前")
func (s Script) CJK() bool { return s == ScriptJapanese || s == ScriptHan }

// Counts holds per-script letter counts
type Counts struct {
	Kana, Han, Hangul, Latin, Other, Letters int
}

// Count tallies letters of s by script
func Count(s string) Counts {
	var c Counts
	for _, r := range s {
		if !unicode.IsLetter(r) {
			continue
		}
		c.Letters++
		switch {
		case unicode.In(r, unicode.Hiragana, unicode.Katakana):
			c.Kana++
		case unicode.In(r, unicode.Han):
			c.Han++
		case unicode.In(r, unicode.Hangul):
			c.Hangul++
		case unicode.In(r, unicode.Latin):
			c.Latin++
		default:
			c.Other++
		}
	}
	return c
}

// Detect returns the predominant script of s.
// Any kana makes the text Japanese; Han alone stays ambiguous
func Detect(s string) Script {
	c := Count(s)
	if c.Letters == 0 {
		return ScriptUnknown
	}
	if c.Kana > 0 {
		return ScriptJapanese
	}
	best, script := c.Latin, ScriptLatin
	if c.Han > best {
		best, script = c.Han, ScriptHan
	}
	if c.Hangul > best {
		best, script = c.Hangul, ScriptHangul
	}
	if c.Other > best {
		script = ScriptOther
	}
	return script
}

// Lang returns a best-effort BCP-47 code for a batch of texts, "" when ambiguous.
// minLetters guards against guessing from a handful of characters
func Lang(texts []string, minLetters int) string {
	var total Counts
	for _, t := range texts {
		c := Count(t)
		total.Kana += c.Kana
		total.Han += c.Han
		total.Hangul += c.Hangul
		total.Latin += c.Latin
		total.Other += c.Other
		total.Letters += c.Letters
	}
	if total.Letters < minLetters || total.Letters == 0 {
		return ""
	}
	switch {
	case total.Kana > 0:
		return "ja"
	case total.Hangul > total.Latin && total.Hangul > total.Han:
		return "ko"
	case total.Latin*2 > total.Letters:
		// Latin defaults to en
		return "en"
	}
	return ""
}
