// Package say builds sentences one word at a time.
//
//	say.Say("hi").And("there").Phrase() // "hi there"
package say

// Sayer is an immutable partial sentence. Each And returns a new Sayer, so
// a shared prefix can be extended in several directions.
type Sayer struct {
	phrase  string
	started bool
}

// Say starts a sentence with words. Say() is the empty sentence.
func Say(words ...string) Sayer {
	var s Sayer
	for _, w := range words {
		s = s.And(w)
	}
	return s
}

func (s Sayer) And(word string) Sayer {
	if !s.started {
		return Sayer{phrase: word, started: true}
	}
	return Sayer{phrase: s.phrase + " " + word, started: true}
}

// Phrase finishes the sentence.
func (s Sayer) Phrase() string {
	return s.phrase
}

func (s Sayer) String() string {
	return s.phrase
}
