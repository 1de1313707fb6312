// Package model defines shared data structures.
package model

// Config defines typing test settings.
type Config struct {
	// Words is the number of words per generated text.
	Words int
	// File is a path to a whitespace-delimited token file.
	File string
	// Text is a literal whitespace-delimited token string.
	Text string
	// Wordlist names a built-in list ("common" or "os") used when
	// neither File nor Text is set.
	Wordlist string
}
