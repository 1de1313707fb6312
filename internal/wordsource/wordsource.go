// Package wordsource produces random words from a configured origin.
package wordsource

import (
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"
)

// OSWordListPath is the conventional system dictionary location.
const OSWordListPath = "/usr/share/dict/words"

// Source draws words uniformly at random, with replacement, from a
// fixed token set.
type Source interface {
	// NextWord returns one word from the token set.
	NextWord() (string, error)
	// NextWords returns n independently drawn words.
	NextWords(n int) ([]string, error)
}

type listSource struct {
	words []string
	rnd   *rand.Rand
}

// FromPath reads a whitespace-delimited token file and returns a
// Source over its tokens. The file is parsed once, eagerly.
func FromPath(path string) (Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read word list %s: %w", path, err)
	}
	src, err := fromTokens(string(data))
	if err != nil {
		return nil, fmt.Errorf("word list %s: %w", path, err)
	}
	return src, nil
}

// FromString tokenizes an in-memory string and returns a Source over
// its tokens.
func FromString(text string) (Source, error) {
	src, err := fromTokens(text)
	if err != nil {
		return nil, fmt.Errorf("word list string: %w", err)
	}
	return src, nil
}

// Builtin returns a Source over the embedded common-word list.
func Builtin() (Source, error) {
	src, err := fromTokens(builtinWords)
	if err != nil {
		return nil, fmt.Errorf("built-in word list: %w", err)
	}
	return src, nil
}

func fromTokens(text string) (*listSource, error) {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil, fmt.Errorf("contains no words")
	}
	return &listSource{
		words: words,
		rnd:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}, nil
}

func (s *listSource) NextWord() (string, error) {
	if len(s.words) == 0 {
		return "", fmt.Errorf("word list is empty")
	}
	return s.words[s.rnd.Intn(len(s.words))], nil
}

func (s *listSource) NextWords(n int) ([]string, error) {
	result := make([]string, 0, n)
	for i := 0; i < n; i++ {
		word, err := s.NextWord()
		if err != nil {
			return nil, err
		}
		result = append(result, word)
	}
	return result, nil
}
