package wordsource

import _ "embed"

// builtinWords ships a fixed list of common English words so the
// program works without any downloaded or system word list.
//
//go:embed words/common.txt
var builtinWords string
