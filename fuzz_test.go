//go:build go1.18

package monkeylex_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chrismwendt/go-monkeylex"
	"github.com/chrismwendt/go-monkeylex/token"
)

func FuzzTokenize(f *testing.F) {
	// Seed the corpus with the Monkey sources from the testdata
	// directory, plus a few edge cases.
	seedFiles, err := filepath.Glob("testdata/*.monkey")
	if err != nil {
		f.Fatalf("failed to find seed files: %v", err)
	}

	for _, file := range seedFiles {
		data, err := os.ReadFile(file)
		if err != nil {
			f.Fatalf("failed to read seed file %s: %v", file, err)
		}
		f.Add(data)
	}

	f.Add([]byte(""))
	f.Add([]byte("   \n\t  "))
	f.Add([]byte("let"))
	f.Add([]byte("12345"))
	f.Add([]byte("fn(x, y) { x + y; }"))
	f.Add([]byte("@#$"))
	f.Add([]byte{0x00, 'a', 0xff})

	f.Fuzz(func(t *testing.T, src []byte) {
		toks := monkeylex.Tokenize(src)

		// The stream always terminates, with EOF appearing exactly
		// once and last.
		require.NotEmpty(t, toks)
		require.Equal(t, token.EOF, toks[len(toks)-1].Type)

		consumed := 0
		for i, tok := range toks[:len(toks)-1] {
			require.NotEqual(t, token.EOF, tok.Type, "EOF before end of stream at index %d", i)
			require.NotEmpty(t, tok.Literal, "non-EOF token with empty literal at index %d", i)
			consumed += len(tok.Literal)
		}

		// Literals are disjoint substrings of the input, so every
		// non-EOF token accounts for at least one input byte.
		require.LessOrEqual(t, consumed, len(src))
		require.LessOrEqual(t, len(toks), len(src)+1)
	})
}
