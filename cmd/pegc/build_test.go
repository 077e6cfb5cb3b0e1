package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadGrammarAndInputFromFiles(t *testing.T) {
	dir := t.TempDir()
	grammarPath := filepath.Join(dir, "digits.peg")
	inputPath := filepath.Join(dir, "input.txt")
	require.NoError(t, os.WriteFile(grammarPath, []byte("Digits <- [0-9]+\n"), 0o644))
	require.NoError(t, os.WriteFile(inputPath, []byte("42"), 0o644))

	rules, start, input, err := loadGrammarAndInput(grammarPath, inputPath)
	require.NoError(t, err)
	assert.Equal(t, "Digits", start)
	assert.Contains(t, rules, "Digits")
	assert.Equal(t, []byte("42"), input)
}

func TestLoadGrammarAndInputMissingGrammar(t *testing.T) {
	_, _, _, err := loadGrammarAndInput(filepath.Join(t.TempDir(), "missing.peg"), "")
	assert.Error(t, err)
}

func TestInputLabel(t *testing.T) {
	assert.Equal(t, "<stdin>", inputLabel(""))
	assert.Equal(t, "foo.txt", inputLabel("foo.txt"))
}

func TestEmitToOutputDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, emit(dir, "arith.peg", "tree text"))
	out, err := os.ReadFile(filepath.Join(dir, "arith.cpt.txt"))
	require.NoError(t, err)
	assert.Equal(t, "tree text\n", string(out))
}
