package latex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, src string) Node {
	t.Helper()
	n, err := Parse(src)
	require.NoError(t, err, src)
	return n
}

func TestDistance_Reflexive(t *testing.T) {
	docs := []string{
		"",
		"plain text",
		`\section{Intro}\label{sec:intro} See \ref{sec:intro}.`,
		`$$\int_0^1 f(x)\,dx$$ and {\em nested {groups}} % note` + "\n",
	}
	for _, src := range docs {
		n := mustParse(t, src)
		assert.Equal(t, 0, Distance(n, n), src)
		assert.Equal(t, 0, Distance(n, mustParse(t, src)), src)
	}
}

func TestDistance_CountsMissingAndExtraTokens(t *testing.T) {
	ref := mustParse(t, `\a\b\c\d\e`)

	tests := []struct {
		cand string
		want int
	}{
		{`x`, 5},
		{`\a\b`, 3},
		{`\a\b\c\d`, 1},
		{`\a`, 4},
		{`\a\b\c\d\e`, 0},
		{`\a\b\c\d\e\f`, 1},
		{`\a\a\b\c\d\e`, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Distance(ref, mustParse(t, tt.cand)), tt.cand)
	}
}

func TestDistance_LabelsAndReferences(t *testing.T) {
	ref := mustParse(t, `Voir \ref{fig:1}, \label{sec:2}`)
	same := mustParse(t, `See \ref{fig:1}, \label{sec:2}`)
	wrong := mustParse(t, `See \ref{fig:one}, \label{sec:2}`)

	assert.Equal(t, 0, Distance(ref, same))
	assert.Equal(t, 2, Distance(ref, wrong))
}

func TestDistance_Shape(t *testing.T) {
	ref := mustParse(t, `{a} $b$ $$c$$`)

	assert.Equal(t, 0, Distance(ref, mustParse(t, `{x} $y$ $$z$$`)))
	assert.Equal(t, 1, Distance(ref, mustParse(t, `{x} y $$z$$`)))
	assert.Equal(t, 2, Distance(ref, mustParse(t, `{x} $$y$$ $$z$$`)))
}

func TestDistance_GrossSizeMismatch(t *testing.T) {
	ref := mustParse(t, "short")
	long := mustParse(t, "a {b} {c} {d} {e} {f} {g} {h} {i}")

	// 8 extra groups, plus 25 nodes against 2 scaled down.
	assert.Equal(t, 8+(25-2)/shapeDivisor, Distance(ref, long))
}

func TestDistance_Monotone(t *testing.T) {
	ref := mustParse(t, `\section{A}\label{a} text \ref{b} $x$`)
	closer := mustParse(t, `\section{A}\label{a} texte $x$`)
	farther := mustParse(t, `\section{A} texte`)

	assert.Less(t, Distance(ref, closer), Distance(ref, farther))
}

func TestDistance_ProseVolume(t *testing.T) {
	src := "Bonjour le monde, ceci est le texte de la section."
	ref := mustParse(t, src)

	assert.Equal(t, 0, Distance(ref, mustParse(t, "Hello world, this is the text of the section.")))
	assert.Equal(t, len(src), Distance(ref, mustParse(t, "\n")))
	assert.Equal(t, 1, Distance(ref, mustParse(t, "Hello world, this is.")))
	assert.Greater(t, Distance(ref, mustParse(t, "Hi.")), Distance(ref, mustParse(t, "Hello world, this is.")))
}

func TestDistance_ShortProseNotCompared(t *testing.T) {
	assert.Equal(t, 0, Distance(mustParse(t, "Introduction"), mustParse(t, "Intro")))
}
