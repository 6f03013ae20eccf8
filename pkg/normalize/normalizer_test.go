package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyModelCodeSelection(t *testing.T) {
	n := New()

	tests := []struct {
		name  string
		raw   string
		brand string
		want  string
	}{
		{"plain model code", "Roland FP-30X Black", "Roland", "FP30X"},
		{"brand stripped equals brandless", "FP-30X Black", "", "FP30X"},
		{"manufacturer copy", "FP-30X Digital Piano", "Roland", "FP30X"},
		{"first digit token wins over longer", "PSR-E373 YPT-370000 Keyboard", "Yamaha", "PSRE373"},
		{"no digit falls back to longest", "Clavinova Grand Piano", "Yamaha", "CLAVINOVA"},
		{"short letter tokens skipped", "GO Piano", "Roland", ""},
		{"brand only normalizes to empty", "Roland", "Roland", ""},
		{"multi word brand", "La Roche Posay Effaclar 3", "La Roche Posay", "3"},
		{"empty input", "", "Roland", ""},
		{"only punctuation", "!!! --- ...", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, n.Key(tt.raw, tt.brand))
		})
	}
}

func TestKeyDeterminism(t *testing.T) {
	n := New()
	inputs := []string{"Roland FP-30X Black", "יומהה P-145", "Casio PX-S1100 — ‘Red’", ""}
	for _, s := range inputs {
		assert.Equal(t, n.Key(s, "Roland"), n.Key(s, "Roland"))
	}
}

func TestKeyMixedScript(t *testing.T) {
	n := New()

	// Hebrew runs are dropped, the embedded Latin model code survives.
	assert.Equal(t, "FP30X", n.Key("פסנתר חשמלי Roland FP-30X שחור", "Roland"))

	// Diacritics fold to plain Latin.
	assert.Equal(t, "ETUDE", n.Key("Étude", ""))
}

func TestKeyTypographicPunctuation(t *testing.T) {
	n := New()
	assert.Equal(t, "PXS1100", n.Key("Casio PX-S1100 — “Slim” Piano", "Casio"))
}

func TestTokens(t *testing.T) {
	n := New()

	tokens := n.Tokens("Roland FP-30X Black Bundle with Stand", "Roland")
	assert.Equal(t, []string{"FP30X", "BLACK"}, tokens)

	assert.Nil(t, n.Tokens("", "Roland"))
	assert.Empty(t, n.Tokens("Roland", "Roland"))
}

func TestWithNoiseWordsFixture(t *testing.T) {
	n := New(WithNoiseWords([]string{"widget"}))

	// The fixture table replaces the default one entirely.
	assert.Equal(t, []string{"DIGITAL", "PIANO"}, n.Tokens("Widget Digital Piano", ""))
}

func TestCleanCollapsesRemovedRuns(t *testing.T) {
	assert.Equal(t, "AB CD", Clean("AB中文字CD"))
	assert.Equal(t, "one two", CollapseWhitespace("  one \t two \n"))
}
