package automata

import (
	"testing"

	"github.com/jeffwilliams/pda"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedAutomataLoad(t *testing.T) {
	assert.Empty(t, GlobalLoadErrors)
	assert.Equal(t, []string{"ab-cd-blocks", "mirrored-bits", "zeros-double-ones"}, Names(false))
	assert.Equal(t, []string{"0n12n", "0s1-1s0", "ab-cd-blocks", "aibicjdj", "mirrored-bits", "zeros-double-ones"}, Names(true))
}

func TestEmbeddedAutomata(t *testing.T) {
	tests := []struct {
		name          string
		accept        []string
		reject        []string
		mode          pda.AcceptMode
		deterministic bool
	}{
		{
			name:   "mirrored-bits",
			accept: []string{"", "01", "10", "0011", "0101"},
			reject: []string{"001", "10100", "0110"},
			mode:   pda.EmptyStack,
		},
		{
			name:          "0n12n",
			accept:        []string{"011", "001111"},
			reject:        []string{"0011", ""},
			mode:          pda.FinalState,
			deterministic: true,
		},
		{
			name:          "aibicjdj",
			accept:        []string{"abcd", "aabbccdd"},
			reject:        []string{"", "ab", "aabbccd", "ba"},
			mode:          pda.FinalState,
			deterministic: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := Get(tc.name)
			require.NotNil(t, m)
			assert.Equal(t, tc.mode, m.AcceptMode())
			assert.Equal(t, tc.deterministic, m.Deterministic())
			assert.NotEmpty(t, m.Description())

			for _, w := range tc.accept {
				res, err := m.AcceptsString(w, 0)
				require.NoError(t, err)
				assert.True(t, res.Accepted(), "word %q", w)
			}
			for _, w := range tc.reject {
				res, err := m.AcceptsString(w, 0)
				require.NoError(t, err)
				assert.Equal(t, pda.Rejected, res.Verdict, "word %q", w)
			}
		})
	}
}
