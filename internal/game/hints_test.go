package game

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvalHint(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	cases := []struct {
		kind HintKind
		code string
		want int
	}{
		{HintLastDigit, "1234", 4},
		{HintSum, "1234", 10},
		{HintLowCount, "1234", 3},
		{HintLowCount, "4567", 0},
		{HintProduct, "1234", 24},
		{HintProduct, "10777", 0},
	}
	for _, tc := range cases {
		h, ok := evalHint(tc.kind, tc.code, DefaultRadix, rng)
		require.True(t, ok)
		assert.Equal(t, Hint{Kind: tc.kind, Value: tc.want}, h, "kind %d code %s", tc.kind, tc.code)
	}
}

func TestAbsentDigitHint(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	t.Run("never names a digit of the code", func(t *testing.T) {
		for i := 0; i < 500; i++ {
			code := randomDigits(rng, 6)
			h, ok := evalHint(HintAbsentDigit, code, DefaultRadix, rng)
			require.True(t, ok, "a 6 digit code always leaves a digit out")
			assert.Less(t, h.Value, DefaultRadix)
			assert.False(t, strings.ContainsRune(code, rune('0'+h.Value)), "%d in %s", h.Value, code)
		}
	})
	t.Run("inapplicable when every digit is used", func(t *testing.T) {
		_, ok := evalHint(HintAbsentDigit, "01234567", DefaultRadix, rng)
		assert.False(t, ok)
	})
}

func TestGenerateHints(t *testing.T) {
	t.Run("count and distinct templates", func(t *testing.T) {
		rng := rand.New(rand.NewSource(11))
		for n := 0; n <= hintTemplates; n++ {
			hints := GenerateHints("1234", n, DefaultRadix, rng)
			require.Len(t, hints, n)
			seen := map[HintKind]bool{}
			for _, h := range hints {
				assert.False(t, seen[h.Kind], "template %d chosen twice", h.Kind)
				seen[h.Kind] = true
			}
		}
	})

	t.Run("keeps selection order", func(t *testing.T) {
		perm := rand.New(rand.NewSource(5)).Perm(hintTemplates)
		hints := GenerateHints("1234", 3, DefaultRadix, rand.New(rand.NewSource(5)))
		require.Len(t, hints, 3)
		for i, h := range hints {
			assert.Equal(t, HintKind(perm[i]), h.Kind)
		}
	})

	t.Run("clamps to available templates", func(t *testing.T) {
		hints := GenerateHints("1234", 12, DefaultRadix, rand.New(rand.NewSource(1)))
		assert.Len(t, hints, hintTemplates)
		assert.Nil(t, GenerateHints("1234", -1, DefaultRadix, rand.New(rand.NewSource(1))))
	})

	t.Run("code using every digit skips the absent template", func(t *testing.T) {
		for seed := int64(0); seed < 50; seed++ {
			rng := rand.New(rand.NewSource(seed))
			hints := GenerateHints("01234567", 3, DefaultRadix, rng)
			require.Len(t, hints, 3)
			for _, h := range hints {
				assert.NotEqual(t, HintAbsentDigit, h.Kind)
			}
			all := GenerateHints("76543210", hintTemplates, DefaultRadix, rng)
			assert.Len(t, all, hintTemplates-1)
		}
	})
}

func TestHintBank(t *testing.T) {
	hints := []Hint{{Kind: HintSum, Value: 10}, {Kind: HintLastDigit, Value: 4}, {Kind: HintProduct, Value: 24}}
	b := NewHintBank(hints)
	assert.Equal(t, 3, b.Max())
	assert.Empty(t, b.History())

	for i := 0; i < len(hints); i++ {
		h, ok := b.RevealNext()
		require.True(t, ok)
		assert.Equal(t, hints[i], h)
		assert.Equal(t, hints[:i+1], b.History())
		assert.Equal(t, len(hints)-i-1, b.Remaining())
	}

	for i := 0; i < 3; i++ {
		_, ok := b.RevealNext()
		assert.False(t, ok)
		assert.Equal(t, 3, b.Revealed())
	}
	assert.Equal(t, hints, b.History())
}
