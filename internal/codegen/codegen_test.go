package codegen_test

import (
	"context"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/mastermind/internal/codegen"
	"github.com/robalobadob/mastermind/internal/rngserver"
)

var shape = codegen.Shape{BaseLength: 4, Radix: 8}

func assertDigits(t *testing.T, code string, n, radix int) {
	t.Helper()
	require.Len(t, code, n)
	for _, c := range code {
		assert.True(t, c >= '0' && int(c-'0') < radix, "digit %q out of range in %s", c, code)
	}
}

func TestShapeLength(t *testing.T) {
	assert.Equal(t, 4, shape.Length(0))
	assert.Equal(t, 6, shape.Length(2))
}

func TestLocal(t *testing.T) {
	ctx := context.Background()
	l := codegen.NewLocal(shape)
	for d := 0; d < 3; d++ {
		code, err := l.FetchCode(ctx, d)
		require.NoError(t, err)
		assertDigits(t, code, 4+d, 8)
	}

	a := codegen.NewLocalWithSeed(shape, 99)
	b := codegen.NewLocalWithSeed(shape, 99)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Generate(5), b.Generate(5))
	}
}

func TestLocalUsesWholeRange(t *testing.T) {
	l := codegen.NewLocalWithSeed(shape, 1)
	seen := map[rune]bool{}
	for i := 0; i < 200; i++ {
		for _, c := range l.Generate(4) {
			seen[c] = true
		}
	}
	assert.Len(t, seen, 8)
}

func TestDaily(t *testing.T) {
	ctx := context.Background()
	morning := time.Date(2024, 3, 1, 6, 0, 0, 0, time.UTC)
	evening := time.Date(2024, 3, 1, 23, 0, 0, 0, time.UTC)
	nextDay := time.Date(2024, 3, 2, 6, 0, 0, 0, time.UTC)

	at := func(ts time.Time) func() time.Time { return func() time.Time { return ts } }

	a, err := codegen.NewDaily(shape, "salt", at(morning)).FetchCode(ctx, 0)
	require.NoError(t, err)
	b, err := codegen.NewDaily(shape, "salt", at(evening)).FetchCode(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assertDigits(t, a, 4, 8)

	hardest, err := codegen.NewDaily(shape, "salt", at(morning)).FetchCode(ctx, 2)
	require.NoError(t, err)
	assertDigits(t, hardest, 6, 8)

	// Collisions are possible for a single date; across a week they are not plausible.
	differs := false
	for i := 0; i < 7; i++ {
		c, _ := codegen.NewDaily(shape, "salt", at(nextDay.AddDate(0, 0, i))).FetchCode(ctx, 2)
		d, _ := codegen.NewDaily(shape, "other", at(nextDay.AddDate(0, 0, i))).FetchCode(ctx, 2)
		if c != hardest || c != d {
			differs = true
		}
	}
	assert.True(t, differs)
}

func TestRandomOrgAgainstLocalServer(t *testing.T) {
	srv := httptest.NewServer(rngserver.New(rand.New(rand.NewSource(1))).Router())
	defer srv.Close()

	src := codegen.NewRandomOrg(shape, codegen.RandomOrgConfig{URL: srv.URL + "/integers/"})
	for d := 0; d < 3; d++ {
		code, err := src.FetchCode(context.Background(), d)
		require.NoError(t, err)
		assertDigits(t, code, 4+d, 8)
	}
}

func TestRandomOrgRequest(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.RawQuery
		_, _ = w.Write([]byte("1\n2\n3\n4\n"))
	}))
	defer srv.Close()

	code, err := codegen.NewRandomOrg(shape, codegen.RandomOrgConfig{URL: srv.URL}).FetchCode(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, "1234", code)
	for _, want := range []string{"num=4", "min=0", "max=7", "col=1", "base=10", "format=plain", "rnd=new"} {
		assert.Contains(t, got, want)
	}
}

func TestRandomOrgRetries(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			http.Error(w, "Error: busy", http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte("7\n0\n7\n0\n"))
	}))
	defer srv.Close()

	src := codegen.NewRandomOrg(shape, codegen.RandomOrgConfig{
		URL:           srv.URL,
		MaxTries:      3,
		RetryInterval: time.Millisecond,
	})
	code, err := src.FetchCode(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, "7070", code)
	assert.EqualValues(t, 3, calls.Load())
}

func TestRandomOrgPermanentFailures(t *testing.T) {
	cases := map[string]http.HandlerFunc{
		"bad request": func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "Error: The 'num' parameter is invalid", http.StatusBadRequest)
		},
		"too few digits": func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("1\n2\n"))
		},
		"out of range": func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("1\n2\n9\n4\n"))
		},
		"not a number": func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<html>quota exceeded</html>"))
		},
	}
	for name, h := range cases {
		t.Run(name, func(t *testing.T) {
			var calls atomic.Int32
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls.Add(1)
				h(w, r)
			}))
			defer srv.Close()

			src := codegen.NewRandomOrg(shape, codegen.RandomOrgConfig{
				URL:           srv.URL,
				MaxTries:      5,
				RetryInterval: time.Millisecond,
			})
			_, err := src.FetchCode(context.Background(), 0)
			require.ErrorIs(t, err, codegen.ErrBadResponse)
			assert.EqualValues(t, 1, calls.Load(), "permanent errors are not retried")
		})
	}
}

func TestRandomOrgUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	src := codegen.NewRandomOrg(shape, codegen.RandomOrgConfig{
		URL:           url,
		Timeout:       200 * time.Millisecond,
		MaxTries:      2,
		RetryInterval: time.Millisecond,
	})
	_, err := src.FetchCode(context.Background(), 0)
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "fetch code:"))
}
