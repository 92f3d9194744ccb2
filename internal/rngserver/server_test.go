package rngserver

import (
	"io"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func get(t *testing.T, s *Server, target string) (int, string) {
	t.Helper()
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	return rec.Code, string(body)
}

func TestHealth(t *testing.T) {
	s := New(rand.New(rand.NewSource(1)))
	code, body := get(t, s, "/health")
	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"ok":true}`, body)

	code, body = get(t, s, "/")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, "/integers/")
}

func TestNotFound(t *testing.T) {
	code, body := get(t, New(nil), "/nope")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Contains(t, body, `"not_found"`)
}

func TestIntegers(t *testing.T) {
	s := New(rand.New(rand.NewSource(7)))
	for _, path := range []string{"/integers/", "/integers"} {
		code, body := get(t, s, path+"?num=200&min=2&max=5&col=1&base=10&format=plain&rnd=new")
		require.Equal(t, http.StatusOK, code, body)

		lines := strings.Split(strings.TrimSuffix(body, "\n"), "\n")
		require.Len(t, lines, 200)
		seen := map[int]bool{}
		for _, l := range lines {
			v, err := strconv.Atoi(l)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, v, 2)
			assert.LessOrEqual(t, v, 5)
			seen[v] = true
		}
		assert.Len(t, seen, 4)
	}
}

func TestIntegersRejectsBadQueries(t *testing.T) {
	s := New(nil)
	for _, q := range []string{
		"num=0&min=0&max=7&format=plain",
		"num=10001&min=0&max=7&format=plain",
		"num=x&min=0&max=7&format=plain",
		"num=4&min=a&max=7&format=plain",
		"num=4&min=0&max=b&format=plain",
		"num=4&min=7&max=0&format=plain",
		"num=4&min=0&max=7&base=16&format=plain",
		"num=4&min=0&max=7&format=html",
		"num=4&min=0&max=7",
		"num=4&min=0&max=7&format=plain&rnd=id.foo",
		"num=4&min=-1&max=9223372036854775807&format=plain",
		"num=4&min=-9223372036854775808&max=0&format=plain",
		"num=4&min=0&max=1000000001&format=plain",
	} {
		code, body := get(t, s, "/integers/?"+q)
		assert.Equal(t, http.StatusBadRequest, code, q)
		assert.True(t, strings.HasPrefix(body, "Error: "), "%s: %s", q, body)
	}
}

func TestIntegersAcceptsFullValueRange(t *testing.T) {
	s := New(rand.New(rand.NewSource(3)))
	code, body := get(t, s, "/integers/?num=5&min=-1000000000&max=-999999000&format=plain")
	require.Equal(t, http.StatusOK, code, body)
	for _, l := range strings.Fields(body) {
		v, err := strconv.Atoi(l)
		require.NoError(t, err)
		assert.LessOrEqual(t, v, -999999000)
	}
}
