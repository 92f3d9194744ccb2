package codegen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePlain(t *testing.T) {
	code, err := parsePlain(strings.NewReader("3\n0\n\n7\r\n 5 \n"), 4, 8)
	require.NoError(t, err)
	assert.Equal(t, "3075", code)

	for _, body := range []string{"", "1\n2\n3\n", "1\n2\n3\n4\n5\n", "1\n-2\n3\n4\n", "1\n2\n3\n8\n", "a\nb\nc\nd\n"} {
		_, err := parsePlain(strings.NewReader(body), 4, 8)
		assert.ErrorIs(t, err, ErrBadResponse, "body %q", body)
	}
}
