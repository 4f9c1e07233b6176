package region_test

import (
	"testing"

	"github.com/ezerfernandes/litdoc/internal/region"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const source = `var before = 0;
// #region api
/** Api docs */
var api = 1;
// #endregion api
/* #region other */
var other = 2;
/* #endregion */
`

func TestRead(t *testing.T) {
	t.Parallel()

	body, line, err := region.Read(source, "api")
	require.NoError(t, err)

	assert.Equal(t, "/** Api docs */\nvar api = 1;\n", body)
	assert.Equal(t, 2, line)

	body, line, err = region.Read(source, "other")
	require.NoError(t, err)

	assert.Equal(t, "var other = 2;\n", body)
	assert.Equal(t, 6, line)
}

func TestReadErrors(t *testing.T) {
	t.Parallel()

	_, _, err := region.Read(source, "missing")
	require.ErrorIs(t, err, region.ErrNotFound)

	_, _, err = region.Read("// #region open\nbody\n", "open")
	require.ErrorIs(t, err, region.ErrMissingEndregion)
}

func TestNames(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"api", "other"}, region.Names(source))
	assert.Empty(t, region.Names("no regions\n"))
}
