package ter

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCategoriesAndPersistence(t *testing.T) {
	require.True(t, TesSUCCESS.IsSuccess())
	require.True(t, TesSUCCESS.Persists())

	require.False(t, TecFAILED_PROCESSING.IsSuccess())
	require.True(t, TecFAILED_PROCESSING.Persists())
	require.Equal(t, CategoryTec, TecFAILED_PROCESSING.Category())

	require.False(t, TerPRE_SEQ.Persists())
	require.False(t, TefPAST_SEQ.Persists())
	require.False(t, TemUNKNOWN.Persists())
	require.False(t, TelINSUF_FEE_P.Persists())
}

func TestStringsAreStable(t *testing.T) {
	require.Equal(t, "tesSUCCESS", TesSUCCESS.String())
	require.Equal(t, "tec", CategoryTec.String())
}
