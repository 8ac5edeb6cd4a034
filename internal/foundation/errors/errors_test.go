package errors

import (
	stderrors "errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewIncludesCategoryAndMessage(t *testing.T) {
	err := New(CategoryConfig, "missing output directory")
	require.Equal(t, "[config] missing output directory", err.Error())
	require.Equal(t, CategoryConfig, err.Category())
}

func TestWrapPreservesCause(t *testing.T) {
	cause := os.ErrNotExist
	err := Wrap(cause, CategoryFileSystem, "open metadata")
	require.ErrorIs(t, err, os.ErrNotExist)
	require.Contains(t, err.Error(), "open metadata")
}

func TestCategoryOfWalksChain(t *testing.T) {
	inner := Wrap(stderrors.New("dial tcp: refused"), CategoryNetwork, "registry query")
	outer := fmt.Errorf("build home page: %w", inner)

	require.Equal(t, CategoryNetwork, CategoryOf(outer))
	require.True(t, IsCategory(outer, CategoryNetwork))
	require.False(t, IsCategory(outer, CategoryRender))
}

func TestCategoryOfPlainError(t *testing.T) {
	require.Equal(t, Category(""), CategoryOf(stderrors.New("plain")))
}

func TestWithContext(t *testing.T) {
	err := New(CategoryRender, "engine exited").WithContext("source", "README.Rmd")
	v, ok := err.Context()["source"]
	require.True(t, ok)
	require.Equal(t, "README.Rmd", v)
}
