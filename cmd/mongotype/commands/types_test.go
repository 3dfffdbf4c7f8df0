package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleTypes(t *testing.T) {
	var err error
	output := captureStdout(t, func() {
		err = HandleTypes(nil)
	})
	require.NoError(t, err)

	assert.Contains(t, output, "CODE")
	assert.Contains(t, output, "NumberInt")
	assert.Contains(t, output, "(NumberInt/int32/16)")
	assert.Contains(t, output, "NumberLong")
}

func TestHandleTypesMask(t *testing.T) {
	var err error
	output := captureStdout(t, func() {
		err = HandleTypes([]string{"--mask", "name"})
	})
	require.NoError(t, err)

	assert.Contains(t, output, "(NumberInt)")
	assert.NotContains(t, output, "(NumberInt/int32/16)")
}

func TestHandleTypesRejectsArguments(t *testing.T) {
	err := HandleTypes([]string{"extra"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no arguments")
}

func TestHandleTypesRejectsBadMask(t *testing.T) {
	err := HandleTypes([]string{"--mask", "bogus"})
	require.Error(t, err)
}
