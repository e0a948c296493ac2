package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Evan-Clegern/liberc-crypto/ercrypto"
	"github.com/Evan-Clegern/liberc-crypto/internal/config"
)

func TestIVFromFlag(t *testing.T) {
	iv, err := ivFromFlag("", 0x7)
	require.NoError(t, err)
	assert.Equal(t, byte(0x7), iv)

	iv, err = ivFromFlag("42", 0x00)
	require.NoError(t, err)
	assert.Equal(t, byte(0x42), iv)

	_, err = ivFromFlag("zz", 0x00)
	assert.Error(t, err)
}

func TestWidthFromConfig(t *testing.T) {
	assert.Equal(t, ercrypto.Width128, widthFromConfig(config.Config{DefaultAdapter: config.Nacha128}))
	assert.Equal(t, ercrypto.Width384, widthFromConfig(config.Config{DefaultAdapter: config.Nacha384}))
	assert.Equal(t, ercrypto.Width512, widthFromConfig(config.Config{DefaultAdapter: config.Nacha512}))
	assert.Equal(t, ercrypto.Width768, widthFromConfig(config.Config{DefaultAdapter: config.Nacha768}))
	assert.Equal(t, ercrypto.Width256, widthFromConfig(config.Config{DefaultAdapter: "unknown"}))
}
