package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	assert := assert.New(t)

	os.Setenv("PDACHECK_TEST_MODEL", "zeros-double-ones")
	defer os.Unsetenv("PDACHECK_TEST_MODEL")

	conf, err := LoadConfig(`
model = "$PDACHECK_TEST_MODEL"
step_limit = 500
trace = true
`)
	require.NoError(t, err)

	assert.Equal("zeros-double-ones", conf.Model)
	assert.Equal(500, conf.StepLimit)
	assert.True(conf.Trace)
	assert.False(conf.SinglePath)
	// Unset keys keep their defaults.
	assert.Equal("warn", conf.LogLevel)
	assert.Equal("", conf.ModelFile)
}

func TestLoadConfigDefaults(t *testing.T) {
	conf, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), *conf)
}

func TestSelectModel(t *testing.T) {
	assert := assert.New(t)

	m, err := selectModel(&Config{Model: "0n12n"})
	require.NoError(t, err)
	assert.Equal("zeros-double-ones", m.Name())

	_, err = selectModel(&Config{Model: "no-such-automaton"})
	assert.Error(err)
}
