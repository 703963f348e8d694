package main

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintCommand(t *testing.T) {
	t.Chdir(t.TempDir())
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"print", "--numbersColor", "#ff8800"})

	require.NoError(t, root.Execute())
	assert.Regexp(t, `^\d{2}:\d{2}:\d{2}(AM|PM)\n$`, out.String())
}

func TestPrintCommandInvalidColor(t *testing.T) {
	t.Chdir(t.TempDir())
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"print", "--numbersColor", "orange"})
	assert.Error(t, root.Execute())
}

func TestNewLogger(t *testing.T) {
	l, err := newLogger("debug")
	require.NoError(t, err)
	assert.NotNil(t, l)

	_, err = newLogger("loud")
	assert.Error(t, err)
}

func TestLoadTickSoundOff(t *testing.T) {
	s, err := loadTickSound("")
	require.NoError(t, err)
	assert.Nil(t, s)
}

func TestHexColor(t *testing.T) {
	assert.Equal(t, "#ff8800", hexColor(color.NRGBA{R: 0xff, G: 0x88, A: 0xff}))
}
