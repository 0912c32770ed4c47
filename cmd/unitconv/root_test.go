package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/unitgo"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestConvertText(t *testing.T) {
	out, err := execute(t, "2 km", "--to", "m")
	require.NoError(t, err)
	assert.Equal(t, "2000 m\n", out)
}

func TestSplitArgs(t *testing.T) {
	out, err := execute(t, "5", "kg")
	require.NoError(t, err)
	assert.Equal(t, "5 kg\n", out)
}

func TestConvertJSON(t *testing.T) {
	out, err := execute(t, "--absolute", "20 degC", "--to", "K", "--format", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"value":293.15,"unit":"K","kind":"AbsoluteTemperature","absolute":true}`, out)
}

func TestEnvironment(t *testing.T) {
	t.Setenv("UNITCONV_TO", "ft")
	out, err := execute(t, "0.3048 m")
	require.NoError(t, err)
	assert.Equal(t, "1 ft\n", out)
}

func TestErrors(t *testing.T) {
	_, err := execute(t, "3 zz")
	var pe *unitgo.ErrParse
	assert.ErrorAs(t, err, &pe)

	_, err = execute(t, "3 m", "--to", "s")
	var ce *unitgo.ErrConversion
	assert.ErrorAs(t, err, &ce)

	_, err = execute(t, "3 m", "--format", "xml")
	assert.ErrorIs(t, err, errFormat)

	_, err = execute(t, "3 m", "--codec", "gob")
	assert.ErrorIs(t, err, errCodec)
}

func TestUnits(t *testing.T) {
	out, err := execute(t, "units")
	require.NoError(t, err)
	assert.Contains(t, out, "Length\tm\n")

	out, err = execute(t, "units", "Mass")
	require.NoError(t, err)
	assert.Contains(t, out, "kg\tkilogram\t")

	_, err = execute(t, "units", "Nope")
	assert.Error(t, err)
}
