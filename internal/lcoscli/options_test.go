package lcoscli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, argv ...string) (Options, error) {
	t.Helper()
	fs, _ := NewFlagSet("greensteel")
	return ParseArgs(fs, argv)
}

func TestNoFlagsNoOverrides(t *testing.T) {
	o, err := parse(t)
	require.NoError(t, err)
	assert.True(t, o.Overrides.Empty())
	assert.Empty(t, o.Scenarios)
}

func TestOnlyChangedFlagsOverride(t *testing.T) {
	o, err := parse(t, "--electricity-price", "30", "--lifetime=25", "--breakdown", "--strict")
	require.NoError(t, err)
	require.NotNil(t, o.Overrides.ElectricityPrice)
	assert.Equal(t, 30.0, *o.Overrides.ElectricityPrice)
	require.NotNil(t, o.Overrides.Lifetime)
	assert.Equal(t, 25, *o.Overrides.Lifetime)
	assert.Nil(t, o.Overrides.SteelOutput)
	assert.Nil(t, o.Overrides.Efficiency)
	assert.True(t, o.Breakdown)
	assert.True(t, o.Strict)
	assert.False(t, o.CashFlow)
}

func TestDefaultValueStillCountsAsSet(t *testing.T) {
	o, err := parse(t, "--steel-output", "120160")
	require.NoError(t, err)
	require.NotNil(t, o.Overrides.SteelOutput)
}

func TestHelpSkipsValidation(t *testing.T) {
	o, err := parse(t, "-h", "-o", "bogus")
	require.NoError(t, err)
	assert.True(t, o.Help)
}

func TestBadFlag(t *testing.T) {
	_, err := parse(t, "--no-such-flag")
	assert.Error(t, err)
	_, err = parse(t, "--lifetime", "ten")
	assert.Error(t, err)
}

func TestUsageMentionsPlantFlags(t *testing.T) {
	fs, usage := NewFlagSet("greensteel")
	_, err := ParseArgs(fs, nil)
	require.NoError(t, err)
	var b bytes.Buffer
	usage(&b)
	for _, f := range []string{"--electricity-price", "--elec-spec", "--cashflow", "--scenario", "[56.12]"} {
		assert.Contains(t, b.String(), f)
	}
}
