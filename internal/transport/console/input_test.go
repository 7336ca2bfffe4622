package console

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAction(t *testing.T) {
	cases := map[string]Action{
		"1":   ActionAdd,
		" 2 ": ActionList,
		"3":   ActionClear,
		"4":   ActionExit,
		"":    ActionUnknown,
		"5":   ActionUnknown,
		"add": ActionUnknown,
	}
	for choice, want := range cases {
		assert.Equal(t, want, ParseAction(choice), "choice %q", choice)
	}
	assert.Equal(t, "exit", ActionExit.String())
	assert.Equal(t, "unknown", Action(42).String())
}

func TestParseSalary(t *testing.T) {
	value, err := parseSalary(" 10000.50 ")
	require.NoError(t, err)
	assert.Equal(t, 10000.5, value)

	for _, raw := range []string{"", "abc", "0", "-1", "NaN", "Inf", "10,000"} {
		_, err := parseSalary(raw)
		assert.ErrorIs(t, err, errInvalidSalary, "input %q", raw)
	}
}
