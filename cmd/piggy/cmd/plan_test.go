package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/templui/piggypanic/internal/savings"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	c := PlanCmd()
	var out bytes.Buffer
	c.SetOut(&out)
	c.SetErr(&out)
	c.SetArgs(args)
	err := c.Execute()
	return out.String(), err
}

func TestPlanCmd(t *testing.T) {
	out, err := runCommand(t, "--target", "1000", "--per", "100", "--frequency", "weekly", "--start", "2024-01-01")
	require.NoError(t, err)

	assert.Contains(t, out, "Periods:   10 weeks")
	assert.Contains(t, out, "Finishes:  2024-03-11")
	assert.Contains(t, out, "Target:    1000.00")
}

func TestPlanCmdMonthClamp(t *testing.T) {
	out, err := runCommand(t, "--target", "100", "--per", "100", "--frequency", "monthly", "--start", "2024-01-31")
	require.NoError(t, err)

	assert.Contains(t, out, "Periods:   1 month\n")
	assert.Contains(t, out, "Finishes:  2024-02-29")
}

func TestPlanCmdRejectsBadInput(t *testing.T) {
	_, err := runCommand(t, "--target", "1000", "--per", "0", "--start", "2024-01-01")
	require.ErrorIs(t, err, savings.ErrInvalidInput)

	_, err = runCommand(t, "--target", "1000", "--per", "10", "--frequency", "yearly")
	require.ErrorIs(t, err, savings.ErrUnrecognizedFrequency)

	_, err = runCommand(t, "--target", "1000", "--per", "10", "--start", "01/01/2024")
	require.Error(t, err)

	_, err = runCommand(t, "--per", "10")
	require.Error(t, err)
}
