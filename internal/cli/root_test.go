package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the CLI with the given args, capturing stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "ditrune", cmd.Use)
	assert.Contains(t, cmd.Long, "729")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	commands := []string{"quadset", "family", "transition", "vectors", "lattice", "atlas"}

	for _, cmdName := range commands {
		t.Run(cmdName, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{cmdName})
			require.NoError(t, err, "Command %s should exist", cmdName)
			require.NotNil(t, subCmd)
			assert.Equal(t, cmdName, subCmd.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)
	assert.Equal(t, "false", verboseFlag.DefValue)

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)

	layoutFlag := cmd.PersistentFlags().Lookup("layout")
	require.NotNil(t, layoutFlag)
	assert.Equal(t, "", layoutFlag.DefValue)
}

func TestAtlasCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	atlasCmd, _, err := cmd.Find([]string{"atlas"})
	require.NoError(t, err)

	dbFlag := atlasCmd.PersistentFlags().Lookup("db")
	require.NotNil(t, dbFlag)
	// --db is required, so default is empty
	assert.Equal(t, "", dbFlag.DefValue)
}

func TestVectorsCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	vectorsCmd, _, err := cmd.Find([]string{"vectors"})
	require.NoError(t, err)

	verifyFlag := vectorsCmd.Flags().Lookup("verify")
	require.NotNil(t, verifyFlag)
	assert.Equal(t, "true", verifyFlag.DefValue)

	limitFlag := vectorsCmd.Flags().Lookup("limit")
	require.NotNil(t, limitFlag)
	assert.Equal(t, "0", limitFlag.DefValue)
}

func TestFormatValidation(t *testing.T) {
	assert.True(t, isValidFormat("text"))
	assert.True(t, isValidFormat("json"))

	assert.False(t, isValidFormat("xml"))
	assert.False(t, isValidFormat(""))
	assert.False(t, isValidFormat("TEXT"))
}

func TestFormatValidationIntegration(t *testing.T) {
	_, _, err := execute(t, "--format", "invalid", "quadset", "42")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}
