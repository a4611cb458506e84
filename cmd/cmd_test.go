package cmd

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersion(t *testing.T) {
	assert.Equal(t, "dev", Version)
	assert.Equal(t, "unknown", BuildTime)

	assert.NotNil(t, versionCmd)
	assert.Equal(t, "version", versionCmd.Use)
}

func TestRootCommand(t *testing.T) {
	assert.NotNil(t, rootCmd)
	assert.Equal(t, "commit-formatter", rootCmd.Use)
	assert.Contains(t, rootCmd.Long, "Conventional Commits")
	assert.True(t, rootCmd.SilenceErrors)
	assert.True(t, rootCmd.SilenceUsage)

	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("config"))
	assert.NotNil(t, rootCmd.Flags().Lookup("dry-run"))
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("verbose"))
}

func TestCheckCommand(t *testing.T) {
	assert.NotNil(t, checkCmd)
	assert.Equal(t, "check [message...]", checkCmd.Use)
	assert.NotNil(t, checkCmd.Flags().Lookup("language"))
	assert.NotNil(t, checkCmd.Flags().Lookup("model"))
	assert.NotNil(t, checkCmd.Flags().Lookup("prompt"))
}

func TestInitConfig(t *testing.T) {
	viper.Reset()
	t.Setenv("HOME", t.TempDir())

	cfgFile = ""
	assert.NotPanics(t, func() {
		initConfig()
	})
	assert.NoError(t, configErr)
}

func TestRunCheck_AlreadyConventional(t *testing.T) {
	viper.Reset()
	t.Setenv("HOME", t.TempDir())
	cfgFile = ""
	initConfig()
	require.NoError(t, configErr)

	var out bytes.Buffer
	oldOut := outWriterFunc
	outWriterFunc = func() io.Writer { return &out }
	defer func() { outWriterFunc = oldOut }()

	err := runCheck(context.Background(), "feat: add dark mode toggle")
	require.NoError(t, err)
	assert.Contains(t, out.String(), "already follows Conventional Commits")
}
