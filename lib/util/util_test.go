package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLoggingLevel(t *testing.T) {
	closer, err := SetupLogging("debug", "")
	require.NoError(t, err)
	defer closer.Close()
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())

	_, err = SetupLogging("chatty", "")
	assert.Error(t, err, "unknown levels should be rejected")
}

func TestSetupLoggingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "coolchart.log")
	closer, err := SetupLogging("info", path)
	require.NoError(t, err)

	logrus.Info("written to file")
	require.NoError(t, closer.Close())
	logrus.SetOutput(os.Stderr)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written to file")
}

func TestVersionString(t *testing.T) {
	assert.Equal(t, Version+"-"+GitCommit, VersionString())
}
