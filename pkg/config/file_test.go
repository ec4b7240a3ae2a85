package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv(EnvListen, "")
	t.Setenv(EnvMailProvider, "")
	t.Setenv(EnvResendAPIKey, "")
}

func TestNewFileMissingUsesDefaults(t *testing.T) {
	clearEnv(t)

	f, err := NewFile(filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)

	assert.Equal(t, ":8080", f.Listen())
	assert.Equal(t, MailProviderResend, f.MailProvider())
	assert.Equal(t, "*", f.AllowedOrigin())
	assert.False(t, f.Debug())
	assert.Empty(t, f.ResendAPIKey())
}

func TestNewFileEmptyUsesDefaults(t *testing.T) {
	clearEnv(t)

	p := filepath.Join(t.TempDir(), "empty.json")
	require.NoError(t, os.WriteFile(p, []byte("  \n"), 0644))

	f, err := NewFile(p)
	require.NoError(t, err)
	assert.Equal(t, "team@locaddo.com", f.NotifyTo())
}

func TestNewFileJSONAndYAML(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	jp := filepath.Join(dir, "locaddo.json")
	require.NoError(t, os.WriteFile(jp, []byte(`{"listen":":9000","notifyTo":"ops@example.com","debug":true}`), 0644))
	f, err := NewFile(jp)
	require.NoError(t, err)
	assert.Equal(t, ":9000", f.Listen())
	assert.Equal(t, "ops@example.com", f.NotifyTo())
	assert.True(t, f.Debug())
	assert.Equal(t, MailProviderResend, f.MailProvider())

	yp := filepath.Join(dir, "locaddo.yaml")
	require.NoError(t, os.WriteFile(yp, []byte("mailProvider: ses\nawsRegion: eu-west-1\n"), 0644))
	f, err = NewFile(yp)
	require.NoError(t, err)
	assert.Equal(t, MailProviderSES, f.MailProvider())
	assert.Equal(t, "eu-west-1", f.AWSRegion())
}

func TestNewFileInvalid(t *testing.T) {
	clearEnv(t)

	p := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(p, []byte("{not json"), 0644))
	_, err := NewFile(p)
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(EnvListen, "127.0.0.1:7000")
	t.Setenv(EnvMailProvider, MailProviderLog)
	t.Setenv(EnvResendAPIKey, " re_test ")

	p := filepath.Join(t.TempDir(), "locaddo.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"listen":":9000"}`), 0644))

	f, err := NewFile(p)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:7000", f.Listen())
	assert.Equal(t, MailProviderLog, f.MailProvider())
	assert.Equal(t, "re_test", f.ResendAPIKey())
	assert.Equal(t, true, f.LogrusFields()["resendAPIKey"])
}

func TestSaveRoundTrip(t *testing.T) {
	clearEnv(t)

	for _, name := range []string{"locaddo.json", "locaddo.yml"} {
		t.Run(name, func(t *testing.T) {
			p := filepath.Join(t.TempDir(), name)

			defaults, err := NewRawFileConfigFromConfig(NewFileFromConfig(nil, ""))
			require.NoError(t, err)
			f := NewFileFromConfig(defaults, p)
			f.SetListen(":1234")
			f.SetDebug(true)
			require.NoError(t, f.Save())

			g, err := NewFile(p)
			require.NoError(t, err)
			assert.Equal(t, ":1234", g.Listen())
			assert.True(t, g.Debug())
			assert.Equal(t, "Locaddo <team@locaddo.com>", g.WelcomeFrom())
		})
	}
}

func TestSaveWithoutPath(t *testing.T) {
	assert.Error(t, NewFileFromConfig(nil, "").Save())
}
