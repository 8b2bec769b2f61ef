package secret_test

import (
	"os"
	"testing"

	"yukari-engine/core/secret"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDotenvFile_Save(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"Plain", "sk-abc123", "OPENAI_API_KEY=sk-abc123\n"},
		{"WithSpace", "sk abc", "OPENAI_API_KEY=\"sk abc\"\n"},
		{"WithHash", "sk#abc", "OPENAI_API_KEY=\"sk#abc\"\n"},
		{"TrailingDoubleQuote", `x"`, "OPENAI_API_KEY='x\"'\n"},
		{"TrailingDoubleQuoteLong", `sk-abc"`, "OPENAI_API_KEY='sk-abc\"'\n"},
		{"WrappedInDoubleQuotes", `"dq"`, "OPENAI_API_KEY='\"dq\"'\n"},
		{"InnerBackslash", `a\b`, "OPENAI_API_KEY=\"a\\\\b\"\n"},
		{"Newline", "a\nb", "OPENAI_API_KEY=\"a\\nb\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := afero.NewMemMapFs()
			d := secret.NewDotenvFile(fsys, ".env", secret.DefaultEnvName)

			require.NoError(t, d.Save(tt.value))

			raw, err := afero.ReadFile(fsys, ".env")
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(raw))

			got, ok, err := d.Load()
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, tt.value, got)
		})
	}
}

func TestDotenvFile_SaveUnencodable(t *testing.T) {
	for _, value := range []string{`a\`, `\\`} {
		t.Run(value, func(t *testing.T) {
			fsys := afero.NewMemMapFs()
			require.NoError(t, afero.WriteFile(fsys, ".env", []byte("OPENAI_API_KEY=previous\n"), 0o600))
			d := secret.NewDotenvFile(fsys, ".env", secret.DefaultEnvName)

			err := d.Save(value)
			assert.ErrorIs(t, err, secret.ErrUnencodable)

			got, ok, err := d.Load()
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, "previous", got)
		})
	}
}

func TestDotenvFile_SaveTruncates(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, ".env", []byte("OTHER=1\nOPENAI_API_KEY=a-very-long-previous-value\n"), 0o600))
	d := secret.NewDotenvFile(fsys, ".env", secret.DefaultEnvName)

	require.NoError(t, d.Save("short"))

	raw, err := afero.ReadFile(fsys, ".env")
	require.NoError(t, err)
	assert.Equal(t, "OPENAI_API_KEY=short\n", string(raw))
}

func TestDotenvFile_Load(t *testing.T) {
	t.Run("Missing", func(t *testing.T) {
		d := secret.NewDotenvFile(afero.NewMemMapFs(), ".env", secret.DefaultEnvName)
		got, ok, err := d.Load()
		assert.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, got)
	})

	t.Run("OtherKeysOnly", func(t *testing.T) {
		fsys := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fsys, ".env", []byte("LOG_LEVEL=debug\n"), 0o600))
		d := secret.NewDotenvFile(fsys, ".env", secret.DefaultEnvName)

		_, ok, err := d.Load()
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("CustomKey", func(t *testing.T) {
		fsys := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fsys, "keys.env", []byte("# comment\nMY_KEY=xyz\n"), 0o600))
		d := secret.NewDotenvFile(fsys, "keys.env", "MY_KEY")

		got, ok, err := d.Load()
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "xyz", got)
	})
}

func TestEnvMirror(t *testing.T) {
	t.Setenv("YUKARI_TEST_KEY", "")
	store := secret.NewStore(
		secret.NewDotenvFile(afero.NewMemMapFs(), ".env", secret.DefaultEnvName),
		zap.NewNop(),
		secret.WithObserver(secret.EnvMirror("YUKARI_TEST_KEY", zap.NewNop())),
	)

	store.Set("mirrored")
	assert.Equal(t, "mirrored", os.Getenv("YUKARI_TEST_KEY"))
}

func TestConfig_KeyName(t *testing.T) {
	assert.Equal(t, secret.DefaultEnvName, secret.Config{}.KeyName())
	assert.Equal(t, "X", secret.Config{EnvName: "X"}.KeyName())
}

func TestSetStatus_String(t *testing.T) {
	assert.Equal(t, "persisted", secret.SetPersisted.String())
	assert.Equal(t, "memory_only", secret.SetMemoryOnly.String())
	assert.Equal(t, "failed", secret.SetFailed.String())
}
