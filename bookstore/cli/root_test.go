package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	for _, path := range [][]string{{"serve"}, {"migrate"}, {"user", "add"}} {
		sub, _, err := cmd.Find(path)
		require.NoError(t, err)
		assert.Equal(t, path[len(path)-1], sub.Name())
	}

	driver := cmd.PersistentFlags().Lookup("driver")
	require.NotNil(t, driver)
	assert.Equal(t, "", driver.DefValue)
}

func TestMigrate_InvalidCommand(t *testing.T) {
	cmd := NewRootCommand()
	cmd.SetArgs([]string{"migrate", "sideways"})
	err := cmd.Execute()
	require.ErrorContains(t, err, `invalid migrate command "sideways"`)
}

func TestMigrate_SQLite(t *testing.T) {
	t.Setenv("SQLITE_PATH", ":memory:")
	cmd := NewRootCommand()
	cmd.SetArgs([]string{"--driver", "sqlite", "migrate", "up"})
	require.NoError(t, cmd.Execute())
}

func TestUserAdd(t *testing.T) {
	t.Setenv("SQLITE_PATH", ":memory:")

	t.Run("ok", func(t *testing.T) {
		var out bytes.Buffer
		cmd := NewRootCommand()
		cmd.SetOut(&out)
		cmd.SetArgs([]string{"--driver", "sqlite", "user", "add",
			"--email", "park@mail.com", "--phone", "010-1234", "--name", "Park", "--role", "Admin"})
		require.NoError(t, cmd.Execute())
		assert.Equal(t, "created park@mail.com (Admin)\n", out.String())
	})
	t.Run("missing phone", func(t *testing.T) {
		cmd := NewRootCommand()
		cmd.SetArgs([]string{"--driver", "sqlite", "user", "add", "--email", "park@mail.com"})
		require.Error(t, cmd.Execute())
	})
	t.Run("bad role", func(t *testing.T) {
		cmd := NewRootCommand()
		cmd.SetArgs([]string{"--driver", "sqlite", "user", "add",
			"--email", "park@mail.com", "--phone", "010", "--role", "Guest"})
		require.Error(t, cmd.Execute())
	})
}
