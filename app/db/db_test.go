package db

import (
	"path/filepath"
	"testing"

	"csvvault/config"

	"github.com/stretchr/testify/require"
)

func TestConnectSqlite(t *testing.T) {
	gdb, err := Connect(config.DB{Driver: "sqlite", Path: filepath.Join(t.TempDir(), "test.db")})
	require.NoError(t, err)
	require.NotNil(t, gdb)
}

func TestConnectUnknownDriver(t *testing.T) {
	_, err := Connect(config.DB{Driver: "oracle"})
	require.Error(t, err)
}
