package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type testInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TestEngine_GenerateAndVerify(t *testing.T) {
	engine := NewEngine[testInfo]("secret", time.Minute)

	token, err := engine.Generate("sub", testInfo{ID: "id", Name: "name"})
	require.NoError(t, err)

	info, err := engine.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "id", info.ID)
	require.Equal(t, "name", info.Name)
}

func TestEngine_Verify_wrongSecret(t *testing.T) {
	engine := NewEngine[testInfo]("secret", time.Minute)
	other := NewEngine[testInfo]("another", time.Minute)

	token, err := engine.Generate("sub", testInfo{ID: "id"})
	require.NoError(t, err)

	_, err = other.Verify(token)
	require.Error(t, err)
}

func TestEngine_Verify_expired(t *testing.T) {
	engine := NewEngine[testInfo]("secret", -time.Minute)

	token, err := engine.Generate("sub", testInfo{ID: "id"})
	require.NoError(t, err)

	_, err = engine.Verify(token)
	require.Error(t, err)
}
