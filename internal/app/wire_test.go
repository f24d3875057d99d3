package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhouzirui/cm-assistant/backend/internal/config"
)

func TestBuildWithoutCredential(t *testing.T) {
	cfg := &config.Config{Model: config.ModelConfig{Model: config.DefaultModelName}}

	c, err := Build(context.Background(), cfg)
	require.Error(t, err)
	require.NotNil(t, c)
	assert.Nil(t, c.Orchestrator)
	assert.Len(t, c.Personas.List(), 7)
	assert.Len(t, c.Languages.List(), 10)
}

func TestLoadPersonasFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "personas.toml")
	data := `
[[persona]]
id = "Chanakya"
label = "Acharya Chanakya"
style_key = "answer-chanakya"
instruction = "You are Chanakya. Answer with statecraft."
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	store, err := LoadPersonas(&config.Config{PersonaFile: path})
	require.NoError(t, err)
	p, ok := store.FindByID("Chanakya")
	require.True(t, ok)
	assert.Equal(t, "Acharya Chanakya", p.Label)
}

func TestLoadPersonasMissingFile(t *testing.T) {
	_, err := LoadPersonas(&config.Config{PersonaFile: filepath.Join(t.TempDir(), "absent.toml")})
	assert.Error(t, err)
}
