package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
knowledge:
  - entity_type: headline
    content: Ship faster
  - entity_type: plan
    content: For growing teams
    workspace_id: other
    metadata:
      name: Team
      price: 49
personas:
  - id: dev
    name: developer
    pain_points: [flaky builds]
brand:
  id: acme
  name: Acme
  colors:
    primary: "#ff5500"
  voice:
    tone: bold
    personality: [witty]
`), 0o644))

	f, err := loadSeed(path, "ws")
	require.NoError(t, err)

	require.Len(t, f.Knowledge, 2)
	assert.Equal(t, "ws", f.Knowledge[0].WorkspaceID)
	assert.Equal(t, "other", f.Knowledge[1].WorkspaceID)
	assert.Equal(t, "Team", f.Knowledge[1].Metadata["name"])
	assert.Equal(t, 49, f.Knowledge[1].Metadata["price"])

	require.Len(t, f.Personas, 1)
	assert.Equal(t, "ws", f.Personas[0].WorkspaceID)
	assert.Equal(t, []string{"flaky builds"}, f.Personas[0].PainPoints)

	require.NotNil(t, f.Brand)
	assert.Equal(t, "#ff5500", f.Brand.Colors["primary"])
	assert.Equal(t, []string{"witty"}, f.Brand.Voice.Personality)
}

func TestLoadSeed_Errors(t *testing.T) {
	_, err := loadSeed(filepath.Join(t.TempDir(), "missing.yaml"), "ws")
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("knowledge: {"), 0o644))
	_, err = loadSeed(path, "ws")
	assert.Error(t, err)
}
