package lex

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnolang/dfalex/internal/token"
)

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("missing default file falls back to defaults", func(t *testing.T) {
		config, err := LoadConfig(afero.NewMemMapFs(), "")
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), config)
	})

	t.Run("missing explicit file is an error", func(t *testing.T) {
		_, err := LoadConfig(afero.NewMemMapFs(), "custom.yaml")
		assert.Error(t, err)
	})

	t.Run("file overrides defaults", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		content := `name: mylang
extensions: [".my"]
keywords:
  let: 40
  var: 41
`
		require.NoError(t, afero.WriteFile(fs, DefaultConfigPath, []byte(content), 0o644))

		config, err := LoadConfig(fs, "")
		require.NoError(t, err)
		assert.Equal(t, "mylang", config.Name)
		assert.Equal(t, []string{".my"}, config.Extensions)
		assert.Equal(t, map[string]int{"let": 40, "var": 41}, config.Keywords)
		assert.True(t, config.Report.Errors, "unset fields keep their default")
	})

	t.Run("empty file", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "empty.yaml", nil, 0o644))

		config, err := LoadConfig(fs, "empty.yaml")
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), config)
	})

	t.Run("unknown field", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "bad.yaml", []byte("colour: red\n"), 0o644))

		_, err := LoadConfig(fs, "bad.yaml")
		assert.Error(t, err)
	})
}

func TestConfigBuild(t *testing.T) {
	t.Parallel()

	config := DefaultConfig()
	config.Keywords = map[string]int{"let": 40}
	cfg, err := config.Build()
	require.NoError(t, err)

	kind, ok := cfg.Reserved.Lookup("let")
	assert.True(t, ok)
	assert.Equal(t, token.Kind(40), kind)
	assert.NoError(t, cfg.Table.Validate())

	config.Keywords = map[string]int{"let": int(token.Ident)}
	_, err = config.Build()
	assert.ErrorIs(t, err, token.ErrMalformedReserved)

	_, err = New(nil, config, nil)
	assert.ErrorIs(t, err, token.ErrMalformedReserved)
}
