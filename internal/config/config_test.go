package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "homegen.yaml"))
	require.NoError(t, err)
	require.Equal(t, ".", cfg.PackageDir)
	require.Equal(t, "./site", cfg.Output.Directory)
	require.Equal(t, "quarto", cfg.Engine.Command)
	require.Equal(t, "CRAN", cfg.Registry.Name)
	require.Equal(t, 5, cfg.Registry.TimeoutSeconds)
}

func TestLoadParsesHomeOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "homegen.yaml")
	content := `
package_dir: ./pkg
output:
  directory: ./public
home:
  strip_header: true
  links:
    - text: Ask a question
      href: https://example.org/forum
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "./pkg", cfg.PackageDir)
	require.Equal(t, "./public", cfg.Output.Directory)
	require.True(t, cfg.Home.StripHeader)
	require.Len(t, cfg.Home.Links, 1)
	require.Equal(t, "Ask a question", cfg.Home.Links[0].Text)
	require.Equal(t, "https://example.org/forum", cfg.Home.Links[0].Href)
}

func TestLoadAppliesEnvOverrides(t *testing.T) {
	t.Setenv("HOMEGEN_ENGINE", "rmarkdown")
	t.Setenv("HOMEGEN_OUTPUT_DIR", "/tmp/out")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	require.Equal(t, "rmarkdown", cfg.Engine.Command)
	require.Equal(t, "/tmp/out", cfg.Output.Directory)
}

func TestValidateRejectsShellMetacharacters(t *testing.T) {
	cfg := &Config{
		Output: OutputConfig{Directory: "./site"},
		Engine: EngineConfig{Command: "quarto; rm -rf /"},
	}
	require.Error(t, Validate(cfg))
}

func TestInitRefusesOverwriteWithoutForce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "homegen.yaml")
	require.NoError(t, Init(path, false))
	require.Error(t, Init(path, false))
	require.NoError(t, Init(path, true))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "package.yaml", cfg.Metadata)
}
