package commands

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/dtopr/internal/errors"
)

// writeEntryFile writes a valid entry whose paths exist and returns its path.
func writeEntryFile(t *testing.T, dir string) string {
	t.Helper()
	bin, wd, icon := writeFixture(t)
	path := filepath.Join(dir, "myapp.desktop")
	content := joinLines(
		"[Desktop Entry]",
		"Encoding=UTF-8",
		"Version=1.0",
		"Type=Application",
		"Terminal=false",
		"Name=My App",
		"Comment=A test app",
		"Exec="+bin+" --flag",
		"Path="+wd,
		"Icon="+icon,
		"Categories=Game;Graphics;",
	)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestVersionCommand(t *testing.T) {
	isolate(t)

	out, err := executeCommand(t, "", "version")
	require.NoError(t, err)

	for _, want := range []string{"dtopr version", "commit:", "built:", runtime.Version()} {
		assert.Contains(t, out, want)
	}
}

func TestCategoriesCommand(t *testing.T) {
	isolate(t)

	out, err := executeCommand(t, "", "categories")
	require.NoError(t, err)

	assert.Contains(t, out, "\t(0) <End Selection>\n")
	assert.Contains(t, out, "\t(1) AudioVideo\n")
	assert.Contains(t, out, "\t(4) Game\n")
	assert.Contains(t, out, "\t(11) Utility\n")
}

func TestShowCommand_Text(t *testing.T) {
	work := isolate(t)
	path := writeEntryFile(t, work)

	out, err := executeCommand(t, "", "show", path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 11)
	assert.Equal(t, "[Desktop Entry]", lines[0])
	assert.Equal(t, "Terminal=false", lines[4])
	assert.Equal(t, "Categories=Game;Graphics;", lines[10])
}

func TestShowCommand_Formats(t *testing.T) {
	tests := []struct {
		format    string
		unmarshal func([]byte, any) error
	}{
		{"json", json.Unmarshal},
		{"yaml", yaml.Unmarshal},
		{"toml", toml.Unmarshal},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			work := isolate(t)
			path := writeEntryFile(t, work)

			out, err := executeCommand(t, "", "show", path, "--format", tt.format)
			require.NoError(t, err)

			var got entryView
			require.NoError(t, tt.unmarshal([]byte(out), &got))
			assert.Equal(t, "Desktop Entry", got.Group)
			assert.Equal(t, []string{"Game", "Graphics"}, got.Categories)
			require.Len(t, got.Entries, 10)
			assert.Equal(t, "Encoding", got.Entries[0].Key)
			assert.Equal(t, "Name", got.Entries[4].Key)
			assert.Equal(t, "My App", got.Entries[4].Value)
		})
	}
}

func TestShowCommand_UnknownFormat(t *testing.T) {
	work := isolate(t)
	path := writeEntryFile(t, work)

	_, err := executeCommand(t, "", "show", path, "--format", "xml")
	require.Error(t, err)
	assert.Equal(t, errors.ExitUser, errors.ExitCode(err))
}

func TestShowCommand_MissingFile(t *testing.T) {
	isolate(t)

	_, err := executeCommand(t, "", "show", "nope.desktop")
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrNotFound)
	assert.Equal(t, errors.ExitUser, errors.ExitCode(err))
}

func TestValidateCommand_Valid(t *testing.T) {
	work := isolate(t)
	path := writeEntryFile(t, work)

	out, err := executeCommand(t, "", "validate", path)
	require.NoError(t, err)
	assert.Contains(t, out, "is a valid desktop entry")
}

func TestValidateCommand_Invalid(t *testing.T) {
	work := isolate(t)
	path := filepath.Join(work, "broken.desktop")
	require.NoError(t, os.WriteFile(path, []byte("[Desktop Entry]\nType=Application\nTerminal=maybe\n"), 0o644))

	out, err := executeCommand(t, "", "validate", path)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInvalidEntry)
	assert.Equal(t, errors.ExitUser, errors.ExitCode(err))
	assert.Contains(t, out, "Errors:")
	assert.Contains(t, out, "must be true or false")
}

func TestValidateCommand_JSON(t *testing.T) {
	work := isolate(t)
	path := writeEntryFile(t, work)

	out, err := executeCommand(t, "", "validate", path, "--json")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, path, got["source"])
}

func TestInstallCommand(t *testing.T) {
	work := isolate(t)
	path := writeEntryFile(t, work)
	dest := t.TempDir()

	out, err := executeCommand(t, "", "install", path, "--dest", dest)
	require.NoError(t, err)

	assert.NoFileExists(t, path)
	assert.FileExists(t, filepath.Join(dest, "myapp.desktop"))
	assert.Contains(t, out, "renamed")
}

func TestInstallCommand_ExistingKeepsBackup(t *testing.T) {
	work := isolate(t)
	path := writeEntryFile(t, work)
	dest := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dest, "myapp.desktop"), []byte("old"), 0o644))

	out, err := executeCommand(t, "y\n", "install", path, "--dest", dest)
	require.NoError(t, err)

	assert.Contains(t, out, "overwrite '")
	backup, err := os.ReadFile(filepath.Join(dest, "myapp.desktop.~1~"))
	require.NoError(t, err)
	assert.Equal(t, "old", string(backup))
}

func TestInstallCommand_User(t *testing.T) {
	work := isolate(t)
	path := writeEntryFile(t, work)

	_, err := executeCommand(t, "", "install", path, "--user")
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(os.Getenv("XDG_DATA_HOME"), "applications", "myapp.desktop"))
}

func TestInstallCommand_RefusesInvalid(t *testing.T) {
	work := isolate(t)
	path := filepath.Join(work, "broken.desktop")
	require.NoError(t, os.WriteFile(path, []byte("[Desktop Entry]\n"), 0o644))

	_, err := executeCommand(t, "", "install", path, "--dest", t.TempDir())
	require.Error(t, err)
	assert.FileExists(t, path)
}

func TestInitCommand(t *testing.T) {
	isolate(t)

	out, err := executeCommand(t, "", "init", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "Created ")

	data, err := os.ReadFile(filepath.Join(os.Getenv("XDG_CONFIG_HOME"), "dtopr", "config.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "picker: numbered")
	assert.Contains(t, string(data), "install_dir: /usr/share/applications/")

	out, err = executeCommand(t, "", "init", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "already exists")
}

func TestInitCommand_Declined(t *testing.T) {
	isolate(t)

	out, err := executeCommand(t, "n\n", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Aborted")
	assert.NoFileExists(t, filepath.Join(os.Getenv("XDG_CONFIG_HOME"), "dtopr", "config.yaml"))
}

func TestConfigCommand_SetGet(t *testing.T) {
	isolate(t)

	_, err := executeCommand(t, "", "config", "set", "picker", "fuzzy")
	require.NoError(t, err)

	out, err := executeCommand(t, "", "config", "get", "picker")
	require.NoError(t, err)
	assert.Equal(t, "fuzzy\n", out)

	out, err = executeCommand(t, "", "config", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "picker: fuzzy")
	assert.Contains(t, out, "clear_screen: true")
}

func TestConfigCommand_SetInvalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown key", []string{"config", "set", "color", "blue"}},
		{"bad picker", []string{"config", "set", "picker", "wheel"}},
		{"bad bool", []string{"config", "set", "clear_screen", "sometimes"}},
		{"bad version", []string{"config", "set", "version", "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)

			_, err := executeCommand(t, "", tt.args...)
			require.Error(t, err)
			assert.Equal(t, errors.ExitUser, errors.ExitCode(err))
			assert.NoFileExists(t, filepath.Join(os.Getenv("XDG_CONFIG_HOME"), "dtopr", "config.yaml"))
		})
	}
}

func TestConfigCommand_Path(t *testing.T) {
	isolate(t)

	out, err := executeCommand(t, "", "config", "path")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(os.Getenv("XDG_CONFIG_HOME"), "dtopr", "config.yaml")+"\n", out)
}

func TestDoctorCommand(t *testing.T) {
	isolate(t)
	dest := filepath.Join(os.Getenv("XDG_DATA_HOME"), "applications")
	require.NoError(t, os.MkdirAll(dest, 0o755))

	out, err := executeCommand(t, "", "doctor", "--user", "--all")
	require.NoError(t, err)

	assert.Contains(t, out, "[config] config-file")
	assert.Contains(t, out, "[install] install-dir")
	assert.Contains(t, out, "[install] search-path")
	assert.Contains(t, out, "0 warnings, 0 errors")
}

func TestDoctorCommand_Warnings(t *testing.T) {
	isolate(t)

	out, err := executeCommand(t, "", "doctor", "--dest", t.TempDir())
	require.Error(t, err)
	assert.Equal(t, errors.ExitUser, errors.ExitCode(err))
	assert.Contains(t, out, "menus will not show entries")
}

func TestDoctorCommand_BadConfigReported(t *testing.T) {
	work := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(work, "config.yaml"), []byte("picker: wheel\n"), 0o644))

	out, err := executeCommand(t, "", "doctor", "--json", "--user")
	require.Error(t, err)
	assert.Equal(t, errors.ExitSystem, errors.ExitCode(err))

	var report map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	summary := report["summary"].(map[string]any)
	assert.EqualValues(t, 1, summary["errors"])
}

func TestDoctorCommand_ExclusiveFlags(t *testing.T) {
	isolate(t)

	_, err := executeCommand(t, "", "doctor", "--json", "--all")
	assert.Error(t, err)
}

// fakeEditor installs an editor script that writes text to the file it is
// given, appending when redirect is ">>" and replacing when it is ">".
func fakeEditor(t *testing.T, redirect, text string) {
	t.Helper()
	script := filepath.Join(t.TempDir(), "editor.sh")
	body := "#!/bin/sh\nprintf '" + text + "' " + redirect + " \"$1\"\n"
	require.NoError(t, os.WriteFile(script, []byte(body), 0o755))
	t.Setenv("DTOPR_EDITOR", script)
}

func TestEditCommand_ValidatesAfterEditing(t *testing.T) {
	work := isolate(t)
	path := writeEntryFile(t, work)
	fakeEditor(t, ">>", "Terminal=sometimes\\n")

	out, err := executeCommand(t, "", "edit", path)
	require.NoError(t, err)

	assert.Contains(t, out, "Location: "+path)
	assert.Contains(t, out, "duplicate key")
}

func TestEditCommand_MissingFile(t *testing.T) {
	isolate(t)

	_, err := executeCommand(t, "", "edit", "nope.desktop")
	require.Error(t, err)
	assert.Equal(t, errors.ExitUser, errors.ExitCode(err))
}

func TestConfigEditCommand(t *testing.T) {
	isolate(t)

	_, err := executeCommand(t, "", "config", "edit")
	require.Error(t, err, "editing without a config file should fail")

	_, err = executeCommand(t, "", "init", "--yes")
	require.NoError(t, err)

	fakeEditor(t, ">", "version: 1\\npicker: fuzzy\\n")
	_, err = executeCommand(t, "", "config", "edit")
	require.NoError(t, err)

	out, err := executeCommand(t, "", "config", "get", "picker")
	require.NoError(t, err)
	assert.Equal(t, "fuzzy\n", out)
}

func TestGenDocCommand(t *testing.T) {
	tests := []struct {
		format string
		file   string
	}{
		{"man", "dtopr-install.1"},
		{"markdown", "dtopr_install.md"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			isolate(t)
			dir := filepath.Join(t.TempDir(), "docs")

			_, err := executeCommand(t, "", "gen-doc", "--dir", dir, "--format", tt.format)
			require.NoError(t, err)
			assert.FileExists(t, filepath.Join(dir, tt.file))
		})
	}
}

func TestGenDocCommand_RequiresDir(t *testing.T) {
	isolate(t)

	_, err := executeCommand(t, "", "gen-doc")
	assert.Error(t, err)
}
