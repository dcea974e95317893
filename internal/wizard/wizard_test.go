package wizard

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/dtopr/internal/cli/prompt"
	"github.com/thoreinstein/dtopr/internal/desktop"
	"github.com/thoreinstein/dtopr/internal/errors"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

// appFixture creates an executable, a working directory and an icon so path
// prompts accept them.
type appFixture struct {
	work string
	bin  string
	home string
	icon string
}

func newAppFixture(t *testing.T) appFixture {
	t.Helper()
	root := t.TempDir()
	fx := appFixture{
		work: filepath.Join(root, "work"),
		bin:  filepath.Join(root, "bin", "myapp"),
		home: filepath.Join(root, "home"),
		icon: filepath.Join(root, "home", "icon.png"),
	}
	for _, d := range []string{fx.work, filepath.Dir(fx.bin), fx.home} {
		require.NoError(t, os.MkdirAll(d, 0o755))
	}
	require.NoError(t, os.WriteFile(fx.bin, nil, 0o755))
	require.NoError(t, os.WriteFile(fx.icon, nil, 0o644))
	return fx
}

func lines(s ...string) string {
	return strings.Join(s, "\n") + "\n"
}

func TestRun_WritesEntry(t *testing.T) {
	fx := newAppFixture(t)

	input := lines(
		"myapp",
		"My App",
		"A test app",
		fx.bin,
		fx.home,
		fx.icon,
		"n",
		"4", "5", "0", // Game, Graphics
		"0", // accept review
		"n", // do not install
	)
	var out bytes.Buffer
	p := prompt.NewPrompterWithIO(strings.NewReader(input), &out)
	w := New(p, Options{Dir: fx.work, DestDir: t.TempDir()})

	require.NoError(t, w.Run())

	got, err := os.ReadFile(filepath.Join(fx.work, "myapp.desktop"))
	require.NoError(t, err)

	want := lines(
		"[Desktop Entry]",
		"Encoding=UTF-8",
		"Version=1.0",
		"Type=Application",
		"Terminal=false",
		"Name=My App",
		"Comment=A test app",
		"Exec="+fx.bin,
		"Path="+fx.home,
		"Icon="+fx.icon,
		"Categories=Game;Graphics;",
	)
	assert.Equal(t, want, string(got))
	assert.Contains(t, out.String(), reviewHeading)
	assert.NotContains(t, out.String(), "Moving the file")
}

func TestRun_InstallsWhenConfirmed(t *testing.T) {
	fx := newAppFixture(t)
	dest := filepath.Join(t.TempDir(), "applications")

	input := lines("myapp", "My App", "", fx.bin, fx.home, fx.icon, "y", "0", "0", "yes")
	var out bytes.Buffer
	p := prompt.NewPrompterWithIO(strings.NewReader(input), &out)

	require.NoError(t, New(p, Options{Dir: fx.work, DestDir: dest}).Run())

	assert.NoFileExists(t, filepath.Join(fx.work, "myapp.desktop"))
	data, err := os.ReadFile(filepath.Join(dest, "myapp.desktop"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Terminal=true\n")
	assert.Contains(t, string(data), "Categories=\n")
	assert.Contains(t, out.String(), "Moving the file...")
}

func TestRun_InstallFailureIsNotFatal(t *testing.T) {
	fx := newAppFixture(t)
	// A regular file where the destination directory should be.
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	input := lines("myapp", "My App", "", fx.bin, fx.home, fx.icon, "n", "0", "0", "y")
	var out bytes.Buffer
	p := prompt.NewPrompterWithIO(strings.NewReader(input), &out)

	require.NoError(t, New(p, Options{Dir: fx.work, DestDir: filepath.Join(blocker, "apps")}).Run())

	assert.FileExists(t, filepath.Join(fx.work, "myapp.desktop"))
	assert.Contains(t, out.String(), "mv: ")
}

func TestCreateOutputFile_OverwriteRefused(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "myapp.desktop")
	require.NoError(t, os.WriteFile(existing, []byte("original"), 0o644))

	var out bytes.Buffer
	p := prompt.NewPrompterWithIO(strings.NewReader(lines("myapp", "n", "other")), &out)
	w := New(p, Options{Dir: dir})

	f, name, err := w.CreateOutputFile()
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, "other.desktop", name)
	assert.Contains(t, out.String(), "A file named myapp.desktop already exists. Overwrite (y/n)? ")
	assert.Equal(t, 2, strings.Count(out.String(), PromptFileName))

	data, err := os.ReadFile(existing)
	require.NoError(t, err)
	assert.Equal(t, "original", string(data))
}

func TestCreateOutputFile_OverwriteAccepted(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "myapp.desktop")
	require.NoError(t, os.WriteFile(existing, []byte("original"), 0o644))

	p := prompt.NewPrompterWithIO(strings.NewReader(lines("myapp", "YES")), &bytes.Buffer{})
	f, name, err := New(p, Options{Dir: dir}).CreateOutputFile()
	require.NoError(t, err)
	f.Close()

	assert.Equal(t, "myapp.desktop", name)
	data, err := os.ReadFile(existing)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestCreateOutputFile_CreateFailure(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "missing")

	var out bytes.Buffer
	p := prompt.NewPrompterWithIO(strings.NewReader(lines("myapp")), &out)
	_, _, err := New(p, Options{Dir: dir}).CreateOutputFile()
	require.Error(t, err)

	assert.Equal(t, errors.ExitSystem, errors.ExitCode(err))
	assert.True(t, errors.IsReported(err), "the message is already printed; main must not print a second line")
	assert.Contains(t, err.Error(), "creating myapp.desktop")
	assert.Contains(t, out.String(), "Error creating file myapp.desktop.  Exiting.\n")
}

func TestRun_CreateFailureCollectsNothing(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "missing")
	var out bytes.Buffer
	p := prompt.NewPrompterWithIO(strings.NewReader(lines("myapp", "My App")), &out)

	err := New(p, Options{Dir: dir}).Run()
	require.Error(t, err)
	assert.NotContains(t, out.String(), PromptName)
}

func TestReview_ZeroKeepsValues(t *testing.T) {
	p := prompt.NewPrompterWithIO(strings.NewReader(lines("0")), &bytes.Buffer{})
	w := New(p, Options{})
	require.NoError(t, w.Registry().Set(desktop.KeyName, "My App"))
	require.NoError(t, w.Registry().Set(desktop.KeyTerminal, "false"))

	require.NoError(t, w.Review())

	assert.Equal(t, "My App", w.Registry().Value(desktop.KeyName))
	assert.Equal(t, "false", w.Registry().Value(desktop.KeyTerminal))
}

func TestReview_RecollectsChosenField(t *testing.T) {
	// 9 and junk are ignored, 2 re-asks Comment, 0 accepts.
	p := prompt.NewPrompterWithIO(strings.NewReader(lines("9", "junk", "2", "Better comment", "0")), &bytes.Buffer{})
	w := New(p, Options{})
	require.NoError(t, w.Registry().Set(desktop.KeyName, "My App"))
	require.NoError(t, w.Registry().Set(desktop.KeyComment, "old"))

	require.NoError(t, w.Review())

	assert.Equal(t, "Better comment", w.Registry().Value(desktop.KeyComment))
	assert.Equal(t, "My App", w.Registry().Value(desktop.KeyName))
}

func TestReview_ListsValues(t *testing.T) {
	var out bytes.Buffer
	p := prompt.NewPrompterWithIO(strings.NewReader(lines("0")), &out)
	w := New(p, Options{})
	require.NoError(t, w.Registry().Set(desktop.KeyName, "My App"))

	require.NoError(t, w.Review())

	assert.Contains(t, out.String(), "\t(1) Name=My App\n")
	assert.Contains(t, out.String(), "\t(7) Categories=\n")
	assert.Contains(t, out.String(), reviewHelp)
}

func TestReview_InputClosed(t *testing.T) {
	p := prompt.NewPrompterWithIO(strings.NewReader(""), &bytes.Buffer{})
	err := New(p, Options{}).Review()
	assert.True(t, errors.Is(err, prompt.ErrInputClosed))
}

func TestSetupFields(t *testing.T) {
	p := prompt.NewPrompterWithIO(strings.NewReader(""), &bytes.Buffer{})
	reg := SetupFields(p, nil)

	var names []string
	for _, f := range reg.Fields() {
		names = append(names, f.Name)
		assert.Empty(t, f.Value)
	}
	assert.Equal(t, []string{"Name", "Comment", "Exec", "Path", "Icon", "Terminal", "Categories"}, names)

	f, ok := reg.Get(desktop.KeyCategories)
	require.True(t, ok)
	mc, ok := f.Collector.(prompt.MultiCollector)
	require.True(t, ok)
	assert.NotContains(t, mc.Labels, prompt.EndSelectionLabel)
}

type fixedSelector string

func (s fixedSelector) MultiSelect(string, []string) (string, error) {
	return string(s), nil
}

func TestSetupFields_CustomSelector(t *testing.T) {
	p := prompt.NewPrompterWithIO(strings.NewReader(""), &bytes.Buffer{})
	reg := SetupFields(p, fixedSelector("Utility;"))

	require.NoError(t, reg.CollectOne(desktop.KeyCategories))
	assert.Equal(t, "Utility;", reg.Value(desktop.KeyCategories))
}
