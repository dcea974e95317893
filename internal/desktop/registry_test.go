package desktop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/dtopr/internal/desktop/mocks"
	"github.com/thoreinstein/dtopr/internal/errors"
)

// staticCollector always answers with the same value.
type staticCollector string

func (s staticCollector) Collect(string) (string, error) { return string(s), nil }

func TestRegistry_AddKeepsOrder(t *testing.T) {
	r := NewRegistry()
	for _, name := range []string{"Name", "Comment", "Exec"} {
		require.NoError(t, r.Add(name, name+"?", staticCollector("")))
	}

	require.Equal(t, 3, r.Len())
	assert.Equal(t, "Name", r.At(0).Name)
	assert.Equal(t, "Comment", r.At(1).Name)
	assert.Equal(t, "Exec", r.At(2).Name)

	f, ok := r.Get("Comment")
	require.True(t, ok)
	assert.Same(t, r.At(1), f)
	assert.Equal(t, "", f.Value)
}

func TestRegistry_AddRejectsInvalidFields(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Add("Name", "", staticCollector("")))

	err := r.Add("Name", "", staticCollector(""))
	assert.ErrorIs(t, err, ErrDuplicateField)

	err = r.Add("Icon", "", nil)
	assert.ErrorIs(t, err, ErrNilCollector)

	assert.Equal(t, 1, r.Len())
}

func TestRegistry_ZeroValueUsable(t *testing.T) {
	var r Registry
	require.NoError(t, r.Add("Name", "", staticCollector("x")))
	require.NoError(t, r.CollectAll())
	assert.Equal(t, "x", r.Value("Name"))
}

func TestRegistry_CollectAllInOrder(t *testing.T) {
	var calls []string
	r := NewRegistry()
	for _, name := range []string{"Name", "Comment", "Terminal"} {
		m := mocks.NewMockCollector(t)
		m.EXPECT().Collect(name+" prompt").RunAndReturn(func(p string) (string, error) {
			calls = append(calls, p)
			return "value of " + name, nil
		}).Once()
		require.NoError(t, r.Add(name, name+" prompt", m))
	}

	require.NoError(t, r.CollectAll())

	assert.Equal(t, []string{"Name prompt", "Comment prompt", "Terminal prompt"}, calls)
	assert.Equal(t, "value of Comment", r.Value("Comment"))
	assert.Equal(t, "value of Terminal", r.Value("Terminal"))
}

func TestRegistry_CollectOne(t *testing.T) {
	name := mocks.NewMockCollector(t)
	name.EXPECT().Collect("Name?").Return("first", nil).Once()
	name.EXPECT().Collect("Name?").Return("second", nil).Once()

	exec := mocks.NewMockCollector(t)
	exec.EXPECT().Collect("Exec?").Return("/usr/bin/true", nil).Once()

	r := NewRegistry()
	require.NoError(t, r.Add("Name", "Name?", name))
	require.NoError(t, r.Add("Exec", "Exec?", exec))
	require.NoError(t, r.CollectAll())

	require.NoError(t, r.CollectOne("Name"))

	assert.Equal(t, "second", r.Value("Name"))
	assert.Equal(t, "/usr/bin/true", r.Value("Exec"), "other fields must be untouched")
}

func TestRegistry_CollectOneUnknownField(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Add("Name", "", staticCollector("")))

	err := r.CollectOne("Nmae")
	assert.ErrorIs(t, err, ErrInvalidField)
	assert.ErrorIs(t, r.Set("Nmae", "x"), ErrInvalidField)
}

func TestRegistry_CollectErrorStopsAndWraps(t *testing.T) {
	boom := errors.New("input closed")

	first := mocks.NewMockCollector(t)
	first.EXPECT().Collect("a").Return("", boom).Once()
	second := mocks.NewMockCollector(t) // must never be called

	r := NewRegistry()
	require.NoError(t, r.Add("Name", "a", first))
	require.NoError(t, r.Add("Comment", "b", second))

	err := r.CollectAll()
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "collecting Name")
}

func TestRegistry_FieldsIsACopy(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Add("Name", "", staticCollector("")))

	fields := r.Fields()
	fields[0] = nil

	assert.NotNil(t, r.At(0))
}
