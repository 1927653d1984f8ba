package preview

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatch_ReloadsOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "quartz.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pageTitle: Before\nlocale: en-US\n"), 0644))

	source, err := NewSiteSource(afero.NewOsFs(), path)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, Watch(ctx, source))

	require.NoError(t, os.WriteFile(path, []byte("pageTitle: After\nlocale: en-US\n"), 0644))

	assert.Eventually(t, func() bool {
		title, _ := source.Site().Title()
		return title == "After"
	}, 5*time.Second, 20*time.Millisecond)
}

func TestWatch_KeepsPreviousOnInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "quartz.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pageTitle: Good\nlocale: en-US\n"), 0644))

	source, err := NewSiteSource(afero.NewOsFs(), path)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, Watch(ctx, source))

	// Replace by rename so the watcher never observes a half-written file.
	tmp := filepath.Join(dir, "quartz.yaml.tmp")
	require.NoError(t, os.WriteFile(tmp, []byte("locale: not-a-real-locale\n"), 0644))
	require.NoError(t, os.Rename(tmp, path))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x"), 0644))

	time.Sleep(200 * time.Millisecond)
	title, ok := source.Site().Title()
	assert.True(t, ok)
	assert.Equal(t, "Good", title)
}

func TestWatch_MissingDirectory(t *testing.T) {
	memFs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(memFs, "/nowhere/quartz.yaml", []byte("locale: en-US\n"), 0644))

	source, err := NewSiteSource(memFs, "/nowhere/quartz.yaml")
	require.NoError(t, err)

	assert.Error(t, Watch(context.Background(), source))
}

func TestSiteSource_ReloadFailureKeepsPrevious(t *testing.T) {
	memFs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(memFs, "quartz.yaml", []byte("locale: ru-RU\n"), 0644))

	source, err := NewSiteSource(memFs, "quartz.yaml")
	require.NoError(t, err)

	require.NoError(t, memFs.Remove("quartz.yaml"))
	assert.Error(t, source.Reload())
	assert.Equal(t, "ru-RU", source.Site().Locale)
}
