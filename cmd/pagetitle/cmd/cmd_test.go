package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	renderOpts.slug, renderOpts.class, renderOpts.locale, renderOpts.out = "", "", "", ""
	renderOpts.withStyle = false
	sitePath = ""

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func writeSite(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "quartz.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRenderCommand_Stdout(t *testing.T) {
	site := writeSite(t, "pageTitle: My Site\nlocale: en-US\n")

	out, err := executeCommand(t, "render", "-c", site, "--slug", "blog/post1")
	require.NoError(t, err)
	assert.Equal(t, `<h2 class="page-title"><img src="static/logo_taigram.svg" width="128" alt=""><div><a href="..">My Site</a></div></h2>`+"\n", out)
}

func TestRenderCommand_StdoutHasOnlyFragment(t *testing.T) {
	site := writeSite(t, "pageTitle: My Site\nlocale: en-US\n")
	t.Setenv("LOG_LEVEL", "debug")

	r, w, err := os.Pipe()
	require.NoError(t, err)
	origStdout := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = origStdout }()

	stderr := new(bytes.Buffer)
	renderOpts.slug, renderOpts.class, renderOpts.locale, renderOpts.out = "", "", "", ""
	renderOpts.withStyle = false
	sitePath = ""
	rootCmd.SetOut(nil)
	rootCmd.SetErr(stderr)
	rootCmd.SetArgs([]string{"render", "-c", site, "--slug", "blog/post1"})
	defer rootCmd.SetErr(nil)

	execErr := rootCmd.Execute()
	require.NoError(t, w.Close())
	os.Stdout = origStdout

	stdout, err := io.ReadAll(r)
	require.NoError(t, err)
	require.NoError(t, execErr)

	assert.Equal(t, `<h2 class="page-title"><img src="static/logo_taigram.svg" width="128" alt=""><div><a href="..">My Site</a></div></h2>`+"\n", string(stdout))
	assert.Contains(t, stderr.String(), "Registered component stylesheet")
}

func TestRenderCommand_LocaleAndClass(t *testing.T) {
	site := writeSite(t, "locale: en-US\n")

	out, err := executeCommand(t, "render", "-c", site, "--slug", "index", "--class", "desktop-only", "--locale", "ru")
	require.NoError(t, err)
	assert.Contains(t, out, `class="desktop-only page-title"`)
	assert.Contains(t, out, `<a href=".">Без названия</a>`)
}

func TestRenderCommand_WithStyle(t *testing.T) {
	site := writeSite(t, "locale: en-US\n")

	out, err := executeCommand(t, "render", "-c", site, "--slug", "index", "--with-style")
	require.NoError(t, err)
	assert.Contains(t, out, "<style>.page-title {\n  font-size: 1.75rem;\n  margin: 0;\n}\n</style>")
}

func TestRenderCommand_OutDir(t *testing.T) {
	site := writeSite(t, "pageTitle: Taigram\n")
	outDir := t.TempDir()

	out, err := executeCommand(t, "render", "-c", site, "--slug", "docs/setup", "--out", outDir)
	require.NoError(t, err)
	assert.Contains(t, out, "page-title.html")
	assert.Contains(t, out, "index.css")

	html, err := os.ReadFile(filepath.Join(outDir, "page-title.html"))
	require.NoError(t, err)
	assert.Contains(t, string(html), `<a href="..">Taigram</a>`)

	css, err := os.ReadFile(filepath.Join(outDir, "index.css"))
	require.NoError(t, err)
	assert.Contains(t, string(css), ".page-title {")
}

func TestRenderCommand_Errors(t *testing.T) {
	t.Run("missing slug flag", func(t *testing.T) {
		site := writeSite(t, "locale: en-US\n")
		_, err := executeCommand(t, "render", "-c", site)
		assert.Error(t, err)
	})

	t.Run("invalid site config", func(t *testing.T) {
		site := writeSite(t, "locale: xx-XX\n")
		_, err := executeCommand(t, "render", "-c", site, "--slug", "index")
		assert.Error(t, err)
	})
}

func TestLocalesCommand(t *testing.T) {
	out, err := executeCommand(t, "locales")
	require.NoError(t, err)
	assert.Contains(t, out, "LOCALE")
	assert.Contains(t, out, "en-US")
	assert.Contains(t, out, "Untitled")
	assert.Contains(t, out, "Без названия")
}

func TestVersionCommand(t *testing.T) {
	out, err := executeCommand(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "pagetitle v"+version+"\n", out)
}

func TestLanguageName(t *testing.T) {
	assert.Contains(t, languageName("en-US"), "English")
	assert.Equal(t, "not a tag", languageName("not a tag"))
}
