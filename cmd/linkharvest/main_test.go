package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	main "github.com/fwojciec/linkharvest/cmd/linkharvest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const articleHTML = `<!DOCTYPE html>
<html><body>
<nav><a href="/home">Home</a></nav>
<main>
<p>Read the <a href="/docs?utm_source=feed&amp;page=2">docs</a> or see https://example.org/x?utm_source=a now.</p>
<p><a href="/in" data-linkharvest-box="10 10 50 20">In</a>
<a href="/out" data-linkharvest-box="300 300 350 320">Out</a></p>
</main>
<footer><a href="/legal">Legal</a></footer>
</body></html>`

// testMain returns a Main using a temporary database and no config file.
func testMain(t *testing.T) *main.Main {
	t.Helper()
	m := main.NewMain()
	m.DBPath = filepath.Join(t.TempDir(), "test.db")
	m.ConfigPath = ""
	m.Stdin = strings.NewReader("")
	return m
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func run(t *testing.T, m *main.Main, args ...string) (string, string, error) {
	t.Helper()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	err := m.Run(context.Background(), args, stdout, stderr)
	return stdout.String(), stderr.String(), err
}

func TestMain_Run_Help(t *testing.T) {
	t.Parallel()

	t.Run("shows all commands", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := run(t, testMain(t), "--help")

		require.NoError(t, err)
		for _, cmd := range []string{"scan", "select", "rect", "clean", "last", "clear", "config"} {
			assert.Contains(t, stdout, cmd, "Help should mention %s command", cmd)
		}
		assert.Contains(t, stdout, "Usage:")
		assert.Contains(t, stdout, "Flags:")
	})

	t.Run("returns an error without a command", func(t *testing.T) {
		t.Parallel()

		_, _, err := run(t, testMain(t))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "no command specified")
	})
}

func TestMain_Run_Scan(t *testing.T) {
	t.Parallel()

	t.Run("prints main content links without tracking parameters", func(t *testing.T) {
		t.Parallel()

		page := writeFile(t, "page.html", articleHTML)

		stdout, stderr, err := run(t, testMain(t), "scan", page, "--base", "https://example.com/a/")

		require.NoError(t, err, stderr)
		assert.Equal(t, "https://example.com/docs?page=2\nhttps://example.com/in\nhttps://example.com/out\n", stdout)
	})

	t.Run("saves the result for last", func(t *testing.T) {
		t.Parallel()

		m := testMain(t)
		page := writeFile(t, "page.html", articleHTML)

		_, _, err := run(t, m, "scan", page, "--base", "https://example.com/")
		require.NoError(t, err)

		stdout, stderr, err := run(t, m, "last")

		require.NoError(t, err)
		assert.Equal(t, "https://example.com/docs?page=2\nhttps://example.com/in\nhttps://example.com/out\n", stdout)
		assert.Contains(t, stderr, "page harvest of "+page)
	})

	t.Run("does not save with no-save", func(t *testing.T) {
		t.Parallel()

		m := testMain(t)
		page := writeFile(t, "page.html", articleHTML)

		_, _, err := run(t, m, "scan", page, "--base", "https://example.com/", "--no-save")
		require.NoError(t, err)

		stdout, _, err := run(t, m, "last")

		require.NoError(t, err)
		assert.Contains(t, stdout, "No saved harvest")
	})

	t.Run("prints JSON", func(t *testing.T) {
		t.Parallel()

		page := writeFile(t, "page.html", articleHTML)

		stdout, _, err := run(t, testMain(t), "scan", page, "--base", "https://example.com/", "--format", "json", "--no-save")

		require.NoError(t, err)
		var got struct {
			Mode string   `json:"mode"`
			Page string   `json:"page"`
			URLs []string `json:"urls"`
		}
		require.NoError(t, json.Unmarshal([]byte(stdout), &got))
		assert.Equal(t, "page", got.Mode)
		assert.Equal(t, page, got.Page)
		assert.Len(t, got.URLs, 3)
	})

	t.Run("reports a page without links as informational", func(t *testing.T) {
		t.Parallel()

		page := writeFile(t, "empty.html", `<html><body><main><p>No links here.</p></main></body></html>`)

		stdout, _, err := run(t, testMain(t), "scan", page, "--base", "https://example.com/")

		require.NoError(t, err)
		assert.Equal(t, "No links found.\n", stdout)
	})

	t.Run("fails for a missing file", func(t *testing.T) {
		t.Parallel()

		missing := filepath.Join(t.TempDir(), "missing.html")

		_, stderr, err := run(t, testMain(t), "scan", missing, "--no-save")

		require.Error(t, err)
		assert.Contains(t, stderr, "error: cannot read")
	})

	t.Run("merges links from several pages", func(t *testing.T) {
		t.Parallel()

		one := writeFile(t, "one.html", `<html><body><a href="/a">A</a><a href="/shared">S</a></body></html>`)
		two := writeFile(t, "two.html", `<html><body><a href="/shared">S</a><a href="/b">B</a></body></html>`)

		stdout, stderr, err := run(t, testMain(t), "scan", one, two, "--base", "https://example.com/", "--no-save")

		require.NoError(t, err)
		assert.Equal(t, "https://example.com/a\nhttps://example.com/shared\nhttps://example.com/b\n", stdout)
		assert.Contains(t, stderr, "[2/2]")
	})

	t.Run("writes URLs to an output file", func(t *testing.T) {
		t.Parallel()

		page := writeFile(t, "page.html", articleHTML)
		out := filepath.Join(t.TempDir(), "links.txt")

		stdout, _, err := run(t, testMain(t), "scan", page, "--base", "https://example.com/", "-o", out, "--no-save")

		require.NoError(t, err)
		assert.Equal(t, "Wrote 3 links to "+out+"\n", stdout)
		data, err := os.ReadFile(out)
		require.NoError(t, err)
		assert.Equal(t, "https://example.com/docs?page=2\nhttps://example.com/in\nhttps://example.com/out\n", string(data))
	})

	t.Run("uses selectors from the config file", func(t *testing.T) {
		t.Parallel()

		cfg := writeFile(t, "config.yaml", "main_selectors: [\"footer\"]\nexclude_selectors: []\n")
		page := writeFile(t, "page.html", articleHTML)

		stdout, _, err := run(t, testMain(t), "scan", page, "--base", "https://example.com/", "--config", cfg, "--no-save")

		require.NoError(t, err)
		assert.Equal(t, "https://example.com/legal\n", stdout)
	})

	t.Run("fails for an invalid config file", func(t *testing.T) {
		t.Parallel()

		cfg := writeFile(t, "config.yaml", "unknown_key: true\n")
		page := writeFile(t, "page.html", articleHTML)

		_, stderr, err := run(t, testMain(t), "scan", page, "--config", cfg, "--no-save")

		require.Error(t, err)
		assert.Contains(t, stderr, "error:")
	})

	t.Run("fails for an explicit config path that does not exist", func(t *testing.T) {
		t.Parallel()

		page := writeFile(t, "page.html", articleHTML)

		_, _, err := run(t, testMain(t), "scan", page, "--config", filepath.Join(t.TempDir(), "nope.yaml"), "--no-save")

		require.Error(t, err)
	})
}

func TestMain_Run_Select(t *testing.T) {
	t.Parallel()

	t.Run("harvests a quoted passage", func(t *testing.T) {
		t.Parallel()

		page := writeFile(t, "page.html", articleHTML)

		stdout, stderr, err := run(t, testMain(t), "select", page,
			"--quote", "the docs or see https://example.org/x?utm_source=a",
			"--base", "https://example.com/", "--no-save")

		require.NoError(t, err, stderr)
		assert.Equal(t, "https://example.org/x\nhttps://example.com/docs?page=2\n", stdout)
	})

	t.Run("harvests the elements between two selectors", func(t *testing.T) {
		t.Parallel()

		page := writeFile(t, "page.html", articleHTML)

		stdout, _, err := run(t, testMain(t), "select", page,
			"--from", "nav", "--to", "nav",
			"--base", "https://example.com/", "--no-save")

		require.NoError(t, err)
		assert.Equal(t, "https://example.com/home\n", stdout)
	})

	t.Run("uses the selection recorded in the snapshot", func(t *testing.T) {
		t.Parallel()

		page := writeFile(t, "page.html", `<html><body><p>
<!--linkharvest:selection-start--><a href="/picked">Picked</a><!--linkharvest:selection-end-->
<a href="/ignored">Ignored</a></p></body></html>`)

		stdout, _, err := run(t, testMain(t), "select", page, "--base", "https://example.com/", "--no-save")

		require.NoError(t, err)
		assert.Equal(t, "https://example.com/picked\n", stdout)
	})

	t.Run("fails without any selection", func(t *testing.T) {
		t.Parallel()

		page := writeFile(t, "page.html", articleHTML)

		_, stderr, err := run(t, testMain(t), "select", page, "--no-save")

		require.Error(t, err)
		assert.Contains(t, stderr, "error: no text selected\n")
	})

	t.Run("rejects a quote together with selectors", func(t *testing.T) {
		t.Parallel()

		page := writeFile(t, "page.html", articleHTML)

		_, stderr, err := run(t, testMain(t), "select", page, "--quote", "docs", "--from", "p", "--to", "p", "--no-save")

		require.Error(t, err)
		assert.Contains(t, stderr, "either --quote or --from/--to")
	})

	t.Run("fails when the quote does not occur", func(t *testing.T) {
		t.Parallel()

		page := writeFile(t, "page.html", articleHTML)

		_, stderr, err := run(t, testMain(t), "select", page, "--quote", "not on the page", "--no-save")

		require.Error(t, err)
		assert.Contains(t, stderr, "not found on page")
	})
}

func TestMain_Run_Rect(t *testing.T) {
	t.Parallel()

	t.Run("harvests links inside the dragged rectangle", func(t *testing.T) {
		t.Parallel()

		page := writeFile(t, "page.html", articleHTML)

		stdout, stderr, err := run(t, testMain(t), "rect", page,
			"--from", "100,100", "--to", "0,0",
			"--base", "https://example.com/", "--no-save")

		require.NoError(t, err, stderr)
		assert.Equal(t, "https://example.com/in\n", stdout)
	})

	t.Run("reports an empty rectangle as informational", func(t *testing.T) {
		t.Parallel()

		page := writeFile(t, "page.html", articleHTML)

		stdout, _, err := run(t, testMain(t), "rect", page,
			"--from", "500,500", "--to", "600,600",
			"--base", "https://example.com/", "--no-save")

		require.NoError(t, err)
		assert.Equal(t, "No links found.\n", stdout)
	})

	t.Run("rejects a malformed point", func(t *testing.T) {
		t.Parallel()

		page := writeFile(t, "page.html", articleHTML)

		_, stderr, err := run(t, testMain(t), "rect", page, "--from", "10", "--to", "20,20", "--no-save")

		require.Error(t, err)
		assert.Contains(t, stderr, "want X,Y")
	})
}

func TestMain_Run_Clean(t *testing.T) {
	t.Parallel()

	t.Run("cleans URLs given as arguments", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := run(t, testMain(t), "clean",
			"https://example.com/a?utm_source=x&id=1",
			"https://example.com/b?FBCLID=abc")

		require.NoError(t, err)
		assert.Equal(t, "https://example.com/a?id=1\nhttps://example.com/b\n", stdout)
	})

	t.Run("cleans the first URL of each stdin line", func(t *testing.T) {
		t.Parallel()

		m := testMain(t)
		m.Stdin = strings.NewReader("see https://example.com/a?gclid=1 for details\nnothing here\nhttps://example.com/b?x=1&utm_medium=m\n")

		stdout, _, err := run(t, m, "clean", "--text")

		require.NoError(t, err)
		assert.Equal(t, "https://example.com/a\nhttps://example.com/b?x=1\n", stdout)
	})

	t.Run("keeps malformed input unchanged", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := run(t, testMain(t), "clean", "not a url")

		require.NoError(t, err)
		assert.Equal(t, "not a url\n", stdout)
	})

	t.Run("reports empty input as informational", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := run(t, testMain(t), "clean")

		require.NoError(t, err)
		assert.Equal(t, "No links found.\n", stdout)
	})
}

func TestMain_Run_LastAndClear(t *testing.T) {
	t.Parallel()

	t.Run("clear removes the saved harvest", func(t *testing.T) {
		t.Parallel()

		m := testMain(t)
		page := writeFile(t, "page.html", articleHTML)
		_, _, err := run(t, m, "scan", page, "--base", "https://example.com/")
		require.NoError(t, err)

		stdout, _, err := run(t, m, "clear")
		require.NoError(t, err)
		assert.Equal(t, "Cleared saved harvest.\n", stdout)

		stdout, _, err = run(t, m, "last")
		require.NoError(t, err)
		assert.Contains(t, stdout, "No saved harvest")
	})

	t.Run("last prints JSON", func(t *testing.T) {
		t.Parallel()

		m := testMain(t)
		page := writeFile(t, "page.html", articleHTML)
		_, _, err := run(t, m, "rect", page, "--from", "0,0", "--to", "100,100", "--base", "https://example.com/")
		require.NoError(t, err)

		stdout, _, err := run(t, m, "last", "--format", "json")

		require.NoError(t, err)
		var got struct {
			Mode string   `json:"mode"`
			URLs []string `json:"urls"`
		}
		require.NoError(t, json.Unmarshal([]byte(stdout), &got))
		assert.Equal(t, "rectangle", got.Mode)
		assert.Equal(t, []string{"https://example.com/in"}, got.URLs)
	})
}

func TestMain_Run_Config(t *testing.T) {
	t.Parallel()

	t.Run("prints the default configuration", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := run(t, testMain(t), "config")

		require.NoError(t, err)
		assert.Contains(t, stdout, "tracking_params:")
		assert.Contains(t, stdout, "utm_source")
		assert.Contains(t, stdout, "main_selectors:")
	})

	t.Run("prints the loaded configuration", func(t *testing.T) {
		t.Parallel()

		cfg := writeFile(t, "config.yaml", "tracking_params: [\"sid\"]\n")

		stdout, _, err := run(t, testMain(t), "config", "--config", cfg)

		require.NoError(t, err)
		assert.Contains(t, stdout, "- sid")
		assert.NotContains(t, stdout, "utm_source")
	})
}
