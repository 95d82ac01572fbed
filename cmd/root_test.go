package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir is a stand-in for t.Chdir, which requires Go 1.24+.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Errorf("failed to restore working directory: %v", err)
		}
	})
}

func resetFlags() {
	cfgFile = ""
	verbose = false
	repoSpec = ""
	hyperlink = ""
}

func writeTestConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "mushi.yml")
	content := `
github:
  owner: octocat
  repo: Hello-World
hyperlinks: never
templates:
  crash:
    title: "Application Crash: {error_type}"
    body: "Error: {error_type}"
    labels: ["bug"]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func executeCommand(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	cmd := NewRootCmd()
	var outBuf, errBuf bytes.Buffer
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)

	err = cmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

func TestRootCmd(t *testing.T) {
	t.Run("正常系: サブコマンドが登録されている", func(t *testing.T) {
		cmd := NewRootCmd()

		names := []string{}
		for _, sub := range cmd.Commands() {
			names = append(names, sub.Name())
		}
		assert.Contains(t, names, "init")
		assert.Contains(t, names, "generate")
		assert.Contains(t, names, "report")
		assert.Contains(t, names, "templates")
	})
}

func TestGenerateCmd(t *testing.T) {
	t.Run("正常系: 設定ファイルのテンプレートからURLを生成する", func(t *testing.T) {
		resetFlags()
		path := writeTestConfig(t)

		stdout, _, err := executeCommand(t,
			"--config", path,
			"generate", "crash",
			"--param", "error_type=NullPointerException",
		)

		require.NoError(t, err)
		assert.Equal(t,
			"https://github.com/octocat/Hello-World/issues/new?title=Application+Crash%3A+NullPointerException&body=Error%3A+NullPointerException&labels=bug\n",
			stdout)
	})

	t.Run("正常系: --repoフラグが設定ファイルより優先される", func(t *testing.T) {
		resetFlags()
		path := writeTestConfig(t)

		stdout, _, err := executeCommand(t,
			"--config", path,
			"--repo", "other/project",
			"generate", "crash",
			"--param", "error_type=e",
		)

		require.NoError(t, err)
		assert.Contains(t, stdout, "https://github.com/other/project/issues/new")
	})

	t.Run("エラー系: 未登録のテンプレート名", func(t *testing.T) {
		resetFlags()
		path := writeTestConfig(t)

		_, _, err := executeCommand(t, "--config", path, "generate", "nonexistent")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Template 'nonexistent' not found")
	})

	t.Run("エラー系: 不正な--param形式", func(t *testing.T) {
		resetFlags()
		path := writeTestConfig(t)

		_, _, err := executeCommand(t, "--config", path, "generate", "crash", "--param", "broken")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid parameter format")
	})

	t.Run("エラー系: リポジトリ未設定", func(t *testing.T) {
		resetFlags()

		_, _, err := executeCommand(t,
			"--config", filepath.Join(t.TempDir(), "missing.yml"),
			"generate", "crash",
		)

		require.Error(t, err)
	})
}

func TestReportCmd(t *testing.T) {
	t.Run("正常系: 診断をstderrに、URLをstdoutに出力する", func(t *testing.T) {
		resetFlags()
		path := writeTestConfig(t)

		stdout, stderr, err := executeCommand(t,
			"--config", path,
			"report", "crash",
			"--param", "error_type=NPE",
			"--location", "main.go:42",
		)

		require.NoError(t, err)
		assert.Contains(t, stderr, "🐛 BUG ENCOUNTERED in main.go:42")
		assert.Contains(t, stderr, "Template: crash")
		assert.Contains(t, stderr, "error_type: NPE")
		assert.Contains(t, stdout, "https://github.com/octocat/Hello-World/issues/new?title=")
	})

	t.Run("エラー系: 失敗時は診断にエラー行が出てコマンドも失敗する", func(t *testing.T) {
		resetFlags()
		path := writeTestConfig(t)

		stdout, stderr, err := executeCommand(t, "--config", path, "report", "missing")

		require.Error(t, err)
		assert.Contains(t, stderr, "Error generating bug report: Template 'missing' not found")
		assert.Empty(t, stdout)
	})
}

func TestTemplatesCmd(t *testing.T) {
	t.Run("正常系: テンプレートとプレースホルダーを一覧表示する", func(t *testing.T) {
		resetFlags()
		path := writeTestConfig(t)

		stdout, _, err := executeCommand(t, "--config", path, "templates")

		require.NoError(t, err)
		assert.Contains(t, stdout, "crash (inline)")
		assert.Contains(t, stdout, "placeholders: error_type")
		assert.Contains(t, stdout, "labels: bug")
	})
}

func TestInitCmd(t *testing.T) {
	t.Run("正常系: 設定ファイルとテンプレートの雛形を作成する", func(t *testing.T) {
		resetFlags()
		chdir(t, t.TempDir())

		stdout, _, err := executeCommand(t, "init")

		require.NoError(t, err)
		assert.Contains(t, stdout, "mushi.yml")

		if _, err := os.Stat("mushi.yml"); err != nil {
			t.Errorf("mushi.yml was not created: %v", err)
		}
		if _, err := os.Stat(filepath.Join("templates", "crash_report.md")); err != nil {
			t.Errorf("templates/crash_report.md was not created: %v", err)
		}
	})

	t.Run("正常系: 既存ファイルは--forceなしではスキップされる", func(t *testing.T) {
		resetFlags()
		chdir(t, t.TempDir())

		require.NoError(t, os.WriteFile("mushi.yml", []byte("original"), 0644))

		stdout, _, err := executeCommand(t, "init")

		require.NoError(t, err)
		assert.Contains(t, stdout, "スキップ")

		content, err := os.ReadFile("mushi.yml")
		require.NoError(t, err)
		assert.Equal(t, "original", string(content))
	})
}
