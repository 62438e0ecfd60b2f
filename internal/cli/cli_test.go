package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/arthur-debert/npmstage/pkg/config"
	"github.com/arthur-debert/npmstage/pkg/ui"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type result struct {
	stdout string
	stderr string
	code   int
}

func execute(t *testing.T, env config.MapEnvironment, args ...string) result {
	t.Helper()
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	if env == nil {
		env = config.MapEnvironment{}
	}

	cmd := newRootCmd(env)
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	code := Execute(cmd, args, &stderr)
	return result{stdout: stdout.String(), stderr: stderr.String(), code: code}
}

func writeProject(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	files := map[string]string{
		"package.json":      `{"scripts":{"build":"echo build"}}`,
		"src/index.js":      "x",
		"node_modules/d.js": "dep",
	}
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return dir
}

func installFakeNPM(t *testing.T) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake npm is a shell script")
	}

	bin := t.TempDir()
	script := "#!/bin/sh\necho \"$NODE_ENV $*\" >> \"$NPMSTAGE_FAKE_LOG\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(bin, "npm"), []byte(script), 0755))
	logPath := filepath.Join(t.TempDir(), "npm.log")
	t.Setenv("PATH", bin+string(os.PathListSeparator)+os.Getenv("PATH"))
	t.Setenv("NPMSTAGE_FAKE_LOG", logPath)
	return logPath
}

func TestStageCmd(t *testing.T) {
	project := writeProject(t)
	target := filepath.Join(t.TempDir(), "out")

	res := execute(t, nil, "stage", "-o", "text",
		"--project-dir", project, "--target-dir", target, "--copy-all")

	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "stage: ok")
	assert.FileExists(t, filepath.Join(target, "package.json"))
	assert.FileExists(t, filepath.Join(target, "src", "index.js"))
	assert.NoDirExists(t, filepath.Join(target, "node_modules"))
}

func TestStageCmd_ExplicitItemsFromEnvironment(t *testing.T) {
	project := writeProject(t)
	target := filepath.Join(t.TempDir(), "out")
	env := config.MapEnvironment{
		config.EnvProjectDir: project,
		config.EnvTargetDir:  target,
		config.EnvCopyItems:  "package.json",
	}

	res := execute(t, env, "stage", "-o", "text")

	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "  - package.json")
	assert.FileExists(t, filepath.Join(target, "package.json"))
	assert.NoDirExists(t, filepath.Join(target, "src"))
}

func TestStageCmd_NoCopyPolicy(t *testing.T) {
	project := writeProject(t)

	res := execute(t, nil, "stage", "-o", "text",
		"--project-dir", project, "--target-dir", filepath.Join(project, "out"))

	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "error: [NO_COPY_POLICY]")
	assert.NotContains(t, res.stderr, "Error:")
}

func TestStageCmd_SameDirectoryAfterCleaning(t *testing.T) {
	project := writeProject(t)

	res := execute(t, nil, "stage", "-o", "json", "--copy-all",
		"--project-dir", project, "--target-dir", project+string(filepath.Separator)+".")

	require.Equal(t, 0, res.code, res.stderr)
	var got map[string]string
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &got))
	assert.Equal(t, map[string]string{"message": MsgSameDirectory}, got)
	assert.NotContains(t, res.stdout, "copied all entries")
}

func TestStageCmd_TargetInsideProject(t *testing.T) {
	project := writeProject(t)
	target := filepath.Join(project, "build", "web")
	require.NoError(t, os.MkdirAll(target, 0755))

	res := execute(t, nil, "stage", "-o", "text", "--copy-all",
		"--project-dir", project, "--target-dir", target)

	require.Equal(t, 0, res.code, res.stderr)
	assert.FileExists(t, filepath.Join(target, "src", "index.js"))
	assert.NoDirExists(t, filepath.Join(target, "build"))
}

func TestStageCmd_CopyFlagsExclusive(t *testing.T) {
	res := execute(t, nil, "stage", "--copy-all", "--copy", "src")

	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "Error:")
	assert.Contains(t, res.stderr, "copy-all")
}

func TestRunCmd(t *testing.T) {
	logPath := installFakeNPM(t)
	project := writeProject(t)
	target := filepath.Join(t.TempDir(), "out")

	res := execute(t, nil, "run", "-o", "json", "--release",
		"--project-dir", project, "--target-dir", target, "--copy", "package.json", "lint", "build")

	require.Equal(t, 0, res.code, res.stderr)
	var rep ui.Report
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &rep))
	assert.Equal(t, "run", rep.Command)
	assert.Equal(t, "production", rep.NodeEnv)
	assert.Equal(t, []string{"ci", "run lint", "run build"}, rep.Steps)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Equal(t, "production ci\nproduction run lint\nproduction run build\n", string(data))
	assert.FileExists(t, filepath.Join(target, "package.json"))
}

func TestRunCmd_ScriptsFromSettings(t *testing.T) {
	logPath := installFakeNPM(t)
	project := writeProject(t)
	env := config.MapEnvironment{
		config.EnvProjectDir: project,
		config.EnvScripts:    "lint, build",
		config.EnvNodeEnv:    "test",
	}

	res := execute(t, env, "run", "-o", "text")

	require.Equal(t, 0, res.code, res.stderr)
	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Equal(t, "test install\ntest run lint\ntest run build\n", string(data))
}

func TestRunCmd_EmptyNodeEnvIsPassedThrough(t *testing.T) {
	logPath := installFakeNPM(t)
	project := writeProject(t)
	env := config.MapEnvironment{config.EnvNodeEnv: ""}

	res := execute(t, env, "run", "-o", "text", "--release", "--project-dir", project, "build")

	require.Equal(t, 0, res.code, res.stderr)
	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Equal(t, " ci\n run build\n", string(data))
}

func TestRunCmd_Errors(t *testing.T) {
	project := writeProject(t)

	t.Run("no_scripts", func(t *testing.T) {
		res := execute(t, nil, "run", "-o", "json", "--project-dir", project)

		assert.Equal(t, 1, res.code)
		assert.Contains(t, res.stderr, `"code": "INVALID_INPUT"`)
	})

	t.Run("tool_not_found", func(t *testing.T) {
		res := execute(t, nil, "run", "-o", "json",
			"--project-dir", project, "--tool", "npmstage-no-such-tool", "build")

		assert.Equal(t, 1, res.code)
		assert.Contains(t, res.stderr, `"code": "TOOL_NOT_FOUND"`)
		assert.Contains(t, res.stderr, `"kind": "environment"`)
	})

	t.Run("bad_output_format", func(t *testing.T) {
		res := execute(t, nil, "run", "-o", "xml", "build")

		assert.Equal(t, 1, res.code)
		assert.Contains(t, res.stderr, "unknown format")
	})
}

func TestConfigCmd(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "npmstage.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
project_dir = "from-file"
tool = "pnpm"
scripts = ["build"]

[copy]
all = true
`), 0644))

	t.Run("file_values", func(t *testing.T) {
		res := execute(t, nil, "config", "--config", path)

		require.Equal(t, 0, res.code, res.stderr)
		assert.Contains(t, res.stdout, "project_dir = 'from-file'")
		assert.Contains(t, res.stdout, "tool = 'pnpm'")
		assert.Contains(t, res.stdout, "all = true")
	})

	t.Run("environment_wins_over_file", func(t *testing.T) {
		env := config.MapEnvironment{config.EnvProjectDir: "from-env"}

		res := execute(t, env, "config", "--config", path, "--format", "yaml")

		require.Equal(t, 0, res.code, res.stderr)
		assert.Contains(t, res.stdout, "project_dir: from-env")
	})

	t.Run("missing_file", func(t *testing.T) {
		res := execute(t, nil, "config", "--config", filepath.Join(dir, "nope.toml"))

		assert.Equal(t, 1, res.code)
		assert.Contains(t, res.stderr, "CONFIG_LOAD")
	})
}

func TestBuildFlagsApply(t *testing.T) {
	flags := &buildFlags{}
	cmd := &cobra.Command{Use: "test"}
	flags.register(cmd, true)
	require.NoError(t, cmd.ParseFlags([]string{"--release", "--copy", "a", "--copy", "b", "--target-dir", "out"}))
	s := &config.Settings{ProjectDir: "web", TargetDir: "file-target", Tool: "npm", Copy: config.CopySettings{All: true}}

	require.NoError(t, flags.apply(cmd, s))

	assert.Equal(t, "web", s.ProjectDir)
	assert.Equal(t, "out", s.TargetDir)
	assert.Equal(t, "release", s.Profile)
	assert.False(t, s.Copy.All)
	assert.Equal(t, []string{"a", "b"}, s.Copy.Items)

	env := settingsEnvironment(s)
	assert.Equal(t, config.MapEnvironment{
		config.EnvProjectDir: "web",
		config.EnvTargetDir:  "out",
		config.EnvProfile:    "release",
		config.EnvTool:       "npm",
	}, env)
}

func TestVersionCmd(t *testing.T) {
	res := execute(t, nil, "version")

	assert.Equal(t, 0, res.code)
	assert.True(t, strings.HasPrefix(res.stdout, "npmstage dev"))
}

func TestCompletionCmd(t *testing.T) {
	res := execute(t, nil, "completion", "bash")

	assert.Equal(t, 0, res.code)
	assert.Contains(t, res.stdout, "bash completion")
}

func TestHelpTopics(t *testing.T) {
	res := execute(t, nil, "help", "topics")

	assert.Equal(t, 0, res.code)
	assert.Contains(t, res.stdout, "go-generate")
	assert.Contains(t, res.stdout, "settings")
	assert.Contains(t, res.stdout, "staging")

	res = execute(t, nil, "help", "staging")
	assert.Equal(t, 0, res.code)
	assert.Contains(t, res.stdout, "node_modules")
}

func TestManPage(t *testing.T) {
	var buf bytes.Buffer
	header := &doc.GenManHeader{Title: "NPMSTAGE", Section: "1"}

	require.NoError(t, doc.GenMan(NewRootCmd(), header, &buf))
	assert.Contains(t, buf.String(), "npmstage")
}
