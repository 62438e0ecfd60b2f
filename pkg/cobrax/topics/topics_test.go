package topics

import (
	"bytes"
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSource() fstest.MapFS {
	return fstest.MapFS{
		"staging.md":          {Data: []byte("# Staging\n\nHow items are copied")},
		"option-copy-all.txt": {Data: []byte("Copies every entry")},
		"notes/settings.md":   {Data: []byte("# Settings")},
		"ignore.json":         {Data: []byte("{}")},
	}
}

func TestTopicManager_Scan(t *testing.T) {
	t.Run("default extensions", func(t *testing.T) {
		tm := New(testSource())
		require.NoError(t, tm.Scan())

		assert.Equal(t, []string{"option-copy-all", "settings", "staging"}, tm.ListTopics())

		topic, ok := tm.GetTopic("staging")
		require.True(t, ok)
		assert.Equal(t, "# Staging\n\nHow items are copied", topic.Content)
		assert.Equal(t, "staging.md", topic.FilePath)

		_, ok = tm.GetTopic("ignore")
		assert.False(t, ok)
	})

	t.Run("custom extensions", func(t *testing.T) {
		tm := NewWithOptions(testSource(), Options{Extensions: []string{".json"}})
		require.NoError(t, tm.Scan())

		assert.Equal(t, []string{"ignore"}, tm.ListTopics())
	})
}

func TestTopicManager_GetTopicFlagStyle(t *testing.T) {
	tm := New(testSource())
	require.NoError(t, tm.Scan())

	for _, name := range []string{"copy-all", "--copy-all", "-copy-all", "option-copy-all"} {
		topic, ok := tm.GetTopic(name)
		require.True(t, ok, name)
		assert.Equal(t, "Copies every entry", topic.Content)
	}
}

type upperRenderer struct{}

func (upperRenderer) Render(content, ext string) string {
	return ext + ":" + content
}

func newTestRoot(t *testing.T, opts Options) (*cobra.Command, *bytes.Buffer) {
	t.Helper()

	root := &cobra.Command{Use: "tool", Short: "A tool"}
	root.AddCommand(&cobra.Command{Use: "run", Short: "Run things", Run: func(*cobra.Command, []string) {}})
	var out bytes.Buffer
	root.SetOut(&out)
	require.NoError(t, InitializeWithOptions(root, testSource(), opts))
	return root, &out
}

func TestInitialize_HelpCommand(t *testing.T) {
	t.Run("topic", func(t *testing.T) {
		root, out := newTestRoot(t, Options{Renderer: upperRenderer{}})
		root.SetArgs([]string{"help", "staging"})

		require.NoError(t, root.Execute())
		assert.Equal(t, ".md:# Staging\n\nHow items are copied", out.String())
	})

	t.Run("topics list", func(t *testing.T) {
		root, out := newTestRoot(t, Options{})
		root.SetArgs([]string{"help", "topics"})

		require.NoError(t, root.Execute())
		assert.Contains(t, out.String(), "General topics:\n  settings\n  staging\n")
		assert.Contains(t, out.String(), "Option topics:\n  --copy-all\n")
		assert.Contains(t, out.String(), "Use 'tool help <topic>'")
	})

	t.Run("command falls back to cobra help", func(t *testing.T) {
		root, out := newTestRoot(t, Options{})
		root.SetArgs([]string{"help", "run"})

		require.NoError(t, root.Execute())
		assert.Contains(t, out.String(), "Run things")
	})
}

func TestPlainRenderer(t *testing.T) {
	assert.Equal(t, "# x", (&PlainRenderer{}).Render("# x", ".md"))
}

func TestGlamourRenderer_NonMarkdownUnchanged(t *testing.T) {
	assert.Equal(t, "plain", NewGlamourRenderer().Render("plain", ".txt"))
}
