package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSource(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestScanSourceFiles(t *testing.T) {
	root := t.TempDir()
	writeSource(t, root, "index.js", "")
	writeSource(t, root, "commands/ping.ts", "")
	writeSource(t, root, "util/helper.mjs", "")
	writeSource(t, root, "notes.txt", "")
	writeSource(t, root, "node_modules/dep/index.js", "")
	writeSource(t, root, "locales/en.json", "{}")
	writeSource(t, root, "dist/bundle.js", "")

	files, err := scanSourceFiles(root, sourceExts)
	require.NoError(t, err)

	var rels []string
	for _, f := range files {
		rel, _ := filepath.Rel(root, f)
		rels = append(rels, filepath.ToSlash(rel))
	}
	assert.ElementsMatch(t, []string{"index.js", "commands/ping.ts", "util/helper.mjs"}, rels)
}

func TestFindKeyReferences(t *testing.T) {
	root := t.TempDir()
	writeSource(t, root, "commands/ping.js", `
module.exports = {
  name: t('commands.ping.name'),
  run(interaction) {
    return interaction.reply(translate("commands.ping.reply"));
  },
};
`)
	// Indirect reference: a dotted string that is a real key.
	writeSource(t, root, "commands/help.js", `
const rows = [{ label: 'commands.help.title' }, { label: 'not.a.key' }];
`)

	keys := map[string]string{
		"commands.ping.name":  "ping",
		"commands.ping.reply": "Pong!",
		"commands.help.title": "Help",
	}

	refs, err := findKeyReferences(root, keys)
	require.NoError(t, err)

	assert.Contains(t, refs, "commands.ping.name")
	assert.Contains(t, refs, "commands.ping.reply")
	assert.Contains(t, refs, "commands.help.title")
	assert.NotContains(t, refs, "not.a.key", "dotted strings that are not keys do not count")

	require.NotEmpty(t, refs["commands.ping.name"])
	assert.Equal(t, filepath.ToSlash("commands/ping.js"), filepath.ToSlash(refs["commands.ping.name"][0].File))
	assert.Equal(t, 3, refs["commands.ping.name"][0].Line)
}

func TestDynamicKeyPrefixes(t *testing.T) {
	root := t.TempDir()
	writeSource(t, root, "loader.js", "const label = t(`commands.${name}.description`);\n")
	writeSource(t, root, "other.js", "const again = t(`commands.${name}.description`);\nconst s = t(`errors.${code}`);\n")

	prefixes, err := dynamicKeyPrefixes(root)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"commands.", "errors."}, prefixes)
}

func TestMatchesDynamicPrefix(t *testing.T) {
	prefixes := []string{"commands.", "errors."}
	assert.True(t, matchesDynamicPrefix("commands.ping.name", prefixes))
	assert.True(t, matchesDynamicPrefix("errors.notFound", prefixes))
	assert.False(t, matchesDynamicPrefix("settings.theme", prefixes))
	assert.False(t, matchesDynamicPrefix("commands", prefixes))
}
