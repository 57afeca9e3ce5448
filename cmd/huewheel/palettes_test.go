package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/huewheel/internal/color"
	"github.com/alexisbeaulieu97/huewheel/internal/harmony"
	"github.com/alexisbeaulieu97/huewheel/internal/store"
)

func listSaved(t *testing.T, dataDir string) []store.SavedPalette {
	t.Helper()
	res, err := executeCommand(t, "list", "--data-dir", dataDir, "--json")
	require.NoError(t, err)

	var palettes []store.SavedPalette
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &palettes))
	return palettes
}

func TestListCommand_Empty(t *testing.T) {
	dataDir := setupHome(t)

	res, err := executeCommand(t, "list", "--data-dir", dataDir)
	require.NoError(t, err)
	require.Contains(t, res.stdout, "No saved palettes yet.")

	require.Empty(t, listSaved(t, dataDir))
	_, statErr := os.Stat(filepath.Join(dataDir, store.FileName))
	require.True(t, os.IsNotExist(statErr), "listing must not create the palette file")
}

func TestSaveListRemoveFlow(t *testing.T) {
	dataDir := setupHome(t)

	res, err := executeCommand(t, "save", "--data-dir", dataDir, "--base", "#336699", "--harmony", "analogous")
	require.NoError(t, err)
	require.Contains(t, res.stdout, "✓ Saved palette ")
	require.Contains(t, res.stdout, "#339966 #339999 #336699 #333399 #663399")

	_, err = executeCommand(t, "save", "--data-dir", dataDir, "--hsl", "333,93,64", "--harmony", "shades")
	require.NoError(t, err)

	palettes := listSaved(t, dataDir)
	require.Len(t, palettes, 2)
	require.Equal(t, harmony.Shades, palettes[0].Harmony, "most recent first")
	require.Equal(t, harmony.Analogous, palettes[1].Harmony)
	require.Equal(t, color.HSL{H: 210, S: 50, L: 40}, palettes[1].BaseColor)
	require.Equal(t, []string{"#339966", "#339999", "#336699", "#333399", "#663399"}, palettes[1].Colors)

	table, err := executeCommand(t, "list", "--data-dir", dataDir)
	require.NoError(t, err)
	require.Contains(t, table.stdout, "ID")
	require.Contains(t, table.stdout, "HARMONY")
	require.Contains(t, table.stdout, palettes[0].ID)
	require.Contains(t, table.stdout, "Analogous")
	require.Contains(t, table.stdout, "210, 50, 40")
	require.Less(t, strings.Index(table.stdout, palettes[0].ID), strings.Index(table.stdout, palettes[1].ID))

	removed, err := executeCommand(t, "remove", "--data-dir", dataDir, "--force", palettes[0].ID)
	require.NoError(t, err)
	require.Contains(t, removed.stdout, "✓ Removed palette '"+palettes[0].ID+"'")

	remaining := listSaved(t, dataDir)
	require.Len(t, remaining, 1)
	require.Equal(t, palettes[1].ID, remaining[0].ID)
}

func TestRemoveCommand_UnknownIDIsNoop(t *testing.T) {
	dataDir := setupHome(t)

	res, err := executeCommand(t, "remove", "--data-dir", dataDir, "--force", "does-not-exist")
	require.NoError(t, err)
	require.Contains(t, res.stdout, "nothing removed")
}

func TestRemoveCommand_EmptyID(t *testing.T) {
	dataDir := setupHome(t)

	_, err := executeCommand(t, "remove", "--data-dir", dataDir, "  ")
	require.Error(t, err)
	require.Contains(t, err.Error(), "palette ID cannot be empty")
}

func TestRemoveCommand_RequiresForceWithoutTerminal(t *testing.T) {
	dataDir := setupHome(t)

	_, err := executeCommand(t, "save", "--data-dir", dataDir)
	require.NoError(t, err)
	id := listSaved(t, dataDir)[0].ID

	_, err = executeCommand(t, "remove", "--data-dir", dataDir, id)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Use --force")
	require.Len(t, listSaved(t, dataDir), 1)
}

func TestRemoveCommand_Confirmation(t *testing.T) {
	original := termIsTerminal
	t.Cleanup(func() { termIsTerminal = original })
	termIsTerminal = func(int) bool { return true }

	for _, tc := range []struct {
		answer  string
		removed bool
	}{
		{answer: "y\n", removed: true},
		{answer: "no\n", removed: false},
	} {
		t.Run(strings.TrimSpace(tc.answer), func(t *testing.T) {
			dataDir := setupHome(t)

			_, err := executeCommand(t, "save", "--data-dir", dataDir)
			require.NoError(t, err)
			id := listSaved(t, dataDir)[0].ID

			reader, writer, err := os.Pipe()
			require.NoError(t, err)
			t.Cleanup(func() { _ = reader.Close() })
			_, err = writer.WriteString(tc.answer)
			require.NoError(t, err)
			require.NoError(t, writer.Close())

			root := newRootCmd()
			out := &strings.Builder{}
			root.SetOut(out)
			root.SetErr(out)
			root.SetIn(reader)
			root.SetArgs([]string{"remove", "--data-dir", dataDir, id})
			require.NoError(t, root.Execute())

			require.Contains(t, out.String(), "Remove Analogous palette '"+id+"'? [y/N]: ")
			if tc.removed {
				require.Empty(t, listSaved(t, dataDir))
			} else {
				require.Contains(t, out.String(), "Cancelled.")
				require.Len(t, listSaved(t, dataDir), 1)
			}
		})
	}
}

func TestRandomCommand_SeedIsReproducible(t *testing.T) {
	dataDir := setupHome(t)

	first, err := executeCommand(t, "random", "--data-dir", dataDir, "--seed", "42", "--json")
	require.NoError(t, err)
	second, err := executeCommand(t, "random", "--data-dir", dataDir, "--seed", "42", "--json")
	require.NoError(t, err)
	require.Equal(t, first.stdout, second.stdout)

	var payload paletteJSON
	require.NoError(t, json.Unmarshal([]byte(first.stdout), &payload))
	require.True(t, payload.Harmony.Valid())
	require.Len(t, payload.Colors, harmony.Size)
	require.GreaterOrEqual(t, payload.Base.S, 40)
	require.Less(t, payload.Base.S, 100)
	require.GreaterOrEqual(t, payload.Base.L, 40)
	require.Less(t, payload.Base.L, 80)
}

func TestRandomCommand_Save(t *testing.T) {
	dataDir := setupHome(t)

	res, err := executeCommand(t, "random", "--data-dir", dataDir, "--seed", "7", "--save")
	require.NoError(t, err)
	require.Contains(t, res.stdout, "✓ Saved palette ")

	palettes := listSaved(t, dataDir)
	require.Len(t, palettes, 1)
	require.Equal(t, harmony.Generate(palettes[0].BaseColor, palettes[0].Harmony).Slice(), palettes[0].Colors)
}

func TestSaveCommand_ReportsPersistFailure(t *testing.T) {
	home := setupHome(t)
	blocker := filepath.Join(filepath.Dir(home), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	_, err := executeCommand(t, "save", "--data-dir", filepath.Join(blocker, "data"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "Failed to save palette")
}

func TestDataDirFlagExpandsHome(t *testing.T) {
	dataDir := setupHome(t)
	home := filepath.Dir(dataDir)

	_, err := executeCommand(t, "save", "--data-dir", "~/palettes-here")
	require.NoError(t, err)

	_, statErr := os.Stat(filepath.Join(home, "palettes-here", store.FileName))
	require.NoError(t, statErr)
	_, statErr = os.Stat("~")
	require.True(t, os.IsNotExist(statErr), "no literal ~ directory is created")
}
