package app

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/cragsync/pkg/constants"
)

const exportCSV = `Ascent Label,Crag Path,Ascent Date
Wallstreet,Frankenjura - Krottenseer Turm - Upper part,2023-05-01T10:12:00Z
Sautanz,Frankenjura - Weißenstein,2023-05-01T16:45:30Z
Lycra,Geyikbayırı - Sarkit - Left,2022-11-03T23:59:59Z
`

const journalText = `### BEGIN theCrag sync
2022-11-03: Felsklettern (Geyikbayiri)
2023-05-01: Felsklettern (Krottenseer Turm, Waldkopf)
`

func memFs(t *testing.T) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/ticks.csv", []byte(exportCSV), constants.FilePermissions))
	require.NoError(t, afero.WriteFile(fs, "/journal.md", []byte(journalText), constants.FilePermissions))
	return fs
}
