package journal_test

import (
	"testing"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/cragsync/pkg/errors"
	"github.com/agentstation/cragsync/pkg/logbook"
	"github.com/agentstation/cragsync/pkg/logging"
	"github.com/agentstation/cragsync/pkg/sources"
	"github.com/agentstation/cragsync/pkg/sources/journal"
)

const text = `# Climbing 2023

2023-01-01: Felsklettern (Ignored, Before Sentinel)
### BEGIN theCrag sync

2023-05-01: Felsklettern (Krottenseer Turm, Weissenstein)
Rest day, rain all afternoon.
2023-05-02: Felsklettern (Waldkopf) with Anna

2023-05-03: Bouldern (Zillertal)
`

func TestParse(t *testing.T) {
	days, err := journal.NewParser(logging.NewNopLogger()).Parse([]byte(text))
	require.NoError(t, err)

	expected := []logbook.Day{
		{Date: civil.Date{Year: 2023, Month: 5, Day: 1}, Crags: logbook.NewCragSet("Krottenseer Turm", "Weissenstein")},
		{Date: civil.Date{Year: 2023, Month: 5, Day: 2}, Crags: logbook.NewCragSet("Waldkopf")},
	}
	assert.Equal(t, expected, days)
}

func TestParseWithoutSentinel(t *testing.T) {
	days, err := journal.NewParser(logging.NewNopLogger()).
		Parse([]byte("2023-05-01: Felsklettern (Arco)\n2023-13-45: Felsklettern (Arco)\n"))
	require.NoError(t, err)
	assert.Empty(t, days)
}

func TestParseSentinelMustMatchExactly(t *testing.T) {
	data := "### BEGIN theCrag sync (old)\n2023-05-01: Felsklettern (Arco)\n"
	days, err := journal.NewParser(logging.NewNopLogger()).Parse([]byte(data))
	require.NoError(t, err)
	assert.Empty(t, days)
}

func TestParseWindowsLineEndings(t *testing.T) {
	data := "### BEGIN theCrag sync\r\n2023-05-01: Felsklettern (Arco, Massone)\r\n"
	days, err := journal.NewParser(logging.NewNopLogger()).Parse([]byte(data))
	require.NoError(t, err)
	require.Len(t, days, 1)
	assert.Equal(t, []string{"Arco", "Massone"}, days[0].Crags.Sorted())
}

func TestParseDuplicateDatesKeptForAggregation(t *testing.T) {
	data := "### BEGIN theCrag sync\n2023-05-01: Felsklettern (A, B)\n2023-05-01: Felsklettern (C)\n"
	p := journal.NewParser(logging.NewNopLogger())

	days, err := p.Parse([]byte(data))
	require.NoError(t, err)
	assert.Len(t, days, 2)

	l, err := p.Load([]byte(data))
	require.NoError(t, err)
	assert.Equal(t, []string{"C"}, l.Crags(civil.Date{Year: 2023, Month: 5, Day: 1}))
}

func TestParseInvalidDate(t *testing.T) {
	data := "intro\n### BEGIN theCrag sync\n2023-05-01: Felsklettern (A)\n2023-02-30: Felsklettern (B)\n"
	_, err := journal.NewParser(logging.NewNopLogger()).Parse([]byte(data))
	require.Error(t, err)

	assert.True(t, errors.IsInvalidDate(err))
	var dateErr *errors.DateParseError
	require.True(t, errors.As(err, &dateErr))
	assert.Equal(t, 4, dateErr.Row)
	assert.Contains(t, err.Error(), `"2023-02-30"`)
}

func TestParseLine(t *testing.T) {
	tests := []struct {
		line  string
		ok    bool
		crags []string
	}{
		{"2023-05-01: Felsklettern (A)", true, []string{"A"}},
		{"2023-05-01: Felsklettern (B, A, B)", true, []string{"A", "B"}},
		{"2023-05-01: Felsklettern (A,B)", true, []string{"A,B"}},
		{"2023-05-01: Felsklettern ()", false, nil},
		{"2023-05-01: Felsklettern (A (left))", false, nil},
		{" 2023-05-01: Felsklettern (A)", false, nil},
		{"2023-05-01 Felsklettern (A)", false, nil},
		{"Some prose about Felsklettern (A)", false, nil},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			day, ok, err := journal.ParseLine(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.crags, day.Crags.Sorted())
			}
		})
	}
}

func TestID(t *testing.T) {
	assert.Equal(t, sources.JournalID, journal.NewParser(nil).ID())
}
