package differ_test

import (
	"bytes"
	"strings"
	"testing"

	"cloud.google.com/go/civil"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/cragsync/pkg/differ"
	"github.com/agentstation/cragsync/pkg/logbook"
	"github.com/agentstation/cragsync/pkg/logging"
)

func date(s string) civil.Date {
	d, err := civil.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// book builds a logbook from "date: crag, crag" lines.
func book(lines ...string) *logbook.Logbook {
	l := logbook.New()
	for _, line := range lines {
		d, crags, _ := strings.Cut(line, ": ")
		l.SetDay(date(d), logbook.NewCragSet(strings.Split(crags, ", ")...))
	}
	return l
}

func quiet() differ.Differ {
	return differ.New(differ.WithLogger(logging.NewNopLogger()))
}

func TestCragsDiffer(t *testing.T) {
	cs := quiet().Logbooks(book("2023-05-01: A, B"), book("2023-05-01: B, C"))

	assert.Equal(t, "2023-05-01: -A, +C\n", cs.String())
	assert.Equal(t, 1, cs.Summary.DaysDiffering)
	assert.Equal(t, 1, cs.Summary.CragsMissing)
	assert.Equal(t, 1, cs.Summary.CragsExtraneous)
}

func TestWholeDayMissing(t *testing.T) {
	cs := quiet().Logbooks(book("2023-04-29: Weissenstein, Arco", "2023-05-01: A"), book("2023-05-01: A"))

	assert.Equal(t, "-2023-04-29: Felsklettern (Arco, Weissenstein)\n", cs.String())
	require.Len(t, cs.Changes, 1)
	assert.Equal(t, differ.ChangeTypeDayMissing, cs.Changes[0].Type)
	assert.Empty(t, cs.Changes[0].Extraneous)
}

func TestWholeDayExtraneous(t *testing.T) {
	cs := quiet().Logbooks(book(), book("2023-04-30: Arco"))
	assert.Equal(t, "+2023-04-30: Felsklettern (Arco)\n", cs.String())
	assert.Equal(t, 1, cs.Summary.DaysExtraneous)
}

func TestIdenticalLogbooksProduceEmptyReport(t *testing.T) {
	l := book("2023-05-01: A, B", "2023-05-02: C")
	cs := quiet().Logbooks(l, l)

	assert.True(t, cs.IsEmpty())
	assert.False(t, cs.HasChanges())
	assert.Equal(t, "", cs.String())
	assert.Equal(t, "No discrepancies detected", cs.Describe())
}

func TestDatesAscendingMissingBeforeExtraneous(t *testing.T) {
	external := book("2023-06-01: Z, Y", "2023-01-15: A", "2023-03-03: M, N")
	manual := book("2023-03-03: O, N", "2022-12-24: X", "2023-06-01: W, Y")

	expected := strings.Join([]string{
		"+2022-12-24: Felsklettern (X)",
		"-2023-01-15: Felsklettern (A)",
		"2023-03-03: -M, +O",
		"2023-06-01: -Z, +W",
	}, "\n") + "\n"
	assert.Equal(t, expected, quiet().Logbooks(external, manual).String())
}

func TestMultipleCragsSortedWithinCategory(t *testing.T) {
	cs := quiet().Logbooks(book("2023-05-01: D, B, A"), book("2023-05-01: A, Z, C"))
	assert.Equal(t, "2023-05-01: -B, -D, +C, +Z\n", cs.String())
}

func TestSwappingInputsSwapsTags(t *testing.T) {
	a := book("2023-05-01: A, B", "2023-05-02: C", "2023-05-04: E")
	b := book("2023-05-01: B, D", "2023-05-03: F", "2023-05-04: E")

	forward := quiet().Logbooks(a, b)
	backward := quiet().Logbooks(b, a)

	require.Len(t, backward.Changes, len(forward.Changes))
	for i := range forward.Changes {
		f, r := forward.Changes[i], backward.Changes[i]
		assert.Equal(t, f.Date, r.Date)
		assert.Equal(t, f.Missing, r.Extraneous)
		assert.Equal(t, f.Extraneous, r.Missing)
	}
	assert.Equal(t, forward.Summary.DaysMissing, backward.Summary.DaysExtraneous)
	assert.Equal(t, forward.Summary.TotalChanges, backward.Summary.TotalChanges)
}

func TestNamesNormalizedBeforeComparison(t *testing.T) {
	external := book("2023-05-01: Frühstückstal, Weißenstein")
	manual := book("2023-05-01: Fruehstueckstal, Weissenstein")

	assert.True(t, differ.Diff(external, manual).IsEmpty())

	raw := differ.New(differ.WithNormalizer(nil), differ.WithLogger(logging.NewNopLogger())).Logbooks(external, manual)
	assert.Equal(t, 1, raw.Summary.DaysDiffering)
}

func TestEntries(t *testing.T) {
	cs := quiet().Logbooks(book("2023-05-01: A, B", "2023-05-02: C"), book("2023-05-01: B, D"))

	want := []differ.Entry{
		{Date: "2023-05-01", Type: "crags-differ", Missing: []string{"A"}, Extraneous: []string{"D"}},
		{Date: "2023-05-02", Type: "day-missing", Missing: []string{"C"}},
	}
	if diff := cmp.Diff(want, cs.Entries()); diff != "" {
		t.Errorf("Entries() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "1 days missing, 0 days extraneous, 1 days with differing crags", cs.Describe())
}

func TestRenderColor(t *testing.T) {
	cs := quiet().Logbooks(book("2023-05-01: A", "2023-05-02: B"), book("2023-05-01: C"))

	var buf bytes.Buffer
	require.NoError(t, cs.Render(&buf, differ.RenderOptions{Color: true}))
	out := buf.String()

	assert.Contains(t, out, "\x1b[31m-A\x1b[0m")
	assert.Contains(t, out, "\x1b[32m+C\x1b[0m")
	assert.Contains(t, out, "\x1b[31m-2023-05-02: Felsklettern (B)\x1b[0m")

	buf.Reset()
	require.NoError(t, cs.Render(&buf, differ.RenderOptions{Color: false}))
	assert.NotContains(t, buf.String(), "\x1b[")
}

func TestDiffLogsDiscrepancies(t *testing.T) {
	testLogger := logging.NewTestLogger(t)
	differ.New(differ.WithLogger(testLogger.Logger)).Logbooks(book("2023-05-01: A"), book())

	testLogger.AssertContains(t, "Found discrepancy")
	testLogger.AssertContains(t, `"type":"day-missing"`)
}
