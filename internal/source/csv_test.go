package source_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rpggio/pairwork/internal/domain/assignment"
	"github.com/rpggio/pairwork/internal/source"
	"github.com/stretchr/testify/require"
)

func TestCSV_Rows(t *testing.T) {
	text := "EmpID, ProjectID, DateFrom, DateTo\n" +
		"143, 12, 2013-11-01, 2014-01-05\n" +
		"\n" +
		"218,10,2012-05-16,NULL\r\n" +
		"143, 10, 2009-01-01\n"

	rows, err := source.NewCSVText(text, source.DefaultSeparator).Rows(context.Background())
	require.NoError(t, err)
	require.Equal(t, []assignment.RawRow{
		{Line: 1, Fields: []string{"EmpID", "ProjectID", "DateFrom", "DateTo"}},
		{Line: 2, Fields: []string{"143", "12", "2013-11-01", "2014-01-05"}},
		{Line: 4, Fields: []string{"218", "10", "2012-05-16", "NULL"}},
		{Line: 5, Fields: []string{"143", "10", "2009-01-01"}},
	}, rows)
}

func TestCSV_StrayQuoteStaysOnItsLine(t *testing.T) {
	text := "1,100,\"2020-01-01,2020-06-01\n" +
		"2,100,2020-03-01,2020-09-01\n" +
		"3,100,2020-02-01,2020-04-01\n"

	rows, err := source.NewCSVText(text, source.DefaultSeparator).Rows(context.Background())
	require.NoError(t, err)
	require.Equal(t, []assignment.RawRow{
		{Line: 1, Fields: []string{"1", "100", `"2020-01-01`, "2020-06-01"}},
		{Line: 2, Fields: []string{"2", "100", "2020-03-01", "2020-09-01"}},
		{Line: 3, Fields: []string{"3", "100", "2020-02-01", "2020-04-01"}},
	}, rows)
}

func TestCSV_LeadingSpaceBeforeFirstFieldKept(t *testing.T) {
	rows, err := source.NewCSVText(" 1,\t100, 2020-01-01\n", source.DefaultSeparator).Rows(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{" 1", "100", "2020-01-01"}, rows[0].Fields)

	_, err = assignment.NewValidator(nil).Validate(rows[0])
	require.ErrorIs(t, err, assignment.ErrMalformedIdentifier)
}

func TestCSV_CustomSeparator(t *testing.T) {
	rows, err := source.NewCSVText("1;2;2020-01-01;\n", ';').Rows(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"1", "2", "2020-01-01", ""}, rows[0].Fields)
}

func TestCSV_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "assignments.csv")
	require.NoError(t, os.WriteFile(path, []byte("1,100,2020-01-01,2020-06-01\n2,100,2020-03-01,2020-09-01\n"), 0o644))

	rows, err := source.NewCSVFile(path, 0).Rows(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, 2, rows[1].Line)
}

func TestCSV_MissingFile(t *testing.T) {
	_, err := source.NewCSVFile(filepath.Join(t.TempDir(), "nope.csv"), 0).Rows(context.Background())
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestCSV_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := source.NewCSVText("1,2,2020-01-01,2020-01-02\n", 0).Rows(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestParseSeparator(t *testing.T) {
	cases := []struct {
		in      string
		want    rune
		wantErr bool
	}{
		{"", ',', false},
		{",", ',', false},
		{";", ';', false},
		{`\t`, '\t', false},
		{"|", '|', false},
		{`"`, 0, true},
		{"ab", 0, true},
		{"\n", 0, true},
	}
	for _, tc := range cases {
		got, err := source.ParseSeparator(tc.in)
		if tc.wantErr {
			require.ErrorIs(t, err, source.ErrInvalidSeparator, "input %q", tc.in)
			continue
		}
		require.NoError(t, err, "input %q", tc.in)
		require.Equal(t, tc.want, got)
	}
}
