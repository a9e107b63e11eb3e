package tabular

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/unifiedacademics/uap-backend/internal/pkg/apperrors"
)

func TestParseCSV(t *testing.T) {
	input := "Name,Email,Phone\nAsha Rao,asha@example.com,9876543210\nVikram Shah,vikram@example.com,\n"

	table, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, 2, table.RowCount())
	assert.Equal(t, "Asha Rao", table.Row(0).Get("name"))
	assert.Equal(t, "vikram@example.com", table.Row(1).Get("Email"))
	assert.Equal(t, "", table.Row(1).Get("phone"))
	assert.Equal(t, 1, table.Row(0).Number)
	assert.Equal(t, 2, table.Row(1).Number)
}

func TestParseCSVStripsBOM(t *testing.T) {
	input := "\xEF\xBB\xBFname,email\nAsha Rao,asha@example.com\n"

	table, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)

	assert.True(t, table.HasColumn("name"))
	assert.Equal(t, "Asha Rao", table.Row(0).Get("name"))
}

func TestParseCSVToleratesRaggedRows(t *testing.T) {
	input := "name,email,phone\nAsha Rao,asha@example.com\n"

	table, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, "asha@example.com", table.Row(0).Get("email"))
	assert.Equal(t, "", table.Row(0).Get("phone"))
}

func TestHeaderNormalization(t *testing.T) {
	input := " Guardian  Name ,EMAIL\nRam Rao,asha@example.com\n"

	table, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)

	assert.True(t, table.HasColumn("guardian name"))
	assert.Equal(t, "Ram Rao", table.Row(0).Get("guardian name"))
	assert.Equal(t, "asha@example.com", table.Row(0).Get("email"))
}

func TestMissingColumns(t *testing.T) {
	input := "name,phone\nAsha Rao,9876543210\n"

	table, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)

	missing := table.MissingColumns("name", "email", "role")
	assert.Equal(t, []string{"email", "role"}, missing)

	assert.Empty(t, table.MissingColumns("name", "phone"))
}

func TestParseCSVEmptyFile(t *testing.T) {
	_, err := ParseCSV(strings.NewReader(""))
	assert.ErrorIs(t, err, apperrors.ErrMalformedFile)
}

func TestParseUnsupportedExtension(t *testing.T) {
	_, err := Parse(strings.NewReader("name\n"), "students.pdf")
	assert.ErrorIs(t, err, apperrors.ErrUnsupportedFileType)
}

func TestParseXLSX(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]interface{}{"name", "email"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]interface{}{"Asha Rao", "asha@example.com"}))

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	table, err := Parse(bytes.NewReader(buf.Bytes()), "students.xlsx")
	require.NoError(t, err)

	assert.Equal(t, 1, table.RowCount())
	assert.Equal(t, "Asha Rao", table.Row(0).Get("name"))
	assert.Equal(t, "asha@example.com", table.Row(0).Get("email"))
}

func TestParseXLSXGarbage(t *testing.T) {
	_, err := Parse(strings.NewReader("this is not a workbook"), "students.xlsx")
	assert.True(t, errors.Is(err, apperrors.ErrMalformedFile))
}
