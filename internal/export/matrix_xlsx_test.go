package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/mazadclick/admin-access/internal/access"
	"github.com/mazadclick/admin-access/internal/model"
)

func TestMatrixExporter_Workbook(t *testing.T) {
	exp := NewMatrixExporter(access.DefaultMatrix)

	body, err := exp.Workbook()
	require.NoError(t, err)
	require.NotEmpty(t, body)

	f, err := excelize.OpenReader(bytes.NewReader(body))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(matrixSheet)
	require.NoError(t, err)
	require.Len(t, rows, len(model.AllPermissions)+1)
	assert.Equal(t, []string{"Permission", "ADMIN", "SOUS_ADMIN", "PROFESSIONAL", "RESELLER", "CLIENT"}, rows[0])

	var deleteRow []string
	for _, row := range rows[1:] {
		if row[0] == string(model.PermissionDeleteUsers) {
			deleteRow = row
		}
	}
	require.NotNil(t, deleteRow)
	assert.Equal(t, grantedMark, deleteRow[1])
	if len(deleteRow) > 2 {
		assert.Empty(t, deleteRow[2])
	}
}

func TestMatrixExporter_Memoized(t *testing.T) {
	exp := NewMatrixExporter(access.DefaultMatrix)

	first, err := exp.Workbook()
	require.NoError(t, err)
	second, err := exp.Workbook()
	require.NoError(t, err)

	assert.Same(t, &first[0], &second[0])
}
