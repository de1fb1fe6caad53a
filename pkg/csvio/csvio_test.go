package csvio

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stellyes/catalog-csv-filtering/pkg/models"
)

func TestRead(t *testing.T) {
	t.Run("reads header and rows", func(t *testing.T) {
		source := "Product ID,Name,Brand\np-1,Blue Dream,Acme\np-2,Green Crack,Other\n"

		batch, err := Read(strings.NewReader(source))
		require.NoError(t, err)
		assert.Equal(t, []string{"Product ID", "Name", "Brand"}, batch.Columns)
		require.Len(t, batch.Rows, 2)
		assert.Equal(t, "Blue Dream", batch.Rows[0]["Name"])
		assert.Equal(t, "Other", batch.Rows[1]["Brand"])
	})

	t.Run("empty source", func(t *testing.T) {
		_, err := Read(strings.NewReader(""))
		assert.ErrorIs(t, err, ErrEmptySource)
	})

	t.Run("header only yields zero rows", func(t *testing.T) {
		batch, err := Read(strings.NewReader("Product ID,Name\n"))
		require.NoError(t, err)
		assert.Empty(t, batch.Rows)
	})

	t.Run("short row reads missing cells as empty", func(t *testing.T) {
		batch, err := Read(strings.NewReader("Product ID,Name,Brand\np-1,Blue Dream\n"))
		require.NoError(t, err)
		require.Len(t, batch.Rows, 1)
		assert.Equal(t, "", batch.Rows[0]["Brand"])
	})

	t.Run("surplus cells are dropped", func(t *testing.T) {
		batch, err := Read(strings.NewReader("Product ID,Name\np-1,Blue Dream,extra,cells\n"))
		require.NoError(t, err)
		require.Len(t, batch.Rows, 1)
		assert.Len(t, batch.Rows[0], 2)
	})

	t.Run("malformed row is fatal", func(t *testing.T) {
		_, err := Read(strings.NewReader("Product ID,Name\np-1,\"unterminated\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read row 2")
	})

	t.Run("quoted fields with embedded commas", func(t *testing.T) {
		batch, err := Read(strings.NewReader("Name,Description\nGummies,\"Sweet, chewy, strong\"\n"))
		require.NoError(t, err)
		assert.Equal(t, "Sweet, chewy, strong", batch.Rows[0]["Description"])
	})
}

func TestWrite(t *testing.T) {
	records := []*models.CanonicalRecord{
		{ExternalID: "p-1", Name: "Blue Dream", Category: "Flower"},
		{ExternalID: "p-2", Name: "Mellow Gummies, 10pk", Category: "Edibles"},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, records))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, models.OutputColumns, rows[0])
	assert.Len(t, rows[0], len(models.OutputColumns))
	assert.Equal(t, "p-1", rows[1][0])
	assert.Equal(t, "Blue Dream", rows[1][1])
	assert.Equal(t, "Mellow Gummies, 10pk", rows[2][1])
}

func TestWriteEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, nil))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, models.OutputColumns, rows[0])
}
