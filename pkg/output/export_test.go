package output

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/iwvelando/finance-tracker/internal/record"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestMain(m *testing.M) {
	decimal.MarshalJSONWithoutQuotes = true
	os.Exit(m.Run())
}

func TestExportRecordJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ExportRecord(&buf, record.Default(), ExportJSON))

	assert.True(t, json.Valid(buf.Bytes()))
	decoded, err := record.Decode(buf.Bytes())
	require.NoError(t, err)
	assert.Len(t, decoded.Transactions, 5)
}

func TestExportRecordYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ExportRecord(&buf, record.Default(), ExportYAML))

	out := buf.String()
	assert.Contains(t, out, "salary: 45000\n")
	assert.Contains(t, out, "inflationData:\n")
	assert.Contains(t, out, "cpiYoY: 0.047")
	assert.NotContains(t, out, "{", "mappings are written in block style")

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.EqualValues(t, 45000, decoded["salary"])
	assert.Len(t, decoded["transactions"], 5)
}

func TestExportRecordUnknownFormat(t *testing.T) {
	err := ExportRecord(&bytes.Buffer{}, record.Default(), "toml")
	assert.Error(t, err)
}
