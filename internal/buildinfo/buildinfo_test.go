package buildinfo

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintBuildData_Defaults(t *testing.T) {
	var buf bytes.Buffer
	PrintBuildData(&buf)

	out := buf.String()
	assert.Contains(t, out, "Build version: N/A")
	assert.Contains(t, out, "Build date: N/A")
	assert.Contains(t, out, "Build commit: N/A")
}

func TestInfo_UsesInjectedValues(t *testing.T) {
	origV, origD := Version, Date
	t.Cleanup(func() { Version, Date = origV, origD })

	Version = "1.4.0"
	Date = ""

	info := Info()
	assert.Equal(t, "1.4.0", info.Version)
	assert.Equal(t, "divergentflow-cli", info.Service)
	assert.Equal(t, "N/A", info.Timestamp)
}
