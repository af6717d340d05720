package app

import (
	"bytes"
	"testing"

	"gotest.tools/v3/assert"

	"markerscan/pkg/scanner"
)

var results = []*scanner.Result{
	{UID: "u1", Part: 1, Size: 4, Position: 7, Found: true, Window: "jpqm"},
	{UID: "u2", Part: 2, Size: 40},
}

func TestPrintResults(t *testing.T) {
	cases := []struct {
		format string
		want   string
	}{
		{"text", "part 1: 7\npart 2: <none>\n"},
		{"table", "PART\tSIZE\tMARKER\tWINDOW\tUID\n1\t4\t7\tjpqm\tu1\n2\t40\t<none>\t<none>\tu2\n"},
		{"json", `[{"uid":"u1","part":1,"size":4,"position":7,"found":true,"window":"jpqm"},{"uid":"u2","part":2,"size":40,"found":false}]` + "\n"},
		{"yaml", "- uid: u1\n  part: 1\n  size: 4\n  position: 7\n  found: true\n  window: jpqm\n- uid: u2\n  part: 2\n  size: 40\n  found: false\n"},
	}
	for _, c := range cases {
		var buf bytes.Buffer
		assert.NilError(t, PrintResults(&buf, c.format, results), c.format)
		assert.Equal(t, buf.String(), c.want, c.format)
	}
}

func TestPrintResultsUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorContains(t, PrintResults(&buf, "xml", results), "unknown output format")
}
