package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleInfo() CodeInfo {
	return CodeInfo{
		Code:         0x0A000001,
		Text:         "error:0A000001:SSL routines::reason(1)",
		Lib:          20,
		LibName:      "SSL routines",
		Reason:       1,
		AllocFailure: false,
	}
}

func TestNewPrinter_UnknownFormat(t *testing.T) {
	_, err := NewPrinter("table", &bytes.Buffer{})
	assert.EqualError(t, err, "unknown output format: table")
}

func TestPrinter_PrintCodesText(t *testing.T) {
	var buf bytes.Buffer
	p, err := NewPrinter("text", &buf)
	require.NoError(t, err)

	require.NoError(t, p.PrintCodes([]CodeInfo{sampleInfo()}))
	out := buf.String()
	assert.Contains(t, out, "error:0A000001:SSL routines::reason(1)\n")
	assert.Contains(t, out, "  Code:          0x0A000001\n")
	assert.Contains(t, out, "  Library:       20 SSL routines\n")
	assert.Contains(t, out, "  Alloc failure: false\n")
	assert.NotContains(t, out, "Function:")
	assert.NotContains(t, out, "System error:")
}

func TestPrinter_PrintCodesJSON(t *testing.T) {
	var buf bytes.Buffer
	p, err := NewPrinter("json", &buf)
	require.NoError(t, err)

	want := []CodeInfo{sampleInfo(), {Code: 0x80000002, Lib: 2, Reason: 2, System: true}}
	require.NoError(t, p.PrintCodes(want))

	var got []CodeInfo
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, want, got)
}

func TestPrinter_PrintVersion(t *testing.T) {
	var buf bytes.Buffer
	p, err := NewPrinter("text", &buf)
	require.NoError(t, err)

	require.NoError(t, p.PrintVersion(VersionInfo{Version: "1.2.3", GitCommit: "abc", BuildDate: "today", GoVersion: "go1.22"}))
	assert.Equal(t, "errstr version 1.2.3\nGit commit: abc\nBuild date: today\nGo version: go1.22\n", buf.String())
}
