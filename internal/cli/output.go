package cli

import (
	"encoding/json"
	"fmt"
	"io"
)

// OutputFormat defines the output format type
type OutputFormat string

const (
	OutputFormatText OutputFormat = "text"
	OutputFormatJSON OutputFormat = "json"
)

// Printer handles formatted output
type Printer struct {
	format OutputFormat
	writer io.Writer
}

// NewPrinter creates a new Printer. It fails for unknown formats.
func NewPrinter(format string, writer io.Writer) (*Printer, error) {
	switch OutputFormat(format) {
	case OutputFormatText, OutputFormatJSON:
	default:
		return nil, fmt.Errorf("unknown output format: %s", format)
	}
	return &Printer{
		format: OutputFormat(format),
		writer: writer,
	}, nil
}

// PrintCodes prints the decoded error codes in input order.
func (p *Printer) PrintCodes(infos []CodeInfo) error {
	if p.format == OutputFormatJSON {
		return p.printJSON(infos)
	}
	for i, info := range infos {
		if i > 0 {
			fmt.Fprintln(p.writer)
		}
		fmt.Fprintln(p.writer, info.Text)
		fmt.Fprintf(p.writer, "  Code:          0x%08X\n", info.Code)
		fmt.Fprintf(p.writer, "  Library:       %d %s\n", info.Lib, info.LibName)
		if info.Func != 0 {
			fmt.Fprintf(p.writer, "  Function:      %d\n", info.Func)
		}
		fmt.Fprintf(p.writer, "  Reason:        %d %s\n", info.Reason, info.ReasonText)
		if info.System {
			fmt.Fprintln(p.writer, "  System error:  true")
		}
		fmt.Fprintf(p.writer, "  Alloc failure: %t\n", info.AllocFailure)
	}
	return nil
}

// VersionInfo describes the errstr build and the loaded libcrypto.
type VersionInfo struct {
	Version   string `json:"version"`
	GitCommit string `json:"commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	OpenSSL   string `json:"openssl,omitempty"`
}

// PrintVersion prints version information.
func (p *Printer) PrintVersion(v VersionInfo) error {
	if p.format == OutputFormatJSON {
		return p.printJSON(v)
	}
	fmt.Fprintf(p.writer, "errstr version %s\n", v.Version)
	fmt.Fprintf(p.writer, "Git commit: %s\n", v.GitCommit)
	fmt.Fprintf(p.writer, "Build date: %s\n", v.BuildDate)
	fmt.Fprintf(p.writer, "Go version: %s\n", v.GoVersion)
	if v.OpenSSL != "" {
		fmt.Fprintf(p.writer, "OpenSSL:    %s\n", v.OpenSSL)
	}
	return nil
}

func (p *Printer) printJSON(v any) error {
	enc := json.NewEncoder(p.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
