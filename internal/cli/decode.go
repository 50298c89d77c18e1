package cli

import (
	"fmt"
	"strconv"
	"strings"

	openssl "github.com/golang-fips/cryptonative"
)

// CodeInfo is everything errstr reports about one error code.
type CodeInfo struct {
	Code         uint64 `json:"code"`
	Text         string `json:"text"`
	Lib          uint   `json:"lib"`
	LibName      string `json:"lib_name,omitempty"`
	Func         uint   `json:"func,omitempty"`
	Reason       uint   `json:"reason"`
	ReasonText   string `json:"reason_text,omitempty"`
	System       bool   `json:"system,omitempty"`
	AllocFailure bool   `json:"alloc_failure"`
}

// parseCode parses an error code the way `openssl errstr` does: as
// hexadecimal, with an optional 0x prefix. With decimal set the code
// is parsed as base 10.
func parseCode(s string, decimal bool) (openssl.ErrorCode, error) {
	in := s
	s = strings.TrimSpace(s)
	base := 16
	if decimal {
		base = 10
	} else if len(s) > 2 && (s[:2] == "0x" || s[:2] == "0X") {
		s = s[2:]
	}
	n, err := strconv.ParseUint(s, base, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid error code %q: %w", in, err)
	}
	return openssl.ErrorCode(n), nil
}

// describe decodes e with the loaded libcrypto.
func describe(e openssl.ErrorCode) CodeInfo {
	return CodeInfo{
		Code:         uint64(e),
		Text:         openssl.ErrorString(e),
		Lib:          e.Lib(),
		LibName:      openssl.LibErrorString(e),
		Func:         e.Func(),
		Reason:       e.Reason(),
		ReasonText:   openssl.ReasonErrorString(e),
		System:       e.IsSystem(),
		AllocFailure: e.IsAllocFailure(),
	}
}
