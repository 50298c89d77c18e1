//go:build !cmd_go_bootstrap

package openssl

// #include "goopenssl.h"
import "C"
import (
	"strconv"
	"strings"
)

// ErrorEntry is one code drained from the error queue, together with
// the source location OpenSSL recorded when it was raised.
type ErrorEntry struct {
	Code ErrorCode
	File string
	Line int
}

// Error is an OpenSSL failure and the error queue contents at the time
// it was observed, oldest first.
type Error struct {
	Op      string
	Entries []ErrorEntry
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Op)
	b.WriteString("\nopenssl error(s):")
	for _, ent := range e.Entries {
		b.WriteByte('\n')
		b.WriteString(ErrorString(ent.Code))
		b.WriteString("\n\t" + ent.File + ":" + strconv.Itoa(ent.Line))
	}
	return b.String()
}

// AllocFailure reports whether any queued entry is an allocation failure.
func (e *Error) AllocFailure() bool {
	for _, ent := range e.Entries {
		if ent.Code.IsAllocFailure() {
			return true
		}
	}
	return false
}

// NewError drains the error queue of the calling thread into an *Error
// describing the failure of op. The result is never nil, even if the
// queue was empty.
func NewError(op string) error {
	return newOpenSSLError(op)
}

func newOpenSSLError(msg string) *Error {
	err := &Error{Op: msg}
	for {
		var (
			e    C.ulong
			file *C.char
			line C.int
		)
		switch vMajor {
		case 1:
			e = C.go_openssl_ERR_get_error_line(&file, &line)
		case 3:
			e = C.go_openssl_ERR_get_error_all(&file, &line, nil, nil, nil)
		default:
			panic(errUnsupportedVersion())
		}
		if e == 0 {
			break
		}
		err.Entries = append(err.Entries, ErrorEntry{
			Code: ErrorCode(e),
			File: C.GoString(file),
			Line: int(line),
		})
	}
	return err
}
