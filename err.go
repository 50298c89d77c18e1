//go:build !cmd_go_bootstrap

package openssl

// #include "goopenssl.h"
import "C"
import (
	"bytes"
	"unsafe"
)

// The functions in this file operate on the error queue of the calling
// OS thread. Goroutines migrate between threads, so callers that peek and
// then pop, or that inspect the queue after a failed OpenSSL call, must
// hold runtime.LockOSThread for the duration of the sequence.

// ClearError empties the error queue.
func ClearError() {
	C.go_openssl_ERR_clear_error()
}

// GetError removes the oldest code from the error queue and returns it.
// It returns 0 if the queue is empty.
func GetError() ErrorCode {
	return ErrorCode(C.go_openssl_ERR_get_error())
}

// GetErrorAlloc is like GetError. If isAllocFailure is not nil, it also
// reports whether the reason of the returned code is an allocation failure.
// When the queue is empty the flag describes code 0, so it is false.
func GetErrorAlloc(isAllocFailure *bool) ErrorCode {
	e := GetError()
	if isAllocFailure != nil {
		*isAllocFailure = e.IsAllocFailure()
	}
	return e
}

// PeekError returns the oldest code in the error queue without removing it.
// It returns 0 if the queue is empty.
func PeekError() ErrorCode {
	return ErrorCode(C.go_openssl_ERR_peek_error())
}

// PeekLastError returns the newest code in the error queue without removing it.
// It returns 0 if the queue is empty.
func PeekLastError() ErrorCode {
	return ErrorCode(C.go_openssl_ERR_peek_last_error())
}

// ReasonErrorString returns the human-readable reason of e,
// or "" if OpenSSL has no string for it.
func ReasonErrorString(e ErrorCode) string {
	return C.GoString(C.go_openssl_ERR_reason_error_string(C.ulong(e)))
}

// ReasonErrorStringPtr is like ReasonErrorString but returns the
// NUL-terminated string owned by libcrypto, or nil.
// The memory must not be freed or modified.
func ReasonErrorStringPtr(e ErrorCode) unsafe.Pointer {
	return unsafe.Pointer(C.go_openssl_ERR_reason_error_string(C.ulong(e)))
}

// LibErrorString returns the name of the library that raised e,
// or "" if OpenSSL has no string for it.
func LibErrorString(e ErrorCode) string {
	return C.GoString(C.go_openssl_ERR_lib_error_string(C.ulong(e)))
}

// ErrorStringN writes the NUL-terminated description of e into buf,
// truncating it to len(buf). An empty buf is left untouched.
func ErrorStringN(e ErrorCode, buf []byte) {
	if len(buf) == 0 {
		return
	}
	C.go_openssl_ERR_error_string_n(C.ulong(e), sbase(buf), C.size_t(len(buf)))
}

// ErrorString returns the ERR_error_string_n description of e,
// such as "error:0A000001:SSL routines::...".
func ErrorString(e ErrorCode) string {
	var buf [256]byte
	ErrorStringN(e, buf[:])
	if i := bytes.IndexByte(buf[:], 0); i >= 0 {
		return string(buf[:i])
	}
	return string(buf[:])
}

// Errors removes every code from the error queue and returns them,
// oldest first. It returns nil if the queue is empty.
func Errors() []ErrorCode {
	var codes []ErrorCode
	for {
		e := GetError()
		if e == 0 {
			return codes
		}
		codes = append(codes, e)
	}
}
