//go:build !cmd_go_bootstrap

package openssl

// #include "goopenssl.h"
import "C"
import "runtime"

var unknownFile = C.CString("<go code>")

// PushError places e on the error queue of the calling OS thread, as if
// libcrypto had raised it. It exists for testing code that consumes the
// queue; the recorded source file is always "<go code>".
//
// PushError is not meant for production use: real errors are raised by
// libcrypto itself, and faking them hides the operation that failed.
func PushError(e ErrorCode) {
	_, _, line, _ := runtime.Caller(1)
	C.go_openssl_push_error(C.uint(vMajor), C.int(e.Lib()), C.int(e.Func()), C.int(e.Reason()), unknownFile, C.int(line))
}
