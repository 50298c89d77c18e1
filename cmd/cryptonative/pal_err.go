package main

import (
	"os"
	"runtime"
	"sync"
	"unsafe"

	openssl "github.com/golang-fips/cryptonative"
)

// The exported entry points are thin casts over these functions, which
// use Go types so they can be tested without cgo.

// loader runs load at most once and remembers whether it succeeded.
type loader struct {
	once sync.Once
	ok   bool
	load func() error
}

var crypto = &loader{load: func() error { return openssl.Init(library()) }}

// library returns the libcrypto to load, or "" to search the well-known names.
func library() string {
	v := os.Getenv("GO_OPENSSL_VERSION_OVERRIDE")
	if v != "" && runtime.GOOS == "linux" {
		return "libcrypto.so." + v
	}
	return v
}

// ensureInitialized loads libcrypto once. It returns 0 on success and 1
// if no supported library could be loaded.
func ensureInitialized() int32 {
	l := crypto
	l.once.Do(func() {
		l.ok = l.load() == nil
	})
	if !l.ok {
		return 1
	}
	return 0
}

func ready() bool {
	return ensureInitialized() == 0
}

func errClearError() {
	if !ready() {
		return
	}
	openssl.ClearError()
}

func errGetError() uint64 {
	if !ready() {
		return 0
	}
	return uint64(openssl.GetError())
}

func errGetErrorAlloc(isAllocFailure *int32) uint64 {
	if !ready() {
		// Code 0 is never an allocation failure.
		if isAllocFailure != nil {
			*isAllocFailure = 0
		}
		return 0
	}
	if isAllocFailure == nil {
		return uint64(openssl.GetErrorAlloc(nil))
	}
	var alloc bool
	e := openssl.GetErrorAlloc(&alloc)
	*isAllocFailure = 0
	if alloc {
		*isAllocFailure = 1
	}
	return uint64(e)
}

func errPeekError() uint64 {
	if !ready() {
		return 0
	}
	return uint64(openssl.PeekError())
}

func errPeekLastError() uint64 {
	if !ready() {
		return 0
	}
	return uint64(openssl.PeekLastError())
}

// errReasonErrorString returns memory owned by libcrypto. Callers must not free it.
func errReasonErrorString(e uint64) unsafe.Pointer {
	if !ready() {
		return nil
	}
	return openssl.ReasonErrorStringPtr(openssl.ErrorCode(e))
}

// errErrorStringN writes at most length bytes, including the NUL, to buf.
// A negative length writes nothing.
func errErrorStringN(e uint64, buf unsafe.Pointer, length int32) {
	if !ready() || buf == nil || length < 0 {
		return
	}
	openssl.ErrorStringN(openssl.ErrorCode(e), unsafe.Slice((*byte)(buf), uint(length)))
}
