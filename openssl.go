//go:build !cmd_go_bootstrap

// Package openssl provides access to the OpenSSL error queue.
//
// The package loads libcrypto at runtime with dlopen, so no OpenSSL headers
// or import libraries are needed at build time. After Init succeeds, the
// functions in err.go forward one-to-one to the libcrypto ERR_* routines.
package openssl

// #include "goopenssl.h"
import "C"
import (
	"errors"
	"strconv"
	"sync"
	"unsafe"
)

var (
	// vMajor, vMinor and vPatch hold the major/minor/patch OpenSSL version.
	// They are only populated if Init has been called.
	vMajor, vMinor, vPatch uint
)

var (
	initOnce sync.Once
	initErr  error
)

// CheckVersion checks if the OpenSSL version can be loaded.
// This function can be called before Init.
func CheckVersion(version string) (exists bool) {
	handle, _ := dlopen(version)
	if handle == nil {
		return false
	}
	defer dlclose(handle)
	return C.go_openssl_version_major(handle) > 0
}

// Init loads and initializes OpenSSL from the shared library at path.
// It must be called before any other OpenSSL call, except CheckVersion.
//
// Only the first call to Init is effective.
// Subsequent calls will return the same error result as the one from the first call.
//
// The file is passed to dlopen() verbatim to load the OpenSSL shared library.
// For example, `file=libcrypto.so.1.1.1k-fips` makes Init look for the shared
// library libcrypto.so.1.1.1k-fips. If file is empty, Init tries the
// well-known library names of the current platform.
func Init(file string) error {
	initOnce.Do(func() {
		vMajor, vMinor, vPatch, initErr = opensslInit(file)
	})
	return initErr
}

// Initialized reports whether Init has been called and succeeded.
func Initialized() bool {
	return vMajor != 0
}

// MajorVersion returns the major version of the loaded OpenSSL library,
// or 0 if Init has not succeeded.
func MajorVersion() uint { return vMajor }

// MinorVersion returns the minor version of the loaded OpenSSL library.
func MinorVersion() uint { return vMinor }

// PatchVersion returns the patch version of the loaded OpenSSL library.
func PatchVersion() uint { return vPatch }

func utoa(n uint) string {
	return strconv.FormatUint(uint64(n), 10)
}

func errUnsupportedVersion() error {
	return errors.New("openssl: OpenSSL version: " + utoa(vMajor) + "." + utoa(vMinor) + "." + utoa(vPatch))
}

type fail string

func (e fail) Error() string { return "openssl: " + string(e) + " failed" }

// VersionText returns the version text of the OpenSSL currently loaded.
func VersionText() string {
	return C.GoString(C.go_openssl_OpenSSL_version(0))
}

func sbase(b []byte) *C.char {
	if len(b) == 0 {
		return nil
	}
	return (*C.char)(unsafe.Pointer(&b[0]))
}
