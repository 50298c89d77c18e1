//go:build !cmd_go_bootstrap

package openssl

// #include "goopenssl.h"
import "C"
import (
	"errors"
	"unsafe"
)

// opensslInit loads and initialize OpenSSL.
// If successful, it returns the major, minor and patch OpenSSL version
// as reported by the OpenSSL API.
//
// See Init() for details about file.
func opensslInit(file string) (major, minor, patch uint, err error) {
	// Load the OpenSSL shared library using dlopen.
	handle, err := loadLibrary(file)
	if err != nil {
		return 0, 0, 0, err
	}

	// Retrieve the loaded OpenSSL version and check if it is supported.
	// Notice that major and minor could not match with the version parameter
	// in case the name of the shared library file differs from the OpenSSL
	// version it contains.
	imajor := int(C.go_openssl_version_major(handle))
	iminor := int(C.go_openssl_version_minor(handle))
	ipatch := int(C.go_openssl_version_patch(handle))
	if imajor < 0 || iminor < 0 || ipatch < 0 {
		return 0, 0, 0, errors.New("openssl: can't retrieve OpenSSL version")
	}
	major, minor, patch = uint(imajor), uint(iminor), uint(ipatch)
	var supported bool
	if major == 1 {
		supported = minor == 1
	} else if major == 3 {
		// OpenSSL guarantees API and ABI compatibility within the same major version since OpenSSL 3.
		supported = true
	}
	if !supported {
		return 0, 0, 0, errors.New("openssl: OpenSSL version: " + utoa(major) + "." + utoa(minor) + "." + utoa(patch))
	}

	// Load the OpenSSL functions.
	// See shims.h for the complete list of supported functions.
	C.go_openssl_load_functions(handle, C.uint(major), C.uint(minor), C.uint(patch))

	// Initialize OpenSSL. Loading the crypto strings is what makes
	// ERR_reason_error_string and ERR_error_string_n return text.
	flags := C.uint64_t(C.GO_OPENSSL_INIT_ADD_ALL_CIPHERS | C.GO_OPENSSL_INIT_ADD_ALL_DIGESTS | C.GO_OPENSSL_INIT_LOAD_CONFIG | C.GO_OPENSSL_INIT_LOAD_CRYPTO_STRINGS)
	if C.go_openssl_OPENSSL_init_crypto(flags, nil) != 1 {
		return 0, 0, 0, fail("init crypto")
	}
	return major, minor, patch, nil
}

// loadLibrary opens file, or the first well-known libcrypto
// name that can be opened if file is empty.
func loadLibrary(file string) (unsafe.Pointer, error) {
	if file != "" {
		return dlopen(file)
	}
	for _, v := range knownLibraries {
		if handle, err := dlopen(v); err == nil {
			return handle, nil
		}
	}
	return nil, errors.New("openssl: can't load libcrypto using any known library name")
}
