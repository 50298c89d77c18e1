//go:build unix && !cmd_go_bootstrap

package openssl

// #cgo LDFLAGS: -ldl -pthread
// #include <stdlib.h>
// #include <dlfcn.h>
import "C"
import (
	"errors"
	"runtime"
	"unsafe"
)

// knownLibraries is a list of supported and well-known libcrypto names in decreasing version order.
//
// FreeBSD library version numbering does not directly align to the version of OpenSSL.
// Its preferred search order is 11 -> 111.
var knownLibraries = func() []string {
	versions := []string{"3", "1.1", "11", "111"}
	names := make([]string, 0, len(versions)+1)
	for _, v := range versions {
		if runtime.GOOS == "darwin" {
			names = append(names, "libcrypto."+v+".dylib")
		} else {
			names = append(names, "libcrypto.so."+v)
		}
	}
	if runtime.GOOS != "darwin" {
		names = append(names, "libcrypto.so")
	}
	return names
}()

func dlopen(file string) (handle unsafe.Pointer, err error) {
	cv := C.CString(file)
	defer C.free(unsafe.Pointer(cv))
	handle = C.dlopen(cv, C.RTLD_LAZY|C.RTLD_LOCAL)
	if handle == nil {
		errstr := C.GoString(C.dlerror())
		return nil, errors.New("openssl: can't load " + file + ": " + errstr)
	}
	return handle, nil
}

func dlclose(handle unsafe.Pointer) error {
	if C.dlclose(handle) != 0 {
		errstr := C.GoString(C.dlerror())
		return errors.New("openssl: can't close libcrypto: " + errstr)
	}
	return nil
}
