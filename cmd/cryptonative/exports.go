package main

/*
#include <stdint.h>
*/
import "C"
import "unsafe"

//export CryptoNative_EnsureOpenSslInitialized
func CryptoNative_EnsureOpenSslInitialized() C.int32_t {
	return C.int32_t(ensureInitialized())
}

//export CryptoNative_ErrClearError
func CryptoNative_ErrClearError() {
	errClearError()
}

//export CryptoNative_ErrGetError
func CryptoNative_ErrGetError() C.uint64_t {
	return C.uint64_t(errGetError())
}

//export CryptoNative_ErrGetErrorAlloc
func CryptoNative_ErrGetErrorAlloc(isAllocFailure *C.int32_t) C.uint64_t {
	return C.uint64_t(errGetErrorAlloc((*int32)(unsafe.Pointer(isAllocFailure))))
}

//export CryptoNative_ErrPeekError
func CryptoNative_ErrPeekError() C.uint64_t {
	return C.uint64_t(errPeekError())
}

//export CryptoNative_ErrPeekLastError
func CryptoNative_ErrPeekLastError() C.uint64_t {
	return C.uint64_t(errPeekLastError())
}

//export CryptoNative_ErrReasonErrorString
func CryptoNative_ErrReasonErrorString(e C.uint64_t) *C.char {
	return (*C.char)(errReasonErrorString(uint64(e)))
}

//export CryptoNative_ErrErrorStringN
func CryptoNative_ErrErrorStringN(e C.uint64_t, buf *C.char, length C.int32_t) {
	errErrorStringN(uint64(e), unsafe.Pointer(buf), int32(length))
}
