//go:build !cmd_go_bootstrap

package openssl

// ErrorCode is a packed OpenSSL error code, as returned by ERR_get_error.
// Zero means the queue held no error.
//
// The bit layout depends on the OpenSSL major version, so the accessor
// methods must only be used after Init.
type ErrorCode uint64

// Bit layout of OpenSSL 1.x error codes: lib<<24 | func<<12 | reason.
const (
	v1LibOffset   = 24
	v1LibMask     = 0xFF
	v1FuncOffset  = 12
	v1FuncMask    = 0xFFF
	v1ReasonMask  = 0xFFF
	v1ReasonFatal = 64

	v1ReasonMallocFailure = 1 | v1ReasonFatal
)

// Bit layout of OpenSSL 3 error codes: lib<<23 | reason, or
// ERR_SYSTEM_FLAG | errno for system errors.
const (
	v3LibOffset    = 23
	v3LibMask      = 0xFF
	v3ReasonMask   = 0x7FFFFF
	v3SystemFlag   = 0x80000000
	v3SystemMask   = 0x7FFFFFFF
	v3RFlagsOffset = 18
	v3RFlagFatal   = 0x1 << v3RFlagsOffset
	v3RFlagCommon  = 0x2 << v3RFlagsOffset

	v3ReasonMallocFailure = 256 | v3RFlagFatal | v3RFlagCommon
)

// Library numbers shared by every supported OpenSSL version.
const (
	LibSys    = 2  // ERR_LIB_SYS, errno values
	LibCrypto = 15 // ERR_LIB_CRYPTO
)

func errIsSystem(major uint, e ErrorCode) bool {
	return major == 3 && e&v3SystemFlag != 0
}

func errLib(major uint, e ErrorCode) uint {
	switch major {
	case 1:
		return uint(e>>v1LibOffset) & v1LibMask
	case 3:
		if errIsSystem(major, e) {
			return LibSys
		}
		return uint(e>>v3LibOffset) & v3LibMask
	default:
		panic(errUnsupportedVersion())
	}
}

func errFunc(major uint, e ErrorCode) uint {
	switch major {
	case 1:
		return uint(e>>v1FuncOffset) & v1FuncMask
	case 3:
		return 0
	default:
		panic(errUnsupportedVersion())
	}
}

func errReason(major uint, e ErrorCode) uint {
	switch major {
	case 1:
		return uint(e) & v1ReasonMask
	case 3:
		if errIsSystem(major, e) {
			return uint(e) & v3SystemMask
		}
		return uint(e) & v3ReasonMask
	default:
		panic(errUnsupportedVersion())
	}
}

func reasonMallocFailure(major uint) uint {
	switch major {
	case 1:
		return v1ReasonMallocFailure
	case 3:
		return v3ReasonMallocFailure
	default:
		panic(errUnsupportedVersion())
	}
}

// packError is the inverse of errLib, errFunc and errReason.
func packError(major uint, lib, fn, reason uint) ErrorCode {
	switch major {
	case 1:
		return ErrorCode((lib&v1LibMask)<<v1LibOffset | (fn&v1FuncMask)<<v1FuncOffset | reason&v1ReasonMask)
	case 3:
		if lib == LibSys {
			return ErrorCode(v3SystemFlag | reason&v3SystemMask)
		}
		return ErrorCode((lib&v3LibMask)<<v3LibOffset | reason&v3ReasonMask)
	default:
		panic(errUnsupportedVersion())
	}
}

// ReasonMallocFailure returns ERR_R_MALLOC_FAILURE for the loaded OpenSSL version.
func ReasonMallocFailure() uint {
	return reasonMallocFailure(vMajor)
}

// PackErrorCode builds the code OpenSSL would report for an error raised
// by library lib with the given reason. fn is ignored by OpenSSL 3.
func PackErrorCode(lib, fn, reason uint) ErrorCode {
	return packError(vMajor, lib, fn, reason)
}

// Lib returns the library that raised the error.
func (e ErrorCode) Lib() uint { return errLib(vMajor, e) }

// Func returns the function field of the error. Always 0 on OpenSSL 3.
func (e ErrorCode) Func() uint { return errFunc(vMajor, e) }

// Reason returns the reason field of the error, including the
// reason flags OpenSSL 3 stores next to it.
func (e ErrorCode) Reason() uint { return errReason(vMajor, e) }

// IsSystem reports whether e wraps an errno value.
func (e ErrorCode) IsSystem() bool { return errIsSystem(vMajor, e) }

// IsAllocFailure reports whether the reason of e is ERR_R_MALLOC_FAILURE.
func (e ErrorCode) IsAllocFailure() bool {
	return errReason(vMajor, e) == reasonMallocFailure(vMajor)
}

// String returns the ERR_error_string_n text of e.
func (e ErrorCode) String() string {
	return ErrorString(e)
}
