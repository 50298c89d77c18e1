package openssl_test

import (
	"fmt"
	"os"
	"runtime"
	"testing"

	openssl "github.com/golang-fips/cryptonative"
)

// getVersion returns the OpenSSL version to use for testing.
func getVersion() string {
	v := os.Getenv("GO_OPENSSL_VERSION_OVERRIDE")
	if v != "" {
		if runtime.GOOS == "linux" {
			return "libcrypto.so." + v
		}
		return v
	}
	// Try to find a supported version of OpenSSL on the system.
	// This is useful for local testing, where the user may not
	// have GO_OPENSSL_VERSION_OVERRIDE set.
	versions := []string{"3", "1.1.1", "1.1", "11", "111"}
	if runtime.GOOS == "windows" {
		if runtime.GOARCH == "amd64" {
			versions = []string{"libcrypto-3-x64", "libcrypto-3", "libcrypto-1_1-x64", "libcrypto-1_1"}
		} else {
			versions = []string{"libcrypto-3", "libcrypto-1_1"}
		}
	}
	for _, v = range versions {
		if runtime.GOOS == "windows" {
			v += ".dll"
		} else if runtime.GOOS == "darwin" {
			v = "libcrypto." + v + ".dylib"
		} else {
			v = "libcrypto.so." + v
		}
		if openssl.CheckVersion(v) {
			return v
		}
	}
	return "libcrypto.so"
}

func TestMain(m *testing.M) {
	v := getVersion()
	fmt.Printf("Using %s\n", v)
	err := openssl.Init(v)
	if err != nil {
		// An error here could mean that this Linux distro does not have a supported OpenSSL version
		// or that there is a bug in the Init code.
		panic(err)
	}
	fmt.Println("OpenSSL version:", openssl.VersionText())
	os.Exit(m.Run())
}

func TestCheckVersion(t *testing.T) {
	v := getVersion()
	if !openssl.CheckVersion(v) {
		t.Fatalf("OpenSSL version %q not found", v)
	}
	if openssl.CheckVersion("libcrypto-does-not-exist.so") {
		t.Fatal("CheckVersion succeeded for a missing library")
	}
}

func TestInitIsIdempotent(t *testing.T) {
	major := openssl.MajorVersion()
	if err := openssl.Init("libcrypto-does-not-exist.so"); err != nil {
		t.Fatalf("second Init returned %v, want the first result", err)
	}
	if got := openssl.MajorVersion(); got != major {
		t.Fatalf("MajorVersion changed from %d to %d", major, got)
	}
	if !openssl.Initialized() {
		t.Fatal("Initialized() = false after successful Init")
	}
	if major != 1 && major != 3 {
		t.Fatalf("unexpected major version %d", major)
	}
}

func TestVersionText(t *testing.T) {
	if v := openssl.VersionText(); v == "" {
		t.Fatal("VersionText is empty")
	}
}
