// Command cryptonative builds the flat C entry points over the OpenSSL
// error queue as a shared library:
//
//	go build -buildmode=c-shared -o libcryptonative.so ./cmd/cryptonative
//
// libcrypto is loaded on first use. GO_OPENSSL_VERSION_OVERRIDE selects the
// library the same way the package tests do; otherwise the well-known names
// are tried in order.
package main

func main() {}
