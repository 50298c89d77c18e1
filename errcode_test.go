package openssl

import "testing"

func TestErrorCodeDecode(t *testing.T) {
	tests := []struct {
		name   string
		major  uint
		code   ErrorCode
		lib    uint
		fn     uint
		reason uint
		system bool
	}{
		{"v1 zero", 1, 0, 0, 0, 0, false},
		{"v1 packed", 1, 0x0A000001, 10, 0, 1, false},
		{"v1 with func", 1, 0x0606B06F, 6, 0x6B, 0x6F, false},
		{"v1 malloc", 1, 0x0F000041, 15, 0, v1ReasonMallocFailure, false},
		{"v3 zero", 3, 0, 0, 0, 0, false},
		{"v3 packed", 3, 0x0A000001, 20, 0, 1, false},
		{"v3 malloc", 3, 0x078C0100, 15, 0, v3ReasonMallocFailure, false},
		{"v3 system", 3, 0x80000002, LibSys, 0, 2, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errLib(tt.major, tt.code); got != tt.lib {
				t.Errorf("lib = %d, want %d", got, tt.lib)
			}
			if got := errFunc(tt.major, tt.code); got != tt.fn {
				t.Errorf("func = %#x, want %#x", got, tt.fn)
			}
			if got := errReason(tt.major, tt.code); got != tt.reason {
				t.Errorf("reason = %#x, want %#x", got, tt.reason)
			}
			if got := errIsSystem(tt.major, tt.code); got != tt.system {
				t.Errorf("system = %v, want %v", got, tt.system)
			}
			if got := packError(tt.major, tt.lib, tt.fn, tt.reason); got != tt.code {
				t.Errorf("packError = %#x, want %#x", uint64(got), uint64(tt.code))
			}
		})
	}
}

func TestReasonMallocFailure(t *testing.T) {
	if got := reasonMallocFailure(1); got != 65 {
		t.Errorf("v1 ERR_R_MALLOC_FAILURE = %d, want 65", got)
	}
	if got := reasonMallocFailure(3); got != 0xC0100 {
		t.Errorf("v3 ERR_R_MALLOC_FAILURE = %#x, want 0xC0100", got)
	}
}

func TestErrorCodeUnsupportedVersion(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("decoding with an unknown major version did not panic")
		}
	}()
	errReason(2, 1)
}
