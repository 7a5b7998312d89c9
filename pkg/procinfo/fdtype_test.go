package procinfo

import (
	"errors"
	"testing"
)

func TestDecodeFDType(t *testing.T) {
	t.Parallel()
	known := map[uint32]FDType{
		0:  FDTypeAtalk,
		1:  FDTypeVnode,
		2:  FDTypeSocket,
		3:  FDTypePSHM,
		4:  FDTypePSEM,
		5:  FDTypeKqueue,
		6:  FDTypePipe,
		7:  FDTypeFsevents,
		9:  FDTypeNetPolicy,
		10: FDTypeChannel,
		11: FDTypeNexus,
	}
	for raw, want := range known {
		got, err := decodeFDType(raw)
		if err != nil || got != want {
			t.Fatalf("decodeFDType(%d) = (%v, %v), want (%v, nil)", raw, got, err, want)
		}
	}
}

func TestDecodeFDTypeUnknown(t *testing.T) {
	t.Parallel()
	// 8 is a hole in the kernel's numbering; 12+ are future types.
	for _, raw := range []uint32{8, 12, 99, 1 << 31} {
		entry := FDInfo{Proc_fd: 5, Proc_fdtype: raw}
		_, err := entry.FDType()
		var unknown *UnknownFDTypeError
		if !errors.As(err, &unknown) {
			t.Fatalf("FDType() with tag %d: error = %v, want *UnknownFDTypeError", raw, err)
		}
		if unknown.Raw != raw {
			t.Fatalf("UnknownFDTypeError.Raw = %d, want %d", unknown.Raw, raw)
		}
		// an unknown tag is an expected condition, not a protocol violation
		if errors.Is(err, ErrMalformed) {
			t.Fatalf("FDType() with tag %d conflated with ErrMalformed", raw)
		}
	}
}

func TestFDTypeString(t *testing.T) {
	t.Parallel()
	for tag, want := range map[FDType]string{
		FDTypeVnode:  "vnode",
		FDTypeSocket: "socket",
		FDTypePipe:   "pipe",
		FDType(8):    "unknown",
	} {
		if got := tag.String(); got != want {
			t.Fatalf("FDType(%d).String() = %q, want %q", uint32(tag), got, want)
		}
	}
}
