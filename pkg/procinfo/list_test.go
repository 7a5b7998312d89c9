package procinfo

import (
	"errors"
	"testing"
	"unsafe"

	"golang.org/x/sys/unix"
)

const fdInfoSize = int32(unsafe.Sizeof(FDInfo{}))

// putFDInfo writes a record into a synthetic kernel's output buffer.
func putFDInfo(buf unsafe.Pointer, idx int, rec FDInfo) {
	*(*FDInfo)(unsafe.Add(buf, idx*int(fdInfoSize))) = rec
}

func TestListInfoUsesProbeHint(t *testing.T) {
	probes := 0
	withKernel(t, func(call int32, pid Pid, flavor uint32, arg uint64, buf unsafe.Pointer, size int32) (int32, error) {
		if flavor != uint32(flavorListFDs) {
			t.Fatalf("flavor = %d, want %d", flavor, flavorListFDs)
		}
		if buf == nil {
			probes++
			return 3 * fdInfoSize, nil
		}
		if size < 3*fdInfoSize {
			t.Fatalf("buffer size = %d, want at least the hinted %d", size, 3*fdInfoSize)
		}
		putFDInfo(buf, 0, FDInfo{Proc_fd: 0, Proc_fdtype: uint32(FDTypeVnode)})
		putFDInfo(buf, 1, FDInfo{Proc_fd: 3, Proc_fdtype: uint32(FDTypeSocket)})
		return 2 * fdInfoSize, nil
	})

	fds, err := ListInfo[FDInfo](1)
	if err != nil {
		t.Fatalf("ListInfo = %v", err)
	}
	if probes != 1 {
		t.Fatalf("nil-buffer probes = %d, want 1", probes)
	}
	if len(fds) != 2 {
		t.Fatalf("len = %d, want 2", len(fds))
	}
	if fds[0].Proc_fd != 0 || fds[1].Proc_fd != 3 {
		t.Fatalf("fds = %v, want kernel order [0 3]", fds)
	}
}

func TestListInfoGrowsOnSaturatedReply(t *testing.T) {
	// A kernel that always fills the buffer exactly must force growth; the
	// engine may only stop on a strictly smaller reply.
	const total = 40
	fetches := 0
	withKernel(t, func(call int32, pid Pid, flavor uint32, arg uint64, buf unsafe.Pointer, size int32) (int32, error) {
		if buf == nil {
			return 0, nil // no size hint
		}
		fetches++
		n := size / fdInfoSize
		if int(n) >= total {
			for i := 0; i < total; i++ {
				putFDInfo(buf, i, FDInfo{Proc_fd: Fd(i), Proc_fdtype: uint32(FDTypeVnode)})
			}
			return total * fdInfoSize, nil
		}
		return size, nil // saturated: looks truncated
	})

	fds, err := ListInfo[FDInfo](1)
	if err != nil {
		t.Fatalf("ListInfo = %v", err)
	}
	if fetches < 2 {
		t.Fatalf("fetches = %d, want at least one growth retry", fetches)
	}
	if len(fds) != total {
		t.Fatalf("len = %d, want %d", len(fds), total)
	}
	for i, fd := range fds {
		if fd.Proc_fd != Fd(i) {
			t.Fatalf("fds[%d].Proc_fd = %d, want %d", i, fd.Proc_fd, i)
		}
	}
}

func TestListInfoPartialRecord(t *testing.T) {
	withKernel(t, func(call int32, pid Pid, flavor uint32, arg uint64, buf unsafe.Pointer, size int32) (int32, error) {
		if buf == nil {
			return 0, nil
		}
		return fdInfoSize + 3, nil
	})
	if _, err := ListInfo[FDInfo](1); !errors.Is(err, ErrMalformed) {
		t.Fatalf("ListInfo error = %v, want ErrMalformed", err)
	}
}

func TestListInfoProbeError(t *testing.T) {
	withKernel(t, func(call int32, pid Pid, flavor uint32, arg uint64, buf unsafe.Pointer, size int32) (int32, error) {
		return 0, unix.ESRCH
	})
	if _, err := ListInfo[FDInfo](424242); !errors.Is(err, unix.ESRCH) {
		t.Fatalf("ListInfo error = %v, want wrapped ESRCH", err)
	}
}

func TestListInfoEmptyTable(t *testing.T) {
	withKernel(t, func(call int32, pid Pid, flavor uint32, arg uint64, buf unsafe.Pointer, size int32) (int32, error) {
		return 0, nil
	})
	fds, err := ListInfo[FilePortInfo](1)
	if err != nil {
		t.Fatalf("ListInfo = %v", err)
	}
	if len(fds) != 0 {
		t.Fatalf("len = %d, want 0", len(fds))
	}
}

func TestListPids(t *testing.T) {
	const pidSize = int32(unsafe.Sizeof(Pid(0)))
	withKernel(t, func(call int32, pid Pid, flavor uint32, arg uint64, buf unsafe.Pointer, size int32) (int32, error) {
		if call != callListPids {
			t.Fatalf("call = %d, want %d", call, callListPids)
		}
		if pid != Pid(allPids) {
			t.Fatalf("type selector = %d, want PROC_ALL_PIDS", pid)
		}
		if buf == nil {
			return 3 * pidSize, nil
		}
		out := unsafe.Slice((*Pid)(buf), size/pidSize)
		copy(out, []Pid{1, 0, 345}) // kernel zero-pads the table
		return 3 * pidSize, nil
	})

	pids, err := ListPids()
	if err != nil {
		t.Fatalf("ListPids = %v", err)
	}
	if len(pids) != 2 || pids[0] != 1 || pids[1] != 345 {
		t.Fatalf("pids = %v, want [1 345]", pids)
	}
}
