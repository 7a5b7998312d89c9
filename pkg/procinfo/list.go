package procinfo

import (
	"fmt"
	"unsafe"
)

// Records to allocate when a probe yields no size hint.
const defaultListRecords = 16

// ListInfo fetches the variable-length table of T for a process, in the
// order the kernel reports it.
//
// The interface offers no count-then-allocate contract: the only truncation
// signal is a reply that fills the buffer completely, which cannot be told
// apart from an exact fit. ListInfo probes with a nil buffer for the
// kernel's size hint, then retries with a doubled buffer every time a reply
// saturates it, until a reply comes back strictly smaller. A coincidental
// exact fit costs one extra round trip; that is the accepted price of never
// returning a silently truncated table.
func ListInfo[T ListRecord](pid Pid) ([]T, error) {
	var zero T
	flavor := uint32(zero.listInfoFlavor())
	recSize := int(unsafe.Sizeof(zero))

	hint, err := procInfoImpl(callPidInfo, pid, flavor, 0, nil, 0)
	if err != nil {
		return nil, osError("proc_pidinfo", err)
	}
	count := defaultListRecords
	if hint > 0 {
		count = (int(hint) + recSize - 1) / recSize
	}

	for {
		records := make([]T, count)
		bufSize := int32(count * recSize)
		n, err := procInfoImpl(callPidInfo, pid, flavor, 0, unsafe.Pointer(&records[0]), bufSize)
		if err != nil {
			return nil, osError("proc_pidinfo", err)
		}
		if n == bufSize {
			// Full buffer: possibly truncated, retry bigger. Growth is
			// unbounded here; descriptor tables bound it in practice.
			count *= 2
			continue
		}
		if n < 0 || int(n)%recSize != 0 {
			return nil, fmt.Errorf("%w: proc_pidinfo flavor %d replied %d bytes, record size %d", ErrMalformed, flavor, n, recSize)
		}
		return records[:int(n)/recSize], nil
	}
}

// ListInfoSelf is ListInfo for the calling process.
func ListInfoSelf[T ListRecord]() ([]T, error) {
	return ListInfo[T](CurrentPid())
}
