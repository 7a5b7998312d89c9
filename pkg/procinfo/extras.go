package procinfo

import (
	"fmt"
	"unsafe"
)

const (
	allPids      uint32 = 1 // PROC_ALL_PIDS
	rusageInfoV4 uint32 = 4 // RUSAGE_INFO_V4

	// PROC_PIDPATHINFO_MAXSIZE. proc_pidpath uses a buffer four times
	// MAXPATHLEN; the kernel rejects anything smaller than one MAXPATHLEN.
	pidPathBufSize = 4 * maxPathLen
)

// ListPids enumerates the pids of all live processes. The pid table is a
// list query like any other, so the same saturated-reply retry applies.
func ListPids() ([]Pid, error) {
	const pidSize = int(unsafe.Sizeof(Pid(0)))

	hint, err := procInfoImpl(callListPids, Pid(allPids), 0, 0, nil, 0)
	if err != nil {
		return nil, osError("proc_listpids", err)
	}
	count := defaultListRecords
	if hint > 0 {
		// Leave headroom for processes spawned between probe and fetch.
		count = int(hint)/pidSize + defaultListRecords
	}

	for {
		buf := make([]Pid, count)
		bufSize := int32(count * pidSize)
		n, err := procInfoImpl(callListPids, Pid(allPids), 0, 0, unsafe.Pointer(&buf[0]), bufSize)
		if err != nil {
			return nil, osError("proc_listpids", err)
		}
		if n == bufSize {
			count *= 2
			continue
		}
		if n < 0 || int(n)%pidSize != 0 {
			return nil, fmt.Errorf("%w: proc_listpids replied %d bytes", ErrMalformed, n)
		}
		// The kernel pads the tail of the table with zero pids.
		pids := make([]Pid, 0, int(n)/pidSize)
		for _, pid := range buf[:int(n)/pidSize] {
			if pid != 0 {
				pids = append(pids, pid)
			}
		}
		return pids, nil
	}
}

// PidPath returns the path of the executable backing a process. The reply
// is a NUL-terminated path in the buffer; its length is not reported
// through the return value, so the buffer is scanned like any other
// kernel-filled path field.
func PidPath(pid Pid) (string, error) {
	buf := make([]byte, pidPathBufSize)
	_, err := procInfoImpl(callPidInfo, pid, uint32(flavorPathInfo), 0, unsafe.Pointer(&buf[0]), int32(len(buf)))
	if err != nil {
		return "", osError("proc_pidpath", err)
	}
	return pathField(buf), nil
}

// PidRusage fetches the resource usage snapshot of a process. Unlike the
// info entry points this call reports success as zero, not as a byte count;
// the kernel sizes the record from the flavor alone.
func PidRusage(pid Pid) (*RusageInfoV4, error) {
	usage := new(RusageInfoV4)
	n, err := procInfoImpl(callPidRusage, pid, rusageInfoV4, 0, unsafe.Pointer(usage), 0)
	if err != nil {
		return nil, osError("proc_pid_rusage", err)
	}
	if n != 0 {
		return nil, fmt.Errorf("%w: proc_pid_rusage replied %d, want 0", ErrMalformed, n)
	}
	return usage, nil
}
