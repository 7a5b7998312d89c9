package procinfo

import (
	"fmt"
	"unsafe"
)

// proc_info call numbers (XNU bsd/sys/proc_info.h). The kernel multiplexes
// every query through one syscall; these select the entry point.
const (
	callListPids        int32 = 1 // PROC_INFO_CALL_LISTPIDS
	callPidInfo         int32 = 2 // PROC_INFO_CALL_PIDINFO
	callPidFdInfo       int32 = 3 // PROC_INFO_CALL_PIDFDINFO
	callPidFileportInfo int32 = 6 // PROC_INFO_CALL_PIDFILEPORTINFO
	callPidRusage       int32 = 9 // PROC_INFO_CALL_PIDRUSAGE
)

// procInfoFunc is the kernel boundary: one proc_info invocation. buf may be
// nil for size probes. The reply is the number of bytes the kernel wrote
// (or, for list probes, its size hint); a failed call reports errno through
// err and never writes the buffer.
//
// The real implementation and its non-darwin stub assign procInfoImpl in
// build-tagged files; tests substitute a synthetic kernel.
type procInfoFunc func(call int32, pid Pid, flavor uint32, arg uint64, buf unsafe.Pointer, size int32) (int32, error)

// fixedQuery runs one exact-size query against a proc_info entry point.
//
// The record is handed to the kernel as raw memory and only returned once
// the reply size proves every byte was written. Fixed flavors have exactly
// one valid reply size, so there is no retry: zero means the flavor has no
// data for this identifier, the exact size means success, and anything else
// is a protocol violation.
func fixedQuery[T any](call int32, name string, pid Pid, flavor uint32, arg uint64) (*T, error) {
	record := new(T)
	size := int32(unsafe.Sizeof(*record))
	n, err := procInfoImpl(call, pid, flavor, arg, unsafe.Pointer(record), size)
	if err != nil {
		return nil, osError(name, err)
	}
	switch n {
	case 0:
		return nil, nil
	case size:
		return record, nil
	default:
		return nil, fmt.Errorf("%w: %s flavor %d replied %d bytes, want %d", ErrMalformed, name, flavor, n, size)
	}
}

// PidInfo fetches the fixed-size record T for a process. It returns
// (nil, nil) when the kernel has no data for T's flavor, for example when
// the flavor does not apply to pid on the running OS version.
func PidInfo[T PidInfoRecord](pid Pid) (*T, error) {
	var zero T
	return fixedQuery[T](callPidInfo, "proc_pidinfo", pid, uint32(zero.pidInfoFlavor()), 0)
}

// PidInfoSelf is PidInfo for the calling process.
func PidInfoSelf[T PidInfoRecord]() (*T, error) {
	return PidInfo[T](CurrentPid())
}

// FdInfo fetches the fixed-size record T for one descriptor of a process.
func FdInfo[T FdInfoRecord](pid Pid, fd Fd) (*T, error) {
	var zero T
	return fixedQuery[T](callPidFdInfo, "proc_pidfdinfo", pid, uint32(zero.fdInfoFlavor()), uint64(uint32(fd)))
}

// FdInfoSelf is FdInfo for the calling process.
func FdInfoSelf[T FdInfoRecord](fd Fd) (*T, error) {
	return FdInfo[T](CurrentPid(), fd)
}

// FileportInfo fetches the fixed-size record T for one fileport of a
// process. Fileports share record shapes and selectors with descriptors.
func FileportInfo[T FdInfoRecord](pid Pid, port FilePort) (*T, error) {
	var zero T
	return fixedQuery[T](callPidFileportInfo, "proc_pidfileportinfo", pid, uint32(zero.fdInfoFlavor()), uint64(port))
}

// FileportInfoSelf is FileportInfo for the calling process.
func FileportInfoSelf[T FdInfoRecord](port FilePort) (*T, error) {
	return FileportInfo[T](CurrentPid(), port)
}
