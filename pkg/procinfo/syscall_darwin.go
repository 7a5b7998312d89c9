//go:build darwin

package procinfo

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

var procInfoImpl procInfoFunc = rawProcInfo

// rawProcInfo issues the proc_info syscall through the libSystem trampoline.
// No cgo: the sing-box/mihomo lineage of tools reaches libproc the same way.
func rawProcInfo(call int32, pid Pid, flavor uint32, arg uint64, buf unsafe.Pointer, size int32) (int32, error) {
	r1, _, errno := unix.Syscall6(
		unix.SYS_PROC_INFO,
		uintptr(call),
		uintptr(pid),
		uintptr(flavor),
		uintptr(arg),
		uintptr(buf),
		uintptr(size),
	)
	if errno != 0 {
		return 0, errno
	}
	return int32(r1), nil
}
