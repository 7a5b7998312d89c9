package procinfo

import "os"

// Pid identifies an OS process. The zero value is the kernel's sentinel
// non-process; whether a Pid refers to a live process is only ever decided
// by the kernel at query time.
type Pid int32

// Fd is a file descriptor number, meaningful only together with the Pid of
// the process whose descriptor table it indexes.
type Fd int32

// FilePort is a Mach fileport handle referencing an open file-like resource,
// meaningful only together with a Pid.
type FilePort uint32

// CurrentPid returns the Pid of the calling process.
func CurrentPid() Pid {
	return Pid(os.Getpid())
}
