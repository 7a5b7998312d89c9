//go:build !darwin

package procinfo

import (
	"errors"
	"unsafe"
)

// proc_info exists only on Darwin. The stub keeps the package compiling
// elsewhere so dependents can build cross-platform binaries.
var procInfoImpl procInfoFunc = func(call int32, pid Pid, flavor uint32, arg uint64, buf unsafe.Pointer, size int32) (int32, error) {
	return 0, errors.ErrUnsupported
}
