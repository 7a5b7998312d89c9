// Package procinfo is a typed Go interface to the Darwin proc_info kernel
// facility: proc_pidinfo(2), proc_pidfdinfo(2) and proc_pidfileportinfo(2).
//
// Each query asks the kernel to fill a caller-supplied buffer with a
// flavor-specific binary record. The flavor is bound to the record type at
// compile time, so a query is just a type parameter and an identifier:
//
//	info, err := procinfo.PidInfoSelf[procinfo.BSDShortInfo]()
//
// Fixed-size queries (PidInfo, FdInfo, FileportInfo) either return a fully
// initialized record, or nil when the kernel reports no data for that flavor,
// or an error. List queries (ListInfo) return a slice whose length is decided
// by live process state; the kernel cannot report "more data than fits"
// except by filling the buffer completely, so ListInfo grows and retries
// until a response comes back strictly smaller than the buffer.
//
// String-like fields inside the records are fixed-size byte arrays that are
// not guaranteed to be NUL terminated. They are exposed through accessor
// methods (Comm, Name, Path) rather than interpreted implicitly.
//
// Everything here is a thin, stateless wrapper over single syscalls; queries
// are safe to issue from any number of goroutines concurrently. Only Darwin
// is supported; on other platforms every query returns errors.ErrUnsupported.
package procinfo
