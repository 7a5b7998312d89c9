package procinfo

// Record layouts mirror XNU bsd/sys/proc_info.h and bsd/sys/resource.h
// field for field. Sizes and offsets are load-bearing: the fixed-size query
// engine only accepts a kernel reply that fills a record exactly, so a
// drifted layout turns into ErrMalformed rather than silent corruption.
// See TestRecordSizes for the expected byte sizes.

const (
	maxComLen  = 16   // MAXCOMLEN
	maxPathLen = 1024 // MAXPATHLEN
)

// TaskInfo reports Mach task statistics (memory, scheduling, syscall
// counters) for a process. PROC_PIDTASKINFO.
type TaskInfo struct {
	Pti_virtual_size      uint64
	Pti_resident_size     uint64
	Pti_total_user        uint64
	Pti_total_system      uint64
	Pti_threads_user      uint64
	Pti_threads_system    uint64
	Pti_policy            int32
	Pti_faults            int32
	Pti_pageins           int32
	Pti_cow_faults        int32
	Pti_messages_sent     int32
	Pti_messages_received int32
	Pti_syscalls_mach     int32
	Pti_syscalls_unix     int32
	Pti_csw               int32
	Pti_threadnum         int32
	Pti_numrunning        int32
	Pti_priority          int32
}

// BSDInfo reports BSD-level process state. PROC_PIDTBSDINFO.
//
// For some processes BSDInfo is unavailable while BSDShortInfo still works.
type BSDInfo struct {
	Pbi_flags        uint32
	Pbi_status       uint32
	Pbi_xstatus      uint32
	Pbi_pid          uint32
	Pbi_ppid         uint32
	Pbi_uid          uint32
	Pbi_gid          uint32
	Pbi_ruid         uint32
	Pbi_rgid         uint32
	Pbi_svuid        uint32
	Pbi_svgid        uint32
	Rfu_1            uint32
	Pbi_comm         [maxComLen]byte
	Pbi_name         [2 * maxComLen]byte
	Pbi_nfiles       uint32
	Pbi_pgid         uint32
	Pbi_pjobc        uint32
	E_tdev           uint32
	E_tpgid          uint32
	Pbi_nice         int32
	Pbi_start_tvsec  uint64
	Pbi_start_tvusec uint64
}

// Comm returns the short command name, decoded as UTF-8.
func (b *BSDInfo) Comm() (string, error) { return textField(b.Pbi_comm[:]) }

// Name returns the long process name, decoded as UTF-8.
func (b *BSDInfo) Name() (string, error) { return textField(b.Pbi_name[:]) }

// BSDShortInfo is the abbreviated form of BSDInfo. PROC_PIDT_SHORTBSDINFO.
type BSDShortInfo struct {
	Pbsi_pid    uint32
	Pbsi_ppid   uint32
	Pbsi_pgid   uint32
	Pbsi_status uint32
	Pbsi_comm   [maxComLen]byte
	Pbsi_flags  uint32
	Pbsi_uid    uint32
	Pbsi_gid    uint32
	Pbsi_ruid   uint32
	Pbsi_rgid   uint32
	Pbsi_svuid  uint32
	Pbsi_svgid  uint32
	Pbsi_rfu    uint32
}

// Comm returns the short command name, decoded as UTF-8.
func (b *BSDShortInfo) Comm() (string, error) { return textField(b.Pbsi_comm[:]) }

// TaskAllInfo combines BSDInfo and TaskInfo in one query.
// PROC_PIDTASKALLINFO.
type TaskAllInfo struct {
	Pbsd   BSDInfo
	Ptinfo TaskInfo
}

// FDInfo is one entry of a process's open descriptor table, served as a
// list by PROC_PIDLISTFDS. The type tag is decoded with FDType.
type FDInfo struct {
	Proc_fd     Fd
	Proc_fdtype uint32
}

// FilePortInfo is one entry of a process's fileport table, served as a list
// by PROC_PIDLISTFILEPORTS. The type tag is decoded with FDType.
type FilePortInfo struct {
	Proc_fileport FilePort
	Proc_fdtype   uint32
}

// FileInfo is the descriptor-level prefix common to the per-fd detail
// records (open flags, offset, guard state).
type FileInfo struct {
	Fi_openflags  uint32
	Fi_status     uint32
	Fi_offset     int64
	Fi_type       int32
	Fi_guardflags uint32
}

// VinfoStat is the stat-shaped block embedded in vnode and pipe records.
type VinfoStat struct {
	Vst_dev           uint32
	Vst_mode          uint16
	Vst_nlink         uint16
	Vst_ino           uint64
	Vst_uid           uint32
	Vst_gid           uint32
	Vst_atime         int64
	Vst_atimensec     int64
	Vst_mtime         int64
	Vst_mtimensec     int64
	Vst_ctime         int64
	Vst_ctimensec     int64
	Vst_birthtime     int64
	Vst_birthtimensec int64
	Vst_size          int64
	Vst_blocks        int64
	Vst_blksize       int32
	Vst_flags         uint32
	Vst_gen           uint32
	Vst_rdev          uint32
	Vst_qspare        [2]int64
}

// VnodeInfo describes the filesystem object backing a descriptor.
type VnodeInfo struct {
	Vi_stat VinfoStat
	Vi_type int32
	Vi_pad  int32
	Vi_fsid [2]int32
}

// VnodeInfoPath is a VnodeInfo plus the object's path. The path buffer is
// kernel-filled and not guaranteed to be NUL terminated when full.
type VnodeInfoPath struct {
	Vip_vi   VnodeInfo
	Vip_path [maxPathLen]byte
}

// Path returns the vnode path. Paths are arbitrary byte sequences on disk,
// so no encoding validation is applied.
func (v *VnodeInfoPath) Path() string { return pathField(v.Vip_path[:]) }

// VnodeFDInfo is the detail record for FDTypeVnode descriptors.
// PROC_PIDFDVNODEINFO.
type VnodeFDInfo struct {
	Pfi FileInfo
	Pvi VnodeInfo
}

// VnodeFDInfoWithPath is VnodeFDInfo plus the backing path.
// PROC_PIDFDVNODEPATHINFO.
type VnodeFDInfoWithPath struct {
	Pfi  FileInfo
	Pvip VnodeInfoPath
}

// Path returns the path of the file backing the descriptor.
func (v *VnodeFDInfoWithPath) Path() string { return v.Pvip.Path() }

// PipeInfo describes a pipe endpoint.
type PipeInfo struct {
	Pipe_stat       VinfoStat
	Pipe_handle     uint64
	Pipe_peerhandle uint64
	Pipe_status     int32
	Rfu_1           int32
}

// PipeFDInfo is the detail record for FDTypePipe descriptors.
// PROC_PIDFDPIPEINFO.
type PipeFDInfo struct {
	Pfi       FileInfo
	Pipe_info PipeInfo
}

// RusageInfoV4 is the resource usage snapshot filled by PidRusage.
// RUSAGE_INFO_V4 from bsd/sys/resource.h.
type RusageInfoV4 struct {
	Ri_uuid                          [16]byte
	Ri_user_time                     uint64
	Ri_system_time                   uint64
	Ri_pkg_idle_wkups                uint64
	Ri_interrupt_wkups               uint64
	Ri_pageins                       uint64
	Ri_wired_size                    uint64
	Ri_resident_size                 uint64
	Ri_phys_footprint                uint64
	Ri_proc_start_abstime            uint64
	Ri_proc_exit_abstime             uint64
	Ri_child_user_time               uint64
	Ri_child_system_time             uint64
	Ri_child_pkg_idle_wkups          uint64
	Ri_child_interrupt_wkups         uint64
	Ri_child_pageins                 uint64
	Ri_child_elapsed_abstime         uint64
	Ri_diskio_bytesread              uint64
	Ri_diskio_byteswritten           uint64
	Ri_cpu_time_qos_default          uint64
	Ri_cpu_time_qos_maintenance      uint64
	Ri_cpu_time_qos_background       uint64
	Ri_cpu_time_qos_utility          uint64
	Ri_cpu_time_qos_legacy           uint64
	Ri_cpu_time_qos_user_initiated   uint64
	Ri_cpu_time_qos_user_interactive uint64
	Ri_billed_system_time            uint64
	Ri_serviced_system_time          uint64
	Ri_logical_writes                uint64
	Ri_lifetime_max_phys_footprint   uint64
	Ri_instructions                  uint64
	Ri_cycles                        uint64
	Ri_billed_energy                 uint64
	Ri_serviced_energy               uint64
	Ri_interval_max_phys_footprint   uint64
	Ri_runnable_time                 uint64
}
