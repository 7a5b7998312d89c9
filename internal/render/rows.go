package render

import (
	"fmt"

	"github.com/mmastrac/proc-pidinfo/pkg/procinfo"
)

// Row is one descriptor or fileport, ready to print.
type Row struct {
	ID     string
	Kind   string
	Detail string
}

// FDRows lists a process's open descriptors and resolves per-kind detail:
// vnodes to their backing path, pipes to their handle pair. Detail queries
// race against the process closing descriptors, so an entry that vanishes
// mid-walk keeps its row with an empty detail rather than failing the walk.
func FDRows(pid procinfo.Pid) ([]Row, error) {
	fds, err := procinfo.ListInfo[procinfo.FDInfo](pid)
	if err != nil {
		return nil, err
	}
	rows := make([]Row, 0, len(fds))
	for _, fd := range fds {
		row := Row{
			ID:   fmt.Sprintf("%d", fd.Proc_fd),
			Kind: fdKind(fd.Proc_fdtype),
		}
		switch kind, _ := fd.FDType(); kind {
		case procinfo.FDTypeVnode:
			if detail, err := procinfo.FdInfo[procinfo.VnodeFDInfoWithPath](pid, fd.Proc_fd); err == nil && detail != nil {
				row.Detail = Clean(detail.Path())
			}
		case procinfo.FDTypePipe:
			if detail, err := procinfo.FdInfo[procinfo.PipeFDInfo](pid, fd.Proc_fd); err == nil && detail != nil {
				row.Detail = fmt.Sprintf("handle %#x peer %#x", detail.Pipe_info.Pipe_handle, detail.Pipe_info.Pipe_peerhandle)
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// FileportRows is FDRows for the process's fileport table.
func FileportRows(pid procinfo.Pid) ([]Row, error) {
	ports, err := procinfo.ListInfo[procinfo.FilePortInfo](pid)
	if err != nil {
		return nil, err
	}
	rows := make([]Row, 0, len(ports))
	for _, port := range ports {
		row := Row{
			ID:   fmt.Sprintf("%#x", uint32(port.Proc_fileport)),
			Kind: fdKind(port.Proc_fdtype),
		}
		if kind, _ := port.FDType(); kind == procinfo.FDTypeVnode {
			if detail, err := procinfo.FileportInfo[procinfo.VnodeFDInfoWithPath](pid, port.Proc_fileport); err == nil && detail != nil {
				row.Detail = Clean(detail.Path())
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// fdKind labels a raw descriptor tag, keeping unknown values visible
// instead of dropping the entry.
func fdKind(raw uint32) string {
	entry := procinfo.FDInfo{Proc_fdtype: raw}
	kind, err := entry.FDType()
	if err != nil {
		return fmt.Sprintf("fdtype-%d", raw)
	}
	return kind.String()
}
