package procinfo

// Flavors select which record shape a proc_info query produces. The three
// entry points have disjoint selector namespaces; the fileport entry point
// reuses the proc_pidinfo namespace. Values are from XNU bsd/sys/proc_info.h
// and are ABI, not configuration.
type pidFlavor int32

const (
	flavorListFDs       pidFlavor = 1  // PROC_PIDLISTFDS
	flavorTaskAllInfo   pidFlavor = 2  // PROC_PIDTASKALLINFO
	flavorTBSDInfo      pidFlavor = 3  // PROC_PIDTBSDINFO
	flavorTaskInfo      pidFlavor = 4  // PROC_PIDTASKINFO
	flavorPathInfo      pidFlavor = 11 // PROC_PIDPATHINFO
	flavorShortBSDInfo  pidFlavor = 13 // PROC_PIDT_SHORTBSDINFO
	flavorListFileports pidFlavor = 14 // PROC_PIDLISTFILEPORTS
)

type fdFlavor int32

const (
	fdFlavorVnode     fdFlavor = 1 // PROC_PIDFDVNODEINFO
	fdFlavorVnodePath fdFlavor = 2 // PROC_PIDFDVNODEPATHINFO
	fdFlavorSocket    fdFlavor = 3 // PROC_PIDFDSOCKETINFO
	fdFlavorPipe      fdFlavor = 6 // PROC_PIDFDPIPEINFO
)

// PidInfoRecord is the sealed set of fixed-size records served by
// proc_pidinfo. Each record type binds its flavor exactly once, at compile
// time; adding a record means adding one type and one method, nothing else.
type PidInfoRecord interface {
	pidInfoFlavor() pidFlavor
}

// FdInfoRecord is the sealed set of fixed-size records served by
// proc_pidfdinfo and proc_pidfileportinfo (the two entry points share
// record shapes and selectors).
type FdInfoRecord interface {
	fdInfoFlavor() fdFlavor
}

// ListRecord is the sealed set of records served as variable-length arrays
// by proc_pidinfo.
type ListRecord interface {
	listInfoFlavor() pidFlavor
}

func (TaskInfo) pidInfoFlavor() pidFlavor     { return flavorTaskInfo }
func (TaskAllInfo) pidInfoFlavor() pidFlavor  { return flavorTaskAllInfo }
func (BSDInfo) pidInfoFlavor() pidFlavor      { return flavorTBSDInfo }
func (BSDShortInfo) pidInfoFlavor() pidFlavor { return flavorShortBSDInfo }

func (VnodeFDInfo) fdInfoFlavor() fdFlavor         { return fdFlavorVnode }
func (VnodeFDInfoWithPath) fdInfoFlavor() fdFlavor { return fdFlavorVnodePath }
func (PipeFDInfo) fdInfoFlavor() fdFlavor          { return fdFlavorPipe }

func (FDInfo) listInfoFlavor() pidFlavor       { return flavorListFDs }
func (FilePortInfo) listInfoFlavor() pidFlavor { return flavorListFileports }
