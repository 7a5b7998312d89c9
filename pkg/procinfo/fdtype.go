package procinfo

// FDType classifies what kind of object a descriptor or fileport refers to.
// Values are the PROX_FDTYPE_* constants from bsd/sys/proc_info.h.
type FDType uint32

const (
	FDTypeAtalk     FDType = 0
	FDTypeVnode     FDType = 1
	FDTypeSocket    FDType = 2
	FDTypePSHM      FDType = 3
	FDTypePSEM      FDType = 4
	FDTypeKqueue    FDType = 5
	FDTypePipe      FDType = 6
	FDTypeFsevents  FDType = 7
	FDTypeNetPolicy FDType = 9
	FDTypeChannel   FDType = 10
	FDTypeNexus     FDType = 11
)

var fdTypeNames = map[FDType]string{
	FDTypeAtalk:     "atalk",
	FDTypeVnode:     "vnode",
	FDTypeSocket:    "socket",
	FDTypePSHM:      "pshm",
	FDTypePSEM:      "psem",
	FDTypeKqueue:    "kqueue",
	FDTypePipe:      "pipe",
	FDTypeFsevents:  "fsevents",
	FDTypeNetPolicy: "netpolicy",
	FDTypeChannel:   "channel",
	FDTypeNexus:     "nexus",
}

func (t FDType) String() string {
	if name, ok := fdTypeNames[t]; ok {
		return name
	}
	return "unknown"
}

// decodeFDType maps a raw tag onto the closed FDType set. A value outside
// the set is reported as *UnknownFDTypeError; it is never conflated with a
// malformed kernel reply.
func decodeFDType(raw uint32) (FDType, error) {
	t := FDType(raw)
	if _, ok := fdTypeNames[t]; !ok {
		return 0, &UnknownFDTypeError{Raw: raw}
	}
	return t, nil
}

// FDType decodes the entry's type tag.
func (f *FDInfo) FDType() (FDType, error) { return decodeFDType(f.Proc_fdtype) }

// FDType decodes the entry's type tag.
func (f *FilePortInfo) FDType() (FDType, error) { return decodeFDType(f.Proc_fdtype) }
