package filesystem

import "time"

// Type enumerates the kinds of entries the filesystem can report.
// Availability of the non-{Unknown,File,Directory,Symlink} values is
// platform-specific; POSIX reports all of them, Windows only the first
// four.
type Type uint8

const (
	TypeUnknown Type = iota
	TypeFile
	TypeDirectory
	TypeSymlink
	TypePipe
	TypeBlockDevice
	TypeCharacterDevice
	TypeSocket
)

// String returns a human-readable name for t.
func (t Type) String() string {
	switch t {
	case TypeFile:
		return "file"
	case TypeDirectory:
		return "directory"
	case TypeSymlink:
		return "symlink"
	case TypePipe:
		return "pipe"
	case TypeBlockDevice:
		return "block device"
	case TypeCharacterDevice:
		return "character device"
	case TypeSocket:
		return "socket"
	default:
		return "unknown"
	}
}

// Permissions holds the nine POSIX permission bits. On Windows these are
// always zero: ACL modeling is out of scope, and POSIX permission bits
// have no faithful Windows equivalent.
type Permissions uint16

const (
	PermUserRead Permissions = 1 << iota
	PermUserWrite
	PermUserExecute
	PermGroupRead
	PermGroupWrite
	PermGroupExecute
	PermOtherRead
	PermOtherWrite
	PermOtherExecute
)

// Has reports whether all bits in mask are set in p.
func (p Permissions) Has(mask Permissions) bool {
	return p&mask == mask
}

// QueryFlags selects which fields of Info a query call is required to
// populate; fields not selected are not guaranteed to be populated.
type QueryFlags uint8

const (
	QueryType QueryFlags = 1 << iota
	QueryPermissions
	QueryID
	QuerySize
	QueryFileTimes
	// QueryDefault requests the commonly-needed subset: type, size, and
	// modification time.
	QueryDefault = QueryType | QuerySize | QueryFileTimes
	// QueryAll requests every field.
	QueryAll = QueryType | QueryPermissions | QueryID | QuerySize | QueryFileTimes
)

// Identity uniquely identifies a filesystem entry within its volume: an
// (inode, device) pair on POSIX, or an (volume serial, file index) pair on
// Windows.
type Identity struct {
	Device uint64
	Inode  uint64
}

// Info is the tagged bundle of filesystem metadata returned by a query.
// Only the fields selected by the QueryFlags passed to the query that
// produced it are guaranteed to be populated.
type Info struct {
	Type        Type
	Size        uint64
	Permissions Permissions
	Identity    Identity

	CreationTime     time.Time
	LastAccessTime   time.Time
	ModificationTime time.Time
	StatusChangeTime time.Time
}

// IsDir reports whether the Info describes a directory.
func (i *Info) IsDir() bool {
	return i.Type == TypeDirectory
}
