package data

// FileMode represents raw Unix-style file mode bits: type bits in the
// S_IFMT range, the setuid/setgid/sticky special bits and the lower
// nine permission bits.
type FileMode uint32

// File mode constants matching Unix stat(2) semantics.
const (
	// Type bits (S_IFMT mask)
	TypeMask      FileMode = 0170000
	TypeSocket    FileMode = 0140000 // s: Unix domain socket
	TypeSymlink   FileMode = 0120000 // l: symbolic link
	TypeRegular   FileMode = 0100000 // -: regular file
	TypeBlockDev  FileMode = 0060000 // b: block device
	TypeDir       FileMode = 0040000 // d: directory
	TypeCharDev   FileMode = 0020000 // c: character device
	TypeNamedPipe FileMode = 0010000 // p: named pipe (FIFO)

	// Special bits
	ModeSetuid FileMode = 04000
	ModeSetgid FileMode = 02000
	ModeSticky FileMode = 01000

	// Permission bits
	ModePerm FileMode = 0777
)

// rwx strings for a single permission triad, indexed by its 3-bit value.
var triads = [8]string{"---", "--x", "-w-", "-wx", "r--", "r-x", "rw-", "rwx"}

// DecodeTriad maps a 3-bit permission value to its rwx string.
// Values outside 0-7 are a contract violation on the caller's side and
// decode to "???" so rendering stays total.
func DecodeTriad(bits uint32) string {
	if bits > 7 {
		return "???"
	}
	return triads[bits]
}

// IsDir reports whether m describes a directory.
func (m FileMode) IsDir() bool {
	return m&TypeMask == TypeDir
}

// IsSymlink reports whether m describes a symbolic link.
func (m FileMode) IsSymlink() bool {
	return m&TypeMask == TypeSymlink
}

// IsRegular reports whether m describes a regular file.
// A zero type is treated as regular so virtual sources can omit it.
func (m FileMode) IsRegular() bool {
	t := m & TypeMask
	return t == TypeRegular || t == 0
}

// Perm returns the Unix permission bits in m (the lower 9 bits).
func (m FileMode) Perm() FileMode {
	return m & ModePerm
}

// TypeChar returns the single type character used as the first column
// of a long listing.
func (m FileMode) TypeChar() byte {
	switch m & TypeMask {
	case TypeDir:
		return 'd'
	case TypeSymlink:
		return 'l'
	case TypeCharDev:
		return 'c'
	case TypeBlockDev:
		return 'b'
	case TypeNamedPipe:
		return 'p'
	case TypeSocket:
		return 's'
	default:
		return '-'
	}
}

// PermString returns the nine-character rwx representation of m,
// with the setuid/setgid/sticky bits folded into the executable slot
// of their triad (s/S, s/S and t/T respectively).
func (m FileMode) PermString() string {
	b := []byte(DecodeTriad(uint32(m>>6)&7) + DecodeTriad(uint32(m>>3)&7) + DecodeTriad(uint32(m)&7))

	if m&ModeSetuid != 0 {
		b[2] = patchExec(b[2], 's', 'S')
	}
	if m&ModeSetgid != 0 {
		b[5] = patchExec(b[5], 's', 'S')
	}
	if m&ModeSticky != 0 {
		b[8] = patchExec(b[8], 't', 'T')
	}

	return string(b)
}

// String returns the full ten-character mode string in ls -l format.
// Example: "drwxr-xr-x" for a directory with 755 permissions.
func (m FileMode) String() string {
	return string(m.TypeChar()) + m.PermString()
}

// patchExec replaces an executable slot: lowercase when the underlying
// x bit was set, uppercase when it was not.
func patchExec(c, lower, upper byte) byte {
	if c == 'x' {
		return lower
	}
	return upper
}
