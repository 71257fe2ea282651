package data

import (
	"fmt"
	"testing"
)

func TestDecodeTriad(t *testing.T) {
	expected := [8]string{"---", "--x", "-w-", "-wx", "r--", "r-x", "rw-", "rwx"}

	for bits := uint32(0); bits < 8; bits++ {
		if got := DecodeTriad(bits); got != expected[bits] {
			t.Errorf("DecodeTriad(%d) = %q, expected %q", bits, got, expected[bits])
		}
	}

	// Out-of-range input must not panic and must stay renderable
	if got := DecodeTriad(8); got != "???" {
		t.Errorf("DecodeTriad(8) = %q, expected ???", got)
	}
	if got := DecodeTriad(255); got != "???" {
		t.Errorf("DecodeTriad(255) = %q, expected ???", got)
	}
}

func TestFileMode_PermString(t *testing.T) {
	// Every triad value in every position maps through the fixed table
	for user := FileMode(0); user < 8; user++ {
		for group := FileMode(0); group < 8; group++ {
			for other := FileMode(0); other < 8; other++ {
				mode := user<<6 | group<<3 | other
				expected := triads[user] + triads[group] + triads[other]
				if got := mode.PermString(); got != expected {
					t.Fatalf("PermString(%04o) = %q, expected %q", uint32(mode), got, expected)
				}
			}
		}
	}
}

func TestFileMode_PermString_SpecialBits(t *testing.T) {
	tests := []struct {
		mode     FileMode
		expected string
	}{
		// setuid: user exec slot becomes s (x set) or S (x clear)
		{ModeSetuid | 0755, "rwsr-xr-x"},
		{ModeSetuid | 0644, "rwSr--r--"},
		// setgid: group exec slot becomes s/S
		{ModeSetgid | 0755, "rwxr-sr-x"},
		{ModeSetgid | 0644, "rw-r-Sr--"},
		// sticky: other exec slot becomes t/T
		{ModeSticky | 0777, "rwxrwxrwt"},
		{ModeSticky | 0666, "rw-rw-rwT"},
		// all three at once
		{ModeSetuid | ModeSetgid | ModeSticky | 0777, "rwsrwsrwt"},
		{ModeSetuid | ModeSetgid | ModeSticky | 0000, "--S--S--T"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%07o", uint32(tt.mode)), func(t *testing.T) {
			if got := tt.mode.PermString(); got != tt.expected {
				t.Errorf("PermString(%07o) = %q, expected %q", uint32(tt.mode), got, tt.expected)
			}
		})
	}
}

func TestFileMode_TypeChar(t *testing.T) {
	tests := []struct {
		mode     FileMode
		expected byte
	}{
		{TypeDir | 0755, 'd'},
		{TypeSymlink | 0777, 'l'},
		{TypeRegular | 0644, '-'},
		{TypeCharDev | 0620, 'c'},
		{TypeBlockDev | 0660, 'b'},
		{TypeNamedPipe | 0644, 'p'},
		{TypeSocket | 0755, 's'},
		{0644, '-'}, // untyped defaults to regular
	}

	for _, tt := range tests {
		if got := tt.mode.TypeChar(); got != tt.expected {
			t.Errorf("TypeChar(%07o) = %c, expected %c", uint32(tt.mode), got, tt.expected)
		}
	}
}

func TestFileMode_String(t *testing.T) {
	tests := []struct {
		mode     FileMode
		expected string
	}{
		{TypeDir | 0755, "drwxr-xr-x"},
		{TypeRegular | 0644, "-rw-r--r--"},
		{TypeSymlink | 0777, "lrwxrwxrwx"},
		{TypeDir | ModeSticky | 0777, "drwxrwxrwt"},
		{TypeRegular | ModeSetuid | 0755, "-rwsr-xr-x"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.mode.String(); got != tt.expected {
				t.Errorf("String(%07o) = %q, expected %q", uint32(tt.mode), got, tt.expected)
			}
		})
	}
}

func TestFileMode_Predicates(t *testing.T) {
	dir := TypeDir | 0755
	if !dir.IsDir() || dir.IsSymlink() || dir.IsRegular() {
		t.Error("directory predicates incorrect")
	}

	link := TypeSymlink | 0777
	if !link.IsSymlink() || link.IsDir() || link.IsRegular() {
		t.Error("symlink predicates incorrect")
	}

	file := TypeRegular | 0644
	if !file.IsRegular() || file.IsDir() || file.IsSymlink() {
		t.Error("regular file predicates incorrect")
	}

	if perm := (TypeDir | ModeSetgid | 0750).Perm(); perm != 0750 {
		t.Errorf("Perm() = %04o, expected 0750", uint32(perm))
	}
}
