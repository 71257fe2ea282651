package s3

import "testing"

func TestNewS3(t *testing.T) {
	src, err := NewS3("127.0.0.1:9000", "listings", "access", "secret", false)
	if err != nil {
		t.Fatalf("NewS3 failed: %v", err)
	}

	if src.Name() != "s3" {
		t.Errorf("Name() = %q", src.Name())
	}
	if src.bucket != "listings" {
		t.Errorf("bucket = %q", src.bucket)
	}
}

func TestCleanKey(t *testing.T) {
	for _, tc := range []struct {
		target, expected string
	}{
		{"", ""},
		{"/", ""},
		{"docs/readme.md", "docs/readme.md"},
		{"/docs//readme.md", "docs/readme.md"},
		{"docs/../logs", "logs"},
	} {
		if got := cleanKey(tc.target); got != tc.expected {
			t.Errorf("cleanKey(%q) = %q, expected %q", tc.target, got, tc.expected)
		}
	}
}
