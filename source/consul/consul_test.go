package consul

import "testing"

func TestNewConsul_Defaults(t *testing.T) {
	src, err := NewConsul(nil)
	if err != nil {
		t.Fatalf("NewConsul failed: %v", err)
	}

	if src.config.Address != "127.0.0.1:8500" {
		t.Errorf("address = %q", src.config.Address)
	}
	if src.config.Owner != "consul" || src.config.Group != "consul" {
		t.Errorf("ownership = %q:%q", src.config.Owner, src.config.Group)
	}
	if src.Name() != "consul" {
		t.Errorf("Name() = %q", src.Name())
	}
}

func TestConsulSource_ResolveKey(t *testing.T) {
	src, err := NewConsul(&ConsulSourceConfig{Prefix: "vls/data"})
	if err != nil {
		t.Fatalf("NewConsul failed: %v", err)
	}

	for _, tc := range []struct {
		target, expected string
	}{
		{"", "vls/data"},
		{"/", "vls/data"},
		{"etc/hosts", "vls/data/etc/hosts"},
		{"/etc/../etc/hosts", "vls/data/etc/hosts"},
	} {
		if got := src.resolveKey(tc.target); got != tc.expected {
			t.Errorf("resolveKey(%q) = %q, expected %q", tc.target, got, tc.expected)
		}
	}
}
