package fontreg

import "testing"

func TestNamespacedName(t *testing.T) {
	tests := []struct {
		session, name, want string
	}{
		{"abc", "Foo", "abc-Foo"},
		{"abc", "Open Sans", "abc-Open Sans"},
		{"00000000", "x", "00000000-x"},
	}
	for _, tt := range tests {
		if got := namespacedName(tt.session, tt.name); got != tt.want {
			t.Errorf("namespacedName(%q, %q) = %q, want %q", tt.session, tt.name, got, tt.want)
		}
	}
}
