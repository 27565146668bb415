package naming

import (
	"testing"

	"github.com/containerd/errdefs"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		ok   bool
	}{
		{"givenName", true},
		{"a", true},
		{"yearOfBirth", true},
		{"address2", true},
		{"", false},
		{"GivenName", false},
		{"given_name", false},
		{"given name", false},
		{"2fast", false},
		{"naïve", false},
		{"get-name", false},
	}

	for _, tt := range tests {
		err := Validate(tt.name)
		if tt.ok && err != nil {
			t.Fatalf("Validate(%q): unexpected error: %v", tt.name, err)
		}
		if !tt.ok {
			if err == nil {
				t.Fatalf("Validate(%q): expected error", tt.name)
			}
			if !errdefs.IsInvalidArgument(err) {
				t.Fatalf("Validate(%q): expected invalid-argument classification, got %v", tt.name, err)
			}
		}
	}
}

func TestAccessorNames(t *testing.T) {
	tests := []struct {
		field  string
		getter string
		setter string
	}{
		{"familyName", "getFamilyName", "setFamilyName"},
		{"age", "getAge", "setAge"},
		{"postalAddress", "getPostalAddress", "setPostalAddress"},
		{"a", "getA", "setA"},
	}

	for _, tt := range tests {
		if got := Getter(tt.field); got != tt.getter {
			t.Fatalf("Getter(%q): expected %q, got %q", tt.field, tt.getter, got)
		}
		if got := Setter(tt.field); got != tt.setter {
			t.Fatalf("Setter(%q): expected %q, got %q", tt.field, tt.setter, got)
		}
	}
}
