package render

import "testing"

func TestPropertyBindingType_Names(t *testing.T) {
	tests := []struct {
		typ  PropertyBindingType
		name string
	}{
		{PropertyBindingProperty, "property"},
		{PropertyBindingAttribute, "attribute"},
		{PropertyBindingClass, "class"},
		{PropertyBindingStyle, "style"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.typ.String(); got != tt.name {
				t.Errorf("String() = %q, want %q", got, tt.name)
			}
			got, ok := ParsePropertyBindingType(tt.name)
			if !ok || got != tt.typ {
				t.Errorf("ParsePropertyBindingType(%q) = %v, %v", tt.name, got, ok)
			}
		})
	}
}

func TestPropertyBindingType_Unknown(t *testing.T) {
	if got := PropertyBindingType(17).String(); got != "unknown" {
		t.Errorf("String() = %q, want unknown", got)
	}
	if _, ok := ParsePropertyBindingType("Property"); ok {
		t.Error("names are case sensitive")
	}
}
