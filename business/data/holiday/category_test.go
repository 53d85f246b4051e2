package holiday

import (
	"github.com/matryer/is"
	"reflect"
	"testing"
)

func TestAll_isOrOfNamedCategories(t *testing.T) {
	is := is.New(t)
	var combined Category
	for _, cn := range categoryNames {
		combined |= cn.category
	}
	is.Equal(combined, All)
	is.Equal(len(categoryNames), 14)
	is.Equal(len(All.Categories()), 14)
	is.Equal(uint32(All), uint32(1<<14-1))
}

func TestCategory_Matches(t *testing.T) {
	tests := []struct {
		name     string
		category Category
		mask     Category
		want     bool
	}{
		{name: "single bit in All", category: FoersteJuledag, mask: All, want: true},
		{name: "single bit in itself", category: Grundlovsdag, mask: Grundlovsdag, want: true},
		{name: "single bit in combined mask", category: AndenJuledag, mask: FoersteJuledag | AndenJuledag, want: true},
		{name: "single bit not in other bit", category: FoersteJuledag, mask: Nytaarsdag, want: false},
		{name: "single bit not in empty mask", category: PaaskeSoendag, mask: 0, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.category.Matches(tt.mask); got != tt.want {
				t.Errorf("%v.Matches(%v) = %v, want %v", tt.category, tt.mask, got, tt.want)
			}
		})
	}
}

func TestCategory_String(t *testing.T) {
	tests := []struct {
		category Category
		want     string
	}{
		{category: Juleaftensdag, want: "Juleaftensdag"},
		{category: KristiHimmelfartsdag, want: "KristiHimmelfartsdag"},
		{category: Grundlovsdag, want: "Grundlovsdag"},
		{category: All, want: "ALL"},
		{category: FoersteJuledag | AndenJuledag, want: "FoersteJuledag|AndenJuledag"},
		{category: Nytaarsdag | 1<<20, want: "Nytaarsdag|0x100000"},
		{category: 0, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.category.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseMask(t *testing.T) {
	tests := []struct {
		name    string
		give    string
		want    Category
		wantErr bool
	}{
		{name: "empty is All", give: "", want: All},
		{name: "ALL", give: "all", want: All},
		{name: "single name", give: "Nytaarsdag", want: Nytaarsdag},
		{name: "names ignore case and spaces", give: "foerstejuledag, AndenJuledag", want: FoersteJuledag | AndenJuledag},
		{name: "decimal mask", give: "3", want: Juleaftensdag | FoersteJuledag},
		{name: "zero mask", give: "0", want: 0},
		{name: "unknown name", give: "Halloween", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMask(tt.give)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseMask(%q) produced no error, but we want one", tt.give)
				}
				return
			} else if err != nil {
				t.Errorf("ParseMask(%q) error = %v", tt.give, err)
				return
			}
			if got != tt.want {
				t.Errorf("ParseMask(%q) = %v, want %v", tt.give, got, tt.want)
			}
		})
	}
}

func TestCategory_Categories(t *testing.T) {
	got := (PinseSoendag | Juleaftensdag | AndenPinsedag).Categories()
	want := []Category{Juleaftensdag, PinseSoendag, AndenPinsedag}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Categories() = %v, want %v", got, want)
	}
}

func Test_combineMasks(t *testing.T) {
	is := is.New(t)
	is.Equal(combineMasks(nil), All)
	is.Equal(combineMasks([]Category{0}), Category(0))
	is.Equal(combineMasks([]Category{Nytaarsdag, Nytaarsaften}), Nytaarsdag|Nytaarsaften)
}
