// Package holiday provides derivation and lookup of Danish public holidays
package holiday

import (
	"fmt"
	"strconv"
	"strings"
)

// Category is a bit flag identifying one kind of Danish holiday. Categories may be combined with bitwise OR
// to form a mask for filtering queries.
type Category uint32

const (
	Juleaftensdag Category = 1 << iota
	FoersteJuledag
	AndenJuledag
	Nytaarsaften
	Nytaarsdag
	SkaerTorsdag
	LangFredag
	PaaskeSoendag
	AndenPaaskedag
	StoreBededag
	KristiHimmelfartsdag
	PinseSoendag
	AndenPinsedag
	Grundlovsdag

	// All matches every named category
	All = Juleaftensdag | FoersteJuledag | AndenJuledag | Nytaarsaften | Nytaarsdag | SkaerTorsdag |
		LangFredag | PaaskeSoendag | AndenPaaskedag | StoreBededag | KristiHimmelfartsdag | PinseSoendag |
		AndenPinsedag | Grundlovsdag
)

// categoryNames holds the canonical name of every single bit category, in bit order
var categoryNames = []struct {
	category Category
	name     string
}{
	{Juleaftensdag, "Juleaftensdag"},
	{FoersteJuledag, "FoersteJuledag"},
	{AndenJuledag, "AndenJuledag"},
	{Nytaarsaften, "Nytaarsaften"},
	{Nytaarsdag, "Nytaarsdag"},
	{SkaerTorsdag, "SkaerTorsdag"},
	{LangFredag, "LangFredag"},
	{PaaskeSoendag, "PaaskeSoendag"},
	{AndenPaaskedag, "AndenPaaskedag"},
	{StoreBededag, "StoreBededag"},
	{KristiHimmelfartsdag, "KristiHimmelfartsdag"},
	{PinseSoendag, "PinseSoendag"},
	{AndenPinsedag, "AndenPinsedag"},
	{Grundlovsdag, "Grundlovsdag"},
}

// String returns the canonical name of a single category, "ALL" for All, and a "|" separated list of names
// for any other combination of bits
func (c Category) String() string {
	if c == All {
		return "ALL"
	}
	for _, cn := range categoryNames {
		if cn.category == c {
			return cn.name
		}
	}
	parts := make([]string, 0)
	for _, single := range c.Categories() {
		parts = append(parts, single.String())
	}
	if unknown := c &^ All; unknown != 0 {
		parts = append(parts, fmt.Sprintf("0x%x", uint32(unknown)))
	}
	return strings.Join(parts, "|")
}

// Matches reports whether c is fully contained in mask
func (c Category) Matches(mask Category) bool {
	return c&mask == c
}

// Categories splits c into its named single bit categories, in bit order
func (c Category) Categories() []Category {
	results := make([]Category, 0)
	for _, cn := range categoryNames {
		if c&cn.category != 0 {
			results = append(results, cn.category)
		}
	}
	return results
}

// ParseCategory finds the category with name, ignoring case
func ParseCategory(name string) (Category, error) {
	name = strings.TrimSpace(name)
	if strings.EqualFold(name, "ALL") {
		return All, nil
	}
	for _, cn := range categoryNames {
		if strings.EqualFold(cn.name, name) {
			return cn.category, nil
		}
	}
	return 0, fmt.Errorf("unknown holiday category %q", name)
}

// ParseMask builds a mask from a comma separated list of category names, or from a decimal mask value.
// An empty string produces All.
func ParseMask(s string) (Category, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return All, nil
	}
	if value, err := strconv.ParseUint(s, 10, 32); err == nil {
		return Category(value), nil
	}
	var mask Category
	for _, name := range strings.Split(s, ",") {
		category, err := ParseCategory(name)
		if err != nil {
			return 0, err
		}
		mask |= category
	}
	return mask, nil
}

// combineMasks ORs masks together, no masks at all means All
func combineMasks(masks []Category) Category {
	if len(masks) == 0 {
		return All
	}
	var mask Category
	for _, m := range masks {
		mask |= m
	}
	return mask
}
