// Package i18n maps a language code to a typed bundle of pre-translated
// strings used to build alert and pest advisory text.
package i18n

import (
	"errors"
	"fmt"
	"strings"
)

// Language is a short language code such as "en" or "hi"
type Language string

const (
	EN Language = "en"
	HI Language = "hi"
	MR Language = "mr"
)

// Default is used whenever a requested language has no bundle
const Default = EN

// AlertText holds the strings for one weather alert type.
//
// Message is a fmt format using explicit argument indexes so translations
// can reorder them. The arguments are documented on each Bundle field.
type AlertText struct {
	Title          string
	Message        string
	Recommendation string
	Action         string
}

// PestText holds the strings for one pest or disease rule
type PestText struct {
	Name       string
	Conditions string
	Prevention []string
}

// Bundle is the full set of strings for one language
type Bundle struct {
	Language Language

	HeavyRain    AlertText // %[1]v rainfall mm, %[2]s day
	Frost        AlertText // %[1]v min temperature, %[2]s day
	Heat         AlertText // %[1]v max temperature, %[2]s day
	StrongWind   AlertText // %[1]d wind km/h (rounded), %[2]s day
	DiseaseRisk  AlertText // %[1]v humidity, %[2]s day
	Irrigation   AlertText // %[1]v rainfall mm, %[2]s day
	PestActivity AlertText // %[1]v max temperature, %[2]v humidity, %[3]s day

	Fungal       PestText
	Aphids       PestText
	SpiderMites  PestText
	Whiteflies   PestText
	Bacterial    PestText
	RootRot      PestText
	FruitFlies   PestText
	Caterpillars PestText

	RiskLow    string
	RiskMedium string
	RiskHigh   string
}

var bundles = map[Language]Bundle{
	EN: english,
	HI: hindi,
	MR: marathi,
}

// Resolve returns the bundle for code, falling back to English.
// Region suffixes are ignored, so "hi-IN" resolves to Hindi.
func Resolve(code string) Bundle {
	b, _ := Lookup(code)
	return b
}

// Lookup is Resolve that also reports whether code matched a bundle
func Lookup(code string) (Bundle, bool) {
	lang := Language(strings.ToLower(strings.TrimSpace(code)))
	if b, ok := bundles[lang]; ok {
		return b, true
	}
	if i := strings.IndexAny(string(lang), "-_"); i > 0 {
		if b, ok := bundles[lang[:i]]; ok {
			return b, true
		}
	}
	return bundles[Default], false
}

// Supported returns the languages that have a bundle, in a stable order
func Supported() []Language {
	return []Language{EN, HI, MR}
}

// Validate reports every empty string in b
func Validate(b Bundle) error {
	var errs []error

	alerts := []struct {
		name string
		text AlertText
	}{
		{"HeavyRain", b.HeavyRain},
		{"Frost", b.Frost},
		{"Heat", b.Heat},
		{"StrongWind", b.StrongWind},
		{"DiseaseRisk", b.DiseaseRisk},
		{"Irrigation", b.Irrigation},
		{"PestActivity", b.PestActivity},
	}
	for _, a := range alerts {
		if a.text.Title == "" || a.text.Message == "" || a.text.Recommendation == "" || a.text.Action == "" {
			errs = append(errs, fmt.Errorf("%s: alert %s has empty fields", b.Language, a.name))
		}
	}

	pests := []struct {
		name string
		text PestText
	}{
		{"Fungal", b.Fungal},
		{"Aphids", b.Aphids},
		{"SpiderMites", b.SpiderMites},
		{"Whiteflies", b.Whiteflies},
		{"Bacterial", b.Bacterial},
		{"RootRot", b.RootRot},
		{"FruitFlies", b.FruitFlies},
		{"Caterpillars", b.Caterpillars},
	}
	for _, p := range pests {
		if p.text.Name == "" || p.text.Conditions == "" {
			errs = append(errs, fmt.Errorf("%s: pest %s has empty fields", b.Language, p.name))
		}
		if len(p.text.Prevention) == 0 {
			errs = append(errs, fmt.Errorf("%s: pest %s has no prevention steps", b.Language, p.name))
		}
		for i, step := range p.text.Prevention {
			if step == "" {
				errs = append(errs, fmt.Errorf("%s: pest %s prevention step %d is empty", b.Language, p.name, i))
			}
		}
	}

	if b.RiskLow == "" || b.RiskMedium == "" || b.RiskHigh == "" {
		errs = append(errs, fmt.Errorf("%s: risk labels are incomplete", b.Language))
	}

	return errors.Join(errs...)
}
