// Package locale renders projection output for a region: currency
// magnitudes, chart scales and display labels. Formatting is presentation
// only; no locale value feeds back into a projection.
package locale

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/rpgo/savings-calculator/pkg/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ErrUnknownLocale is returned by Lookup for names no locale matches
var ErrUnknownLocale = errors.New("unknown locale")

// Scale is a display unit for a series column, e.g. crore or millions
type Scale struct {
	Divisor float64
	Label   string
}

// Apply converts an amount into the scale's units
func (s Scale) Apply(v float64) float64 {
	return decimal.NewMoney(v).Scale(s.Divisor).Float64()
}

// InputDefaults are the suggested starting amounts for a region
type InputDefaults struct {
	InitialBalance      float64
	InitialContribution float64
	FamilyExpense       float64
}

// Locale formats amounts and labels for one region
type Locale interface {
	Name() string
	Tag() language.Tag
	Symbol() string
	FormatCurrency(v float64) string
	FormatNumber(v float64, decimals int) string
	ValueScale() Scale
	ContributionScale() Scale
	Label(key Key) string
	Defaults() InputDefaults
}

// tier selects a magnitude suffix for amounts at or above min
type tier struct {
	min      float64
	divisor  float64
	suffix   string
	decimals int
}

type regional struct {
	name         string
	tag          language.Tag
	symbol       string
	tiers        []tier // descending by min; the last tier catches everything else
	value        Scale
	contribution Scale
	labels       map[Key]string
	defaults     InputDefaults
	printer      *message.Printer
}

func (r *regional) Name() string             { return r.name }
func (r *regional) Tag() language.Tag        { return r.tag }
func (r *regional) Symbol() string           { return r.symbol }
func (r *regional) ValueScale() Scale        { return r.value }
func (r *regional) ContributionScale() Scale { return r.contribution }
func (r *regional) Defaults() InputDefaults  { return r.defaults }

// Label returns the display text for key, or the key itself when missing
func (r *regional) Label(key Key) string {
	if s, ok := r.labels[key]; ok {
		return s
	}
	return string(key)
}

// FormatCurrency renders v with the largest magnitude suffix it reaches
func (r *regional) FormatCurrency(v float64) string {
	t := r.tiers[len(r.tiers)-1]
	for _, candidate := range r.tiers {
		if math.Abs(v) >= candidate.min {
			t = candidate
			break
		}
	}
	scaled := decimal.NewMoney(v).Scale(t.divisor).RoundTo(int32(t.decimals))
	return r.symbol + r.FormatNumber(scaled.Float64(), t.decimals) + t.suffix
}

// FormatNumber prints v with the region's digit grouping
func (r *regional) FormatNumber(v float64, decimals int) string {
	return r.printer.Sprintf(fmt.Sprintf("%%.%df", decimals), v)
}

func newRegional(r regional) *regional {
	r.printer = message.NewPrinter(r.tag)
	return &r
}

var (
	India = newRegional(regional{
		name:   "India",
		tag:    language.MustParse("en-IN"),
		symbol: "₹",
		tiers: []tier{
			{min: 1e7, divisor: 1e7, suffix: " Cr", decimals: 2},
			{min: 0, divisor: 1e5, suffix: " Lakh", decimals: 2},
		},
		value:        Scale{Divisor: 1e7, Label: "Value (Cr)"},
		contribution: Scale{Divisor: 1e5, Label: "Monthly Contribution (Lakhs)"},
		labels:       englishLabels("₹"),
		defaults:     InputDefaults{InitialBalance: 1000000, InitialContribution: 100000, FamilyExpense: 50000},
	})

	US = newRegional(regional{
		name:   "US",
		tag:    language.AmericanEnglish,
		symbol: "$",
		tiers: []tier{
			{min: 1e6, divisor: 1e6, suffix: "M", decimals: 2},
			{min: 1e3, divisor: 1e3, suffix: "K", decimals: 2},
			{min: 0, divisor: 1, suffix: "", decimals: 2},
		},
		value:        Scale{Divisor: 1e6, Label: "Value (Millions)"},
		contribution: Scale{Divisor: 1e3, Label: "Monthly Contribution (Thousands)"},
		labels:       englishLabels("$"),
		defaults:     InputDefaults{InitialBalance: 13000, InitialContribution: 1300, FamilyExpense: 650},
	})

	Japan = newRegional(regional{
		name:   "Japan",
		tag:    language.Japanese,
		symbol: "¥",
		tiers: []tier{
			{min: 1e8, divisor: 1e8, suffix: "億", decimals: 2},
			{min: 1e4, divisor: 1e4, suffix: "万", decimals: 2},
			{min: 0, divisor: 1, suffix: "", decimals: 0},
		},
		value:        Scale{Divisor: 1e6, Label: "価値 (百万)"},
		contribution: Scale{Divisor: 1e3, Label: "月々の積立 (千)"},
		labels:       japaneseLabels,
		defaults:     InputDefaults{InitialBalance: 1500000, InitialContribution: 150000, FamilyExpense: 75000},
	})
)

// DefaultLocale is used when a configuration names no locale
var DefaultLocale Locale = India

// All returns the supported locales in display order
func All() []Locale {
	return []Locale{India, US, Japan}
}

var aliases = map[string]Locale{
	"india": India, "in": India, "en-in": India, "inr": India,
	"us": US, "usa": US, "en-us": US, "usd": US,
	"japan": Japan, "jp": Japan, "ja": Japan, "ja-jp": Japan, "jpy": Japan, "日本": Japan,
}

var matcher = language.NewMatcher([]language.Tag{India.tag, US.tag, Japan.tag})

// Lookup resolves a country name, currency code or BCP 47 tag. An empty
// name selects DefaultLocale.
func Lookup(name string) (Locale, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return DefaultLocale, nil
	}
	if l, ok := aliases[strings.ReplaceAll(key, "_", "-")]; ok {
		return l, nil
	}

	tag, err := language.Parse(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLocale, name)
	}
	_, index, confidence := matcher.Match(tag)
	if confidence == language.No {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLocale, name)
	}
	return All()[index], nil
}

// MustLookup is Lookup for names known to be valid
func MustLookup(name string) Locale {
	l, err := Lookup(name)
	if err != nil {
		panic(err)
	}
	return l
}
