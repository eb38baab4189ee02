package locale

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name   string
		locale Locale
		value  float64
		want   string
	}{
		{"India crore", India, 12345678, "₹1.23 Cr"},
		{"India crore boundary", India, 1e7, "₹1.00 Cr"},
		{"India lakh", India, 250000, "₹2.50 Lakh"},
		{"India below lakh", India, 50000, "₹0.50 Lakh"},
		{"US millions", US, 2500000, "$2.50M"},
		{"US thousands", US, 1300, "$1.30K"},
		{"US units", US, 999.5, "$999.50"},
		{"US zero", US, 0, "$0.00"},
		{"Japan oku", Japan, 250000000, "¥2.50億"},
		{"Japan man", Japan, 150000, "¥15.00万"},
		{"Japan units", Japan, 500, "¥500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.locale.FormatCurrency(tt.value))
		})
	}
}

func TestScales(t *testing.T) {
	assert.Equal(t, "Value (Cr)", India.ValueScale().Label)
	assert.InDelta(t, 1.5, India.ValueScale().Apply(15000000), 1e-12)
	assert.InDelta(t, 1.0, India.ContributionScale().Apply(100000), 1e-12)

	assert.Equal(t, "Monthly Contribution (Thousands)", US.ContributionScale().Label)
	assert.InDelta(t, 1.3, US.ContributionScale().Apply(1300), 1e-12)

	assert.Equal(t, "価値 (百万)", Japan.ValueScale().Label)
	assert.InDelta(t, 1.5, Japan.ValueScale().Apply(1500000), 1e-12)
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "Initial Investment (₹)", India.Label(LabelInitialInvestment))
	assert.Equal(t, "Family Growth Expense ($/month)", US.Label(LabelFamilyExpense))
	assert.Equal(t, "名目価値", Japan.Label(LabelNominalValue))
	assert.Equal(t, "退職貯蓄シミュレーション", Japan.Label(LabelTitle))
	assert.Equal(t, "missing_key", US.Label(Key("missing_key")))

	// Every locale labels every key
	for _, l := range All() {
		for _, key := range []Key{LabelTitle, LabelFinalValues, LabelRealValueAdjusted, LabelYears, LabelValue} {
			assert.NotEqual(t, string(key), l.Label(key), "%s %s", l.Name(), key)
		}
	}
}

func TestDefaults(t *testing.T) {
	assert.Equal(t, InputDefaults{InitialBalance: 1000000, InitialContribution: 100000, FamilyExpense: 50000}, India.Defaults())
	assert.Equal(t, InputDefaults{InitialBalance: 13000, InitialContribution: 1300, FamilyExpense: 650}, US.Defaults())
	assert.Equal(t, 150000.0, Japan.Defaults().InitialContribution)
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name string
		want Locale
	}{
		{"", India},
		{"India", India},
		{"en-IN", India},
		{"en_IN", India},
		{"INR", India},
		{"US", US},
		{"en-US", US},
		{"usd", US},
		{"Japan", Japan},
		{"ja-JP", Japan},
		{"日本", Japan},
		{"ja", Japan},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Lookup(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want.Name(), got.Name())
		})
	}
}

func TestLookupUnknown(t *testing.T) {
	for _, name := range []string{"not a locale!", "fr-FR"} {
		_, err := Lookup(name)
		require.Error(t, err, name)
		assert.True(t, errors.Is(err, ErrUnknownLocale), name)
	}
	assert.Panics(t, func() { MustLookup("???") })
}

func TestTags(t *testing.T) {
	assert.Equal(t, "en-IN", India.Tag().String())
	assert.Equal(t, language.AmericanEnglish, US.Tag())
	assert.Equal(t, language.Japanese, Japan.Tag())
}
