package units

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kentonium3/bake-tracker-sub006/internal/domain"
	"github.com/kentonium3/bake-tracker-sub006/internal/domain/entity"
)

func flourWithDensity() *entity.Ingredient {
	// 1 cup of all-purpose flour weighs 120 g.
	return &entity.Ingredient{
		ID:         "ing-flour",
		Slug:       "flour",
		Name:       "All-Purpose Flour",
		RecipeUnit: "g",
		Density: &entity.Density{
			VolumeAmount: decimal.NewFromInt(1),
			VolumeUnit:   "cup",
			WeightAmount: decimal.NewFromInt(120),
			WeightUnit:   "g",
		},
	}
}

func TestConvertIdentity(t *testing.T) {
	qty := decimal.RequireFromString("3.25")

	got, err := Convert(nil, qty, "cup", "cup")
	require.NoError(t, err)
	assert.True(t, got.Equal(qty))

	// Same-unit conversion never consults the tables, even for units the
	// resolver has never heard of.
	got, err = Convert(nil, qty, "scoop", "scoop")
	require.NoError(t, err)
	assert.True(t, got.Equal(qty))
}

func TestConvertWithinClass(t *testing.T) {
	cases := []struct {
		name string
		qty  string
		from string
		to   string
		want string
	}{
		{"cup to tbsp", "1", "cup", "tbsp", "16"},
		{"tbsp to tsp", "2", "tbsp", "tsp", "6"},
		{"quart to cup", "1", "quart", "cup", "4"},
		{"kg to g", "2.5", "kg", "g", "2500"},
		{"lb to oz", "1", "lb", "oz", "16"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Convert(nil, decimal.RequireFromString(tc.qty), tc.from, tc.to)
			require.NoError(t, err)
			assert.True(t, got.Equal(decimal.RequireFromString(tc.want)),
				"got %s, want %s", got, tc.want)
		})
	}
}

func TestConvertCrossClassWithDensity(t *testing.T) {
	ing := flourWithDensity()

	got, err := Convert(ing, decimal.NewFromInt(2), "cup", "g")
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(240)), "got %s", got)

	got, err = Convert(ing, decimal.NewFromInt(240), "g", "cup")
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(2)), "got %s", got)
}

func TestConvertCrossClassWithoutDensity(t *testing.T) {
	ing := &entity.Ingredient{Slug: "sprinkles", RecipeUnit: "g"}

	_, err := Convert(ing, decimal.NewFromInt(1), "cup", "g")
	var convErr *domain.UnitConversionError
	require.True(t, errors.As(err, &convErr))
	assert.Equal(t, "sprinkles", convErr.Ingredient)
	assert.Equal(t, "cup", convErr.FromUnit)
	assert.Equal(t, "g", convErr.ToUnit)
}

func TestConvertUnknownUnit(t *testing.T) {
	_, err := Convert(nil, decimal.NewFromInt(1), "scoop", "g")
	var convErr *domain.UnitConversionError
	require.True(t, errors.As(err, &convErr))

	_, err = Convert(nil, decimal.NewFromInt(1), "g", "scoop")
	require.True(t, errors.As(err, &convErr))
}

func TestConvertCountUnits(t *testing.T) {
	var convErr *domain.UnitConversionError

	// Distinct count units carry no shared base.
	_, err := Convert(nil, decimal.NewFromInt(1), "dozen", "each")
	require.True(t, errors.As(err, &convErr))

	// Count never bridges to weight or volume, density or not.
	_, err = Convert(flourWithDensity(), decimal.NewFromInt(1), "each", "g")
	require.True(t, errors.As(err, &convErr))
}

func TestLookup(t *testing.T) {
	class, _, ok := Lookup("cup")
	require.True(t, ok)
	assert.Equal(t, ClassVolume, class)

	class, _, ok = Lookup("lb")
	require.True(t, ok)
	assert.Equal(t, ClassWeight, class)

	class, _, ok = Lookup("each")
	require.True(t, ok)
	assert.Equal(t, ClassCount, class)

	_, _, ok = Lookup("scoop")
	assert.False(t, ok)
	assert.False(t, Known("scoop"))
	assert.True(t, Known("tsp"))
}
