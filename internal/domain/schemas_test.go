package domain

import (
	"reflect"
	"sort"
	"strings"
	"testing"

	"github.com/alexanderramin/tenement/internal/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// jsonNames collects the wire names of a struct, flattening embedded structs
// and skipping path-only ids and client-only fields.
func jsonNames(t reflect.Type) []string {
	var names []string
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Anonymous {
			names = append(names, jsonNames(f.Type)...)
			continue
		}
		tag := f.Tag.Get("json")
		name, opts, _ := strings.Cut(tag, ",")
		if name == "-" || opts == "omitempty" {
			continue
		}
		names = append(names, name)
	}
	return names
}

func shapeNames(s schema.Shape) []string {
	var names []string
	for _, f := range s.Fields() {
		names = append(names, f.Name)
	}
	return names
}

func elemShape(t *testing.T, s schema.Shape) schema.Shape {
	t.Helper()
	e, ok := s.Elem()
	require.True(t, ok)
	return e
}

func TestShapesMatchRecordTypes(t *testing.T) {
	tests := []struct {
		name  string
		typ   any
		shape schema.Shape
	}{
		{"tenement list", TenementListItem{}, elemShape(t, TenementListShape)},
		{"tenement sell list", TenementSellListItem{}, elemShape(t, TenementSellListShape)},
		{"tenement rent list", TenementRentListItem{}, elemShape(t, TenementRentListShape)},
		{"sell", TenementSell{}, TenementSellShape},
		{"rent", TenementRent{}, TenementRentShape},
		{"develop", TenementDevelop{}, TenementDevelopShape},
		{"market", TenementMarket{}, TenementMarketShape},
		{"collection list", CollectionListItem{}, elemShape(t, CollectionListShape)},
		{"collection", Collection{}, CollectionShape},
		{"notice", Notice{}, NoticeShape},
		{"user list", UserListItem{}, elemShape(t, UserListShape)},
		{"user", User{}, UserShape},
		{"role", Role{}, RoleShape},
		{"login", LoginToken{}, LoginTokenShape},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := jsonNames(reflect.TypeOf(tt.typ))
			got := shapeNames(tt.shape)
			sort.Strings(want)
			sort.Strings(got)
			assert.Equal(t, want, got)
		})
	}
}

func TestTenementShape_PerKind(t *testing.T) {
	assert.Contains(t, shapeNames(TenementShape(KindSell)), "buyer_name")
	assert.Contains(t, shapeNames(TenementShape(KindRent)), "renter_name")
	assert.Contains(t, shapeNames(TenementShape(KindMarket)), "market_state")
	assert.NotContains(t, shapeNames(TenementShape(KindDevelop)), "tenement_status")
}

func TestParseTenementKind(t *testing.T) {
	tests := []struct {
		in   string
		want TenementKind
	}{
		{"rent", KindRent},
		{"SELL", KindSell},
		{"開發追蹤", KindDevelop},
		{" 行銷追蹤 ", KindMarket},
		{"出租", KindRent},
	}
	for _, tt := range tests {
		got, err := ParseTenementKind(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseTenementKind("lease")
	assert.Error(t, err)
}

func TestTenementKind_LabelRoundTrip(t *testing.T) {
	for _, k := range TenementKinds {
		got, err := ParseTenementKind(k.Label())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
}
