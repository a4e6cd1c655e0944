package listview

import (
	"fmt"
	"maps"
	"net/url"
	"slices"
	"strconv"
	"strings"
)

// FilterLabels maps filter form keys to the titles shown in the filter
// breadcrumb.
var FilterLabels = map[string]string{
	"tenement_address":      "地址",
	"tenement_product_type": "產品類型",
	"tenement_type":         "物件類型",
	"tenement_face":         "面向",
	"tenement_status":       "物件狀態",
	"selling_price_min":     "售價 min",
	"selling_price_max":     "售價 max",
	"rent_price_min":        "租金 min",
	"rent_price_max":        "租金 max",
	"floor_min":             "樓層 min",
	"floor_max":             "樓層 max",
}

// Ranges lists the min/max filter pairs.
var Ranges = [][2]string{
	{"rent_price_min", "rent_price_max"},
	{"selling_price_min", "selling_price_max"},
	{"floor_min", "floor_max"},
}

// Crumb is one breadcrumb entry.
type Crumb struct {
	Title string
	Value string
}

// AllTenements is the breadcrumb shown when no filter is set.
var AllTenements = Crumb{Title: "全部房屋", Value: "房屋列表"}

// BuildQuery encodes the non-empty fields as a query string with keys in
// sorted order.
func BuildQuery(fields map[string]string) string {
	q := url.Values{}
	for k, v := range fields {
		if strings.TrimSpace(v) != "" {
			q.Set(k, v)
		}
	}
	return q.Encode()
}

// Breadcrumb describes the active filter fields in key order. Unknown keys
// keep their raw name.
func Breadcrumb(fields map[string]string) []Crumb {
	keys := slices.Sorted(maps.Keys(fields))
	crumbs := make([]Crumb, 0, len(keys))
	for _, k := range keys {
		v := fields[k]
		if strings.TrimSpace(v) == "" {
			continue
		}
		title, ok := FilterLabels[k]
		if !ok {
			title = k
		}
		crumbs = append(crumbs, Crumb{Title: title, Value: v})
	}
	if len(crumbs) == 0 {
		return []Crumb{AllTenements}
	}
	return crumbs
}

// ValidateRange rejects a max below its min. Blank or non-integer values
// are not compared.
func ValidateRange(minKey, maxKey, minVal, maxVal string) error {
	lo, err := strconv.Atoi(strings.TrimSpace(minVal))
	if err != nil {
		return nil
	}
	hi, err := strconv.Atoi(strings.TrimSpace(maxVal))
	if err != nil {
		return nil
	}
	if hi < lo {
		return fmt.Errorf("%s 不可小於 %s", label(maxKey), label(minKey))
	}
	return nil
}

// ValidateRanges checks every pair in Ranges.
func ValidateRanges(fields map[string]string) error {
	for _, r := range Ranges {
		if err := ValidateRange(r[0], r[1], fields[r[0]], fields[r[1]]); err != nil {
			return err
		}
	}
	return nil
}

func label(key string) string {
	if l, ok := FilterLabels[key]; ok {
		return l
	}
	return key
}
