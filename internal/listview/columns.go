package listview

import (
	"strconv"

	"github.com/alexanderramin/tenement/internal/domain"
)

// TenementStatuses are the preset status filter values.
var TenementStatuses = []string{"上架", "下架", "已成交"}

func kindLabels() []string {
	labels := make([]string, len(domain.TenementKinds))
	for i, k := range domain.TenementKinds {
		labels[i] = k.Label()
	}
	return labels
}

// tenementBase builds the columns every tenement list shares.
func tenementBase[R any](item func(R) domain.TenementListItem) []Column[R] {
	address := func(r R) string { return formatNumber(item(r).TenementAddress) }
	fee := func(r R) string { return formatNumber(item(r).ManagementFeeBottom) }
	floor := func(r R) string { return formatNumber(item(r).ManagementFloorBottom) }
	return []Column[R]{
		{Title: "地址", Key: "tenement_address", Width: 12, Value: address, Sorter: ByNumber(address), Searchable: true},
		{Title: "面向", Key: "tenement_face", Width: 6, Value: func(r R) string { return item(r).TenementFace }},
		{Title: "物件狀態", Key: "tenement_status", Width: 8, Options: TenementStatuses, Value: func(r R) string { return item(r).TenementStatus }},
		{Title: "物件類型", Key: "tenement_type", Width: 8, Options: kindLabels(), Value: func(r R) string { return item(r).TenementType }},
		{Title: "房型", Key: "tenement_style", Width: 8, Value: func(r R) string { return item(r).TenementStyle }, Searchable: true},
		{Title: "管理費", Key: "management_fee_bottom", Width: 8, Value: fee, Sorter: ByNumber(fee)},
		{Title: "樓層", Key: "management_floor_bottom", Width: 6, Value: floor, Sorter: ByNumber(floor)},
	}
}

func ratingColumns[R any](ratings func(R) domain.TenementRatings) []Column[R] {
	num := func(title, key string, get func(domain.TenementRatings) float64) Column[R] {
		value := func(r R) string { return formatNumber(get(ratings(r))) }
		return Column[R]{Title: title, Key: key, Width: 8, Value: value, Sorter: ByNumber(value)}
	}
	return []Column[R]{
		num("總坪數", "Total_rating", func(t domain.TenementRatings) float64 { return t.TotalRating }),
		num("室內坪數", "inside_rating", func(t domain.TenementRatings) float64 { return t.InsideRating }),
		num("公設", "public_building", func(t domain.TenementRatings) float64 { return t.PublicBuilding }),
		num("樓高", "tenement_floor", func(t domain.TenementRatings) float64 { return t.TenementFloor }),
	}
}

// TenementKey is the row key of every tenement list: the address number.
func TenementKey(item domain.TenementListItem) string {
	return formatNumber(item.TenementAddress)
}

// TenementTable lists GET /tenements rows.
func TenementTable() Table[domain.TenementListItem] {
	id := func(r domain.TenementListItem) domain.TenementListItem { return r }
	return Table[domain.TenementListItem]{Columns: tenementBase(id), Key: TenementKey}
}

// SellTable lists GET /tenements/sell rows.
func SellTable() Table[domain.TenementSellListItem] {
	price := func(r domain.TenementSellListItem) string { return formatNumber(r.SellingPrice) }
	cols := tenementBase(func(r domain.TenementSellListItem) domain.TenementListItem { return r.TenementListItem })
	cols = append(cols, Column[domain.TenementSellListItem]{
		Title: "售價", Key: "selling_price", Width: 10, Value: price, Sorter: ByNumber(price),
	})
	cols = append(cols, ratingColumns(func(r domain.TenementSellListItem) domain.TenementRatings { return r.TenementRatings })...)
	return Table[domain.TenementSellListItem]{
		Columns: cols,
		Key:     func(r domain.TenementSellListItem) string { return TenementKey(r.TenementListItem) },
	}
}

// RentTable lists GET /tenements/rent rows.
func RentTable() Table[domain.TenementRentListItem] {
	rent := func(r domain.TenementRentListItem) string { return formatNumber(r.Rent) }
	cols := tenementBase(func(r domain.TenementRentListItem) domain.TenementListItem { return r.TenementListItem })
	cols = append(cols, Column[domain.TenementRentListItem]{
		Title: "租金", Key: "rent", Width: 8, Value: rent, Sorter: ByNumber(rent),
	})
	cols = append(cols, ratingColumns(func(r domain.TenementRentListItem) domain.TenementRatings { return r.TenementRatings })...)
	return Table[domain.TenementRentListItem]{
		Columns: cols,
		Key:     func(r domain.TenementRentListItem) string { return TenementKey(r.TenementListItem) },
	}
}

// CollectionTable lists GET /collections rows.
func CollectionTable() Table[domain.CollectionListItem] {
	id := func(r domain.CollectionListItem) string { return strconv.FormatInt(r.CollectionID, 10) }
	price := func(r domain.CollectionListItem) string { return r.Price }
	return Table[domain.CollectionListItem]{
		Columns: []Column[domain.CollectionListItem]{
			{Title: "編號", Key: "collection_id", Width: 6, Value: id, Sorter: ByNumber(id)},
			{Title: "房屋地址", Key: "tenement_address", Width: 20, Value: func(r domain.CollectionListItem) string { return r.TenementAddress }, Searchable: true},
			{
				Title: "費用名稱", Key: "collection_name", Width: 10,
				Options: []string{"水電空調費", "管理費", "其他費用", "第四台"},
				Value:   func(r domain.CollectionListItem) string { return r.CollectionName },
			},
			{
				Title: "費用類型", Key: "collection_type", Width: 6,
				Options: []string{"代收", "代付"},
				Value:   func(r domain.CollectionListItem) string { return r.CollectionType },
			},
			{Title: "費用金額", Key: "price", Width: 8, Value: price, Sorter: ByNumber(price)},
		},
		Key: id,
	}
}

// UserTable lists GET /users rows.
func UserTable() Table[domain.UserListItem] {
	name := func(r domain.UserListItem) string { return r.UserName }
	return Table[domain.UserListItem]{
		Columns: []Column[domain.UserListItem]{
			{Title: "編號", Key: "user_id", Width: 6, Value: func(r domain.UserListItem) string { return r.UserID }},
			{Title: "姓名", Key: "user_name", Width: 10, Value: name, Sorter: ByText(name), Searchable: true},
			{Title: "信箱", Key: "user_email", Width: 24, Value: func(r domain.UserListItem) string { return r.UserEmail }, Searchable: true},
			{
				Title: "狀態", Key: "status", Width: 6,
				Options: []string{"在職中", "已離職"},
				Value:   func(r domain.UserListItem) string { return r.Status },
			},
		},
		Key: func(r domain.UserListItem) string { return r.UserID },
	}
}
