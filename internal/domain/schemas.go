package domain

import "github.com/alexanderramin/tenement/internal/schema"

// Declared response shapes, one per record variant. Every response body is
// checked against Envelope(<shape>) before it is decoded into the Go type
// named next to it.
var (
	tenementListFields = []schema.FieldShape{
		schema.Field("tenement_address", schema.Number()),
		schema.Field("tenement_face", schema.String()),
		schema.Field("tenement_status", schema.String()),
		schema.Field("tenement_type", schema.String()),
		schema.Field("tenement_style", schema.String()),
		schema.Field("management_fee_bottom", schema.Number()),
		schema.Field("management_floor_bottom", schema.Number()),
	}
	ratingFields = []schema.FieldShape{
		schema.Field("Total_rating", schema.Number()),
		schema.Field("inside_rating", schema.Number()),
		schema.Field("public_building", schema.Number()),
		schema.Field("tenement_floor", schema.Number()),
	}

	tenementBaseFields = []schema.FieldShape{
		schema.Field("tenement_address", schema.String()),
		schema.Field("tenement_product_type", schema.String()),
		schema.Field("tenement_type", schema.String()),
		schema.Field("tenement_face", schema.String()),
		schema.Field("tenement_images", schema.Array(schema.String())),
	}
	buildingFields = schema.Strings(
		"total_rating", "main_building", "affiliated_building", "public_building",
		"unregistered_area", "management_magnification", "management_fee",
		"rent_price", "deposit_price", "tenement_floor",
	)
	hostFields = schema.Strings(
		"tenement_host_name", "tenement_host_telphone", "tenement_host_phone",
		"tenement_host_line", "tenement_host_remittance_bank",
		"tenement_host_remittance_account", "tenement_host_address",
		"tenement_host_birthday", "tenement_host_hobby", "tenement_host_remark",
	)
	buyerFields = []schema.FieldShape{
		schema.Field("buyer_order_date", schema.String()),
		schema.Field("buyer_handout_date", schema.String()),
		schema.Field("buyer_name", schema.String()),
		schema.Field("buyer_id_images", schema.Array(schema.String())),
		schema.Field("buyer_phone", schema.String()),
		schema.Field("buyer_jobtitle", schema.String()),
		schema.Field("buyer_remark", schema.String()),
	}
	renterFields = []schema.FieldShape{
		schema.Field("renter_start_date", schema.String()),
		schema.Field("renter_end_date", schema.String()),
		schema.Field("renter_name", schema.String()),
		schema.Field("renter_id_images", schema.Array(schema.String())),
		schema.Field("renter_phone", schema.String()),
		schema.Field("renter_jobtitle", schema.String()),
		schema.Field("renter_guarantor_name", schema.String()),
		schema.Field("renter_guarantor_phone", schema.String()),
		schema.Field("renter_remark", schema.String()),
	}
)

// NoticeShape matches Notice.
var NoticeShape = schema.Object(schema.Strings("id", "visitDate", "record", "remindDate", "remind")...)

// TenementListShape matches []TenementListItem.
var TenementListShape = schema.Array(schema.Object(tenementListFields...))

// TenementSellListShape matches []TenementSellListItem.
var TenementSellListShape = schema.Array(
	schema.Object(tenementListFields...).
		Extend(schema.Field("selling_price", schema.Number())).
		Extend(ratingFields...),
)

// TenementRentListShape matches []TenementRentListItem.
var TenementRentListShape = schema.Array(
	schema.Object(tenementListFields...).
		Extend(schema.Field("rent", schema.Number())).
		Extend(ratingFields...),
)

// TenementSellShape matches TenementSell.
var TenementSellShape = schema.Object(tenementBaseFields...).
	Extend(schema.Field("tenement_status", schema.String())).
	Extend(buildingFields...).
	Extend(schema.Field("selling_price", schema.String())).
	Extend(hostFields...).
	Extend(buyerFields...)

// TenementRentShape matches TenementRent.
var TenementRentShape = schema.Object(tenementBaseFields...).
	Extend(schema.Field("tenement_status", schema.String())).
	Extend(buildingFields...).
	Extend(hostFields...).
	Extend(renterFields...)

// TenementDevelopShape matches TenementDevelop.
var TenementDevelopShape = schema.Object(tenementBaseFields...).
	Extend(buildingFields...).
	Extend(schema.Field("selling_price", schema.String())).
	Extend(hostFields...)

// TenementMarketShape matches TenementMarket.
var TenementMarketShape = schema.Object(tenementBaseFields...).
	Extend(hostFields...).
	Extend(schema.Strings(
		"tenement_area_max", "tenement_area_min", "burget_rent_max", "burget_rent_min",
		"hopefloor_max", "hopefloor_min", "market_state",
	)...)

// CollectionListShape matches []CollectionListItem.
var CollectionListShape = schema.Array(schema.Object(
	schema.Field("collection_name", schema.String()),
	schema.Field("tenement_address", schema.String()),
	schema.Field("collection_type", schema.String()),
	schema.Field("price", schema.String()),
	schema.Field("collection_id", schema.Number()),
))

// CollectionShape matches Collection.
var CollectionShape = schema.Object(schema.Strings(
	"tenement_address", "collection_name", "collection_type", "price", "payment",
	"collection_remark", "collection_date", "remittance_bank", "remittance_account",
	"cus_remittance_bank", "cus_remittance_account", "collection_complete",
)...).Extend(schema.Field("notices", schema.Array(NoticeShape)))

// UserListShape matches []UserListItem.
var UserListShape = schema.Array(schema.Object(schema.Strings("user_id", "user_name", "user_email", "status")...))

// UserShape matches User.
var UserShape = schema.Object(schema.Strings(
	"user_name", "user_email", "status", "user_password", "user_id", "isadmin",
)...)

// RoleShape matches Role.
var RoleShape = schema.Object(schema.Field("isadmin", schema.Bool()))

// LoginTokenShape matches LoginToken.
var LoginTokenShape = schema.Object(schema.Field("token", schema.String()))

// CalendarShape matches []CalendarDay.
var CalendarShape = schema.Array(schema.Object(
	schema.Field("day", schema.Number()),
	schema.Field("events", schema.Array(schema.Object(schema.Strings("content", "id", "class")...))),
))

// TenementShape returns the edit-record shape for a kind.
func TenementShape(k TenementKind) schema.Shape {
	switch k {
	case KindSell:
		return TenementSellShape
	case KindRent:
		return TenementRentShape
	case KindDevelop:
		return TenementDevelopShape
	default:
		return TenementMarketShape
	}
}
