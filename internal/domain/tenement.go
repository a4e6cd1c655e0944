package domain

import (
	"fmt"
	"strings"
)

// TenementKind selects which variant of a tenement record is in play.
type TenementKind string

const (
	KindRent    TenementKind = "rent"
	KindSell    TenementKind = "sell"
	KindDevelop TenementKind = "develop"
	KindMarket  TenementKind = "market"
)

// TenementKinds lists every kind in display order.
var TenementKinds = []TenementKind{KindRent, KindSell, KindDevelop, KindMarket}

// Label returns the label the server stores in tenement_type.
func (k TenementKind) Label() string {
	switch k {
	case KindRent:
		return "出租"
	case KindSell:
		return "出售"
	case KindDevelop:
		return "開發追蹤"
	case KindMarket:
		return "行銷追蹤"
	default:
		return string(k)
	}
}

// ParseTenementKind accepts either the English kind or its stored label.
func ParseTenementKind(s string) (TenementKind, error) {
	s = strings.TrimSpace(s)
	for _, k := range TenementKinds {
		if strings.EqualFold(s, string(k)) || s == k.Label() {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown tenement kind %q (want rent, sell, develop or market)", s)
}

// TenementListItem is one row of GET /tenements.
type TenementListItem struct {
	TenementAddress       float64 `json:"tenement_address"`
	TenementFace          string  `json:"tenement_face"`
	TenementStatus        string  `json:"tenement_status"`
	TenementType          string  `json:"tenement_type"`
	TenementStyle         string  `json:"tenement_style"`
	ManagementFeeBottom   float64 `json:"management_fee_bottom"`
	ManagementFloorBottom float64 `json:"management_floor_bottom"`
}

// TenementRatings are the rating columns shared by the sell and rent lists.
type TenementRatings struct {
	TotalRating    float64 `json:"Total_rating"`
	InsideRating   float64 `json:"inside_rating"`
	PublicBuilding float64 `json:"public_building"`
	TenementFloor  float64 `json:"tenement_floor"`
}

// TenementSellListItem is one row of GET /tenements/sell.
type TenementSellListItem struct {
	TenementListItem
	SellingPrice float64 `json:"selling_price"`
	TenementRatings
}

// TenementRentListItem is one row of GET /tenements/rent.
type TenementRentListItem struct {
	TenementListItem
	Rent float64 `json:"rent"`
	TenementRatings
}

// TenementBase holds the fields every tenement detail variant carries.
type TenementBase struct {
	TenementAddress     string   `json:"tenement_address"`
	TenementProductType string   `json:"tenement_product_type"`
	TenementType        string   `json:"tenement_type"`
	TenementFace        string   `json:"tenement_face"`
	TenementImages      []string `json:"tenement_images"`
}

// Building holds area, fee and price figures as entered on the form.
type Building struct {
	TotalRating             string `json:"total_rating"`
	MainBuilding            string `json:"main_building"`
	AffiliatedBuilding      string `json:"affiliated_building"`
	PublicBuilding          string `json:"public_building"`
	UnregisteredArea        string `json:"unregistered_area"`
	ManagementMagnification string `json:"management_magnification"`
	ManagementFee           string `json:"management_fee"`
	RentPrice               string `json:"rent_price"`
	DepositPrice            string `json:"deposit_price"`
	TenementFloor           string `json:"tenement_floor"`
}

// HostInfo describes the owner of a tenement.
type HostInfo struct {
	TenementHostName              string `json:"tenement_host_name"`
	TenementHostTelphone          string `json:"tenement_host_telphone"`
	TenementHostPhone             string `json:"tenement_host_phone"`
	TenementHostLine              string `json:"tenement_host_line"`
	TenementHostRemittanceBank    string `json:"tenement_host_remittance_bank"`
	TenementHostRemittanceAccount string `json:"tenement_host_remittance_account"`
	TenementHostAddress           string `json:"tenement_host_address"`
	TenementHostBirthday          string `json:"tenement_host_birthday"`
	TenementHostHobby             string `json:"tenement_host_hobby"`
	TenementHostRemark            string `json:"tenement_host_remark"`
}

// BuyerInfo is filled in once a sell tenement has a buyer.
type BuyerInfo struct {
	BuyerOrderDate   string   `json:"buyer_order_date"`
	BuyerHandoutDate string   `json:"buyer_handout_date"`
	BuyerName        string   `json:"buyer_name"`
	BuyerIDImages    []string `json:"buyer_id_images"`
	BuyerPhone       string   `json:"buyer_phone"`
	BuyerJobtitle    string   `json:"buyer_jobtitle"`
	BuyerRemark      string   `json:"buyer_remark"`
}

// RenterInfo is filled in once a rent tenement has a tenant.
type RenterInfo struct {
	RenterStartDate      string   `json:"renter_start_date"`
	RenterEndDate        string   `json:"renter_end_date"`
	RenterName           string   `json:"renter_name"`
	RenterIDImages       []string `json:"renter_id_images"`
	RenterPhone          string   `json:"renter_phone"`
	RenterJobtitle       string   `json:"renter_jobtitle"`
	RenterGuarantorName  string   `json:"renter_guarantor_name"`
	RenterGuarantorPhone string   `json:"renter_guarantor_phone"`
	RenterRemark         string   `json:"renter_remark"`
}

// TenementSell is the edit record behind /tenement/edit/sell/:id.
// TenementID is taken from the request path, not from the response body.
type TenementSell struct {
	TenementID string `json:"tenement_id,omitempty"`
	TenementBase
	TenementStatus string `json:"tenement_status"`
	Building
	SellingPrice string `json:"selling_price"`
	HostInfo
	BuyerInfo
}

// TenementRent is the edit record behind /tenement/edit/rent/:id.
type TenementRent struct {
	TenementID string `json:"tenement_id,omitempty"`
	TenementBase
	TenementStatus string `json:"tenement_status"`
	Building
	HostInfo
	RenterInfo
}

// TenementDevelop is the edit record behind /tenement/edit/develop/:id.
type TenementDevelop struct {
	TenementID string `json:"tenement_id,omitempty"`
	TenementBase
	Building
	SellingPrice string `json:"selling_price"`
	HostInfo
}

// TenementMarket is the edit record behind /tenement/edit/market/:id.
type TenementMarket struct {
	TenementID string `json:"tenement_id,omitempty"`
	TenementBase
	HostInfo
	TenementAreaMax string `json:"tenement_area_max"`
	TenementAreaMin string `json:"tenement_area_min"`
	BurgetRentMax   string `json:"burget_rent_max"`
	BurgetRentMin   string `json:"burget_rent_min"`
	HopefloorMax    string `json:"hopefloor_max"`
	HopefloorMin    string `json:"hopefloor_min"`
	MarketState     string `json:"market_state"`
}
