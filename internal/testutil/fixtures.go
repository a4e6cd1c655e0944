package testutil

import (
	"fmt"
	"sync/atomic"

	"github.com/alexanderramin/tenement/internal/domain"
)

var testIDCounter atomic.Int64

func nextID() string {
	return fmt.Sprintf("%d", testIDCounter.Add(1))
}

// Collection options
type CollectionOption func(*domain.Collection)

func WithCollectionType(t string) CollectionOption {
	return func(c *domain.Collection) {
		c.CollectionType = t
	}
}

func WithPrice(p string) CollectionOption {
	return func(c *domain.Collection) {
		c.Price = p
	}
}

func WithNotices(n ...domain.Notice) CollectionOption {
	return func(c *domain.Collection) {
		c.Notices = n
	}
}

// NewTestCollection returns a fully populated collection record.
func NewTestCollection(name string, opts ...CollectionOption) domain.Collection {
	c := domain.Collection{
		TenementAddress:      "台北市信義路100號",
		CollectionName:       name,
		CollectionType:       "代收",
		Price:                "1000",
		Payment:              "匯款轉帳",
		CollectionRemark:     "每月五號",
		CollectionDate:       "2024-05-05",
		RemittanceBank:       "台灣銀行",
		RemittanceAccount:    "123456789",
		CusRemittanceBank:    "玉山銀行",
		CusRemittanceAccount: "987654321",
		CollectionComplete:   "未完成",
		Notices:              []domain.Notice{},
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// NewTestCollectionRow returns a list row for GET /collections.
func NewTestCollectionRow(id int64, name, typ, price string) domain.CollectionListItem {
	return domain.CollectionListItem{
		CollectionID:    id,
		CollectionName:  name,
		TenementAddress: "台北市信義路100號",
		CollectionType:  typ,
		Price:           price,
	}
}

// NewTestNotice returns a stored notice with a fresh id.
func NewTestNotice(record string) domain.Notice {
	return domain.Notice{
		ID:         nextID(),
		VisitDate:  "2024-05-01",
		Record:     record,
		RemindDate: "2024-05-10",
		Remind:     "電話提醒",
	}
}

// User options
type UserOption func(*domain.User)

func AsAdmin() UserOption {
	return func(u *domain.User) {
		u.IsAdmin = "true"
	}
}

func NewTestUser(name string, opts ...UserOption) domain.User {
	u := domain.User{
		UserID:       nextID(),
		UserName:     name,
		UserEmail:    name + "@example.com",
		Status:       "在職中",
		UserPassword: "secret",
		IsAdmin:      "false",
	}
	for _, opt := range opts {
		opt(&u)
	}
	return u
}

// NewTestSell returns a sell record as the server would answer it.
func NewTestSell(address string) domain.TenementSell {
	return domain.TenementSell{
		TenementBase: domain.TenementBase{
			TenementAddress:     address,
			TenementProductType: "公寓",
			TenementType:        domain.KindSell.Label(),
			TenementFace:        "東南",
			TenementImages:      []string{},
		},
		TenementStatus: "上架",
		Building: domain.Building{
			TotalRating:             "30.5",
			MainBuilding:            "20.1",
			AffiliatedBuilding:      "3.2",
			PublicBuilding:          "7.2",
			UnregisteredArea:        "0.0",
			ManagementMagnification: "1.5",
			ManagementFee:           "1500",
			RentPrice:               "0.0",
			DepositPrice:            "0.0",
			TenementFloor:           "5樓",
		},
		SellingPrice: "12000000",
		HostInfo: domain.HostInfo{
			TenementHostName:              "王大明",
			TenementHostTelphone:          "02-2345-6789",
			TenementHostPhone:             "0912345678",
			TenementHostLine:              "wangdm",
			TenementHostRemittanceBank:    "台灣銀行",
			TenementHostRemittanceAccount: "123456789",
			TenementHostAddress:           "台北市大安區",
			TenementHostBirthday:          "1970-01-01",
			TenementHostHobby:             "爬山健行",
			TenementHostRemark:            "無備註",
		},
		BuyerInfo: domain.BuyerInfo{
			BuyerOrderDate:   "2024-01-01",
			BuyerHandoutDate: "2024-02-01",
			BuyerName:        "李小華",
			BuyerIDImages:    []string{},
			BuyerPhone:       "0987654321",
			BuyerJobtitle:    "工程師",
			BuyerRemark:      "無備註",
		},
	}
}

// NewTestTenementRow returns a list row for GET /tenements.
func NewTestTenementRow(address float64, kind domain.TenementKind, status string) domain.TenementListItem {
	return domain.TenementListItem{
		TenementAddress:       address,
		TenementFace:          "東南",
		TenementStatus:        status,
		TenementType:          kind.Label(),
		TenementStyle:         "公寓",
		ManagementFeeBottom:   1000,
		ManagementFloorBottom: 3,
	}
}
