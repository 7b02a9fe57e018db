package meli

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// ==========================================
// DTO: 用于接收 Mercado Livre API 返回的原始 JSON 数据
// ==========================================

// FlexString 兼容字符串 / 数字 / {"name": ...} 对象 / null
// Mercado Livre 不同接口对同一字段的类型并不一致
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
	case '{':
		var obj struct {
			ID   json.RawMessage `json:"id"`
			Name string          `json:"name"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		if obj.Name != "" {
			*f = FlexString(obj.Name)
			return nil
		}
		var id FlexString
		if len(obj.ID) > 0 {
			_ = id.UnmarshalJSON(obj.ID)
		}
		*f = id
	case '[':
		*f = ""
	default:
		// 数字 / 布尔，按字面量保存
		*f = FlexString(data)
	}
	return nil
}

func (f FlexString) String() string { return string(f) }

// Ptr 空值返回 nil
func (f FlexString) Ptr() *string {
	if f == "" {
		return nil
	}
	s := string(f)
	return &s
}

// ErrorResp 通用错误响应
type ErrorResp struct {
	Message string `json:"message"`
	Error   string `json:"error"`
	Status  int    `json:"status"`
}

// TokenResponse OAuth token 响应
// POST /oauth/token
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
	Scope        string `json:"scope"`
	UserID       string `json:"user_id"`
}

// Paging 分页信息
type Paging struct {
	Total  int `json:"total"`
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// ==================== 用户 ====================

// User 用户信息
// GET /users/me, GET /users/{id}
type User struct {
	ID               int64             `json:"id"`
	Nickname         string            `json:"nickname"`
	Email            string            `json:"email"`
	FirstName        string            `json:"first_name"`
	LastName         string            `json:"last_name"`
	CountryID        string            `json:"country_id"`
	SiteID           string            `json:"site_id"`
	Permalink        string            `json:"permalink"`
	UserType         string            `json:"user_type"`
	SellerReputation *SellerReputation `json:"seller_reputation"`
}

// IDString 用户 ID 字符串形式
func (u *User) IDString() string {
	return strconv.FormatInt(u.ID, 10)
}

type SellerReputation struct {
	LevelID           *string `json:"level_id"`
	PowerSellerStatus *string `json:"power_seller_status"`
	Transactions      struct {
		Total int `json:"total"`
	} `json:"transactions"`
}

// ==================== 商品 ====================

// ItemSearchResponse 卖家商品 ID 列表
// GET /users/{user_id}/items/search
type ItemSearchResponse struct {
	Results []string `json:"results"`
	Paging  Paging   `json:"paging"`
}

// ItemShipping 物流信息
type ItemShipping struct {
	Mode         *string  `json:"mode"`
	LogisticType *string  `json:"logistic_type"`
	FreeShipping bool     `json:"free_shipping"`
	Tags         []string `json:"tags"`
}

// Item 商品详情
// GET /items/{id}
type Item struct {
	ID                string              `json:"id"`
	SiteID            string              `json:"site_id"`
	Title             string              `json:"title"`
	SellerID          FlexString          `json:"seller_id"`
	CategoryID        string              `json:"category_id"`
	Price             decimal.Decimal     `json:"price"`
	BasePrice         decimal.NullDecimal `json:"base_price"`
	OriginalPrice     decimal.NullDecimal `json:"original_price"`
	CurrencyID        string              `json:"currency_id"`
	AvailableQuantity int                 `json:"available_quantity"`
	SoldQuantity      int                 `json:"sold_quantity"`
	ListingTypeID     string              `json:"listing_type_id"`
	Condition         string              `json:"condition"`
	Permalink         string              `json:"permalink"`
	Thumbnail         string              `json:"thumbnail"`
	Status            string              `json:"status"`
	DomainID          string              `json:"domain_id"`
	CatalogListing    bool                `json:"catalog_listing"`
	CatalogProductID  FlexString          `json:"catalog_product_id"`
	FamilyName        FlexString          `json:"family_name"`
	FamilyID          FlexString          `json:"family_id"`
	UserProductID     FlexString          `json:"user_product_id"`
	InventoryID       FlexString          `json:"inventory_id"`
	Shipping          ItemShipping        `json:"shipping"`
	Tags              []string            `json:"tags"`
	Attributes        json.RawMessage     `json:"attributes"`
	Pictures          json.RawMessage     `json:"pictures"`
	DateCreated       *time.Time          `json:"date_created"`
	LastUpdated       *time.Time          `json:"last_updated"`
}

// ItemPrice 价格条目
type ItemPrice struct {
	ID            string              `json:"id"`
	Type          string              `json:"type"`
	Amount        decimal.Decimal     `json:"amount"`
	RegularAmount decimal.NullDecimal `json:"regular_amount"`
	CurrencyID    string              `json:"currency_id"`
}

// ItemPrices 商品价格列表
// GET /items/{id}/prices
type ItemPrices struct {
	ID     string      `json:"id"`
	Prices []ItemPrice `json:"prices"`
}

// SalePrice 当前售价（含促销）
// GET /items/{id}/sale_price?context=channel_marketplace
type SalePrice struct {
	PriceID       string              `json:"price_id"`
	Amount        decimal.NullDecimal `json:"amount"`
	RegularAmount decimal.NullDecimal `json:"regular_amount"`
	CurrencyID    string              `json:"currency_id"`
}

// PriceToWin 目录竞争位置
// GET /items/{id}/price_to_win?version=v2
type PriceToWin struct {
	ItemID                       string              `json:"item_id"`
	CatalogProductID             FlexString          `json:"catalog_product_id"`
	CurrentPrice                 decimal.NullDecimal `json:"current_price"`
	PriceToWin                   decimal.NullDecimal `json:"price_to_win"`
	Status                       FlexString          `json:"status"`
	VisitShare                   FlexString          `json:"visit_share"`
	CompetitorsSharingFirstPlace *int                `json:"competitors_sharing_first_place"`
}

// SaleFeeDetails 销售佣金明细
type SaleFeeDetails struct {
	PercentageFee decimal.NullDecimal `json:"percentage_fee"`
	FixedFee      decimal.NullDecimal `json:"fixed_fee"`
	GrossAmount   decimal.NullDecimal `json:"gross_amount"`
}

// ListingPrice 刊登费用
// GET /sites/{site_id}/listing_prices
type ListingPrice struct {
	ListingTypeID    string          `json:"listing_type_id"`
	ListingTypeName  string          `json:"listing_type_name"`
	ListingExposure  string          `json:"listing_exposure"`
	CurrencyID       string          `json:"currency_id"`
	ListingFeeAmount decimal.Decimal `json:"listing_fee_amount"`
	SaleFeeAmount    decimal.Decimal `json:"sale_fee_amount"`
	SaleFeeDetails   SaleFeeDetails  `json:"sale_fee_details"`
	RequiresPicture  bool            `json:"requires_picture"`
	FreeRelist       bool            `json:"free_relist"`
	StopTime         *string         `json:"stop_time"`
}

// ==================== 类目 ====================

type CategoryRef struct {
	ID                       string `json:"id"`
	Name                     string `json:"name"`
	TotalItemsInThisCategory int    `json:"total_items_in_this_category,omitempty"`
}

// Category 类目详情
// GET /categories/{id}
type Category struct {
	ID                       string          `json:"id"`
	Name                     string          `json:"name"`
	TotalItemsInThisCategory int             `json:"total_items_in_this_category"`
	PathFromRoot             []CategoryRef   `json:"path_from_root"`
	ChildrenCategories       []CategoryRef   `json:"children_categories"`
	Settings                 json.RawMessage `json:"settings,omitempty"`
}

type AttributeValue struct {
	ID   FlexString `json:"id"`
	Name string     `json:"name"`
}

// CategoryAttribute 类目属性
// GET /categories/{id}/attributes
type CategoryAttribute struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	ValueType string           `json:"value_type"`
	Hierarchy string           `json:"hierarchy"`
	Tags      json.RawMessage  `json:"tags,omitempty"`
	Values    []AttributeValue `json:"values,omitempty"`
}

// ==================== 目录竞品 ====================

// CatalogItem 目录商品下的一个卖家报价
type CatalogItem struct {
	ItemID            string              `json:"item_id"`
	Title             string              `json:"title"`
	Price             decimal.Decimal     `json:"price"`
	OriginalPrice     decimal.NullDecimal `json:"original_price"`
	CurrencyID        string              `json:"currency_id"`
	Condition         string              `json:"condition"`
	AvailableQuantity int                 `json:"available_quantity"`
	SoldQuantity      int                 `json:"sold_quantity"`
	Permalink         string              `json:"permalink"`
	SellerID          FlexString          `json:"seller_id"`
	ListingTypeID     FlexString          `json:"listing_type_id"`
	Shipping          ItemShipping        `json:"shipping"`
	Tags              []string            `json:"tags"`
	DealIDs           []string            `json:"deal_ids"`
	DateCreated       *time.Time          `json:"date_created"`
	LastUpdated       *time.Time          `json:"last_updated"`
}

// CatalogItemsResponse 目录商品的所有报价
// GET /products/{catalog_product_id}/items
type CatalogItemsResponse struct {
	Results []CatalogItem `json:"results"`
	Paging  Paging        `json:"paging"`
}

// ==================== 订单 ====================

type Phone struct {
	AreaCode FlexString `json:"area_code"`
	Number   FlexString `json:"number"`
}

// Full 区号 + 号码
func (p *Phone) Full() *string {
	if p == nil {
		return nil
	}
	s := string(p.AreaCode) + string(p.Number)
	if s == "" {
		return nil
	}
	return &s
}

type Address struct {
	State   FlexString `json:"state"`
	City    FlexString `json:"city"`
	Address FlexString `json:"address"`
	ZipCode FlexString `json:"zip_code"`
}

type Identification struct {
	Type   FlexString `json:"type"`
	Number FlexString `json:"number"`
}

// OrderParty 订单买家 / 卖家
type OrderParty struct {
	ID               FlexString      `json:"id"`
	Nickname         FlexString      `json:"nickname"`
	Email            FlexString      `json:"email"`
	FirstName        FlexString      `json:"first_name"`
	LastName         FlexString      `json:"last_name"`
	Phone            *Phone          `json:"phone"`
	AlternativePhone *Phone          `json:"alternative_phone"`
	RegistrationDate *time.Time      `json:"registration_date"`
	UserType         FlexString      `json:"user_type"`
	CountryID        FlexString      `json:"country_id"`
	SiteID           FlexString      `json:"site_id"`
	Permalink        FlexString      `json:"permalink"`
	Address          *Address        `json:"address"`
	Identification   *Identification `json:"identification"`
}

type OrderStatusDetail struct {
	Code        FlexString `json:"code"`
	Description FlexString `json:"description"`
}

type OrderShipping struct {
	ID             FlexString          `json:"id"`
	Status         FlexString          `json:"status"`
	Substatus      FlexString          `json:"substatus"`
	Cost           decimal.NullDecimal `json:"cost"`
	TrackingNumber FlexString          `json:"tracking_number"`
	TrackingMethod FlexString          `json:"tracking_method"`
	DeclaredValue  decimal.NullDecimal `json:"declared_value"`
}

type OrderPayment struct {
	ID                        FlexString          `json:"id"`
	PaymentMethodID           FlexString          `json:"payment_method_id"`
	PaymentType               FlexString          `json:"payment_type"`
	Status                    FlexString          `json:"status"`
	StatusDetail              FlexString          `json:"status_detail"`
	StatusCode                FlexString          `json:"status_code"`
	OperationType             FlexString          `json:"operation_type"`
	Installments              *int                `json:"installments"`
	TransactionAmount         decimal.NullDecimal `json:"transaction_amount"`
	TransactionAmountRefunded decimal.NullDecimal `json:"transaction_amount_refunded"`
	TaxesAmount               decimal.NullDecimal `json:"taxes_amount"`
	CouponAmount              decimal.NullDecimal `json:"coupon_amount"`
	OverpaidAmount            decimal.NullDecimal `json:"overpaid_amount"`
	InstallmentAmount         decimal.NullDecimal `json:"installment_amount"`
	AuthorizationCode         FlexString          `json:"authorization_code"`
	TransactionOrderID        FlexString          `json:"transaction_order_id"`
	DateApproved              *time.Time          `json:"date_approved"`
	DateLastModified          *time.Time          `json:"date_last_modified"`
	CardID                    FlexString          `json:"card_id"`
	IssuerID                  FlexString          `json:"issuer_id"`
	Collector                 *struct {
		ID FlexString `json:"id"`
	} `json:"collector"`
}

type FeedbackEntry struct {
	Rating    FlexString `json:"rating"`
	Fulfilled *bool      `json:"fulfilled"`
}

type OrderFeedback struct {
	Sale     *FeedbackEntry `json:"sale"`
	Purchase *FeedbackEntry `json:"purchase"`
}

// Order 订单
// GET /orders/{id}；/orders/search 的 results 为同结构的子集
type Order struct {
	ID              FlexString          `json:"id"`
	Status          string              `json:"status"`
	StatusDetail    *OrderStatusDetail  `json:"status_detail"`
	DateCreated     *time.Time          `json:"date_created"`
	DateClosed      *time.Time          `json:"date_closed"`
	DateLastUpdated *time.Time          `json:"date_last_updated"`
	TotalAmount     decimal.Decimal     `json:"total_amount"`
	PaidAmount      decimal.NullDecimal `json:"paid_amount"`
	CurrencyID      string              `json:"currency_id"`
	Comment         FlexString          `json:"comment"`
	PackID          FlexString          `json:"pack_id"`
	PickupID        FlexString          `json:"pickup_id"`
	Fulfilled       *bool               `json:"fulfilled"`
	Buyer           OrderParty          `json:"buyer"`
	Seller          OrderParty          `json:"seller"`
	Shipping        OrderShipping       `json:"shipping"`
	Payments        []OrderPayment      `json:"payments"`
	Feedback        OrderFeedback       `json:"feedback"`
	Tags            []string            `json:"tags"`
	OrderItems      json.RawMessage     `json:"order_items"`
}

// OrderSearchResponse 订单搜索
// GET /orders/search
type OrderSearchResponse struct {
	Results []Order `json:"results"`
	Paging  Paging  `json:"paging"`
}

// ==================== 广告 ====================

type Advertiser struct {
	AdvertiserID   FlexString `json:"advertiser_id"`
	SiteID         string     `json:"site_id"`
	AdvertiserName string     `json:"advertiser_name"`
	AccountName    string     `json:"account_name"`
}

// AdvertisersResponse Product Ads 广告主
// GET /advertising/advertisers?product_id=PADS
type AdvertisersResponse struct {
	Advertisers []Advertiser `json:"advertisers"`
}

// ProductAd Product Ads 广告详情
// GET /marketplace/advertising/{site_id}/product_ads/ads/{item_id}
type ProductAd struct {
	ItemID     string              `json:"item_id"`
	CampaignID FlexString          `json:"campaign_id"`
	Title      string              `json:"title"`
	Price      decimal.NullDecimal `json:"price"`
	Status     string              `json:"status"`
}

// AdMetrics 广告指标
type AdMetrics struct {
	Clicks                   int             `json:"clicks"`
	Prints                   int             `json:"prints"`
	CTR                      *float64        `json:"ctr"`
	Cost                     decimal.Decimal `json:"cost"`
	CPC                      *float64        `json:"cpc"`
	ACOS                     *float64        `json:"acos"`
	TACOS                    *float64        `json:"tacos"`
	ROAS                     *float64        `json:"roas"`
	CVR                      *float64        `json:"cvr"`
	SOV                      *float64        `json:"sov"`
	OrganicUnitsQuantity     int             `json:"organic_units_quantity"`
	OrganicUnitsAmount       decimal.Decimal `json:"organic_units_amount"`
	OrganicItemsQuantity     int             `json:"organic_items_quantity"`
	DirectItemsQuantity      int             `json:"direct_items_quantity"`
	DirectUnitsQuantity      int             `json:"direct_units_quantity"`
	DirectAmount             decimal.Decimal `json:"direct_amount"`
	IndirectItemsQuantity    int             `json:"indirect_items_quantity"`
	IndirectUnitsQuantity    int             `json:"indirect_units_quantity"`
	IndirectAmount           decimal.Decimal `json:"indirect_amount"`
	AdvertisingItemsQuantity int             `json:"advertising_items_quantity"`
	UnitsQuantity            int             `json:"units_quantity"`
	TotalAmount              decimal.Decimal `json:"total_amount"`
}
