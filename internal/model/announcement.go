package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Announcement 本地镜像的 Mercado Livre 商品（anúncio）
// (company_id, ml_item_id) 唯一
type Announcement struct {
	BaseModel
	CompanyID int64  `gorm:"uniqueIndex:idx_announcement_company_item;not null" json:"company_id"`
	MLItemID  string `gorm:"column:ml_item_id;size:50;uniqueIndex:idx_announcement_company_item;not null" json:"ml_item_id"`

	// ---------- 同步字段 ----------
	Title             string          `gorm:"size:500" json:"title"`
	Price             decimal.Decimal `gorm:"type:decimal(12,2)" json:"price"`
	CurrencyID        string          `gorm:"size:10;default:BRL" json:"currency_id"`
	AvailableQuantity int             `json:"available_quantity"`
	SoldQuantity      int             `json:"sold_quantity"`
	Condition         string          `gorm:"size:50" json:"condition"`
	Status            string          `gorm:"size:50;index" json:"status"`
	Permalink         string          `gorm:"size:500" json:"permalink"`
	Thumbnail         string          `gorm:"size:500" json:"thumbnail"`
	SiteID            string          `gorm:"size:10" json:"site_id"`
	CategoryID        string          `gorm:"size:50" json:"category_id"`
	DomainID          string          `gorm:"size:100" json:"domain_id"`
	ListingTypeID     string          `gorm:"size:50" json:"listing_type_id"`
	ListingTypeName   *string         `gorm:"size:100" json:"listing_type_name"`
	ListingExposure   *string         `gorm:"size:50" json:"listing_exposure"`

	// 费用（listing_prices）
	ListingFeeAmount  decimal.NullDecimal `gorm:"type:decimal(12,2)" json:"listing_fee_amount"`
	SaleFeeAmount     decimal.NullDecimal `gorm:"type:decimal(12,2)" json:"sale_fee_amount"`
	SaleFeePercentage decimal.NullDecimal `gorm:"type:decimal(6,2)" json:"sale_fee_percentage"`
	SaleFeeFixed      decimal.NullDecimal `gorm:"type:decimal(12,2)" json:"sale_fee_fixed"`
	TotalCost         decimal.NullDecimal `gorm:"type:decimal(12,2)" json:"total_cost"`
	RequiresPicture   *bool               `json:"requires_picture"`
	FreeRelist        *bool               `json:"free_relist"`

	// 目录 / 价格
	CatalogListing            bool                `gorm:"default:false" json:"catalog_listing"`
	CatalogProductID          *string             `gorm:"size:50;index" json:"catalog_product_id"`
	FamilyName                *string             `gorm:"size:255" json:"family_name"`
	FamilyID                  *string             `gorm:"size:50" json:"family_id"`
	UserProductID             *string             `gorm:"size:50" json:"user_product_id"`
	InventoryID               *string             `gorm:"size:50" json:"inventory_id"`
	BasePrice                 decimal.NullDecimal `gorm:"type:decimal(12,2)" json:"base_price"`
	OriginalPrice             decimal.NullDecimal `gorm:"type:decimal(12,2)" json:"original_price"`
	SalePrice                 decimal.NullDecimal `gorm:"type:decimal(12,2)" json:"sale_price"`
	CatalogStatus             *string             `gorm:"size:50" json:"catalog_status"`
	CatalogVisitShare         *string             `gorm:"size:50" json:"catalog_visit_share"`
	CatalogCompetitorsSharing *int                `json:"catalog_competitors_sharing"`
	CatalogPriceToWin         decimal.NullDecimal `gorm:"type:decimal(12,2)" json:"catalog_price_to_win"`

	// 原始数据
	FullData            datatypes.JSON `gorm:"type:jsonb" json:"-"`
	PricesInfo          datatypes.JSON `gorm:"type:jsonb" json:"-"`
	SalePriceInfo       datatypes.JSON `gorm:"type:jsonb" json:"-"`
	CatalogPositionInfo datatypes.JSON `gorm:"type:jsonb" json:"-"`
	Attributes          datatypes.JSON `gorm:"type:jsonb" json:"-"`
	Pictures            datatypes.JSON `gorm:"type:jsonb" json:"-"`
	Tags                datatypes.JSON `gorm:"type:jsonb" json:"tags"`

	MLDateCreated *time.Time `gorm:"column:ml_date_created" json:"ml_date_created"`
	MLLastUpdated *time.Time `gorm:"column:ml_last_updated" json:"ml_last_updated"`
	// SyncHash 同步载荷摘要，用于判断本次同步是否有变化
	SyncHash string `gorm:"size:64" json:"-"`

	// ---------- 运营手工字段，同步永不覆盖 ----------
	ProductCost     decimal.NullDecimal `gorm:"type:decimal(12,2)" json:"product_cost"`
	Taxes           *string             `gorm:"type:text" json:"taxes"`
	AdsCost         *string             `gorm:"type:text" json:"ads_cost"`
	ShippingCost    decimal.NullDecimal `gorm:"type:decimal(12,2)" json:"shipping_cost"`
	AdditionalFees  *string             `gorm:"type:text" json:"additional_fees"`
	AdditionalNotes *string             `gorm:"type:text" json:"additional_notes"`

	CreatedBy int64 `gorm:"index" json:"created_by"`
	UpdatedBy int64 `json:"updated_by"`
}

func (Announcement) TableName() string { return "meli_announcements" }

// AnnouncementSyncColumns 同步时允许覆盖的列
var AnnouncementSyncColumns = []string{
	"title", "price", "currency_id", "available_quantity", "sold_quantity",
	"condition", "status", "permalink", "thumbnail", "site_id", "category_id", "domain_id",
	"listing_type_id", "listing_type_name", "listing_exposure",
	"listing_fee_amount", "sale_fee_amount", "sale_fee_percentage", "sale_fee_fixed",
	"total_cost", "requires_picture", "free_relist",
	"catalog_listing", "catalog_product_id", "family_name", "family_id",
	"user_product_id", "inventory_id", "base_price", "original_price", "sale_price",
	"catalog_status", "catalog_visit_share", "catalog_competitors_sharing", "catalog_price_to_win",
	"full_data", "prices_info", "sale_price_info", "catalog_position_info",
	"attributes", "pictures", "tags", "ml_date_created", "ml_last_updated",
	"sync_hash", "updated_at",
}
