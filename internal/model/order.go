package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// ==================== MeliOrder 订单快照 ====================

// MeliOrder Mercado Livre 订单快照
// (company_id, order_id) 在应用层保证唯一；入库后不再更新
type MeliOrder struct {
	BaseModel
	CompanyID int64  `gorm:"index:idx_order_company_order;not null" json:"company_id"`
	OrderID   string `gorm:"size:50;index:idx_order_company_order;not null" json:"order_id"`

	Status          string              `gorm:"size:50;index" json:"status"`
	StatusDetail    *string             `gorm:"type:text" json:"status_detail"`
	DateCreated     *time.Time          `gorm:"index" json:"date_created"`
	DateClosed      *time.Time          `json:"date_closed"`
	DateLastUpdated *time.Time          `json:"date_last_updated"`
	TotalAmount     decimal.Decimal     `gorm:"type:decimal(12,2)" json:"total_amount"`
	PaidAmount      decimal.NullDecimal `gorm:"type:decimal(12,2)" json:"paid_amount"`
	CurrencyID      string              `gorm:"size:10;default:BRL" json:"currency_id"`
	Comment         *string             `gorm:"type:text" json:"comment"`
	PackID          *string             `gorm:"size:50" json:"pack_id"`
	PickupID        *string             `gorm:"size:50" json:"pickup_id"`
	Fulfilled       *bool               `json:"fulfilled"`

	// 买家
	BuyerID                   string     `gorm:"size:50" json:"buyer_id"`
	BuyerNickname             *string    `gorm:"size:255" json:"buyer_nickname"`
	BuyerEmail                *string    `gorm:"size:255" json:"buyer_email"`
	BuyerFirstName            *string    `gorm:"size:255" json:"buyer_first_name"`
	BuyerLastName             *string    `gorm:"size:255" json:"buyer_last_name"`
	BuyerPhone                *string    `gorm:"size:50" json:"buyer_phone"`
	BuyerAlternativePhone     *string    `gorm:"size:50" json:"buyer_alternative_phone"`
	BuyerRegistrationDate     *time.Time `json:"buyer_registration_date"`
	BuyerUserType             *string    `gorm:"size:50" json:"buyer_user_type"`
	BuyerCountryID            *string    `gorm:"size:10" json:"buyer_country_id"`
	BuyerSiteID               *string    `gorm:"size:10" json:"buyer_site_id"`
	BuyerPermalink            *string    `gorm:"size:500" json:"buyer_permalink"`
	BuyerAddressState         *string    `gorm:"size:100" json:"buyer_address_state"`
	BuyerAddressCity          *string    `gorm:"size:100" json:"buyer_address_city"`
	BuyerAddressAddress       *string    `gorm:"size:500" json:"buyer_address_address"`
	BuyerAddressZipCode       *string    `gorm:"size:20" json:"buyer_address_zip_code"`
	BuyerIdentificationType   *string    `gorm:"size:20" json:"buyer_identification_type"`
	BuyerIdentificationNumber *string    `gorm:"size:50" json:"buyer_identification_number"`

	// 卖家
	SellerID       string  `gorm:"size:50" json:"seller_id"`
	SellerNickname *string `gorm:"size:255" json:"seller_nickname"`
	SellerEmail    *string `gorm:"size:255" json:"seller_email"`
	SellerPhone    *string `gorm:"size:50" json:"seller_phone"`

	// 物流
	ShippingID             *string             `gorm:"size:50" json:"shipping_id"`
	ShippingStatus         *string             `gorm:"size:50" json:"shipping_status"`
	ShippingSubstatus      *string             `gorm:"size:50" json:"shipping_substatus"`
	ShippingCost           decimal.NullDecimal `gorm:"type:decimal(12,2)" json:"shipping_cost"`
	ShippingTrackingNumber *string             `gorm:"size:100" json:"shipping_tracking_number"`
	ShippingTrackingMethod *string             `gorm:"size:100" json:"shipping_tracking_method"`
	ShippingDeclaredValue  decimal.NullDecimal `gorm:"type:decimal(12,2)" json:"shipping_declared_value"`

	// 支付（取第一笔）
	PaymentID                        *string             `gorm:"size:50" json:"payment_id"`
	PaymentMethodID                  *string             `gorm:"size:50" json:"payment_method_id"`
	PaymentType                      *string             `gorm:"size:50" json:"payment_type"`
	PaymentStatus                    *string             `gorm:"size:50" json:"payment_status"`
	PaymentStatusDetail              *string             `gorm:"size:100" json:"payment_status_detail"`
	PaymentInstallments              *int                `json:"payment_installments"`
	PaymentOperationType             *string             `gorm:"size:50" json:"payment_operation_type"`
	PaymentTransactionAmount         decimal.NullDecimal `gorm:"type:decimal(12,2)" json:"payment_transaction_amount"`
	PaymentTransactionAmountRefunded decimal.NullDecimal `gorm:"type:decimal(12,2)" json:"payment_transaction_amount_refunded"`
	PaymentTaxesAmount               decimal.NullDecimal `gorm:"type:decimal(12,2)" json:"payment_taxes_amount"`
	PaymentCouponAmount              decimal.NullDecimal `gorm:"type:decimal(12,2)" json:"payment_coupon_amount"`
	PaymentInstallmentAmount         decimal.NullDecimal `gorm:"type:decimal(12,2)" json:"payment_installment_amount"`
	PaymentDateApproved              *time.Time          `json:"payment_date_approved"`
	PaymentDateLastModified          *time.Time          `json:"payment_date_last_modified"`

	// 评价
	FeedbackSaleRating        *string `gorm:"size:20" json:"feedback_sale_rating"`
	FeedbackSaleFulfilled     *bool   `json:"feedback_sale_fulfilled"`
	FeedbackPurchaseRating    *string `gorm:"size:20" json:"feedback_purchase_rating"`
	FeedbackPurchaseFulfilled *bool   `json:"feedback_purchase_fulfilled"`

	// JSON 原始数据
	Tags       datatypes.JSON `gorm:"type:jsonb" json:"tags"`
	OrderItems datatypes.JSON `gorm:"type:jsonb" json:"order_items"`
	Payments   datatypes.JSON `gorm:"type:jsonb" json:"-"`
	RawData    datatypes.JSON `gorm:"type:jsonb" json:"-"`

	MLDateCreated *time.Time `gorm:"column:ml_date_created" json:"ml_date_created"`
	MLLastUpdated *time.Time `gorm:"column:ml_last_updated" json:"ml_last_updated"`
}

func (MeliOrder) TableName() string { return "meli_orders" }
