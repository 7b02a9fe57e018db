package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"meli_dev_v1_202610/internal/api/dto"
	"meli_dev_v1_202610/internal/model"
	"meli_dev_v1_202610/internal/repository"
	"meli_dev_v1_202610/pkg/errs"
	"meli_dev_v1_202610/pkg/meli"
)

// orderSearchPageSize orders/search 单页上限
const orderSearchPageSize = 50

// ==================== OrderService 订单 ====================

type OrderService struct {
	repo   repository.OrderRepository
	tokens TokenProvider
	client *meli.Client
	logger *zap.Logger
}

// NewOrderService 创建订单服务
func NewOrderService(repo repository.OrderRepository, tokens TokenProvider, client *meli.Client, logger *zap.Logger) *OrderService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrderService{repo: repo, tokens: tokens, client: client, logger: logger}
}

// ==================== 同步 ====================

// SyncOrders 分页拉取订单，只插入本地不存在的订单
// 已存在的订单默认跳过；RefreshExisting 时仅用搜索结果更新状态字段
func (s *OrderService) SyncOrders(ctx context.Context, companyID int64, opts dto.OrderSyncOptions) (*dto.OrderSyncResult, error) {
	if err := validateDates(opts.DateFrom, opts.DateTo); err != nil {
		return nil, err
	}
	integ, err := s.tokens.EnsureValidToken(ctx, companyID)
	if err != nil {
		return nil, err
	}

	result := &dto.OrderSyncResult{Errors: []string{}}
	log := s.logger.With(zap.Int64("company_id", companyID))

	offset := 0
	for {
		page, err := s.client.SearchOrders(ctx, integ.AccessToken, meli.OrderSearchQuery{
			SellerID: integ.MeliUserID,
			Status:   opts.Status,
			DateFrom: opts.DateFrom,
			DateTo:   opts.DateTo,
			Limit:    orderSearchPageSize,
			Offset:   offset,
		})
		if err != nil {
			if offset == 0 {
				return nil, err
			}
			// 中途失败保留已同步的部分
			log.Warn("订单分页查询失败", zap.Int("offset", offset), zap.Error(err))
			result.Errors = append(result.Errors, fmt.Sprintf("offset %d: %s", offset, errs.PublicMessage(err)))
			break
		}
		if len(page.Results) == 0 {
			break
		}
		result.TotalFound = page.Paging.Total

		for i := range page.Results {
			if err := ctx.Err(); err != nil {
				return result, err
			}
			s.syncOne(ctx, companyID, integ.AccessToken, &page.Results[i], opts.RefreshExisting, result, log)
		}

		offset += orderSearchPageSize
		if offset >= page.Paging.Total {
			break
		}
	}

	result.TotalProcessed = result.Synced + result.Skipped + result.Updated
	log.Info("订单同步完成",
		zap.Int("synced", result.Synced),
		zap.Int("skipped", result.Skipped),
		zap.Int("updated", result.Updated),
		zap.Int("errors", len(result.Errors)))
	return result, nil
}

func (s *OrderService) syncOne(ctx context.Context, companyID int64, token string, summary *meli.Order, refresh bool, result *dto.OrderSyncResult, log *zap.Logger) {
	orderID := summary.ID.String()
	if orderID == "" {
		return
	}

	exists, err := s.repo.ExistsByOrderID(ctx, companyID, orderID)
	if err != nil {
		log.Error("查询本地订单失败", zap.String("order_id", orderID), zap.Error(err))
		result.Errors = append(result.Errors, fmt.Sprintf("%s: 数据库错误", orderID))
		return
	}
	if exists {
		if !refresh {
			result.Skipped++
			return
		}
		if err := s.repo.UpdateByOrderID(ctx, companyID, orderID, orderStatusFields(summary)); err != nil {
			log.Error("更新订单状态失败", zap.String("order_id", orderID), zap.Error(err))
			result.Errors = append(result.Errors, fmt.Sprintf("%s: 更新失败", orderID))
			return
		}
		result.Updated++
		return
	}

	order, raw, err := s.client.GetOrder(ctx, token, orderID)
	if err != nil {
		log.Warn("获取订单详情失败", zap.String("order_id", orderID), zap.Error(err))
		result.Errors = append(result.Errors, fmt.Sprintf("%s: %s", orderID, errs.PublicMessage(err)))
		return
	}
	if err := s.repo.Create(ctx, BuildOrder(companyID, order, raw)); err != nil {
		log.Error("保存订单失败", zap.String("order_id", orderID), zap.Error(err))
		result.Errors = append(result.Errors, fmt.Sprintf("%s: 保存失败", orderID))
		return
	}
	result.Synced++
}

// orderStatusFields 搜索结果中可刷新的状态字段
func orderStatusFields(o *meli.Order) map[string]interface{} {
	fields := map[string]interface{}{"status": o.Status}
	if o.StatusDetail != nil {
		fields["status_detail"] = o.StatusDetail.Description.Ptr()
	}
	if o.DateLastUpdated != nil {
		fields["date_last_updated"] = *o.DateLastUpdated
		fields["ml_last_updated"] = *o.DateLastUpdated
	}
	return fields
}

// BuildOrder 订单详情 -> 扁平化快照
func BuildOrder(companyID int64, o *meli.Order, raw []byte) *model.MeliOrder {
	m := &model.MeliOrder{
		CompanyID:       companyID,
		OrderID:         o.ID.String(),
		Status:          o.Status,
		DateCreated:     o.DateCreated,
		DateClosed:      o.DateClosed,
		DateLastUpdated: o.DateLastUpdated,
		TotalAmount:     o.TotalAmount,
		PaidAmount:      o.PaidAmount,
		CurrencyID:      o.CurrencyID,
		Comment:         o.Comment.Ptr(),
		PackID:          o.PackID.Ptr(),
		PickupID:        o.PickupID.Ptr(),
		Fulfilled:       o.Fulfilled,
		MLDateCreated:   o.DateCreated,
		MLLastUpdated:   o.DateLastUpdated,
		RawData:         jsonColumn(raw),
	}
	if m.CurrencyID == "" {
		m.CurrencyID = "BRL"
	}
	if o.StatusDetail != nil {
		m.StatusDetail = o.StatusDetail.Description.Ptr()
	}

	// 买家
	b := &o.Buyer
	m.BuyerID = b.ID.String()
	m.BuyerNickname = b.Nickname.Ptr()
	m.BuyerEmail = b.Email.Ptr()
	m.BuyerFirstName = b.FirstName.Ptr()
	m.BuyerLastName = b.LastName.Ptr()
	m.BuyerPhone = b.Phone.Full()
	m.BuyerAlternativePhone = b.AlternativePhone.Full()
	m.BuyerRegistrationDate = b.RegistrationDate
	m.BuyerUserType = b.UserType.Ptr()
	m.BuyerCountryID = b.CountryID.Ptr()
	m.BuyerSiteID = b.SiteID.Ptr()
	m.BuyerPermalink = b.Permalink.Ptr()
	if addr := b.Address; addr != nil {
		m.BuyerAddressState = addr.State.Ptr()
		m.BuyerAddressCity = addr.City.Ptr()
		m.BuyerAddressAddress = addr.Address.Ptr()
		m.BuyerAddressZipCode = addr.ZipCode.Ptr()
	}
	if ident := b.Identification; ident != nil {
		m.BuyerIdentificationType = ident.Type.Ptr()
		m.BuyerIdentificationNumber = ident.Number.Ptr()
	}

	// 卖家
	m.SellerID = o.Seller.ID.String()
	m.SellerNickname = o.Seller.Nickname.Ptr()
	m.SellerEmail = o.Seller.Email.Ptr()
	m.SellerPhone = o.Seller.Phone.Full()

	// 物流
	sh := &o.Shipping
	m.ShippingID = sh.ID.Ptr()
	m.ShippingStatus = sh.Status.Ptr()
	m.ShippingSubstatus = sh.Substatus.Ptr()
	m.ShippingCost = sh.Cost
	m.ShippingTrackingNumber = sh.TrackingNumber.Ptr()
	m.ShippingTrackingMethod = sh.TrackingMethod.Ptr()
	m.ShippingDeclaredValue = sh.DeclaredValue

	// 支付取第一笔
	if len(o.Payments) > 0 {
		p := &o.Payments[0]
		m.PaymentID = p.ID.Ptr()
		m.PaymentMethodID = p.PaymentMethodID.Ptr()
		m.PaymentType = p.PaymentType.Ptr()
		m.PaymentStatus = p.Status.Ptr()
		m.PaymentStatusDetail = p.StatusDetail.Ptr()
		m.PaymentInstallments = p.Installments
		m.PaymentOperationType = p.OperationType.Ptr()
		m.PaymentTransactionAmount = p.TransactionAmount
		m.PaymentTransactionAmountRefunded = p.TransactionAmountRefunded
		m.PaymentTaxesAmount = p.TaxesAmount
		m.PaymentCouponAmount = p.CouponAmount
		m.PaymentInstallmentAmount = p.InstallmentAmount
		m.PaymentDateApproved = p.DateApproved
		m.PaymentDateLastModified = p.DateLastModified
	}

	// 评价
	if f := o.Feedback.Sale; f != nil {
		m.FeedbackSaleRating = f.Rating.Ptr()
		m.FeedbackSaleFulfilled = f.Fulfilled
	}
	if f := o.Feedback.Purchase; f != nil {
		m.FeedbackPurchaseRating = f.Rating.Ptr()
		m.FeedbackPurchaseFulfilled = f.Fulfilled
	}

	// JSON 原样保留
	sections := rawSections(raw)
	m.Tags = sectionOrMarshal(sections["tags"], o.Tags)
	m.OrderItems = jsonColumn(o.OrderItems)
	m.Payments = sectionOrMarshal(sections["payments"], o.Payments)
	return m
}

func rawSections(raw []byte) map[string]json.RawMessage {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(raw, &top); err != nil {
		return nil
	}
	return top
}

func sectionOrMarshal(section json.RawMessage, v interface{}) datatypes.JSON {
	if len(section) > 0 {
		return datatypes.JSON(section)
	}
	b, err := json.Marshal(v)
	if err != nil || string(b) == "null" {
		return nil
	}
	return datatypes.JSON(b)
}

// ==================== 查询 ====================

// SearchOrders 实时订单搜索
func (s *OrderService) SearchOrders(ctx context.Context, companyID int64, req *dto.OrderSearchRequest) (*meli.OrderSearchResponse, error) {
	if err := validateDates(req.DateFrom, req.DateTo); err != nil {
		return nil, err
	}
	integ, err := s.tokens.EnsureValidToken(ctx, companyID)
	if err != nil {
		return nil, err
	}
	limit := req.Limit
	if limit <= 0 || limit > orderSearchPageSize {
		limit = orderSearchPageSize
	}
	return s.client.SearchOrders(ctx, integ.AccessToken, meli.OrderSearchQuery{
		SellerID: integ.MeliUserID,
		Status:   req.Status,
		DateFrom: req.DateFrom,
		DateTo:   req.DateTo,
		Limit:    limit,
		Offset:   req.Offset,
	})
}

// maxStoredOrdersLimit 本地订单单页上限
const maxStoredOrdersLimit = 200

// ListStoredOrders 本地订单分页，日期为 YYYY-MM-DD（date_to 当天包含在内）
func (s *OrderService) ListStoredOrders(ctx context.Context, companyID int64, req *dto.StoredOrdersRequest) (*dto.StoredOrdersResponse, error) {
	filter := repository.OrderFilter{
		CompanyID: companyID,
		Status:    req.Status,
		Limit:     req.Limit,
		Offset:    req.Offset,
	}
	if filter.Limit <= 0 {
		filter.Limit = 50
	}
	if filter.Limit > maxStoredOrdersLimit {
		filter.Limit = maxStoredOrdersLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	if req.DateFrom != "" {
		from, err := parseDate(req.DateFrom)
		if err != nil {
			return nil, err
		}
		filter.StartDate = &from
	}
	if req.DateTo != "" {
		to, err := parseDate(req.DateTo)
		if err != nil {
			return nil, err
		}
		end := to.AddDate(0, 0, 1)
		filter.EndDate = &end
	}

	list, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, errs.Internal(err, "查询订单失败")
	}
	return &dto.StoredOrdersResponse{
		Total:   total,
		Limit:   filter.Limit,
		Offset:  filter.Offset,
		HasMore: int64(filter.Offset+filter.Limit) < total,
		List:    list,
	}, nil
}

// GetStoredOrder 本地订单详情
func (s *OrderService) GetStoredOrder(ctx context.Context, companyID int64, orderID string) (*model.MeliOrder, error) {
	order, err := s.repo.GetByOrderID(ctx, companyID, orderID)
	if err != nil {
		return nil, errs.Internal(err, "查询订单失败")
	}
	if order == nil {
		return nil, errs.NotFound("订单 %s 不存在", orderID)
	}
	return order, nil
}

// ==================== 辅助 ====================

func parseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, errs.Validation("日期格式无效: %s，应为 YYYY-MM-DD", s)
	}
	return t, nil
}

func validateDates(dates ...string) error {
	for _, d := range dates {
		if d == "" {
			continue
		}
		if _, err := parseDate(d); err != nil {
			return err
		}
	}
	return nil
}
