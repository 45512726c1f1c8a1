package service

import (
	"context"
	"errors"
	"fmt"
	"html"
	"log/slog"
	"slices"
	"time"

	"github.com/digiri/giriloyo-batik/internal/api/middleware"
	"github.com/digiri/giriloyo-batik/internal/config"
	appErrors "github.com/digiri/giriloyo-batik/internal/errors"
	"github.com/digiri/giriloyo-batik/internal/metrics"
	"github.com/digiri/giriloyo-batik/internal/models"
	repository "github.com/digiri/giriloyo-batik/internal/repositories"
	"github.com/digiri/giriloyo-batik/pkg/crossmint"
)

type NFTService interface {
	// ProcessMintJob is the dispatcher handler for paid orders.
	ProcessMintJob(ctx context.Context, job models.MintJob) error
	MintOrder(ctx context.Context, job models.MintJob) (*models.MintSummary, error)
	// RetryFailed re-mints failed lines and mints lines that were never attempted.
	RetryFailed(ctx context.Context, orderID string) (*models.MintSummary, error)
	MintItem(ctx context.Context, req *models.CertificateRequest) (*models.MintResult, error)
	GetStatus(ctx context.Context, guestID, orderID string) (*models.NFTOrderStatus, error)
	GetCertificates(ctx context.Context, guestID, orderID string) ([]models.CertificateDetails, error)
}

type nftService struct {
	repo          repository.OrderRepository
	orders        OrderService
	products      ProductService
	minter        crossmint.Client
	notifications NotificationService
	certificate   config.Certificate
	externalURL   string
	adminEmail    string
	now           func() time.Time
}

func NewNFTService(repo repository.OrderRepository, orders OrderService, products ProductService, minter crossmint.Client,
	notifications NotificationService, certificate config.Certificate, externalURL, adminEmail string) NFTService {
	return &nftService{
		repo:          repo,
		orders:        orders,
		products:      products,
		minter:        minter,
		notifications: notifications,
		certificate:   certificate,
		externalURL:   externalURL,
		adminEmail:    adminEmail,
		now:           time.Now,
	}
}

func isPaid(status models.OrderStatus) bool {
	switch status {
	case models.OrderStatusPaid, models.OrderStatusProcessing, models.OrderStatusShipped, models.OrderStatusDelivered:
		return true
	}

	return false
}

// load reads the order from the database, bypassing the cache, since item
// states change underneath it.
func (s *nftService) load(ctx context.Context, orderID string) (*models.Order, error) {
	order, err := s.repo.GetOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.NotFoundError("Order not found").WithError(err)
		}
		return nil, appErrors.DatabaseError("Failed to fetch order").WithError(err)
	}

	return order, nil
}

func (s *nftService) ProcessMintJob(ctx context.Context, job models.MintJob) error {
	_, err := s.MintOrder(ctx, job)

	return err
}

func (s *nftService) MintOrder(ctx context.Context, job models.MintJob) (*models.MintSummary, error) {
	logger := middleware.LoggerFromContext(ctx).With(slog.String("orderId", job.OrderID))

	order, err := s.load(ctx, job.OrderID)
	if err != nil {
		return nil, err
	}

	if !isPaid(order.Status) {
		return nil, appErrors.BadRequestError("Order has not been paid")
	}

	lineNos := job.LineNos
	if len(lineNos) == 0 {
		for _, it := range order.Items {
			lineNos = append(lineNos, it.LineNo)
		}
	}

	from := []models.NFTStatus{models.NFTStatusPending}
	if job.Retry {
		from = append(from, models.NFTStatusFailed)
	}

	claimed, err := s.repo.ClaimItems(ctx, order.OrderID, lineNos, from)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to claim order items").WithError(err)
	}

	summary := &models.MintSummary{OrderID: order.OrderID, Attempted: len(claimed), Skipped: len(lineNos) - len(claimed)}

	for _, lineNo := range claimed {
		item, ok := order.Item(lineNo)
		if !ok {
			continue
		}

		req := s.requestFor(ctx, order, item)

		if _, err := s.mint(ctx, order.OrderID, lineNo, req); err != nil {
			summary.Failed++
			continue
		}

		summary.Minted++
	}

	s.orders.Invalidate(ctx, order.OrderID)

	logger.Info("Certificate minting finished",
		slog.Int("attempted", summary.Attempted), slog.Int("minted", summary.Minted),
		slog.Int("failed", summary.Failed), slog.Int("skipped", summary.Skipped))

	return summary, nil
}

func (s *nftService) RetryFailed(ctx context.Context, orderID string) (*models.MintSummary, error) {
	return s.MintOrder(ctx, models.MintJob{OrderID: orderID, Retry: true})
}

// MintItem mints one line on request. LineNo 0 selects the first line named
// req.ProductName.
func (s *nftService) MintItem(ctx context.Context, req *models.CertificateRequest) (*models.MintResult, error) {

	order, err := s.load(ctx, req.OrderID)
	if err != nil {
		return nil, err
	}

	lineNo := req.LineNo
	if lineNo == 0 {
		idx := slices.IndexFunc(order.Items, func(it models.OrderItem) bool { return it.Name == req.ProductName })
		if idx < 0 {
			return nil, appErrors.NotFoundError("Order line not found")
		}
		lineNo = order.Items[idx].LineNo
	}

	if _, ok := order.Item(lineNo); !ok {
		return nil, appErrors.NotFoundError("Order line not found")
	}

	if !isPaid(order.Status) {
		return nil, appErrors.BadRequestError("Order has not been paid")
	}

	claimed, err := s.repo.ClaimItems(ctx, order.OrderID, []int{lineNo},
		[]models.NFTStatus{models.NFTStatusPending, models.NFTStatusFailed})
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to claim order item").WithError(err)
	}

	if len(claimed) == 0 {
		return nil, appErrors.ConflictError("Certificate already minted or in progress")
	}

	withCustomer := *req
	withCustomer.LineNo = lineNo
	s.applyDefaults(&withCustomer)

	result, err := s.mint(ctx, order.OrderID, lineNo, &withCustomer)

	s.orders.Invalidate(ctx, order.OrderID)

	if err != nil {
		return nil, appErrors.ThirdPartyError("Failed to mint NFT").WithError(err)
	}

	return result, nil
}

func (s *nftService) applyDefaults(req *models.CertificateRequest) {
	if req.Artisan == "" {
		req.Artisan = s.certificate.DefaultArtisan
	}
	if req.Location == "" {
		req.Location = s.certificate.DefaultLocation
	}
	if req.ProcessingTime == "" {
		req.ProcessingTime = s.certificate.DefaultProcessingTime
	}
	if req.Motif == "" {
		req.Motif = models.MotifFromName(req.ProductName)
	}
}

// requestFor describes the certificate of one order line, taking provenance
// from the catalog when the product still exists.
func (s *nftService) requestFor(ctx context.Context, order *models.Order, item *models.OrderItem) *models.CertificateRequest {
	req := &models.CertificateRequest{
		OrderID:       order.OrderID,
		LineNo:        item.LineNo,
		CustomerEmail: order.ShippingAddress.Email,
		CustomerName:  order.ShippingAddress.Name,
		ProductName:   item.Name,
		ProductImage:  item.ImageRef,
	}

	if product, err := s.products.GetProductByID(ctx, item.ProductID); err == nil {
		req.Artisan = product.Artisan
		req.Location = product.Location
		req.Motif = product.Motif
		req.ProcessingTime = product.ProcessingTime
	} else {
		middleware.LoggerFromContext(ctx).Debug("Using certificate defaults", slog.Int64("productId", item.ProductID), slog.Any("error", err))
	}

	s.applyDefaults(req)

	return req
}

// mint calls the minting service for a claimed line and records the outcome.
// The outcome is recorded even when ctx is cancelled meanwhile.
func (s *nftService) mint(ctx context.Context, orderID string, lineNo int, req *models.CertificateRequest) (*models.MintResult, error) {
	logger := middleware.LoggerFromContext(ctx).With(slog.String("orderId", orderID), slog.Int("lineNo", lineNo))

	result, err := s.minter.MintCertificate(ctx, req.CustomerEmail, req.Metadata(s.now(), s.externalURL))

	recordCtx := context.WithoutCancel(ctx)

	if err != nil {
		logger.Error("Certificate minting failed", slog.Any("error", err))
		metrics.RecordMint(metrics.MintFailed)

		if markErr := s.repo.MarkItemFailed(recordCtx, orderID, lineNo, err.Error()); markErr != nil {
			logger.Error("Failed to record minting failure", slog.Any("error", markErr))
		}

		s.alertAdmin(recordCtx, req, err)

		return nil, err
	}

	metrics.RecordMint(metrics.MintMinted)

	if markErr := s.repo.MarkItemMinted(recordCtx, orderID, lineNo, result); markErr != nil {
		logger.Error("Certificate minted but not recorded", slog.String("nftId", result.NFTID), slog.Any("error", markErr))
	} else {
		logger.Info("Certificate minted", slog.String("nftId", result.NFTID), slog.String("transactionHash", result.TransactionHash))
	}

	s.confirm(recordCtx, req, result)

	return result, nil
}

func (s *nftService) confirm(ctx context.Context, req *models.CertificateRequest, result *models.MintResult) {
	content := fmt.Sprintf("Halo %s,\n\nSertifikat keaslian untuk %s (pesanan %s) telah diterbitkan.\nNFT ID: %s\nTransaction: %s\n",
		req.CustomerName, req.ProductName, req.OrderID, result.NFTID, result.TransactionHash)

	htmlContent := fmt.Sprintf("<p>Halo %s,</p><p>Sertifikat keaslian untuk <strong>%s</strong> (pesanan %s) telah diterbitkan.</p><p>NFT ID: %s<br>Transaction: %s</p>",
		html.EscapeString(req.CustomerName), html.EscapeString(req.ProductName), req.OrderID, result.NFTID, result.TransactionHash)

	_, err := s.notifications.SendEmail(ctx, &models.EmailNotificationRequest{
		To:          req.CustomerEmail,
		Subject:     "Sertifikat NFT Batik Giriloyo Anda",
		Content:     content,
		HTMLContent: htmlContent,
		OrderID:     req.OrderID,
	})
	if err != nil {
		middleware.LoggerFromContext(ctx).Warn("Certificate confirmation email failed", slog.String("orderId", req.OrderID), slog.Any("error", err))
	}
}

func (s *nftService) alertAdmin(ctx context.Context, req *models.CertificateRequest, cause error) {
	if s.adminEmail == "" {
		return
	}

	_, err := s.notifications.SendEmail(ctx, &models.EmailNotificationRequest{
		To:      s.adminEmail,
		Subject: "NFT minting failed for order " + req.OrderID,
		Content: fmt.Sprintf("Order %s line %d (%s) could not be minted: %v", req.OrderID, req.LineNo, req.ProductName, cause),
		OrderID: req.OrderID,
	})
	if err != nil {
		middleware.LoggerFromContext(ctx).Warn("Minting alert email failed", slog.String("orderId", req.OrderID), slog.Any("error", err))
	}
}

func (s *nftService) GetStatus(ctx context.Context, guestID, orderID string) (*models.NFTOrderStatus, error) {
	order, err := s.orders.GetGuestOrder(ctx, guestID, orderID)
	if err != nil {
		return nil, err
	}

	return models.NFTStatusOf(order), nil
}

func (s *nftService) GetCertificates(ctx context.Context, guestID, orderID string) ([]models.CertificateDetails, error) {
	order, err := s.orders.GetGuestOrder(ctx, guestID, orderID)
	if err != nil {
		return nil, err
	}

	certificates := []models.CertificateDetails{}

	for _, it := range order.Items {
		if it.NFTID == "" {
			continue
		}

		cert := models.CertificateDetails{LineNo: it.LineNo, NFTID: it.NFTID}

		details, err := s.minter.GetNFT(ctx, it.NFTID)
		if err != nil {
			cert.Error = err.Error()
		} else {
			cert.Details = details
		}

		certificates = append(certificates, cert)
	}

	if len(certificates) == 0 {
		return nil, appErrors.NotFoundError("No NFTs found for this order")
	}

	return certificates, nil
}
