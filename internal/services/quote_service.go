package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"towquote/internal/config"
	"towquote/internal/models"
	"towquote/internal/pricing"
	"towquote/internal/repositories/interfaces"
	"towquote/internal/utils"
	"towquote/pkg/logger"
	"towquote/pkg/maps"
	"towquote/pkg/payment"
)

var (
	ErrAddressQuotesDisabled = errors.New("address based quotes are not configured")
	ErrCheckoutDisabled      = errors.New("online checkout is not configured")
	ErrDropoffRequired       = errors.New("a drop-off address is required for towing")
	ErrNothingToPay          = errors.New("quote has no online price")
	ErrPaymentFailed         = errors.New("payment link could not be created")
)

type QuoteService interface {
	ListServices(ctx context.Context) ([]*models.ServiceSummary, error)
	Company(ctx context.Context) (*models.CompanyInfo, error)
	Quote(ctx context.Context, req *models.QuoteRequest) (*models.QuoteResponse, error)
	QuoteByAddress(ctx context.Context, req *models.AddressQuoteRequest) (*models.QuoteResponse, error)
	Checkout(ctx context.Context, req *models.CheckoutRequest) (*models.CheckoutResponse, error)
	DiscountRate(ctx context.Context) (float64, error)
	RefreshPricing(ctx context.Context) (int, error)
	PricingLoaded() bool
	CompanyPhone() string
}

type quoteService struct {
	engine   *pricing.Engine
	holds    interfaces.QuoteHoldRepository
	distance maps.DistanceProvider
	payments payment.PaymentLinkProvider
	config   *config.PaymentConfig
	logger   *logger.Logger
	now      func() time.Time
}

// NewQuoteService wires the engine to its optional collaborators. A nil
// distance provider disables address quotes; a nil payment provider or
// hold repository disables checkout.
func NewQuoteService(
	engine *pricing.Engine,
	holds interfaces.QuoteHoldRepository,
	distance maps.DistanceProvider,
	payments payment.PaymentLinkProvider,
	cfg *config.PaymentConfig,
	logger *logger.Logger,
) QuoteService {
	return &quoteService{
		engine:   engine,
		holds:    holds,
		distance: distance,
		payments: payments,
		config:   cfg,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *quoteService) ListServices(ctx context.Context) ([]*models.ServiceSummary, error) {
	policy, err := s.engine.FetchConfig(ctx)
	if err != nil {
		return nil, err
	}

	catalog := policy.Catalog()
	sort.Slice(catalog, func(i, j int) bool {
		if catalog[i].SortOrder != catalog[j].SortOrder {
			return catalog[i].SortOrder < catalog[j].SortOrder
		}
		return catalog[i].Name < catalog[j].Name
	})

	rate := pricing.DiscountRate(policy.Features)
	summaries := make([]*models.ServiceSummary, 0, len(catalog))
	for _, svc := range catalog {
		summary := &models.ServiceSummary{
			Name:           svc.Name,
			Kind:           svc.Kind,
			Label:          svc.Label,
			Description:    svc.Description,
			StartingPrice:  svc.StartingPrice(),
			CallForPricing: svc.Kind == models.ServiceKindCustom,
		}
		if svc.Kind == models.ServiceKindTowing {
			summary.PerMileRate = svc.PerMileRate
		}
		if !summary.CallForPricing {
			summary.OnlinePrice = pricing.ApplyDiscount(summary.StartingPrice, rate)
		}
		summaries = append(summaries, summary)
	}

	return summaries, nil
}

func (s *quoteService) Company(ctx context.Context) (*models.CompanyInfo, error) {
	policy, err := s.engine.FetchConfig(ctx)
	if err != nil {
		return nil, err
	}

	company := &models.CompanyInfo{}
	if policy.Company != nil {
		*company = *policy.Company
	}
	company.Phone = s.engine.PhoneFor(policy)
	return company, nil
}

func (s *quoteService) Quote(ctx context.Context, req *models.QuoteRequest) (*models.QuoteResponse, error) {
	return s.quote(ctx, req.Service, wholeMiles(req.TowMiles), req.TravelMiles)
}

// QuoteByAddress measures travel from the dispatch yard to the pickup and
// the tow from pickup to drop-off, then quotes whole miles.
func (s *quoteService) QuoteByAddress(ctx context.Context, req *models.AddressQuoteRequest) (*models.QuoteResponse, error) {
	if s.distance == nil {
		return nil, ErrAddressQuotesDisabled
	}
	policy, err := s.engine.FetchConfig(ctx)
	if err != nil {
		return nil, err
	}

	svc, err := s.engine.LookupService(policy, req.Service)
	if err != nil {
		return nil, err
	}
	towing := svc.Kind == models.ServiceKindTowing
	if towing && req.Dropoff == "" {
		return nil, ErrDropoffRequired
	}

	var baseAddress string
	if policy.Company != nil {
		baseAddress = policy.Company.BaseAddress
	}

	var towMiles, travelMiles float64
	g, gctx := errgroup.WithContext(ctx)
	if towing {
		g.Go(func() error {
			route, err := s.distance.DrivingDistance(gctx, req.Pickup, req.Dropoff)
			if err != nil {
				return fmt.Errorf("failed to measure tow distance: %w", err)
			}
			towMiles = route.Miles()
			return nil
		})
	}
	if baseAddress != "" && svc.Kind.ChargesTravel() {
		g.Go(func() error {
			route, err := s.distance.DrivingDistance(gctx, baseAddress, req.Pickup)
			if err != nil {
				return fmt.Errorf("failed to measure travel distance: %w", err)
			}
			travelMiles = route.Miles()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return s.quote(ctx, svc.Name, wholeMiles(towMiles), travelMiles)
}

func (s *quoteService) quote(ctx context.Context, serviceName string, towMiles, travelMiles float64) (*models.QuoteResponse, error) {
	breakdown, policy, err := s.engine.FetchQuoteWithPolicy(ctx, serviceName, towMiles, travelMiles)
	if err != nil {
		return nil, err
	}

	response := &models.QuoteResponse{
		Service:        serviceName,
		Breakdown:      breakdown,
		Total:          breakdown.Base,
		DiscountRate:   pricing.DiscountRate(policy.Features),
		CallForPricing: breakdown.IsCallForPricing(),
		Phone:          s.engine.PhoneFor(policy),
	}
	if svc, err := s.engine.LookupService(policy, serviceName); err == nil {
		response.Service = svc.Name
	}
	if !response.CallForPricing {
		response.OnlinePrice = pricing.ApplyDiscount(response.Total, response.DiscountRate)
		s.hold(ctx, response)
	}

	s.logger.WithContext(ctx).LogQuoteEvent(response.Service, "quoted", response.Total, map[string]interface{}{
		"quote_id":        response.QuoteID,
		"online_price":    response.OnlinePrice,
		"miles":           breakdown.MilesRounded,
		"travel_miles":    breakdown.TravelMiles,
		"time_multiplier": breakdown.TimeMultiplier,
	})

	return response, nil
}

// hold stores the quote for checkout. A failed save still returns the
// price, just without a quote ID.
func (s *quoteService) hold(ctx context.Context, response *models.QuoteResponse) {
	if s.holds == nil {
		return
	}

	hold := &models.QuoteHold{
		ID:          uuid.New().String(),
		Service:     response.Service,
		Breakdown:   response.Breakdown,
		OnlinePrice: response.OnlinePrice,
		CreatedAt:   s.now().UTC(),
	}
	if err := s.holds.Save(ctx, hold); err != nil {
		s.logger.WithContext(ctx).WithError(err).WithService(response.Service).Warn("Failed to hold quote")
		return
	}
	response.QuoteID = hold.ID
}

func (s *quoteService) Checkout(ctx context.Context, req *models.CheckoutRequest) (*models.CheckoutResponse, error) {
	if s.payments == nil || s.holds == nil {
		return nil, ErrCheckoutDisabled
	}

	hold, err := s.holds.Get(ctx, req.QuoteID)
	if err != nil {
		return nil, err
	}
	if hold.OnlinePrice <= 0 {
		return nil, ErrNothingToPay
	}

	currency := s.config.Currency
	amount := utils.ToMinorUnits(hold.OnlinePrice)
	link, err := s.payments.CreatePaymentLink(ctx, &payment.PaymentLinkRequest{
		Reference:   hold.ID,
		Description: fmt.Sprintf("%s (online price)", hold.Service),
		Amount:      amount,
		Currency:    currency,
		Customer: payment.Customer{
			Name:  req.CustomerName,
			Email: req.CustomerEmail,
			Phone: req.CustomerPhone,
		},
		SuccessURL: s.config.SuccessURL,
		CancelURL:  s.config.CancelURL,
		Metadata: map[string]string{
			"quote_id": hold.ID,
			"service":  hold.Service,
		},
	})
	if err != nil {
		s.logger.WithContext(ctx).LogPaymentEvent(hold.ID, "payment_link_failed", amount, currency)
		return nil, fmt.Errorf("%w: %w", ErrPaymentFailed, err)
	}

	s.logger.WithContext(ctx).LogPaymentEvent(hold.ID, "payment_link_created", amount, currency)

	return &models.CheckoutResponse{
		QuoteID:  hold.ID,
		URL:      link.URL,
		Provider: s.payments.Name(),
		Amount:   amount,
		Currency: currency,
	}, nil
}

// DiscountRate is the online discount currently in effect.
func (s *quoteService) DiscountRate(ctx context.Context) (float64, error) {
	policy, err := s.engine.FetchConfig(ctx)
	if err != nil {
		return 0, err
	}
	return pricing.DiscountRate(policy.Features), nil
}

// RefreshPricing drops the cached policy and loads it again, returning the
// number of services in the new catalog.
func (s *quoteService) RefreshPricing(ctx context.Context) (int, error) {
	s.engine.Invalidate()
	policy, err := s.engine.FetchConfig(ctx)
	if err != nil {
		return 0, err
	}
	s.logger.WithContext(ctx).WithField("services", len(policy.Catalog())).Info("Pricing configuration refreshed")
	return len(policy.Catalog()), nil
}

func (s *quoteService) PricingLoaded() bool {
	return s.engine.Loaded()
}

func (s *quoteService) CompanyPhone() string {
	return s.engine.CompanyPhone()
}

// wholeMiles rounds a distance up; customers are billed per started mile.
func wholeMiles(miles float64) float64 {
	if math.IsNaN(miles) || math.IsInf(miles, 0) || miles <= 0 {
		return 0
	}
	return math.Ceil(miles)
}
