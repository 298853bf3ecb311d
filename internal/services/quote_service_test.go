package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"towquote/internal/config"
	"towquote/internal/models"
	"towquote/internal/pricing"
	"towquote/internal/repositories/interfaces"
	"towquote/pkg/cache"
	"towquote/pkg/docstore"
	docmocks "towquote/pkg/docstore/mocks"
	"towquote/pkg/logger"
	"towquote/pkg/maps"
	mapmocks "towquote/pkg/maps/mocks"
	"towquote/pkg/payment"
	paymocks "towquote/pkg/payment/mocks"
)

const (
	yard    = "100 Depot Rd, Springfield"
	pickup  = "12 Elm St, Springfield"
	dropoff = "400 Main St, Shelbyville"
)

var testCatalog = []models.ServiceDefinition{
	{Name: "Local Towing", Kind: models.ServiceKindTowing, Label: "Local Towing", HookupFee: 75, PerMileRate: 8, SortOrder: 2},
	{Name: "Jump Start", Kind: models.ServiceKindOnsite, Label: "Jump start service", BasePrice: 88, SortOrder: 1},
	{Name: "Winch Out", Kind: models.ServiceKindRecovery, Label: "Winch-out recovery", BasePrice: 150, SortOrder: 3},
	{Name: "Impound", Kind: models.ServiceKindCustom, Label: "Impound release", SortOrder: 3},
}

var testCompany = &models.CompanyInfo{
	Name:        "Springfield Towing",
	Phone:       "(555) 123-4567",
	BaseAddress: yard,
}

// memoryHolds is a quote hold repository backed by the in-process cache.
func memoryHolds() interfaces.QuoteHoldRepository {
	cacheService := NewCacheService(cache.NewMemoryCache(), logger.Discard(), "test:", time.Hour)
	return &cacheHolds{cache: cacheService}
}

type cacheHolds struct {
	cache CacheService
}

func (h *cacheHolds) Save(ctx context.Context, hold *models.QuoteHold) error {
	return h.cache.Set(ctx, hold.ID, hold, time.Minute)
}

func (h *cacheHolds) Get(ctx context.Context, id string) (*models.QuoteHold, error) {
	var hold models.QuoteHold
	if err := h.cache.Get(ctx, id, &hold); err != nil {
		if IsCacheMiss(err) {
			return nil, interfaces.ErrQuoteHoldNotFound
		}
		return nil, err
	}
	return &hold, nil
}

func (h *cacheHolds) Delete(ctx context.Context, id string) error {
	return h.cache.Delete(ctx, id)
}

func pricingStore(t *testing.T, company *models.CompanyInfo) *docmocks.Store {
	t.Helper()
	return pricingStoreWithFeatures(t, company, nil)
}

func pricingStoreWithFeatures(t *testing.T, company *models.CompanyInfo, features *models.FeatureFlags) *docmocks.Store {
	t.Helper()
	store := docmocks.NewStore(t)

	snaps := make([]docstore.Snapshot, 0, len(testCatalog))
	for _, svc := range testCatalog {
		snaps = append(snaps, docmocks.NewSnapshot(models.NormalizeServiceName(svc.Name), svc))
	}
	store.On("ListDocuments", mock.Anything, pricing.ServicesCollection).Return(snaps, nil)
	store.On("GetDocument", mock.Anything, pricing.PolicyCollection, pricing.TimeMultipliersDoc).Return(nil, docstore.ErrNotFound)
	if features == nil {
		store.On("GetDocument", mock.Anything, pricing.PolicyCollection, pricing.FeaturesDoc).Return(nil, docstore.ErrNotFound)
	} else {
		store.On("GetDocument", mock.Anything, pricing.PolicyCollection, pricing.FeaturesDoc).
			Return(docmocks.NewSnapshot(pricing.FeaturesDoc, features), nil)
	}
	if company == nil {
		store.On("GetDocument", mock.Anything, pricing.PolicyCollection, pricing.CompanyDoc).Return(nil, docstore.ErrNotFound)
	} else {
		store.On("GetDocument", mock.Anything, pricing.PolicyCollection, pricing.CompanyDoc).
			Return(docmocks.NewSnapshot(pricing.CompanyDoc, company), nil)
	}
	return store
}

type serviceDeps struct {
	store    docstore.Store
	holds    interfaces.QuoteHoldRepository
	distance maps.DistanceProvider
	payments payment.PaymentLinkProvider
}

func newQuoteService(deps serviceDeps) *quoteService {
	engine := pricing.NewEngine(deps.store, pricing.WithRetry(pricing.DefaultMaxRetries, 0))
	cfg := &config.PaymentConfig{
		Currency:   "USD",
		SuccessURL: "https://tow.example/booking/success",
		CancelURL:  "https://tow.example/booking",
	}
	return NewQuoteService(engine, deps.holds, deps.distance, deps.payments, cfg, logger.Discard()).(*quoteService)
}

func route(origin, destination string, miles float64) *maps.RouteDistance {
	return &maps.RouteDistance{
		Origin:      origin,
		Destination: destination,
		Meters:      int(miles * maps.MetersPerMile),
	}
}

func TestQuoteService_ListServices(t *testing.T) {
	svc := newQuoteService(serviceDeps{store: pricingStore(t, testCompany)})

	summaries, err := svc.ListServices(context.Background())
	require.NoError(t, err)
	require.Len(t, summaries, 4)

	names := make([]string, 0, len(summaries))
	for _, s := range summaries {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"Jump Start", "Local Towing", "Impound", "Winch Out"}, names)

	assert.Equal(t, 88.0, summaries[0].StartingPrice)
	assert.Equal(t, int64(75), summaries[0].OnlinePrice)
	assert.Zero(t, summaries[0].PerMileRate)

	assert.Equal(t, 75.0, summaries[1].StartingPrice)
	assert.Equal(t, int64(64), summaries[1].OnlinePrice)
	assert.Equal(t, 8.0, summaries[1].PerMileRate)

	assert.True(t, summaries[2].CallForPricing)
	assert.Zero(t, summaries[2].OnlinePrice)
}

func TestQuoteService_ListServicesConfigFailure(t *testing.T) {
	store := docmocks.NewStore(t)
	store.On("ListDocuments", mock.Anything, pricing.ServicesCollection).Return(nil, errors.New("unavailable"))
	store.On("GetDocument", mock.Anything, pricing.PolicyCollection, mock.Anything).Return(nil, docstore.ErrNotFound).Maybe()

	svc := newQuoteService(serviceDeps{store: store})

	_, err := svc.ListServices(context.Background())
	require.Error(t, err)
	assert.True(t, pricing.IsConfigurationError(err))
	assert.False(t, svc.PricingLoaded())
	assert.Equal(t, pricing.DefaultCompanyPhone, svc.CompanyPhone())
}

func TestQuoteService_Company(t *testing.T) {
	t.Run("loaded", func(t *testing.T) {
		svc := newQuoteService(serviceDeps{store: pricingStore(t, testCompany)})

		company, err := svc.Company(context.Background())
		require.NoError(t, err)
		assert.Equal(t, testCompany, company)
	})

	t.Run("missing document uses fallback phone", func(t *testing.T) {
		svc := newQuoteService(serviceDeps{store: pricingStore(t, nil)})

		company, err := svc.Company(context.Background())
		require.NoError(t, err)
		assert.Empty(t, company.Name)
		assert.Equal(t, pricing.DefaultCompanyPhone, company.Phone)
	})
}

func TestQuoteService_Quote(t *testing.T) {
	ctx := context.Background()
	holds := memoryHolds()
	svc := newQuoteService(serviceDeps{store: pricingStore(t, testCompany), holds: holds})

	resp, err := svc.Quote(ctx, &models.QuoteRequest{Service: "local towing", TowMiles: 14.2})
	require.NoError(t, err)

	assert.Equal(t, "Local Towing", resp.Service)
	assert.Equal(t, 195.0, resp.Total)
	assert.Equal(t, 15.0, resp.Breakdown.MilesRounded)
	assert.Equal(t, pricing.DefaultOnlineDiscountRate, resp.DiscountRate)
	assert.Equal(t, int64(166), resp.OnlinePrice)
	assert.False(t, resp.CallForPricing)
	assert.Equal(t, testCompany.Phone, resp.Phone)
	require.NotEmpty(t, resp.QuoteID)

	hold, err := holds.Get(ctx, resp.QuoteID)
	require.NoError(t, err)
	assert.Equal(t, "Local Towing", hold.Service)
	assert.Equal(t, int64(166), hold.OnlinePrice)
	assert.Equal(t, resp.Breakdown, hold.Breakdown)
}

func TestQuoteService_QuoteUsesConfiguredDiscount(t *testing.T) {
	ctx := context.Background()
	features := &models.FeatureFlags{OnlineDiscount: models.OnlineDiscount{Enabled: true, Rate: 0.1}}
	holds := memoryHolds()
	svc := newQuoteService(serviceDeps{store: pricingStoreWithFeatures(t, testCompany, features), holds: holds})

	resp, err := svc.Quote(ctx, &models.QuoteRequest{Service: "Local Towing", TowMiles: 15})
	require.NoError(t, err)
	assert.Equal(t, 0.1, resp.DiscountRate)
	assert.Equal(t, int64(176), resp.OnlinePrice)

	// the held price was fixed when quoted, whatever the cache holds now
	svc.engine.Invalidate()
	hold, err := holds.Get(ctx, resp.QuoteID)
	require.NoError(t, err)
	assert.Equal(t, int64(176), hold.OnlinePrice)

	rate, err := svc.DiscountRate(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0.1, rate)
}

func TestQuoteService_QuoteWithTravel(t *testing.T) {
	svc := newQuoteService(serviceDeps{store: pricingStore(t, testCompany)})

	resp, err := svc.Quote(context.Background(), &models.QuoteRequest{Service: "Jump Start", TravelMiles: 9.2})
	require.NoError(t, err)

	// 88 + 10 mi × $2
	assert.Equal(t, 108.0, resp.Total)
	assert.Equal(t, 10.0, resp.Breakdown.TravelMiles)
	assert.Empty(t, resp.QuoteID, "no hold repository configured")
}

func TestQuoteService_QuoteCallForPricing(t *testing.T) {
	holds := memoryHolds()
	svc := newQuoteService(serviceDeps{store: pricingStore(t, testCompany), holds: holds})

	resp, err := svc.Quote(context.Background(), &models.QuoteRequest{Service: "Impound"})
	require.NoError(t, err)

	assert.True(t, resp.CallForPricing)
	assert.Zero(t, resp.Total)
	assert.Zero(t, resp.OnlinePrice)
	assert.Empty(t, resp.QuoteID)
	assert.NotNil(t, resp.Breakdown.Items)
}

func TestQuoteService_QuoteUnknownService(t *testing.T) {
	svc := newQuoteService(serviceDeps{store: pricingStore(t, testCompany)})

	_, err := svc.Quote(context.Background(), &models.QuoteRequest{Service: "Helicopter Lift"})
	require.Error(t, err)
	assert.True(t, pricing.IsUnknownService(err))
	assert.Contains(t, err.Error(), testCompany.Phone)
}

func TestQuoteService_QuoteByAddress(t *testing.T) {
	t.Run("towing measures tow and travel", func(t *testing.T) {
		distance := mapmocks.NewDistanceProvider(t)
		distance.On("DrivingDistance", mock.Anything, pickup, dropoff).Return(route(pickup, dropoff, 9.3), nil).Once()
		distance.On("DrivingDistance", mock.Anything, yard, pickup).Return(route(yard, pickup, 4.1), nil).Once()

		svc := newQuoteService(serviceDeps{store: pricingStore(t, testCompany), distance: distance})

		resp, err := svc.QuoteByAddress(context.Background(), &models.AddressQuoteRequest{
			Service: "Local Towing",
			Pickup:  pickup,
			Dropoff: dropoff,
		})
		require.NoError(t, err)

		// 75 hook-up + 10 mi × $8 + 5 mi travel × $2
		assert.Equal(t, 165.0, resp.Total)
		assert.Equal(t, 10.0, resp.Breakdown.MilesRounded)
		assert.Equal(t, 5.0, resp.Breakdown.TravelMiles)
		assert.Equal(t, []models.LineItem{
			{Label: "Hook-up", Amount: 75},
			{Label: "10 mi × $8", Amount: 80},
			{Label: "5 mi travel × $2", Amount: 10},
		}, resp.Breakdown.Items)
	})

	t.Run("onsite only measures travel", func(t *testing.T) {
		distance := mapmocks.NewDistanceProvider(t)
		distance.On("DrivingDistance", mock.Anything, yard, pickup).Return(route(yard, pickup, 2.5), nil).Once()

		svc := newQuoteService(serviceDeps{store: pricingStore(t, testCompany), distance: distance})

		resp, err := svc.QuoteByAddress(context.Background(), &models.AddressQuoteRequest{
			Service: "jump start",
			Pickup:  pickup,
			Dropoff: dropoff,
		})
		require.NoError(t, err)
		assert.Equal(t, 94.0, resp.Total)
	})

	t.Run("recovery makes no distance calls", func(t *testing.T) {
		distance := mapmocks.NewDistanceProvider(t)
		svc := newQuoteService(serviceDeps{store: pricingStore(t, testCompany), distance: distance})

		resp, err := svc.QuoteByAddress(context.Background(), &models.AddressQuoteRequest{
			Service: "Winch Out",
			Pickup:  pickup,
		})
		require.NoError(t, err)
		assert.Equal(t, 150.0, resp.Total)
	})

	t.Run("no base address skips travel", func(t *testing.T) {
		distance := mapmocks.NewDistanceProvider(t)
		distance.On("DrivingDistance", mock.Anything, pickup, dropoff).Return(route(pickup, dropoff, 3), nil).Once()

		svc := newQuoteService(serviceDeps{store: pricingStore(t, nil), distance: distance})

		resp, err := svc.QuoteByAddress(context.Background(), &models.AddressQuoteRequest{
			Service: "Local Towing",
			Pickup:  pickup,
			Dropoff: dropoff,
		})
		require.NoError(t, err)
		assert.Equal(t, 99.0, resp.Total)
		assert.Zero(t, resp.Breakdown.TravelMiles)
	})

	t.Run("towing requires dropoff", func(t *testing.T) {
		distance := mapmocks.NewDistanceProvider(t)
		svc := newQuoteService(serviceDeps{store: pricingStore(t, testCompany), distance: distance})

		_, err := svc.QuoteByAddress(context.Background(), &models.AddressQuoteRequest{
			Service: "Local Towing",
			Pickup:  pickup,
		})
		assert.ErrorIs(t, err, ErrDropoffRequired)
	})

	t.Run("address not found", func(t *testing.T) {
		distance := mapmocks.NewDistanceProvider(t)
		distance.On("DrivingDistance", mock.Anything, mock.Anything, mock.Anything).Return(nil, maps.ErrAddressNotFound)

		svc := newQuoteService(serviceDeps{store: pricingStore(t, testCompany), distance: distance})

		_, err := svc.QuoteByAddress(context.Background(), &models.AddressQuoteRequest{
			Service: "Local Towing",
			Pickup:  pickup,
			Dropoff: "nowhere at all",
		})
		assert.ErrorIs(t, err, maps.ErrAddressNotFound)
	})

	t.Run("disabled without provider", func(t *testing.T) {
		svc := newQuoteService(serviceDeps{store: docmocks.NewStore(t)})

		_, err := svc.QuoteByAddress(context.Background(), &models.AddressQuoteRequest{Service: "Local Towing", Pickup: pickup})
		assert.ErrorIs(t, err, ErrAddressQuotesDisabled)
	})
}

func TestQuoteService_Checkout(t *testing.T) {
	ctx := context.Background()
	payments := paymocks.NewPaymentLinkProvider(t)
	svc := newQuoteService(serviceDeps{
		store:    pricingStore(t, testCompany),
		holds:    memoryHolds(),
		payments: payments,
	})

	quote, err := svc.Quote(ctx, &models.QuoteRequest{Service: "Local Towing", TowMiles: 15})
	require.NoError(t, err)
	require.NotEmpty(t, quote.QuoteID)

	payments.On("Name").Return("stripe")
	payments.On("CreatePaymentLink", mock.Anything, mock.MatchedBy(func(req *payment.PaymentLinkRequest) bool {
		return req.Reference == quote.QuoteID &&
			req.Amount == 16600 &&
			req.Currency == "USD" &&
			req.Customer.Email == "driver@example.com" &&
			req.SuccessURL == "https://tow.example/booking/success" &&
			req.Metadata["service"] == "Local Towing"
	})).Return(&payment.PaymentLink{ID: "cs_test_1", URL: "https://checkout.stripe.com/c/pay/cs_test_1"}, nil).Once()

	resp, err := svc.Checkout(ctx, &models.CheckoutRequest{
		QuoteID:       quote.QuoteID,
		CustomerName:  "Pat Driver",
		CustomerEmail: "driver@example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, &models.CheckoutResponse{
		QuoteID:  quote.QuoteID,
		URL:      "https://checkout.stripe.com/c/pay/cs_test_1",
		Provider: "stripe",
		Amount:   16600,
		Currency: "USD",
	}, resp)
}

func TestQuoteService_CheckoutFailures(t *testing.T) {
	ctx := context.Background()

	t.Run("disabled", func(t *testing.T) {
		svc := newQuoteService(serviceDeps{store: docmocks.NewStore(t), holds: memoryHolds()})

		_, err := svc.Checkout(ctx, &models.CheckoutRequest{QuoteID: "x"})
		assert.ErrorIs(t, err, ErrCheckoutDisabled)
	})

	t.Run("unknown quote", func(t *testing.T) {
		svc := newQuoteService(serviceDeps{
			store:    docmocks.NewStore(t),
			holds:    memoryHolds(),
			payments: paymocks.NewPaymentLinkProvider(t),
		})

		_, err := svc.Checkout(ctx, &models.CheckoutRequest{QuoteID: "4b1c4a52-1d5e-4d0c-8f57-0f2f3b0a9e77"})
		assert.ErrorIs(t, err, interfaces.ErrQuoteHoldNotFound)
	})

	t.Run("zero price", func(t *testing.T) {
		holds := memoryHolds()
		require.NoError(t, holds.Save(ctx, &models.QuoteHold{ID: "free", Service: "Impound"}))
		svc := newQuoteService(serviceDeps{
			store:    docmocks.NewStore(t),
			holds:    holds,
			payments: paymocks.NewPaymentLinkProvider(t),
		})

		_, err := svc.Checkout(ctx, &models.CheckoutRequest{QuoteID: "free"})
		assert.ErrorIs(t, err, ErrNothingToPay)
	})

	t.Run("gateway error", func(t *testing.T) {
		holds := memoryHolds()
		require.NoError(t, holds.Save(ctx, &models.QuoteHold{ID: "q1", Service: "Jump Start", OnlinePrice: 75}))
		payments := paymocks.NewPaymentLinkProvider(t)
		payments.On("CreatePaymentLink", mock.Anything, mock.Anything).Return(nil, errors.New("card_declined"))

		svc := newQuoteService(serviceDeps{store: docmocks.NewStore(t), holds: holds, payments: payments})

		_, err := svc.Checkout(ctx, &models.CheckoutRequest{QuoteID: "q1", CustomerEmail: "a@b.co"})
		assert.ErrorIs(t, err, ErrPaymentFailed)
		assert.Contains(t, err.Error(), "card_declined")
	})
}

func TestQuoteService_RefreshPricing(t *testing.T) {
	store := pricingStore(t, testCompany)
	svc := newQuoteService(serviceDeps{store: store})

	require.NoError(t, svc.engine.Initialize(context.Background()))
	assert.True(t, svc.PricingLoaded())

	count, err := svc.RefreshPricing(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, count)
	store.AssertNumberOfCalls(t, "ListDocuments", 2)
}

func TestWholeMiles(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{-3, 0},
		{0.1, 1},
		{14.2, 15},
		{15, 15},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, wholeMiles(tt.in), "miles %v", tt.in)
	}
}
