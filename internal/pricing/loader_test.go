package pricing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"towquote/internal/models"
	"towquote/pkg/docstore"
	"towquote/pkg/docstore/mocks"
)

func expectNoPolicyDocs(store *mocks.Store) {
	for _, id := range []string{TimeMultipliersDoc, FeaturesDoc, CompanyDoc} {
		store.On("GetDocument", mock.Anything, PolicyCollection, id).Return(nil, notFound(id)).Maybe()
	}
}

func TestFetchConfig_LoadsAllDocuments(t *testing.T) {
	rules := nightRules("UTC")
	features := &models.FeatureFlags{AfterHoursPricing: true, TravelRatePerMile: 3}
	company := &models.CompanyInfo{Name: "Roadside Pros", Phone: "(555) 222-3333"}

	store := mocks.NewStore(t)
	expectDocs(store, storeDocs{
		services: []models.ServiceDefinition{localTowing(), jumpStart()},
		rules:    rules,
		features: features,
		company:  company,
	})
	engine := newTestEngine(t, store, newFakeClock(middayUTC))

	policy, err := engine.FetchConfig(context.Background())
	require.NoError(t, err)

	assert.Len(t, policy.Catalog(), 2)
	assert.Equal(t, rules, policy.TimeMultipliers)
	assert.Equal(t, features, policy.Features)
	assert.Equal(t, company, policy.Company)
	assert.Equal(t, middayUTC, policy.FetchedAt)
}

func TestFetchConfig_IndexesLowercaseNames(t *testing.T) {
	engine := loadedEngine(t, storeDocs{services: []models.ServiceDefinition{localTowing()}}, middayUTC)
	policy, err := engine.ConfigSync()
	require.NoError(t, err)

	exact, ok := policy.Service("Local Towing")
	require.True(t, ok)
	lower, ok := policy.Service("local towing")
	require.True(t, ok)
	mixed, ok := policy.Service("LOCAL towing")
	require.True(t, ok)

	assert.Same(t, exact, lower)
	assert.Same(t, exact, mixed)
}

func TestFetchConfig_MissingOptionalDocuments(t *testing.T) {
	engine := loadedEngine(t, storeDocs{services: []models.ServiceDefinition{jumpStart()}}, middayUTC)
	policy, err := engine.ConfigSync()
	require.NoError(t, err)

	assert.Nil(t, policy.TimeMultipliers)
	assert.Nil(t, policy.Features)
	assert.Nil(t, policy.Company)
	assert.False(t, policy.AfterHoursEnabled())
}

func TestFetchConfig_CachesWithinTTL(t *testing.T) {
	clock := newFakeClock(middayUTC)
	store := mocks.NewStore(t)
	expectDocs(store, storeDocs{services: []models.ServiceDefinition{jumpStart()}})
	engine := newTestEngine(t, store, clock)
	ctx := context.Background()

	first, err := engine.FetchConfig(ctx)
	require.NoError(t, err)

	clock.Advance(999 * time.Millisecond)
	second, err := engine.FetchConfig(ctx)
	require.NoError(t, err)
	assert.Same(t, first, second)
	store.AssertNumberOfCalls(t, "ListDocuments", 1)

	clock.Advance(time.Millisecond)
	third, err := engine.FetchConfig(ctx)
	require.NoError(t, err)
	assert.NotSame(t, first, third)
	store.AssertNumberOfCalls(t, "ListDocuments", 2)
}

func TestFetchConfig_CustomTTL(t *testing.T) {
	clock := newFakeClock(middayUTC)
	store := mocks.NewStore(t)
	expectDocs(store, storeDocs{services: []models.ServiceDefinition{jumpStart()}})
	engine := newTestEngine(t, store, clock, WithCacheTTL(time.Minute))

	_, err := engine.FetchConfig(context.Background())
	require.NoError(t, err)
	clock.Advance(30 * time.Second)
	_, err = engine.FetchConfig(context.Background())
	require.NoError(t, err)

	store.AssertNumberOfCalls(t, "ListDocuments", 1)
}

func TestFetchConfig_RetriesAccessDenied(t *testing.T) {
	store := mocks.NewStore(t)
	store.On("ListDocuments", mock.Anything, ServicesCollection).Return(nil, accessDenied()).Times(3)
	store.On("ListDocuments", mock.Anything, ServicesCollection).Return(serviceSnapshots(jumpStart()), nil).Once()
	expectNoPolicyDocs(store)

	engine := newTestEngine(t, store, newFakeClock(middayUTC))

	policy, err := engine.FetchConfig(context.Background())
	require.NoError(t, err)
	assert.Len(t, policy.Catalog(), 1)
	store.AssertNumberOfCalls(t, "ListDocuments", 4)
}

func TestFetchConfig_RetriesOptionalDocument(t *testing.T) {
	features := &models.FeatureFlags{OnlineDiscount: models.OnlineDiscount{Enabled: true, Rate: 0.1}}

	store := mocks.NewStore(t)
	store.On("ListDocuments", mock.Anything, ServicesCollection).Return(serviceSnapshots(jumpStart()), nil)
	store.On("GetDocument", mock.Anything, PolicyCollection, FeaturesDoc).Return(nil, accessDenied()).Once()
	store.On("GetDocument", mock.Anything, PolicyCollection, FeaturesDoc).Return(mocks.NewSnapshot(FeaturesDoc, features), nil).Once()
	store.On("GetDocument", mock.Anything, PolicyCollection, TimeMultipliersDoc).Return(nil, notFound(TimeMultipliersDoc))
	store.On("GetDocument", mock.Anything, PolicyCollection, CompanyDoc).Return(nil, notFound(CompanyDoc))

	engine := newTestEngine(t, store, newFakeClock(middayUTC))

	policy, err := engine.FetchConfig(context.Background())
	require.NoError(t, err)
	assert.Equal(t, features, policy.Features)
	store.AssertNumberOfCalls(t, "GetDocument", 4)
}

func TestFetchConfig_GivesUpAfterThreeRetries(t *testing.T) {
	store := mocks.NewStore(t)
	store.On("ListDocuments", mock.Anything, ServicesCollection).Return(nil, accessDenied()).Times(4)
	expectNoPolicyDocs(store)

	engine := newTestEngine(t, store, newFakeClock(middayUTC))

	_, err := engine.FetchConfig(context.Background())
	require.Error(t, err)
	assert.True(t, IsConfigurationError(err))
	assert.ErrorIs(t, err, docstore.ErrAccessDenied)
	assert.Contains(t, err.Error(), DefaultCompanyPhone)
	store.AssertNumberOfCalls(t, "ListDocuments", 4)
	assert.False(t, engine.Loaded())
}

func TestFetchConfig_DoesNotRetryOtherErrors(t *testing.T) {
	store := mocks.NewStore(t)
	store.On("ListDocuments", mock.Anything, ServicesCollection).
		Return(nil, status.Error(codes.Unavailable, "backend down")).Once()
	expectNoPolicyDocs(store)

	engine := newTestEngine(t, store, newFakeClock(middayUTC))

	_, err := engine.FetchConfig(context.Background())
	require.Error(t, err)
	assert.True(t, IsConfigurationError(err))
	store.AssertNumberOfCalls(t, "ListDocuments", 1)
}

func TestFetchConfig_WithRetryOverride(t *testing.T) {
	store := mocks.NewStore(t)
	store.On("ListDocuments", mock.Anything, ServicesCollection).Return(nil, accessDenied()).Times(2)
	expectNoPolicyDocs(store)

	engine := newTestEngine(t, store, newFakeClock(middayUTC), WithRetry(1, 0))

	_, err := engine.FetchConfig(context.Background())
	require.Error(t, err)
	store.AssertNumberOfCalls(t, "ListDocuments", 2)
}

func TestFetchConfig_FailureClearsCache(t *testing.T) {
	clock := newFakeClock(middayUTC)
	store := mocks.NewStore(t)
	store.On("ListDocuments", mock.Anything, ServicesCollection).Return(serviceSnapshots(jumpStart()), nil).Once()
	store.On("ListDocuments", mock.Anything, ServicesCollection).
		Return(nil, status.Error(codes.Internal, "boom")).Once()
	expectNoPolicyDocs(store)

	engine := newTestEngine(t, store, clock)
	ctx := context.Background()

	_, err := engine.FetchConfig(ctx)
	require.NoError(t, err)
	require.True(t, engine.Loaded())

	clock.Advance(2 * time.Second)
	_, err = engine.FetchConfig(ctx)
	require.Error(t, err)

	assert.False(t, engine.Loaded())
	_, err = engine.ConfigSync()
	assert.ErrorIs(t, err, ErrConfigNotLoaded)
}

func TestFetchConfig_EmptyCatalog(t *testing.T) {
	store := mocks.NewStore(t)
	store.On("ListDocuments", mock.Anything, ServicesCollection).Return([]docstore.Snapshot{}, nil)
	expectNoPolicyDocs(store)

	engine := newTestEngine(t, store, newFakeClock(middayUTC))

	_, err := engine.FetchConfig(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyCatalog)
	assert.True(t, IsConfigurationError(err))
}

func TestFetchConfig_SkipsUnknownKinds(t *testing.T) {
	teleport := models.ServiceDefinition{Name: "Teleport", Kind: "teleport", BasePrice: 1}

	store := mocks.NewStore(t)
	store.On("ListDocuments", mock.Anything, ServicesCollection).
		Return(serviceSnapshots(teleport, jumpStart()), nil)
	expectNoPolicyDocs(store)

	engine := newTestEngine(t, store, newFakeClock(middayUTC))

	policy, err := engine.FetchConfig(context.Background())
	require.NoError(t, err)
	require.Len(t, policy.Catalog(), 1)
	_, ok := policy.Service("Teleport")
	assert.False(t, ok)
}

func TestFetchConfig_OnlyUnknownKindsIsEmpty(t *testing.T) {
	store := mocks.NewStore(t)
	store.On("ListDocuments", mock.Anything, ServicesCollection).
		Return(serviceSnapshots(models.ServiceDefinition{Name: "Teleport", Kind: "teleport"}), nil)
	expectNoPolicyDocs(store)

	engine := newTestEngine(t, store, newFakeClock(middayUTC))

	_, err := engine.FetchConfig(context.Background())
	assert.ErrorIs(t, err, ErrEmptyCatalog)
}

func TestFetchConfig_NameDefaultsToDocumentID(t *testing.T) {
	flatbed := models.ServiceDefinition{Kind: models.ServiceKindTowing, HookupFee: 95, PerMileRate: 6}

	store := mocks.NewStore(t)
	store.On("ListDocuments", mock.Anything, ServicesCollection).
		Return([]docstore.Snapshot{mocks.NewSnapshot("Flatbed Tow", flatbed)}, nil)
	expectNoPolicyDocs(store)

	engine := newTestEngine(t, store, newFakeClock(middayUTC))

	policy, err := engine.FetchConfig(context.Background())
	require.NoError(t, err)
	svc, ok := policy.Service("flatbed tow")
	require.True(t, ok)
	assert.Equal(t, "Flatbed Tow", svc.Name)
}

func TestFetchConfig_MalformedOptionalDocument(t *testing.T) {
	store := mocks.NewStore(t)
	store.On("ListDocuments", mock.Anything, ServicesCollection).Return(serviceSnapshots(jumpStart()), nil)
	store.On("GetDocument", mock.Anything, PolicyCollection, FeaturesDoc).
		Return(mocks.NewSnapshot(FeaturesDoc, "not a features document"), nil)
	store.On("GetDocument", mock.Anything, PolicyCollection, TimeMultipliersDoc).Return(nil, notFound(TimeMultipliersDoc)).Maybe()
	store.On("GetDocument", mock.Anything, PolicyCollection, CompanyDoc).Return(nil, notFound(CompanyDoc)).Maybe()

	engine := newTestEngine(t, store, newFakeClock(middayUTC))

	_, err := engine.FetchConfig(context.Background())
	require.Error(t, err)
	assert.True(t, IsConfigurationError(err))
	assert.Contains(t, err.Error(), "failed to decode features")
}

func TestFetchConfig_CustomCollections(t *testing.T) {
	store := mocks.NewStore(t)
	store.On("ListDocuments", mock.Anything, "catalog").Return(serviceSnapshots(jumpStart()), nil)
	for _, id := range []string{TimeMultipliersDoc, FeaturesDoc, CompanyDoc} {
		store.On("GetDocument", mock.Anything, "settings", id).Return(nil, notFound(id))
	}

	engine := newTestEngine(t, store, newFakeClock(middayUTC), WithCollections("catalog", "settings"))

	_, err := engine.FetchConfig(context.Background())
	require.NoError(t, err)
}

func TestConfigSync_BeforeLoad(t *testing.T) {
	engine := newTestEngine(t, mocks.NewStore(t), newFakeClock(middayUTC), WithFallbackPhone("(555) 444-5555"))

	policy, err := engine.ConfigSync()
	assert.Nil(t, policy)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigNotLoaded)
	assert.Contains(t, err.Error(), "(555) 444-5555")
}

func TestConfigSync_ServesPolicyPastTTL(t *testing.T) {
	clock := newFakeClock(middayUTC)
	store := mocks.NewStore(t)
	expectDocs(store, storeDocs{services: []models.ServiceDefinition{jumpStart()}})
	engine := newTestEngine(t, store, clock)

	loaded, err := engine.FetchConfig(context.Background())
	require.NoError(t, err)

	clock.Advance(time.Hour)
	cached, err := engine.ConfigSync()
	require.NoError(t, err)
	assert.Same(t, loaded, cached)
	store.AssertNumberOfCalls(t, "ListDocuments", 1)
}
