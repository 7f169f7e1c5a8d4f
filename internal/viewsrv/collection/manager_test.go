package collection

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/meeplehaven/viewsrv/internal/common/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUsers struct {
	collection    []MembershipRecord
	collectionErr apperrors.Error

	added         *MembershipRecord
	addErr        apperrors.Error
	addCalls      int
	gotNotes      *string
	gotLabelNames []string

	removeErr   apperrors.Error
	removeCalls int

	review      *Review
	reviewErr   apperrors.Error
	reviewCalls int
}

func (f *fakeUsers) GetCollection(ctx context.Context, userID string) ([]MembershipRecord, apperrors.Error) {
	if f.collectionErr != nil {
		return nil, f.collectionErr
	}
	return f.collection, nil
}

func (f *fakeUsers) AddGame(ctx context.Context, userID string, gameID int64, notes *string, labelNames []string) (*MembershipRecord, apperrors.Error) {
	f.addCalls++
	f.gotNotes = notes
	f.gotLabelNames = labelNames
	if f.addErr != nil {
		return nil, f.addErr
	}
	return f.added, nil
}

func (f *fakeUsers) RemoveGame(ctx context.Context, userID string, gameID int64) apperrors.Error {
	f.removeCalls++
	return f.removeErr
}

func (f *fakeUsers) CreateReview(ctx context.Context, userID string, gameID int64, rating float64, reviewText string) (*Review, apperrors.Error) {
	f.reviewCalls++
	if f.reviewErr != nil {
		return nil, f.reviewErr
	}
	return f.review, nil
}

type fakeCatalog struct {
	byID    map[int64]*CatalogRecord
	byIDErr apperrors.Error

	games      []CatalogRecord
	listErr    apperrors.Error
	listCalls  int
	gotIDs     []int64
	gotFilters CatalogFilters
}

func (f *fakeCatalog) GetByID(ctx context.Context, gameID int64) (*CatalogRecord, apperrors.Error) {
	if f.byIDErr != nil {
		return nil, f.byIDErr
	}
	return f.byID[gameID], nil
}

func (f *fakeCatalog) GetByIDs(ctx context.Context, ids []int64, filters CatalogFilters) ([]CatalogRecord, apperrors.Error) {
	f.listCalls++
	f.gotIDs = ids
	f.gotFilters = filters
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.games, nil
}

func strPtr(s string) *string   { return &s }
func f64Ptr(f float64) *float64 { return &f }
func intPtr(i int) *int         { return &i }

func labels(ss ...string) []json.RawMessage {
	out := make([]json.RawMessage, 0, len(ss))
	for _, s := range ss {
		b, _ := json.Marshal(s)
		out = append(out, json.RawMessage(b))
	}
	return out
}

func TestFetchJoinsInOrder(t *testing.T) {
	users := &fakeUsers{
		collection: []MembershipRecord{
			{GameID: 1, Notes: strPtr("Great!"), Labels: labels("fav")},
			{GameID: 2, Notes: strPtr("Fun")},
		},
	}
	catalog := &fakeCatalog{
		games: []CatalogRecord{
			{ID: 2, Name: "Ticket to Ride", Rating: f64Ptr(8.0)},
			{ID: 1, Name: "Catan", Rating: f64Ptr(7.5)},
		},
	}
	m := NewManager(users, catalog)

	entries, err := m.Fetch(context.Background(), "user-1", CollectionFilters{})
	require.Nil(t, err)
	require.Len(t, entries, 2)

	// Output preserves the membership order, not the catalog order
	assert.Equal(t, int64(1), entries[0].Game.ID)
	assert.Equal(t, "Catan", entries[0].Game.Name)
	assert.Equal(t, int64(2), entries[1].Game.ID)
	assert.Equal(t, []int64{1, 2}, catalog.gotIDs)
}

func TestFetchDropsUnmatchedEntries(t *testing.T) {
	users := &fakeUsers{
		collection: []MembershipRecord{{GameID: 999}},
	}
	catalog := &fakeCatalog{games: []CatalogRecord{}}
	m := NewManager(users, catalog)

	entries, err := m.Fetch(context.Background(), "user-1", CollectionFilters{})
	require.Nil(t, err)
	assert.Empty(t, entries)
	assert.Equal(t, 1, catalog.listCalls)
}

func TestFetchDropsOnlyUnmatchedEntries(t *testing.T) {
	users := &fakeUsers{
		collection: []MembershipRecord{{GameID: 1}, {GameID: 999}, {GameID: 2}},
	}
	catalog := &fakeCatalog{
		games: []CatalogRecord{{ID: 1, Name: "Catan"}, {ID: 2, Name: "Azul"}},
	}
	m := NewManager(users, catalog)

	entries, err := m.Fetch(context.Background(), "user-1", CollectionFilters{})
	require.Nil(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, int64(1), entries[0].Game.ID)
	assert.Equal(t, int64(2), entries[1].Game.ID)
}

func TestFetchMinUserRating(t *testing.T) {
	users := &fakeUsers{
		collection: []MembershipRecord{
			{GameID: 1, UserRating: f64Ptr(9)},
			{GameID: 2, UserRating: f64Ptr(5)},
			{GameID: 3}, // absent rating never passes the filter
		},
	}
	catalog := &fakeCatalog{
		games: []CatalogRecord{{ID: 1, Name: "Catan"}},
	}
	m := NewManager(users, catalog)

	entries, err := m.Fetch(context.Background(), "user-1", CollectionFilters{MinUserRating: f64Ptr(7)})
	require.Nil(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, int64(1), entries[0].Item.GameID)

	// Catalog lookup only sees the locally filtered ids
	assert.Equal(t, []int64{1}, catalog.gotIDs)
}

func TestFetchEmptyCollectionSkipsCatalog(t *testing.T) {
	users := &fakeUsers{collection: []MembershipRecord{}}
	catalog := &fakeCatalog{}
	m := NewManager(users, catalog)

	entries, err := m.Fetch(context.Background(), "user-1", CollectionFilters{})
	require.Nil(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
	assert.Equal(t, 0, catalog.listCalls)
}

func TestFetchFilteredToEmptySkipsCatalog(t *testing.T) {
	users := &fakeUsers{
		collection: []MembershipRecord{{GameID: 1, UserRating: f64Ptr(3)}},
	}
	catalog := &fakeCatalog{}
	m := NewManager(users, catalog)

	entries, err := m.Fetch(context.Background(), "user-1", CollectionFilters{MinUserRating: f64Ptr(8)})
	require.Nil(t, err)
	assert.Empty(t, entries)
	assert.Equal(t, 0, catalog.listCalls)
}

func TestFetchForwardsCatalogFilters(t *testing.T) {
	users := &fakeUsers{collection: []MembershipRecord{{GameID: 1}}}
	catalog := &fakeCatalog{games: []CatalogRecord{{ID: 1, Name: "Catan"}}}
	m := NewManager(users, catalog)

	filters := CollectionFilters{
		MinUserRating:  f64Ptr(5), // local only, must not be forwarded
		PlayerCount:    intPtr(4),
		MaxPlayingTime: intPtr(90),
		GameTypes:      []string{"strategy", "family"},
		MinRating:      f64Ptr(7.5),
	}
	_, err := m.Fetch(context.Background(), "user-1", filters)
	require.Nil(t, err)

	assert.Equal(t, intPtr(4), catalog.gotFilters.PlayerCount)
	assert.Equal(t, intPtr(90), catalog.gotFilters.MaxPlayingTime)
	assert.Equal(t, []string{"strategy", "family"}, catalog.gotFilters.GameTypes)
	assert.Equal(t, f64Ptr(7.5), catalog.gotFilters.MinRating)
}

func TestFetchUpstreamErrors(t *testing.T) {
	m := NewManager(&fakeUsers{collectionErr: ErrUpstreamUnavailable}, &fakeCatalog{})
	_, err := m.Fetch(context.Background(), "user-1", CollectionFilters{})
	require.NotNil(t, err)
	assert.ErrorIs(t, err, ErrUpstreamUnavailable)

	m = NewManager(
		&fakeUsers{collection: []MembershipRecord{{GameID: 1}}},
		&fakeCatalog{listErr: ErrMalformedUpstream},
	)
	_, err = m.Fetch(context.Background(), "user-1", CollectionFilters{})
	require.NotNil(t, err)
	assert.ErrorIs(t, err, ErrUpstreamUnavailable)
}

func TestAdd(t *testing.T) {
	users := &fakeUsers{
		added: &MembershipRecord{GameID: 1, Notes: strPtr("Great!")},
	}
	catalog := &fakeCatalog{
		byID: map[int64]*CatalogRecord{1: {ID: 1, Name: "Catan", Rating: f64Ptr(7.5)}},
	}
	m := NewManager(users, catalog)

	entry, err := m.Add(context.Background(), "user-1", 1, strPtr("Great!"), []string{"fav"})
	require.Nil(t, err)
	assert.Equal(t, int64(1), entry.Item.GameID)
	assert.Equal(t, "Catan", entry.Game.Name)
	assert.Equal(t, []string{"fav"}, users.gotLabelNames)
}

func TestAddDefaultsLabelNames(t *testing.T) {
	users := &fakeUsers{added: &MembershipRecord{GameID: 1}}
	catalog := &fakeCatalog{byID: map[int64]*CatalogRecord{1: {ID: 1, Name: "Catan"}}}
	m := NewManager(users, catalog)

	_, err := m.Add(context.Background(), "user-1", 1, nil, nil)
	require.Nil(t, err)
	require.NotNil(t, users.gotLabelNames)
	assert.Empty(t, users.gotLabelNames)
	assert.Nil(t, users.gotNotes)
}

func TestAddGameNotFound(t *testing.T) {
	users := &fakeUsers{}
	catalog := &fakeCatalog{byID: map[int64]*CatalogRecord{}}
	m := NewManager(users, catalog)

	_, err := m.Add(context.Background(), "user-1", 999, nil, nil)
	require.NotNil(t, err)
	assert.ErrorIs(t, err, ErrGameNotFound)
	assert.Contains(t, err.Error(), "999")

	// A catalog miss must never result in a write
	assert.Equal(t, 0, users.addCalls)
}

func TestAddCatalogErrorBlocksWrite(t *testing.T) {
	users := &fakeUsers{}
	catalog := &fakeCatalog{byIDErr: ErrUpstreamUnavailable}
	m := NewManager(users, catalog)

	_, err := m.Add(context.Background(), "user-1", 1, nil, nil)
	require.NotNil(t, err)
	assert.ErrorIs(t, err, ErrUpstreamUnavailable)
	assert.Equal(t, 0, users.addCalls)
}

func TestRemove(t *testing.T) {
	users := &fakeUsers{}
	m := NewManager(users, &fakeCatalog{})

	err := m.Remove(context.Background(), "user-1", 42)
	require.Nil(t, err)
	assert.Equal(t, 1, users.removeCalls)
}

func TestRemoveSurfacesUpstreamError(t *testing.T) {
	// Upstream not-found is surfaced unchanged, not translated
	upstreamErr := ErrViewError.New("game not in collection")
	users := &fakeUsers{removeErr: upstreamErr}
	m := NewManager(users, &fakeCatalog{})

	err := m.Remove(context.Background(), "user-1", 42)
	require.NotNil(t, err)
	assert.ErrorIs(t, err, upstreamErr)
}

func TestCreateReview(t *testing.T) {
	users := &fakeUsers{
		review: &Review{ID: 10, GameID: 1, Rating: 9, ReviewText: "Superb", CreatedAt: "2026-08-30T12:00:00Z"},
	}
	catalog := &fakeCatalog{byID: map[int64]*CatalogRecord{1: {ID: 1, Name: "Catan"}}}
	m := NewManager(users, catalog)

	created, err := m.CreateReview(context.Background(), "user-1", 1, 9, "Superb")
	require.Nil(t, err)
	assert.Equal(t, int64(10), created.Review.ID)
	assert.Equal(t, "Catan", created.Game.Name)
}

func TestCreateReviewGameNotFound(t *testing.T) {
	users := &fakeUsers{}
	catalog := &fakeCatalog{byID: map[int64]*CatalogRecord{}}
	m := NewManager(users, catalog)

	_, err := m.CreateReview(context.Background(), "user-1", 999, 9, "Superb")
	require.NotNil(t, err)
	assert.ErrorIs(t, err, ErrGameNotFound)

	// A catalog miss must never result in a write
	assert.Equal(t, 0, users.reviewCalls)
}
