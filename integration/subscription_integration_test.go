package integration_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cuotas/internal/subscription"
)

func ptr(f float64) *float64 { return &f }

func createTestSubscription(t *testing.T, repo *subscription.Repository, name string, usd float64) subscription.Subscription {
	t.Helper()
	sub := subscription.Subscription{
		Name:      name,
		USDPrice:  usd,
		Frequency: subscription.FrequencyMonthly,
		Members: subscription.Members{{
			ID:             "m1",
			Name:           "Ana",
			Payment:        ptr(60),
			Frequency:      subscription.FrequencyAnnual,
			PaymentMethods: []subscription.PaymentMethod{subscription.MethodTransfer},
			Comments:       []string{"primer pago"},
		}},
	}
	_, err := repo.Create(context.Background(), &sub)
	require.NoError(t, err)
	return sub
}

func TestRepositoryRoundTrip_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	db := setupTestDB(t)
	repo := subscription.NewRepository(db)
	ctx := context.Background()

	created := createTestSubscription(t, repo, "Netflix", 15.49)
	require.NotZero(t, created.ID)
	assert.Equal(t, 1, created.Version)

	got, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Netflix", got.Name)
	assert.Equal(t, 15.49, got.USDPrice)
	assert.Nil(t, got.TotalDebited)
	assert.Equal(t, 0, got.Position)
	require.Len(t, got.Members, 1)
	assert.Equal(t, "Ana", got.Members[0].Name)
	assert.Equal(t, 60.0, *got.Members[0].Payment)
	assert.Equal(t, []string{"primer pago"}, got.Members[0].Comments)

	second := createTestSubscription(t, repo, "Spotify", 10.99)
	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, created.ID, all[0].ID)
	assert.Equal(t, second.ID, all[1].ID)
	assert.Equal(t, 1, all[1].Position)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestRepositoryRemove_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	db := setupTestDB(t)
	repo := subscription.NewRepository(db)
	ctx := context.Background()

	sub := createTestSubscription(t, repo, "Netflix", 15.49)
	require.NoError(t, repo.Remove(ctx, sub.ID))

	_, err := repo.Get(ctx, sub.ID)
	assert.ErrorIs(t, err, subscription.ErrSubscriptionNotFound)

	// Removing again is a no-op.
	assert.NoError(t, repo.Remove(ctx, sub.ID))
}

func TestRepositoryReorderAll_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	db := setupTestDB(t)
	repo := subscription.NewRepository(db)
	ctx := context.Background()

	a := createTestSubscription(t, repo, "A", 5)
	b := createTestSubscription(t, repo, "B", 7)

	require.NoError(t, repo.ReorderAll(ctx, []subscription.Subscription{b, a}))

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "B", all[0].Name)
	assert.Equal(t, "A", all[1].Name)
	assert.Equal(t, 0, all[0].Position)
	assert.Equal(t, 1, all[1].Position)
}

func TestRepositoryReorderAllRollsBack_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	db := setupTestDB(t)
	repo := subscription.NewRepository(db)
	ctx := context.Background()

	a := createTestSubscription(t, repo, "A", 5)
	ghost := subscription.Subscription{ID: a.ID + 1000, Name: "ghost", USDPrice: 1, Frequency: subscription.FrequencyMonthly}

	err := repo.ReorderAll(ctx, []subscription.Subscription{a, ghost})
	require.ErrorIs(t, err, subscription.ErrSubscriptionNotFound)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "A", all[0].Name)
}

func TestRepositoryOptimisticConflict_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	db := setupTestDB(t)
	repo := subscription.NewRepository(db)
	ctx := context.Background()

	sub := createTestSubscription(t, repo, "Netflix", 15.49)

	first, err := repo.Get(ctx, sub.ID)
	require.NoError(t, err)
	stale, err := repo.Get(ctx, sub.ID)
	require.NoError(t, err)

	first.USDPrice = 17.99
	require.NoError(t, repo.Update(ctx, first))
	assert.Equal(t, 2, first.Version)

	stale.Name = "Netflix HD"
	assert.ErrorIs(t, repo.Update(ctx, stale), subscription.ErrVersionConflict)

	missing := &subscription.Subscription{ID: sub.ID + 1000, Name: "x", USDPrice: 1, Frequency: subscription.FrequencyMonthly, Version: 1}
	assert.ErrorIs(t, repo.Update(ctx, missing), subscription.ErrSubscriptionNotFound)

	got, err := repo.Get(ctx, sub.ID)
	require.NoError(t, err)
	assert.Equal(t, "Netflix", got.Name)
	assert.Equal(t, 17.99, got.USDPrice)
}
