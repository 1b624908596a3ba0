package repository_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/jask/basket/internal/database"
	"github.com/jask/basket/internal/database/repository"
	"github.com/jask/basket/internal/grocery"
	"github.com/jask/basket/internal/notify"
)

func openDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.OpenSession(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestListRepoRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewListRepo(openDB(t))

	lists, err := repo.List(ctx)
	require.NoError(t, err)
	if diff := cmp.Diff(database.FixtureLists(), lists); diff != "" {
		t.Fatalf("fixture lists mismatch (-want +got):\n%s", diff)
	}

	fresh := grocery.GroceryList{ID: "1718438400000", Name: "Dinner", Date: "Jun 15, 2024", Items: []grocery.ListItem{}}
	require.NoError(t, repo.Insert(ctx, fresh))
	lists, err = repo.List(ctx)
	require.NoError(t, err)
	require.Equal(t, "Dinner", lists[0].Name)

	got, err := repo.Get(ctx, fresh.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Empty(t, got.Items)

	missing, err := repo.Get(ctx, "nope")
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestListRepoReplaceItemsKeepsOrder(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewListRepo(openDB(t))
	id := database.FixtureLists()[0].ID

	items := []grocery.ListItem{
		{ID: "b", Name: "Butter", Quantity: 2, Priority: grocery.PriorityHigh},
		{ID: "a", Name: "Apples", Checked: true, EstimatedPrice: 2.5},
	}
	require.NoError(t, repo.ReplaceItems(ctx, id, items))

	got, err := repo.Get(ctx, id)
	require.NoError(t, err)
	require.Equal(t, items, got.Items)
}

func TestListRepoDeleteCascades(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)
	repo := repository.NewListRepo(db)
	id := database.FixtureLists()[0].ID

	require.NoError(t, repo.Delete(ctx, id))
	var n int
	require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM list_items WHERE list_id = ?`, id).Scan(&n))
	require.Zero(t, n)

	lists, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, lists, len(database.FixtureLists())-1)
}

func TestNotificationRepoReplace(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewNotificationRepo(openDB(t))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 4)

	want := []notify.Notification{all[3], all[0]}
	want[1].Read = true
	require.NoError(t, repo.Replace(ctx, want))

	got, err := repo.List(ctx)
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("feed mismatch (-want +got):\n%s", diff)
	}

	extra := notify.Notification{ID: "9", Type: notify.TypeAlert, Title: "Promo", Message: "Beurre -20%", Time: "now"}
	require.NoError(t, repo.Insert(ctx, extra))
	got, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)
	require.Equal(t, "9", got[2].ID)
}

func TestStoreRepoNearestFirst(t *testing.T) {
	stores, err := repository.NewStoreRepo(openDB(t)).List(context.Background())
	require.NoError(t, err)
	if diff := cmp.Diff(database.FixtureStores(), stores); diff != "" {
		t.Fatalf("stores mismatch (-want +got):\n%s", diff)
	}
}

func TestSuggestionRepoDismiss(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewSuggestionRepo(openDB(t))

	active, err := repo.Active(ctx)
	require.NoError(t, err)
	require.Len(t, active, 5)
	require.Equal(t, "Lait Bio", active[0].Item)

	require.NoError(t, repo.Dismiss(ctx, active[0].ID))
	active, err = repo.Active(ctx)
	require.NoError(t, err)
	require.Len(t, active, 4)
	require.Equal(t, "Papier Toilette", active[0].Item)
}

func TestBudgetRepo(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewBudgetRepo(openDB(t))

	cats, err := repo.Categories(ctx)
	require.NoError(t, err)
	require.Len(t, cats, 4)
	require.Equal(t, "Groceries", cats[0].Name)

	txs, err := repo.RecentTransactions(ctx, 3)
	require.NoError(t, err)
	require.Len(t, txs, 3)
	require.Equal(t, "Lidl", txs[0].Store)

	weeks, err := repo.Weeks(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"Sem 1", "Sem 2", "Sem 3", "Sem 4"}, []string{weeks[0].Week, weeks[1].Week, weeks[2].Week, weeks[3].Week})
}
