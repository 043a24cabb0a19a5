//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"github.com/jpgenari/browserstack-examples-cucumber-PageFactory-Sel4/internal/models"
	"github.com/jpgenari/browserstack-examples-cucumber-PageFactory-Sel4/internal/repository/testutil"
)

func TestPostgresCartRepository_Integration(t *testing.T) {
	runCartRepositoryContract(t, func(t *testing.T) cartRepository {
		testDB := testutil.SetupTestDatabase(t)
		t.Cleanup(func() { testDB.Teardown(t) })
		return NewPostgresCartRepository(testDB.DB)
	})
}

func TestPostgresCartRepository_DuplicateCart_Integration(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	defer testDB.Teardown(t)

	repo := NewPostgresCartRepository(testDB.DB)
	cart := models.NewCart()

	if err := repo.CreateCart(cart); err != nil {
		t.Fatalf("CreateCart() error = %v", err)
	}
	if err := repo.CreateCart(cart); err == nil {
		t.Error("expected primary key violation for duplicate cart")
	}
}

func TestPostgresCartRepository_AddItemTouchesCart_Integration(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	defer testDB.Teardown(t)

	repo := NewPostgresCartRepository(testDB.DB)
	cart := models.NewCart()
	cart.UpdatedAt = time.Now().Add(-time.Hour)
	if err := repo.CreateCart(cart); err != nil {
		t.Fatalf("CreateCart() error = %v", err)
	}

	if err := repo.AddItem(cart.ID, models.CartItem{ProductID: "16", Title: "Pixel 4", Vendor: "Google", PriceCents: 79900, Quantity: 1}); err != nil {
		t.Fatalf("AddItem() error = %v", err)
	}

	got, err := repo.GetCart(cart.ID)
	if err != nil {
		t.Fatalf("GetCart() error = %v", err)
	}
	if !got.UpdatedAt.After(cart.UpdatedAt) {
		t.Errorf("expected updated_at to move forward, got %v", got.UpdatedAt)
	}
}
