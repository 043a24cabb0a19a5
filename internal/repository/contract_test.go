package repository

import (
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/jpgenari/browserstack-examples-cucumber-PageFactory-Sel4/internal/models"
)

type cartRepository interface {
	CreateCart(cart *models.Cart) error
	GetCart(id string) (*models.Cart, error)
	AddItem(cartID string, item models.CartItem) error
}

// runCartRepositoryContract checks behaviour shared by every cart repository
func runCartRepositoryContract(t *testing.T, newRepo func(t *testing.T) cartRepository) {
	t.Run("create and get empty cart", func(t *testing.T) {
		repo := newRepo(t)
		cart := models.NewCart()

		if err := repo.CreateCart(cart); err != nil {
			t.Fatalf("CreateCart() error = %v", err)
		}

		got, err := repo.GetCart(cart.ID)
		if err != nil {
			t.Fatalf("GetCart() error = %v", err)
		}
		if got.ID != cart.ID {
			t.Errorf("expected id %s, got %s", cart.ID, got.ID)
		}
		if !got.IsEmpty() {
			t.Errorf("expected empty cart, got %+v", got.Items)
		}
	})

	t.Run("missing cart", func(t *testing.T) {
		repo := newRepo(t)

		if _, err := repo.GetCart(uuid.New().String()); !errors.Is(err, models.ErrCartNotFound) {
			t.Errorf("expected ErrCartNotFound, got %v", err)
		}
		err := repo.AddItem(uuid.New().String(), models.CartItem{ProductID: "1", Title: "iPhone 12", Vendor: "Apple", Quantity: 1})
		if !errors.Is(err, models.ErrCartNotFound) {
			t.Errorf("expected ErrCartNotFound on add, got %v", err)
		}
	})

	t.Run("add inserts then increments quantity", func(t *testing.T) {
		repo := newRepo(t)
		cart := models.NewCart()
		if err := repo.CreateCart(cart); err != nil {
			t.Fatalf("CreateCart() error = %v", err)
		}

		galaxy := models.Product{ID: "10", Title: "Galaxy S20", Vendor: "Samsung", PriceCents: 99900}
		iphone := models.Product{ID: "1", Title: "iPhone 12", Vendor: "Apple", PriceCents: 79900}
		for _, p := range []models.Product{galaxy, iphone, galaxy, galaxy} {
			item, err := models.NewCartItem(p)
			if err != nil {
				t.Fatalf("NewCartItem() error = %v", err)
			}
			if err := repo.AddItem(cart.ID, item); err != nil {
				t.Fatalf("AddItem() error = %v", err)
			}
		}

		got, err := repo.GetCart(cart.ID)
		if err != nil {
			t.Fatalf("GetCart() error = %v", err)
		}
		if got.Quantity("10") != 3 {
			t.Errorf("expected 3 Galaxy S20, got %d", got.Quantity("10"))
		}
		if got.Quantity("1") != 1 {
			t.Errorf("expected 1 iPhone 12, got %d", got.Quantity("1"))
		}
		if len(got.Items) != 2 {
			t.Fatalf("expected 2 lines, got %d", len(got.Items))
		}
		if got.Items[0].Title != "Galaxy S20" || got.Items[0].Vendor != "Samsung" || got.Items[0].PriceCents != 99900 {
			t.Errorf("unexpected first line: %+v", got.Items[0])
		}
	})

	t.Run("concurrent adds are not lost", func(t *testing.T) {
		repo := newRepo(t)
		cart := models.NewCart()
		if err := repo.CreateCart(cart); err != nil {
			t.Fatalf("CreateCart() error = %v", err)
		}

		item, err := models.NewCartItem(models.Product{ID: "16", Title: "Pixel 4", Vendor: "Google", PriceCents: 79900})
		if err != nil {
			t.Fatalf("NewCartItem() error = %v", err)
		}

		const adds = 100
		var wg sync.WaitGroup
		for i := 0; i < adds; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if err := repo.AddItem(cart.ID, item); err != nil {
					t.Errorf("AddItem() error = %v", err)
				}
			}()
		}
		wg.Wait()

		got, err := repo.GetCart(cart.ID)
		if err != nil {
			t.Fatalf("GetCart() error = %v", err)
		}
		if got.Quantity("16") != adds {
			t.Errorf("expected quantity %d, got %d", adds, got.Quantity("16"))
		}
		if len(got.Items) != 1 {
			t.Errorf("expected a single line, got %d", len(got.Items))
		}
	})
}
