package order

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func sampleOrder() Order {
	return Order{
		OrderNumber:     "EB-AB12CD34",
		UserID:          7,
		Status:          StatusPending,
		TotalAmount:     1000,
		ShippingAddress: "Anita Shrestha\n12 Lazimpat Road\nKathmandu, Bagmati 44600",
		ShippingPhone:   "9841000000",
		ShippingEmail:   "anita@example.com",
		PaymentMethod:   "khalti",
		PaymentStatus:   "pending",
		CreatedAt:       "2026-08-30T10:00:00Z",
		UpdatedAt:       "2026-08-30T10:00:00Z",
		Items: []Item{
			{ProductName: "Vitamin C Serum", ProductSKU: "EB-SER-001", Quantity: 2, UnitPrice: 500, TotalPrice: 1000},
		},
	}
}

func TestCreateFromCart_CommitsOrderItemsAndCartClear(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)
	ord := sampleOrder()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO orders").
		WithArgs(ord.OrderNumber, ord.UserID, ord.Status, ord.TotalAmount, ord.ShippingAddress,
			ord.ShippingPhone, ord.ShippingEmail, ord.PaymentMethod, ord.PaymentStatus,
			ord.CreatedAt, ord.UpdatedAt).
		WillReturnRows(sqlmock.NewRows([]string{"order_id"}).AddRow(55))
	mock.ExpectQuery("INSERT INTO order_items").
		WithArgs(55, "Vitamin C Serum", "EB-SER-001", 2, 500.0, 1000.0).
		WillReturnRows(sqlmock.NewRows([]string{"item_id"}).AddRow(101))
	mock.ExpectExec("DELETE FROM cart_items").
		WithArgs(9).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE carts").
		WithArgs(ord.CreatedAt, 9).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	created, err := repo.CreateFromCart(ord, 9)
	if err != nil {
		t.Fatalf("CreateFromCart: %v", err)
	}
	if created.ID != 55 {
		t.Fatalf("expected order id 55, got %d", created.ID)
	}
	if created.Items[0].ID != 101 || created.Items[0].OrderID != 55 {
		t.Fatalf("item snapshot not linked: %+v", created.Items[0])
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCreateFromCart_RollsBackWhenCartClearFails(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)
	ord := sampleOrder()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO orders").
		WillReturnRows(sqlmock.NewRows([]string{"order_id"}).AddRow(55))
	mock.ExpectQuery("INSERT INTO order_items").
		WillReturnRows(sqlmock.NewRows([]string{"item_id"}).AddRow(101))
	mock.ExpectExec("DELETE FROM cart_items").
		WillReturnError(errors.New("deadlock detected"))
	mock.ExpectRollback()

	if _, err := repo.CreateFromCart(ord, 9); err == nil {
		t.Fatalf("expected error when cart clear fails")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestHasPurchased_QueriesFulfilledStatuses(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(7, "EB-SER-001").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	got, err := repo.HasPurchased(7, "EB-SER-001")
	if err != nil {
		t.Fatalf("HasPurchased: %v", err)
	}
	if !got {
		t.Fatalf("expected true")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
