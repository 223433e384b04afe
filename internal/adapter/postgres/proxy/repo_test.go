package proxy

import (
	"context"
	"errors"
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v2"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock.NewPool: %v", err)
	}
	t.Cleanup(mock.Close)
	return mock
}

func TestRun_CollectsRowsByColumnName(t *testing.T) {
	t.Parallel()

	mock := newMock(t)
	repo := New(mock)

	rows := pgxmock.NewRows([]string{"id", "city"}).
		AddRow(int64(1), "Riga").
		AddRow(int64(2), "Tallinn")
	mock.ExpectQuery(`SELECT id, city FROM cities`).WillReturnRows(rows)

	result, err := repo.Run(context.Background(), "SELECT id, city FROM cities")
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if result.RowCount != 2 {
		t.Fatalf("RowCount = %d, want 2", result.RowCount)
	}
	if len(result.Rows) != result.RowCount {
		t.Fatalf("len(Rows) = %d, want %d", len(result.Rows), result.RowCount)
	}
	if result.Rows[0]["city"] != "Riga" {
		t.Errorf("Rows[0][city] = %v, want Riga", result.Rows[0]["city"])
	}
	if result.Rows[1]["id"] != int64(2) {
		t.Errorf("Rows[1][id] = %v, want 2", result.Rows[1]["id"])
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRun_EmptyResult(t *testing.T) {
	t.Parallel()

	mock := newMock(t)
	repo := New(mock)

	mock.ExpectQuery(`SELECT`).WillReturnRows(pgxmock.NewRows([]string{"id"}))

	result, err := repo.Run(context.Background(), "SELECT id FROM cities WHERE false")
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if result.RowCount != 0 || len(result.Rows) != 0 {
		t.Errorf("expected empty result, got %+v", result)
	}
}

func TestRun_StoreErrorSurfaces(t *testing.T) {
	t.Parallel()

	mock := newMock(t)
	repo := New(mock)

	storeErr := errors.New(`relation "nope" does not exist`)
	mock.ExpectQuery(`SELECT`).WillReturnError(storeErr)

	_, err := repo.Run(context.Background(), "SELECT * FROM nope")
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, storeErr) {
		t.Errorf("underlying store error lost: %v", err)
	}
}
