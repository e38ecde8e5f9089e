package testhelper

import (
	"testing"

	"github.com/pashagolub/pgxmock/v2"

	"github.com/heartmarshall/planner-backend/internal/adapter/postgres"
)

// NewMockQuerier returns a pgxmock pool usable wherever a postgres.Querier
// is expected. Unmet expectations fail the test on cleanup.
func NewMockQuerier(t *testing.T) (postgres.Querier, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("testhelper: pgxmock.NewPool: %v", err)
	}

	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("testhelper: unmet pgxmock expectations: %v", err)
		}
		mock.Close()
	})

	return mock, mock
}
