package postgres

import (
	"context"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDonationRepo_GetStats_CombinesBothPaths(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewDonationRepo(mock)

	mock.ExpectQuery("FROM donations").
		WillReturnRows(pgxmock.NewRows([]string{"total", "completed", "total_usd"}).
			AddRow(int64(3), int64(2), decimal.NewFromInt(40)))

	// Two currency groups on the tracked path: 25 USD completed plus a
	// crypto-priced donation normalized at the flat legacy rate.
	mock.ExpectQuery("FROM donation_transactions").
		WillReturnRows(pgxmock.NewRows([]string{"currency", "total", "completed", "completed_amount"}).
			AddRow("USD", int64(2), int64(1), decimal.NewFromInt(25)).
			AddRow("ZMW", int64(1), int64(1), decimal.NewFromInt(500)))

	stats, err := repo.GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(6), stats.Total)
	assert.Equal(t, int64(4), stats.Completed)
	// 40 legacy + 25 USD + 500 * 0.04.
	assert.True(t, decimal.NewFromInt(85).Equal(stats.TotalUSD), "got %s", stats.TotalUSD)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDonationRepo_GetStats_EmptyTables(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewDonationRepo(mock)

	mock.ExpectQuery("FROM donations").
		WillReturnRows(pgxmock.NewRows([]string{"total", "completed", "total_usd"}).
			AddRow(int64(0), int64(0), decimal.Zero))
	mock.ExpectQuery("FROM donation_transactions").
		WillReturnRows(pgxmock.NewRows([]string{"currency", "total", "completed", "completed_amount"}))

	stats, err := repo.GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.Total)
	assert.Equal(t, int64(0), stats.Completed)
	assert.True(t, stats.TotalUSD.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}
