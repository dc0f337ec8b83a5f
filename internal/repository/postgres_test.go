package repository

import (
	"context"
	"regexp"
	"testing"

	"reelgraph/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupMockDB opens GORM against a sqlmock connection with the postgres
// dialect, so the generated SQL matches what production runs.
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	return gormDB, mock
}

func TestUserExistsPostgres(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	tests := []struct {
		name         string
		userID       uint
		mockBehavior func()
		expected     bool
	}{
		{
			name:   "Present",
			userID: 1,
			mockBehavior: func() {
				rows := sqlmock.NewRows([]string{"count"}).AddRow(1)
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "users" WHERE id = $1`)).
					WithArgs(1).
					WillReturnRows(rows)
			},
			expected: true,
		},
		{
			name:   "Absent",
			userID: 99,
			mockBehavior: func() {
				rows := sqlmock.NewRows([]string{"count"}).AddRow(0)
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "users" WHERE id = $1`)).
					WithArgs(99).
					WillReturnRows(rows)
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockBehavior()
			ok, err := repo.Exists(ctx, tt.userID)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, ok)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDirectorGetByIDPostgres(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewDirectorRepository(db)
	ctx := context.Background()

	query := regexp.QuoteMeta(`SELECT * FROM "directors" WHERE "directors"."id" = $1 ORDER BY "directors"."id" LIMIT $2`)

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "name"}).AddRow(1, "Kubrick")
		mock.ExpectQuery(query).WithArgs(1, 1).WillReturnRows(rows)

		director, err := repo.GetByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "Kubrick", director.Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not Found", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(99, 1).WillReturnError(gorm.ErrRecordNotFound)

		_, err := repo.GetByID(ctx, 99)
		requireAppError(t, err, models.CodeNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
