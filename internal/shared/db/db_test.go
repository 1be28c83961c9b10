package db

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type lotRow struct {
	ID        uint   `gorm:"primarykey"`
	LotNumber string `gorm:"uniqueIndex"`
}

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "tx.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&lotRow{}))
	return db
}

func TestIsUniqueViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"gorm translated", gorm.ErrDuplicatedKey, true},
		{"wrapped gorm", fmt.Errorf("insert: %w", gorm.ErrDuplicatedKey), true},
		{"mysql", errors.New("Error 1062 (23000): Duplicate entry '7' for key 'uk_qc_record'"), true},
		{"postgres", errors.New(`ERROR: duplicate key value violates unique constraint "uk_qc_record" (SQLSTATE 23505)`), true},
		{"sqlite", errors.New("UNIQUE constraint failed: quality_controls.production_record_id"), true},
		{"other", errors.New("connection refused"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsUniqueViolation(tt.err))
		})
	}
}

func TestIsUniqueViolation_RealSQLiteError(t *testing.T) {
	db := setupDB(t)
	require.NoError(t, db.Create(&lotRow{LotNumber: "L-1"}).Error)

	err := db.Create(&lotRow{LotNumber: "L-1"}).Error

	require.Error(t, err)
	assert.True(t, IsUniqueViolation(err))
}

func TestRunInTransaction_RollsBackOnError(t *testing.T) {
	db := setupDB(t)
	tm := NewTransactionManager(db)

	err := tm.RunInTransaction(context.Background(), func(ctx context.Context) error {
		if err := GetTxFromContext(ctx, db).Create(&lotRow{LotNumber: "L-2"}).Error; err != nil {
			return err
		}
		return errors.New("defect insert failed")
	})

	require.Error(t, err)
	var count int64
	db.Model(&lotRow{}).Count(&count)
	assert.Zero(t, count)
}

func TestRunInTransaction_Commits(t *testing.T) {
	db := setupDB(t)
	tm := NewTransactionManager(db)

	err := tm.RunInTransaction(context.Background(), func(ctx context.Context) error {
		return GetTxFromContext(ctx, db).Create(&lotRow{LotNumber: "L-3"}).Error
	})

	require.NoError(t, err)
	var count int64
	db.Model(&lotRow{}).Count(&count)
	assert.Equal(t, int64(1), count)
}
