package db

import (
	"NFTMarketBackend/src/config"
	"NFTMarketBackend/src/entity"

	"github.com/pkg/errors"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB opens the mysql connection and migrates the ledger schema.
func NewDB(c *config.DB) (*gorm.DB, error) {
	gdb, err := gorm.Open(mysql.Open(c.Dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed on open mysql connection")
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed on get sql db")
	}
	if c.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(c.MaxIdleConns)
	}
	if c.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(c.MaxOpenConns)
	}

	if err := Migrate(gdb); err != nil {
		return nil, err
	}
	return gdb, nil
}

func Migrate(gdb *gorm.DB) error {
	err := gdb.AutoMigrate(
		&entity.Collection{},
		&entity.Asset{},
		&entity.OperatorApproval{},
		&entity.Listing{},
		&entity.Account{},
		&entity.Transaction{},
		&entity.Activity{},
	)
	return errors.Wrap(err, "failed on migrate schema")
}
