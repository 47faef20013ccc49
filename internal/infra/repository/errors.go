package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/cocktails-rolodex/cocktails-api/internal/domain/record"
)

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return record.ErrNotFound
	}
	return err
}
