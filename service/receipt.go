package service

import (
	"errors"
	"fmt"

	"schoolms/models"

	"gorm.io/gorm"
)

// NextNumber bumps the named sequence atomically and returns the new value
// formatted as prefix + zero-padded number (e.g. RCP00001). The bump is a
// single UPDATE so concurrent callers never see the same value; the unique
// index on the consuming column stays as a backstop. An aborted transaction
// may skip a number, numbers are never reused.
func NextNumber(tx *gorm.DB, name, prefix string, width int) (string, error) {
	res := tx.Model(&models.Sequence{}).
		Where("name = ?", name).
		UpdateColumn("value", gorm.Expr("value + 1"))
	if res.Error != nil {
		return "", res.Error
	}
	if res.RowsAffected == 0 {
		// first use: seed the row, then retry once in case another
		// caller seeded it concurrently
		if err := tx.Create(&models.Sequence{Name: name, Value: 1}).Error; err != nil {
			res = tx.Model(&models.Sequence{}).
				Where("name = ?", name).
				UpdateColumn("value", gorm.Expr("value + 1"))
			if res.Error != nil {
				return "", res.Error
			}
		} else {
			return fmt.Sprintf("%s%0*d", prefix, width, 1), nil
		}
	}
	var seq models.Sequence
	if err := tx.Where("name = ?", name).First(&seq).Error; err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%0*d", prefix, width, seq.Value), nil
}

// PeekNumber returns what the next NextNumber call would hand out, without
// bumping the sequence. Purely a read, nothing is reserved: only NextNumber
// consumes values. A missing row means nothing has been allocated yet.
func PeekNumber(db *gorm.DB, name, prefix string, width int) (string, error) {
	var seq models.Sequence
	if err := db.Where("name = ?", name).First(&seq).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Sprintf("%s%0*d", prefix, width, 1), nil
		}
		return "", err
	}
	return fmt.Sprintf("%s%0*d", prefix, width, seq.Value+1), nil
}
