package repository

import (
	"context"

	"doctor-directory/internal/domain/entity"
	domainRepo "doctor-directory/internal/domain/repository"

	"gorm.io/gorm"
)

const doctorInsertBatchSize = 200

type doctorRepository struct {
	db *gorm.DB
}

func NewDoctorRepository(db *gorm.DB) domainRepo.DoctorRepository {
	return &doctorRepository{db: db}
}

func (r *doctorRepository) FindAll(ctx context.Context) ([]entity.Doctor, error) {
	var doctors []entity.Doctor
	err := r.db.WithContext(ctx).Order("position ASC").Order("id ASC").Find(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *doctorRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Doctor{}).Count(&count).Error
	return count, err
}

func (r *doctorRepository) ReplaceAll(ctx context.Context, doctors []entity.Doctor) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&entity.Doctor{}).Error; err != nil {
			return err
		}
		if len(doctors) == 0 {
			return nil
		}
		return tx.CreateInBatches(doctors, doctorInsertBatchSize).Error
	})
}
