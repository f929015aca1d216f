package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Doctor is one practitioner in the directory. Records are immutable once
// loaded; every consumer treats the dataset as read-only.
type Doctor struct {
	ID           string          `gorm:"type:varchar(64);primaryKey" json:"id"`
	Name         string          `gorm:"type:varchar(255);not null;index" json:"name"`
	Specialty    []string        `gorm:"type:jsonb;serializer:json" json:"specialty"`
	Fee          decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"fee"`
	Experience   int             `gorm:"not null;default:0" json:"experience"`
	City         string          `gorm:"type:varchar(100)" json:"city"`
	ClinicName   string          `gorm:"type:varchar(255)" json:"clinic_name"`
	Photo        string          `gorm:"type:text" json:"photo,omitempty"`
	VideoConsult bool            `gorm:"not null;default:false" json:"video_consult"`
	InClinic     bool            `gorm:"not null;default:false" json:"in_clinic"`
	Position     int             `gorm:"not null;default:0;index" json:"position"`
	CreatedAt    time.Time       `gorm:"autoCreateTime" json:"-"`
	UpdatedAt    time.Time       `gorm:"autoUpdateTime" json:"-"`
}

func (Doctor) TableName() string {
	return "doctors"
}

// HasSpecialty reports whether any of the doctor's tags is in the given set.
func (d Doctor) HasSpecialty(tags map[string]struct{}) bool {
	for _, s := range d.Specialty {
		if _, ok := tags[s]; ok {
			return true
		}
	}
	return false
}
