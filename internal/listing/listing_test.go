package listing_test

import (
	"doctor-directory/internal/domain/entity"

	"github.com/shopspring/decimal"
)

func doctor(id, name string, fee int64, experience int, video, clinic bool, specialty ...string) entity.Doctor {
	return entity.Doctor{
		ID:           id,
		Name:         name,
		Specialty:    specialty,
		Fee:          decimal.NewFromInt(fee),
		Experience:   experience,
		VideoConsult: video,
		InClinic:     clinic,
	}
}

func scenarioDataset() []entity.Doctor {
	return []entity.Doctor{
		doctor("a", "Dr. A", 500, 5, true, false, "Cardiologist"),
		doctor("b", "Dr. B", 300, 10, false, true, "Dermatologist"),
	}
}

func names(doctors []entity.Doctor) []string {
	out := make([]string, 0, len(doctors))
	for _, d := range doctors {
		out = append(out, d.Name)
	}
	return out
}
