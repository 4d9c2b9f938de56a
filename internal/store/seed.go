package store

import (
	"fmt"
	"time"

	"craftlink/pkg/domain"
)

// SeedSampleData inserts the demo craftsmen when the store is empty.
// Returns the number of records inserted (0 when data already exists).
func SeedSampleData(s Store) (int, error) {
	count, err := s.CraftsmanCount()
	if err != nil {
		return 0, fmt.Errorf("count craftsmen: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	now := time.Now().UTC()
	samples := []domain.Craftsman{
		{
			Name:            "محمد أحمد",
			Email:           "mohamed.ahmed@email.com",
			Phone:           "0658-125-4667",
			ServiceType:     "سباكة",
			Location:        "الدار البيضاء - المعاريف",
			Description:     "خبرة 15 سنة في أعمال السباكة وإصلاح التسريبات",
			ExperienceYears: 15,
			Rating:          4.8,
			ReviewsCount:    24,
			CompletedJobs:   156,
			PriceRange:      "150-300 درهم",
			Availability:    "متاح من السبت إلى الخميس، 8:00 ص - 6:00 م",
			IsVerified:      true,
		},
		{
			Name:            "علي حسين",
			Email:           "ali.hussein@email.com",
			Phone:           "0668-128-3547",
			ServiceType:     "كهرباء",
			Location:        "الدار البيضاء - سيدي مومن",
			Description:     "متخصص في التركيبات الكهربائية وإصلاح الأعطال",
			ExperienceYears: 12,
			Rating:          4.6,
			ReviewsCount:    18,
			CompletedJobs:   89,
			PriceRange:      "200-400 درهم",
			Availability:    "متاح يومياً من 9:00 ص - 7:00 م",
			IsVerified:      true,
		},
		{
			Name:            "سعيد علي",
			Email:           "said.ali@email.com",
			Phone:           "0665-125-4547",
			ServiceType:     "نجارة",
			Location:        "الدار البيضاء - الحي المحمدي",
			Description:     "صناعة وإصلاح الأثاث الخشبي والديكورات",
			ExperienceYears: 18,
			Rating:          4.9,
			ReviewsCount:    31,
			CompletedJobs:   203,
			PriceRange:      "300-600 درهم",
			Availability:    "متاح من الاثنين إلى السبت، 8:00 ص - 5:00 م",
			IsVerified:      true,
		},
		{
			Name:            "أحمد عبدالله",
			Email:           "ahmed.abdullah@email.com",
			Phone:           "0668-128-4547",
			ServiceType:     "صباغة",
			Location:        "الدار البيضاء - عين السبع",
			Description:     "طلاء الجدران والأسقف بأحدث التقنيات",
			ExperienceYears: 8,
			Rating:          4.4,
			ReviewsCount:    12,
			CompletedJobs:   67,
			PriceRange:      "100-250 درهم",
			Availability:    "متاح من الأحد إلى الجمعة، 7:00 ص - 4:00 م",
			IsVerified:      true,
		},
	}

	inserted := 0
	for _, sample := range samples {
		sample.CreatedAt = now
		sample.UpdatedAt = now
		if _, err := s.CreateCraftsman(sample); err != nil {
			return inserted, fmt.Errorf("seed craftsman %s: %w", sample.Email, err)
		}
		inserted++
	}
	return inserted, nil
}
