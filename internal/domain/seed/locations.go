package seed

import (
	"time"

	"github.com/zatekoja/clinicsite/internal/domain/entities"
)

var locationSeedTime = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

func weekdayHours(open string) entities.WeeklyHours {
	return entities.WeeklyHours{
		"monday":    open,
		"tuesday":   open,
		"wednesday": open,
		"thursday":  open,
		"friday":    open,
		"saturday":  "Closed",
		"sunday":    "Closed",
	}
}

// Locations returns the built-in clinic locations shown when the locations
// table is unavailable.
func Locations() []*entities.Location {
	downtown := weekdayHours("8:00 AM - 6:00 PM")
	downtown["saturday"] = "9:00 AM - 1:00 PM"

	return []*entities.Location{
		{
			ID:             "fallback-downtown",
			Name:           "Harbor Health Downtown",
			Slug:           "downtown",
			Address:        "120 Market Street, Suite 300, Springfield, IL 62701",
			Phone:          "(555) 010-2001",
			Email:          "downtown@harborhealth.example",
			Hours:          downtown,
			Services:       []string{"Intensive Outpatient Program", "Medication-Assisted Treatment", "Individual Therapy", "Psychiatric Care"},
			Images:         []string{"/images/locations/downtown-1.jpg", "/images/locations/downtown-2.jpg"},
			HeroImage:      "/images/locations/downtown-hero.jpg",
			Description:    "Our flagship clinic in the heart of downtown, steps from the Market Street bus line.",
			MapURL:         "https://maps.google.com/?q=120+Market+Street+Springfield+IL",
			SEOTitle:       "Harbor Health Downtown | Outpatient Treatment in Springfield",
			SEODescription: "Outpatient addiction and mental health care in downtown Springfield.",
			IsActive:       true,
			DisplayOrder:   1,
			CreatedAt:      locationSeedTime,
			UpdatedAt:      locationSeedTime,
		},
		{
			ID:             "fallback-westside",
			Name:           "Harbor Health Westside",
			Slug:           "westside",
			Address:        "4580 Wabash Avenue, Springfield, IL 62704",
			Phone:          "(555) 010-2002",
			Email:          "westside@harborhealth.example",
			Hours:          weekdayHours("9:00 AM - 5:00 PM"),
			Services:       []string{"Individual Therapy", "Group Therapy", "Family Counseling"},
			Images:         []string{"/images/locations/westside-1.jpg"},
			HeroImage:      "/images/locations/westside-hero.jpg",
			Description:    "A quiet neighbourhood clinic with free parking and evening family sessions.",
			MapURL:         "https://maps.google.com/?q=4580+Wabash+Avenue+Springfield+IL",
			SEOTitle:       "Harbor Health Westside | Therapy and Counseling",
			SEODescription: "Individual, group and family therapy on Springfield's west side.",
			IsActive:       true,
			DisplayOrder:   2,
			CreatedAt:      locationSeedTime,
			UpdatedAt:      locationSeedTime,
		},
		{
			ID:             "fallback-lakeside",
			Name:           "Harbor Health Lakeside",
			Slug:           "lakeside",
			Address:        "18 Shoreline Drive, Chatham, IL 62629",
			Phone:          "(555) 010-2003",
			Email:          "lakeside@harborhealth.example",
			Hours:          weekdayHours("8:30 AM - 4:30 PM"),
			Services:       []string{"Medication-Assisted Treatment", "Peer Recovery Support", "Psychiatric Care"},
			Images:         []string{"/images/locations/lakeside-1.jpg"},
			HeroImage:      "/images/locations/lakeside-hero.jpg",
			Description:    "Serving Chatham and the surrounding lake communities.",
			MapURL:         "https://maps.google.com/?q=18+Shoreline+Drive+Chatham+IL",
			SEOTitle:       "Harbor Health Lakeside | Recovery Care in Chatham",
			SEODescription: "Medication-assisted treatment and peer recovery support in Chatham.",
			IsActive:       true,
			DisplayOrder:   3,
			CreatedAt:      locationSeedTime,
			UpdatedAt:      locationSeedTime,
		},
	}
}
