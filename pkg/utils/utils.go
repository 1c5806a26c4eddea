package utils

import (
	"log"
	"time"
)

// TimeNowTaipei returns the current time in the market's local timezone.
func TimeNowTaipei() time.Time {
	return time.Now().In(GetTaipeiTimeLocation())
}

// GetTaipeiTimeLocation returns the Asia/Taipei location.
func GetTaipeiTimeLocation() *time.Location {
	loc, err := time.LoadLocation("Asia/Taipei")
	if err != nil {
		log.Fatal("Failed to load location", err)
	}
	return loc
}

// ToPointer returns a pointer to the given value.
func ToPointer[T any](v T) *T {
	return &v
}
