package services

import (
	"math"
	"testing"

	"momentum/models"
)

func TestHaversineOneDegreeLongitudeAtEquator(t *testing.T) {
	// One degree of longitude at the equator is about 111.195 km.
	got := Haversine(0, 0, 0, 1)
	want := 111195.0
	if math.Abs(got-want) > 100 {
		t.Errorf("Haversine(0,0 -> 0,1) = %.1f m, want ~%.1f m", got, want)
	}
}

func TestHaversineZeroDistance(t *testing.T) {
	if d := Haversine(48.8566, 2.3522, 48.8566, 2.3522); d != 0 {
		t.Errorf("Distance from a point to itself = %f, want 0", d)
	}
}

func TestNearbyHabitsFiltersAndSorts(t *testing.T) {
	habits := []models.Habit{
		{Name: "far", Location: &models.Location{Latitude: 1, Longitude: 1, Radius: 500}},
		{Name: "near", Location: &models.Location{Latitude: 0.0005, Longitude: 0, Radius: 500}},
		{Name: "nearer", Location: &models.Location{Latitude: 0.0001, Longitude: 0, Radius: 500}},
		{Name: "unlocated"},
	}

	nearby := NearbyHabits(habits, 0, 0)

	if len(nearby) != 2 {
		t.Fatalf("Expected 2 nearby habits, got %d", len(nearby))
	}
	if nearby[0].Name != "nearer" || nearby[1].Name != "near" {
		t.Errorf("Expected ascending distance order, got %s then %s", nearby[0].Name, nearby[1].Name)
	}
	if nearby[0].Distance >= nearby[1].Distance {
		t.Error("Distances not sorted ascending")
	}
}

func TestNearbyUsesDefaultRadius(t *testing.T) {
	// ~55 m away with no radius configured: inside the 100 m default.
	inside := models.Task{Title: "in", Location: &models.Location{Latitude: 0.0005, Longitude: 0}}
	// ~222 m away: outside the default.
	outside := models.Task{Title: "out", Location: &models.Location{Latitude: 0.002, Longitude: 0}}

	nearby := NearbyTasks([]models.Task{inside, outside}, 0, 0)

	if len(nearby) != 1 || nearby[0].Title != "in" {
		t.Fatalf("Expected only the task within the default radius, got %d entries", len(nearby))
	}
}
