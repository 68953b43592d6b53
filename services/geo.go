package services

import (
	"math"
	"sort"

	"momentum/models"
)

const (
	earthRadiusKm = 6371
	// DefaultRadiusMeters applies when an item's geofence has no radius set
	DefaultRadiusMeters = 100
)

// Haversine returns the great-circle distance in meters between two
// coordinates.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c * 1000
}

// NearbyHabit is a habit annotated with its distance from the user
type NearbyHabit struct {
	models.Habit
	Distance float64 `json:"distance"`
}

// NearbyTask is a task annotated with its distance from the user
type NearbyTask struct {
	models.Task
	Distance float64 `json:"distance"`
}

func withinRadius(distance float64, loc *models.Location) bool {
	radius := loc.Radius
	if radius == 0 {
		radius = DefaultRadiusMeters
	}
	return distance <= radius
}

// NearbyHabits keeps located habits within their configured radius of the
// user, sorted ascending by distance.
func NearbyHabits(habits []models.Habit, lat, lon float64) []NearbyHabit {
	nearby := []NearbyHabit{}
	for _, h := range habits {
		if h.Location == nil {
			continue
		}
		d := Haversine(lat, lon, h.Location.Latitude, h.Location.Longitude)
		if withinRadius(d, h.Location) {
			nearby = append(nearby, NearbyHabit{Habit: h, Distance: d})
		}
	}
	sort.Slice(nearby, func(i, j int) bool { return nearby[i].Distance < nearby[j].Distance })
	return nearby
}

// NearbyTasks is the task counterpart of NearbyHabits
func NearbyTasks(tasks []models.Task, lat, lon float64) []NearbyTask {
	nearby := []NearbyTask{}
	for _, t := range tasks {
		if t.Location == nil {
			continue
		}
		d := Haversine(lat, lon, t.Location.Latitude, t.Location.Longitude)
		if withinRadius(d, t.Location) {
			nearby = append(nearby, NearbyTask{Task: t, Distance: d})
		}
	}
	sort.Slice(nearby, func(i, j int) bool { return nearby[i].Distance < nearby[j].Distance })
	return nearby
}
