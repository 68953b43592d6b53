package services

import "momentum/models"

// CorrelationPoint pairs one day's mood and energy with its productivity
// count (habits + tasks completed). Correlation itself is computed
// client-side.
type CorrelationPoint struct {
	Mood         string `json:"mood"`
	Energy       int    `json:"energy"`
	Productivity int    `json:"productivity"`
}

type MoodInsights struct {
	AverageEnergy           float64            `json:"averageEnergy"`
	MoodDistribution        map[string]int     `json:"moodDistribution"`
	ProductivityCorrelation []CorrelationPoint `json:"productivityCorrelation"`
	TotalEntries            int                `json:"totalEntries"`
	Message                 string             `json:"message,omitempty"`
}

// ComputeMoodInsights reduces mood history into averages and histograms.
// Empty history yields a zero-valued shape with an explanatory message.
func ComputeMoodInsights(moods []models.Mood) MoodInsights {
	if len(moods) == 0 {
		return MoodInsights{
			MoodDistribution:        map[string]int{},
			ProductivityCorrelation: []CorrelationPoint{},
			Message:                 "No mood data available yet",
		}
	}

	insights := MoodInsights{
		MoodDistribution:        map[string]int{},
		ProductivityCorrelation: make([]CorrelationPoint, 0, len(moods)),
		TotalEntries:            len(moods),
	}

	energySum := 0
	for _, m := range moods {
		energySum += m.EnergyLevel

		mood := m.Mood
		if mood == "" {
			mood = "Unknown"
		}
		insights.MoodDistribution[mood]++

		insights.ProductivityCorrelation = append(insights.ProductivityCorrelation, CorrelationPoint{
			Mood:         mood,
			Energy:       m.EnergyLevel,
			Productivity: m.HabitsCompleted + m.TasksCompleted,
		})
	}

	insights.AverageEnergy = round1(float64(energySum) / float64(len(moods)))
	return insights
}
