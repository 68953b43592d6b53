package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"momentum/config"
	"momentum/models"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

var geminiClient *genai.Client

// InitSuggestionService initializes the Gemini client using the API key
// from the config. Without a key the endpoints fall back to canned
// suggestions.
func InitSuggestionService(cfg *config.Config) {
	if cfg.Gemini.ApiKey == "" {
		log.Println("Gemini API key not set; AI suggestions will use fallbacks")
		return
	}
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(cfg.Gemini.ApiKey))
	if err != nil {
		log.Printf("Failed to initialize Gemini client: %v", err)
		return
	}
	geminiClient = client
}

func generateText(ctx context.Context, prompt string) (string, error) {
	if geminiClient == nil {
		return "", errors.New("gemini client not initialized")
	}
	model := geminiClient.GenerativeModel("gemini-1.5-flash")
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil || len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("generation failed: %v", err)
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			return cleanModelOutput(string(text)), nil
		}
	}
	return "", errors.New("no text in response")
}

func cleanModelOutput(text string) string {
	cleaned := strings.TrimSpace(text)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```JSON")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	return strings.TrimSpace(cleaned)
}

// Suggestion is one AI-proposed habit or task
type Suggestion struct {
	Type   string `json:"type"` // "habit" or "task"
	Title  string `json:"title"`
	Reason string `json:"reason"`
}

var fallbackSuggestions = []Suggestion{
	{Type: "habit", Title: "Drink more water", Reason: "Hydration supports energy and focus"},
	{Type: "habit", Title: "Take a short walk", Reason: "Light movement breaks up long sitting stretches"},
	{Type: "task", Title: "Review your week", Reason: "A weekly review keeps priorities fresh"},
}

// GenerateSuggestions asks Gemini for habit/task suggestions based on the
// user's current collections. Falls back to canned suggestions when the
// model is unavailable or answers garbage.
func GenerateSuggestions(ctx context.Context, habits []models.Habit, tasks []models.Task) []Suggestion {
	var habitNames, taskTitles []string
	for _, h := range habits {
		habitNames = append(habitNames, h.Name)
	}
	for _, t := range tasks {
		if t.Status == models.StatusPending {
			taskTitles = append(taskTitles, t.Title)
		}
	}

	prompt := fmt.Sprintf(
		`A user tracks these habits: %s. Their pending tasks: %s.
Suggest 3 new habits or tasks that complement what they already do.

Required Output Format (JSON):
[{"type": "habit", "title": "...", "reason": "..."}]

Provide ONLY the JSON array without additional text or markdown formatting.`,
		strings.Join(habitNames, ", "), strings.Join(taskTitles, ", "))

	response, err := generateText(ctx, prompt)
	if err != nil {
		log.Printf("Failed to generate suggestions: %v", err)
		return fallbackSuggestions
	}

	var suggestions []Suggestion
	if err := json.Unmarshal([]byte(response), &suggestions); err != nil || len(suggestions) == 0 {
		log.Printf("Failed to parse suggestion response: %v", err)
		return fallbackSuggestions
	}
	return suggestions
}

// CoachReply answers a free-form productivity question with the user's
// current stats as context
func CoachReply(ctx context.Context, message string, stats HabitStats) (string, error) {
	prompt := fmt.Sprintf(
		`Act as a friendly productivity coach. The user tracks %d habits with an
average streak of %d days and a longest streak of %d days.
Answer their question concisely and encouragingly.

Question: %s`,
		stats.TotalHabits, stats.AverageStreak, stats.LongestStreak, message)

	reply, err := generateText(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("coach reply failed: %w", err)
	}
	return reply, nil
}
