package services

import (
	"context"
	"log"
	"time"

	"momentum/db"
	"momentum/models"
	"momentum/utils"

	"go.mongodb.org/mongo-driver/bson"
)

// ReminderService runs the daily reminder sweep at a fixed local time.
// Users are processed sequentially; a failed send is logged and the sweep
// moves on to the next user.
type ReminderService struct {
	hour   int
	minute int
	stop   chan struct{}
}

// StartReminderService schedules the daily sweep and returns the running
// service. Stop it during shutdown.
func StartReminderService(hour, minute int) *ReminderService {
	s := &ReminderService{hour: hour, minute: minute, stop: make(chan struct{})}
	go s.run()
	return s
}

func (s *ReminderService) Stop() {
	close(s.stop)
}

func (s *ReminderService) run() {
	for {
		timer := time.NewTimer(time.Until(s.nextRun(time.Now())))
		select {
		case <-timer.C:
			s.Sweep()
		case <-s.stop:
			timer.Stop()
			return
		}
	}
}

func (s *ReminderService) nextRun(now time.Time) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), s.hour, s.minute, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// Sweep emails every opted-in user their daily habits
func (s *ReminderService) Sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	userCollection := db.GetCollection("users")
	cursor, err := userCollection.Find(ctx, bson.M{"emailReminders": true})
	if err != nil {
		log.Printf("Reminder sweep: failed to list users: %v", err)
		return
	}

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		log.Printf("Reminder sweep: failed to decode users: %v", err)
		return
	}

	habitCollection := db.GetCollection("habits")
	sent := 0
	for i := range users {
		user := &users[i]

		habitCursor, err := habitCollection.Find(ctx, bson.M{
			"user":      user.ID,
			"frequency": models.FrequencyDaily,
		})
		if err != nil {
			log.Printf("Reminder sweep: failed to load habits for %s: %v", user.Email, err)
			continue
		}

		var habits []models.Habit
		if err := habitCursor.All(ctx, &habits); err != nil {
			log.Printf("Reminder sweep: failed to decode habits for %s: %v", user.Email, err)
			continue
		}
		if len(habits) == 0 {
			continue
		}

		if err := utils.SendReminderEmail(user, habits); err != nil {
			log.Printf("Reminder sweep: failed to email %s: %v", user.Email, err)
			continue
		}
		sent++
	}

	log.Printf("Reminder sweep complete: %d emails sent", sent)
}
