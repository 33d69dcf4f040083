package agent

import (
	"context"
	"errors"
	"log"

	"github.com/respira-app/respira-backend/internal/repository"
	"github.com/respira-app/respira-backend/internal/service"
	"github.com/respira-app/respira-backend/pkg/apperror"
)

// MotivationAgent fans the daily motivation generation out to every user.
// Users who already got their message today are skipped; individual
// failures never stop the pass.
type MotivationAgent struct {
	users      repository.UserRepository
	motivation service.MotivationService
	schedule   string
}

func NewMotivationAgent(users repository.UserRepository, motivation service.MotivationService, schedule string) *MotivationAgent {
	return &MotivationAgent{
		users:      users,
		motivation: motivation,
		schedule:   schedule,
	}
}

func (a *MotivationAgent) GetName() string {
	return "daily-motivation"
}

func (a *MotivationAgent) GetSchedule() string {
	return a.schedule
}

func (a *MotivationAgent) Execute(ctx context.Context) error {
	users, err := a.users.FindAll()
	if err != nil {
		return err
	}

	generated := 0
	for _, user := range users {
		_, err := a.motivation.Generate(ctx, user.ID)
		if err != nil {
			// Already-sent-today is the normal case on reruns.
			if errors.Is(err, apperror.ErrBadRequest) {
				continue
			}
			log.Printf("motivation generation failed for user %s: %v", user.ID, err)
			continue
		}
		generated++
	}

	log.Printf("daily motivation: generated %d messages for %d users", generated, len(users))
	return nil
}
