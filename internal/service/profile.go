package service

import (
	"context"
	"fmt"

	"github.com/musasahinkundakci/firebase-backend-recipe/internal/events"
	"github.com/musasahinkundakci/firebase-backend-recipe/internal/logger"
	"github.com/musasahinkundakci/firebase-backend-recipe/internal/models"
)

// ProfileService bootstraps a profile document when an identity signs up.
// Fire and forget: a replayed signup fails on the duplicate key and is
// logged; profiles are never updated afterwards.
type ProfileService struct {
	profiles ProfileStore
}

func NewProfileService(profiles ProfileStore) *ProfileService {
	return &ProfileService{profiles: profiles}
}

func (s *ProfileService) Register(bus events.Bus) {
	bus.Subscribe(events.UserSignedUp, s.HandleSignedUp)
}

func (s *ProfileService) HandleSignedUp(ctx context.Context, evt events.Event) error {
	var payload events.UserSignedUpPayload
	if err := events.Decode(evt, &payload); err != nil {
		return err
	}

	profile := models.UserProfile{
		ID:    payload.UserID,
		Name:  payload.Name,
		Email: payload.Email,
	}
	if err := s.profiles.Insert(ctx, &profile); err != nil {
		return fmt.Errorf("failed to create profile for user %s: %w", payload.UserID, err)
	}

	logger.Log.Infof("profile created for user %s (%s)", payload.UserID, payload.Email)
	return nil
}
