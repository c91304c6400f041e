package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/musasahinkundakci/firebase-backend-recipe/internal/models"
)

// Type identifies a kind of change event.
type Type string

const (
	RecipeCreated Type = "recipe.created"
	RecipeUpdated Type = "recipe.updated"
	RecipeDeleted Type = "recipe.deleted"
	UserSignedUp  Type = "user.signed_up"
)

// Event is the envelope delivered to subscribers. The payload is one of the
// typed payload structs below, selected by Type.
type Event struct {
	ID        string          `json:"id"`
	Type      Type            `json:"type"`
	Timestamp time.Time       `json:"timestamp"`
	Payload   json.RawMessage `json:"payload"`
}

// Handler processes a single event. Returned errors are logged by the bus
// and never retried.
type Handler func(ctx context.Context, evt Event) error

// Bus is the event-subscription abstraction between record mutations and
// their side effects. It is deliberately decoupled from the storage vendor:
// publishers emit explicit before/after payloads rather than relying on
// database change hooks.
type Bus interface {
	Publish(ctx context.Context, evt Event) error
	Subscribe(t Type, h Handler)
	// Close stops delivery after draining events already published.
	Close()
}

// RecipeCreatedPayload carries the newly inserted record.
type RecipeCreatedPayload struct {
	RecipeID string        `json:"recipeId"`
	Recipe   models.Recipe `json:"recipe"`
}

// RecipeUpdatedPayload carries the record before and after the replace.
type RecipeUpdatedPayload struct {
	RecipeID string        `json:"recipeId"`
	Before   models.Recipe `json:"before"`
	After    models.Recipe `json:"after"`
}

// RecipeDeletedPayload carries the removed record.
type RecipeDeletedPayload struct {
	RecipeID string        `json:"recipeId"`
	Recipe   models.Recipe `json:"recipe"`
}

// UserSignedUpPayload carries the identity created at signup.
type UserSignedUpPayload struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

// New builds an event envelope around a typed payload.
func New(t Type, payload any) (Event, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Event{}, fmt.Errorf("failed to marshal %s payload: %w", t, err)
	}
	return Event{
		ID:        uuid.NewString(),
		Type:      t,
		Timestamp: time.Now().UTC(),
		Payload:   data,
	}, nil
}

// Decode unmarshals an event payload into the given typed struct.
func Decode(evt Event, into any) error {
	if err := json.Unmarshal(evt.Payload, into); err != nil {
		return fmt.Errorf("failed to decode %s payload: %w", evt.Type, err)
	}
	return nil
}
