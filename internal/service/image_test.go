package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/musasahinkundakci/firebase-backend-recipe/internal/events"
	"github.com/musasahinkundakci/firebase-backend-recipe/internal/mocks"
	"github.com/musasahinkundakci/firebase-backend-recipe/internal/models"
)

func TestObjectPathFromURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    string
		wantErr bool
	}{
		{
			name: "encoded path between marker and query",
			url:  "https://storage.example.com/v0/b/bucket/o/images%2Fsoup.jpg?alt=media&token=abc",
			want: "images/soup.jpg",
		},
		{
			name: "plain path",
			url:  "https://storage.example.com/v0/b/bucket/o/images/pie.png?alt=media",
			want: "images/pie.png",
		},
		{
			name:    "no marker",
			url:     "https://storage.example.com/images/soup.jpg?alt=media",
			wantErr: true,
		},
		{
			name:    "no query boundary",
			url:     "https://storage.example.com/v0/b/bucket/o/images%2Fsoup.jpg",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ObjectPathFromURL(tt.url)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestImageCleanupDeletesObject(t *testing.T) {
	store := new(mocks.MockObjectStore)
	store.On("DeleteObject", context.Background(), "images/soup.jpg").Return(nil)

	svc := NewImageCleanupService(store)
	evt := mustEvent(t, events.RecipeDeleted, events.RecipeDeletedPayload{
		RecipeID: "r1",
		Recipe: models.Recipe{
			ImageURL: "https://storage.example.com/v0/b/bucket/o/images%2Fsoup.jpg?alt=media",
		},
	})
	require.NoError(t, svc.HandleDeleted(context.Background(), evt))
	store.AssertExpectations(t)
}

func TestImageCleanupSkipsEmptyURL(t *testing.T) {
	store := new(mocks.MockObjectStore)

	svc := NewImageCleanupService(store)
	evt := mustEvent(t, events.RecipeDeleted, events.RecipeDeletedPayload{
		RecipeID: "r1",
		Recipe:   models.Recipe{},
	})
	require.NoError(t, svc.HandleDeleted(context.Background(), evt))
	store.AssertNotCalled(t, "DeleteObject")
}

func TestImageCleanupSurfacesStoreFailure(t *testing.T) {
	store := new(mocks.MockObjectStore)
	store.On("DeleteObject", context.Background(), "images/soup.jpg").Return(assert.AnError)

	svc := NewImageCleanupService(store)
	evt := mustEvent(t, events.RecipeDeleted, events.RecipeDeletedPayload{
		RecipeID: "r1",
		Recipe: models.Recipe{
			ImageURL: "https://storage.example.com/v0/b/bucket/o/images%2Fsoup.jpg?alt=media",
		},
	})
	// The bus logs the error; the delete flow itself is already committed.
	assert.Error(t, svc.HandleDeleted(context.Background(), evt))
}
