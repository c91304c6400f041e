package api

import "github.com/musasahinkundakci/firebase-backend-recipe/internal/models"

// RecipeDocument is the wire shape of a listed recipe: the stored fields
// plus the id, with publishDate flattened to raw unix seconds.
type RecipeDocument struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Directions  string   `json:"directions"`
	IsPublished bool     `json:"isPublished"`
	PublishDate int64    `json:"publishDate"`
	Ingredients []string `json:"ingredients"`
	ImageURL    string   `json:"imageUrl"`
}

func NewRecipeDocument(r models.Recipe) RecipeDocument {
	return RecipeDocument{
		ID:          r.ID,
		Name:        r.Name,
		Category:    r.Category,
		Directions:  r.Directions,
		IsPublished: r.IsPublished,
		PublishDate: r.PublishDate.Unix(),
		Ingredients: r.Ingredients,
		ImageURL:    r.ImageURL,
	}
}

// ListRecipesResponse pairs the cached counter value with the matching
// documents. recipeCount is not guaranteed to equal len(documents).
type ListRecipesResponse struct {
	RecipeCount int64            `json:"recipeCount"`
	Documents   []RecipeDocument `json:"documents"`
}

type IDResponse struct {
	ID string `json:"id"`
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type TokenResponse struct {
	Token string `json:"token"`
}
