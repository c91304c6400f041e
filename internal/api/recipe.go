package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/musasahinkundakci/firebase-backend-recipe/internal/middleware"
	"github.com/musasahinkundakci/firebase-backend-recipe/internal/service"
)

type RecipeHandler struct {
	service *service.RecipeService
	auth    middleware.TokenValidator
}

func NewRecipeHandler(svc *service.RecipeService, auth middleware.TokenValidator) *RecipeHandler {
	return &RecipeHandler{service: svc, auth: auth}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		recipes.GET("", middleware.OptionalAuth(h.auth), h.ListRecipes)
		recipes.POST("", middleware.RequireAuth(h.auth), h.CreateRecipe)
		recipes.PUT("/:id", middleware.RequireAuth(h.auth), h.UpdateRecipe)
		recipes.DELETE("/:id", middleware.RequireAuth(h.auth), h.DeleteRecipe)
	}
}

// CreateRecipe handles POST /recipes. The body is taken untyped so the
// validator can report missing fields and the sanitizer can drop anything
// outside the allowed set.
func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	id, err := h.service.Create(c.Request.Context(), raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, IDResponse{ID: id})
}

// ListRecipes handles GET /recipes. Authorization is optional: without it
// the view is restricted to published recipes and the published counter.
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	result, err := h.service.List(c.Request.Context(), service.ListOptions{
		Authenticated:    c.GetBool(middleware.CtxAuthenticated),
		Category:         c.Query("category"),
		OrderByField:     c.Query("orderByField"),
		OrderByDirection: c.Query("orderByDirection"),
		PerPage:          queryInt64(c, "perPage"),
		PageNumber:       queryInt64(c, "pageNumber"),
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	documents := make([]RecipeDocument, 0, len(result.Recipes))
	for _, recipe := range result.Recipes {
		documents = append(documents, NewRecipeDocument(recipe))
	}
	c.JSON(http.StatusOK, ListRecipesResponse{
		RecipeCount: result.RecipeCount,
		Documents:   documents,
	})
}

// UpdateRecipe handles PUT /recipes/:id as a full replace; callers must
// resend every field.
func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	id := c.Param("id")
	if err := h.service.Update(c.Request.Context(), id, raw); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, IDResponse{ID: id})
}

// DeleteRecipe handles DELETE /recipes/:id. Deleting a nonexistent id
// succeeds.
func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusOK)
}

// queryInt64 reads a numeric query parameter; absent or malformed values
// read as zero, which disables the corresponding option.
func queryInt64(c *gin.Context, name string) int64 {
	v, err := strconv.ParseInt(c.Query(name), 10, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}
