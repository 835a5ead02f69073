package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/kutbudev/gearstore/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndGetCategory(t *testing.T) {
	r, _ := setupRouter(t)

	w := doRequest(t, r, http.MethodPost, "/api/categories", gin.H{"category_name": "Skis"})
	require.Equal(t, http.StatusOK, w.Code)
	created := decode[models.Category](t, w)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Skis", created.CategoryName)

	w = doRequest(t, r, http.MethodGet, fmt.Sprintf("/api/categories/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"products":[]`)
	got := decode[models.Category](t, w)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Skis", got.CategoryName)
}

func TestListCategoriesEmpty(t *testing.T) {
	r, _ := setupRouter(t)

	w := doRequest(t, r, http.MethodGet, "/api/categories", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestListCategoriesIncludesProducts(t *testing.T) {
	r, _ := setupRouter(t)

	w := doRequest(t, r, http.MethodPost, "/api/categories", gin.H{"category_name": "Shoes"})
	require.Equal(t, http.StatusOK, w.Code)
	category := decode[models.Category](t, w)

	w = doRequest(t, r, http.MethodPost, "/api/products", gin.H{
		"product_name": "Running Sneakers",
		"price":        90.0,
		"stock":        25,
		"category_id":  category.ID,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, r, http.MethodGet, "/api/categories", nil)
	require.Equal(t, http.StatusOK, w.Code)
	categories := decode[[]models.Category](t, w)
	require.Len(t, categories, 1)
	require.Len(t, categories[0].Products, 1)
	assert.Equal(t, "Running Sneakers", categories[0].Products[0].ProductName)
}

func TestGetCategoryNotFound(t *testing.T) {
	r, _ := setupRouter(t)

	w := doRequest(t, r, http.MethodGet, "/api/categories/42", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "No category found with that id!")
}

func TestCreateCategoryMissingName(t *testing.T) {
	r, _ := setupRouter(t)

	w := doRequest(t, r, http.MethodPost, "/api/categories", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateCategory(t *testing.T) {
	r, _ := setupRouter(t)

	w := doRequest(t, r, http.MethodPost, "/api/categories", gin.H{"category_name": "Skis"})
	require.Equal(t, http.StatusOK, w.Code)
	created := decode[models.Category](t, w)

	w = doRequest(t, r, http.MethodPut, fmt.Sprintf("/api/categories/%d", created.ID), gin.H{"category_name": "Music"})
	require.Equal(t, http.StatusOK, w.Code)
	updated := decode[models.Category](t, w)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Music", updated.CategoryName)
}

func TestUpdateCategoryNotFound(t *testing.T) {
	r, _ := setupRouter(t)

	w := doRequest(t, r, http.MethodPut, "/api/categories/42", gin.H{"category_name": "Music"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteCategory(t *testing.T) {
	r, _ := setupRouter(t)

	w := doRequest(t, r, http.MethodPost, "/api/categories", gin.H{"category_name": "Skis"})
	require.Equal(t, http.StatusOK, w.Code)
	created := decode[models.Category](t, w)

	path := fmt.Sprintf("/api/categories/%d", created.ID)

	w = doRequest(t, r, http.MethodDelete, path, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"deleted": 1}`, w.Body.String())

	w = doRequest(t, r, http.MethodGet, path, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(t, r, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteCategoryKeepsProducts(t *testing.T) {
	r, db := setupRouter(t)

	w := doRequest(t, r, http.MethodPost, "/api/categories", gin.H{"category_name": "Hats"})
	require.Equal(t, http.StatusOK, w.Code)
	category := decode[models.Category](t, w)

	w = doRequest(t, r, http.MethodPost, "/api/products", gin.H{
		"product_name": "Branded Baseball Hat",
		"price":        22.99,
		"stock":        12,
		"category_id":  category.ID,
	})
	require.Equal(t, http.StatusOK, w.Code)
	product := decode[models.Product](t, w)

	w = doRequest(t, r, http.MethodDelete, fmt.Sprintf("/api/categories/%d", category.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.Product{}).Where("id = ?", product.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestCategoryInvalidID(t *testing.T) {
	r, _ := setupRouter(t)

	w := doRequest(t, r, http.MethodGet, "/api/categories/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
