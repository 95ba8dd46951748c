package Controllers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ardhiansyah/resto-pos/controllers"
	"github.com/ardhiansyah/resto-pos/models"
	"github.com/ardhiansyah/resto-pos/utils"
)

func setupTestDBForProducts(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Product{}))
	return db
}

func setupProductRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	productCtrl := controllers.NewProductController(db)
	router.GET("/dashboard/stok", productCtrl.Stok)
	router.GET("/dashboard/self-service", productCtrl.SelfService)
	router.POST("/dashboard/products/save", productCtrl.SaveProduct)
	router.POST("/dashboard/products/delete", productCtrl.DeleteProduct)
	return router
}

func TestStokPage(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForProducts(t)
	require.NoError(t, db.Create(&[]models.Product{
		{Name: "Nasi Goreng", Category: "Makanan", Price: 10000, Stock: 50},
		{Name: "Es Teh", Category: "Minuman", Price: 5000, Stock: 3},
		{Name: "Sate", Category: "Makanan", Price: 15000, Stock: 10},
	}).Error)
	router := setupProductRouter(db)

	req, err := http.NewRequest("GET", "/dashboard/stok", nil)
	require.NoError(t, err)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody(t, w)
	data := resp["data"].(map[string]interface{})
	assert.EqualValues(t, 3, data["total_item"])
	// Stok <= 10 dihitung kritis
	assert.EqualValues(t, 2, data["stok_kritis"])
}

func TestSaveProductInsertAndUpdate(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForProducts(t)
	router := setupProductRouter(db)

	w := postJSON(t, router, "/dashboard/products/save", gin.H{
		"name":     "Nasi Goreng",
		"category": "Makanan",
		"price":    10000,
		"stock":    20,
	})
	resp := decodeBody(t, w)
	assert.Equal(t, "success", resp["status"])

	var product models.Product
	require.NoError(t, db.Where("name = ?", "Nasi Goreng").First(&product).Error)
	assert.Equal(t, 20, product.Stock)

	// Dengan id, payload yang sama menjadi update
	w = postJSON(t, router, "/dashboard/products/save", gin.H{
		"id":       product.ID,
		"name":     "Nasi Goreng Spesial",
		"category": "Makanan",
		"price":    12000,
		"stock":    15,
	})
	resp = decodeBody(t, w)
	assert.Equal(t, "success", resp["status"])

	require.NoError(t, db.First(&product, product.ID).Error)
	assert.Equal(t, "Nasi Goreng Spesial", product.Name)
	assert.Equal(t, 15, product.Stock)

	var count int64
	db.Model(&models.Product{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestDeleteProduct(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForProducts(t)
	product := models.Product{Name: "Es Teh", Price: 5000, Stock: 10}
	require.NoError(t, db.Create(&product).Error)
	router := setupProductRouter(db)

	w := postJSON(t, router, "/dashboard/products/delete", gin.H{"id": product.ID})
	resp := decodeBody(t, w)
	assert.Equal(t, "success", resp["status"])

	var count int64
	db.Model(&models.Product{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestSelfServiceMenu(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForProducts(t)
	require.NoError(t, db.Create(&models.Product{
		Name: "Nasi Goreng", Category: "Makanan", Price: 10000, Stock: 50, ImageURL: "nasgor.jpg",
	}).Error)
	router := setupProductRouter(db)

	req, err := http.NewRequest("GET", "/dashboard/self-service", nil)
	require.NoError(t, err)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody(t, w)
	data := resp["data"].(map[string]interface{})
	menu := data["menu_makanan"].([]interface{})
	require.Len(t, menu, 1)
	item := menu[0].(map[string]interface{})
	assert.Equal(t, "Nasi Goreng", item["name"])
	assert.Equal(t, "nasgor.jpg", item["image_url"])
}
