package Controllers_test

import (
	"bytes"
	"encoding/json"
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

func setupTestDBForTables(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Order{},
		&models.OrderItem{},
		&models.Setting{},
	))
	return db
}

func setupTableRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	tableCtrl := controllers.NewTableController(db)
	router.GET("/dashboard/meja", tableCtrl.Meja)
	router.POST("/dashboard/tables/add", tableCtrl.AddTable)
	router.POST("/dashboard/tables/reduce", tableCtrl.ReduceTable)
	router.POST("/dashboard/tables/clear", tableCtrl.ClearTable)
	router.POST("/dashboard/tables/status", tableCtrl.CheckTableStatus)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, url string, payload interface{}) *httptest.ResponseRecorder {
	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}
	req, err := http.NewRequest("POST", url, &body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func seedTotalTables(t *testing.T, db *gorm.DB, total string) {
	require.NoError(t, db.Create(&models.Setting{
		Key:   models.SettingTotalTables,
		Value: total,
	}).Error)
}

func TestAddTable(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForTables(t)
	seedTotalTables(t, db, "3")
	router := setupTableRouter(db)

	w := postJSON(t, router, "/dashboard/tables/add", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	resp := decodeBody(t, w)
	assert.Equal(t, "success", resp["status"])
	assert.EqualValues(t, 4, resp["new_total"])
}

func TestReduceTableMinimum(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForTables(t)
	seedTotalTables(t, db, "1")
	router := setupTableRouter(db)

	w := postJSON(t, router, "/dashboard/tables/reduce", nil)
	resp := decodeBody(t, w)
	assert.Equal(t, "error", resp["status"])
	assert.Equal(t, "Minimal harus ada 1 meja!", resp["message"])
}

func TestReduceTableOccupied(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForTables(t)
	seedTotalTables(t, db, "3")
	// Meja terakhir (nomor 3) sedang terisi
	require.NoError(t, db.Create(&models.Order{
		OrderNumber: "#ORD-1234",
		TableNumber: "3",
		Status:      models.OrderStatusPending,
	}).Error)
	router := setupTableRouter(db)

	w := postJSON(t, router, "/dashboard/tables/reduce", nil)
	resp := decodeBody(t, w)
	assert.Equal(t, "error", resp["status"])
	assert.Contains(t, resp["message"], "sedang terisi")

	// Jumlah meja tidak berubah
	var setting models.Setting
	require.NoError(t, db.Where(&models.Setting{Key: models.SettingTotalTables}).First(&setting).Error)
	assert.Equal(t, "3", setting.Value)
}

func TestReduceTableSuccess(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForTables(t)
	seedTotalTables(t, db, "3")
	router := setupTableRouter(db)

	w := postJSON(t, router, "/dashboard/tables/reduce", nil)
	resp := decodeBody(t, w)
	assert.Equal(t, "success", resp["status"])

	var setting models.Setting
	require.NoError(t, db.Where(&models.Setting{Key: models.SettingTotalTables}).First(&setting).Error)
	assert.Equal(t, "2", setting.Value)
}

func TestClearTableAndCheckStatus(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForTables(t)
	seedTotalTables(t, db, "5")
	require.NoError(t, db.Create(&models.Order{
		OrderNumber: "#ORD-5678",
		TableNumber: "2",
		Status:      models.OrderStatusCooking,
	}).Error)
	router := setupTableRouter(db)

	w := postJSON(t, router, "/dashboard/tables/status", gin.H{"table_number": "2"})
	resp := decodeBody(t, w)
	assert.Equal(t, true, resp["occupied"])

	w = postJSON(t, router, "/dashboard/tables/clear", gin.H{"table_number": "2"})
	resp = decodeBody(t, w)
	assert.Equal(t, "success", resp["status"])

	w = postJSON(t, router, "/dashboard/tables/status", gin.H{"table_number": "2"})
	resp = decodeBody(t, w)
	assert.Equal(t, false, resp["occupied"])
}

func TestCheckTableStatusTakeaway(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForTables(t)
	require.NoError(t, db.Create(&models.Order{
		OrderNumber: "#ORD-9999",
		TableNumber: models.TableTakeaway,
		Status:      models.OrderStatusPending,
	}).Error)
	router := setupTableRouter(db)

	w := postJSON(t, router, "/dashboard/tables/status", gin.H{"table_number": models.TableTakeaway})
	resp := decodeBody(t, w)
	assert.Equal(t, false, resp["occupied"])
}

func TestMejaPage(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForTables(t)
	seedTotalTables(t, db, "4")
	require.NoError(t, db.Create(&models.Order{
		OrderNumber: "#ORD-1111",
		TableNumber: "1",
		Status:      models.OrderStatusServed,
	}).Error)
	router := setupTableRouter(db)

	req, err := http.NewRequest("GET", "/dashboard/meja", nil)
	require.NoError(t, err)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody(t, w)
	data := resp["data"].(map[string]interface{})
	assert.EqualValues(t, 4, data["total_tables"])
	assert.Equal(t, []interface{}{"1"}, data["busy_tables"])
}
