package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ardhiansyah/resto-pos/services"
	"github.com/ardhiansyah/resto-pos/utils"
)

type TableController struct {
	Orders   *services.OrderService
	Settings *services.SettingsService
}

func NewTableController(db *gorm.DB) *TableController {
	return &TableController{
		Orders:   services.NewOrderService(db),
		Settings: services.NewSettingsService(db),
	}
}

// Meja -> halaman denah meja: meja yang terisi plus jumlah meja total.
func (tc *TableController) Meja(c *gin.Context) {
	busy, err := tc.Orders.GetBusyTables()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	total, err := tc.Settings.GetTotalTables()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Manajemen Meja", gin.H{
		"busy_tables":  busy,
		"total_tables": total,
	})
}

// AddTable menambah jumlah meja total satu buah.
func (tc *TableController) AddTable(c *gin.Context) {
	current, err := tc.Settings.GetTotalTables()
	if err != nil {
		utils.ActionError(c, "")
		return
	}

	newTotal := current + 1
	if err := tc.Settings.SetTotalTables(newTotal); err != nil {
		utils.ActionError(c, "")
		return
	}

	utils.InfoLogger.Printf("Total tables increased to %d", newTotal)
	utils.ActionSuccess(c, gin.H{"new_total": newTotal})
}

// ReduceTable mengurangi jumlah meja. Ditolak jika hasilnya nol atau jika
// meja bernomor terakhir (yang akan dihapus) sedang terisi.
func (tc *TableController) ReduceTable(c *gin.Context) {
	current, err := tc.Settings.GetTotalTables()
	if err != nil {
		utils.ActionError(c, "")
		return
	}

	if current <= 1 {
		utils.ActionError(c, "Minimal harus ada 1 meja!")
		return
	}

	lastTable := strconv.Itoa(current)
	occupied, err := tc.Orders.IsTableOccupied(lastTable)
	if err != nil {
		utils.ActionError(c, "")
		return
	}
	if occupied {
		utils.ActionError(c, fmt.Sprintf("Gagal! Meja %d sedang terisi. Kosongkan dulu sebelum dihapus.", current))
		return
	}

	if err := tc.Settings.SetTotalTables(current - 1); err != nil {
		utils.ActionError(c, "")
		return
	}

	utils.InfoLogger.Printf("Total tables reduced to %d", current-1)
	utils.ActionSuccess(c, nil)
}

// ClearTable memaksa semua pesanan aktif di satu meja menjadi finished.
func (tc *TableController) ClearTable(c *gin.Context) {
	var req struct {
		TableNumber string `json:"table_number" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ActionError(c, err.Error())
		return
	}

	if err := tc.Orders.ForceClearTable(utils.SanitizeText(req.TableNumber)); err != nil {
		utils.ActionError(c, "")
		return
	}

	utils.InfoLogger.Printf("Table %s force-cleared", req.TableNumber)
	utils.ActionSuccess(c, nil)
}

// CheckTableStatus -> {occupied: bool} untuk satu nomor meja.
func (tc *TableController) CheckTableStatus(c *gin.Context) {
	var req struct {
		TableNumber string `json:"table_number" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	occupied, err := tc.Orders.IsTableOccupied(utils.SanitizeText(req.TableNumber))
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"occupied": occupied})
}
