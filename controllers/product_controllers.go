package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ardhiansyah/resto-pos/models"
	"github.com/ardhiansyah/resto-pos/utils"
)

// Batas stok yang dianggap kritis di laporan stok.
const criticalStockThreshold = 10

type ProductController struct {
	DB *gorm.DB
}

func NewProductController(db *gorm.DB) *ProductController {
	return &ProductController{DB: db}
}

// Stok -> halaman laporan stok untuk admin.
func (pc *ProductController) Stok(c *gin.Context) {
	var products []models.Product
	if err := pc.DB.Find(&products).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	views := make([]ProductView, 0, len(products))
	critical := 0
	for _, p := range products {
		if p.Stock <= criticalStockThreshold {
			critical++
		}
		views = append(views, productView(p))
	}

	utils.RespondJSON(c, http.StatusOK, "Perhitungan Stok", gin.H{
		"stok_barang": views,
		"total_item":  len(views),
		"stok_kritis": critical,
	})
}

// SelfService -> daftar menu untuk pelanggan memesan sendiri.
func (pc *ProductController) SelfService(c *gin.Context) {
	var products []models.Product
	if err := pc.DB.Find(&products).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	views := make([]ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, productView(p))
	}

	utils.RespondJSON(c, http.StatusOK, "Menu Restoran", gin.H{
		"menu_makanan": views,
	})
}

// SaveProduct menambah produk baru atau mengupdate yang sudah ada
// (tergantung ada tidaknya id di payload).
func (pc *ProductController) SaveProduct(c *gin.Context) {
	var req struct {
		ID       uint    `json:"id"`
		Name     string  `json:"name" binding:"required"`
		Category string  `json:"category"`
		Price    float64 `json:"price"`
		Stock    int     `json:"stock"`
		ImageURL string  `json:"image_url"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ActionError(c, err.Error())
		return
	}

	product := models.Product{
		ID:       req.ID,
		Name:     utils.SanitizeText(req.Name),
		Category: utils.SanitizeText(req.Category),
		Price:    req.Price,
		Stock:    req.Stock,
		ImageURL: req.ImageURL,
	}

	var err error
	if req.ID == 0 {
		err = pc.DB.Create(&product).Error
	} else {
		err = pc.DB.Model(&models.Product{}).
			Where("id = ?", req.ID).
			Updates(map[string]interface{}{
				"name":      product.Name,
				"category":  product.Category,
				"price":     product.Price,
				"stock":     product.Stock,
				"image_url": product.ImageURL,
			}).Error
	}

	if err != nil {
		utils.ActionError(c, "")
		return
	}

	utils.InfoLogger.Printf("Product saved: %s (id=%d)", product.Name, product.ID)
	utils.ActionSuccess(c, nil)
}

// DeleteProduct menghapus produk dari database.
func (pc *ProductController) DeleteProduct(c *gin.Context) {
	var req struct {
		ID uint `json:"id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ActionError(c, err.Error())
		return
	}

	if err := pc.DB.Delete(&models.Product{}, req.ID).Error; err != nil {
		utils.ActionError(c, "")
		return
	}

	utils.InfoLogger.Printf("Product %d deleted", req.ID)
	utils.ActionSuccess(c, nil)
}

func productView(p models.Product) ProductView {
	return ProductView{
		ID:       p.ID,
		Name:     p.Name,
		Category: p.Category,
		Price:    p.Price,
		Stock:    p.Stock,
		ImageURL: p.ImageURL,
	}
}
