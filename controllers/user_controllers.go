package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/ardhiansyah/resto-pos/models"
	"github.com/ardhiansyah/resto-pos/utils"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// Register user baru. Tanpa role eksplisit, user terdaftar sebagai guest
// (pelanggan self service).
func (uc *UserController) Register(c *gin.Context) {
	type request struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
		Role     string `json:"role"`
	}
	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.Role == "" {
		req.Role = models.RoleGuest
	}
	if req.Role != models.RoleAdmin && req.Role != models.RoleCashier && req.Role != models.RoleGuest {
		utils.RespondError(c, http.StatusBadRequest, errors.New("role tidak dikenali"))
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	user := models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
		Role:     req.Role,
	}

	if err := uc.DB.Create(&user).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("New user registered: %s (role=%s)", user.Email, user.Role)

	utils.RespondJSON(c, http.StatusCreated, "User registered", gin.H{
		"user_id": user.ID,
	})
}

// Login user -> return JWT berisi id, role, nama dan email.
func (uc *UserController) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var user models.User
	if err := uc.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid credentials"))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid credentials"))
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Role, user.Name, user.Email)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Login successful", gin.H{
		"token":     token,
		"user_role": user.Role,
	})
}

// GetAllUsers -> halaman kelola pengguna (admin).
func (uc *UserController) GetAllUsers(c *gin.Context) {
	var users []models.User
	if err := uc.DB.Find(&users).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	views := make([]UserView, 0, len(users))
	for _, u := range users {
		views = append(views, UserView{
			ID:    u.ID,
			Name:  u.Name,
			Email: u.Email,
			Role:  u.Role,
		})
	}

	utils.RespondJSON(c, http.StatusOK, "All users", views)
}

// ChangeRole mengubah role pengguna lain. Admin tidak bisa mengubah role
// dirinya sendiri.
func (uc *UserController) ChangeRole(c *gin.Context) {
	var req struct {
		UserID uint   `json:"user_id" binding:"required"`
		Role   string `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	currentID, _ := c.Get("user_id")
	if id, ok := currentID.(uint); ok && id == req.UserID {
		utils.ActionError(c, "Tidak bisa mengubah role sendiri")
		return
	}

	if err := uc.DB.Model(&models.User{}).
		Where("id = ?", req.UserID).
		Update("role", req.Role).Error; err != nil {
		utils.ActionError(c, "")
		return
	}

	utils.InfoLogger.Printf("User %d role changed to %s", req.UserID, req.Role)
	c.Redirect(http.StatusFound, "/dashboard/users")
}

// ErrNoPermission dipakai handler yang menolak akses berdasarkan role.
var ErrNoPermission = errors.New("you do not have permission")
