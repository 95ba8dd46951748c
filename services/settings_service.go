package services

import (
	"errors"
	"strconv"

	"gorm.io/gorm"

	"github.com/ardhiansyah/resto-pos/models"
)

// DefaultTotalTables dipakai saat setting jumlah meja belum pernah
// disimpan.
const DefaultTotalTables = 10

// SettingsService membaca dan menulis setting key/value, terutama jumlah
// total meja restoran.
type SettingsService struct {
	DB *gorm.DB
}

func NewSettingsService(db *gorm.DB) *SettingsService {
	return &SettingsService{DB: db}
}

// GetTotalTables mengembalikan jumlah meja saat ini, atau default jika
// belum ada di database.
func (s *SettingsService) GetTotalTables() (int, error) {
	var setting models.Setting
	err := s.DB.Where(&models.Setting{Key: models.SettingTotalTables}).First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return DefaultTotalTables, nil
	}
	if err != nil {
		return 0, err
	}

	total, err := strconv.Atoi(setting.Value)
	if err != nil {
		return 0, err
	}
	return total, nil
}

// SetTotalTables menyimpan jumlah meja baru. Invariant total_tables >= 1
// dijaga di sini sebagai pagar terakhir.
func (s *SettingsService) SetTotalTables(total int) error {
	if total < 1 {
		return errors.New("jumlah meja minimal 1")
	}
	return s.UpdateSetting(models.SettingTotalTables, strconv.Itoa(total))
}

// UpdateSetting melakukan upsert satu key setting.
func (s *SettingsService) UpdateSetting(key, value string) error {
	var setting models.Setting
	err := s.DB.Where(&models.Setting{Key: key}).First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return s.DB.Create(&models.Setting{Key: key, Value: value}).Error
	}
	if err != nil {
		return err
	}

	setting.Value = value
	return s.DB.Save(&setting).Error
}

// EnsureDefaults menanam nilai awal setting saat aplikasi pertama kali
// jalan.
func (s *SettingsService) EnsureDefaults() error {
	var count int64
	if err := s.DB.Model(&models.Setting{}).
		Where(&models.Setting{Key: models.SettingTotalTables}).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return s.DB.Create(&models.Setting{
		Key:   models.SettingTotalTables,
		Value: strconv.Itoa(DefaultTotalTables),
	}).Error
}
