//go:build integration

package integration

import (
	"fmt"
	"log"
	"os"
	"testing"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/expotech/exhibition-service/internal/models"
)

var testDB *gorm.DB

func TestMain(m *testing.M) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		getEnv("TEST_DB_HOST", "localhost"),
		getEnv("TEST_DB_PORT", "5434"),
		getEnv("TEST_DB_USER", "postgres"),
		getEnv("TEST_DB_PASSWORD", "postgres"),
		getEnv("TEST_DB_NAME", "exhibition_test_db"),
	)

	var err error
	testDB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("failed to connect to test database: %v", err)
	}

	dropTables()

	if err := testDB.AutoMigrate(
		&models.Exhibition{},
		&models.Participant{},
		&models.Equipment{},
		&models.EquipmentBooking{},
		&models.MaintenanceHold{},
		&models.PricingRule{},
		&models.Package{},
	); err != nil {
		log.Fatalf("failed to auto-migrate test database: %v", err)
	}

	code := m.Run()

	dropTables()

	os.Exit(code)
}

func dropTables() {
	testDB.Exec("DROP TABLE IF EXISTS equipment_bookings")
	testDB.Exec("DROP TABLE IF EXISTS maintenance_holds")
	testDB.Exec("DROP TABLE IF EXISTS pricing_rules")
	testDB.Exec("DROP TABLE IF EXISTS packages")
	testDB.Exec("DROP TABLE IF EXISTS participants")
	testDB.Exec("DROP TABLE IF EXISTS equipment")
	testDB.Exec("DROP TABLE IF EXISTS exhibitions")
}

func cleanTables() {
	testDB.Exec("DELETE FROM equipment_bookings")
	testDB.Exec("DELETE FROM maintenance_holds")
	testDB.Exec("DELETE FROM pricing_rules")
	testDB.Exec("DELETE FROM packages")
	testDB.Exec("DELETE FROM participants")
	testDB.Exec("DELETE FROM equipment")
	testDB.Exec("DELETE FROM exhibitions")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
