package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/laura-mejia/cutting-orders-api/models"
	"github.com/laura-mejia/cutting-orders-api/validation"
)

// setupTestDB opens a fresh in-memory database migrated with every entity.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	if err := db.AutoMigrate(&models.Customer{}, &models.Order{}, &models.Item{}); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

// setupTestRouter returns a bare router in test mode.
func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

// newTestControllers builds the three controllers against db with a shared
// validator, mirroring the wiring in setupRouter.
func newTestControllers(db *gorm.DB) (*CustomerController, *OrderController, *ItemController) {
	v := validation.New()
	return NewCustomerController(db, v), NewOrderController(db, v), NewItemController(db, v)
}

// performJSON runs a request with an optional JSON body through the router
// and decodes the response body into a generic map.
func performJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var reader *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal request body: %v", err)
		}
		reader = bytes.NewBuffer(raw)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	if err != nil {
		t.Fatalf("Failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var response map[string]interface{}
	if len(w.Body.Bytes()) > 0 && w.Body.Bytes()[0] == '{' {
		if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
			t.Fatalf("Response should be valid JSON: %v", err)
		}
	}
	return w, response
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

// performList runs a bodyless GET through the router.
func performList(t *testing.T, router *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, path, nil)
	if err != nil {
		t.Fatalf("Failed to create request: %v", err)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// decodeList unmarshals a JSON array response body.
func decodeList(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()

	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("Response should be a valid JSON list: %v", err)
	}
}

// seedCustomer inserts a customer directly into the store.
func seedCustomer(t *testing.T, db *gorm.DB, email, phone string) models.Customer {
	t.Helper()

	customer := models.Customer{
		Name:        "Seed Customer",
		Email:       email,
		Phone:       phone,
		Address:     "Seed St 1",
		Nationality: "CO",
	}
	if err := db.Create(&customer).Error; err != nil {
		t.Fatalf("Failed to seed customer: %v", err)
	}
	return customer
}

// seedOrder inserts an order for the customer directly into the store.
func seedOrder(t *testing.T, db *gorm.DB, customerID uint, state string) models.Order {
	t.Helper()

	order := models.Order{
		CustomerID: customerID,
		Date:       time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		State:      state,
	}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("Failed to seed order: %v", err)
	}
	return order
}
