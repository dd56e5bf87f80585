package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"github.com/laura-mejia/cutting-orders-api/models"
	"github.com/laura-mejia/cutting-orders-api/validation"
)

// OrderController handles the /order and /orders endpoints.
type OrderController struct {
	DB       *gorm.DB
	Validate *validatorv10.Validate
}

// NewOrderController creates an order controller bound to db.
func NewOrderController(db *gorm.DB, v *validatorv10.Validate) *OrderController {
	return &OrderController{DB: db, Validate: v}
}

// Create handles POST /order/:id - places a new order for the customer
// named in the path. New orders always start in the Requested state.
func (ctl *OrderController) Create(c *gin.Context) {
	var customer models.Customer

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		badRequest(c, "user not found")
		return
	}
	if err := ctl.DB.First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			badRequest(c, "user not found")
		} else {
			storageFailure(c, err)
		}
		return
	}

	var req validation.CreateOrderRequest
	if details, ok := validation.Bind(c, &req, ctl.Validate); !ok {
		badRequest(c, details)
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		badRequest(c, gin.H{"date": "not a valid date, expected YYYY-MM-DD"})
		return
	}

	order := models.Order{
		CustomerID: customer.ID,
		Date:       date,
		State:      models.StateRequested,
	}
	if err := ctl.DB.Create(&order).Error; err != nil {
		storageFailure(c, err)
		return
	}

	order.Customer = customer
	c.JSON(http.StatusOK, models.NewOrderWithCustomer(order))
}

// List handles GET /orders - returns every order with its customer
func (ctl *OrderController) List(c *gin.Context) {
	var orders []models.Order
	if err := ctl.DB.Preload("Customer").Order("id").Find(&orders).Error; err != nil {
		storageFailure(c, err)
		return
	}

	views := make([]models.OrderWithCustomer, 0, len(orders))
	for _, order := range orders {
		views = append(views, models.NewOrderWithCustomer(order))
	}
	c.JSON(http.StatusOK, views)
}

// Get handles GET /order/:id - returns the order with its item list
func (ctl *OrderController) Get(c *gin.Context) {
	var order models.Order

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		badRequest(c, "order not found")
		return
	}
	if err := ctl.DB.Preload("Items").First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			badRequest(c, "order not found")
		} else {
			storageFailure(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, models.NewOrderWithItems(order))
}

// Transition handles PUT /order/:id/:decision - approves ("1") or rejects
// ("0") a requested order
func (ctl *OrderController) Transition(c *gin.Context) {
	var order models.Order

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		badRequest(c, "order not found")
		return
	}
	if err := ctl.DB.Preload("Customer").First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			badRequest(c, "order not found")
		} else {
			storageFailure(c, err)
		}
		return
	}

	state, err := models.ParseDecision(c.Param("decision"))
	if err != nil {
		badRequest(c, err.Error())
		return
	}
	if err := order.Transition(state); err != nil {
		badRequest(c, err.Error())
		return
	}

	if err := ctl.DB.Model(&order).Update("state", order.State).Error; err != nil {
		storageFailure(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewOrderWithCustomer(order))
}
