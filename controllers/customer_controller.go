package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"github.com/laura-mejia/cutting-orders-api/models"
	"github.com/laura-mejia/cutting-orders-api/validation"
)

// CustomerController handles the /customers endpoints. It holds the
// database handle explicitly instead of reaching for package state.
type CustomerController struct {
	DB       *gorm.DB
	Validate *validatorv10.Validate
}

// NewCustomerController creates a customer controller bound to db.
func NewCustomerController(db *gorm.DB, v *validatorv10.Validate) *CustomerController {
	return &CustomerController{DB: db, Validate: v}
}

// Create handles POST /customers - registers a new customer
func (ctl *CustomerController) Create(c *gin.Context) {
	var req validation.CreateCustomerRequest
	if details, ok := validation.Bind(c, &req, ctl.Validate); !ok {
		badRequest(c, details)
		return
	}

	// Pre-check for duplicates. This read-then-write check is racy on its
	// own; the unique indexes on email and phone are the source of truth
	// and a duplicate slipping past here is still caught on Create below.
	var existing models.Customer
	if err := ctl.DB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		badRequest(c, "user with this email already exists")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		storageFailure(c, err)
		return
	}
	if err := ctl.DB.Where("phone = ?", req.Phone).First(&existing).Error; err == nil {
		badRequest(c, "user with this phone already exists")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		storageFailure(c, err)
		return
	}

	customer := models.Customer{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Address:     req.Address,
		Nationality: req.Nationality,
	}

	if err := ctl.DB.Create(&customer).Error; err != nil {
		if isUniqueViolation(err) {
			badRequest(c, duplicateFieldMessage(err))
			return
		}
		storageFailure(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewCustomerView(customer))
}

// List handles GET /customers - returns every customer with their orders
// and each order's items
func (ctl *CustomerController) List(c *gin.Context) {
	var customers []models.Customer
	if err := ctl.DB.Preload("Orders.Items").Order("id").Find(&customers).Error; err != nil {
		storageFailure(c, err)
		return
	}

	views := make([]models.CustomerWithOrders, 0, len(customers))
	for _, customer := range customers {
		views = append(views, models.NewCustomerWithOrders(customer))
	}
	c.JSON(http.StatusOK, views)
}

// Update handles PUT /customers/:id - applies a partial update
func (ctl *CustomerController) Update(c *gin.Context) {
	customer, ok := ctl.find(c)
	if !ok {
		return
	}

	var req validation.UpdateCustomerRequest
	if details, ok := validation.Bind(c, &req, ctl.Validate); !ok {
		badRequest(c, details)
		return
	}

	if req.Name != nil {
		customer.Name = *req.Name
	}
	if req.Email != nil {
		customer.Email = *req.Email
	}
	if req.Phone != nil {
		customer.Phone = *req.Phone
	}
	if req.Address != nil {
		customer.Address = *req.Address
	}
	if req.Nationality != nil {
		customer.Nationality = *req.Nationality
	}

	// No duplicate pre-check on update; the unique indexes decide.
	if err := ctl.DB.Model(&customer).Updates(map[string]interface{}{
		"name":        customer.Name,
		"email":       customer.Email,
		"phone":       customer.Phone,
		"address":     customer.Address,
		"nationality": customer.Nationality,
	}).Error; err != nil {
		if isUniqueViolation(err) {
			badRequest(c, duplicateFieldMessage(err))
			return
		}
		storageFailure(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewCustomerView(customer))
}

// Delete handles DELETE /customers/:id - removes the customer and returns
// the record as it existed before deletion
func (ctl *CustomerController) Delete(c *gin.Context) {
	customer, ok := ctl.find(c)
	if !ok {
		return
	}

	view := models.NewCustomerView(customer)
	if err := ctl.DB.Delete(&customer).Error; err != nil {
		storageFailure(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// find loads the customer named by the :id path parameter, writing the
// not-found response itself when the lookup fails.
func (ctl *CustomerController) find(c *gin.Context) (models.Customer, bool) {
	var customer models.Customer

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		badRequest(c, "user not found")
		return customer, false
	}

	if err := ctl.DB.First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			badRequest(c, "user not found")
		} else {
			storageFailure(c, err)
		}
		return customer, false
	}
	return customer, true
}

// duplicateFieldMessage names the offending field when the store rejects a
// duplicate email or phone.
func duplicateFieldMessage(err error) string {
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "phone") {
		return "user with this phone already exists"
	}
	return "user with this email already exists"
}
