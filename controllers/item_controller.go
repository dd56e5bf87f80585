package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"github.com/laura-mejia/cutting-orders-api/models"
	"github.com/laura-mejia/cutting-orders-api/validation"
)

// ItemController handles the /item endpoints.
type ItemController struct {
	DB       *gorm.DB
	Validate *validatorv10.Validate
}

// NewItemController creates an item controller bound to db.
func NewItemController(db *gorm.DB, v *validatorv10.Validate) *ItemController {
	return &ItemController{DB: db, Validate: v}
}

// Create handles POST /item/:id - attaches a width/length measurement to
// the order named in the path. Only orders still in the Requested state
// accept new items.
func (ctl *ItemController) Create(c *gin.Context) {
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

	var req validation.CreateItemRequest
	if details, ok := validation.Bind(c, &req, ctl.Validate); !ok {
		badRequest(c, details)
		return
	}

	if !order.AcceptsItems() {
		badRequest(c, "order probably approved or rejected, you cannot add items")
		return
	}

	item := models.Item{
		OrderID: order.ID,
		Width:   *req.Width,
		Length:  *req.Length,
	}
	if err := ctl.DB.Create(&item).Error; err != nil {
		storageFailure(c, err)
		return
	}

	item.Order = order
	c.JSON(http.StatusOK, models.NewItemWithOrder(item))
}
