package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/slicely/pizza-order-backend/models"
	"github.com/slicely/pizza-order-backend/utils"
)

type PizzaController struct {
	DB *gorm.DB
}

func NewPizzaController(db *gorm.DB) *PizzaController {
	return &PizzaController{DB: db}
}

// GetAllPizzas -> the full menu, ordered by id
func (pc *PizzaController) GetAllPizzas(c *gin.Context) {
	var pizzas []models.Pizza
	if err := pc.DB.Order("id").Find(&pizzas).Error; err != nil {
		utils.ErrorLogger.Printf("Failed to load menu: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, ErrMenuUnavailable)
		return
	}
	utils.RespondOK(c, http.StatusOK, "Menu retrieved successfully.", gin.H{"data": pizzas})
}
