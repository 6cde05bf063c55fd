package Controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/slicely/pizza-order-backend/controllers"
	"github.com/slicely/pizza-order-backend/database"
	"github.com/slicely/pizza-order-backend/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	os.Exit(m.Run())
}

func setupTestDBForPizzas() *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	if err := database.Migrate(db); err != nil {
		panic(err)
	}
	if err := database.SeedPizzas(db); err != nil {
		panic(err)
	}
	return db
}

func setupPizzaRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	pizzaCtrl := controllers.NewPizzaController(db)
	router.GET("/api/pizzas", pizzaCtrl.GetAllPizzas)
	return router
}

func TestGetAllPizzas(t *testing.T) {
	db := setupTestDBForPizzas()
	router := setupPizzaRouter(db)

	req, err := http.NewRequest("GET", "/api/pizzas", nil)
	assert.NoError(t, err)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	err = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.Equal(t, "Menu retrieved successfully.", resp["message"])

	data := resp["data"].([]interface{})
	assert.Len(t, data, 4)

	// Catalog comes back ordered by id
	first := data[0].(map[string]interface{})
	assert.Equal(t, float64(1), first["id"])
	assert.Equal(t, "Classic Pepperoni", first["name"])
	assert.Equal(t, 15.99, first["price"])
}

func TestSeedPizzasIsIdempotent(t *testing.T) {
	db := setupTestDBForPizzas()

	// Seeding again must not duplicate the catalog
	assert.NoError(t, database.SeedPizzas(db))

	router := setupPizzaRouter(db)
	req, _ := http.NewRequest("GET", "/api/pizzas", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp["data"].([]interface{}), 4)
}
