package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/brunogonzalezj/studymate-backend/ws"
)

func HealthCheck(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	response := gin.H{
		"status":    "ok",
		"timestamp": time.Now().Unix(),
		"db":        "ok",
		"websocket": ws.H.GetStats(),
	}

	sqlDB, err := db.DB()
	if err != nil {
		response["db"] = "error: cannot get DB instance"
		response["status"] = "degraded"
		c.JSON(http.StatusInternalServerError, response)
		return
	}
	if err := sqlDB.Ping(); err != nil {
		response["db"] = "error: cannot connect to DB"
		response["status"] = "degraded"
		c.JSON(http.StatusInternalServerError, response)
		return
	}

	c.JSON(http.StatusOK, response)
}
