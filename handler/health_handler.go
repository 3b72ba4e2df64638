package handler

import (
	"context"
	"time"

	"main/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var startTime = time.Now()

// HealthHandler is the unauthenticated liveness probe.
func HealthHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	database := "up"
	if err := utils.MongoClient.Ping(ctx, readpref.Primary()); err != nil {
		database = "down"
	}

	utils.Success(c, gin.H{
		"status":   "ok",
		"uptime":   time.Since(startTime).String(),
		"database": database,
		"cpu":      utils.GetCPUUsage(),
		"memory":   utils.GetMemoryUsage(),
	})
}
