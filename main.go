package main

import (
	"github.com/gin-gonic/gin"

	"github.com/formhub/formhub-go/config"
	"github.com/formhub/formhub-go/db"
	"github.com/formhub/formhub-go/middleware"
	"github.com/formhub/formhub-go/minio"
	"github.com/formhub/formhub-go/routes"
)

func main() {
	config.LoadConfig()
	db.Init()
	minio.InitMinio()

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())
	routes.RegisterRoutes(r)
	r.Run(":" + config.ServerPort)
}
