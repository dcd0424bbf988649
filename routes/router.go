package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/formhub/formhub-go/handlers"
	"github.com/formhub/formhub-go/minio"
	"github.com/formhub/formhub-go/repositories"
	"github.com/formhub/formhub-go/services"
)

func RegisterRoutes(r *gin.Engine) {

	// init
	repos_instance := repositories.New()
	services_instance := services.New(repos_instance, minio.Store{})
	handlers_instance := handlers.New(services_instance)

	// setup
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	forms := r.Group("/api/forms")
	{
		forms.POST("/contact", handlers_instance.Contact.Submit)
		forms.GET("/contact/submissions", handlers_instance.Contact.ListSubmissions)

		forms.POST("/multistep", handlers_instance.MultiStep.Submit)
		forms.POST("/multistep/steps/:step/validate", handlers_instance.MultiStep.ValidateStep)
		forms.GET("/multistep/submissions", handlers_instance.MultiStep.ListSubmissions)

		forms.POST("/dynamic", handlers_instance.Dynamic.Submit)
		forms.GET("/dynamic/submissions", handlers_instance.Dynamic.ListSubmissions)

		forms.POST("/upload", handlers_instance.Upload.Submit)
		forms.GET("/upload/submissions", handlers_instance.Upload.ListSubmissions)
	}

	builder := r.Group("/api/builder")
	{
		builder.GET("", handlers_instance.Builder.Get)
		builder.PUT("/name", handlers_instance.Builder.Rename)
		builder.POST("/fields", handlers_instance.Builder.SaveField)
		builder.POST("/fields/:id/edit", handlers_instance.Builder.StartEdit)
		builder.POST("/edit/cancel", handlers_instance.Builder.CancelEdit)
		builder.DELETE("/fields/:id", handlers_instance.Builder.RemoveField)
		builder.POST("/save", handlers_instance.Builder.Save)
	}
}
