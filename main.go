package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/modelhomeart/mhabackend/cart"
	"github.com/modelhomeart/mhabackend/controllers"
	"github.com/modelhomeart/mhabackend/database"
	"github.com/modelhomeart/mhabackend/mailer"
	"github.com/modelhomeart/mhabackend/middleware"
	"github.com/modelhomeart/mhabackend/notify"
	"github.com/modelhomeart/mhabackend/repository"
	"github.com/modelhomeart/mhabackend/uploads"
	"github.com/modelhomeart/mhabackend/utils"
	"github.com/modelhomeart/mhabackend/wizard"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file")
	}

	ctx := context.Background()

	// seeding admin user and ready-made catalog
	if err := utils.SeedAdminUser(ctx, database.OpenCollection("users")); err != nil {
		log.Fatal(err)
	}
	if err := utils.SeedCatalog(ctx, database.OpenCollection("collections"), database.OpenCollection("products")); err != nil {
		log.Fatal(err)
	}

	uploader, err := uploads.FromEnv(ctx)
	if err != nil {
		log.Fatal(err)
	}

	deps := &controllers.Deps{
		Quotes:       repository.MongoQuotes{},
		Contacts:     repository.MongoContacts{},
		Inquiries:    repository.MongoInquiries{},
		AdminEmail:   os.Getenv("ADMIN_EMAIL"),
		Slack:        notify.FromEnv(),
		Uploads:      uploader,
		AdminBaseURL: os.Getenv("ADMIN_BASE_URL"),
	}
	if sender := mailer.FromEnv(); sender != nil {
		deps.Mail = sender
	}

	carts := controllers.NewCartController(cart.NewRegistry())

	r := gin.New()
	// In-memory parse threshold for multipart bodies; larger parts spill to
	// temp files. The 4MB photo budget itself is enforced by the handlers'
	// total-size check.
	r.MaxMultipartMemory = wizard.MaxUploadBytes + 1<<20

	origins := os.Getenv("ALLOWED_ORIGINS")
	allowedOrigins := map[string]bool{}
	for _, origin := range strings.Split(origins, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			allowedOrigins[origin] = true
		}
	}
	log.Printf("Allowed origins: %v", allowedOrigins)
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			return allowedOrigins[origin]
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Cart-Token"},
		ExposeHeaders:    []string{"Content-Length", "X-Cart-Token"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(gin.Logger())
	r.Use(gin.Recovery())

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	r.POST("/auth/login", controllers.Login())
	r.POST("/auth/refresh", controllers.Refresh())
	r.POST("/auth/logout", controllers.Logout())

	r.GET("/products", controllers.GetProducts())
	r.GET("/products/:slug", controllers.GetProductBySlug())
	r.GET("/collections", controllers.GetCollections())

	r.GET("/api/options", controllers.GetFormOptions())
	r.POST("/api/quote", deps.CreateQuoteRequest())
	r.GET("/api/quote", deps.GetQuoteRequests())
	r.POST("/api/contact", deps.CreateContactSubmission())
	r.POST("/api/business-inquiry", deps.CreateBusinessInquiry())

	r.GET("/cart", carts.GetCart())
	r.POST("/cart/items", carts.AddItem())
	r.PATCH("/cart/items/:id", carts.UpdateQuantity())
	r.DELETE("/cart/items/:id", carts.RemoveItem())
	r.DELETE("/cart", carts.ClearCart())
	r.POST("/cart/toggle", carts.ToggleCart())

	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware())
	{
		admin.GET("/dashboard", deps.GetDashboard())

		admin.GET("/quote-requests", deps.GetQuoteRequests())
		admin.GET("/quote-requests/:id", deps.GetQuoteRequest())
		admin.PATCH("/quote-requests/:id/status", deps.UpdateQuoteStatus())

		admin.GET("/contact-submissions", deps.GetContactSubmissions())
		admin.PATCH("/contact-submissions/:id/status", deps.UpdateContactStatus())

		admin.GET("/business-inquiries", deps.GetBusinessInquiries())
		admin.PATCH("/business-inquiries/:id/status", deps.UpdateInquiryStatus())
	}

	r.Run()
}
