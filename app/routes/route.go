package routes

import (
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/csrf"
	"github.com/gorilla/mux"
	"github.com/velamart/catalog-admin/app/configs"
	"github.com/velamart/catalog-admin/app/handlers/api"
	"github.com/velamart/catalog-admin/app/middlewares"
	"github.com/velamart/catalog-admin/app/repositories"
	"github.com/velamart/catalog-admin/app/services"
	"github.com/velamart/catalog-admin/app/utils/renderer"
	"github.com/velamart/catalog-admin/app/utils/sessions"
	"gorm.io/gorm"
)

func NewRouter(db *gorm.DB, sessionStore sessions.SessionStore) http.Handler {
	render := renderer.New()
	validate := validator.New()

	userRepo := repositories.NewUserRepository(db)
	productRepo := repositories.NewProductRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	tagRepo := repositories.NewTagRepository(db)
	brandRepo := repositories.NewBrandRepository(db)
	attributeRepo := repositories.NewAttributeRepository(db)
	relationRepo := repositories.NewProductRelationRepository(db)
	imageRepo := repositories.NewProductImageRepository(db)
	variationRepo := repositories.NewProductVariationRepository(db)
	requestRepo := repositories.NewCategoryRequestRepository(db)
	notificationRepo := repositories.NewNotificationRepository(db)
	orderRepo := repositories.NewOrderRepository(db)

	env := configs.LoadENV
	mailer := services.NewMailer(services.MailerConfig{
		Host:     env.EmailHost,
		Port:     env.EmailPort,
		Username: env.EmailUsername,
		Password: env.EmailPassword,
		From:     env.EmailFrom,
	})

	slugSvc := services.NewSlugService()
	skuSvc := services.NewSKUService(productRepo)
	accessSvc := services.NewAccessService(brandRepo, productRepo)
	reviewGateSvc := services.NewReviewGateService(brandRepo)
	imageSvc := services.NewImageService(imageRepo)
	variationSvc := services.NewVariationService(variationRepo)
	notifierSvc := services.NewNotifierService(notificationRepo, userRepo, mailer)
	productSvc := services.NewProductService(
		productRepo, categoryRepo, requestRepo, relationRepo, imageRepo, variationRepo,
		slugSvc, skuSvc, accessSvc, reviewGateSvc, imageSvc, variationSvc, notifierSvc,
	)

	authHandler := api.NewAuthHandler(render, validate, userRepo, sessionStore)
	productHandler := api.NewProductHandler(render, validate, productSvc)
	categoryHandler := api.NewCategoryHandler(render, validate, categoryRepo, slugSvc, accessSvc)
	tagHandler := api.NewTagHandler(render, validate, tagRepo, slugSvc, accessSvc)
	brandHandler := api.NewBrandHandler(render, validate, brandRepo, slugSvc, accessSvc)
	attributeHandler := api.NewAttributeHandler(render, validate, attributeRepo, slugSvc, accessSvc)
	requestHandler := api.NewCategoryRequestHandler(render, validate, requestRepo)
	notificationHandler := api.NewNotificationHandler(render, validate, notificationRepo)
	orderHandler := api.NewOrderHandler(render, validate, orderRepo)

	router := mux.NewRouter()
	router.Use(middlewares.IdentityMiddleware(sessionStore, userRepo))

	router.HandleFunc("/api/v1/login", authHandler.Login).Methods("POST")
	router.HandleFunc("/api/v1/logout", authHandler.Logout).Methods("POST")
	router.HandleFunc("/api/v1/me", authHandler.Me).Methods("GET")

	// Catalog managers: admins plus vendors.
	catalog := router.PathPrefix("/api/v1").Subrouter()
	catalog.Use(middlewares.RequireCatalogManager)

	catalog.HandleFunc("/products", productHandler.List).Methods("GET")
	catalog.HandleFunc("/products", productHandler.Create).Methods("POST")
	catalog.HandleFunc("/products/{id}", productHandler.Get).Methods("GET")
	catalog.HandleFunc("/products/{id}", productHandler.Update).Methods("PUT")
	catalog.HandleFunc("/products/{id}", productHandler.Delete).Methods("DELETE")

	catalog.HandleFunc("/categories", categoryHandler.List).Methods("GET")
	catalog.HandleFunc("/categories", categoryHandler.Create).Methods("POST")
	catalog.HandleFunc("/categories/{id}", categoryHandler.Get).Methods("GET")
	catalog.HandleFunc("/categories/{id}", categoryHandler.Update).Methods("PUT")
	catalog.HandleFunc("/categories/{id}", categoryHandler.Delete).Methods("DELETE")

	catalog.HandleFunc("/tags", tagHandler.List).Methods("GET")
	catalog.HandleFunc("/tags", tagHandler.Create).Methods("POST")
	catalog.HandleFunc("/tags/{id}", tagHandler.Update).Methods("PUT")
	catalog.HandleFunc("/tags/{id}", tagHandler.Delete).Methods("DELETE")

	catalog.HandleFunc("/brands", brandHandler.List).Methods("GET")
	catalog.HandleFunc("/brands", brandHandler.Create).Methods("POST")
	catalog.HandleFunc("/brands/{id}", brandHandler.Update).Methods("PUT")
	catalog.HandleFunc("/brands/{id}", brandHandler.Delete).Methods("DELETE")

	catalog.HandleFunc("/attributes", attributeHandler.List).Methods("GET")
	catalog.HandleFunc("/attributes", attributeHandler.Create).Methods("POST")
	catalog.HandleFunc("/attributes/{id}", attributeHandler.Update).Methods("PUT")
	catalog.HandleFunc("/attributes/{id}", attributeHandler.Delete).Methods("DELETE")
	catalog.HandleFunc("/attributes/{id}/options", attributeHandler.CreateOption).Methods("POST")
	catalog.HandleFunc("/attributes/{id}/options/{optionID}", attributeHandler.UpdateOption).Methods("PUT")
	catalog.HandleFunc("/attributes/{id}/options/{optionID}", attributeHandler.DeleteOption).Methods("DELETE")

	catalog.HandleFunc("/category-requests", requestHandler.List).Methods("GET")
	catalog.HandleFunc("/category-requests", requestHandler.Create).Methods("POST")

	admin := router.PathPrefix("/api/v1/admin").Subrouter()
	admin.Use(middlewares.RequireAdmin)

	admin.HandleFunc("/notifications", notificationHandler.List).Methods("GET")
	admin.HandleFunc("/notifications/{id}/read", notificationHandler.MarkRead).Methods("POST")

	admin.HandleFunc("/orders", orderHandler.List).Methods("GET")
	admin.HandleFunc("/orders/{id}", orderHandler.Get).Methods("GET")

	if env.APP_ENV == "development" {
		log.Println("CSRF protection disabled for development")
		return router
	}
	csrfMiddleware := csrf.Protect(
		[]byte(env.CSRFKey),
		csrf.Secure(true),
		csrf.Path("/"),
	)
	return csrfMiddleware(router)
}
