// Package routes declares the whole HTTP surface and its role gates.
package routes

import (
	"gorm.io/gorm"

	"github.com/bilemo/api/app/controllers"
	"github.com/bilemo/api/app/repositories"
	"github.com/bilemo/api/app/services"
	"github.com/bilemo/api/pkg/cache"
	"github.com/bilemo/api/pkg/metrics"
	"github.com/bilemo/api/pkg/middleware"
	"github.com/bilemo/api/pkg/rbac"
	"github.com/bilemo/api/pkg/router"
)

// RegisterAPI wires every endpoint. Gates per operation:
//
//	products        list/detail public, create/update ADMIN, delete SUPER_ADMIN
//	images          list/detail/file public, no writes
//	customers       ADMIN, delete SUPER_ADMIN
//	customer-users  CLIENT and above, ownership checked in the controller
//	employees       SUPER_ADMIN only
func RegisterAPI(r *router.Router, db *gorm.DB, store cache.Store) {
	products := repositories.NewProductRepository(db)
	images := repositories.NewImageRepository(db)
	customers := repositories.NewCustomerRepository(db)
	customerUsers := repositories.NewCustomerUserRepository(db)
	employees := repositories.NewEmployeeRepository(db)
	users := repositories.NewUserRepository(db)

	accounts := services.NewAccountService(users)

	authController := controllers.NewAuthController(services.NewAuthService(users))
	productController := controllers.NewProductController(products, store, r)
	imageController := controllers.NewImageController(images, store)
	customerController := controllers.NewCustomerController(customers, users, accounts, store, r)
	customerUserController := controllers.NewCustomerUserController(customerUsers, customers, store, r)
	employeeController := controllers.NewEmployeeController(employees, users, accounts, store, r)

	r.Get("/metrics", "metrics", metrics.Handler())

	api := r.Group("/api")
	api.Post("/login", "auth.login", authController.Login)

	api.Get("/products", "products.list", productController.List)
	api.Get("/products/{id}", "products.detail", productController.Detail)
	api.Get("/images", "images.list", imageController.List)
	api.Get("/images/{id}", "images.detail", imageController.Detail)
	api.Get("/images/{id}/file", "images.file", imageController.File)

	authed := api.Group("", middleware.Auth)

	admin := authed.Group("", rbac.Require(rbac.RoleAdmin))
	admin.Post("/products", "products.create", productController.Create)
	admin.Put("/products/{id}", "products.update", productController.Update)
	admin.Get("/customers", "customers.list", customerController.List)
	admin.Get("/customers/{id}", "customers.detail", customerController.Detail)
	admin.Post("/customers", "customers.create", customerController.Create)
	admin.Put("/customers/{id}", "customers.update", customerController.Update)

	client := authed.Group("", rbac.Require(rbac.RoleClient))
	client.Get("/customer-users", "customer-users.list", customerUserController.List)
	client.Get("/customer-users/{id}", "customer-users.detail", customerUserController.Detail)
	client.Post("/customer-users", "customer-users.create", customerUserController.Create)
	client.Put("/customer-users/{id}", "customer-users.update", customerUserController.Update)
	client.Delete("/customer-users/{id}", "customer-users.delete", customerUserController.Delete)

	super := authed.Group("", rbac.Require(rbac.RoleSuperAdmin))
	super.Delete("/products/{id}", "products.delete", productController.Delete)
	super.Delete("/customers/{id}", "customers.delete", customerController.Delete)
	super.Get("/employees", "employees.list", employeeController.List)
	super.Get("/employees/{id}", "employees.detail", employeeController.Detail)
	super.Post("/employees", "employees.create", employeeController.Create)
	super.Put("/employees/{id}", "employees.update", employeeController.Update)
	super.Delete("/employees/{id}", "employees.delete", employeeController.Delete)
}
