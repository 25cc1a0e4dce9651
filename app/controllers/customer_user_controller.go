package controllers

import (
	"errors"
	"net/http"
	"time"

	"gorm.io/gorm"

	"github.com/bilemo/api/app/models"
	"github.com/bilemo/api/app/repositories"
	"github.com/bilemo/api/app/resources"
	"github.com/bilemo/api/app/services"
	"github.com/bilemo/api/pkg/bind"
	"github.com/bilemo/api/pkg/cache"
	"github.com/bilemo/api/pkg/middleware"
	"github.com/bilemo/api/pkg/rbac"
	"github.com/bilemo/api/pkg/response"
	"github.com/bilemo/api/pkg/router"
)

// CustomerUserController manages the end users owned by customers.
//
// Access is scoped: a CLIENT caller only ever touches users of its own
// customer, and its listing is filtered server-side. ADMIN and above see
// everything but must name a customer explicitly when creating.
type CustomerUserController struct {
	customerUsers *repositories.CustomerUserRepository
	customers     *repositories.CustomerRepository
	cache         cache.Store
	router        *router.Router
}

func NewCustomerUserController(
	customerUsers *repositories.CustomerUserRepository,
	customers *repositories.CustomerRepository,
	store cache.Store,
	rt *router.Router,
) *CustomerUserController {
	return &CustomerUserController{
		customerUsers: customerUsers,
		customers:     customers,
		cache:         store,
		router:        rt,
	}
}

// CreateCustomerUserInput is the create payload. IDCustomer is ignored
// for CLIENT callers, whose own customer always wins.
type CreateCustomerUserInput struct {
	LastName   string `json:"lastName"   validate:"required,max=255"`
	FirstName  string `json:"firstName"  validate:"required,max=255"`
	Email      string `json:"email"      validate:"required,email,max=50"`
	PostalCode string `json:"postalCode" validate:"required,max=10"`
	Address    string `json:"address"    validate:"required,max=255"`
	City       string `json:"city"       validate:"required,max=50"`
	Country    string `json:"country"    validate:"required,max=50"`
	Phone      string `json:"phone"      validate:"required,max=50"`
	IDCustomer uint   `json:"idCustomer"`
}

// UpdateCustomerUserInput is the partial-update payload. Ownership never
// changes through an update.
type UpdateCustomerUserInput struct {
	LastName   *string `json:"lastName"   validate:"nullable,max=255"`
	FirstName  *string `json:"firstName"  validate:"nullable,max=255"`
	Email      *string `json:"email"      validate:"nullable,email,max=50"`
	PostalCode *string `json:"postalCode" validate:"nullable,max=10"`
	Address    *string `json:"address"    validate:"nullable,max=255"`
	City       *string `json:"city"       validate:"nullable,max=50"`
	Country    *string `json:"country"    validate:"nullable,max=50"`
	Phone      *string `json:"phone"      validate:"nullable,max=50"`
}

// List serves GET /api/customer-users. CLIENT callers get their own
// users; higher roles get the unrestricted listing under its own cache
// scope.
func (c *CustomerUserController) List(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromCtx(r.Context())
	if !ok {
		response.Unauthorized(w)
		return
	}

	req, herr := services.ParsePageRequest(r)
	if herr != nil {
		response.FromError(w, herr)
		return
	}

	var users []models.CustomerUser
	if claims.Role == rbac.RoleClient {
		customerID := claims.CustomerID
		users, herr = services.Paginate(r.Context(), c.cache,
			"customerUser", services.CustomerScope(customerID), req,
			func() (int64, error) { return c.customerUsers.CountByCustomer(customerID) },
			func(offset, limit int) ([]models.CustomerUser, error) {
				return c.customerUsers.ListByCustomer(customerID, offset, limit)
			})
	} else {
		users, herr = services.Paginate(r.Context(), c.cache,
			"customerUser", "", req,
			c.customerUsers.Count, c.customerUsers.List)
	}
	if herr != nil {
		response.FromError(w, herr)
		return
	}

	response.Success(w, resources.CustomerUserList(users))
}

// Detail serves GET /api/customer-users/{id}.
func (c *CustomerUserController) Detail(w http.ResponseWriter, r *http.Request) {
	user, ok := c.fetchOwned(w, r, "You cannot access this user.")
	if !ok {
		return
	}
	response.Success(w, resources.NewCustomerUserDetail(user))
}

// Create serves POST /api/customer-users.
func (c *CustomerUserController) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromCtx(r.Context())
	if !ok {
		response.Unauthorized(w)
		return
	}

	var input CreateCustomerUserInput
	errs, err := bind.JSON(r, &input)
	if err != nil {
		bindError(w, err)
		return
	}
	if len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}

	customerID := input.IDCustomer
	if claims.Role == rbac.RoleClient {
		customerID = claims.CustomerID
	} else if customerID == 0 {
		response.Error(w, http.StatusBadRequest, "Please provide a customer id.")
		return
	}

	if _, err := c.customers.Find(customerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(w, http.StatusNotFound, "This customer does not exist.")
			return
		}
		response.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	user := models.CustomerUser{
		LastName:   input.LastName,
		FirstName:  input.FirstName,
		Email:      input.Email,
		PostalCode: input.PostalCode,
		Address:    input.Address,
		City:       input.City,
		Country:    input.Country,
		Phone:      input.Phone,
		CreatedAt:  time.Now(),
		CustomerID: customerID,
	}
	if err := c.customerUsers.Create(&user); err != nil {
		response.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	services.Invalidate(r.Context(), c.cache, "customerUser")
	locate(w, c.router, "customer-users.detail", user.ID)
	response.Created(w, resources.NewCustomerUserDetail(user))
}

// Update serves PUT /api/customer-users/{id}.
func (c *CustomerUserController) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := c.fetchOwned(w, r, "You cannot modify this user.")
	if !ok {
		return
	}

	var input UpdateCustomerUserInput
	errs, err := bind.JSON(r, &input)
	if err != nil {
		bindError(w, err)
		return
	}
	if len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}

	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.PostalCode != nil {
		user.PostalCode = *input.PostalCode
	}
	if input.Address != nil {
		user.Address = *input.Address
	}
	if input.City != nil {
		user.City = *input.City
	}
	if input.Country != nil {
		user.Country = *input.Country
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}

	if err := c.customerUsers.Update(&user); err != nil {
		response.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	services.Invalidate(r.Context(), c.cache, "customerUser")
	locate(w, c.router, "customer-users.detail", user.ID)
	response.Success(w, resources.NewCustomerUserDetail(user))
}

// Delete serves DELETE /api/customer-users/{id}.
func (c *CustomerUserController) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := c.fetchOwned(w, r, "You cannot delete this user.")
	if !ok {
		return
	}

	if err := c.customerUsers.Delete(&user); err != nil {
		response.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	services.Invalidate(r.Context(), c.cache, "customerUser")
	response.NoContent(w)
}

// fetchOwned loads the end user from the path and enforces the ownership
// rule: a CLIENT caller only reaches users of its own customer. On any
// failure the response has been written and ok is false.
func (c *CustomerUserController) fetchOwned(w http.ResponseWriter, r *http.Request, denied string) (models.CustomerUser, bool) {
	claims, okClaims := middleware.ClaimsFromCtx(r.Context())
	if !okClaims {
		response.Unauthorized(w)
		return models.CustomerUser{}, false
	}

	id, ok := pathID(r)
	if !ok {
		response.NotFound(w)
		return models.CustomerUser{}, false
	}

	user, err := c.customerUsers.Find(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		response.NotFound(w)
		return models.CustomerUser{}, false
	}
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Internal server error")
		return models.CustomerUser{}, false
	}

	if claims.Role == rbac.RoleClient && user.CustomerID != claims.CustomerID {
		response.Forbidden(w, denied)
		return models.CustomerUser{}, false
	}

	return user, true
}
