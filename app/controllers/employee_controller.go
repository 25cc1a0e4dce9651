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
	"github.com/bilemo/api/pkg/rbac"
	"github.com/bilemo/api/pkg/response"
	"github.com/bilemo/api/pkg/router"
	"github.com/bilemo/api/pkg/validate"
)

// EmployeeController manages platform staff. The whole surface sits
// behind the SUPER_ADMIN gate.
type EmployeeController struct {
	employees *repositories.EmployeeRepository
	users     *repositories.UserRepository
	accounts  *services.AccountService
	cache     cache.Store
	router    *router.Router
}

func NewEmployeeController(
	employees *repositories.EmployeeRepository,
	users *repositories.UserRepository,
	accounts *services.AccountService,
	store cache.Store,
	rt *router.Router,
) *EmployeeController {
	return &EmployeeController{
		employees: employees,
		users:     users,
		accounts:  accounts,
		cache:     store,
		router:    rt,
	}
}

// CreateEmployeeInput is the create payload. Role picks the account's
// privilege level; it defaults to ADMIN when left out.
type CreateEmployeeInput struct {
	LastName  string        `json:"lastName"  validate:"required,max=255"`
	FirstName string        `json:"firstName" validate:"required,max=255"`
	Phone     string        `json:"phone"     validate:"required,max=50"`
	Role      string        `json:"role"      validate:"nullable,in=ADMIN,SUPER_ADMIN"`
	User      *AccountInput `json:"user"`
}

// UpdateEmployeeInput is the partial-update payload.
type UpdateEmployeeInput struct {
	LastName  *string             `json:"lastName"  validate:"nullable,max=255"`
	FirstName *string             `json:"firstName" validate:"nullable,max=255"`
	Phone     *string             `json:"phone"     validate:"nullable,max=50"`
	Role      *string             `json:"role"      validate:"nullable,in=ADMIN,SUPER_ADMIN"`
	User      *AccountUpdateInput `json:"user"`
}

// List serves GET /api/employees.
func (c *EmployeeController) List(w http.ResponseWriter, r *http.Request) {
	req, herr := services.ParsePageRequest(r)
	if herr != nil {
		response.FromError(w, herr)
		return
	}

	employees, herr := services.Paginate(r.Context(), c.cache, "employee", "", req,
		c.employees.Count, c.employees.List)
	if herr != nil {
		response.FromError(w, herr)
		return
	}

	response.Success(w, resources.EmployeeList(employees))
}

// Detail serves GET /api/employees/{id}.
func (c *EmployeeController) Detail(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.NotFound(w)
		return
	}

	employee, err := c.employees.Find(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		response.NotFound(w)
		return
	}
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response.Success(w, resources.NewEmployeeDetail(employee))
}

// Create serves POST /api/employees. Employee and account are created
// together, like customers.
func (c *EmployeeController) Create(w http.ResponseWriter, r *http.Request) {
	var input CreateEmployeeInput
	errs, err := bind.JSON(r, &input)
	if err != nil {
		bindError(w, err)
		return
	}
	if errs == nil {
		errs = map[string]string{}
	}
	if input.User == nil {
		errs["user"] = "The user field is required."
	} else {
		for field, msg := range validate.Struct(input.User) {
			errs["user."+field] = msg
		}
	}
	if len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}

	role := input.Role
	if role == "" {
		role = rbac.RoleAdmin
	}

	employee := models.Employee{
		LastName:  input.LastName,
		FirstName: input.FirstName,
		Phone:     input.Phone,
		CreatedAt: time.Now(),
	}
	err = c.employees.Transaction(func(tx *gorm.DB) error {
		if err := c.employees.WithTx(tx).Create(&employee); err != nil {
			return err
		}
		user, herr := c.accounts.WithTx(tx).Create(input.User.Email, input.User.Password, role, nil, &employee.ID)
		if herr != nil {
			return herr
		}
		employee.User = &user
		return nil
	})
	if err != nil {
		response.FromError(w, err)
		return
	}

	services.Invalidate(r.Context(), c.cache, "employee")
	locate(w, c.router, "employees.detail", employee.ID)
	response.Created(w, resources.NewEmployeeDetail(employee))
}

// Update serves PUT /api/employees/{id}.
func (c *EmployeeController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.NotFound(w)
		return
	}

	employee, err := c.employees.Find(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		response.NotFound(w)
		return
	}
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	var input UpdateEmployeeInput
	errs, err := bind.JSON(r, &input)
	if err != nil {
		bindError(w, err)
		return
	}
	if errs == nil {
		errs = map[string]string{}
	}
	if input.User != nil {
		for field, msg := range validate.Struct(input.User) {
			errs["user."+field] = msg
		}
	}
	if len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}

	if input.LastName != nil {
		employee.LastName = *input.LastName
	}
	if input.FirstName != nil {
		employee.FirstName = *input.FirstName
	}
	if input.Phone != nil {
		employee.Phone = *input.Phone
	}

	// Row and account change together or not at all, as for customers.
	err = c.employees.Transaction(func(tx *gorm.DB) error {
		if err := c.employees.WithTx(tx).Update(&employee); err != nil {
			return err
		}
		if input.User == nil && input.Role == nil {
			return nil
		}

		account, err := c.users.WithTx(tx).FindByEmployee(employee.ID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewError(http.StatusBadRequest, "This employee has no login account.")
		}
		if err != nil {
			return err
		}
		var email, password *string
		if input.User != nil {
			email, password = input.User.Email, input.User.Password
		}
		if herr := c.accounts.WithTx(tx).Update(&account, email, password, input.Role); herr != nil {
			return herr
		}
		employee.User = &account
		return nil
	})
	if err != nil {
		response.FromError(w, err)
		return
	}

	services.Invalidate(r.Context(), c.cache, "employee")
	locate(w, c.router, "employees.detail", employee.ID)
	response.Success(w, resources.NewEmployeeDetail(employee))
}

// Delete serves DELETE /api/employees/{id}.
func (c *EmployeeController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.NotFound(w)
		return
	}

	employee, err := c.employees.Find(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		response.NotFound(w)
		return
	}
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if err := c.employees.Delete(&employee); err != nil {
		response.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	services.Invalidate(r.Context(), c.cache, "employee")
	response.NoContent(w)
}
