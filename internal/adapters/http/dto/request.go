package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jsamuelsen11/go-task-service/internal/domain"
	"github.com/jsamuelsen11/go-task-service/internal/domain/user"
	"github.com/jsamuelsen11/go-task-service/internal/ports"
)

var validate = newValidator()

// newValidator returns a validator that reports fields by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateStruct runs the struct tags of v and converts failures into a
// *domain.ValidationError keyed by JSON field name.
func validateStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validating request: %w", err)
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fieldPath(fe)] = fieldMessage(fe)
	}
	return &domain.ValidationError{Fields: fields}
}

// fieldPath drops the struct name from the validator namespace, so
// "BulkDeleteRequest.ids[1]" becomes "ids[1]".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return fe.Field()
}

// mergeFields adds extra field failures to the result of validateStruct.
func mergeFields(err error, extra map[string]string) error {
	if len(extra) == 0 {
		return err
	}
	if err == nil {
		return &domain.ValidationError{Fields: extra}
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		return err
	}
	for field, msg := range extra {
		verr.Fields[field] = msg
	}
	return verr
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return domain.MsgRequired
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "oneof":
		return "must be one of " + strings.ReplaceAll(fe.Param(), " ", ", ")
	default:
		return fmt.Sprintf("failed %q check", fe.Tag())
	}
}

// RegisterRequest represents the JSON body of a registration.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Role     string `json:"role,omitempty"`
}

// Validate checks the request shape. The role is matched case-insensitively.
// Returns a *domain.ValidationError if any checks fail.
func (r *RegisterRequest) Validate() error {
	extra := make(map[string]string)
	if r.Role != "" {
		if _, ok := user.ParseRole(r.Role); !ok {
			extra["role"] = fmt.Sprintf("invalid: %q", r.Role)
		}
	}
	return mergeFields(validateStruct(r), extra)
}

// ToInput converts the request to the service input.
func (r *RegisterRequest) ToInput() ports.RegisterInput {
	role, _ := user.ParseRole(r.Role)
	return ports.RegisterInput{
		Email:    r.Email,
		Password: r.Password,
		Role:     role,
	}
}

// LoginRequest represents the JSON body of a login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Validate checks that both credentials are present.
func (r *LoginRequest) Validate() error {
	return validateStruct(r)
}

// ToInput converts the request to the service input.
func (r *LoginRequest) ToInput() ports.LoginInput {
	return ports.LoginInput{Email: r.Email, Password: r.Password}
}

// CreateTaskRequest represents the JSON body for creating a task. Length,
// deadline and duplicate rules are enforced by the task service.
type CreateTaskRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description *string `json:"description,omitempty"`
	Deadline    *string `json:"deadline,omitempty"`
	Priority    *string `json:"priority,omitempty" validate:"omitempty,oneof=LOW MEDIUM HIGH"`
	OwnerID     string  `json:"owner_id,omitempty"`
}

// Validate checks that required fields are present and enumerated fields
// hold known values. Returns a *domain.ValidationError if any checks fail.
func (r *CreateTaskRequest) Validate() error {
	return validateStruct(r)
}

// ToInput converts the request to the service input. An empty OwnerID is
// resolved to the caller by the task guard.
func (r *CreateTaskRequest) ToInput() ports.CreateTaskInput {
	return ports.CreateTaskInput{
		Title:       r.Title,
		Description: r.Description,
		Deadline:    r.Deadline,
		Priority:    r.Priority,
		OwnerID:     r.OwnerID,
	}
}

// UpdateTaskRequest represents the JSON body for updating a task.
// All fields are optional; nil means "do not change this field.".
type UpdateTaskRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty" validate:"omitempty,oneof=TODO IN_PROGRESS DONE CANCELLED"`
	Deadline    *string `json:"deadline,omitempty"`
	Priority    *string `json:"priority,omitempty" validate:"omitempty,oneof=LOW MEDIUM HIGH"`
}

// Validate checks that any provided fields have valid values.
// Returns a *domain.ValidationError if any checks fail.
func (r *UpdateTaskRequest) Validate() error {
	extra := make(map[string]string)
	if r.Title != nil && strings.TrimSpace(*r.Title) == "" {
		extra["title"] = domain.MsgMustNotEmpty
	}
	return mergeFields(validateStruct(r), extra)
}

// ToInput converts the request to the service input.
func (r *UpdateTaskRequest) ToInput() ports.UpdateTaskInput {
	return ports.UpdateTaskInput{
		Title:       r.Title,
		Description: r.Description,
		Status:      r.Status,
		Deadline:    r.Deadline,
		Priority:    r.Priority,
	}
}

// BulkDeleteRequest represents the JSON body of a bulk delete.
type BulkDeleteRequest struct {
	IDs []string `json:"ids" validate:"required,dive,required"`
}

// Validate checks that ids is present and holds no blank entries. An empty
// list is rejected by the task service.
func (r *BulkDeleteRequest) Validate() error {
	return validateStruct(r)
}
