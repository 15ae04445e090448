package handler

import (
	"errors"
	"net/http"
	"reflect"

	"github.com/jaksoftwares/ReceiptPro/internal/apierror"
	"github.com/jaksoftwares/ReceiptPro/internal/mail"
	"github.com/jaksoftwares/ReceiptPro/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid JSON: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// parseID binds the :id path segment. Writes the 400 itself on failure.
func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid id"))
		return uuid.Nil, false
	}
	return id, true
}

// respondError maps service sentinels onto HTTP statuses; anything unknown is
// a 500 with a generic detail so internals never leak to clients.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, apierror.New("Record not found"))
	case errors.Is(err, service.ErrNoProfile):
		c.JSON(http.StatusConflict, apierror.New("No business profile is configured"))
	case errors.Is(err, service.ErrExportInFlight):
		c.JSON(http.StatusConflict, apierror.New("An export for this document is already in progress"))
	case errors.Is(err, service.ErrNoRecipient):
		c.JSON(http.StatusUnprocessableEntity, apierror.New("No recipient email address on the document"))
	case errors.Is(err, mail.ErrNotConfigured):
		c.JSON(http.StatusUnprocessableEntity, apierror.New("Email delivery is not configured in settings"))
	default:
		c.JSON(http.StatusInternalServerError, apierror.New("Internal server error"))
	}
}
