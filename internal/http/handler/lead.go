package handler

import (
	"bytes"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"leadintake/internal/service"
)

// processLeadRequest distinguishes a missing field (nil) from an empty one,
// so empty strings and an empty tech_used list pass validation.
type processLeadRequest struct {
	FirstName   *string  `json:"first_name" query:"first_name" validate:"required"`
	LastName    *string  `json:"last_name" query:"last_name" validate:"required"`
	CompanyName *string  `json:"company_name" query:"company_name" validate:"required"`
	Budget      *string  `json:"budget" query:"budget" validate:"required"`
	Timeline    *string  `json:"timeline" query:"timeline" validate:"required"`
	TechUsed    []string `json:"tech_used" query:"tech_used" validate:"required"`
}

func (r processLeadRequest) toInput() service.LeadInput {
	return service.LeadInput{
		FirstName:   *r.FirstName,
		LastName:    *r.LastName,
		CompanyName: *r.CompanyName,
		Budget:      *r.Budget,
		Timeline:    *r.Timeline,
		TechUsed:    r.TechUsed,
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their wire name.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// bindProcessLead reads query parameters first, then lets a non-empty body
// override them. A body that is a bare JSON array is the tech_used list,
// with the other fields taken from the query. Any binding or validation
// problem is a 422.
func bindProcessLead(c *fiber.Ctx) (*processLeadRequest, error) {
	var req processLeadRequest
	if err := c.QueryParser(&req); err != nil {
		return nil, fiber.NewError(fiber.StatusUnprocessableEntity, "invalid query parameters")
	}

	body := bytes.TrimSpace(c.Body())
	switch {
	case len(body) == 0:
	case body[0] == '[':
		var techUsed []string
		if err := c.App().Config().JSONDecoder(body, &techUsed); err != nil {
			return nil, fiber.NewError(fiber.StatusUnprocessableEntity, "invalid request body")
		}
		req.TechUsed = techUsed
	default:
		if err := c.BodyParser(&req); err != nil {
			return nil, fiber.NewError(fiber.StatusUnprocessableEntity, "invalid request body")
		}
	}

	if err := validate.Struct(req); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			missing := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				missing = append(missing, fe.Field())
			}
			return nil, fiber.NewError(fiber.StatusUnprocessableEntity,
				fmt.Sprintf("missing required fields: %s", strings.Join(missing, ", ")))
		}
		return nil, fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	}
	return &req, nil
}

// ProcessLead handles POST /process-lead.
//
//	@Summary	Receive lead intake data
//	@Tags		leads
//	@Accept		json
//	@Produce	json
//	@Param		lead	body		processLeadRequest	true	"Lead intake fields"
//	@Success	200		{object}	model.ProcessLeadResponse
//	@Failure	422		{object}	errorPayload
//	@Failure	500		{object}	errorPayload
//	@Router		/process-lead [post]
func ProcessLead(svc service.LeadService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		req, err := bindProcessLead(c)
		if err != nil {
			return err
		}

		res := svc.ProcessLead(c.UserContext(), req.toInput())
		if err := c.Status(fiber.StatusOK).JSON(res); err != nil {
			return writeError(c, fiber.StatusInternalServerError, err.Error())
		}
		return nil
	}
}
