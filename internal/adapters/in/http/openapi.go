package http

import (
	_ "embed"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/labstack/echo/v4"
)

// contractYML is the API contract mutating requests are validated against
// before any command handler runs. Shipping it inside the binary keeps the
// server and its contract in lockstep.
//
//go:embed contract.yml
var contractYML []byte

// newRequestValidator builds middleware that checks incoming requests
// against the embedded contract. Requests whose path is not in the contract
// pass through untouched; contract violations are rejected with 400 before
// reaching the application core.
func newRequestValidator() (echo.MiddlewareFunc, error) {
	loader := openapi3.NewLoader()

	doc, err := loader.LoadFromData(contractYML)
	if err != nil {
		return nil, fmt.Errorf("load api contract: %w", err)
	}
	if err := doc.Validate(loader.Context); err != nil {
		return nil, fmt.Errorf("validate api contract: %w", err)
	}

	router, err := gorillamux.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("build contract router: %w", err)
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			req := ctx.Request()

			route, pathParams, err := router.FindRoute(req)
			if err != nil {
				if err == routers.ErrPathNotFound || err == routers.ErrMethodNotAllowed {
					return next(ctx)
				}
				return failWithStatus(ctx, http.StatusBadRequest, err.Error())
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
			}
			if err := openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				return failWithStatus(ctx, http.StatusBadRequest, err.Error())
			}

			return next(ctx)
		}
	}, nil
}
