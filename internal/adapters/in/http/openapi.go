package http

import (
	"errors"
	"net/http"
	"strings"
	"sync"

	"ordering/internal/generated/servers"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

// RequestValidator checks requests to documented operations against the OpenAPI document.
// Requests the document does not describe pass through untouched.
func RequestValidator(swagger *openapi3.T) (echo.MiddlewareFunc, error) {
	// Paths are matched on any host.
	swagger.Servers = nil

	router, err := gorillamux.NewRouter(swagger)
	if err != nil {
		return nil, err
	}

	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
		MultiError:         true,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			route, pathParams, err := router.FindRoute(req)
			if err != nil {
				return next(c)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if err := openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				return newRequestValidationError(validationDetails(err)...)
			}
			return next(c)
		}
	}, nil
}

func validationDetails(err error) []string {
	var multi openapi3.MultiError
	if !errors.As(err, &multi) {
		return []string{requestErrorDetail(err)}
	}

	out := make([]string, 0, len(multi))
	for _, e := range multi {
		out = append(out, validationDetails(e)...)
	}
	return out
}

func requestErrorDetail(err error) string {
	var reqErr *openapi3filter.RequestError
	if errors.As(err, &reqErr) {
		if reqErr.Parameter != nil {
			return "parameter " + reqErr.Parameter.Name + ": " + reqErr.Reason + causeSuffix(reqErr.Err)
		}
		if reqErr.RequestBody != nil {
			return "request body: " + causeText(reqErr)
		}
	}
	return err.Error()
}

func causeText(reqErr *openapi3filter.RequestError) string {
	var schemaErr *openapi3.SchemaError
	if errors.As(reqErr.Err, &schemaErr) {
		return schemaErr.Reason + schemaField(schemaErr)
	}
	if reqErr.Reason != "" {
		return reqErr.Reason
	}
	if reqErr.Err != nil {
		return reqErr.Err.Error()
	}
	return "invalid"
}

func schemaField(schemaErr *openapi3.SchemaError) string {
	path := schemaErr.JSONPointer()
	if len(path) == 0 {
		return ""
	}
	return " (" + strings.Join(path, ".") + ")"
}

func causeSuffix(err error) string {
	var schemaErr *openapi3.SchemaError
	if errors.As(err, &schemaErr) {
		return ": " + schemaErr.Reason
	}
	return ""
}

type swaggerDoc struct{}

func (swaggerDoc) ReadDoc() string {
	return string(servers.RawSpec())
}

var registerSwaggerOnce sync.Once

// SwaggerHandler serves the Swagger UI and the OpenAPI document at doc.json.
func SwaggerHandler() echo.HandlerFunc {
	registerSwaggerOnce.Do(func() {
		swag.Register(swag.Name, swaggerDoc{})
	})
	return echoSwagger.WrapHandler
}

func healthCheck(c echo.Context) error {
	return c.String(http.StatusOK, "Healthy")
}
