package http

import (
	"net/http"
	"slices"
	"strings"

	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const principalContextKey = "principal"

// Policy names the roles allowed on a route. A policy without roles admits any
// authenticated caller.
type Policy struct {
	Name  string
	Roles []string
}

var (
	PolicyAuthenticated = Policy{Name: "Authenticated"}
	PolicyOrdersRead    = Policy{Name: "OrdersRead", Roles: []string{ports.RoleAdmin, ports.RoleSales, ports.RoleViewer}}
	PolicyOrdersWrite   = Policy{Name: "OrdersWrite", Roles: []string{ports.RoleAdmin, ports.RoleSales}}
	PolicyCatalogWrite  = Policy{Name: "CatalogWrite", Roles: []string{ports.RoleAdmin, ports.RoleCatalogManager}}
	PolicyCustomerWrite = Policy{Name: "CustomerWrite", Roles: []string{ports.RoleAdmin, ports.RoleSales}}
)

func (p Policy) Allows(roles []string) bool {
	if len(p.Roles) == 0 {
		return true
	}
	for _, role := range roles {
		if slices.Contains(p.Roles, role) {
			return true
		}
	}
	return false
}

// RoutePolicies maps "METHOD path" of every protected route to its policy.
// Routes that are not listed are anonymous.
func RoutePolicies() map[string]Policy {
	return map[string]Policy{
		"POST /api/v1/auth/revoke": PolicyAuthenticated,

		"GET /api/v1/orders":                  PolicyOrdersRead,
		"GET /api/v1/orders/:orderId":         PolicyOrdersRead,
		"POST /api/v1/orders":                 PolicyOrdersWrite,
		"POST /api/v1/orders/:orderId/cancel": PolicyOrdersWrite,
		"POST /api/v1/orders/:orderId/status": PolicyOrdersWrite,

		"GET /api/v1/customers":             PolicyOrdersRead,
		"GET /api/v1/customers/:customerId": PolicyOrdersRead,
		"POST /api/v1/customers":            PolicyCustomerWrite,

		"GET /api/v1/products":            PolicyOrdersRead,
		"GET /api/v1/products/:productId": PolicyOrdersRead,
		"POST /api/v1/products":           PolicyCatalogWrite,
	}
}

func routeKey(c echo.Context) string {
	return c.Request().Method + " " + c.Path()
}

// Authorize authenticates the bearer token of requests to protected routes and checks the
// caller's roles against the route policy.
func Authorize(tokens ports.TokenService, policies map[string]Policy) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			policy, ok := policies[routeKey(c)]
			if !ok {
				return next(c)
			}

			raw, err := bearerToken(c.Request())
			if err != nil {
				return err
			}

			claims, err := tokens.ParseAccessToken(raw)
			if err != nil {
				return err
			}

			if !policy.Allows(claims.Roles) {
				return echo.NewHTTPError(http.StatusForbidden, "The caller lacks the role required by policy "+policy.Name+".")
			}

			c.Set(principalContextKey, claims)
			return next(c)
		}
	}
}

func bearerToken(r *http.Request) (string, error) {
	header := strings.TrimSpace(r.Header.Get(echo.HeaderAuthorization))
	if header == "" {
		return "", errs.NewUnauthenticatedError("missing authorization header")
	}

	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", errs.NewUnauthenticatedError("authorization header is not a bearer token")
	}
	return strings.TrimSpace(token), nil
}

// Principal returns the claims of the authenticated caller, if any.
func Principal(c echo.Context) (ports.AccessTokenClaims, bool) {
	claims, ok := c.Get(principalContextKey).(ports.AccessTokenClaims)
	return claims, ok
}
