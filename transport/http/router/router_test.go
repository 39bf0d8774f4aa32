package router_test

import (
	"net/http"
	"slices"
	"testing"

	"hotelinv/permissions"
	"hotelinv/shared/constant"
	"hotelinv/transport/http/router"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func routes(t *testing.T) chi.Router {
	t.Helper()

	r := router.New(router.DomainHandlers{})
	mux := chi.NewRouter()
	r.SetupRoutes(mux)

	return mux
}

func TestEveryRouteHasPermissions(t *testing.T) {
	perms := permissions.Get()
	assert.NotNil(t, perms)

	count := 0
	err := chi.Walk(routes(t), func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		count++
		perm := perms.FindPermissions(route, method)

		assert.Truef(t, perm.Skip || len(perm.Permissions) > 0, "%s %s has no permission entry", method, route)

		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, len(perms.Endpoints), count)
}

func TestPermissions(t *testing.T) {
	perms := permissions.Get()

	tests := []struct {
		name    string
		path    string
		method  string
		skip    bool
		allowed []string
		denied  []string
	}{
		{name: "login is public", path: "/v1/auth/login", method: http.MethodPost, skip: true},
		{name: "refresh is public", path: "/v1/auth/refresh", method: http.MethodPost, skip: true},
		{
			name:    "operators are manager only",
			path:    "/v1/users/{id}",
			method:  http.MethodPatch,
			allowed: []string{constant.RoleManager},
			denied:  []string{constant.RoleStaff},
		},
		{
			name:    "staff manage bookings",
			path:    "/v1/bookings/{id}",
			method:  http.MethodPut,
			allowed: []string{constant.RoleManager, constant.RoleStaff},
		},
		{
			name:    "template reset is manager only",
			path:    "/v1/templates/reset",
			method:  http.MethodPost,
			allowed: []string{constant.RoleManager},
			denied:  []string{constant.RoleStaff},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			perm := perms.FindPermissions(tt.path, tt.method)

			assert.Equal(t, tt.skip, perm.Skip)
			for _, role := range tt.allowed {
				assert.True(t, slices.Contains(perm.Permissions, role))
			}
			for _, role := range tt.denied {
				assert.False(t, slices.Contains(perm.Permissions, role))
			}
		})
	}

	assert.Empty(t, perms.FindPermissions("/v1/unknown", http.MethodGet).Permissions)
}
