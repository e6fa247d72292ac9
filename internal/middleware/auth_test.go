// internal/middleware/auth_test.go
package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/typackaging/backend/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func roleTestContext(role string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/v1/products", nil)
	if role != "" {
		c.Set("user_role", role)
	}
	return c, w
}

func TestRoleRequiredAllowsListedRole(t *testing.T) {
	c, w := roleTestContext(string(models.UserRoleAdmin))

	RoleRequired(models.UserRoleOwner, models.UserRoleAdmin)(c)

	assert.False(t, c.IsAborted())
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRoleRequiredRejectsBuyerWithForbiddenEnvelope(t *testing.T) {
	c, w := roleTestContext(string(models.UserRoleBuyer))

	RoleRequired(models.UserRoleOwner, models.UserRoleAdmin)(c)

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "FORBIDDEN")
}

func TestRoleRequiredRejectsMissingRole(t *testing.T) {
	c, w := roleTestContext("")

	RoleRequired(models.UserRoleOwner)(c)

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusForbidden, w.Code)
}
