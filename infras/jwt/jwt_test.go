package jwt_test

import (
	"testing"

	"hotelinv/config"
	"hotelinv/infras/jwt"

	"github.com/stretchr/testify/assert"
)

func newService() jwt.JWT {
	cfg := &config.Config{}
	cfg.App.Name = "hotelinv"
	cfg.JWT.AccessSecret = "access-secret"
	cfg.JWT.RefreshSecret = "refresh-secret"
	cfg.JWT.AccessExpireMin = 15
	cfg.JWT.RefreshExpireMin = 60

	return jwt.New(cfg)
}

func TestGenerateAndValidate(t *testing.T) {
	svc := newService()
	subject := jwt.Subject{UserID: "u-1", Email: "desk@hotel.vn", Role: "manager", SessionID: "s-1"}

	pair, err := svc.GenerateTokenPair(subject)
	assert.NoError(t, err)
	assert.Equal(t, "Bearer", pair.TokenType)
	assert.Equal(t, int64(900), pair.ExpiresIn)

	claims, err := svc.ValidateToken(pair.AccessToken, jwt.AccessToken)
	assert.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "s-1", claims.SessionID)
	assert.Equal(t, "manager", claims.Role)

	_, err = svc.ValidateToken(pair.AccessToken, jwt.RefreshToken)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)

	_, err = svc.ValidateToken("not-a-token", jwt.AccessToken)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestRefreshKeepsSession(t *testing.T) {
	svc := newService()

	pair, err := svc.GenerateTokenPair(jwt.Subject{UserID: "u-1", Email: "desk@hotel.vn", Role: "staff", SessionID: "s-42"})
	assert.NoError(t, err)

	refreshed, claims, err := svc.RefreshTokens(pair.RefreshToken)
	assert.NoError(t, err)
	assert.Equal(t, "s-42", claims.SessionID)

	access, err := svc.ValidateToken(refreshed.AccessToken, jwt.AccessToken)
	assert.NoError(t, err)
	assert.Equal(t, "s-42", access.SessionID)

	_, _, err = svc.RefreshTokens(pair.AccessToken)
	assert.Error(t, err)
}

func TestExtractTokenFromHeader(t *testing.T) {
	token, err := jwt.ExtractTokenFromHeader("Bearer abc.def")
	assert.NoError(t, err)
	assert.Equal(t, "abc.def", token)

	_, err = jwt.ExtractTokenFromHeader("")
	assert.Error(t, err)

	_, err = jwt.ExtractTokenFromHeader("Basic abc")
	assert.Error(t, err)
}

func TestExtractTokenFromHeaderForms(t *testing.T) {
	tests := map[string]string{
		"bearer abc":      "abc",
		"  Bearer  abc  ": "abc",
		"Bearer":          "",
		"Bearer ":         "",
		"Token abc":       "",
	}

	for header, want := range tests {
		token, err := jwt.ExtractTokenFromHeader(header)
		if want == "" {
			assert.ErrorIs(t, err, jwt.ErrMalformedHeader, header)

			continue
		}

		assert.NoError(t, err, header)
		assert.Equal(t, want, token, header)
	}
}

func TestValidateRejectsForeignIssuer(t *testing.T) {
	pair, err := newService().GenerateTokenPair(jwt.Subject{UserID: "u-1", Email: "desk@hotel.vn", SessionID: "s-1"})
	assert.NoError(t, err)

	cfg := &config.Config{}
	cfg.App.Name = "another-app"
	cfg.JWT.AccessSecret = "access-secret"

	_, err = jwt.New(cfg).ValidateToken(pair.AccessToken, jwt.AccessToken)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}
