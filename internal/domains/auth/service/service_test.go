package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hotelinv/config"
	"hotelinv/infras/jwt"
	jwtMocks "hotelinv/infras/jwt/mocks"
	"hotelinv/infras/otel/mocks"
	"hotelinv/internal/domains/auth/model/dto"
	"hotelinv/internal/domains/auth/service"
	"hotelinv/internal/domains/session"
	userMocks "hotelinv/internal/domains/user/mocks"
	userModel "hotelinv/internal/domains/user/model"
	"hotelinv/shared/constant"
	"hotelinv/shared/failure"
	gModel "hotelinv/shared/model"
	"hotelinv/shared/timezone"
)

// passwordHash is the bcrypt hash of "password".
const passwordHash = "$2a$10$92IXUNpkjO0rOQ5byMi.Ye4oKoEa3Ro9llC/.og/at2.uheWG/igi"

func validUser() userModel.User {
	return userModel.User{
		ID:       "user-id-123",
		Email:    "test@example.com",
		Password: passwordHash,
		Role:     constant.RoleStaff,
		FullName: stringPtr("Test User"),
		Active:   true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "system",
			ModifiedBy: "system",
		},
	}
}

func stringPtr(s string) *string {
	return &s
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)

	cfg := &config.Config{}
	sessions := session.NewRegistry(cfg)

	svc := service.New(mockUserRepo, sessions, cfg, mocks.NewOtel(), mockJWT)

	tokenPair := &jwt.TokenPair{AccessToken: "access-token", RefreshToken: "refresh-token", ExpiresIn: 900}

	tests := []struct {
		name         string
		req          dto.LoginRequest
		setupMock    func()
		wantCode     int
		wantErr      bool
		wantSessions int
	}{
		{
			name: "successful login opens a session",
			req:  dto.LoginRequest{Email: "test@example.com", Password: "password"},
			setupMock: func() {
				mockUserRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(validUser(), nil)
				mockJWT.EXPECT().
					GenerateTokenPair(gomock.Any()).
					DoAndReturn(func(subject jwt.Subject) (*jwt.TokenPair, error) {
						assert.Equal(t, "user-id-123", subject.UserID)
						assert.Equal(t, constant.RoleStaff, subject.Role)
						assert.NotEmpty(t, subject.SessionID)
						return tokenPair, nil
					})
				mockUserRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
			wantSessions: 1,
		},
		{
			name: "last login failure does not block login",
			req:  dto.LoginRequest{Email: "test@example.com", Password: "password"},
			setupMock: func() {
				mockUserRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(validUser(), nil)
				mockJWT.EXPECT().GenerateTokenPair(gomock.Any()).Return(tokenPair, nil)
				mockUserRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("db down"))
			},
			wantSessions: 1,
		},
		{
			name: "unknown email",
			req:  dto.LoginRequest{Email: "nobody@example.com", Password: "password"},
			setupMock: func() {
				mockUserRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusUnauthorized,
		},
		{
			name: "wrong password",
			req:  dto.LoginRequest{Email: "test@example.com", Password: "wrongpassword"},
			setupMock: func() {
				mockUserRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(validUser(), nil)
			},
			wantErr:  true,
			wantCode: http.StatusUnauthorized,
		},
		{
			name: "inactive user",
			req:  dto.LoginRequest{Email: "test@example.com", Password: "password"},
			setupMock: func() {
				inactive := validUser()
				inactive.Active = false
				mockUserRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(inactive, nil)
			},
			wantErr:  true,
			wantCode: http.StatusForbidden,
		},
		{
			name: "token generation error closes the session",
			req:  dto.LoginRequest{Email: "test@example.com", Password: "password"},
			setupMock: func() {
				mockUserRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(validUser(), nil)
				mockJWT.EXPECT().GenerateTokenPair(gomock.Any()).Return(nil, errors.New("token generation failed"))
			},
			wantErr: true,
		},
		{
			name: "repository error",
			req:  dto.LoginRequest{Email: "test@example.com", Password: "password"},
			setupMock: func() {
				mockUserRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{}, errors.New("db down"))
			},
			wantErr:  true,
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := sessions.Len()
			tt.setupMock()

			res, err := svc.Login(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
				assert.Equal(t, before, sessions.Len())
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "access-token", res.AccessToken)
			assert.Equal(t, "test@example.com", res.User.Email)
			assert.NotEmpty(t, res.SessionID)
			assert.Equal(t, before+tt.wantSessions, sessions.Len())

			_, ok := sessions.Get(res.SessionID)
			assert.True(t, ok)
		})
	}
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name      string
		existing  int
		exists    bool
		wantRole  string
		wantErr   bool
		wantCode  int
		insertErr error
	}{
		{name: "first user becomes manager", existing: 0, wantRole: constant.RoleManager},
		{name: "later users are staff", existing: 3, wantRole: constant.RoleStaff},
		{name: "duplicate email", exists: true, wantErr: true, wantCode: http.StatusConflict},
		{name: "insert failure", existing: 1, wantRole: constant.RoleStaff, insertErr: errors.New("db down"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUserRepo := userMocks.NewMockUser(ctrl)
			cfg := &config.Config{}
			svc := service.New(mockUserRepo, session.NewRegistry(cfg), cfg, mocks.NewOtel(), jwtMocks.NewMockJWT(ctrl))

			mockUserRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(tt.exists, nil)
			if !tt.exists {
				mockUserRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(tt.existing, nil)
				mockUserRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, user userModel.User) error {
						assert.Equal(t, tt.wantRole, user.Role)
						assert.Equal(t, "new@example.com", user.Email)
						assert.NotEqual(t, "supersecret", user.Password)
						assert.True(t, user.Active)
						return tt.insertErr
					})
			}

			err := svc.Register(context.Background(), dto.RegisterRequest{
				Email:    "new@example.com",
				Password: "supersecret",
			})

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestAuthService_RefreshToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockJWT := jwtMocks.NewMockJWT(ctrl)
	cfg := &config.Config{}
	sessions := session.NewRegistry(cfg)

	svc := service.New(userMocks.NewMockUser(ctrl), sessions, cfg, mocks.NewOtel(), mockJWT)

	t.Run("resumes the session named by the token", func(t *testing.T) {
		mockJWT.EXPECT().
			RefreshTokens("refresh-token").
			Return(&jwt.TokenPair{AccessToken: "new-access"}, &jwt.Claims{UserID: "user-id-123", SessionID: "sess-1"}, nil)

		res, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "refresh-token"})

		assert.NoError(t, err)
		assert.Equal(t, "new-access", res.AccessToken)
		assert.Equal(t, "sess-1", res.SessionID)

		sess, ok := sessions.Get("sess-1")
		assert.True(t, ok)
		assert.Equal(t, "user-id-123", sess.UserID)
	})

	t.Run("invalid token", func(t *testing.T) {
		mockJWT.EXPECT().RefreshTokens("bad").Return(nil, nil, jwt.ErrInvalidToken)

		_, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "bad"})

		assert.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
	})
}

func TestAuthService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := &config.Config{}
	sessions := session.NewRegistry(cfg)
	svc := service.New(userMocks.NewMockUser(ctrl), sessions, cfg, mocks.NewOtel(), jwtMocks.NewMockJWT(ctrl))

	sess := sessions.Open("user-id-123")
	ctx := context.WithValue(context.Background(), constant.ContextKeySessionID, sess.ID)

	assert.NoError(t, svc.Logout(ctx))
	assert.Equal(t, 0, sessions.Len())

	err := svc.Logout(context.Background())
	assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
}

func TestAuthService_ChangePassword(t *testing.T) {
	userCtx := context.WithValue(context.Background(), constant.ContextKeyUserID, "user-id-123")

	tests := []struct {
		name      string
		ctx       context.Context
		req       dto.ChangePasswordRequest
		setupMock func(repo *userMocks.MockUser)
		wantCode  int
	}{
		{
			name: "password changed",
			ctx:  userCtx,
			req:  dto.ChangePasswordRequest{CurrentPassword: "password", NewPassword: "newpassword"},
			setupMock: func(repo *userMocks.MockUser) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(validUser(), nil)
				repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
						assert.Contains(t, fields, userModel.FieldPassword)
						assert.Equal(t, "test@example.com", fields[constant.FieldModifiedBy])
						return nil
					})
			},
		},
		{
			name: "wrong current password",
			ctx:  userCtx,
			req:  dto.ChangePasswordRequest{CurrentPassword: "nope", NewPassword: "newpassword"},
			setupMock: func(repo *userMocks.MockUser) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(validUser(), nil)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "user gone",
			ctx:  userCtx,
			req:  dto.ChangePasswordRequest{CurrentPassword: "password", NewPassword: "newpassword"},
			setupMock: func(repo *userMocks.MockUser) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name:      "anonymous caller",
			ctx:       context.Background(),
			req:       dto.ChangePasswordRequest{CurrentPassword: "password", NewPassword: "newpassword"},
			setupMock: func(*userMocks.MockUser) {},
			wantCode:  http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := userMocks.NewMockUser(ctrl)
			cfg := &config.Config{}
			svc := service.New(repo, session.NewRegistry(cfg), cfg, mocks.NewOtel(), jwtMocks.NewMockJWT(ctrl))

			tt.setupMock(repo)

			err := svc.ChangePassword(tt.ctx, tt.req)

			if tt.wantCode == 0 {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tt.wantCode, failure.GetCode(err))
		})
	}
}
