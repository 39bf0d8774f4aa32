package password_test

import (
	"strings"
	"testing"

	"hotelinv/shared/password"

	"github.com/stretchr/testify/assert"
)

func TestHash(t *testing.T) {
	tests := []struct {
		name    string
		plain   string
		wantErr error
	}{
		{name: "operator password", plain: "reception-2024"},
		{name: "vietnamese characters", plain: "mậtkhẩu-lễtân"},
		{name: "exactly the bcrypt limit", plain: strings.Repeat("a", password.MaxLength)},
		{name: "empty", plain: "", wantErr: password.ErrEmptyPassword},
		{name: "over the bcrypt limit", plain: strings.Repeat("a", password.MaxLength+1), wantErr: password.ErrTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hashed, err := password.Hash(tt.plain)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, hashed)

				return
			}

			assert.NoError(t, err)
			assert.NotEqual(t, tt.plain, hashed)
			assert.NoError(t, password.Verify(tt.plain, hashed))
		})
	}
}

func TestHashIsSalted(t *testing.T) {
	first, err := password.Hash("same-secret")
	assert.NoError(t, err)

	second, err := password.Hash("same-secret")
	assert.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestVerify(t *testing.T) {
	hashed, err := password.Hash("front-desk-pass")
	assert.NoError(t, err)

	tests := []struct {
		name        string
		plain       string
		hashed      string
		wantInvalid bool
		wantErr     bool
	}{
		{name: "match", plain: "front-desk-pass", hashed: hashed},
		{name: "wrong password", plain: "front-desk-pas", hashed: hashed, wantInvalid: true, wantErr: true},
		{name: "empty password", plain: "", hashed: hashed, wantInvalid: true, wantErr: true},
		{name: "empty hash", plain: "front-desk-pass", hashed: "", wantInvalid: true, wantErr: true},
		{name: "corrupt hash", plain: "front-desk-pass", hashed: "not-a-bcrypt-hash", wantErr: true},
		{name: "truncated hash", plain: "front-desk-pass", hashed: hashed[:20], wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := password.Verify(tt.plain, tt.hashed)

			assert.Equal(t, tt.wantErr, err != nil)
			assert.Equal(t, tt.wantInvalid, err != nil && err == password.ErrInvalidPassword) //nolint:errorlint
		})
	}
}
