//go:build unit

package user_test

import (
	"testing"

	"slotdesk/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {
		email, err := user.NewEmail("member@example.com")
		require.NoError(t, err)
		assert.Equal(t, "member@example.com", email.Value())
	})

	t.Run("前後の空白はトリムされる", func(t *testing.T) {
		email, err := user.NewEmail("  member@example.com  ")
		require.NoError(t, err)
		assert.Equal(t, "member@example.com", email.Value())
	})

	t.Run("不正なメールアドレス", func(t *testing.T) {
		cases := []string{"", "plainaddress", "@example.com", "user@", "user@example"}
		for _, input := range cases {
			_, err := user.NewEmail(input)
			assert.ErrorIs(t, err, user.ErrInvalidEmail, "input=%q", input)
		}
	})
}

func TestNewPassword(t *testing.T) {
	t.Run("8文字以上は有効", func(t *testing.T) {
		_, err := user.NewPassword("password123")
		assert.NoError(t, err)
	})

	t.Run("ちょうど8文字は有効", func(t *testing.T) {
		_, err := user.NewPassword("12345678")
		assert.NoError(t, err)
	})

	t.Run("7文字以下は弱すぎる", func(t *testing.T) {
		_, err := user.NewPassword("1234567")
		assert.ErrorIs(t, err, user.ErrPasswordTooWeak)
	})
}

func TestNewCredentials(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {
		creds, err := user.NewCredentials("member@example.com", "password123")
		require.NoError(t, err)
		assert.Equal(t, "member@example.com", creds.Email().Value())
		assert.Equal(t, "password123", creds.Password().Value())
	})

	t.Run("メールアドレスの検証が先に走る", func(t *testing.T) {
		_, err := user.NewCredentials("bad", "short")
		assert.ErrorIs(t, err, user.ErrInvalidEmail)
	})

	t.Run("パスワードの検証", func(t *testing.T) {
		_, err := user.NewCredentials("member@example.com", "short")
		assert.ErrorIs(t, err, user.ErrPasswordTooWeak)
	})
}

func TestRole(t *testing.T) {
	t.Run("有効なロール", func(t *testing.T) {
		for _, s := range []string{"member", "admin"} {
			role, err := user.NewRole(s)
			require.NoError(t, err)
			assert.Equal(t, s, role.String())
		}
	})

	t.Run("不正なロール", func(t *testing.T) {
		_, err := user.NewRole("superuser")
		assert.ErrorIs(t, err, user.ErrInvalidRole)
	})

	t.Run("管理者判定", func(t *testing.T) {
		assert.True(t, user.RoleAdmin.IsAdmin())
		assert.False(t, user.RoleMember.IsAdmin())
	})
}
