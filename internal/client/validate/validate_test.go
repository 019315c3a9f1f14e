package validate

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/avendano-dev/backoffice/internal/client/models"
	"github.com/avendano-dev/backoffice/internal/common"
)

func TestStruct_UserCreate(t *testing.T) {
	valid := models.UserCreate{
		Email:     "a@x.com",
		Username:  "ana",
		Password:  "secret123",
		FirstName: "Ana",
		LastName:  "Flores",
	}
	require.NoError(t, Struct(valid))

	shortPassword := valid
	shortPassword.Password = "short"
	err := Struct(shortPassword)
	require.ErrorIs(t, err, common.ErrValidation)
	require.ErrorContains(t, err, "Password")

	badEmail := valid
	badEmail.Email = "not-an-email"
	require.ErrorIs(t, Struct(badEmail), common.ErrValidation)

	missing := valid
	missing.FirstName = ""
	require.ErrorIs(t, Struct(missing), common.ErrValidation)
}

func TestStruct_CustomerRanges(t *testing.T) {
	negative := -1.0
	up := models.CustomerUpdate{CreditLimit: &negative}
	require.ErrorIs(t, Struct(up), common.ErrValidation)

	tooBig := 101.0
	up = models.CustomerUpdate{DiscountPercentage: &tooBig}
	require.ErrorIs(t, Struct(up), common.ErrValidation)

	fine := 15.5
	up = models.CustomerUpdate{DiscountPercentage: &fine}
	require.NoError(t, Struct(up))
}

func TestStruct_LoginRequest(t *testing.T) {
	require.NoError(t, Struct(models.LoginRequest{Email: "a@x.com", Password: "secret1"}))
	require.ErrorIs(t, Struct(models.LoginRequest{Email: "a@x.com"}), common.ErrValidation)
	require.ErrorIs(t, Struct(models.LoginRequest{Password: "secret1"}), common.ErrValidation)
}
