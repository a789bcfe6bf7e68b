package chef

import (
	"context"
	"testing"

	"HomeChef-Backend/domain"
	"HomeChef-Backend/entities"
	"HomeChef-Backend/internal/utils/testdb"
	"HomeChef-Backend/pkg/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func ptr[T any](v T) *T { return &v }

func newService(t *testing.T) (*gorm.DB, ChefService) {
	t.Helper()
	db := testdb.New(t)
	return db, NewChefService(NewChefRepository(db), user.NewUserRepository(db))
}

func seedChef(t *testing.T, db *gorm.DB, balance float64) entities.User {
	t.Helper()
	u := entities.User{FirstName: "Chef", Email: "chef@example.com", UserType: domain.RoleChef, Balance: balance}
	require.NoError(t, db.Create(&u).Error)
	return u
}

func reload(t *testing.T, db *gorm.DB, id any) entities.User {
	t.Helper()
	var u entities.User
	require.NoError(t, db.First(&u, "id = ?", id).Error)
	return u
}

func TestOnboardTurnsCustomerIntoChef(t *testing.T) {
	db, svc := newService(t)
	u := entities.User{FirstName: "Rina", Email: "rina@example.com", UserType: domain.RoleCustomer}
	require.NoError(t, db.Create(&u).Error)

	res, err := svc.Onboard(context.Background(), domain.OnboardRequest{
		About:              "Home cooked Padang food",
		Address:            "Jl. Merdeka 10",
		CurrentLat:         ptr(-6.2),
		CurrentLng:         ptr(106.8),
		AvailabilityPickup: []entities.AvailabilitySlot{{Day: "mon", Start: "09:00", End: "17:00"}},
	}, u.ID.String())
	require.NoError(t, err)
	assert.Equal(t, domain.RoleChef, res.UserType)

	stored := reload(t, db, u.ID)
	assert.True(t, stored.IsChef())
	assert.Equal(t, domain.RestStatusAvailable, stored.RestStatus)
	require.Len(t, stored.AvailabilityPickup, 1)
	assert.Equal(t, "mon", stored.AvailabilityPickup[0].Day)
}

func TestUpdateStatusChefOnly(t *testing.T) {
	db, svc := newService(t)
	ctx := context.Background()
	chef := seedChef(t, db, 0)

	res, err := svc.UpdateStatus(ctx, domain.UpdateChefStatusRequest{Status: domain.RestStatusBusy}, chef.ID.String())
	require.NoError(t, err)
	assert.Equal(t, domain.RestStatusBusy, res.Status)
	assert.Equal(t, domain.RestStatusBusy, reload(t, db, chef.ID).RestStatus)

	customer := entities.User{FirstName: "C", Email: "c@example.com", UserType: domain.RoleCustomer}
	require.NoError(t, db.Create(&customer).Error)
	_, err = svc.UpdateStatus(ctx, domain.UpdateChefStatusRequest{Status: domain.RestStatusBusy}, customer.ID.String())
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestWithdrawRequiresBankDetails(t *testing.T) {
	db, svc := newService(t)
	chef := seedChef(t, db, 100)

	_, err := svc.RequestWithdrawal(context.Background(), domain.WithdrawRequest{Amount: 10}, chef.ID.String())
	assert.ErrorIs(t, err, domain.ErrBankDetailsMissing)
}

func TestWithdrawDebitsBalance(t *testing.T) {
	db, svc := newService(t)
	ctx := context.Background()
	chef := seedChef(t, db, 100)

	_, err := svc.UpdateBankDetails(ctx, domain.BankDetailsRequest{
		PaymentMethod: "bank_transfer",
		AccountName:   "Chef",
		AccountNumber: "1234567890",
		BankName:      "BCA",
	}, chef.ID.String())
	require.NoError(t, err)

	res, err := svc.RequestWithdrawal(ctx, domain.WithdrawRequest{Amount: 40}, chef.ID.String())
	require.NoError(t, err)
	assert.Equal(t, 60.0, res.AvailableBalance)
	assert.Equal(t, domain.WithdrawStatusPending, res.Withdraw.Status)
	assert.Equal(t, "BCA", res.Withdraw.BankDetails.BankName)
	assert.Equal(t, 60.0, reload(t, db, chef.ID).Balance)

	list, err := svc.GetWithdrawals(ctx, domain.PaginationRequest{}, chef.ID.String())
	require.NoError(t, err)
	require.Len(t, list.Withdrawals, 1)
	assert.Equal(t, 40.0, list.Withdrawals[0].Amount)
}

func TestWithdrawInsufficientBalance(t *testing.T) {
	db, svc := newService(t)
	ctx := context.Background()
	chef := seedChef(t, db, 25)
	_, err := svc.UpdateBankDetails(ctx, domain.BankDetailsRequest{PaymentMethod: "bank", AccountName: "C", AccountNumber: "1"}, chef.ID.String())
	require.NoError(t, err)

	_, err = svc.RequestWithdrawal(ctx, domain.WithdrawRequest{Amount: 30}, chef.ID.String())
	var insufficient *domain.InsufficientBalanceError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, 25.0, insufficient.Available)
	assert.ErrorIs(t, err, domain.ErrInvalidState)

	assert.Equal(t, 25.0, reload(t, db, chef.ID).Balance)

	var count int64
	db.Model(&entities.Withdraw{}).Count(&count)
	assert.Equal(t, int64(0), count)
}
