package notification

import (
	"context"
	"errors"
	"testing"

	"HomeChef-Backend/domain"
	"HomeChef-Backend/entities"
	"HomeChef-Backend/internal/utils/testdb"
	"HomeChef-Backend/pkg/push"
	"HomeChef-Backend/pkg/push/pushtest"
	"HomeChef-Backend/pkg/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedUser(t *testing.T, db *gorm.DB, userType string, tokens ...string) entities.User {
	t.Helper()
	u := entities.User{FirstName: "N", Email: userType + "-" + t.Name() + "@example.com", UserType: userType}
	require.NoError(t, db.Create(&u).Error)
	for _, tok := range tokens {
		require.NoError(t, db.Create(&entities.Device{UserID: u.ID, RegistrationID: tok, Platform: "android", Model: "x"}).Error)
	}
	return u
}

func newService(db *gorm.DB, gw *pushtest.Recorder) NotificationService {
	return NewNotificationService(NewNotificationRepository(db), user.NewUserRepository(db), gw)
}

func TestNotifyPersistsAndPushes(t *testing.T) {
	db := testdb.New(t)
	gw := pushtest.NewRecorder()
	svc := newService(db, gw)
	ctx := context.Background()

	customer := seedUser(t, db, domain.RoleCustomer, "tok-a", "tok-b")

	svc.Notify(ctx, domain.NotifyRequest{
		RecipientID: customer.ID.String(),
		Audience:    domain.AudienceCustomer,
		Title:       "Order accepted",
		Body:        "Your order is accepted",
		Type:        domain.NotificationTypeOrder,
		Persist:     true,
	})

	sent := gw.Sent()
	require.Len(t, sent, 1)
	assert.ElementsMatch(t, []string{"tok-a", "tok-b"}, sent[0].Tokens)
	assert.Equal(t, domain.NotificationTypeOrder, sent[0].Msg.Data["type"])

	list, err := svc.GetNotifications(ctx, domain.GetNotificationsRequest{}, customer.ID.String())
	require.NoError(t, err)
	require.Len(t, list.Notifications, 1)
	assert.Equal(t, int64(1), list.UnseenCount)
	assert.Equal(t, "Order accepted", list.Notifications[0].Title)
}

func TestNotifySwallowsPushFailure(t *testing.T) {
	db := testdb.New(t)
	gw := pushtest.NewRecorder()
	gw.Err = errors.New("gateway down")
	svc := newService(db, gw)

	customer := seedUser(t, db, domain.RoleCustomer, "tok-a")

	assert.NotPanics(t, func() {
		svc.Notify(context.Background(), domain.NotifyRequest{
			RecipientID: customer.ID.String(),
			Audience:    domain.AudienceCustomer,
			Title:       "t",
			Type:        domain.NotificationTypeOrder,
			Persist:     true,
		})
	})

	var count int64
	require.NoError(t, db.Model(&entities.Notification{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSendToUserWithoutDevices(t *testing.T) {
	db := testdb.New(t)
	svc := newService(db, pushtest.NewRecorder())
	u := seedUser(t, db, domain.RoleCustomer)

	_, err := svc.SendToUser(context.Background(), u.ID.String(), pushMessage())
	assert.ErrorIs(t, err, domain.ErrNoDeviceTokens)
}

func TestChefNotificationsFilterAndMarkSeen(t *testing.T) {
	db := testdb.New(t)
	svc := newService(db, pushtest.NewRecorder())
	ctx := context.Background()
	chef := seedUser(t, db, domain.RoleChef)

	svc.Notify(ctx, domain.NotifyRequest{RecipientID: chef.ID.String(), Audience: domain.AudienceChef, Title: "order", Type: domain.NotificationTypeOrder, Persist: true})
	svc.Notify(ctx, domain.NotifyRequest{RecipientID: chef.ID.String(), Audience: domain.AudienceChef, Title: "news", Type: domain.NotificationTypeNews, Persist: true})

	list, err := svc.GetNotifications(ctx, domain.GetNotificationsRequest{Type: domain.NotificationTypeNews}, chef.ID.String())
	require.NoError(t, err)
	require.Len(t, list.Notifications, 1)
	assert.Equal(t, "news", list.Notifications[0].Title)
	assert.Equal(t, int64(2), list.UnseenCount)

	marked, err := svc.MarkAsSeen(ctx, domain.MarkNotificationsRequest{}, chef.ID.String())
	require.NoError(t, err)
	assert.Equal(t, int64(2), marked.UpdatedCount)

	list, err = svc.GetNotifications(ctx, domain.GetNotificationsRequest{Seen: "0"}, chef.ID.String())
	require.NoError(t, err)
	assert.Empty(t, list.Notifications)
}

func TestOnboardedChefKeepsCustomerNotifications(t *testing.T) {
	db := testdb.New(t)
	svc := newService(db, pushtest.NewRecorder())
	ctx := context.Background()
	u := seedUser(t, db, domain.RoleCustomer)

	svc.Notify(ctx, domain.NotifyRequest{RecipientID: u.ID.String(), Audience: domain.AudienceCustomer, Title: "delivered", Type: domain.NotificationTypeOrder, Persist: true})
	require.NoError(t, db.Model(&entities.User{}).Where("id = ?", u.ID).Update("user_type", domain.RoleChef).Error)
	svc.Notify(ctx, domain.NotifyRequest{RecipientID: u.ID.String(), Audience: domain.AudienceChef, Title: "new order", Type: domain.NotificationTypeOrder, Persist: true})

	list, err := svc.GetNotifications(ctx, domain.GetNotificationsRequest{}, u.ID.String())
	require.NoError(t, err)
	assert.Len(t, list.Notifications, 2)
	assert.Equal(t, int64(2), list.UnseenCount)

	marked, err := svc.MarkAsSeen(ctx, domain.MarkNotificationsRequest{}, u.ID.String())
	require.NoError(t, err)
	assert.Equal(t, int64(2), marked.UpdatedCount)

	other := seedUser(t, db, domain.RoleChef)
	list, err = svc.GetNotifications(ctx, domain.GetNotificationsRequest{}, other.ID.String())
	require.NoError(t, err)
	assert.Empty(t, list.Notifications)
}

func pushMessage() push.Message {
	return push.Message{Title: "hello", Body: "world"}
}
