package dish

import (
	"context"
	"encoding/json"
	"mime/multipart"
	"strings"
	"testing"

	"HomeChef-Backend/domain"
	"HomeChef-Backend/entities"
	"HomeChef-Backend/internal/utils/testdb"
	"HomeChef-Backend/pkg/review"
	"HomeChef-Backend/pkg/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const bucketURL = "https://bucket.s3.region.amazonaws.com/"

type fakeStorage struct {
	deleted []string
}

func (f *fakeStorage) UploadFile(string, *multipart.FileHeader, string, ...string) (string, error) {
	return "", nil
}

func (f *fakeStorage) UpdateFile(string, *multipart.FileHeader, ...string) (string, error) {
	return "", nil
}

func (f *fakeStorage) DeleteFile(objectKey string) error {
	f.deleted = append(f.deleted, objectKey)
	return nil
}

func (f *fakeStorage) GetObjectKeyFromLink(link string) string {
	if !strings.HasPrefix(link, bucketURL) {
		return ""
	}
	return strings.TrimPrefix(link, bucketURL)
}

func (f *fakeStorage) GetPublicLinkKey(objectKey string) string {
	return bucketURL + objectKey
}

type fixture struct {
	db      *gorm.DB
	service DishService
	storage *fakeStorage
	chef    entities.User
	cuisine entities.Cuisine
}

func ptr[T any](v T) *T { return &v }

func newFixture(t *testing.T) fixture {
	t.Helper()
	db := testdb.New(t)
	st := &fakeStorage{}

	chef := entities.User{FirstName: "Chef", Email: "chef@example.com", UserType: domain.RoleChef}
	require.NoError(t, db.Create(&chef).Error)

	var cuisine entities.Cuisine
	require.NoError(t, db.First(&cuisine).Error)

	svc := NewDishService(NewDishRepository(db), user.NewUserRepository(db), review.NewReviewRepository(db), st)
	return fixture{db: db, service: svc, storage: st, chef: chef, cuisine: cuisine}
}

func (f fixture) addDish(t *testing.T) domain.DishResponse {
	t.Helper()
	res, err := f.service.AddDish(context.Background(), domain.AddDishRequest{
		Name:      "Nasi Goreng",
		About:     "Fried rice",
		Keywords:  []string{"rice", "spicy"},
		Category:  "Main",
		CuisineID: f.cuisine.ID.String(),
		Price:     ptr(25.0),
		Images:    []string{bucketURL + "dishes/a.jpg", "https://elsewhere.example.com/b.jpg"},
		Sizes:     []entities.DishSize{{Name: "large", Price: 30}},
	}, f.chef.ID.String())
	require.NoError(t, err)
	return res
}

func TestAddDish(t *testing.T) {
	f := newFixture(t)

	res := f.addDish(t)
	assert.Equal(t, domain.DishTypeDish, res.DishType)
	assert.Equal(t, f.cuisine.Name, res.Cuisine)
	assert.Equal(t, []string{"rice", "spicy"}, res.Keywords)
	assert.Equal(t, 25.0, res.Price)
}

func TestAddDishRequiresChefAndCuisine(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	customer := entities.User{FirstName: "C", Email: "c@example.com", UserType: domain.RoleCustomer}
	require.NoError(t, f.db.Create(&customer).Error)

	req := domain.AddDishRequest{Name: "x", CuisineID: f.cuisine.ID.String(), Price: ptr(1.0)}
	_, err := f.service.AddDish(ctx, req, customer.ID.String())
	assert.ErrorIs(t, err, domain.ErrOnlyChef)

	req.CuisineID = "2b0b4a4e-0c55-4b51-9a1f-2d7a3c8f0e11"
	_, err = f.service.AddDish(ctx, req, f.chef.ID.String())
	assert.ErrorIs(t, err, domain.ErrCuisineNotFound)
}

func TestUpdateDishAppliesOnlyPresentFields(t *testing.T) {
	f := newFixture(t)
	created := f.addDish(t)

	var req domain.UpdateDishRequest
	require.NoError(t, json.Unmarshal([]byte(`{"price": 0, "about": null, "images": []}`), &req))

	updated, err := f.service.UpdateDish(context.Background(), created.ID, req, f.chef.ID.String())
	require.NoError(t, err)
	assert.Equal(t, 0.0, updated.Price)
	assert.Equal(t, "Fried rice", updated.About)
	assert.Equal(t, "Nasi Goreng", updated.Name)
	assert.Empty(t, updated.Images)
	assert.Equal(t, []string{"rice", "spicy"}, updated.Keywords)
}

func TestDishMutationsAreOwnerScoped(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	created := f.addDish(t)

	other := entities.User{FirstName: "O", Email: "o@example.com", UserType: domain.RoleChef}
	require.NoError(t, f.db.Create(&other).Error)

	_, err := f.service.UpdateDish(ctx, created.ID, domain.UpdateDishRequest{Name: domain.Some("stolen")}, other.ID.String())
	assert.ErrorIs(t, err, domain.ErrDishNotFound)

	err = f.service.DeleteDish(ctx, created.ID, other.ID.String())
	assert.ErrorIs(t, err, domain.ErrDishNotFound)
	assert.Empty(t, f.storage.deleted)
}

func TestDeleteDishRemovesStoredImages(t *testing.T) {
	f := newFixture(t)
	created := f.addDish(t)

	require.NoError(t, f.service.DeleteDish(context.Background(), created.ID, f.chef.ID.String()))
	assert.Equal(t, []string{"dishes/a.jpg"}, f.storage.deleted)

	var count int64
	f.db.Model(&entities.Dish{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestGetDishesIncludesRatings(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	rated := f.addDish(t)
	f.addDish(t)

	dishID := mustUUID(t, rated.ID)
	for i, rating := range []int{5, 4} {
		customer := entities.User{FirstName: "R", Email: string(rune('a'+i)) + "@r.com", UserType: domain.RoleCustomer}
		require.NoError(t, f.db.Create(&customer).Error)
		order := entities.Order{UserID: customer.ID, ToID: f.chef.ID, Status: domain.OrderStatusCompleted}
		require.NoError(t, f.db.Create(&order).Error)
		require.NoError(t, f.db.Create(&entities.Review{OrderID: order.ID, UserID: customer.ID, RestID: f.chef.ID, DishID: &dishID, Rating: rating}).Error)
	}

	list, err := f.service.GetDishes(ctx, domain.GetDishesRequest{}, f.chef.ID.String())
	require.NoError(t, err)
	require.Len(t, list.Dishes, 2)

	byID := map[string]domain.DishResponse{}
	for _, d := range list.Dishes {
		byID[d.ID] = d
	}
	assert.Equal(t, 4.5, byID[rated.ID].Rating)
	assert.Equal(t, int64(2), byID[rated.ID].ReviewsCount)

	offers, err := f.service.GetDishes(ctx, domain.GetDishesRequest{DishType: domain.DishTypeOffer}, f.chef.ID.String())
	require.NoError(t, err)
	assert.Empty(t, offers.Dishes)
}

func mustUUID(t *testing.T, s string) uuid.UUID {
	t.Helper()
	id, err := uuid.Parse(s)
	require.NoError(t, err)
	return id
}
