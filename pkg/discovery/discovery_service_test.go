package discovery

import (
	"context"
	"testing"

	"HomeChef-Backend/domain"
	"HomeChef-Backend/entities"
	"HomeChef-Backend/internal/utils/testdb"
	"HomeChef-Backend/pkg/dish"
	"HomeChef-Backend/pkg/favourite"
	"HomeChef-Backend/pkg/order"
	"HomeChef-Backend/pkg/review"
	"HomeChef-Backend/pkg/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	db       *gorm.DB
	service  DiscoveryService
	viewer   entities.User
	cuisines []entities.Cuisine
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	db := testdb.New(t)

	var cuisines []entities.Cuisine
	require.NoError(t, db.Order("name ASC").Find(&cuisines).Error)

	viewer := entities.User{FirstName: "Viewer", Email: "viewer@example.com", UserType: domain.RoleCustomer}
	require.NoError(t, db.Create(&viewer).Error)

	svc := NewDiscoveryService(Repositories{
		Discovery: NewDiscoveryRepository(db),
		Dish:      dish.NewDishRepository(db),
		User:      user.NewUserRepository(db),
		Review:    review.NewReviewRepository(db),
		Favourite: favourite.NewFavouriteRepository(db),
		Order:     order.NewOrderRepository(db),
	}, 0)
	return fixture{db: db, service: svc, viewer: viewer, cuisines: cuisines}
}

func (f fixture) chef(t *testing.T, name, status string) entities.User {
	t.Helper()
	c := entities.User{FirstName: name, Email: name + "@example.com", UserType: domain.RoleChef, RestStatus: status}
	require.NoError(t, f.db.Create(&c).Error)
	return c
}

func (f fixture) chefAt(t *testing.T, name string, lat, lng float64) entities.User {
	t.Helper()
	c := entities.User{
		FirstName:  name,
		Email:      name + "@example.com",
		UserType:   domain.RoleChef,
		RestStatus: domain.RestStatusAvailable,
		CurrentLat: &lat,
		CurrentLng: &lng,
	}
	require.NoError(t, f.db.Create(&c).Error)
	return c
}

func (f fixture) dish(t *testing.T, chef entities.User, cuisine entities.Cuisine, price float64) entities.Dish {
	t.Helper()
	d := entities.Dish{UserID: chef.ID, CuisineID: cuisine.ID, Name: "dish", Price: price, DishType: domain.DishTypeDish}
	require.NoError(t, f.db.Create(&d).Error)
	return d
}

// review stores a completed order from a fresh customer plus its review.
func (f fixture) review(t *testing.T, chef entities.User, dishID *uuid.UUID, rating int) {
	t.Helper()
	customer := entities.User{FirstName: "R", Email: uuid.NewString() + "@example.com", UserType: domain.RoleCustomer}
	require.NoError(t, f.db.Create(&customer).Error)
	o := entities.Order{UserID: customer.ID, ToID: chef.ID, Status: domain.OrderStatusCompleted}
	require.NoError(t, f.db.Create(&o).Error)
	require.NoError(t, f.db.Create(&entities.Review{OrderID: o.ID, UserID: customer.ID, RestID: chef.ID, DishID: dishID, Rating: rating}).Error)
}

func names(res domain.ChefListResponse) []string {
	out := make([]string, 0, len(res.Chefs))
	for _, c := range res.Chefs {
		out = append(out, c.FirstName)
	}
	return out
}

func TestGetChefsTopRatedWithRatingSort(t *testing.T) {
	f := newFixture(t)
	good := f.chef(t, "good", domain.RestStatusAvailable)
	okay := f.chef(t, "okay", domain.RestStatusAvailable)
	f.chef(t, "new", domain.RestStatusAvailable)

	f.review(t, good, nil, 5)
	f.review(t, good, nil, 4)
	f.review(t, okay, nil, 3)

	res, err := f.service.GetChefs(context.Background(), domain.GetChefsRequest{
		Filter: "top_rated",
		SortBy: domain.SortRating,
	}, f.viewer.ID.String())
	require.NoError(t, err)

	assert.Equal(t, []string{"good", "okay", "new"}, names(res))
	assert.Equal(t, int64(3), res.Pagination.Total)
	require.NotNil(t, res.Chefs[0].AvgRating)
	assert.Equal(t, 4.5, *res.Chefs[0].AvgRating)
	assert.Equal(t, 4.5, res.Chefs[0].Rating)
	assert.Equal(t, int64(2), res.Chefs[0].ReviewsCount)
}

func TestGetChefsFilters(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	open := f.chef(t, "open", domain.RestStatusAvailable)
	busy := f.chef(t, "busy", domain.RestStatusBusy)
	f.dish(t, open, f.cuisines[0], 10)
	f.dish(t, busy, f.cuisines[1], 20)

	res, err := f.service.GetChefs(ctx, domain.GetChefsRequest{Filter: "open_now"}, f.viewer.ID.String())
	require.NoError(t, err)
	assert.Equal(t, []string{"open"}, names(res))

	res, err = f.service.GetChefs(ctx, domain.GetChefsRequest{CuisineID: f.cuisines[1].ID.String()}, f.viewer.ID.String())
	require.NoError(t, err)
	assert.Equal(t, []string{"busy"}, names(res))

	res, err = f.service.GetChefs(ctx, domain.GetChefsRequest{SortBy: domain.SortPriceHigh}, f.viewer.ID.String())
	require.NoError(t, err)
	assert.Equal(t, []string{"busy", "open"}, names(res))
}

func TestGetChefsNearLocation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	lat, lng := -6.2, 106.8
	f.chefAt(t, "far", lat, 106.95)
	f.chefAt(t, "near", lat, 106.83)
	f.chefAt(t, "here", lat, lng)
	f.chef(t, "unplaced", domain.RestStatusAvailable)

	// default radius is 10 km
	res, err := f.service.GetChefs(ctx, domain.GetChefsRequest{Lat: &lat, Lng: &lng, SortBy: domain.SortDistance}, f.viewer.ID.String())
	require.NoError(t, err)
	assert.Equal(t, []string{"here", "near"}, names(res))
	require.NotNil(t, res.Chefs[0].Distance)
	assert.Equal(t, 0.0, *res.Chefs[0].Distance)
	require.NotNil(t, res.Chefs[1].Distance)
	assert.InDelta(t, 3.3, *res.Chefs[1].Distance, 0.1)

	res, err = f.service.GetChefs(ctx, domain.GetChefsRequest{Lat: &lat, Lng: &lng, Radius: 20, SortBy: domain.SortDistance}, f.viewer.ID.String())
	require.NoError(t, err)
	assert.Equal(t, []string{"here", "near", "far"}, names(res))
	require.NotNil(t, res.Chefs[2].Distance)
	assert.InDelta(t, 16.6, *res.Chefs[2].Distance, 0.1)
}

func TestGetChefsAtSearchPoint(t *testing.T) {
	f := newFixture(t)
	// a latitude where the law-of-cosines form leaves the acos domain
	lat, lng := -59.9804, 10.0
	f.chefAt(t, "here", lat, lng)

	res, err := f.service.GetChefs(context.Background(), domain.GetChefsRequest{Lat: &lat, Lng: &lng}, f.viewer.ID.String())
	require.NoError(t, err)
	assert.Equal(t, []string{"here"}, names(res))
}

func TestGetChefsPriceSortPutsChefsWithoutDishesLast(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.chef(t, "empty", domain.RestStatusAvailable)
	cheap := f.chef(t, "cheap", domain.RestStatusAvailable)
	dear := f.chef(t, "dear", domain.RestStatusAvailable)
	f.dish(t, cheap, f.cuisines[0], 5)
	f.dish(t, dear, f.cuisines[0], 50)

	res, err := f.service.GetChefs(ctx, domain.GetChefsRequest{SortBy: domain.SortPriceHigh}, f.viewer.ID.String())
	require.NoError(t, err)
	assert.Equal(t, []string{"dear", "cheap", "empty"}, names(res))

	res, err = f.service.GetChefs(ctx, domain.GetChefsRequest{SortBy: domain.SortPriceLow}, f.viewer.ID.String())
	require.NoError(t, err)
	assert.Equal(t, []string{"cheap", "dear", "empty"}, names(res))
}

func TestGetChefsPopular(t *testing.T) {
	f := newFixture(t)
	quiet := f.chef(t, "quiet", domain.RestStatusAvailable)
	busy := f.chef(t, "busy", domain.RestStatusAvailable)
	f.review(t, busy, nil, 4)
	f.review(t, busy, nil, 4)
	f.review(t, quiet, nil, 5)

	res, err := f.service.GetChefs(context.Background(), domain.GetChefsRequest{Filter: "popular"}, f.viewer.ID.String())
	require.NoError(t, err)
	assert.Equal(t, []string{"busy", "quiet"}, names(res))
	require.NotNil(t, res.Chefs[0].OrderCount)
	assert.Equal(t, int64(2), *res.Chefs[0].OrderCount)
}

func TestGetChefsRejectsBadInput(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.service.GetChefs(ctx, domain.GetChefsRequest{Filter: "cheapest"}, f.viewer.ID.String())
	assert.ErrorIs(t, err, domain.ErrInvalidFilter)

	_, err = f.service.GetChefs(ctx, domain.GetChefsRequest{SortBy: domain.SortDistance}, f.viewer.ID.String())
	assert.ErrorIs(t, err, domain.ErrDistanceSortNeedsLocation)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestGetChefDishes(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	chef := f.chef(t, "chef", domain.RestStatusAvailable)
	d := f.dish(t, chef, f.cuisines[0], 15)
	f.dish(t, chef, f.cuisines[0], 25)
	f.review(t, chef, &d.ID, 5)
	f.review(t, chef, &d.ID, 3)
	f.review(t, chef, nil, 1)

	require.NoError(t, f.db.Create(&entities.Favourite{UserID: f.viewer.ID, TargetID: chef.ID, LikeType: domain.LikeTypeUsers}).Error)
	require.NoError(t, f.db.Create(&entities.Favourite{UserID: f.viewer.ID, TargetID: d.ID, LikeType: domain.LikeTypeDishes}).Error)

	res, err := f.service.GetChefDishes(ctx, chef.ID.String(), domain.GetDishesRequest{}, f.viewer.ID.String())
	require.NoError(t, err)

	assert.True(t, res.Chef.IsLiked)
	assert.Equal(t, int64(3), res.ChefRatings.Total)
	assert.Equal(t, 3.0, res.ChefRatings.Average)
	assert.Equal(t, int64(0), res.ChefRatings.StarCounts["2"])
	require.Len(t, res.Dishes, 2)

	for _, item := range res.Dishes {
		require.NotNil(t, item.IsLiked)
		require.NotNil(t, item.Ratings)
		if item.ID == d.ID.String() {
			assert.True(t, *item.IsLiked)
			assert.Equal(t, 4.0, item.Rating)
			assert.Equal(t, int64(1), item.Ratings.StarCounts["5"])
		} else {
			assert.False(t, *item.IsLiked)
			assert.Equal(t, int64(0), item.ReviewsCount)
			assert.Len(t, item.Ratings.StarCounts, 5)
		}
	}

	_, err = f.service.GetChefDishes(ctx, f.viewer.ID.String(), domain.GetDishesRequest{}, f.viewer.ID.String())
	assert.ErrorIs(t, err, domain.ErrChefNotFound)
}

func TestGetChefReviews(t *testing.T) {
	f := newFixture(t)
	chef := f.chef(t, "chef", domain.RestStatusAvailable)
	f.review(t, chef, nil, 5)
	f.review(t, chef, nil, 5)
	f.review(t, chef, nil, 2)

	res, err := f.service.GetChefReviews(context.Background(), chef.ID.String(), domain.GetChefReviewsRequest{Rating: 5})
	require.NoError(t, err)
	assert.Len(t, res.Reviews, 2)
	assert.Equal(t, int64(2), res.Pagination.Total)
	assert.Equal(t, int64(3), res.Summary.Total)
	assert.Equal(t, 4.0, res.Summary.Average)
	assert.Equal(t, "R", res.Reviews[0].UserName)
}

func TestHome(t *testing.T) {
	f := newFixture(t)
	chef := f.chef(t, "chef", domain.RestStatusAvailable)
	d := f.dish(t, chef, f.cuisines[0], 15)
	f.review(t, chef, &d.ID, 4)
	require.NoError(t, f.db.Create(&entities.Order{UserID: f.viewer.ID, ToID: chef.ID, Status: domain.OrderStatusPending}).Error)

	res, err := f.service.Home(context.Background(), f.viewer.ID.String())
	require.NoError(t, err)
	assert.Len(t, res.Cuisines, len(f.cuisines))
	assert.Len(t, res.RecentOrders, 1)
	require.Len(t, res.TopChefs, 1)
	assert.Equal(t, "chef", res.TopChefs[0].FirstName)
	require.Len(t, res.PopularDishes, 1)
	assert.Equal(t, 4.0, res.PopularDishes[0].Rating)
}
