package discovery

import (
	"strings"

	"HomeChef-Backend/domain"
	"HomeChef-Backend/entities"
	"HomeChef-Backend/internal/utils"

	"gorm.io/gorm"
)

const chefColumns = "users.id, users.first_name, users.last_name, users.image, users.about, users.address, " +
	"users.city, users.rest_status, users.current_lat, users.current_lng, users.created_at"

// haversineA is the squared half-chord between the search point and the chef.
// Its three placeholders are lat, lat, lng.
const haversineA = "(power(sin(radians(users.current_lat - ?) / 2), 2) + " +
	"cos(radians(?)) * cos(radians(users.current_lat)) * power(sin(radians(users.current_lng - ?) / 2), 2))"

// distanceExpr is the Haversine distance in km, in the same atan2 form as
// utils.HaversineKm. abs keeps the second root real when rounding pushes a
// past 1. Use distanceArgs for its placeholders.
const distanceExpr = "(2 * ? * atan2(sqrt(" + haversineA + "), sqrt(abs(1 - " + haversineA + "))))"

func distanceArgs(s domain.ChefSearch) []any {
	return []any{utils.EarthRadiusKm, *s.Lat, *s.Lat, *s.Lng, *s.Lat, *s.Lat, *s.Lng}
}

const orderCountExpr = "(SELECT COUNT(*) FROM orders WHERE orders.to_id = users.id AND orders.status = ?)"

type (
	// ChefRow is one chef in a search result. The aggregate columns are only
	// filled when the matching filter or sort key asked for them.
	ChefRow struct {
		ID         string
		FirstName  string
		LastName   string
		Image      string
		About      string
		Address    string
		City       string
		RestStatus string
		CurrentLat *float64
		CurrentLng *float64
		Distance   *float64
		AvgRating  *float64
		OrderCount *int64
		MinPrice   *float64
		MaxPrice   *float64
	}

	// chefQuery accumulates the joins, selects and orderings requested by the
	// active filters and sort key. Each relation is joined at most once.
	chefQuery struct {
		db      *gorm.DB
		search  domain.ChefSearch
		selects []string
		args    []any
		orders  []string
		joined  map[string]bool
	}
)

// applyChefFilters adds the WHERE predicates shared by the listing and its
// count. None of them need a join.
func applyChefFilters(db *gorm.DB, s domain.ChefSearch) *gorm.DB {
	db = db.Where("users.user_type = ?", domain.RoleChef)

	if s.OpenNow {
		db = db.Where("users.rest_status = ?", domain.RestStatusAvailable)
	}
	if s.Search != "" {
		like := "%" + strings.ToLower(s.Search) + "%"
		db = db.Where("(LOWER(users.first_name) LIKE ? OR LOWER(users.last_name) LIKE ?)", like, like)
	}
	if s.CuisineID != "" {
		db = db.Where("EXISTS (SELECT 1 FROM dishes WHERE dishes.user_id = users.id AND dishes.cuisine_id = ?)", s.CuisineID)
	}
	if s.HasLocation() {
		db = db.Where("users.current_lat IS NOT NULL AND users.current_lng IS NOT NULL").
			Where(distanceExpr+" <= ?", append(distanceArgs(s), s.RadiusKm)...)
	}
	return db
}

func newChefQuery(db *gorm.DB, s domain.ChefSearch) *chefQuery {
	return &chefQuery{
		db:      applyChefFilters(db.Model(&entities.User{}), s),
		search:  s,
		selects: []string{chefColumns},
		joined:  map[string]bool{},
	}
}

func (q *chefQuery) join(relation, clause string) {
	if q.joined[relation] {
		return
	}
	q.joined[relation] = true
	q.db = q.db.Joins(clause)
}

func (q *chefQuery) joinReviews() {
	q.join("reviews", "LEFT JOIN reviews ON reviews.rest_id = users.id")
}

func (q *chefQuery) joinDishes() {
	q.join("dishes", "LEFT JOIN dishes ON dishes.user_id = users.id")
}

func (q *chefQuery) selectOnce(column string, args ...any) {
	for _, s := range q.selects {
		if s == column {
			return
		}
	}
	q.selects = append(q.selects, column)
	q.args = append(q.args, args...)
}

func (q *chefQuery) withRating() {
	q.joinReviews()
	q.selectOnce("COALESCE(AVG(reviews.rating), 0) AS avg_rating")
}

func (q *chefQuery) orderBy(order string) {
	for _, o := range q.orders {
		if o == order {
			return
		}
	}
	q.orders = append(q.orders, order)
}

// build composes the final statement. The sort key is the primary ordering;
// filter orderings follow it. Chefs without dishes sort last by price on every
// driver.
func (q *chefQuery) build() *gorm.DB {
	s := q.search

	q.selectOnce(orderCountExpr+" AS order_count", domain.OrderStatusCompleted)
	if s.HasLocation() {
		q.selectOnce(distanceExpr+" AS distance", distanceArgs(s)...)
	}

	switch s.SortBy {
	case domain.SortPriceLow:
		q.joinDishes()
		q.selectOnce("MIN(dishes.price) AS min_price")
		q.orderBy("MIN(dishes.price) IS NULL, MIN(dishes.price) ASC")
	case domain.SortPriceHigh:
		q.joinDishes()
		q.selectOnce("MAX(dishes.price) AS max_price")
		q.orderBy("MAX(dishes.price) IS NULL, MAX(dishes.price) DESC")
	case domain.SortRating:
		q.withRating()
		q.orderBy("avg_rating DESC")
	case domain.SortDistance:
		q.orderBy("distance ASC")
	}

	if s.TopRated {
		q.withRating()
		q.orderBy("avg_rating DESC")
	}
	if s.Popular {
		q.orderBy("order_count DESC")
	}
	q.orderBy("users.created_at DESC")

	db := q.db.Select(strings.Join(q.selects, ", "), q.args...)
	if len(q.joined) > 0 {
		db = db.Group("users.id")
	}
	for _, o := range q.orders {
		db = db.Order(o)
	}
	return db.Offset(s.Page.Offset()).Limit(s.Page.PerPage)
}
