package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"kathmandu_guide/internal/domain"
)

func valStr(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}
func valInt(p *int) any {
	if p == nil {
		return nil
	}
	return *p
}
func valF64(p *float64) any {
	if p == nil {
		return nil
	}
	return *p
}
func valBool(p *bool) any {
	if p == nil {
		return nil
	}
	return *p
}
func valJSON(b []byte) any {
	if len(b) == 0 {
		return nil
	}
	return string(b)
}

func nullStr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}
func nullInt(ni sql.NullInt64) *int {
	if !ni.Valid {
		return nil
	}
	n := int(ni.Int64)
	return &n
}
func nullF64(nf sql.NullFloat64) *float64 {
	if !nf.Valid {
		return nil
	}
	f := nf.Float64
	return &f
}
func nullBool(nb sql.NullBool) *bool {
	if !nb.Valid {
		return nil
	}
	b := nb.Bool
	return &b
}
func coords(lat, lon sql.NullFloat64) *domain.Coords {
	if !lat.Valid || !lon.Valid {
		return nil
	}
	return &domain.Coords{Lat: lat.Float64, Lon: lon.Float64}
}

// escapeLike neutralizes LIKE metacharacters in user input so a query
// string like "100%" matches literally.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

func likePattern(q string) string { return "%" + escapeLike(q) + "%" }

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

// -----------------------------------------------------------------------------
// Seed writes
// -----------------------------------------------------------------------------

func (r *Repo) UpsertArea(ctx context.Context, a domain.Area) error {
	_, err := r.db.ExecContext(ctx, upsertAreaSQL,
		a.Slug, a.Name, valStr(a.NameLocal), valStr(a.Description),
		valF64(a.Lat), valF64(a.Lon), a.Featured, a.SortOrder,
	)
	return err
}

func (r *Repo) UpsertTag(ctx context.Context, t domain.Tag) error {
	_, err := r.db.ExecContext(ctx, upsertTagSQL,
		t.Slug, t.Name, t.Category, valStr(t.Color), t.SortOrder,
	)
	return err
}

func (r *Repo) UpsertAmenity(ctx context.Context, am domain.Amenity) error {
	_, err := r.db.ExecContext(ctx, upsertAmenitySQL,
		am.Slug, am.Name, valStr(am.Category), valStr(am.Icon), am.SortOrder,
	)
	return err
}

// UpsertHotel writes the parent row, then replaces every owned child
// (join rows, rooms, policy, FAQs) inside one transaction so a reseed
// is all-or-nothing per entity.
func (r *Repo) UpsertHotel(ctx context.Context, h domain.Hotel) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, upsertHotelSQL,
		h.Slug, h.Name, valStr(h.AreaSlug), valInt(h.Stars), valStr(h.PriceTier),
		valInt(h.PriceFromUSD), valStr(h.Tagline), valStr(h.DescriptionShort),
		valStr(h.Description), valStr(h.CoverImageURL), valF64(h.Lat), valF64(h.Lon),
		valInt(h.TotalRooms), valInt(h.YearBuilt), valF64(h.OurScore),
		h.Featured, string(h.Status), valStr(h.WebsiteURL),
	); err != nil {
		return err
	}

	var id int64
	if err := tx.QueryRowContext(ctx, `SELECT id FROM hotels WHERE slug = ?`, h.Slug).Scan(&id); err != nil {
		return err
	}

	if err := replaceJoins(ctx, tx, "hotel_amenities", "hotel_id", "amenity_id", "amenities", id, h.AmenitySlugs); err != nil {
		return err
	}
	if err := replaceJoins(ctx, tx, "hotel_tags", "hotel_id", "tag_id", "tags", id, h.TagSlugs); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM room_types WHERE hotel_id = ?`, id); err != nil {
		return err
	}
	for _, rm := range h.Rooms {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO room_types (hotel_id, name, description, max_occupancy, bed_type, size_m2, price_from_usd)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			id, rm.Name, valStr(rm.Description), rm.MaxOccupancy,
			valStr(rm.BedType), valInt(rm.SizeM2), valInt(rm.PriceFromUSD),
		); err != nil {
			return err
		}
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM hotel_policies WHERE hotel_id = ?`, id); err != nil {
		return err
	}
	if p := h.Policy; p != nil {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO hotel_policies
			   (hotel_id, checkin_from, checkout_until, cancellation_hours, cancellation_policy,
			    breakfast_included, parking_available, pets_allowed)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			id, valStr(p.CheckinFrom), valStr(p.CheckoutUntil), valInt(p.CancellationHours),
			valStr(p.CancellationPolicy), p.BreakfastIncluded, p.ParkingAvailable, p.PetsAllowed,
		); err != nil {
			return err
		}
	}

	if err := replaceFAQs(ctx, tx, "hotel", id, h.FAQs); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *Repo) UpsertListing(ctx context.Context, l domain.Listing) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, upsertListingSQL,
		l.Slug, l.Name, valStr(l.NameLocal), l.ListingType, valStr(l.AreaSlug),
		valStr(l.Tagline), valStr(l.DescriptionShort), valStr(l.Description),
		valStr(l.CoverImageURL), valF64(l.Lat), valF64(l.Lon),
		valBool(l.IsFree), valStr(l.AdmissionForeigner), valF64(l.OurScore),
		l.Featured, string(l.Status),
	); err != nil {
		return err
	}

	var id int64
	if err := tx.QueryRowContext(ctx, `SELECT id FROM listings WHERE slug = ?`, l.Slug).Scan(&id); err != nil {
		return err
	}
	if err := replaceJoins(ctx, tx, "listing_tags", "listing_id", "tag_id", "tags", id, l.TagSlugs); err != nil {
		return err
	}
	if err := replaceFAQs(ctx, tx, "listing", id, l.FAQs); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *Repo) UpsertRestaurant(ctx context.Context, rst domain.Restaurant) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	cuisines, _ := json.Marshal(rst.Cuisines)
	if _, err := tx.ExecContext(ctx, upsertRestaurantSQL,
		rst.Slug, rst.Name, valStr(rst.AreaSlug), valStr(rst.PriceTier), string(cuisines),
		valInt(rst.PricePerPersonMin), valInt(rst.PricePerPersonMax),
		valStr(rst.Tagline), valStr(rst.DescriptionShort), valStr(rst.Description),
		valStr(rst.CoverImageURL), valF64(rst.Lat), valF64(rst.Lon),
		valJSON(rst.OpeningHoursJSON), valF64(rst.GoogleRating), valF64(rst.OurScore),
		rst.Featured, rst.EditorPick, rst.Verified, string(rst.Status),
	); err != nil {
		return err
	}

	var id int64
	if err := tx.QueryRowContext(ctx, `SELECT id FROM restaurants WHERE slug = ?`, rst.Slug).Scan(&id); err != nil {
		return err
	}
	if err := replaceJoins(ctx, tx, "restaurant_tags", "restaurant_id", "tag_id", "tags", id, rst.TagSlugs); err != nil {
		return err
	}
	if err := replaceFAQs(ctx, tx, "restaurant", id, rst.FAQs); err != nil {
		return err
	}
	return tx.Commit()
}

// replaceJoins rebuilds an entity's join rows from a slug list. Unknown
// slugs resolve to zero rows and are silently skipped; INSERT IGNORE
// keeps duplicated slugs in a payload harmless.
func replaceJoins(ctx context.Context, tx *sql.Tx, joinTable, ownerCol, refCol, refTable string, ownerID int64, slugs []string) error {
	if _, err := tx.ExecContext(ctx,
		fmt.Sprintf(`DELETE FROM %s WHERE %s = ?`, joinTable, ownerCol), ownerID); err != nil {
		return err
	}
	if len(slugs) == 0 {
		return nil
	}
	ph := strings.TrimSuffix(strings.Repeat("?,", len(slugs)), ",")
	args := make([]any, 0, len(slugs)+1)
	args = append(args, ownerID)
	for _, s := range slugs {
		args = append(args, s)
	}
	q := fmt.Sprintf(
		`INSERT IGNORE INTO %s (%s, %s) SELECT ?, id FROM %s WHERE slug IN (%s)`,
		joinTable, ownerCol, refCol, refTable, ph,
	)
	_, err := tx.ExecContext(ctx, q, args...)
	return err
}

func replaceFAQs(ctx context.Context, tx *sql.Tx, ownerType string, ownerID int64, faqs []domain.FAQ) error {
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM faqs WHERE owner_type = ? AND owner_id = ?`, ownerType, ownerID); err != nil {
		return err
	}
	for _, f := range faqs {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO faqs (owner_type, owner_id, question, answer, sort_order) VALUES (?, ?, ?, ?, ?)`,
			ownerType, ownerID, f.Question, f.Answer, f.SortOrder,
		); err != nil {
			return err
		}
	}
	return nil
}

// -----------------------------------------------------------------------------
// Detail reads
// -----------------------------------------------------------------------------

func (r *Repo) GetHotel(ctx context.Context, slug string) (domain.HotelView, error) {
	row := r.db.QueryRowContext(ctx, getHotelSQL, slug)

	var (
		id                            int64
		hv                            domain.HotelView
		stars, priceFrom, rooms, year sql.NullInt64
		priceTier, tagline, descShort sql.NullString
		desc, cover, website          sql.NullString
		lat, lon, score               sql.NullFloat64
		areaName, areaSlug            sql.NullString
	)
	if err := row.Scan(
		&id, &hv.Slug, &hv.Name, &stars, &priceTier, &priceFrom,
		&tagline, &descShort, &desc, &cover, &lat, &lon,
		&rooms, &year, &score, &hv.Featured, &website,
		&areaName, &areaSlug,
	); err != nil {
		if err == sql.ErrNoRows {
			return domain.HotelView{}, domain.ErrNotFound
		}
		return domain.HotelView{}, err
	}

	hv.Stars = nullInt(stars)
	hv.PriceTier = nullStr(priceTier)
	hv.PriceFromUSD = nullInt(priceFrom)
	hv.Tagline = nullStr(tagline)
	hv.DescriptionShort = nullStr(descShort)
	hv.Description = nullStr(desc)
	if cover.Valid {
		hv.CoverImageURL = cover.String
	}
	hv.Coords = coords(lat, lon)
	hv.TotalRooms = nullInt(rooms)
	hv.YearBuilt = nullInt(year)
	hv.OurScore = nullF64(score)
	hv.WebsiteURL = nullStr(website)
	hv.AreaName = nullStr(areaName)
	hv.AreaSlug = nullStr(areaSlug)

	var err error
	if hv.Amenities, err = r.hotelAmenities(ctx, id); err != nil {
		return domain.HotelView{}, err
	}
	if hv.Tags, err = r.entityTags(ctx, "hotel_tags", "hotel_id", id); err != nil {
		return domain.HotelView{}, err
	}
	if hv.Rooms, err = r.hotelRooms(ctx, id); err != nil {
		return domain.HotelView{}, err
	}
	if hv.Policy, err = r.hotelPolicy(ctx, id); err != nil {
		return domain.HotelView{}, err
	}
	if hv.FAQs, err = r.entityFAQs(ctx, "hotel", id); err != nil {
		return domain.HotelView{}, err
	}
	return hv, nil
}

func (r *Repo) GetListing(ctx context.Context, slug string) (domain.ListingView, error) {
	row := r.db.QueryRowContext(ctx, getListingSQL, slug)

	var (
		id                            int64
		lv                            domain.ListingView
		nameLocal, tagline, descShort sql.NullString
		desc, cover, admission        sql.NullString
		lat, lon, score               sql.NullFloat64
		isFree                        sql.NullBool
		areaName, areaSlug            sql.NullString
	)
	if err := row.Scan(
		&id, &lv.Slug, &lv.Name, &nameLocal, &lv.ListingType,
		&tagline, &descShort, &desc, &cover, &lat, &lon,
		&isFree, &admission, &score, &lv.Featured,
		&areaName, &areaSlug,
	); err != nil {
		if err == sql.ErrNoRows {
			return domain.ListingView{}, domain.ErrNotFound
		}
		return domain.ListingView{}, err
	}

	lv.NameLocal = nullStr(nameLocal)
	lv.Tagline = nullStr(tagline)
	lv.DescriptionShort = nullStr(descShort)
	lv.Description = nullStr(desc)
	if cover.Valid {
		lv.CoverImageURL = cover.String
	}
	lv.Coords = coords(lat, lon)
	lv.IsFree = nullBool(isFree)
	lv.AdmissionForeigner = nullStr(admission)
	lv.OurScore = nullF64(score)
	lv.AreaName = nullStr(areaName)
	lv.AreaSlug = nullStr(areaSlug)

	var err error
	if lv.Tags, err = r.entityTags(ctx, "listing_tags", "listing_id", id); err != nil {
		return domain.ListingView{}, err
	}
	if lv.FAQs, err = r.entityFAQs(ctx, "listing", id); err != nil {
		return domain.ListingView{}, err
	}
	return lv, nil
}

func (r *Repo) GetRestaurant(ctx context.Context, slug string) (domain.RestaurantView, error) {
	row := r.db.QueryRowContext(ctx, getRestaurantSQL, slug)

	var (
		id                        int64
		rv                        domain.RestaurantView
		priceTier, tagline        sql.NullString
		descShort, desc, cover    sql.NullString
		ppMin, ppMax              sql.NullInt64
		lat, lon, gRating, score  sql.NullFloat64
		cuisinesRaw, openingHours []byte
		areaName, areaSlug        sql.NullString
	)
	if err := row.Scan(
		&id, &rv.Slug, &rv.Name, &priceTier, &cuisinesRaw, &ppMin, &ppMax,
		&tagline, &descShort, &desc, &cover, &lat, &lon,
		&openingHours, &gRating, &score, &rv.Featured, &rv.EditorPick,
		&areaName, &areaSlug,
	); err != nil {
		if err == sql.ErrNoRows {
			return domain.RestaurantView{}, domain.ErrNotFound
		}
		return domain.RestaurantView{}, err
	}

	rv.PriceTier = nullStr(priceTier)
	_ = json.Unmarshal(cuisinesRaw, &rv.Cuisines)
	rv.PricePerPersonMin = nullInt(ppMin)
	rv.PricePerPersonMax = nullInt(ppMax)
	rv.Tagline = nullStr(tagline)
	rv.DescriptionShort = nullStr(descShort)
	rv.Description = nullStr(desc)
	if cover.Valid {
		rv.CoverImageURL = cover.String
	}
	rv.Coords = coords(lat, lon)
	if len(openingHours) > 0 {
		rv.OpeningHours = append([]byte(nil), openingHours...)
	}
	rv.GoogleRating = nullF64(gRating)
	rv.OurScore = nullF64(score)
	rv.AreaName = nullStr(areaName)
	rv.AreaSlug = nullStr(areaSlug)

	var err error
	if rv.Tags, err = r.entityTags(ctx, "restaurant_tags", "restaurant_id", id); err != nil {
		return domain.RestaurantView{}, err
	}
	return rv, nil
}

func (r *Repo) GetArea(ctx context.Context, slug string) (domain.AreaView, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, slug, name, name_local, description, lat, lon FROM areas WHERE slug = ?`, slug)

	var (
		id              int64
		av              domain.AreaView
		nameLocal, desc sql.NullString
		lat, lon        sql.NullFloat64
	)
	if err := row.Scan(&id, &av.Slug, &av.Name, &nameLocal, &desc, &lat, &lon); err != nil {
		if err == sql.ErrNoRows {
			return domain.AreaView{}, domain.ErrNotFound
		}
		return domain.AreaView{}, err
	}
	av.NameLocal = nullStr(nameLocal)
	av.Description = nullStr(desc)
	av.Coords = coords(lat, lon)

	var err error
	if av.Hotels, err = r.hotelCards(ctx, hotelCardsSelect+` AND h.area_id = ?`+cardOrder("h"), id); err != nil {
		return domain.AreaView{}, err
	}
	if av.Attractions, err = r.listingCards(ctx, listingCardsSelect+` AND l.area_id = ?`+cardOrder("l"), id); err != nil {
		return domain.AreaView{}, err
	}
	if av.Restaurants, err = r.restaurantCards(ctx, restaurantCardsSelect+` AND r.area_id = ?`+cardOrder("r"), id); err != nil {
		return domain.AreaView{}, err
	}
	return av, nil
}

func (r *Repo) GetTag(ctx context.Context, slug string) (domain.TagView, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, slug, name, category FROM tags WHERE slug = ?`, slug)

	var (
		id int64
		tv domain.TagView
	)
	if err := row.Scan(&id, &tv.Slug, &tv.Name, &tv.Category); err != nil {
		if err == sql.ErrNoRows {
			return domain.TagView{}, domain.ErrNotFound
		}
		return domain.TagView{}, err
	}

	var err error
	if tv.Hotels, err = r.hotelCards(ctx,
		hotelCardsSelect+` AND h.id IN (SELECT hotel_id FROM hotel_tags WHERE tag_id = ?)`+cardOrder("h"), id); err != nil {
		return domain.TagView{}, err
	}
	if tv.Attractions, err = r.listingCards(ctx,
		listingCardsSelect+` AND l.id IN (SELECT listing_id FROM listing_tags WHERE tag_id = ?)`+cardOrder("l"), id); err != nil {
		return domain.TagView{}, err
	}
	return tv, nil
}

// -----------------------------------------------------------------------------
// List reads
// -----------------------------------------------------------------------------

const hotelCardsSelect = `
SELECT h.slug, h.name, h.stars, h.price_tier, h.price_from_usd, h.tagline,
       h.cover_image_url, h.our_score, h.featured, a.name
FROM hotels h
LEFT JOIN areas a ON a.id = h.area_id
WHERE h.status = 'PUBLISHED'`

const listingCardsSelect = `
SELECT l.slug, l.name, l.listing_type, l.tagline,
       l.cover_image_url, l.our_score, l.featured, a.name
FROM listings l
LEFT JOIN areas a ON a.id = l.area_id
WHERE l.status = 'PUBLISHED'`

const restaurantCardsSelect = `
SELECT r.slug, r.name, r.price_tier, r.cuisines, r.tagline,
       r.cover_image_url, r.our_score, r.featured, r.editor_pick, a.name
FROM restaurants r
LEFT JOIN areas a ON a.id = r.area_id
WHERE r.status = 'PUBLISHED'`

func cardOrder(alias string) string {
	return fmt.Sprintf(" ORDER BY %[1]s.featured DESC, %[1]s.our_score DESC, %[1]s.id ASC", alias)
}

func (r *Repo) ListHotels(ctx context.Context, q domain.HotelsQuery) ([]domain.HotelCard, error) {
	sqlStr := hotelCardsSelect
	var args []any
	if q.AreaSlug != nil {
		sqlStr += ` AND a.slug = ?`
		args = append(args, *q.AreaSlug)
	}
	if q.Stars != nil {
		sqlStr += ` AND h.stars = ?`
		args = append(args, *q.Stars)
	}
	sqlStr += cardOrder("h")
	if q.Limit > 0 {
		sqlStr += ` LIMIT ?`
		args = append(args, q.Limit)
	}
	return r.hotelCards(ctx, sqlStr, args...)
}

func (r *Repo) ListListings(ctx context.Context, q domain.ListingsQuery) ([]domain.ListingCard, error) {
	sqlStr := listingCardsSelect
	var args []any
	if q.AreaSlug != nil {
		sqlStr += ` AND a.slug = ?`
		args = append(args, *q.AreaSlug)
	}
	if len(q.Types) > 0 {
		ph := strings.TrimSuffix(strings.Repeat("?,", len(q.Types)), ",")
		sqlStr += ` AND l.listing_type IN (` + ph + `)`
		for _, t := range q.Types {
			args = append(args, t)
		}
	}
	sqlStr += cardOrder("l")
	if q.Limit > 0 {
		sqlStr += ` LIMIT ?`
		args = append(args, q.Limit)
	}
	return r.listingCards(ctx, sqlStr, args...)
}

func (r *Repo) ListRestaurants(ctx context.Context, q domain.RestaurantsQuery) ([]domain.RestaurantCard, error) {
	sqlStr := restaurantCardsSelect
	var args []any
	if q.AreaSlug != nil {
		sqlStr += ` AND a.slug = ?`
		args = append(args, *q.AreaSlug)
	}
	sqlStr += cardOrder("r")
	if q.Limit > 0 {
		sqlStr += ` LIMIT ?`
		args = append(args, q.Limit)
	}
	return r.restaurantCards(ctx, sqlStr, args...)
}

func (r *Repo) ListAreas(ctx context.Context) ([]domain.AreaCard, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT slug, name, name_local, featured, lat, lon FROM areas ORDER BY sort_order, slug`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.AreaCard
	for rows.Next() {
		var (
			ac        domain.AreaCard
			nameLocal sql.NullString
			lat, lon  sql.NullFloat64
		)
		if err := rows.Scan(&ac.Slug, &ac.Name, &nameLocal, &ac.Featured, &lat, &lon); err != nil {
			return nil, err
		}
		ac.NameLocal = nullStr(nameLocal)
		ac.Coords = coords(lat, lon)
		out = append(out, ac)
	}
	return out, rows.Err()
}

// -----------------------------------------------------------------------------
// Search
// -----------------------------------------------------------------------------

func (r *Repo) SearchHotels(ctx context.Context, q string, limit int) ([]domain.SearchHotel, error) {
	p := likePattern(q)
	rows, err := r.db.QueryContext(ctx, searchHotelsSQL, p, p, p, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.SearchHotel
	for rows.Next() {
		var (
			sh       domain.SearchHotel
			stars    sql.NullInt64
			areaName sql.NullString
		)
		if err := rows.Scan(&sh.Slug, &sh.Name, &stars, &areaName); err != nil {
			return nil, err
		}
		sh.Stars = nullInt(stars)
		sh.AreaName = nullStr(areaName)
		out = append(out, sh)
	}
	return out, rows.Err()
}

func (r *Repo) SearchListings(ctx context.Context, q string, limit int) ([]domain.SearchListing, error) {
	p := likePattern(q)
	rows, err := r.db.QueryContext(ctx, searchListingsSQL, p, p, p, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.SearchListing
	for rows.Next() {
		var (
			sl       domain.SearchListing
			areaName sql.NullString
		)
		if err := rows.Scan(&sl.Slug, &sl.Name, &sl.ListingType, &areaName); err != nil {
			return nil, err
		}
		sl.AreaName = nullStr(areaName)
		out = append(out, sl)
	}
	return out, rows.Err()
}

func (r *Repo) SearchRestaurants(ctx context.Context, q string, limit int) ([]domain.SearchRestaurant, error) {
	p := likePattern(q)
	rows, err := r.db.QueryContext(ctx, searchRestaurantsSQL, p, p, p, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.SearchRestaurant
	for rows.Next() {
		var (
			sr        domain.SearchRestaurant
			priceTier sql.NullString
			areaName  sql.NullString
		)
		if err := rows.Scan(&sr.Slug, &sr.Name, &priceTier, &areaName); err != nil {
			return nil, err
		}
		sr.PriceTier = nullStr(priceTier)
		sr.AreaName = nullStr(areaName)
		out = append(out, sr)
	}
	return out, rows.Err()
}

// -----------------------------------------------------------------------------
// Map sources
// -----------------------------------------------------------------------------

func (r *Repo) GeoHotels(ctx context.Context) ([]domain.GeoHotel, error) {
	rows, err := r.db.QueryContext(ctx, geoHotelsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.GeoHotel
	for rows.Next() {
		var (
			g                 domain.GeoHotel
			stars             sql.NullInt64
			tagline, areaName sql.NullString
		)
		if err := rows.Scan(&g.ID, &g.Slug, &g.Name, &g.Lat, &g.Lon, &stars, &tagline, &areaName); err != nil {
			return nil, err
		}
		g.Stars = nullInt(stars)
		g.Tagline = nullStr(tagline)
		g.AreaName = nullStr(areaName)
		out = append(out, g)
	}
	return out, rows.Err()
}

func (r *Repo) GeoListings(ctx context.Context) ([]domain.GeoListing, error) {
	rows, err := r.db.QueryContext(ctx, geoListingsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.GeoListing
	for rows.Next() {
		var (
			g                 domain.GeoListing
			tagline, areaName sql.NullString
		)
		if err := rows.Scan(&g.ID, &g.Slug, &g.Name, &g.Lat, &g.Lon, &g.ListingType, &tagline, &areaName); err != nil {
			return nil, err
		}
		g.Tagline = nullStr(tagline)
		g.AreaName = nullStr(areaName)
		out = append(out, g)
	}
	return out, rows.Err()
}

func (r *Repo) GeoRestaurants(ctx context.Context) ([]domain.GeoRestaurant, error) {
	rows, err := r.db.QueryContext(ctx, geoRestaurantsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.GeoRestaurant
	for rows.Next() {
		var (
			g                 domain.GeoRestaurant
			priceTier         sql.NullString
			tagline, areaName sql.NullString
		)
		if err := rows.Scan(&g.ID, &g.Slug, &g.Name, &g.Lat, &g.Lon, &priceTier, &tagline, &areaName); err != nil {
			return nil, err
		}
		g.PriceTier = nullStr(priceTier)
		g.Tagline = nullStr(tagline)
		g.AreaName = nullStr(areaName)
		out = append(out, g)
	}
	return out, rows.Err()
}

// -----------------------------------------------------------------------------
// Child and card scan helpers
// -----------------------------------------------------------------------------

func (r *Repo) hotelAmenities(ctx context.Context, hotelID int64) ([]domain.Amenity, error) {
	rows, err := r.db.QueryContext(ctx, hotelAmenitiesSQL, hotelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Amenity
	for rows.Next() {
		var (
			am             domain.Amenity
			category, icon sql.NullString
		)
		if err := rows.Scan(&am.Slug, &am.Name, &category, &icon, &am.SortOrder); err != nil {
			return nil, err
		}
		am.Category = nullStr(category)
		am.Icon = nullStr(icon)
		out = append(out, am)
	}
	return out, rows.Err()
}

func (r *Repo) entityTags(ctx context.Context, joinTable, ownerCol string, ownerID int64) ([]domain.Tag, error) {
	rows, err := r.db.QueryContext(ctx, fmt.Sprintf(entityTagsSQL, joinTable, ownerCol), ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Tag
	for rows.Next() {
		var (
			t     domain.Tag
			color sql.NullString
		)
		if err := rows.Scan(&t.Slug, &t.Name, &t.Category, &color, &t.SortOrder); err != nil {
			return nil, err
		}
		t.Color = nullStr(color)
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *Repo) hotelRooms(ctx context.Context, hotelID int64) ([]domain.RoomType, error) {
	rows, err := r.db.QueryContext(ctx, hotelRoomsSQL, hotelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.RoomType
	for rows.Next() {
		var (
			rt               domain.RoomType
			desc, bedType    sql.NullString
			sizeM2, priceUSD sql.NullInt64
		)
		if err := rows.Scan(&rt.Name, &desc, &rt.MaxOccupancy, &bedType, &sizeM2, &priceUSD); err != nil {
			return nil, err
		}
		rt.Description = nullStr(desc)
		rt.BedType = nullStr(bedType)
		rt.SizeM2 = nullInt(sizeM2)
		rt.PriceFromUSD = nullInt(priceUSD)
		out = append(out, rt)
	}
	return out, rows.Err()
}

func (r *Repo) hotelPolicy(ctx context.Context, hotelID int64) (*domain.Policy, error) {
	row := r.db.QueryRowContext(ctx, hotelPolicySQL, hotelID)

	var (
		p                 domain.Policy
		checkin, checkout sql.NullString
		cancelHours       sql.NullInt64
		cancelPolicy      sql.NullString
	)
	if err := row.Scan(&checkin, &checkout, &cancelHours, &cancelPolicy,
		&p.BreakfastIncluded, &p.ParkingAvailable, &p.PetsAllowed); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	p.CheckinFrom = nullStr(checkin)
	p.CheckoutUntil = nullStr(checkout)
	p.CancellationHours = nullInt(cancelHours)
	p.CancellationPolicy = nullStr(cancelPolicy)
	return &p, nil
}

func (r *Repo) entityFAQs(ctx context.Context, ownerType string, ownerID int64) ([]domain.FAQ, error) {
	rows, err := r.db.QueryContext(ctx, entityFAQsSQL, ownerType, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.FAQ
	for rows.Next() {
		var f domain.FAQ
		if err := rows.Scan(&f.Question, &f.Answer, &f.SortOrder); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func (r *Repo) hotelCards(ctx context.Context, sqlStr string, args ...any) ([]domain.HotelCard, error) {
	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.HotelCard
	for rows.Next() {
		var (
			hc                 domain.HotelCard
			stars, priceFrom   sql.NullInt64
			priceTier, tagline sql.NullString
			cover, areaName    sql.NullString
			score              sql.NullFloat64
		)
		if err := rows.Scan(&hc.Slug, &hc.Name, &stars, &priceTier, &priceFrom,
			&tagline, &cover, &score, &hc.Featured, &areaName); err != nil {
			return nil, err
		}
		hc.Stars = nullInt(stars)
		hc.PriceTier = nullStr(priceTier)
		hc.PriceFromUSD = nullInt(priceFrom)
		hc.Tagline = nullStr(tagline)
		if cover.Valid {
			hc.CoverImageURL = cover.String
		}
		hc.OurScore = nullF64(score)
		hc.AreaName = nullStr(areaName)
		out = append(out, hc)
	}
	return out, rows.Err()
}

func (r *Repo) listingCards(ctx context.Context, sqlStr string, args ...any) ([]domain.ListingCard, error) {
	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.ListingCard
	for rows.Next() {
		var (
			lc             domain.ListingCard
			tagline, cover sql.NullString
			score          sql.NullFloat64
			areaName       sql.NullString
		)
		if err := rows.Scan(&lc.Slug, &lc.Name, &lc.ListingType, &tagline,
			&cover, &score, &lc.Featured, &areaName); err != nil {
			return nil, err
		}
		lc.Tagline = nullStr(tagline)
		if cover.Valid {
			lc.CoverImageURL = cover.String
		}
		lc.OurScore = nullF64(score)
		lc.AreaName = nullStr(areaName)
		out = append(out, lc)
	}
	return out, rows.Err()
}

func (r *Repo) restaurantCards(ctx context.Context, sqlStr string, args ...any) ([]domain.RestaurantCard, error) {
	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.RestaurantCard
	for rows.Next() {
		var (
			rc                 domain.RestaurantCard
			priceTier, tagline sql.NullString
			cover, areaName    sql.NullString
			cuisinesRaw        []byte
			score              sql.NullFloat64
		)
		if err := rows.Scan(&rc.Slug, &rc.Name, &priceTier, &cuisinesRaw, &tagline,
			&cover, &score, &rc.Featured, &rc.EditorPick, &areaName); err != nil {
			return nil, err
		}
		rc.PriceTier = nullStr(priceTier)
		_ = json.Unmarshal(cuisinesRaw, &rc.Cuisines)
		rc.Tagline = nullStr(tagline)
		if cover.Valid {
			rc.CoverImageURL = cover.String
		}
		rc.OurScore = nullF64(score)
		rc.AreaName = nullStr(areaName)
		out = append(out, rc)
	}
	return out, rows.Err()
}
