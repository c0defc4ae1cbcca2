package mysql

// Seed writes are upsert-by-slug: the slug UNIQUE key turns the INSERT
// into an UPDATE on reseed. Area references resolve through a scalar
// subquery so seed payloads never carry numeric ids; a missing or NULL
// area slug resolves to NULL.

const upsertAreaSQL = `
INSERT INTO areas
  (slug, name, name_local, description, lat, lon, featured, sort_order)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  name        = VALUES(name),
  name_local  = VALUES(name_local),
  description = VALUES(description),
  lat         = VALUES(lat),
  lon         = VALUES(lon),
  featured    = VALUES(featured),
  sort_order  = VALUES(sort_order),
  updated_at  = CURRENT_TIMESTAMP
`

const upsertTagSQL = `
INSERT INTO tags
  (slug, name, category, color, sort_order)
VALUES
  (?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  name       = VALUES(name),
  category   = VALUES(category),
  color      = VALUES(color),
  sort_order = VALUES(sort_order)
`

const upsertAmenitySQL = `
INSERT INTO amenities
  (slug, name, category, icon, sort_order)
VALUES
  (?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  name       = VALUES(name),
  category   = VALUES(category),
  icon       = VALUES(icon),
  sort_order = VALUES(sort_order)
`

const upsertHotelSQL = `
INSERT INTO hotels
  (slug, name, area_id, stars, price_tier, price_from_usd, tagline,
   description_short, description, cover_image_url, lat, lon,
   total_rooms, year_built, our_score, featured, status, website_url)
VALUES
  (?, ?, (SELECT id FROM areas WHERE slug = ?), ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  name              = VALUES(name),
  area_id           = VALUES(area_id),
  stars             = VALUES(stars),
  price_tier        = VALUES(price_tier),
  price_from_usd    = VALUES(price_from_usd),
  tagline           = VALUES(tagline),
  description_short = VALUES(description_short),
  description       = VALUES(description),
  cover_image_url   = VALUES(cover_image_url),
  lat               = VALUES(lat),
  lon               = VALUES(lon),
  total_rooms       = VALUES(total_rooms),
  year_built        = VALUES(year_built),
  our_score         = VALUES(our_score),
  featured          = VALUES(featured),
  status            = VALUES(status),
  website_url       = VALUES(website_url),
  updated_at        = CURRENT_TIMESTAMP
`

const upsertListingSQL = `
INSERT INTO listings
  (slug, name, name_local, listing_type, area_id, tagline,
   description_short, description, cover_image_url, lat, lon,
   is_free, admission_foreigner, our_score, featured, status)
VALUES
  (?, ?, ?, ?, (SELECT id FROM areas WHERE slug = ?), ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  name                = VALUES(name),
  name_local          = VALUES(name_local),
  listing_type        = VALUES(listing_type),
  area_id             = VALUES(area_id),
  tagline             = VALUES(tagline),
  description_short   = VALUES(description_short),
  description         = VALUES(description),
  cover_image_url     = VALUES(cover_image_url),
  lat                 = VALUES(lat),
  lon                 = VALUES(lon),
  is_free             = VALUES(is_free),
  admission_foreigner = VALUES(admission_foreigner),
  our_score           = VALUES(our_score),
  featured            = VALUES(featured),
  status              = VALUES(status),
  updated_at          = CURRENT_TIMESTAMP
`

const upsertRestaurantSQL = `
INSERT INTO restaurants
  (slug, name, area_id, price_tier, cuisines, price_pp_min, price_pp_max,
   tagline, description_short, description, cover_image_url, lat, lon,
   opening_hours, google_rating, our_score, featured, editor_pick, verified, status)
VALUES
  (?, ?, (SELECT id FROM areas WHERE slug = ?), ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  name              = VALUES(name),
  area_id           = VALUES(area_id),
  price_tier        = VALUES(price_tier),
  cuisines          = VALUES(cuisines),
  price_pp_min      = VALUES(price_pp_min),
  price_pp_max      = VALUES(price_pp_max),
  tagline           = VALUES(tagline),
  description_short = VALUES(description_short),
  description       = VALUES(description),
  cover_image_url   = VALUES(cover_image_url),
  lat               = VALUES(lat),
  lon               = VALUES(lon),
  opening_hours     = VALUES(opening_hours),
  google_rating     = VALUES(google_rating),
  our_score         = VALUES(our_score),
  featured          = VALUES(featured),
  editor_pick       = VALUES(editor_pick),
  verified          = VALUES(verified),
  status            = VALUES(status),
  updated_at        = CURRENT_TIMESTAMP
`

// -----------------------------------------------------------------------------
// SEARCH
// -----------------------------------------------------------------------------

// Case-insensitive substring match over name, tagline and area name.
// Column collations are *_ci so plain LIKE is already case-insensitive.
// Ordering is fixed: featured first, then editorial score, then id for a
// stable tail.

const searchHotelsSQL = `
SELECT h.slug, h.name, h.stars, a.name
FROM hotels h
LEFT JOIN areas a ON a.id = h.area_id
WHERE h.status = 'PUBLISHED'
  AND (h.name LIKE ? OR h.tagline LIKE ? OR a.name LIKE ?)
ORDER BY h.featured DESC, h.our_score DESC, h.id ASC
LIMIT ?
`

const searchListingsSQL = `
SELECT l.slug, l.name, l.listing_type, a.name
FROM listings l
LEFT JOIN areas a ON a.id = l.area_id
WHERE l.status = 'PUBLISHED'
  AND (l.name LIKE ? OR l.tagline LIKE ? OR a.name LIKE ?)
ORDER BY l.featured DESC, l.our_score DESC, l.id ASC
LIMIT ?
`

const searchRestaurantsSQL = `
SELECT r.slug, r.name, r.price_tier, a.name
FROM restaurants r
LEFT JOIN areas a ON a.id = r.area_id
WHERE r.status = 'PUBLISHED'
  AND (r.name LIKE ? OR r.tagline LIKE ? OR a.name LIKE ?)
ORDER BY r.featured DESC, r.our_score DESC, r.id ASC
LIMIT ?
`

// -----------------------------------------------------------------------------
// MAP SOURCES
// -----------------------------------------------------------------------------

// Published rows with both coordinates; everything else never becomes a pin.

const geoHotelsSQL = `
SELECT h.id, h.slug, h.name, h.lat, h.lon, h.stars, h.tagline, a.name
FROM hotels h
LEFT JOIN areas a ON a.id = h.area_id
WHERE h.status = 'PUBLISHED' AND h.lat IS NOT NULL AND h.lon IS NOT NULL
ORDER BY h.id
`

const geoListingsSQL = `
SELECT l.id, l.slug, l.name, l.lat, l.lon, l.listing_type, l.tagline, a.name
FROM listings l
LEFT JOIN areas a ON a.id = l.area_id
WHERE l.status = 'PUBLISHED' AND l.lat IS NOT NULL AND l.lon IS NOT NULL
ORDER BY l.id
`

const geoRestaurantsSQL = `
SELECT r.id, r.slug, r.name, r.lat, r.lon, r.price_tier, r.tagline, a.name
FROM restaurants r
LEFT JOIN areas a ON a.id = r.area_id
WHERE r.status = 'PUBLISHED' AND r.lat IS NOT NULL AND r.lon IS NOT NULL
ORDER BY r.id
`

// -----------------------------------------------------------------------------
// DETAIL READS
// -----------------------------------------------------------------------------

const getHotelSQL = `
SELECT
  h.id,
  h.slug,
  h.name,
  h.stars,
  h.price_tier,
  h.price_from_usd,
  h.tagline,
  h.description_short,
  h.description,
  h.cover_image_url,
  h.lat,
  h.lon,
  h.total_rooms,
  h.year_built,
  h.our_score,
  h.featured,
  h.website_url,
  a.name,
  a.slug
FROM hotels h
LEFT JOIN areas a ON a.id = h.area_id
WHERE h.slug = ? AND h.status = 'PUBLISHED'
`

const getListingSQL = `
SELECT
  l.id,
  l.slug,
  l.name,
  l.name_local,
  l.listing_type,
  l.tagline,
  l.description_short,
  l.description,
  l.cover_image_url,
  l.lat,
  l.lon,
  l.is_free,
  l.admission_foreigner,
  l.our_score,
  l.featured,
  a.name,
  a.slug
FROM listings l
LEFT JOIN areas a ON a.id = l.area_id
WHERE l.slug = ? AND l.status = 'PUBLISHED'
`

const getRestaurantSQL = `
SELECT
  r.id,
  r.slug,
  r.name,
  r.price_tier,
  r.cuisines,
  r.price_pp_min,
  r.price_pp_max,
  r.tagline,
  r.description_short,
  r.description,
  r.cover_image_url,
  r.lat,
  r.lon,
  r.opening_hours,
  r.google_rating,
  r.our_score,
  r.featured,
  r.editor_pick,
  a.name,
  a.slug
FROM restaurants r
LEFT JOIN areas a ON a.id = r.area_id
WHERE r.slug = ? AND r.status = 'PUBLISHED'
`

const hotelAmenitiesSQL = `
SELECT am.slug, am.name, am.category, am.icon, am.sort_order
FROM hotel_amenities ha
JOIN amenities am ON am.id = ha.amenity_id
WHERE ha.hotel_id = ?
ORDER BY am.sort_order, am.slug
`

const hotelRoomsSQL = `
SELECT name, description, max_occupancy, bed_type, size_m2, price_from_usd
FROM room_types
WHERE hotel_id = ?
ORDER BY id
`

const hotelPolicySQL = `
SELECT checkin_from, checkout_until, cancellation_hours, cancellation_policy,
       breakfast_included, parking_available, pets_allowed
FROM hotel_policies
WHERE hotel_id = ?
`

const entityTagsSQL = `
SELECT t.slug, t.name, t.category, t.color, t.sort_order
FROM %s j
JOIN tags t ON t.id = j.tag_id
WHERE j.%s = ?
ORDER BY t.sort_order, t.slug
`

const entityFAQsSQL = `
SELECT question, answer, sort_order
FROM faqs
WHERE owner_type = ? AND owner_id = ?
ORDER BY sort_order, id
`
