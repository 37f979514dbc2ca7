package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (prn, password_hash, name, course, year, interests)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING user_id, prn, password_hash, name, course, year, interests, created_at;`

	findUserByPRN = `SELECT user_id, prn, password_hash, name, course, year, interests, created_at
    FROM users
    WHERE prn = $1;`

	findUserByID = `SELECT user_id, prn, password_hash, name, course, year, interests, created_at
    FROM users
    WHERE user_id = $1;`

	findStudent = `SELECT prn, name, course, year
    FROM students
    WHERE prn = $1 AND name = $2 AND course = $3 AND year = $4;`
)

// psql is the shared squirrel statement builder configured for PostgreSQL
// positional placeholders ($1, $2, ...).
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildCreateItemQuery produces the INSERT for a new marketplace item.
// The seller_id argument always comes from the verified caller identity.
func buildCreateItemQuery(sellerID int64, title string, description *string, price float64, imageURL *string) (string, []any, error) {
	return psql.Insert("marketplace_items").
		Columns("seller_id", "title", "description", "price", "image_url").
		Values(sellerID, title, description, price, imageURL).
		Suffix("RETURNING id, seller_id, title, description, price, image_url, created_at").
		ToSql()
}

// buildListItemsQuery produces the full-scan listing joined with the seller's
// display name. No pagination or filtering is applied.
func buildListItemsQuery() (string, []any, error) {
	return psql.Select("m.id", "m.title", "m.description", "m.price", "u.name AS seller", "u.user_id AS seller_id").
		From("marketplace_items m").
		Join("users u ON m.seller_id = u.user_id").
		OrderBy("m.id").
		ToSql()
}

// buildFindItemQuery produces the lookup of a single item by its ID.
func buildFindItemQuery(itemID int64) (string, []any, error) {
	return psql.Select("id", "seller_id", "title", "description", "price", "image_url", "created_at").
		From("marketplace_items").
		Where(sq.Eq{"id": itemID}).
		ToSql()
}

// buildDeleteOwnedItemQuery produces the conditional delete that enforces the
// ownership predicate inside the database.
func buildDeleteOwnedItemQuery(itemID, sellerID int64) (string, []any, error) {
	return psql.Delete("marketplace_items").
		Where(sq.Eq{"id": itemID, "seller_id": sellerID}).
		ToSql()
}
