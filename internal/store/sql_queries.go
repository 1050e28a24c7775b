package store

import (
	"github.com/Masterminds/squirrel"
)

const (
	listUsers = `SELECT id, name, surname, email, password
    FROM users;`
	createUser = `INSERT INTO users (name, surname, email, password)
    VALUES ($1, $2, $3, $4)
    RETURNING id;`
	getUser = `SELECT id, name, surname, email, password
    FROM users
    WHERE id = $1;`
	updateUser = `UPDATE users
    SET name = $1, surname = $2, email = $3, password = $4
    WHERE id = $5;`
	deleteUser = `DELETE FROM users
    WHERE id = $1;`

	listProducts = `SELECT id, product_name, description, price
    FROM products;`
	createProduct = `INSERT INTO products (product_name, description, price)
    VALUES ($1, $2, $3)
    RETURNING id;`
	getProduct = `SELECT id, product_name, description, price
    FROM products
    WHERE id = $1;`
	updateProduct = `UPDATE products
    SET product_name = $1, description = $2, price = $3
    WHERE id = $4;`
	deleteProduct = `DELETE FROM products
    WHERE id = $1;`

	createOrder = `INSERT INTO orders (user_id, product_id, date, is_delivered)
    VALUES ($1, $2, $3, $4)
    RETURNING id;`
	updateOrder = `UPDATE orders
    SET user_id = $1, product_id = $2, date = $3, is_delivered = $4
    WHERE id = $5;`
	deleteOrder = `DELETE FROM orders
    WHERE id = $1;`
)

// orderJoinBuilder assembles the three-way inner join behind every order
// read. Both joined tables carry an "id" column, so the user and product ids
// are aliased to keep the selected column list unambiguous; the first "o.id"
// stays the order's own id.
//
// Inner join semantics are deliberate: an order whose user or product
// reference does not resolve is excluded from the result set entirely.
func orderJoinBuilder() squirrel.SelectBuilder {
	return squirrel.Select(
		"o.id",
		"u.id AS user_id", "u.name", "u.surname", "u.email", "u.password",
		"p.id AS product_id", "p.product_name", "p.description", "p.price",
		"o.date", "o.is_delivered",
	).
		From("orders AS o").
		InnerJoin("users AS u ON u.id = o.user_id").
		InnerJoin("products AS p ON p.id = o.product_id").
		PlaceholderFormat(squirrel.Dollar)
}

// buildListOrdersQuery returns the SQL and arguments for listing every order
// with its nested user and product.
func buildListOrdersQuery() (string, []any, error) {
	return orderJoinBuilder().ToSql()
}

// buildGetOrderQuery returns the SQL and arguments for fetching one order by
// id through the same join.
func buildGetOrderQuery(orderID int64) (string, []any, error) {
	return orderJoinBuilder().Where(squirrel.Eq{"o.id": orderID}).ToSql()
}
