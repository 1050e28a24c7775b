// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildListOrdersQuery_SQLContainsParts(t *testing.T) {
	query, args, err := buildListOrdersQuery()
	require.NoError(t, err)

	// args checks: no filter, no arguments
	require.Empty(t, args)

	// query checks (contains parts)
	q := strings.ToLower(query)

	require.Contains(t, q, "select")
	require.Contains(t, q, "from orders as o")
	require.Contains(t, q, "inner join users as u on u.id = o.user_id")
	require.Contains(t, q, "inner join products as p on p.id = o.product_id")

	// both joined tables carry an "id" column, so each must be aliased
	require.Contains(t, q, "u.id as user_id")
	require.Contains(t, q, "p.id as product_id")
}

func Test_buildListOrdersQuery_SelectsAllExpectedColumns(t *testing.T) {
	query, _, err := buildListOrdersQuery()
	require.NoError(t, err)

	q := strings.ToLower(query)

	// Check that all expected columns are present in the SELECT section.
	// This is a "contains" check; it does not enforce order but catches regressions quickly.
	cols := []string{
		"o.id",
		"u.name",
		"u.surname",
		"u.email",
		"u.password",
		"p.product_name",
		"p.description",
		"p.price",
		"o.date",
		"o.is_delivered",
	}
	for _, c := range cols {
		require.Contains(t, q, c)
	}
}

func Test_buildGetOrderQuery(t *testing.T) {
	tests := []struct {
		name       string
		orderID    int64
		checkQuery func(t *testing.T, query string, args []any)
	}{
		{
			name:    "success: valid order ID",
			orderID: 42,
			checkQuery: func(t *testing.T, query string, args []any) {
				assert.True(t, strings.Contains(strings.ToUpper(query), "WHERE"))
				assert.True(t, strings.Contains(query, "o.id = $1"),
					"query should filter by the order's own id with a $1 placeholder")

				require.Len(t, args, 1)
				assert.Equal(t, int64(42), args[0])
			},
		},
		{
			name:    "success: zero order ID",
			orderID: 0,
			checkQuery: func(t *testing.T, query string, args []any) {
				require.Len(t, args, 1)
				assert.Equal(t, int64(0), args[0],
					"zero order ID should be passed as-is (DB will return empty result)")
			},
		},
		{
			name:    "success: negative order ID",
			orderID: -1,
			checkQuery: func(t *testing.T, query string, args []any) {
				// buildGetOrderQuery does not validate the id.
				// Validation is a service-layer concern; this function only builds SQL.
				require.Len(t, args, 1)
				assert.Equal(t, int64(-1), args[0])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildGetOrderQuery(tt.orderID)
			require.NoError(t, err)
			tt.checkQuery(t, query, args)
		})
	}
}

func Test_orderJoinBuilder_PlaceholderFormat(t *testing.T) {
	query, _, err := buildGetOrderQuery(1)
	require.NoError(t, err)

	// placeholder format should be $1 (Postgres)
	require.Contains(t, query, "$1")
	require.NotContains(t, query, "?")
}
