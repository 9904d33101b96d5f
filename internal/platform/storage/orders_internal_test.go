package storage

import (
	"strings"
	"testing"

	pg "github.com/go-jet/jet/v2/postgres"
	"github.com/retail-automation/orders/internal/platform/models"
	"github.com/retail-automation/orders/internal/platform/storage/gen/postgres/public/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Postgres rejects ON clauses referencing tables joined later in the FROM
// list, so the partner item restriction must not name the shop join directly.
func TestUnitPartnerOrdersStatement(t *testing.T) {
	cond := table.Orders.State.NOT_EQ(pg.String(models.StateBasket))

	sql, args := listOrdersStatement(cond, partnerItemCond(7)).Sql()

	itemJoinIx := strings.Index(sql, "LEFT JOIN public.order_item")
	variantJoinIx := strings.Index(sql, "LEFT JOIN public.variant")
	require.Greater(t, itemJoinIx, -1, "statement should join order items")
	require.Greater(t, variantJoinIx, itemJoinIx, "variants should be joined after order items")

	itemJoin := sql[itemJoinIx:variantJoinIx]
	assert.Contains(t, itemJoin, "IN (", "item restriction should go through a subquery")
	assert.Contains(t, itemJoin, "FROM public.shop",
		"shop rows used by the restriction should come from the subquery's own FROM")
	assert.Contains(t, args, int32(7), "partner user id should be bound")
}
