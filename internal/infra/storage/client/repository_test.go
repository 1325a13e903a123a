package client

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(&pq.Error{Code: "23505"}))
	assert.True(t, IsUniqueViolation(fmt.Errorf("insert: %w", &pq.Error{Code: "23505"})))
	assert.False(t, IsUniqueViolation(&pq.Error{Code: "23503"}))
	assert.False(t, IsUniqueViolation(errors.New("23505")))
	assert.False(t, IsUniqueViolation(nil))
}

func TestSelectClients(t *testing.T) {
	query, args, err := selectClients().
		Where("c.id = ?", "x").
		ToSql()

	assert.NoError(t, err)
	assert.Contains(t, query, "LEFT JOIN appointments a ON a.client_id = c.id")
	assert.Contains(t, query, "GROUP BY c.id")
	assert.Contains(t, query, "c.id = $1")
	assert.Equal(t, []interface{}{"x"}, args)
}
