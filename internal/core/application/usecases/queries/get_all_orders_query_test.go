package queries_test

import (
	"testing"

	"foodadmin/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetAllOrdersQuery_ValidatesAfterConstruction(t *testing.T) {
	query := queries.NewGetAllOrdersQuery()
	require.NoError(t, query.Validate())
}

func TestGetAllOrdersQuery_ZeroValue_FailsValidation(t *testing.T) {
	query := queries.GetAllOrdersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetAllOrdersQueryIsNotConstructed)
}
