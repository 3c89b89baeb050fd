package queries_test

import (
	"testing"

	"fleet/internal/core/application/usecases/queries"
	"fleet/internal/core/domain/model/driver"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetAllDriversQuery_Valid(t *testing.T) {
	query, err := queries.NewGetAllDriversQuery(nil, "")
	require.NoError(t, err)
	require.NoError(t, query.Validate())
}

func TestNewGetAllDriversQuery_WithFilters(t *testing.T) {
	status := driver.StatusAvailable

	query, err := queries.NewGetAllDriversQuery(&status, "DL-1")

	require.NoError(t, err)
	require.NotNil(t, query.Status())
	assert.Equal(t, driver.StatusAvailable, *query.Status())
	assert.Equal(t, "DL-1", query.LicenseSearch())
}

func TestNewGetAllDriversQuery_InvalidStatusFilter(t *testing.T) {
	status := driver.StatusUnknown

	_, err := queries.NewGetAllDriversQuery(&status, "")

	require.Error(t, err)
}

func TestGetAllDriversQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetAllDriversQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetAllDriversQueryIsNotConstructed)
}
