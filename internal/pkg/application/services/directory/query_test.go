package directory

import (
	"errors"
	"net/url"
	"testing"

	"github.com/diwise/api-datgateway/internal/pkg/domain"
	"github.com/matryer/is"
)

func TestParseQueryDefaults(t *testing.T) {
	is := is.New(t)

	q, err := ParseQuery(url.Values{})
	is.NoErr(err)

	is.Equal(q.Sort, DefaultSort)
	is.Equal(q.Type, domain.Registry(""))
	is.True(q.MinPrice == nil)
	is.True(q.MaxPrice == nil)
}

func TestParseQueryRejectsInvalidValues(t *testing.T) {
	for _, raw := range []string{
		"type=bogus",
		"sort=random",
		"minPrice=cheap",
		"maxPrice=-1",
		"minPrice=5&maxPrice=1",
	} {
		t.Run(raw, func(t *testing.T) {
			is := is.New(t)
			params, _ := url.ParseQuery(raw)

			_, err := ParseQuery(params)
			is.True(err != nil)
		})
	}
}

func TestParseQueryWithUnknownTypeIsInvalidRegistry(t *testing.T) {
	is := is.New(t)

	_, err := ParseQuery(url.Values{"type": []string{"bogus"}})
	is.True(errors.Is(err, domain.ErrInvalidRegistry))
}

func TestApplyFiltersByTypeAndText(t *testing.T) {
	is := is.New(t)

	q, err := ParseQuery(url.Values{"type": []string{"user"}, "q": []string{"WEATHER"}})
	is.NoErr(err)

	result := q.Apply(testDATs())

	is.Equal(len(result), 1)
	is.Equal(result[0].Name, "Weather stations")
	is.Equal(result[0].Type, domain.RegistryCommunity)
}

func TestApplyFiltersByPriceRange(t *testing.T) {
	is := is.New(t)

	q, err := ParseQuery(url.Values{"minPrice": []string{"0.5"}, "maxPrice": []string{"2"}, "sort": []string{"price-asc"}})
	is.NoErr(err)

	result := q.Apply(testDATs())

	is.Equal(len(result), 2)
	is.Equal(result[0].Price, 0.5)
	is.Equal(result[1].Price, 2.0)
}

func TestApplyFiltersByOwnerIgnoringCase(t *testing.T) {
	is := is.New(t)

	q, err := ParseQuery(url.Values{"owner": []string{"0xabc"}})
	is.NoErr(err)

	result := q.Apply(testDATs())

	is.Equal(len(result), 2)
}

func TestApplySortsNewestFirstByDefault(t *testing.T) {
	is := is.New(t)

	q, err := ParseQuery(url.Values{})
	is.NoErr(err)

	result := q.Apply(testDATs())

	is.Equal(len(result), 4)
	is.Equal(result[0].ID, uint64(3))
	is.Equal(result[3].ID, uint64(1))
}

func TestApplySortsByName(t *testing.T) {
	is := is.New(t)

	q, err := ParseQuery(url.Values{"sort": []string{"name-desc"}})
	is.NoErr(err)

	result := q.Apply(testDATs())

	is.Equal(result[0].Name, "Weather stations")
	is.Equal(result[3].Name, "Air quality")
}

func TestApplyDoesNotModifyInput(t *testing.T) {
	is := is.New(t)
	dats := testDATs()

	q, err := ParseQuery(url.Values{"sort": []string{"price-desc"}})
	is.NoErr(err)

	_ = q.Apply(dats)

	is.Equal(dats, testDATs())
}

func testDATs() []domain.DAT {
	return []domain.DAT{
		{ID: 1, Type: domain.RegistryOfficial, Name: "Air quality", Description: "hourly sensor readings", Price: 0.5, Owner: "0xABC"},
		{ID: 2, Type: domain.RegistryOfficial, Name: "Traffic counts", Description: "vehicles per junction", Price: 3, Owner: "0xDEF"},
		{ID: 1, Type: domain.RegistryCommunity, Name: "Weather stations", Description: "community weather data", Price: 2, Owner: "0xabc"},
		{ID: 3, Type: domain.RegistryCommunity, Name: "Bike lanes", Description: "city cycling map", Price: 0.1, Owner: "0x123"},
	}
}
