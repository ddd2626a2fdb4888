package domain

import (
	"testing"

	"github.com/matryer/is"
)

func TestParseRegistry(t *testing.T) {
	is := is.New(t)

	is.Equal(ParseRegistry("official"), RegistryOfficial)
	is.Equal(ParseRegistry("user"), RegistryCommunity)
	is.Equal(ParseRegistry("Community"), RegistryCommunity)

	bogus := ParseRegistry("bogus")
	is.Equal(string(bogus), "bogus")
	is.True(!bogus.IsKnown()) // unknown registries must not be accepted
}
