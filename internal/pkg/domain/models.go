package domain

import "strings"

// Registry identifies one of the two disjoint token contracts a DAT can live on.
type Registry string

const (
	RegistryOfficial  Registry = "official"
	RegistryCommunity Registry = "user"
)

// ParseRegistry maps a path segment onto a known registry. The community
// registry is addressed as "user" by existing clients, "community" is
// accepted as an alias. Unknown values are returned unchanged so that the
// caller can report them.
func ParseRegistry(s string) Registry {
	switch strings.ToLower(s) {
	case "official":
		return RegistryOfficial
	case "user", "community":
		return RegistryCommunity
	default:
		return Registry(s)
	}
}

func (r Registry) IsKnown() bool {
	return r == RegistryOfficial || r == RegistryCommunity
}

// DAT is a Data Asset Token as presented in the directory listing. The
// tuple (Type, ID) is unique, ID alone is not.
type DAT struct {
	ID          uint64   `json:"id"`
	Type        Registry `json:"type"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Owner       string   `json:"owner"`
}

// Source tells whether a directory listing was served from memory or
// from a fresh enumeration of the registries.
type Source string

const (
	SourceCache Source = "cache"
	SourceFresh Source = "fresh"
)

// AccessGrant is the outcome of a single ownership check.
type AccessGrant struct {
	Allowed  bool
	DataURL  string
	TokenURI string
	CID      string
}
