package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matryer/is"
)

func TestDefaultABIDeclaresTheReadMethods(t *testing.T) {
	is := is.New(t)

	parsed, err := LoadABI("")
	is.NoErr(err)

	for _, name := range []string{"ownerOf", "tokenURI", "totalSupply", "tokenByIndex", "datMetadata"} {
		_, ok := parsed.Methods[name]
		is.True(ok) // default abi is missing a read method
	}

	is.Equal(len(parsed.Methods["datMetadata"].Outputs), 3)
}

func TestLoadABIFromHardhatArtifact(t *testing.T) {
	is := is.New(t)

	path := filepath.Join(t.TempDir(), "lazaiDAT.json")
	err := os.WriteFile(path, []byte(`{"contractName":"LazaiDAT","abi":`+DefaultABI+`,"bytecode":"0x"}`), 0o600)
	is.NoErr(err)

	parsed, err := LoadABI(path)
	is.NoErr(err)

	_, ok := parsed.Events["Transfer"]
	is.True(ok)
}

func TestParseABIRejectsArtifactWithoutABI(t *testing.T) {
	is := is.New(t)

	_, err := ParseABI([]byte(`{"contractName":"LazaiDAT"}`))
	is.True(err != nil)
}

func TestLoadABIFailsForMissingFile(t *testing.T) {
	is := is.New(t)

	_, err := LoadABI(filepath.Join(t.TempDir(), "nope.json"))
	is.True(err != nil)
}
