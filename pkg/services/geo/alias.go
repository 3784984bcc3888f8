package geo

import (
	"fmt"

	"gopkg.in/ini.v1"
)

// AliasTable is the bidirectional mapping between normalized survey
// district names and the canonical feature keys of the boundary dataset.
// Lookups report a miss explicitly; there is no fallback key, so an
// unmatched name is always a visible (string, false) result instead of an
// implicit empty mapping.
type AliasTable struct {
	toCanonical map[string]string
	toAliases   map[string][]string
}

func NewAliasTable(aliases map[string]string) AliasTable {
	t := AliasTable{
		toCanonical: make(map[string]string, len(aliases)),
		toAliases:   map[string][]string{},
	}
	for alias, canonical := range aliases {
		key := Normalize(alias)
		value := Normalize(canonical)
		t.toCanonical[key] = value
		t.toAliases[value] = append(t.toAliases[value], key)
	}
	return t
}

// DefaultAliasTable covers the twenty districts of the survey. Most names
// map onto themselves after normalization; the island districts carry the
// shorter keys the boundary dataset uses.
func DefaultAliasTable() AliasTable {
	return NewAliasTable(map[string]string{
		"viana do castelo": "viana do castelo",
		"braga":            "braga",
		"vila real":        "vila real",
		"bragança":         "braganca",
		"aveiro":           "aveiro",
		"coimbra":          "coimbra",
		"leiria":           "leiria",
		"lisboa":           "lisboa",
		"porto":            "porto",
		"setúbal":          "setubal",
		"viseu":            "viseu",
		"guarda":           "guarda",
		"santarém":         "santarem",
		"beja":             "beja",
		"castelo branco":   "castelo branco",
		"évora":            "evora",
		"faro":             "faro",
		"portalegre":       "portalegre",
		"ilha da madeira":  "madeira",
		"açores":           "acores",
	})
}

// LoadAliasTable reads an alias table from an ini file. Every key of the
// [aliases] section is a district name, its value the canonical boundary
// key.
func LoadAliasTable(path string) (AliasTable, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return AliasTable{}, fmt.Errorf("load alias table %s: %w", path, err)
	}

	section := cfg.Section("aliases")
	if len(section.Keys()) == 0 {
		return AliasTable{}, fmt.Errorf("alias table %s: [aliases] section is empty", path)
	}

	aliases := make(map[string]string, len(section.Keys()))
	for _, key := range section.Keys() {
		if key.Value() == "" {
			return AliasTable{}, fmt.Errorf("alias table %s: %q has no canonical key", path, key.Name())
		}
		aliases[key.Name()] = key.Value()
	}
	return NewAliasTable(aliases), nil
}

// Canonical resolves a raw district name to its canonical boundary key.
// The name is normalized before lookup.
func (t AliasTable) Canonical(name string) (string, bool) {
	key, ok := t.toCanonical[Normalize(name)]
	return key, ok
}

// Aliases lists the normalized survey names mapped onto a canonical key.
func (t AliasTable) Aliases(canonical string) []string {
	return t.toAliases[Normalize(canonical)]
}

func (t AliasTable) Len() int {
	return len(t.toCanonical)
}
