package canonicalize

import "fmt"

// registry maps known profile ids to their Profile definition. Any change
// to a profile's rules requires a new id (spec §4.2 "Profile identity"),
// so this registry only ever grows.
var registry = map[string]Profile{
	string(V1.ID): V1,
}

// Lookup resolves a profile id string to its Profile definition.
func Lookup(id string) (Profile, error) {
	p, ok := registry[id]
	if !ok {
		return Profile{}, fmt.Errorf("canonicalize: unknown profile id %q", id)
	}
	return p, nil
}
