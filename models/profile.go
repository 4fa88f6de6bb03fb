package models

// Profile is a cached profile blob for a hire or provider account.
// Saves are shallow merges: incoming keys overwrite, absent keys survive.
type Profile map[string]any

// Merge returns a copy of p with the keys of patch applied on top.
func (p Profile) Merge(patch Profile) Profile {
	merged := make(Profile, len(p)+len(patch))
	for k, v := range p {
		merged[k] = v
	}
	for k, v := range patch {
		merged[k] = v
	}
	return merged
}
