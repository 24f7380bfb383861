package domain

// GroupStore persists generated group parameters between runs.
type GroupStore interface {
	SaveGroup(g Group) error
	LoadGroup() (Group, bool, error)
}
