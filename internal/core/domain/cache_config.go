package domain

// CacheConfig holds the cache settings loaded from strata.yaml.
type CacheConfig struct {
	// RootID is the designated query root node. It carries no inbound
	// edges and is exempt from orphan collection.
	RootID NodeID
	// IdentityFields are the payload fields checked, in order, when
	// extracting an entity identity. Defaults to ["id"].
	IdentityFields []string
	// StorePath is the location of the persisted snapshot file.
	StorePath string
}
