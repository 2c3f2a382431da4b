package cache

// ScopedKeyer wraps a Keyer with a prefix so several catalogs, users or
// deployments can share one backend without seeing each other's entries.
//
// Example usage:
//
//	// Charts rendered for one observatory site
//	siteKeyer := NewScopedKeyer(NewDefaultKeyer(), "site:kitt-peak:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// SceneKey generates a prefixed key for scene metadata.
func (k *ScopedKeyer) SceneKey(sceneHash string) string {
	return k.prefix + k.inner.SceneKey(sceneHash)
}

// ArtifactKey generates a prefixed key for artifact caching.
func (k *ScopedKeyer) ArtifactKey(sceneHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(sceneHash, opts)
}

// StyleKey generates a prefixed key for resolved styles.
func (k *ScopedKeyer) StyleKey(styleHash string) string {
	return k.prefix + k.inner.StyleKey(styleHash)
}
