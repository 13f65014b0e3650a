package entity

// Platform identifies where a live set is hosted for embedding.
type Platform string

const (
	// PlatformYoutube is the default when a payload omits the platform.
	PlatformYoutube Platform = "youtube"
	// PlatformVimeo is the only other supported embed host.
	PlatformVimeo Platform = "vimeo"
)

// String returns the string representation of the Platform.
func (p Platform) String() string {
	return string(p)
}

// IsValid checks if the Platform is a valid value.
func (p Platform) IsValid() bool {
	switch p {
	case PlatformYoutube, PlatformVimeo:
		return true
	default:
		return false
	}
}
