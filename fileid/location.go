package fileid

// Location says where a file lives. It is either a WebLocation or a RemoteLocation.
type Location interface {
	isLocation()
}

// WebLocation is a file the platform fetches from a remote URL on demand.
type WebLocation struct {
	URL        string
	AccessHash int64
	// HasAccessHash reports whether the record carries AccessHash. Records issued
	// without one must be re-encoded without one.
	HasAccessHash bool
}

// RemoteLocation is a file stored on the platform's own servers.
type RemoteLocation struct {
	ID         int64
	AccessHash int64
	// Photo is the geometry of photo-like categories; nil for all others.
	Photo *PhotoGeometry
}

// PhotoGeometry is the extra addressing carried by photo-like categories.
type PhotoGeometry struct {
	VolumeID int64
	LocalID  int32
	Source   PhotoSizeSource
}

func (WebLocation) isLocation()    {}
func (RemoteLocation) isLocation() {}
