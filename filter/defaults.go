package filter

// DefaultExtensions is the image extension allow-list, matched
// case-insensitively against file extensions only.
var DefaultExtensions = []string{
	"jpg", "jpeg", "png", "gif", "bmp", "tiff", "tif", "webp", "ico", "svg",
}

// SkippedDirNames contains directory names that are never descended into
// during a scan pass. These hold metadata or caches, not user photos.
var SkippedDirNames = []string{
	// Version control / tooling
	".git",
	".svn",
	".hg",
	".cache",

	// Thumbnail and metadata caches left behind by photo managers and NAS
	// indexers
	".thumbnails",
	".picasaoriginals",
	"@eaDir",

	// OS trash and spotlight data
	".Trash",
	".Trashes",
	".Spotlight-V100",
	"$RECYCLE.BIN",

	// Dependency trees, in case a root overlaps a source checkout
	"node_modules",
}
