package feeds

// Config holds configuration for locating and reading schedule feeds.
type Config struct {
	// Backend selects where feeds live: "file" or "bucket".
	Backend string `mapstructure:"backend" default:"file"`
	// Dir is the local directory used by the file backend.
	Dir string `mapstructure:"dir" default:"."`
	// Prefix is the object key prefix used by the bucket backend.
	Prefix string `mapstructure:"prefix" default:"schedule/"`
	// Sheet is the workbook sheet holding the distribution schedule.
	Sheet string `mapstructure:"sheet" default:"Schedule"`
	// FirstRow is the 1-based row where the schedule area starts.
	FirstRow int `mapstructure:"first_row" default:"6"`
	// OutputSuffix is appended to a workbook name when saving a backfilled copy.
	OutputSuffix string `mapstructure:"output_suffix" default:".new"`
}

const (
	// BackendFile reads and writes feeds in a local directory.
	BackendFile = "file"
	// BackendBucket reads and writes feeds in the configured storage bucket.
	BackendBucket = "bucket"
)
