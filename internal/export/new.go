package export

import "time"

type implExporter struct {
	dir string
	now func() time.Time
}

// New creates an Exporter writing into dir. The directory is created on first write.
func New(dir string) Exporter {
	return &implExporter{
		dir: dir,
		now: time.Now,
	}
}
