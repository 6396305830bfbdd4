package exitcode

const (
	Success        = 0
	UsageError     = 1
	ReadError      = 2
	NoValidColumns = 3
	SkippedColumns = 4
	OutputError    = 5
)
