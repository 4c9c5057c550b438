package settings

// LoadOutcome tags which path Load took.
type LoadOutcome int

const (
	// Loaded means the file was read and accepted.
	Loaded LoadOutcome = iota
	// Defaulted means no settings file existed.
	Defaulted
	// DefaultedOnError means the file existed but could not be read, parsed or validated.
	DefaultedOnError
)

func (o LoadOutcome) String() string {
	switch o {
	case Loaded:
		return "loaded"
	case Defaulted:
		return "defaulted"
	case DefaultedOnError:
		return "defaulted-on-error"
	default:
		return "unknown"
	}
}

// LoadResult describes a Load call.
type LoadResult struct {
	Outcome LoadOutcome
	Path    string
	// Err is set only for DefaultedOnError.
	Err error
}

// SaveOutcome tags whether Save reached the disk.
type SaveOutcome int

const (
	// Saved means the record was written.
	Saved SaveOutcome = iota
	// SaveFailed means the record was rejected or the write failed.
	SaveFailed
)

func (o SaveOutcome) String() string {
	switch o {
	case Saved:
		return "saved"
	case SaveFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// SaveResult describes a Save call.
type SaveResult struct {
	Outcome SaveOutcome
	Path    string
	Err     error
}

// OK reports whether the record was written.
func (r SaveResult) OK() bool {
	return r.Outcome == Saved
}
