package models

const (
	// MasterRevision is the live development branch of a tortilla tutorial.
	MasterRevision = "master"
	// MasterHistoryRevision is the historical view of the development branch.
	MasterHistoryRevision = "master-history"
)

// RevisionKind classifies a revision identifier.
type RevisionKind int

const (
	// RevisionOther is any release branch, tag or commit hash.
	RevisionOther RevisionKind = iota
	// RevisionCurrent is the live development branch.
	RevisionCurrent
	// RevisionHistory is the historical view of the development branch.
	RevisionHistory
)

// ParseRevisionKind derives the kind of a raw revision string. Matching is
// exact; anything unrecognized is RevisionOther.
func ParseRevisionKind(revision string) RevisionKind {
	switch revision {
	case MasterRevision:
		return RevisionCurrent
	case MasterHistoryRevision:
		return RevisionHistory
	default:
		return RevisionOther
	}
}

// IsDevelopment reports whether the revision tracks the development branch.
func (k RevisionKind) IsDevelopment() bool {
	return k == RevisionCurrent || k == RevisionHistory
}

func (k RevisionKind) String() string {
	switch k {
	case RevisionCurrent:
		return "current"
	case RevisionHistory:
		return "history"
	default:
		return "other"
	}
}
