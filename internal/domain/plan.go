package domain

type CopyItem struct {
	SourcePath string
	TargetPath string
	Size       int64
}

// CopyPlan is the full classification of one source tree: the files that
// would be copied, everything sent to the ignored bucket, and the pruned
// directories whose subtrees were summed whole.
type CopyPlan struct {
	SourceRoot   string
	TargetDir    string
	Items        []CopyItem
	PrunedDirs   []string
	CopiedStats  ExtStats
	IgnoredStats ExtStats
	CopiedBytes  int64
	IgnoredBytes int64
	Warnings     []string
}
