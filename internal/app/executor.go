package app

import (
	"context"
	"errors"
	"path/filepath"

	"usbcopy/internal/domain"
	"usbcopy/internal/logging"
)

type Executor struct {
	FS         FileSystem
	Logger     logging.Logger
	OnProgress ProgressFunc
}

// ExecResult summarizes one execute run. Failed counts files whose copy was
// attempted and logged as an error; the run itself still completes.
type ExecResult struct {
	Copied      int
	Failed      int
	CopiedBytes int64
}

func (e *Executor) Execute(ctx context.Context, plan domain.CopyPlan) (ExecResult, error) {
	if e.FS == nil {
		return ExecResult{}, errors.New("executor requires FS")
	}

	stop := e.Logger.Measure("Copying files")
	defer stop()

	var res ExecResult
	total := len(plan.Items)
	for i, item := range plan.Items {
		select {
		case <-ctx.Done():
			return res, ctx.Err()
		default:
		}

		if err := e.copyItem(item); err != nil {
			e.Logger.Errorf("Failed to copy %s to %s: %v", item.SourcePath, item.TargetPath, err)
			res.Failed++
		} else {
			e.Logger.Verbosef("Copied: %s -> %s", item.SourcePath, item.TargetPath)
			res.Copied++
			res.CopiedBytes += item.Size
		}

		if e.OnProgress != nil {
			e.OnProgress(i+1, total, filepath.Base(item.SourcePath))
		}
	}
	return res, nil
}

func (e *Executor) copyItem(item domain.CopyItem) error {
	if err := e.FS.MkdirAll(filepath.Dir(item.TargetPath), 0o755); err != nil {
		return err
	}
	return e.FS.CopyFile(item.SourcePath, item.TargetPath)
}
