package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"usbcopy/internal/domain"
	"usbcopy/internal/logging"
)

type Planner struct {
	FS      FileSystem
	Exclude domain.ExclusionConfig
	Logger  logging.Logger
}

// Plan walks sourceDir and classifies every file into the copied or ignored
// bucket. Excluded directories are pruned before descending; their subtrees
// are summed whole into the ignored bucket so the reported ignored size
// matches what is physically on disk. Targets are laid out under
// destRoot/<basename of sourceDir>.
func (p *Planner) Plan(ctx context.Context, sourceDir, destRoot string) (domain.CopyPlan, error) {
	if p.FS == nil {
		return domain.CopyPlan{}, errors.New("planner requires FS")
	}

	stop := p.Logger.Measure("Planning copy")
	defer stop()

	if _, err := p.FS.Stat(sourceDir); err != nil {
		return domain.CopyPlan{}, err
	}

	plan := domain.CopyPlan{
		SourceRoot:   sourceDir,
		TargetDir:    filepath.Join(destRoot, filepath.Base(sourceDir)),
		CopiedStats:  domain.ExtStats{},
		IgnoredStats: domain.ExtStats{},
	}

	if err := p.walk(ctx, sourceDir, &plan); err != nil {
		return domain.CopyPlan{}, err
	}

	p.Logger.Verbosef("Planned %d files to copy (%d bytes), %d bytes ignored across %d pruned directories",
		len(plan.Items), plan.CopiedBytes, plan.IgnoredBytes, len(plan.PrunedDirs))

	return plan, nil
}

func (p *Planner) walk(ctx context.Context, dir string, plan *domain.CopyPlan) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	entries, err := p.FS.ReadDir(dir)
	if err != nil {
		if dir == plan.SourceRoot {
			return err
		}
		p.warn(plan, fmt.Sprintf("skipping unreadable directory %s: %v", dir, err))
		return nil
	}

	var subdirs []string
	for _, entry := range entries {
		name := entry.Name()
		path := filepath.Join(dir, name)

		if entry.IsDir() {
			if p.Exclude.ExcludesDir(name) {
				plan.PrunedDirs = append(plan.PrunedDirs, path)
				p.sumSubtree(ctx, path, plan)
				continue
			}
			subdirs = append(subdirs, path)
			continue
		}

		info, infoErr := entry.Info()
		if infoErr != nil {
			p.warn(plan, fmt.Sprintf("skipping unreadable file %s: %v", path, infoErr))
			continue
		}
		size := info.Size()

		if p.Exclude.ExcludesFile(name) {
			plan.IgnoredStats.Add(name, size)
			plan.IgnoredBytes += size
			continue
		}

		rel, relErr := filepath.Rel(plan.SourceRoot, path)
		if relErr != nil {
			rel = name
		}
		plan.Items = append(plan.Items, domain.CopyItem{
			SourcePath: path,
			TargetPath: filepath.Join(plan.TargetDir, rel),
			Size:       size,
		})
		plan.CopiedStats.Add(name, size)
		plan.CopiedBytes += size
	}

	for _, sub := range subdirs {
		if err := p.walk(ctx, sub, plan); err != nil {
			return err
		}
	}
	return nil
}

// sumSubtree recursively accounts every file under a pruned directory into
// the ignored bucket. No exclusion checks apply here: the subtree is skipped
// as a unit, so nothing inside it may be counted twice.
func (p *Planner) sumSubtree(ctx context.Context, dir string, plan *domain.CopyPlan) {
	if ctx.Err() != nil {
		return
	}

	entries, err := p.FS.ReadDir(dir)
	if err != nil {
		p.warn(plan, fmt.Sprintf("skipping unreadable directory %s: %v", dir, err))
		return
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			p.sumSubtree(ctx, path, plan)
			continue
		}
		info, infoErr := entry.Info()
		if infoErr != nil {
			p.warn(plan, fmt.Sprintf("skipping unreadable file %s: %v", path, infoErr))
			continue
		}
		plan.IgnoredStats.Add(entry.Name(), info.Size())
		plan.IgnoredBytes += info.Size()
	}
}

func (p *Planner) warn(plan *domain.CopyPlan, msg string) {
	plan.Warnings = append(plan.Warnings, msg)
	p.Logger.Verbosef("Warning: %s", msg)
}
