package fileutil

import (
	"errors"
	"os"
)

// Linker creates a hard link at target that points at source.
type Linker interface {
	CreateHardLink(target, source string) error
}

// LinkerFunc adapts a function to the Linker interface.
type LinkerFunc func(target, source string) error

// CreateHardLink calls f(target, source).
func (f LinkerFunc) CreateHardLink(target, source string) error { return f(target, source) }

type linkStrategy struct {
	name string
	link func(oldname, newname string) error
}

// ChainLinker tries each platform strategy in order. A strategy that reports
// "unsupported" hands over to the next one; any other failure is final.
type ChainLinker struct {
	strategies []linkStrategy
}

// NewLinker returns the strategy chain for the running platform.
func NewLinker() *ChainLinker {
	return newChainLinker(platformStrategies()...)
}

func newChainLinker(strategies ...linkStrategy) *ChainLinker {
	return &ChainLinker{strategies: append([]linkStrategy(nil), strategies...)}
}

// Strategies lists the strategy names in the order they are attempted.
func (c *ChainLinker) Strategies() []string {
	names := make([]string, 0, len(c.strategies))
	for _, s := range c.strategies {
		names = append(names, s.name)
	}
	return names
}

// CreateHardLink links target to source. Errors are always one of
// *CrossDeviceLinkError, *LinkUnsupportedError, or *LinkFailedError.
func (c *ChainLinker) CreateHardLink(target, source string) error {
	var (
		lastErr error
		tried   []string
	)
	for _, s := range c.strategies {
		err := s.link(source, target)
		if err == nil {
			return nil
		}
		if isCrossDevice(err) {
			return &CrossDeviceLinkError{Source: source, Target: target, Err: err}
		}
		if isUnsupported(err) {
			tried = append(tried, s.name)
			lastErr = err
			continue
		}
		return &LinkFailedError{Source: source, Target: target, Strategy: s.name, Code: errnoCode(err), Err: err}
	}
	return &LinkUnsupportedError{Source: source, Target: target, Strategies: tried, Err: lastErr}
}

func runtimeLink() linkStrategy {
	return linkStrategy{name: "os.Link", link: os.Link}
}

// ClassifyLinkError maps a raw link error onto the package's error types.
// Errors that already have one of those types pass through unchanged, so it
// is safe to apply to the result of any Linker.
func ClassifyLinkError(strategy, source, target string, err error) error {
	if err == nil {
		return nil
	}
	var (
		cross       *CrossDeviceLinkError
		unsupported *LinkUnsupportedError
		failed      *LinkFailedError
	)
	if errors.As(err, &cross) || errors.As(err, &unsupported) || errors.As(err, &failed) {
		return err
	}
	switch {
	case isCrossDevice(err):
		return &CrossDeviceLinkError{Source: source, Target: target, Err: err}
	case isUnsupported(err):
		return &LinkUnsupportedError{Source: source, Target: target, Strategies: []string{strategy}, Err: err}
	default:
		return &LinkFailedError{Source: source, Target: target, Strategy: strategy, Code: errnoCode(err), Err: err}
	}
}
