//go:build !unix && !windows

package fileutil

func platformStrategies() []linkStrategy {
	return []linkStrategy{runtimeLink()}
}

func platformCrossDevice(error) bool { return false }

func platformUnsupported(error) bool { return false }

func errnoCode(error) int { return 0 }
