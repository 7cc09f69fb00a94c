package node

import (
	"errors"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/ixian-platform/seeder/common"
	"github.com/ixian-platform/seeder/config"
)

const (
	cacheDir  = "cache"
	peersFile = "peers.dat"
)

// CleanCacheAndLogs removes the block cache, the peer list, the log file and
// rotated logs from dir. Missing entries are skipped; every other failure is
// reported and the remaining entries are still removed.
func CleanCacheAndLogs(dir, logFile string) error {
	var errs []error

	if cache := filepath.Join(dir, cacheDir); common.DirExists(cache) {
		if err := os.RemoveAll(cache); err != nil {
			errs = append(errs, err)
		}
	}

	files := []string{filepath.Join(dir, peersFile), filepath.Join(dir, logFile)}
	rotated, err := filepath.Glob(filepath.Join(dir, rotatedPattern(logFile)))
	if err != nil {
		errs = append(errs, err)
	}
	files = append(files, rotated...)

	for _, f := range files {
		if !common.FileExists(f) {
			continue
		}
		size, _ := common.FileSize(f)
		if err := os.Remove(f); err != nil {
			errs = append(errs, err)
			continue
		}
		log.WithField("bytes", size).Debug("Removed ", f)
	}

	return errors.Join(errs...)
}

// Cleaner returns a config.Cleaner that cleans dir
func Cleaner(dir, logFile string) config.Cleaner {
	return func(config.Config) error {
		log.Info("Starting clean, removing cache and logs")
		return CleanCacheAndLogs(dir, logFile)
	}
}

// rotatedPattern matches the backups lumberjack creates for logFile,
// e.g. ixian-2024-01-02T15-04-05.000.log and their compressed form.
func rotatedPattern(logFile string) string {
	ext := filepath.Ext(logFile)
	base := logFile[:len(logFile)-len(ext)]
	return base + "-*" + ext + "*"
}
