// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025-2026 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package application

import (
	"io"
	"log/slog"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/Lexer747/runpix/utils/check"
)

type BuildInfo struct {
	commit    string
	goVersion string
	branch    string
	timestamp string
	tag       string
}

//nolint:staticcheck
func MakeBuildInfo(COMMIT, GO_VERSION, BRANCH, TIMESTAMP, TAG string) *BuildInfo {
	if COMMIT == "" && GO_VERSION == "" && BRANCH == "" && TIMESTAMP == "" && TAG == "" {
		return nil
	}
	return &BuildInfo{
		commit:    COMMIT,
		goVersion: GO_VERSION,
		branch:    BRANCH,
		timestamp: TIMESTAMP,
		tag:       TAG,
	}
}

func (b *BuildInfo) Commit() string         { return b.commit }
func (b *BuildInfo) GoVersion() string      { return b.goVersion }
func (b *BuildInfo) Branch() string         { return b.branch }
func (b *BuildInfo) BuildTimestamp() string { return b.timestamp }
func (b *BuildInfo) Tag() string            { return b.tag }

// InitLogging installs the default [slog] logger. With a [file] every debug message is written to it,
// without one all logging is discarded.
func InitLogging(file string, info *BuildInfo) (toDefer func()) {
	if file != "" {
		f, err := os.Create(file)
		check.NoErr(err, "could not create Log file")
		h := slog.NewTextHandler(f, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
		logger := slog.New(h)
		if info != nil {
			logger = logger.With(
				"COMMIT", info.commit,
				"BRANCH", info.branch,
				"GO_VERSION", info.goVersion,
				"BUILD_TIMESTAMP", info.timestamp,
				"TAG", info.tag,
			)
		}
		slog.SetDefault(logger)
		slog.Debug("Logging started", "file", file)
		return func() {
			slog.Debug("Logging finished, closing", "file", file)
			check.NoErr(f.Close(), "failed to close log file")
		}
	}
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.LevelError,
	})
	slog.SetDefault(slog.New(h))
	return func() {}
}

func InitCPUProfiling(cpuprofile string) (toDefer func()) {
	if cpuprofile == "" {
		return func() {}
	}
	cpuFile, err := os.Create(cpuprofile)
	check.NoErr(err, "could not create CPU profile")
	err = pprof.StartCPUProfile(cpuFile)
	check.NoErr(err, "could not start CPU profile")

	slog.Debug("Started CPU profile", "path", cpuprofile)
	return func() {
		slog.Debug("Writing CPU profile", "path", cpuprofile)
		pprof.StopCPUProfile()
		check.NoErr(cpuFile.Sync(), "failed to Sync profile")
		check.NoErr(cpuFile.Close(), "failed to close profile")
	}
}

func InitMemProfile(memprofile string) (toDefer func()) {
	if memprofile == "" {
		return func() {}
	}
	f, err := os.Create(memprofile)
	check.NoErr(err, "could not create memory profile")
	return func() {
		slog.Debug("Writing memory profile", "path", memprofile)
		runtime.GC() // get up-to-date statistics
		check.NoErr(pprof.WriteHeapProfile(f), "could not write memory profile")
		check.NoErr(f.Close(), "failed to close memory profile")
	}
}
