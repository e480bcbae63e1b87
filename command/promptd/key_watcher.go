// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"

	"github.com/promptnet/promptd/disclosure"
)

const keyWatcherLoggerPrefix = "key-watcher"

// reloads the gate key whenever its file is rewritten
//
// the directory is watched, not the file, so a key replaced by
// rename is still seen
type keyWatcher struct {
	log      *logger.L
	watcher  *fsnotify.Watcher
	filePath string
	gate     *disclosure.Gate
	reloaded chan struct{}
}

func newKeyWatcher(log *logger.L, keyFile string, gate *disclosure.Gate) (*keyWatcher, error) {
	filePath, err := filepath.Abs(filepath.Clean(keyFile))
	if nil != err {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		return nil, err
	}

	err = watcher.Add(filepath.Dir(filePath))
	if nil != err {
		watcher.Close()
		return nil, err
	}

	return &keyWatcher{
		log:      log,
		watcher:  watcher,
		filePath: filePath,
		gate:     gate,
		reloaded: make(chan struct{}, 1),
	}, nil
}

// Run - background process loop
func (w *keyWatcher) Run(args interface{}, shutdown <-chan struct{}) {
	defer w.watcher.Close()

	w.log.Infof("watching: %q", w.filePath)
loop:
	for {
		select {
		case <-shutdown:
			break loop

		case event, ok := <-w.watcher.Events:
			if !ok {
				break loop
			}
			if filepath.Clean(event.Name) != w.filePath {
				continue loop
			}
			if !keyFileChanged(event) {
				continue loop
			}
			w.reload()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				break loop
			}
			w.log.Errorf("watch error: %s", err)
		}
	}
	w.log.Info("stopped")
}

// a half written or removed file keeps the current key
func (w *keyWatcher) reload() {
	key, err := disclosure.ReadKeyFile(w.filePath)
	if nil != err {
		w.log.Warnf("key file: %q  unreadable: %s  keeping current key", w.filePath, err)
		return
	}
	w.gate.SetKey(key)
	w.log.Infof("key file: %q  reloaded", w.filePath)

	// drop the signal if nobody is listening
	select {
	case w.reloaded <- struct{}{}:
	default:
	}
}

func keyFileChanged(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Create == fsnotify.Create
}
