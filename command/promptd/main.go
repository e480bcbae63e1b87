// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/promptnet/promptd/access"
	"github.com/promptnet/promptd/account"
	"github.com/promptnet/promptd/background"
	"github.com/promptnet/promptd/disclosure"
	"github.com/promptnet/promptd/escrow"
	"github.com/promptnet/promptd/fault"
	"github.com/promptnet/promptd/funds"
	"github.com/promptnet/promptd/identity"
	"github.com/promptnet/promptd/registry"
	"github.com/promptnet/promptd/rpc"
	"github.com/promptnet/promptd/rpc/server"
	"github.com/promptnet/promptd/storage"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "set", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 's'},
		{Long: "memory-stats", HasArg: getoptions.NO_ARGUMENT, Short: 'm'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	// these commands do not require the configuration and
	// process data needed for initial setup
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	variables, err := parseVariables(options["set"])
	if nil != err {
		exitwithstatus.Message("%s: %s", program, err)
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile, variables)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// these commands require the configuration and
	// perform enquiries on the configuration
	if len(arguments) > 0 && processConfigCommand(arguments, theConfiguration) {
		return
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if "" != theConfiguration.PidFile {
		lockFile, err := os.OpenFile(theConfiguration.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
		if err != nil {
			if os.IsExist(err) {
				exitwithstatus.Message("%s: another instance is already running", program)
			}
			exitwithstatus.Message("%s: PID file: %q creation failed, error: %s", program, theConfiguration.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		defer os.Remove(theConfiguration.PidFile)
	}

	log.Infof("database: %q", theConfiguration.Database.Name)
	log.Debugf("%s = %#v", "ClientRPC", theConfiguration.ClientRPC)

	// start the data storage
	log.Info("initialise storage")
	db, err := storage.Open(theConfiguration.Database.Name, storage.ReadWrite)
	if nil != err {
		log.Criticalf("storage initialise error: %s", err)
		exitwithstatus.Message("storage initialise error: %s", err)
	}
	defer db.Close()

	services, err := assemble(log, db, theConfiguration)
	if nil != err {
		log.Criticalf("ledger initialise error: %s", err)
		exitwithstatus.Message("ledger initialise error: %s", err)
	}

	// these commands are allowed to access the ledger
	if len(arguments) > 0 && processDataCommand(log, arguments, services) {
		return
	}

	// start up the rpc background processes
	err = rpc.Initialise(&theConfiguration.ClientRPC, services, version)
	if nil != err {
		log.Criticalf("rpc initialise error: %s", err)
		exitwithstatus.Message("rpc initialise error: %s", err)
	}
	defer rpc.Finalise()

	log.Infof("rpc listening on: %v", rpc.Addresses())

	// a rewritten gate key file replaces the running key
	if nil != services.Gate {
		watcher, err := newKeyWatcher(logger.New(keyWatcherLoggerPrefix), theConfiguration.Disclosure.KeyFile, services.Gate)
		if nil != err {
			log.Criticalf("key watcher error: %s", err)
			exitwithstatus.Message("key watcher error: %s", err)
		}
		watching := background.Start(background.Processes{watcher}, nil)
		defer watching.Stop()
	}

	// if memory logging enabled
	if len(options["memory-stats"]) > 0 {
		stats := background.Start(background.Processes{&memstats{}}, nil)
		defer stats.Stop()
	}

	// wait for CTRL-C before shutting down to allow manual testing
	if 0 == len(options["quiet"]) {
		fmt.Printf("\n\nWaiting for CTRL-C (SIGINT) or 'kill <pid>' (SIGTERM)…")
	}

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	sig := <-ch
	log.Infof("received signal: %v", sig)
	if 0 == len(options["quiet"]) {
		fmt.Printf("\nreceived signal: %v\n", sig)
		fmt.Printf("\nshutting down…\n")
	}

	log.Info("shutting down…")
}

// create the ledger components over an open database
//
// the configured operator seeds access control on first start only;
// later starts keep whatever operator the ledger already records
func assemble(log *logger.L, db *storage.DB, theConfiguration *Configuration) (server.Services, error) {

	operator, err := account.FromHex(theConfiguration.Operator)
	if nil != err {
		return server.Services{}, fmt.Errorf("operator: %q  error: %s", theConfiguration.Operator, err)
	}

	registryAddress, err := account.FromHex(theConfiguration.RegistryAddress)
	if nil != err {
		return server.Services{}, fmt.Errorf("registry_address: %q  error: %s", theConfiguration.RegistryAddress, err)
	}

	ac := access.New(db)
	err = ac.Initialise(operator)
	switch err {
	case nil:
		log.Infof("initial operator: %s", operator)
	case fault.AlreadyInitialised:
		current, err := ac.Operator()
		if nil != err {
			return server.Services{}, err
		}
		if !current.Equal(operator) {
			log.Warnf("configured operator: %s differs from ledger operator: %s", operator, current)
		}
	default:
		return server.Services{}, err
	}

	ledger := funds.New(db, ac)
	reg := registry.New(db, ac, ledger, registryAddress)
	engine := escrow.New(db, ac, reg, ledger)

	services := server.Services{
		Access:   ac,
		Funds:    ledger,
		Registry: reg,
		Escrow:   engine,
	}

	// the secret service is only offered with a gate key
	if "" != theConfiguration.Disclosure.KeyFile {
		key, err := disclosure.ReadKeyFile(theConfiguration.Disclosure.KeyFile)
		if nil != err {
			return server.Services{}, err
		}
		services.Gate = disclosure.New(key, identity.PersonalSign{}, reg)
		log.Infof("disclosure key: %q", theConfiguration.Disclosure.KeyFile)
	} else {
		log.Warn("no disclosure key_file: secret service disabled")
	}

	return services, nil
}

// convert repeated --set=NAME=VALUE options to configuration variables
func parseVariables(settings []string) (map[string]string, error) {
	variables := make(map[string]string)
	for _, s := range settings {
		n := strings.IndexByte(s, '=')
		if n <= 0 {
			return nil, fmt.Errorf("invalid variable: %q expected NAME=VALUE", s)
		}
		variables[s[:n]] = s[n+1:]
	}
	return variables, nil
}
