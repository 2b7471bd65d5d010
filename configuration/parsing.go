// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/suicore/fault"
	"github.com/bitmark-inc/suicore/keypair"
	"github.com/bitmark-inc/suicore/util"
)

// basic defaults (directories and files are relative to the "DataDirectory")
const (
	defaultDataDirectory = "."
	defaultScheme        = "ED25519"

	defaultObjectCacheSize = 256
	defaultGasBudget       = 10000000
	defaultGasPrice        = 1000

	defaultLogDirectory = "log"
	defaultLogFile      = "suicore.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

var defaultLogLevels = LoglevelMap{
	logger.DefaultTag: "critical",
}

// GasType - defaults applied to built transactions
type GasType struct {
	Budget uint64 `gluamapper:"budget" json:"budget"`
	Price  uint64 `gluamapper:"price" json:"price"`
}

// Configuration - all settings read from the file
type Configuration struct {
	DataDirectory   string               `gluamapper:"data_directory" json:"data_directory"`
	Scheme          string               `gluamapper:"scheme" json:"scheme"`
	DerivationPath  string               `gluamapper:"derivation_path" json:"derivation_path"`
	ObjectCacheSize int                  `gluamapper:"object_cache_size" json:"object_cache_size"`
	Gas             GasType              `gluamapper:"gas" json:"gas"`
	Logging         logger.Configuration `gluamapper:"logging" json:"logging"`
}

// Default - the configuration used when no file is given
func Default() *Configuration {
	return &Configuration{
		DataDirectory:   defaultDataDirectory,
		Scheme:          defaultScheme,
		ObjectCacheSize: defaultObjectCacheSize,
		Gas: GasType{
			Budget: defaultGasBudget,
			Price:  defaultGasPrice,
		},
		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}
}

// GetConfiguration - read, decode and verify the configuration
//
// a blank file name gives the defaults rooted at the current directory
func GetConfiguration(configurationFileName string, variables map[string]string) (*Configuration, error) {

	options := Default()

	baseDirectory := "."
	if "" != configurationFileName {
		fileName, err := filepath.Abs(filepath.Clean(configurationFileName))
		if nil != err {
			return nil, err
		}
		if err := ParseConfigurationFile(fileName, options, variables); nil != err {
			return nil, err
		}
		baseDirectory, _ = filepath.Split(fileName)
	}

	if err := options.validate(baseDirectory); nil != err {
		return nil, err
	}
	return options, nil
}

// check values and expand paths
func (options *Configuration) validate(baseDirectory string) error {

	scheme, err := keypair.SchemeFromString(options.Scheme)
	if nil != err {
		return err
	}
	if !scheme.IsSignable() {
		return fault.ErrUnsupportedScheme
	}

	if "" != options.DerivationPath {
		if _, err := keypair.ParsePath(scheme, options.DerivationPath); nil != err {
			return err
		}
	}

	if options.ObjectCacheSize <= 0 {
		return fault.ErrValueOutOfRange
	}
	if 0 == options.Gas.Budget || 0 == options.Gas.Price {
		return fault.ErrValueOutOfRange
	}

	// ensure absolute data directory
	switch options.DataDirectory {
	case "", "~":
		return fault.ErrInvalidDirectory
	case ".":
		options.DataDirectory = baseDirectory // same directory as the configuration file
	}
	dataDirectory, err := filepath.Abs(filepath.Clean(options.DataDirectory))
	if nil != err {
		return err
	}
	options.DataDirectory = dataDirectory

	// the log file must be a plain name inside the log directory
	if err := util.EnsurePlainFileName(options.Logging.File); nil != err {
		return err
	}

	options.Logging.Directory = util.EnsureAbsolute(options.DataDirectory, options.Logging.Directory)
	return nil
}

// CreateDirectories - make the log directory if it does not exist
func (options *Configuration) CreateDirectories() error {
	return os.MkdirAll(options.Logging.Directory, 0700)
}
