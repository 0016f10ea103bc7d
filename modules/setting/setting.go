// Copyright 2014 The Gogs Authors. All rights reserved.
// Copyright 2017 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package setting

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/ini.v1"
)

// DefaultConfigFileName is looked up in the work path when no config file is given
const DefaultConfigFileName = "transprune.ini"

// EnvWorkDir overrides the work path when "--work-path" isn't set
const EnvWorkDir = "TRANSPRUNE_WORK_DIR"

var (
	// AppWorkPath is used as the base path for relative targets and the default config file
	AppWorkPath string

	// CustomConf is the config file path
	CustomConf string

	// CfgProvider is the config provider which was loaded last
	CfgProvider ConfigProvider
)

// ConfigProvider represents a config provider
type ConfigProvider interface {
	Section(section string) *ini.Section
}

// NewConfigProviderFromData loads the config from an in-memory ini content
func NewConfigProviderFromData(data string) (ConfigProvider, error) {
	return ini.Load([]byte(data))
}

// NewConfigProviderFromFile loads the config file, a missing file gives an empty config unless mustExist
func NewConfigProviderFromFile(file string, mustExist bool) (ConfigProvider, error) {
	if _, err := os.Stat(file); err != nil {
		if errors.Is(err, os.ErrNotExist) && !mustExist {
			return ini.Empty(), nil
		}
		return nil, fmt.Errorf("unable to use config file %q: %w", file, err)
	}
	cfg, err := ini.Load(file)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file %q: %w", file, err)
	}
	return cfg, nil
}

type ArgWorkPathAndCustomConf struct {
	WorkPath   string
	CustomConf string
}

// InitWorkPathAndCommonConfig resolves the work path and config file, then loads all settings
func InitWorkPathAndCommonConfig(getEnvFn func(name string) string, args ArgWorkPathAndCustomConf) error {
	workPath := args.WorkPath
	if workPath == "" {
		workPath = getEnvFn(EnvWorkDir)
	}
	if workPath == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("unable to get current directory: %w", err)
		}
		workPath = wd
	}
	workPath, err := filepath.Abs(workPath)
	if err != nil {
		return err
	}
	AppWorkPath = workPath

	// an explicitly given config file must exist, the default one is optional
	mustExist := args.CustomConf != ""
	CustomConf = args.CustomConf
	if CustomConf == "" {
		CustomConf = filepath.Join(AppWorkPath, DefaultConfigFileName)
	} else if !filepath.IsAbs(CustomConf) {
		CustomConf = filepath.Join(AppWorkPath, CustomConf)
	}

	cfg, err := NewConfigProviderFromFile(CustomConf, mustExist)
	if err != nil {
		return err
	}
	return LoadCommonSettingsFrom(cfg)
}

// LoadCommonSettingsFrom loads all sections of the config
func LoadCommonSettingsFrom(cfg ConfigProvider) error {
	CfgProvider = cfg
	loadLogFrom(cfg)
	return loadPruneFrom(cfg)
}

// ResolvePath makes a relative path relative to AppWorkPath
func ResolvePath(p string) string {
	if p == "" || filepath.IsAbs(p) || AppWorkPath == "" {
		return p
	}
	return filepath.Join(AppWorkPath, p)
}
