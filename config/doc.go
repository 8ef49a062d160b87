// Package config loads the run configuration of the kxtabu command.
//
// Precedence: built-in defaults, then the YAML file, then KXTABU_*
// environment variables. The merged result is checked with validator
// struct tags before any converter is used.
//
//	cfg, err := config.Load("kxtabu.yaml")
//	engineCfg := cfg.TabuConfig()
//	o := oracle.New(cfg.OracleOptions()...)
package config
