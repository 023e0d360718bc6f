// Package cli provides the namedeck command line: flag parsing, command
// creation and wiring of config, logging and the generation pipeline, using
// cobra and viper.
package cli
