package config

import (
	"github.com/ava12/httplint"
)

// Error codes of configuration:
const (
	// configuration file cannot be read or decoded
	ReadError = httplint.ConfigErrors + iota
	// configuration value is out of range
	ValueError
	// configuration file contains keys not recognized by this version
	UnknownKeyError
)

func readError(path string, e error) *httplint.Error {
	res := httplint.FormatError(ReadError, "cannot load config %s: %s", path, e)
	res.SourceName = path
	return res
}

func valueError(path, key string, value any, expected string) *httplint.Error {
	res := httplint.FormatError(ValueError, "bad %s value %v in %s, expecting %s", key, value, path, expected)
	res.SourceName = path
	return res
}

func unknownKeyError(path string, keys []string) *httplint.Error {
	res := httplint.FormatError(UnknownKeyError, "unknown keys in %s: %v", path, keys)
	res.SourceName = path
	return res
}
