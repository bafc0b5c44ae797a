/*
Package application holds the ambient pieces shared by the executables
built around the merkletrie package.

Config

This module defines the AppConfig abstraction and a TOML-backed
ConfigLoader. Each executable embeds a CommonConfig in its own config
type and calls NewCommonConfig from its Load() method.

Logger

This module implements a generic logging system, a thin wrapper over
zap's SugaredLogger, that can be used by any executable in this
repository.

Bench

The bench subpackage builds a trie from a seeded pseudo-random
workload, queries it, and reports timing and proof statistics.
*/
package application
